package pdf_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/domain"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/infrastructure/pdf"
)

type gotenbergStub struct {
	health   atomic.Int32
	converts atomic.Int32
	lastHTML atomic.Value
	status   int
}

func (g *gotenbergStub) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		g.health.Add(1)
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/forms/chromium/convert/html", func(w http.ResponseWriter, r *http.Request) {
		g.converts.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		file, header, err := r.FormFile("files")
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		assert.Equal(t, "index.html", header.Filename)
		raw, _ := io.ReadAll(file)
		g.lastHTML.Store(string(raw))

		if g.status != 0 {
			w.WriteHeader(g.status)
			_, _ = w.Write([]byte("chromium error"))
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.7 fake"))
	})
	return mux
}

func newGotenberg(t *testing.T, stub *gotenbergStub) *pdf.GotenbergRenderer {
	t.Helper()
	srv := httptest.NewServer(stub.handler(t))
	t.Cleanup(srv.Close)
	tpl, err := pdf.LoadTemplate("")
	require.NoError(t, err)
	return pdf.NewGotenbergRenderer(srv.URL+"/", tpl, srv.Client())
}

func TestGotenbergRenderer_UmPingPorLote(t *testing.T) {
	stub := &gotenbergStub{}
	r := newGotenberg(t, stub)
	ctx := context.Background()

	session, err := r.Open(ctx)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		doc, err := session.Render(ctx, sampleData())
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.7 fake", string(doc))
	}
	require.NoError(t, session.Close())

	assert.EqualValues(t, 1, stub.health.Load())
	assert.EqualValues(t, 3, stub.converts.Load())
	assert.Contains(t, stub.lastHTML.Load().(string), "MIL QUINHENTOS E DEZOITO REAIS")
}

func TestGotenbergRenderer_ErroDeConversao(t *testing.T) {
	stub := &gotenbergStub{status: http.StatusInternalServerError}
	r := newGotenberg(t, stub)

	session, err := r.Open(context.Background())
	require.NoError(t, err)
	_, err = session.Render(context.Background(), sampleData())
	require.ErrorIs(t, err, domain.ErrRender)
	assert.Contains(t, err.Error(), "500")
}

func TestGotenbergRenderer_Indisponivel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()
	tpl, err := pdf.LoadTemplate("")
	require.NoError(t, err)

	_, err = pdf.NewGotenbergRenderer(srv.URL, tpl, nil).Open(context.Background())
	assert.ErrorIs(t, err, domain.ErrRender)
}
