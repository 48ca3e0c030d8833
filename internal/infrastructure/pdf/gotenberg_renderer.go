package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/application/receipts"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/domain"
)

var _ receipts.ReceiptRenderer = (*GotenbergRenderer)(nil)

// GotenbergRenderer converte o XHTML preenchido em PDF com o Chromium do Gotenberg.
type GotenbergRenderer struct {
	baseURL    string
	httpClient *http.Client
	tpl        *Template
}

// NewGotenbergRenderer constrói o motor. client nil usa um http.Client com timeout de 30s.
func NewGotenbergRenderer(baseURL string, tpl *Template, client *http.Client) *GotenbergRenderer {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &GotenbergRenderer{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: client,
		tpl:        tpl,
	}
}

// Open confere uma vez por lote se o Gotenberg responde em /health.
func (r *GotenbergRenderer) Open(ctx context.Context) (receipts.RenderSession, error) {
	if err := r.ping(ctx); err != nil {
		return nil, fmt.Errorf("%w: gotenberg indisponível: %v", domain.ErrRender, err)
	}
	return &gotenbergSession{r: r}, nil
}

func (r *GotenbergRenderer) Extension() string { return "pdf" }

func (r *GotenbergRenderer) ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("status %d em /health", resp.StatusCode)
	}
	return nil
}

type gotenbergSession struct {
	r *GotenbergRenderer
}

// Render envia o documento como index.html para /forms/chromium/convert/html.
func (s *gotenbergSession) Render(ctx context.Context, data receipts.ReceiptData) ([]byte, error) {
	markup, err := s.r.tpl.Fill(data.Placeholders())
	if err != nil {
		return nil, err
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("files", "index.html")
	if err != nil {
		return nil, err
	}
	if _, err := io.WriteString(part, markup); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.r.baseURL+"/forms/chromium/convert/html", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: gotenberg: %v", domain.ErrRender, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 400 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: gotenberg respondeu %d: %s", domain.ErrRender, resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: ler resposta do gotenberg: %v", domain.ErrRender, err)
	}
	return pdf, nil
}

func (s *gotenbergSession) Close() error {
	s.r.httpClient.CloseIdleConnections()
	return nil
}
