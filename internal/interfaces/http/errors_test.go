package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/application/dto"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/domain"
)

func TestWriteError_Mapeamento(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
		msg    string
	}{
		{fmt.Errorf("%w: nome vazio", domain.ErrInvalidInput), 400, "INVALID_INPUT", ""},
		{domain.ErrNotFound, 404, "NOT_FOUND", ""},
		{domain.ErrDuplicateTaxID, 409, "DUPLICATE_CPF", ""},
		{domain.ErrNoEmployees, 404, "NO_EMPLOYEES", ""},
		{fmt.Errorf("%w: chromium em /tmp/recibos", domain.ErrRender), 500, "RENDER_FAILED", msgRenderFailed},
		{fmt.Errorf("%w: SELECT id FROM funcionarios: conexão recusada", domain.ErrStore), 500, "STORE_FAILED", msgStoreFailed},
		{domain.ErrUnauthorized, 401, "UNAUTHORIZED", ""},
		{errors.New("dial tcp 10.0.0.5:5432: inesperado"), 500, "INTERNAL", msgInternal},
	}
	for _, tc := range cases {
		app := fiber.New()
		app.Get("/", func(c *fiber.Ctx) error { return writeError(c, tc.err) })

		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, tc.status, resp.StatusCode, tc.err.Error())

		var body dto.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		resp.Body.Close()
		assert.Equal(t, tc.code, body.Code)
		if tc.msg == "" {
			assert.Equal(t, tc.err.Error(), body.Error)
		} else {
			assert.Equal(t, tc.msg, body.Error, "detalhe interno não vai para o cliente")
		}
	}
}
