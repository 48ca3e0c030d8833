package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/application/dto"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/domain"
)

// Mensagens dos erros 500; o detalhe fica só no log.
const (
	msgRenderFailed = "falha ao gerar os recibos"
	msgStoreFailed  = "falha ao acessar o cadastro de funcionários"
	msgInternal     = "erro interno"
)

// writeError traduz os erros de domínio para status HTTP e corpo {error, code}.
func writeError(c *fiber.Ctx, err error) error {
	status, code, msg := fiber.StatusInternalServerError, "INTERNAL", msgInternal
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status, code = fiber.StatusBadRequest, "INVALID_INPUT"
	case errors.Is(err, domain.ErrNotFound):
		status, code = fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrDuplicateTaxID):
		status, code = fiber.StatusConflict, "DUPLICATE_CPF"
	case errors.Is(err, domain.ErrNoEmployees):
		status, code = fiber.StatusNotFound, "NO_EMPLOYEES"
	case errors.Is(err, domain.ErrRender):
		code, msg = "RENDER_FAILED", msgRenderFailed
	case errors.Is(err, domain.ErrStore):
		code, msg = "STORE_FAILED", msgStoreFailed
	case errors.Is(err, domain.ErrUnauthorized):
		status, code = fiber.StatusUnauthorized, "UNAUTHORIZED"
	}
	if status >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Str("code", code).Msg("erro na requisição")
	} else {
		msg = err.Error()
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: msg, Code: code})
}

func badRequest(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msg, Code: code})
}

// ErrorHandler handler de erros do fiber: erros não tratados viram JSON no mesmo formato.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Error: fe.Message, Code: "HTTP_" + strconv.Itoa(fe.Code)})
	}
	return writeError(c, err)
}
