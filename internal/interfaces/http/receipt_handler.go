package http

import (
	"errors"
	"io/fs"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"

	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/application/dto"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/application/receipts"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/domain/period"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/infrastructure/storage"
)

// FileSource leitura dos arquivos do diretório de trabalho.
type FileSource interface {
	Open(name string) (afero.File, os.FileInfo, error)
}

// ReceiptHandler geração e download de recibos.
type ReceiptHandler struct {
	batch *receipts.BatchUseCase
	files FileSource
}

func NewReceiptHandler(batch *receipts.BatchUseCase, files FileSource) *ReceiptHandler {
	return &ReceiptHandler{batch: batch, files: files}
}

// Generate godoc
// @Summary      Gerar recibos do período
// @Description  Gera um PDF por funcionário e empacota todos em RECIBOS-<token>.zip.
// @Tags         recibos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateReceiptsRequest  true  "Período (ex.: setembro/2025)"
// @Success      200   {object}  dto.BatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/recibos/gerar [post]
func (h *ReceiptHandler) Generate(c *fiber.Ctx) error {
	var in dto.GenerateReceiptsRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "corpo inválido")
	}
	if err := validateBody(in); err != nil {
		return writeError(c, err)
	}
	out, err := h.batch.Generate(c.UserContext(), in.Period)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Download godoc
// @Summary      Baixar arquivo gerado (ZIP do lote ou PDF individual)
// @Tags         recibos
// @Produce      application/zip
// @Param        nome  path  string  true  "Nome do arquivo"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/recibos/arquivos/{nome} [get]
func (h *ReceiptHandler) Download(c *fiber.Ctx) error {
	name := c.Params("nome")
	f, info, err := h.files.Open(name)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidName):
			return badRequest(c, "INVALID_NAME", "nome de arquivo inválido")
		case errors.Is(err, fs.ErrNotExist):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Error: "arquivo não encontrado"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Error: err.Error()})
		}
	}
	c.Attachment(name)
	// o fasthttp fecha o arquivo ao terminar o envio
	return c.SendStream(f, int(info.Size()))
}

// InterpretPeriod godoc
// @Summary      Prévia da interpretação de um período
// @Tags         periodos
// @Produce      json
// @Param        periodo  query  string  true  "Período digitado"
// @Success      200  {object}  dto.PeriodResponse
// @Router       /api/periodos/interpretar [get]
func (h *ReceiptHandler) InterpretPeriod(c *fiber.Ctx) error {
	raw := c.Query("periodo")
	p := period.Interpret(raw)
	return c.JSON(dto.PeriodResponse{
		Input:    raw,
		Month:    p.Month,
		Year:     p.Year,
		Display:  p.Display,
		Token:    p.Token,
		Resolved: p.Resolved(),
	})
}
