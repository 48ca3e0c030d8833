// Package receipts orquestra a geração de recibos de pagamento: monta os
// valores de cada recibo, renderiza um documento por funcionário e empacota
// o lote num único ZIP.
package receipts

import (
	"context"
	"time"
)

// ReceiptRenderer motor de renderização (Chromium via Gotenberg ou maroto).
// Open prepara os recursos de um lote inteiro.
type ReceiptRenderer interface {
	Open(ctx context.Context) (RenderSession, error)
	Extension() string
}

// RenderSession sessão de renderização de um lote. Render libera os recursos
// do documento antes de retornar, com ou sem erro.
type RenderSession interface {
	Render(ctx context.Context, data ReceiptData) ([]byte, error)
	Close() error
}

// OutputStore diretório de trabalho onde os recibos e o ZIP são gravados.
type OutputStore interface {
	// Reset apaga e recria o diretório; idempotente.
	Reset() error
	Write(name string, data []byte) error
	// Archive empacota os arquivos names num ZIP archiveName dentro do diretório.
	Archive(archiveName string, names []string) error
}

// BatchMetrics contadores do lote. Opcional.
type BatchMetrics interface {
	BatchFinished(outcome string, elapsed time.Duration)
	ReceiptRendered()
}

// Resultados registrados em BatchMetrics.BatchFinished.
const (
	OutcomeOK          = "ok"
	OutcomeNoEmployees = "sem_funcionarios"
	OutcomeInvalid     = "invalido"
	OutcomeError       = "erro"
)

type nopMetrics struct{}

func (nopMetrics) BatchFinished(string, time.Duration) {}
func (nopMetrics) ReceiptRendered()                    {}
