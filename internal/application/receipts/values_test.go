package receipts_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/application/receipts"
)

func TestFormatBRL(t *testing.T) {
	cases := map[string]string{
		"0":          "R$ 0,00",
		"5.5":        "R$ 5,50",
		"999.999":    "R$ 1.000,00",
		"1234.56":    "R$ 1.234,56",
		"1000000":    "R$ 1.000.000,00",
		"-1234.5":    "R$ -1.234,50",
		"123456.789": "R$ 123.456,79",
	}
	for in, want := range cases {
		assert.Equal(t, want, receipts.FormatBRL(decimal.RequireFromString(in)), "valor %s", in)
	}
}

func TestLongDate(t *testing.T) {
	assert.Equal(t, "1 de março de 2025", receipts.LongDate(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "31 de dezembro de 2026", receipts.LongDate(time.Date(2026, 12, 31, 23, 0, 0, 0, time.UTC)))
}

func TestPlaceholders(t *testing.T) {
	d := receipts.ReceiptData{EmployeeName: "Ana", CompanyCity: "Campinas"}
	ph := d.Placeholders()
	assert.Len(t, ph, 9)
	assert.Equal(t, "Ana", ph["{{NOME}}"])
	assert.Equal(t, "Campinas", ph["{{EMPRESA_CIDADE}}"])
}
