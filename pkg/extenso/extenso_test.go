package extenso_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patriciammarinskevi/GERADOR-RECIBOS/pkg/extenso"
)

func TestInteger(t *testing.T) {
	cases := map[int64]string{
		0:             "zero",
		1:             "um",
		15:            "quinze",
		21:            "vinte e um",
		100:           "cem",
		101:           "cento e um",
		999:           "novecentos e noventa e nove",
		1000:          "mil",
		1001:          "mil e um",
		1100:          "mil e cem",
		1200:          "mil e duzentos",
		1234:          "mil duzentos e trinta e quatro",
		21000:         "vinte e um mil",
		1_000_000:     "um milhão",
		2_500_000:     "dois milhões e quinhentos mil",
		1_000_001:     "um milhão e um",
		3_000_000_000: "três bilhões",
	}
	for n, want := range cases {
		assert.Equal(t, want, extenso.Integer(n), "número %d", n)
	}
}

func TestReais(t *testing.T) {
	cases := map[string]string{
		"0":          "zero reais",
		"1":          "um real",
		"2":          "dois reais",
		"1200":       "mil e duzentos reais",
		"1518.5":     "mil quinhentos e dezoito reais e cinquenta centavos",
		"1.01":       "um real e um centavo",
		"0.5":        "cinquenta centavos",
		"0.999":      "um real",
		"1000000":    "um milhão de reais",
		"2500000.00": "dois milhões e quinhentos mil reais",
	}
	for in, want := range cases {
		got, err := extenso.Reais(decimal.RequireFromString(in))
		require.NoError(t, err, "valor %s", in)
		assert.Equal(t, want, got, "valor %s", in)
	}
}

func TestReais_ForaDoIntervalo(t *testing.T) {
	_, err := extenso.Reais(decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, extenso.ErrOutOfRange)

	_, err = extenso.Reais(decimal.New(1, 15))
	assert.ErrorIs(t, err, extenso.ErrOutOfRange)
}
