package period_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/domain/period"
)

func TestInterpret_NomeCompletoEAno(t *testing.T) {
	p := period.Interpret("setembro/2025")

	require.True(t, p.Resolved())
	assert.Equal(t, 9, p.Month)
	assert.Equal(t, 2025, p.Year)
	assert.Equal(t, "Setembro/2025 (01/09 a 30/09)", p.Display)
	assert.Equal(t, "09-2025", p.Token)
}

func TestInterpret_MesNumerico(t *testing.T) {
	p := period.Interpret("09/2025")
	assert.Equal(t, 9, p.Month)
	assert.Equal(t, 2025, p.Year)
	assert.Equal(t, "09-2025", p.Token)

	p = period.Interpret("1/2026")
	assert.Equal(t, 1, p.Month)
	assert.Equal(t, "01-2026", p.Token)
	assert.Contains(t, p.Display, "(01/01 a 31/01)")
}

// O último dia de fevereiro acompanha os anos bissextos.
func TestInterpret_UltimoDiaDoMes(t *testing.T) {
	cases := []struct {
		in      string
		lastDay string
		token   string
	}{
		{"fevereiro/2024", "29/02", "02-2024"},
		{"fevereiro/2025", "28/02", "02-2025"},
		{"02/2000", "29/02", "02-2000"},
		{"abril/2025", "30/04", "04-2025"},
		{"dezembro/2025", "31/12", "12-2025"},
		{"julho/2025", "31/07", "07-2025"},
	}
	for _, tc := range cases {
		p := period.Interpret(tc.in)
		require.True(t, p.Resolved(), "entrada %q deve ser resolvida", tc.in)
		assert.Contains(t, p.Display, "a "+tc.lastDay, "entrada %q", tc.in)
		assert.Equal(t, tc.token, p.Token, "entrada %q", tc.in)
	}
}

func TestInterpret_TokenFormatoMMYYYY(t *testing.T) {
	for m := 1; m <= 12; m++ {
		p := period.Interpret(fmt.Sprintf("%d/2025", m))
		assert.Regexp(t, `^\d{2}-\d{4}$`, p.Token)
		assert.Equal(t, fmt.Sprintf("%02d-2025", m), p.Token)
		assert.Contains(t, p.Display, fmt.Sprintf("(01/%02d a %02d/%02d)", m, period.LastDay(m, 2025), m))
	}
}

// "março" e "marco" são equivalentes (comparação sem acento).
func TestInterpret_SemDiferencaDeAcento(t *testing.T) {
	a := period.Interpret("março/2025")
	b := period.Interpret("marco/2025")
	c := period.Interpret("MARÇO/2025")

	assert.Equal(t, a, b)
	assert.Equal(t, a, c)
	assert.Equal(t, 3, a.Month)
	assert.Equal(t, "Março/2025 (01/03 a 31/03)", a.Display)
}

func TestInterpret_AbreviacaoEAnoCurto(t *testing.T) {
	p := period.Interpret("set/25")
	assert.Equal(t, 9, p.Month)
	assert.Equal(t, 2025, p.Year)
	assert.Equal(t, "09-2025", p.Token)

	p = period.Interpret("set-25")
	assert.Equal(t, 9, p.Month)
	assert.Equal(t, 2025, p.Year)

	// Ano de dois dígitos nunca cai no século XX.
	p = period.Interpret("dez/99")
	assert.Equal(t, 2099, p.Year)
}

func TestInterpret_AbreviacaoPelasTresPrimeirasLetras(t *testing.T) {
	p := period.Interpret("Fever 2026")
	assert.Equal(t, 2, p.Month)
	assert.Equal(t, 2026, p.Year)

	p = period.Interpret("  out   2025  ")
	assert.Equal(t, 10, p.Month)
}

func TestInterpret_EntradaVazia(t *testing.T) {
	p := period.Interpret("")
	assert.False(t, p.Resolved())
	assert.Zero(t, p.Month)
	assert.Zero(t, p.Year)
	assert.Equal(t, "", p.Display)
	assert.Equal(t, "", p.Token)

	p = period.Interpret("   ")
	assert.False(t, p.Resolved())
	assert.Equal(t, "", p.Display, "só espaços equivale ao texto aparado")
	assert.Equal(t, "", p.Token)
}

func TestInterpret_AnoZeroComQuatroDigitos(t *testing.T) {
	p := period.Interpret("01/0000")
	require.True(t, p.Resolved())
	assert.Equal(t, 1, p.Month)
	assert.Equal(t, 0, p.Year)
	assert.Equal(t, "01-0000", p.Token)
	assert.Equal(t, "Janeiro/0 (01/01 a 31/01)", p.Display)
}

func TestInterpret_TextoNaoReconhecido(t *testing.T) {
	p := period.Interpret("  not a period ")
	assert.False(t, p.Resolved())
	assert.Zero(t, p.Month)
	assert.Zero(t, p.Year)
	assert.Equal(t, "not a period", p.Display)
	assert.Equal(t, "not-a-period", p.Token)
}

func TestInterpret_MesOuAnoInvalidos(t *testing.T) {
	for _, in := range []string{"13/2025", "00/2025", "setembro", "setembro/202", "xyz/2025", "09/12345"} {
		p := period.Interpret(in)
		assert.False(t, p.Resolved(), "entrada %q não deve ser resolvida", in)
		assert.Equal(t, in, p.Display)
		assert.Regexp(t, `^[a-z0-9-]*$`, p.Token)
	}
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "folha-extra-2025", period.Sanitize("Folha Extra/2025"))
	assert.Equal(t, "mar-o", period.Sanitize("março"))
	assert.Equal(t, "", period.Sanitize(""))
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "março", period.MonthName(3))
	assert.Equal(t, "", period.MonthName(0))
	assert.Equal(t, "", period.MonthName(13))
}
