// Package extenso escreve valores monetários em reais por extenso
// ("mil e duzentos reais e cinquenta centavos").
package extenso

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrOutOfRange valor negativo ou acima de 999 trilhões.
var ErrOutOfRange = errors.New("extenso: valor fora do intervalo suportado")

var maxValue = decimal.New(1, 15) // 1 quatrilhão

var units = [20]string{
	"zero", "um", "dois", "três", "quatro", "cinco", "seis", "sete", "oito", "nove",
	"dez", "onze", "doze", "treze", "quatorze", "quinze", "dezesseis", "dezessete", "dezoito", "dezenove",
}

var tens = [10]string{
	"", "", "vinte", "trinta", "quarenta", "cinquenta", "sessenta", "setenta", "oitenta", "noventa",
}

var hundreds = [10]string{
	"", "cento", "duzentos", "trezentos", "quatrocentos", "quinhentos",
	"seiscentos", "setecentos", "oitocentos", "novecentos",
}

// scales[i] = {singular, plural} da i-ésima classe de milhar.
var scales = [5][2]string{
	{"", ""},
	{"mil", "mil"},
	{"milhão", "milhões"},
	{"bilhão", "bilhões"},
	{"trilhão", "trilhões"},
}

// Reais escreve o valor (arredondado a centavos) por extenso.
//
//	1200     → "mil e duzentos reais"
//	1.01     → "um real e um centavo"
//	0.5      → "cinquenta centavos"
//	1000000  → "um milhão de reais"
func Reais(amount decimal.Decimal) (string, error) {
	amount = amount.Round(2)
	if amount.IsNegative() || amount.GreaterThanOrEqual(maxValue) {
		return "", ErrOutOfRange
	}

	whole := amount.IntPart()
	cents := amount.Sub(decimal.NewFromInt(whole)).Mul(decimal.NewFromInt(100)).IntPart()

	if whole == 0 && cents == 0 {
		return "zero reais", nil
	}

	var parts []string
	if whole > 0 {
		currency := "reais"
		switch {
		case whole == 1:
			currency = "real"
		case whole%1_000_000 == 0:
			currency = "de reais"
		}
		parts = append(parts, Integer(whole)+" "+currency)
	}
	if cents > 0 {
		unit := "centavos"
		if cents == 1 {
			unit = "centavo"
		}
		parts = append(parts, Integer(cents)+" "+unit)
	}
	return strings.Join(parts, " e "), nil
}

// Integer escreve um inteiro não negativo por extenso (gênero masculino).
func Integer(n int64) string {
	if n == 0 {
		return units[0]
	}

	// Classes de milhar, da menos para a mais significativa.
	var groups []int
	for n > 0 {
		groups = append(groups, int(n%1000))
		n /= 1000
	}

	lowest := -1
	for i, g := range groups {
		if g != 0 {
			lowest = i
			break
		}
	}

	var b strings.Builder
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		if g == 0 {
			continue
		}
		if b.Len() > 0 {
			if i == lowest && (g < 100 || g%100 == 0) {
				b.WriteString(" e ")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString(groupWords(g, i))
	}
	return b.String()
}

func groupWords(g, scale int) string {
	if scale == 1 && g == 1 {
		return "mil"
	}
	words := hundredsWords(g)
	if scale == 0 {
		return words
	}
	name := scales[scale][1]
	if g == 1 {
		name = scales[scale][0]
	}
	return words + " " + name
}

func hundredsWords(n int) string {
	if n == 100 {
		return "cem"
	}
	var parts []string
	if h := n / 100; h > 0 {
		parts = append(parts, hundreds[h])
	}
	rest := n % 100
	switch {
	case rest == 0:
	case rest < 20:
		parts = append(parts, units[rest])
	default:
		parts = append(parts, tens[rest/10])
		if rest%10 != 0 {
			parts = append(parts, units[rest%10])
		}
	}
	return strings.Join(parts, " e ")
}
