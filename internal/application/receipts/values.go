package receipts

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/domain/entity"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/domain/period"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/pkg/extenso"
)

// ReceiptData valores já formatados de um recibo.
type ReceiptData struct {
	EmployeeName  string
	EmployeeTaxID string
	Amount        string // "R$ 1.234,56"
	AmountInWords string // "MIL DUZENTOS E TRINTA E QUATRO REAIS ..."; "" se não foi possível
	PeriodDisplay string
	IssuedAt      string // "16 de outubro de 2026"
	CompanyName   string
	CompanyTaxID  string
	CompanyCity   string
}

// Placeholders mapeia cada marcador do template ao seu valor.
func (d ReceiptData) Placeholders() map[string]string {
	return map[string]string{
		"{{NOME}}":           d.EmployeeName,
		"{{CPF}}":            d.EmployeeTaxID,
		"{{VALOR}}":          d.Amount,
		"{{VALOR_EXTENSO}}":  d.AmountInWords,
		"{{PERIODO}}":        d.PeriodDisplay,
		"{{DATA_EMISSAO}}":   d.IssuedAt,
		"{{EMPRESA_NOME}}":   d.CompanyName,
		"{{EMPRESA_CNPJ}}":   d.CompanyTaxID,
		"{{EMPRESA_CIDADE}}": d.CompanyCity,
	}
}

// BuildReceiptData monta os valores do recibo. O valor por extenso é best-effort:
// se falhar, o campo fica vazio e o erro é registrado em warn.
func BuildReceiptData(log zerolog.Logger, e *entity.Employee, p period.Period, company entity.Company, issuedAt time.Time) ReceiptData {
	words, err := extenso.Reais(e.Salary)
	if err != nil {
		log.Warn().Err(err).
			Int64("funcionario_id", e.ID).
			Str("salario", e.Salary.String()).
			Msg("valor por extenso indisponível")
		words = ""
	}
	return ReceiptData{
		EmployeeName:  e.Name,
		EmployeeTaxID: e.TaxID,
		Amount:        FormatBRL(e.Salary),
		AmountInWords: strings.ToUpper(words),
		PeriodDisplay: p.Display,
		IssuedAt:      LongDate(issuedAt),
		CompanyName:   company.Name,
		CompanyTaxID:  company.TaxID,
		CompanyCity:   company.City,
	}
}

// FormatBRL formata em reais com duas casas: 1234.5 → "R$ 1.234,50".
func FormatBRL(v decimal.Decimal) string {
	s := v.Round(2).StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	return "R$ " + sign + groupThousands(whole) + "," + frac
}

// LongDate data por extenso em português: "16 de outubro de 2026".
func LongDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), period.MonthName(int(t.Month())), t.Year())
}

// groupThousands insere pontos de milhar: "1000000" → "1.000.000".
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
