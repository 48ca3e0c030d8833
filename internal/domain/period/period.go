// Package period interpreta o período de referência digitado pelo usuário
// ("setembro/2025", "09/2025", "set-25") em mês/ano canônicos, um texto de
// exibição com o intervalo de datas e um token seguro para nomes de arquivo.
//
// É uma função pura: sem I/O e sem erros. Entradas que não puderem ser
// resolvidas seguem adiante com o texto original como exibição.
package period

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/patriciammarinskevi/GERADOR-RECIBOS/pkg/textnorm"
)

// Period resultado da interpretação. Month vale 0 quando o período não foi reconhecido.
type Period struct {
	Month   int    `json:"mes,omitempty"`
	Year    int    `json:"ano,omitempty"`
	Display string `json:"display"`
	Token   string `json:"token"`
}

// Resolved indica se mês e ano foram reconhecidos.
func (p Period) Resolved() bool {
	return p.Month >= 1 && p.Month <= 12
}

// ── Tabelas de meses ──────────────────────────────────────────────────────────

var monthNames = [12]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// Chaves já sem acento e em minúsculas.
var fullMonths = map[string]int{
	"janeiro": 1, "fevereiro": 2, "marco": 3, "abril": 4,
	"maio": 5, "junho": 6, "julho": 7, "agosto": 8,
	"setembro": 9, "outubro": 10, "novembro": 11, "dezembro": 12,
}

var shortMonths = map[string]int{
	"jan": 1, "fev": 2, "mar": 3, "abr": 4, "mai": 5, "jun": 6,
	"jul": 7, "ago": 8, "set": 9, "out": 10, "nov": 11, "dez": 12,
}

var (
	separators = regexp.MustCompile(`[/\-\s]+`)
	oneOrTwo   = regexp.MustCompile(`^\d{1,2}$`)
	fourDigits = regexp.MustCompile(`^\d{4}$`)
	twoDigits  = regexp.MustCompile(`^\d{2}$`)
	notAlnum   = regexp.MustCompile(`[^a-z0-9]`)
)

// ── API ───────────────────────────────────────────────────────────────────────

// Interpret converte o texto livre em Period.
//
//	"setembro/2025" → {9, 2025, "Setembro/2025 (01/09 a 30/09)", "09-2025"}
//	"set-25"        → {9, 2025, ...}  (ano de 2 dígitos sempre vira 20xx)
//	"folha extra"   → {0, 0, "folha extra", "folha-extra"}
func Interpret(raw string) Period {
	trimmed := strings.TrimSpace(raw)
	tokens := splitTokens(trimmed)
	if len(tokens) >= 2 {
		month := parseMonth(tokens[0])
		year, ok := parseYear(tokens[1])
		if ok && month >= 1 && month <= 12 {
			return resolved(month, year)
		}
	}
	return Period{Display: trimmed, Token: Sanitize(trimmed)}
}

// Sanitize deixa o texto em minúsculas e troca cada caractere fora de [a-z0-9] por "-".
func Sanitize(s string) string {
	return notAlnum.ReplaceAllString(strings.ToLower(s), "-")
}

// LastDay devolve o último dia do mês (considera anos bissextos).
func LastDay(month, year int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthName devolve o nome do mês em minúsculas ("março"); "" fora de 1..12.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

// ── helpers ───────────────────────────────────────────────────────────────────

func resolved(month, year int) Period {
	mm := fmt.Sprintf("%02d", month)
	dd := fmt.Sprintf("%02d", LastDay(month, year))
	return Period{
		Month:   month,
		Year:    year,
		Display: fmt.Sprintf("%s/%d (01/%s a %s/%s)", capitalize(MonthName(month)), year, mm, dd, mm),
		Token:   fmt.Sprintf("%s-%04d", mm, year),
	}
}

func splitTokens(s string) []string {
	parts := separators.Split(s, -1)
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseMonth(candidate string) int {
	if oneOrTwo.MatchString(candidate) {
		n, _ := strconv.Atoi(candidate)
		return n
	}
	key := strings.ToLower(textnorm.RemoveAccents(candidate))
	if m, ok := fullMonths[key]; ok {
		return m
	}
	if r := []rune(key); len(r) >= 3 {
		key = string(r[:3])
	}
	return shortMonths[key]
}

func parseYear(candidate string) (int, bool) {
	switch {
	case fourDigits.MatchString(candidate):
		n, _ := strconv.Atoi(candidate)
		return n, true
	case twoDigits.MatchString(candidate):
		n, _ := strconv.Atoi(candidate)
		return 2000 + n, true
	default:
		return 0, false
	}
}

func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
