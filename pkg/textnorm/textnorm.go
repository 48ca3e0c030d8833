// Package textnorm reúne normalizações de texto usadas em nomes de arquivo e
// na interpretação de períodos (remoção de acentos, limpeza de caracteres).
package textnorm

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// RemoveAccents decompõe o texto (NFD), descarta as marcas combinantes e recompõe (NFC).
// Ex: "Março" → "Marco", "João Conceição" → "Joao Conceicao".
func RemoveAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

var (
	unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9\-_.\s]`)
	whitespaceRun       = regexp.MustCompile(`\s+`)
)

// SanitizeFilename prepara um nome próprio para compor um nome de arquivo:
// remove acentos, descarta o que não for letra/dígito/-/_/./espaço, apara as
// bordas e troca sequências de espaços por um único "_".
// Ex: "  José  da Silva " → "Jose_da_Silva".
func SanitizeFilename(s string) string {
	s = RemoveAccents(s)
	s = unsafeFilenameChars.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	return whitespaceRun.ReplaceAllString(s, "_")
}
