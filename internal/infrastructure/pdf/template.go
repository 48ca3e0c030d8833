// Package pdf renderiza recibos de pagamento em PDF a partir de um template
// XHTML com marcadores {{NOME}}, {{VALOR}}, etc.
//
// Dois motores: Gotenberg (Chromium headless via HTTP, fiel ao CSS do template)
// e maroto (em processo, layout simplificado a partir da estrutura do XHTML).
package pdf

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/domain"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/web"
)

const defaultTemplatePath = "templates/recibo.html"

var placeholderPattern = regexp.MustCompile(`\{\{[A-Z0-9_]+\}\}`)

// Template markup do recibo com os marcadores já catalogados.
type Template struct {
	markup       string
	placeholders []string
}

// LoadTemplate lê o template de path; path vazio usa o template embutido.
// Arquivo ausente ou vazio → domain.ErrRender.
func LoadTemplate(path string) (*Template, error) {
	var (
		raw []byte
		err error
	)
	if path == "" {
		raw, err = fs.ReadFile(web.Templates, defaultTemplatePath)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: template não encontrado: %s", domain.ErrRender, path)
		}
		return nil, fmt.Errorf("%w: ler template: %v", domain.ErrRender, err)
	}
	return ParseTemplate(string(raw))
}

// ParseTemplate cataloga os marcadores de markup.
func ParseTemplate(markup string) (*Template, error) {
	if strings.TrimSpace(markup) == "" {
		return nil, fmt.Errorf("%w: template vazio", domain.ErrRender)
	}
	seen := map[string]bool{}
	var list []string
	for _, ph := range placeholderPattern.FindAllString(markup, -1) {
		if !seen[ph] {
			seen[ph] = true
			list = append(list, ph)
		}
	}
	return &Template{markup: markup, placeholders: list}, nil
}

// Placeholders marcadores presentes no template, na ordem de aparição.
func (t *Template) Placeholders() []string {
	return append([]string(nil), t.placeholders...)
}

// Fill substitui todas as ocorrências de cada marcador pelo valor escapado para XML.
// Marcador usado no template sem valor em values → domain.ErrRender.
func (t *Template) Fill(values map[string]string) (string, error) {
	var missing []string
	pairs := make([]string, 0, 2*len(t.placeholders))
	for _, ph := range t.placeholders {
		v, ok := values[ph]
		if !ok {
			missing = append(missing, ph)
			continue
		}
		pairs = append(pairs, ph, escapeXML(v))
	}
	if len(missing) > 0 {
		return "", fmt.Errorf("%w: marcadores sem valor: %s", domain.ErrRender, strings.Join(missing, ", "))
	}
	return strings.NewReplacer(pairs...).Replace(t.markup), nil
}

func escapeXML(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
