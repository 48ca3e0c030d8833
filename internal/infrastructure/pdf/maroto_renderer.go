package pdf

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/beevik/etree"
	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/application/receipts"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/domain"
)

// ── Paleta ────────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Página A4 com margens de 20 mm: 170 mm úteis.
const (
	pageMargin  = 20.0
	usableWidth = 210.0 - 2*pageMargin
)

// ── Renderer ──────────────────────────────────────────────────────────────────

var _ receipts.ReceiptRenderer = (*MarotoRenderer)(nil)

// MarotoRenderer gera o PDF em processo com maroto v2. O XHTML preenchido é lido
// com etree e cada bloco (h1, h2, h3, p, div, hr) vira uma linha da página;
// as classes center, right, strong e small ajustam alinhamento e fonte.
type MarotoRenderer struct {
	tpl *Template
}

// NewMarotoRenderer constrói o motor com o template do recibo.
func NewMarotoRenderer(tpl *Template) *MarotoRenderer {
	return &MarotoRenderer{tpl: tpl}
}

// Open não reserva recursos externos; cada documento é independente.
func (r *MarotoRenderer) Open(context.Context) (receipts.RenderSession, error) {
	return &marotoSession{tpl: r.tpl}, nil
}

func (r *MarotoRenderer) Extension() string { return "pdf" }

type marotoSession struct {
	tpl *Template
}

func (s *marotoSession) Render(ctx context.Context, data receipts.ReceiptData) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	markup, err := s.tpl.Fill(data.Placeholders())
	if err != nil {
		return nil, err
	}
	blocks, err := parseBlocks(markup)
	if err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(pageMargin).WithRightMargin(pageMargin).
		WithTopMargin(pageMargin).WithBottomMargin(pageMargin).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Recibo de Pagamento - "+data.EmployeeName, true).
		WithAuthor(data.CompanyName, true).
		Build()

	m := maroto.New(cfg)
	for _, b := range blocks {
		m.AddRows(b.row())
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("%w: maroto: %v", domain.ErrRender, err)
	}
	return doc.GetBytes(), nil
}

func (s *marotoSession) Close() error { return nil }

// ── Blocos ────────────────────────────────────────────────────────────────────

type block struct {
	tag     string
	text    string
	classes map[string]bool
}

// parseBlocks percorre o <body> (ou a raiz) e achata os elementos de bloco.
// Markup malformado → domain.ErrRender.
func parseBlocks(markup string) ([]block, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(markup); err != nil {
		return nil, fmt.Errorf("%w: template não é XHTML válido: %v", domain.ErrRender, err)
	}
	root := doc.FindElement("//body")
	if root == nil {
		root = doc.Root()
	}
	if root == nil {
		return nil, fmt.Errorf("%w: template sem elementos", domain.ErrRender)
	}
	var out []block
	collectBlocks(root, &out)
	return out, nil
}

var blockTags = map[string]bool{"h1": true, "h2": true, "h3": true, "p": true, "div": true, "hr": true}

func collectBlocks(parent *etree.Element, out *[]block) {
	for _, el := range parent.ChildElements() {
		tag := strings.ToLower(el.Tag)
		switch {
		case tag == "div" && hasBlockChild(el):
			collectBlocks(el, out)
		case blockTags[tag]:
			*out = append(*out, block{
				tag:     tag,
				text:    strings.Join(strings.Fields(innerText(el)), " "),
				classes: classSet(el.SelectAttrValue("class", "")),
			})
		}
	}
}

func hasBlockChild(el *etree.Element) bool {
	for _, c := range el.ChildElements() {
		if blockTags[strings.ToLower(c.Tag)] {
			return true
		}
	}
	return false
}

// innerText concatena o texto do elemento e de todos os descendentes.
func innerText(el *etree.Element) string {
	var b strings.Builder
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			b.WriteString(t.Data)
		case *etree.Element:
			if strings.EqualFold(t.Tag, "br") {
				b.WriteString(" ")
				continue
			}
			b.WriteString(innerText(t))
		}
	}
	return b.String()
}

func classSet(attr string) map[string]bool {
	set := map[string]bool{}
	for _, c := range strings.Fields(attr) {
		set[strings.ToLower(c)] = true
	}
	return set
}

func (b block) row() core.Row {
	if b.tag == "hr" {
		return line.NewRow(4, props.Line{Color: colorPrimary, Thickness: 0.3})
	}
	if b.text == "" {
		return row.New(8)
	}

	ps := props.Text{Size: 10, Align: align.Left, Top: 1}
	switch b.tag {
	case "h1":
		ps.Size, ps.Style, ps.Color = 15, fontstyle.Bold, colorPrimary
	case "h2":
		ps.Size, ps.Style = 12, fontstyle.Bold
	case "h3":
		ps.Size, ps.Style = 11, fontstyle.Bold
	}
	if b.classes["small"] {
		ps.Size, ps.Color = 8, colorGray
	}
	if b.classes["strong"] {
		ps.Style = fontstyle.Bold
	}
	switch {
	case b.classes["center"]:
		ps.Align = align.Center
	case b.classes["right"]:
		ps.Align = align.Right
	}

	return row.New(rowHeight(b.text, ps.Size)).Add(
		col.New(12).Add(text.New(b.text, ps)),
	)
}

// rowHeight estima a altura (mm) do parágrafo pela largura média da Helvetica.
func rowHeight(s string, size float64) float64 {
	charWidth := size * 0.19 // mm por caractere, média
	perLine := math.Max(1, math.Floor(usableWidth/charWidth))
	lines := math.Ceil(float64(len([]rune(s))) / perLine)
	return lines*size*0.5 + 3
}
