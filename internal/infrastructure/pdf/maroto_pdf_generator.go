// Package pdf genera la carta de oferta y el checklist de onboarding con Maroto v2.
//
// Layout de la carta (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa                         │  Fecha            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Saludo + párrafo de oferta                                  │
//	│  TABLA: Cargo / Modalidad / Jefe / Fechas / Tarifa / Sede    │
//	│  Plazo de respuesta                                          │
//	│  FIRMAS: empresa │ consultor                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"unicode"

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
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/Onboarding-api/internal/application/onboarding"
)

var _ onboarding.DocumentGenerator = (*MarotoPDFGenerator)(nil)

const contentTypePDF = "application/pdf"

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa onboarding.DocumentGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	checklist *Checklist
}

// NewMarotoPDFGenerator construye el generador con el checklist dado (nil = checklist embebido).
func NewMarotoPDFGenerator(checklist *Checklist) (*MarotoPDFGenerator, error) {
	if checklist == nil {
		var err error
		checklist, err = DefaultChecklist()
		if err != nil {
			return nil, err
		}
	}
	return &MarotoPDFGenerator{checklist: checklist}, nil
}

// GenerateOfferLetter genera la carta de oferta personalizada.
func (g *MarotoPDFGenerator) GenerateOfferLetter(ctx context.Context, data onboarding.OfferLetterData) (*onboarding.GeneratedFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m := maroto.New(pageConfig("Offer Letter", data.CompanyName))

	m.AddRows(letterHeaderRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(row.New(4))
	m.AddRows(paragraphRows(data)...)
	m.AddRows(termsRows(data)...)
	m.AddRows(row.New(4))
	m.AddRows(textRow(10, fmt.Sprintf(
		"Please sign and return this letter by %s to confirm your acceptance.",
		data.ResponseDeadline.Format("January 2, 2006"),
	), props.Text{Size: 10}))
	m.AddRows(row.New(10))
	m.AddRows(signatureRows(data)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar carta de oferta: %w", err)
	}
	return &onboarding.GeneratedFile{
		FileName:    fileName("Offer_Letter", data.ConsultantName, data),
		ContentType: contentTypePDF,
		Content:     doc.GetBytes(),
	}, nil
}

// GenerateChecklist genera el checklist de onboarding del consultor.
func (g *MarotoPDFGenerator) GenerateChecklist(ctx context.Context, data onboarding.OfferLetterData) (*onboarding.GeneratedFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m := maroto.New(pageConfig("Onboarding Checklist", data.CompanyName))

	m.AddRows(textRow(12, "Onboarding Checklist: "+data.ConsultantName, props.Text{
		Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
	}))
	m.AddRows(textRow(7, "Start Date: "+nonEmpty(data.StartDate, "TBD"), props.Text{Size: 9, Color: colorGray}))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	for _, section := range g.checklist.Sections {
		m.AddRows(textRow(9, section.Title, props.Text{
			Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 3,
		}))
		for _, item := range section.Items {
			m.AddRows(textRow(6, checkbox(false)+" "+item, props.Text{Size: 9, Left: 4, Top: 1}))
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar checklist: %w", err)
	}
	return &onboarding.GeneratedFile{
		FileName:    fileName("Onboarding_Checklist", data.ConsultantName, data),
		ContentType: contentTypePDF,
		Content:     doc.GetBytes(),
	}, nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func pageConfig(title, author string) *entity.Config {
	return config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle(title, true).
		WithAuthor(author, true).
		Build()
}

// letterHeaderRow: empresa (izq) y fecha de emisión (der).
func letterHeaderRow(data onboarding.OfferLetterData) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(data.CompanyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
			text.New(data.Location, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(data.IssuedAt.Format("January 2, 2006"), props.Text{
				Size: 9, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func paragraphRows(data onboarding.OfferLetterData) []core.Row {
	return []core.Row{
		textRow(8, "Dear "+data.FirstName+",", props.Text{Size: 10}),
		textRow(18, fmt.Sprintf(
			"We are pleased to offer you the position of %s at %s. "+
				"The terms of this offer are summarized below.",
			data.Position, data.CompanyName,
		), props.Text{Size: 10, Top: 1}),
	}
}

// termsRows: una fila etiqueta/valor por término de la oferta.
func termsRows(data onboarding.OfferLetterData) []core.Row {
	fullTime := strings.EqualFold(data.EmploymentType, "Full-time")
	terms := [][2]string{
		{"Position", data.Position},
		{"Employment Type", fmt.Sprintf("%s Full-time   %s Part-time", checkbox(fullTime), checkbox(!fullTime))},
		{"Reports To", data.Manager},
		{"Start Date", nonEmpty(data.StartDate, "TBD")},
		{"End Date", data.EndDate},
		{"Pay Rate", nonEmpty(data.PayRate, "As agreed")},
		{"Location", data.Location},
	}
	out := make([]core.Row, 0, len(terms))
	for _, t := range terms {
		out = append(out, row.New(7).Add(
			col.New(4).Add(text.New(t[0]+":", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1, Left: 2})),
			col.New(8).Add(text.New(t[1], props.Text{Size: 9, Top: 1})),
		))
	}
	return out
}

func signatureRows(data onboarding.OfferLetterData) []core.Row {
	sig := func(name, title string) core.Col {
		return col.New(6).Add(
			text.New("______________________________", props.Text{Size: 10}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 9, Top: 6}),
			text.New(title, props.Text{Size: 8, Top: 11, Color: colorGray}),
		)
	}
	return []core.Row{
		row.New(20).Add(
			sig(data.HiringManager, data.HiringManagerTitle),
			sig(data.ConsultantName, "Accepted"),
		),
	}
}

func textRow(height float64, s string, p props.Text) core.Row {
	return row.New(height).Add(col.New(12).Add(text.New(s, p)))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// checkbox en ASCII: la fuente base de Maroto no trae el glifo ☐.
func checkbox(checked bool) string {
	if checked {
		return "[X]"
	}
	return "[ ]"
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// fileName arma {prefijo}_{Nombre_Slug}_{YYYYMMDD}.pdf.
func fileName(prefix, name string, data onboarding.OfferLetterData) string {
	return fmt.Sprintf("%s_%s_%s.pdf", prefix, Slug(name), data.IssuedAt.Format("20060102"))
}

// Slug quita diacríticos y deja letras, dígitos y '_' (espacios → '_').
// "José Núñez" → "Jose_Nunez".
func Slug(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		folded = s
	}
	var b strings.Builder
	lastUnderscore := false
	for _, r := range folded {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) || r == '-':
			b.WriteRune(r)
			lastUnderscore = false
		case unicode.IsSpace(r) || r == '_':
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	out := strings.TrimRight(b.String(), "_")
	if out == "" {
		return "consultant"
	}
	return out
}
