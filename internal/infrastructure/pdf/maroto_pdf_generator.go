// Package pdf implementa el reporte PDF descargable de un feedback.
//
// Layout de la página:
//
//	┌─────────────────────────────────────────────┐
//	│  Feedback Report (ID: N)                    │
//	│  ─────────────────────────────────────────  │
//	│  Member:       ...                          │
//	│  Strengths:    ...                          │
//	│  Improvement:  ...                          │
//	│  Sentiment:    ...                          │
//	│  Tags:         a, b, c  (o "-")             │
//	│  Given By:     nombre del manager           │
//	│  Acknowledged: Yes/No                       │
//	│  Created At:   YYYY-MM-DD HH:MM:SS (o "-")  │
//	└─────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/workvibe-api/internal/application/report"
	"github.com/jhoicas/workvibe-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ report.FeedbackPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa report.FeedbackPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateFeedbackPDF genera el PDF del feedback y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateFeedbackPDF(
	_ context.Context,
	f *entity.Feedback,
	manager *entity.User,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.Letter).
		WithLeftMargin(18).WithRightMargin(18).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 11}).
		WithTitle("Feedback Report", true).
		WithAuthor(manager.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(row.New(12).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Feedback Report (ID: %d)", f.ID), props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 1,
			}),
		),
	))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(
		fieldRow("Member", f.Member),
		fieldRow("Strengths", f.Strengths),
		fieldRow("Improvement", f.Improvement),
		fieldRow("Sentiment", f.Sentiment),
		fieldRow("Tags", tagsLine(f.Tags)),
		fieldRow("Given By", manager.Name),
		fieldRow("Acknowledged", yesNo(f.Acknowledged)),
		fieldRow("Created At", createdAtLine(f)),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// fieldRow: etiqueta en gris + valor en la misma línea.
func fieldRow(label, value string) core.Row {
	return row.New(8).Add(
		col.New(3).Add(
			text.New(label+":", props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorGray, Top: 1,
			}),
		),
		col.New(9).Add(
			text.New(value, props.Text{Size: 11, Top: 1}),
		),
	)
}

// tagsLine: lista separada por comas, "-" si no hay tags.
func tagsLine(tags []string) string {
	if len(tags) == 0 {
		return "-"
	}
	return strings.Join(tags, ", ")
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// createdAtLine: YYYY-MM-DD HH:MM:SS, "-" si la fila no tiene fecha.
func createdAtLine(f *entity.Feedback) string {
	if f.CreatedAt.IsZero() {
		return "-"
	}
	return f.CreatedAt.Format("2006-01-02 15:04:05")
}
