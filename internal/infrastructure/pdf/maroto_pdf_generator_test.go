package pdf_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/workvibe-api/internal/domain/entity"
	"github.com/jhoicas/workvibe-api/internal/infrastructure/pdf"
)

func sampleFeedback() *entity.Feedback {
	return &entity.Feedback{
		ID:          7,
		Member:      "Ana Gómez",
		Strengths:   "Comunicación clara con el equipo",
		Improvement: "Delegar más",
		Sentiment:   "Positive",
		Tags:        []string{"communication", "leadership"},
		GivenBy:     1,
		CreatedAt:   time.Date(2024, time.June, 3, 9, 30, 0, 0, time.UTC),
	}
}

func TestGenerateFeedbackPDF_ProduceDocumentoValido(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator()
	manager := &entity.User{ID: 1, Name: "Carlos Ruiz", Role: entity.RoleManager}

	data, err := g.GenerateFeedbackPDF(context.Background(), sampleFeedback(), manager)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	assert.Equal(t, "%PDF", string(data[:4]), "el documento debe empezar con la firma PDF")
}

// Un feedback recién migrado puede venir sin tags ni fecha; el reporte debe
// generarse igual con los marcadores "-".
func TestGenerateFeedbackPDF_CamposOpcionalesVacios(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator()
	f := sampleFeedback()
	f.Tags = nil
	f.CreatedAt = time.Time{}
	manager := &entity.User{ID: 1, Name: "Carlos Ruiz"}

	data, err := g.GenerateFeedbackPDF(context.Background(), f, manager)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
