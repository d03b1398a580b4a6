package docs_test

import (
	"encoding/json"
	"testing"

	"github.com/jhoicas/workvibe-api/docs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────────────────────
// Especificación embebida
// ─────────────────────────────────────────────────────────────

// El servidor sirve esta especificación en /docs vía FileContent; si el
// embed quedara vacío o con JSON roto, el arranque o la UI fallarían.
func TestSwaggerJSON_EsJSONValido(t *testing.T) {
	require.NotEmpty(t, docs.SwaggerJSON, "la especificación embebida no puede estar vacía")

	var spec map[string]any
	err := json.Unmarshal(docs.SwaggerJSON, &spec)
	require.NoError(t, err, "swagger.json debe ser JSON válido")

	assert.Equal(t, "2.0", spec["swagger"])
}

func TestSwaggerJSON_CubreLasRutasDelRouter(t *testing.T) {
	var spec struct {
		Paths map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(docs.SwaggerJSON, &spec))

	rutas := []string{
		"/signup",
		"/login",
		"/feedback",
		"/feedback/{id}",
		"/feedback/{id}/acknowledge",
		"/feedback/{id}/export-pdf",
		"/feedback/request",
		"/feedback_request/complete",
		"/manager/{id}/employees",
		"/manager/{id}/feedbacks/count",
		"/manager/{id}/team/response-rate",
		"/manager/{id}/feedbacks/average-sentiment",
		"/manager/{id}/feedbacks/pending-ack",
		"/manager/{id}/feedbacks/sentiment-trends",
		"/manager/{id}/feedbacks-given",
		"/manager/{id}/activities",
		"/employee/{id}/feedbacks/count",
		"/employee/{id}/feedbacks/pending-ack",
		"/employee/{id}/feedbacks/ack-rate",
		"/employee/{id}/feedbacks/average-sentiment",
		"/employee/{name}/feedbacks",
		"/activity-log",
		"/health",
	}
	for _, ruta := range rutas {
		assert.Contains(t, spec.Paths, ruta, "falta documentar %s", ruta)
	}
}
