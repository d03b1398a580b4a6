package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────────────────────
// Lectura del CSV de nómina
// ─────────────────────────────────────────────────────────────

func TestParseRoster_PuntoYComaYEncabezado(t *testing.T) {
	in := strings.NewReader(
		"name;email;company;role\n" +
			"Ana Gómez;ana@acme.com;Acme;employee\n" +
			"Carlos Ruiz;carlos@acme.com;Acme;manager\n")

	rows, err := parseRoster(in)
	require.NoError(t, err)

	require.Len(t, rows, 2, "el encabezado no cuenta como fila")
	assert.Equal(t, []string{"Ana Gómez", "ana@acme.com", "Acme", "employee"}, rows[0])
	assert.Equal(t, "Carlos Ruiz", rows[1][0])
}

func TestParseRoster_DecodificaISO88591(t *testing.T) {
	// "Muñoz" con ñ en Latin-1 (0xF1), como llega de los exports de RRHH.
	in := bytes.NewReader([]byte("Mu\xf1oz;m@acme.com;Acme;employee\n"))

	rows, err := parseRoster(in)
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, "Muñoz", rows[0][0])
}

func TestParseRoster_RechazaFilasConColumnasDeMas(t *testing.T) {
	in := strings.NewReader("Ana;ana@acme.com;Acme;employee;extra\n")

	_, err := parseRoster(in)
	assert.Error(t, err, "cada fila debe traer exactamente 4 columnas")
}

// ─────────────────────────────────────────────────────────────
// Generación del script SQL
// ─────────────────────────────────────────────────────────────

func TestBuildSeedSQL_InsertaEnLaColumnaPassword(t *testing.T) {
	rows := [][]string{{"Ana Gómez", "ana@acme.com", "Acme", "employee"}}
	var warn bytes.Buffer

	sql, n := buildSeedSQL(rows, "$2a$10$hash", &warn)

	assert.Equal(t, 1, n)
	// El esquema define la columna como password; cualquier otro nombre
	// haría fallar el script contra la base real.
	assert.Contains(t, sql, "INSERT INTO users (name, email, password, company, role)")
	assert.Contains(t, sql, "'ana@acme.com'")
	assert.Contains(t, sql, "'$2a$10$hash'")
	assert.Contains(t, sql, "ON CONFLICT (email) DO NOTHING")
	assert.Empty(t, warn.String())
}

func TestBuildSeedSQL_IgnoraRolesInvalidos(t *testing.T) {
	rows := [][]string{
		{"Ana", "ana@acme.com", "Acme", "employee"},
		{"Bot", "bot@acme.com", "Acme", "admin"},
	}
	var warn bytes.Buffer

	sql, n := buildSeedSQL(rows, "h", &warn)

	assert.Equal(t, 1, n)
	assert.NotContains(t, sql, "bot@acme.com")
	assert.Contains(t, warn.String(), "admin")
}

func TestQuote_EscapaComillasSimples(t *testing.T) {
	assert.Equal(t, "'O''Brien'", quote("O'Brien"))
	assert.Equal(t, "''", quote(""))
}
