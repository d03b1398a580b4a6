// seed genera un script SQL para poblar la tabla users a partir de un CSV
// de nómina separado por punto y coma (name;email;company;role). Los
// exports de RRHH llegan en ISO-8859-1, no UTF-8.
//
// Uso: go run ./cmd/seed [ruta/roster.csv]
// Por defecto busca roster.csv en el directorio actual.
// Escribe: seed_users.sql
//
// Todos los usuarios reciben la misma contraseña inicial (SEED_PASSWORD,
// por defecto "changeme123"), hasheada con bcrypt.
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

func main() {
	csvPath := "roster.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	rows, err := parseRoster(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = "changeme123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hashear contraseña: %v\n", err)
		os.Exit(1)
	}

	sql, n := buildSeedSQL(rows, string(hash), os.Stderr)

	out := "seed_users.sql"
	if err := os.WriteFile(out, []byte(sql), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Escrito %s (%d usuarios)\n", out, n)
}

// parseRoster lee el CSV de nómina (punto y coma, ISO-8859-1) y
// descarta la fila de encabezado si viene.
func parseRoster(f io.Reader) ([][]string, error) {
	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.Comma = ';'
	r.FieldsPerRecord = 4
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) > 0 && strings.EqualFold(rows[0][0], "name") {
		rows = rows[1:]
	}
	return rows, nil
}

// buildSeedSQL arma el script de inserción. Devuelve el SQL y la cantidad
// de filas efectivamente incluidas; las de rol inválido se reportan en warn.
func buildSeedSQL(rows [][]string, hash string, warn io.Writer) (string, int) {
	var b strings.Builder
	b.WriteString("-- Generado por cmd/seed. No editar a mano.\n")
	b.WriteString("BEGIN;\n")
	n := 0
	for _, row := range rows {
		name, email, company, role := row[0], row[1], row[2], row[3]
		if role != "manager" && role != "employee" {
			fmt.Fprintf(warn, "Fila ignorada (rol inválido %q): %s\n", role, email)
			continue
		}
		b.WriteString(fmt.Sprintf(
			"INSERT INTO users (name, email, password, company, role) VALUES (%s, %s, %s, %s, %s) ON CONFLICT (email) DO NOTHING;\n",
			quote(name), quote(email), quote(hash), quote(company), quote(role),
		))
		n++
	}
	b.WriteString("COMMIT;\n")
	return b.String(), n
}

// quote escapa comillas simples estilo SQL.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
