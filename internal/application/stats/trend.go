package stats

import (
	"time"

	"github.com/shopspring/decimal"
)

// roundScore redondea a 2 decimales el promedio 1-5 que agrega la base.
// El puntaje por etiqueta (Positive=5, Neutral=3, Negative=1, desconocido=3,
// sensible a mayúsculas) vive en el CASE del repositorio de estadísticas.
func roundScore(avg decimal.Decimal) float64 {
	return avg.Round(2).InexactFloat64()
}

// percentage devuelve part/total como porcentaje con 2 decimales; total=0 → 0.
func percentage(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return decimal.NewFromInt(part).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(total)).
		Round(2).
		InexactFloat64()
}

// TrailingMonths devuelve las 12 etiquetas YYYY-MM de la tendencia, de la más
// antigua a la más reciente (la actual incluida).
//
// Cada paso hacia atrás son 30 días fijos desde el primero del mes actual,
// NO meses de calendario: en rachas de meses de 31 días las etiquetas se
// desfasan y pueden saltarse un mes. Es el mismo cálculo del sistema
// original y se conserva a propósito; los tests lo señalan.
func TrailingMonths(now time.Time) []string {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	months := make([]string, 0, 12)
	for i := 11; i >= 0; i-- {
		months = append(months, first.AddDate(0, 0, -30*i).Format("2006-01"))
	}
	return months
}
