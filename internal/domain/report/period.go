// Package report contiene la lógica pura de agregación temporal: períodos
// válidos y construcción de la clave de bucket para cada granularidad.
package report

import (
	"fmt"
	"time"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
)

// Granularidades de agrupación soportadas.
const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// ValidPeriod indica si el token de período es una granularidad soportada.
func ValidPeriod(period string) bool {
	switch period {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return true
	}
	return false
}

// BucketKey devuelve la etiqueta del bucket temporal al que pertenece la fecha.
// Formatos: day "2025-05-28", week "2025-W22" (semana ISO sin padding),
// month "2025-05", year "2025". El orden lexicográfico de las claves coincide
// con el cronológico salvo en week de un mismo año (W9 > W10); los buckets
// se agrupan y ordenan por clave tal cual.
func BucketKey(period string, date time.Time) (string, error) {
	switch period {
	case PeriodDay:
		return date.Format("2006-01-02"), nil
	case PeriodWeek:
		year, week := date.ISOWeek()
		return fmt.Sprintf("%d-W%d", year, week), nil
	case PeriodMonth:
		return date.Format("2006-01"), nil
	case PeriodYear:
		return date.Format("2006"), nil
	}
	return "", domain.ErrInvalidPeriod
}
