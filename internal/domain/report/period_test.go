package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/report"
)

func TestValidPeriod(t *testing.T) {
	for _, p := range []string{"day", "week", "month", "year"} {
		assert.True(t, report.ValidPeriod(p), p)
	}
	for _, p := range []string{"", "hour", "quarter", "Day", "MONTH"} {
		assert.False(t, report.ValidPeriod(p), p)
	}
}

func TestBucketKey_Granularidades(t *testing.T) {
	date := time.Date(2025, 5, 28, 13, 45, 0, 0, time.UTC)

	cases := []struct {
		period string
		want   string
	}{
		{"day", "2025-05-28"},
		{"week", "2025-W22"},
		{"month", "2025-05"},
		{"year", "2025"},
	}
	for _, tc := range cases {
		got, err := report.BucketKey(tc.period, date)
		require.NoError(t, err, tc.period)
		assert.Equal(t, tc.want, got, tc.period)
	}
}

// La semana ISO puede pertenecer a otro año calendario: el 1 de enero de 2027
// cae en la semana 53 de 2026.
func TestBucketKey_SemanaISOCruzaAnio(t *testing.T) {
	date := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	got, err := report.BucketKey("week", date)
	require.NoError(t, err)
	assert.Equal(t, "2026-W53", got)
}

// Las claves de semana no llevan padding: semana 9 es "W9", no "W09".
func TestBucketKey_SemanaSinPadding(t *testing.T) {
	date := time.Date(2025, 2, 26, 0, 0, 0, 0, time.UTC)
	got, err := report.BucketKey("week", date)
	require.NoError(t, err)
	assert.Equal(t, "2025-W9", got)
}

func TestBucketKey_PeriodoInvalido(t *testing.T) {
	_, err := report.BucketKey("quarter", time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
}
