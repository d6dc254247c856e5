package vets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vet-form/internal/domain/calendar"
)

func nightShifts(t *testing.T, c *Converter) []EmergencyTime {
	t.Helper()
	// lunes 06.01 a viernes 10.01, lunes y miércoles 20:00 a 06:00
	ets, err := c.EmergencyTimesFromRequests(fullVet().EmergencyTimes)
	require.NoError(t, err)
	return ets
}

func TestEmergencySpans_NightShiftCrossesMidnight(t *testing.T) {
	c := NewConverter(calendar.DefaultPolicy())
	loc := c.Policy().Location
	at := func(day, hour int) time.Time { return time.Date(2025, 1, day, hour, 0, 0, 0, loc) }

	// la ventana empieza a mitad de la guardia del lunes y corta la del miércoles
	got := c.EmergencySpans(nightShifts(t, c), at(7, 0), at(9, 0))
	require.Len(t, got, 2)
	assert.True(t, got[0].From.Equal(at(7, 0)))
	assert.True(t, got[0].To.Equal(at(7, 6)))
	assert.True(t, got[1].From.Equal(at(8, 20)))
	assert.True(t, got[1].To.Equal(at(9, 0)))
}

func TestEmergencySpans_RespectsDatesAndDays(t *testing.T) {
	c := NewConverter(calendar.DefaultPolicy())
	loc := c.Policy().Location
	at := func(day, hour int) time.Time { return time.Date(2025, 1, day, hour, 0, 0, 0, loc) }

	got := c.EmergencySpans(nightShifts(t, c), at(1, 0), at(20, 0))
	require.Len(t, got, 2)
	assert.True(t, got[0].From.Equal(at(6, 20)))
	assert.True(t, got[0].To.Equal(at(7, 6)))
	assert.True(t, got[1].From.Equal(at(8, 20)))
	assert.Equal(t, 10*time.Hour, got[1].To.Sub(got[1].From))

	// martes: no hay guardia
	assert.Empty(t, c.EmergencySpans(nightShifts(t, c), at(7, 8), at(7, 19)))
	// ventana vacía
	assert.Nil(t, c.EmergencySpans(nightShifts(t, c), at(8, 0), at(8, 0)))
}
