package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

const (
	ISODateLayout = "2006-01-02"
	ClockLayout   = "15:04"

	// Formato "medium" de fecha y "short" de hora en de-DE.
	GermanDateLayout = "02.01.2006"
	GermanTimeLayout = "15:04"

	DefaultTimezone = "Europe/Berlin"
)

// Policy fija locale y zona horaria para formatear/parsear fechas y horas del wire format.
type Policy struct {
	Location   *time.Location
	DateLayout string
	TimeLayout string
}

// DefaultPolicy: Europe/Berlin, fechas DD.MM.YYYY, horas HH:MM.
func DefaultPolicy() Policy {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		loc = time.FixedZone("CET", 3600)
	}
	return Policy{
		Location:   loc,
		DateLayout: GermanDateLayout,
		TimeLayout: GermanTimeLayout,
	}
}

func (p Policy) location() *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}

func (p Policy) dateLayout() string {
	if p.DateLayout == "" {
		return GermanDateLayout
	}
	return p.DateLayout
}

func (p Policy) timeLayout() string {
	if p.TimeLayout == "" {
		return GermanTimeLayout
	}
	return p.TimeLayout
}

func (p Policy) FormatDate(t time.Time) string {
	return t.In(p.location()).Format(p.dateLayout())
}

// FormatTime usa los campos de reloj de t tal como vienen. Una hora del día no
// se convierte de zona: "09:00" de ParseTime y de Policy.ParseTime es la misma hora.
func (p Policy) FormatTime(t time.Time) string {
	return t.Format(p.timeLayout())
}

// ParseDate parsea una fecha del wire format (DD.MM.YYYY por defecto) a medianoche en la zona de la policy.
func (p Policy) ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(p.dateLayout(), strings.TrimSpace(s), p.location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}
	return t, nil
}

// ParseISODate parsea YYYY-MM-DD (formato de los inputs de fecha del formulario).
func (p Policy) ParseISODate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(ISODateLayout, strings.TrimSpace(s), p.location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}
	return t, nil
}

// ParseTime parsea una hora del wire format y la ubica sobre el 1970-01-01 en la zona de la policy.
func (p Policy) ParseTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(p.timeLayout(), strings.TrimSpace(s), p.location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	return onEpoch(t.Hour(), t.Minute(), p.location()), nil
}

// StartOfDay trunca t al día (en la zona de la policy).
func (p Policy) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location())
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location())
}

// FormatDate devuelve YYYY-MM-DD con el mes en base 1.
func FormatDate(t time.Time) string {
	return t.Format(ISODateLayout)
}

// FormatTime devuelve HH:MM (24h) según los campos locales de t.
func FormatTime(t time.Time) string {
	return t.Format(ClockLayout)
}

// ParseTime convierte "HH:MM" en una hora sobre 1970-01-01 UTC. La fecha no se compara nunca.
func ParseTime(s string) (time.Time, error) {
	h, m, err := parseClock(s)
	if err != nil {
		return time.Time{}, err
	}
	return onEpoch(h, m, time.UTC), nil
}

// CompareTime compara dos "HH:MM" por hora y luego minuto: -1, 0 o 1.
// Los segundos ("HH:MM:SS") se ignoran.
func CompareTime(a, b string) (int, error) {
	h1, m1, err := parseClock(a)
	if err != nil {
		return 0, err
	}
	h2, m2, err := parseClock(b)
	if err != nil {
		return 0, err
	}

	switch {
	case h1 < h2:
		return -1, nil
	case h1 > h2:
		return 1, nil
	case m1 < m2:
		return -1, nil
	case m1 > m2:
		return 1, nil
	}
	return 0, nil
}

func onEpoch(hour, minute int, loc *time.Location) time.Time {
	return time.Date(1970, time.January, 1, hour, minute, 0, 0, loc)
}

func parseClock(s string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}

	hour, err = clockField(parts[0], 23)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	minute, err = clockField(parts[1], 59)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	if len(parts) == 3 {
		if _, err := clockField(parts[2], 59); err != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
		}
	}
	return hour, minute, nil
}

func clockField(s string, max int) (int, error) {
	if len(s) == 0 || len(s) > 2 {
		return 0, strconv.ErrSyntax
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 || n > max {
		return 0, strconv.ErrRange
	}
	return n, nil
}
