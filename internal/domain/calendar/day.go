package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidDayToken = errors.New("invalid day token")
	ErrMalformedTime   = errors.New("malformed time string")
	ErrMalformedDate   = errors.New("malformed date string")
)

// Day es un día de la semana. El orden de las constantes es el orden canónico (lunes a domingo).
// @Enum Mon, Tue, Wed, Thu, Fri, Sat, Sun
type Day int

const (
	Mon Day = iota
	Tue
	Wed
	Thu
	Fri
	Sat
	Sun
)

// Days lista los siete días en orden canónico.
var Days = [7]Day{Mon, Tue, Wed, Thu, Fri, Sat, Sun}

var dayTokens = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// legacyDayTokens son los nombres completos en minúscula de la versión anterior del formulario.
var legacyDayTokens = [7]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

func (d Day) Valid() bool {
	return d >= Mon && d <= Sun
}

func (d Day) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Day(%d)", int(d))
	}
	return dayTokens[d]
}

// ParseDay acepta solo los tokens canónicos ("Mon".."Sun").
func ParseDay(s string) (Day, error) {
	for i, t := range dayTokens {
		if t == s {
			return Day(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDayToken, s)
}

// ParseLegacyDay acepta los nombres completos ("monday".."sunday").
// Solo lo usa la migración del esquema viejo.
func ParseLegacyDay(s string) (Day, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for i, t := range legacyDayTokens {
		if t == v {
			return Day(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDayToken, s)
}

// IsLegacyDayToken indica si s pertenece al set de tokens viejo.
func IsLegacyDayToken(s string) bool {
	_, err := ParseLegacyDay(s)
	return err == nil
}

// FromWeekday convierte time.Weekday (domingo = 0) a Day.
func FromWeekday(w time.Weekday) Day {
	return Day((int(w) + 6) % 7)
}

func (d Day) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDayToken, int(d))
	}
	return []byte(dayTokens[d]), nil
}

func (d *Day) UnmarshalText(b []byte) error {
	v, err := ParseDay(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// ParseDays convierte una secuencia de tokens; falla con el primer token desconocido.
func ParseDays(tokens []string) ([]Day, error) {
	out := make([]Day, 0, len(tokens))
	for _, t := range tokens {
		d, err := ParseDay(t)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// Tokens es la inversa de ParseDays.
func Tokens(days []Day) []string {
	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, d.String())
	}
	return out
}
