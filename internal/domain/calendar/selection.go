package calendar

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// DaySelection es el estado de los checkboxes de días: siempre contiene los siete días.
type DaySelection [7]bool

func (s DaySelection) Has(d Day) bool {
	if !d.Valid() {
		return false
	}
	return s[d]
}

func (s *DaySelection) Set(d Day, selected bool) {
	if !d.Valid() {
		return
	}
	s[d] = selected
}

// Days devuelve los días seleccionados en orden canónico.
func (s DaySelection) Days() []Day {
	out := make([]Day, 0, len(Days))
	for _, d := range Days {
		if s[d] {
			out = append(out, d)
		}
	}
	return out
}

// SelectionFromDays marca como seleccionado cada día presente.
func SelectionFromDays(days []Day) DaySelection {
	var s DaySelection
	for _, d := range days {
		s.Set(d, true)
	}
	return s
}

// SelectionFromTokens parte de los siete días en false y marca cada token.
// Un token desconocido devuelve ErrInvalidDayToken.
func SelectionFromTokens(tokens []string) (DaySelection, error) {
	days, err := ParseDays(tokens)
	if err != nil {
		return DaySelection{}, err
	}
	return SelectionFromDays(days), nil
}

// MarshalJSON escribe los siete días en orden canónico: {"Mon":false,...}.
func (s DaySelection) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, d := range Days {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(d.String()))
		buf.WriteByte(':')
		buf.WriteString(strconv.FormatBool(s[d]))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON tolera días ausentes (quedan en false) pero no claves desconocidas.
func (s *DaySelection) UnmarshalJSON(b []byte) error {
	var raw map[string]bool
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	var out DaySelection
	for k, v := range raw {
		d, err := ParseDay(k)
		if err != nil {
			return err
		}
		out[d] = v
	}
	*s = out
	return nil
}
