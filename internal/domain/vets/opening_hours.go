package vets

import (
	"bytes"
	"encoding/json"
	"strconv"

	"vet-form/internal/domain/calendar"
)

type OpeningHoursInformation struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// OpeningHours tiene una entrada por día; nil = cerrado / sin datos.
type OpeningHours [7]*OpeningHoursInformation

func (o OpeningHours) Get(d calendar.Day) (OpeningHoursInformation, bool) {
	if !d.Valid() || o[d] == nil {
		return OpeningHoursInformation{}, false
	}
	return *o[d], true
}

func (o *OpeningHours) Set(d calendar.Day, info OpeningHoursInformation) {
	if !d.Valid() {
		return
	}
	o[d] = &info
}

func (o *OpeningHours) Clear(d calendar.Day) {
	if !d.Valid() {
		return
	}
	o[d] = nil
}

// MarshalJSON omite los días sin horario: el backend no acepta null.
func (o OpeningHours) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, d := range calendar.Days {
		if o[d] == nil {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false

		v, err := json.Marshal(o[d])
		if err != nil {
			return nil, err
		}
		buf.WriteString(strconv.Quote(d.String()))
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (o *OpeningHours) UnmarshalJSON(b []byte) error {
	var raw map[string]*OpeningHoursInformation
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	var out OpeningHours
	for k, v := range raw {
		d, err := calendar.ParseDay(k)
		if err != nil {
			return err
		}
		out[d] = v
	}
	*o = out
	return nil
}
