package vets

import (
	"sort"
	"time"

	"vet-form/internal/domain/calendar"
)

// TimeSpan es un intervalo concreto de guardia.
type TimeSpan struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// EmergencySpans expande las guardias a intervalos concretos que tocan [lo, hi),
// recortados a la ventana y ordenados por inicio. Si toTime <= fromTime la guardia
// termina al día siguiente.
func (c *Converter) EmergencySpans(ets []EmergencyTime, lo, hi time.Time) []TimeSpan {
	loc := c.policy.Location
	if loc == nil {
		loc = time.UTC
	}
	if !hi.After(lo) {
		return nil
	}

	// una guardia nocturna del día anterior puede entrar en la ventana
	first := c.policy.StartOfDay(lo).AddDate(0, 0, -1)
	last := c.policy.StartOfDay(hi)

	var out []TimeSpan
	for _, et := range ets {
		days := calendar.SelectionFromDays(et.Days)
		start := c.policy.StartOfDay(et.StartDate)
		end := c.policy.StartOfDay(et.EndDate)
		if start.Before(first) {
			start = first
		}
		if end.After(last) {
			end = last
		}

		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			if !days.Has(calendar.FromWeekday(d.Weekday())) {
				continue
			}
			from := time.Date(d.Year(), d.Month(), d.Day(), et.FromTime.Hour(), et.FromTime.Minute(), 0, 0, loc)
			to := time.Date(d.Year(), d.Month(), d.Day(), et.ToTime.Hour(), et.ToTime.Minute(), 0, 0, loc)
			if !to.After(from) {
				to = to.AddDate(0, 0, 1)
			}
			if !to.After(lo) || !from.Before(hi) {
				continue
			}
			if from.Before(lo) {
				from = lo
			}
			if to.After(hi) {
				to = hi
			}
			out = append(out, TimeSpan{From: from, To: to})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].From.Equal(out[j].From) {
			return out[i].To.Before(out[j].To)
		}
		return out[i].From.Before(out[j].From)
	})
	return out
}
