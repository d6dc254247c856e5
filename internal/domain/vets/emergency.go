package vets

import (
	"fmt"
	"time"

	"vet-form/internal/domain/calendar"

	"github.com/google/uuid"
)

// Converter convierte guardias entre el modelo, el wire format y el template del formulario.
// Reloj y generador de IDs son inyectables para tests.
type Converter struct {
	policy calendar.Policy
	now    func() time.Time
	newID  func() string
}

func NewConverter(policy calendar.Policy) *Converter {
	return &Converter{
		policy: policy,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

func (c *Converter) Policy() calendar.Policy {
	return c.policy
}

func (c *Converter) EmergencyTimeToRequest(et EmergencyTime) EmergencyTimeRequest {
	return EmergencyTimeRequest{
		StartDate: c.policy.FormatDate(et.StartDate),
		EndDate:   c.policy.FormatDate(et.EndDate),
		FromTime:  c.policy.FormatTime(et.FromTime),
		ToTime:    c.policy.FormatTime(et.ToTime),
		Days:      calendar.Tokens(et.Days),
	}
}

// RequestToEmergencyTime genera un ID nuevo y parsea cada campo.
// Falla con ErrMalformedDate, ErrMalformedTime o ErrInvalidDayToken.
func (c *Converter) RequestToEmergencyTime(req EmergencyTimeRequest) (EmergencyTime, error) {
	start, err := c.policy.ParseDate(req.StartDate)
	if err != nil {
		return EmergencyTime{}, fmt.Errorf("startDate: %w", err)
	}
	end, err := c.policy.ParseDate(req.EndDate)
	if err != nil {
		return EmergencyTime{}, fmt.Errorf("endDate: %w", err)
	}
	from, err := c.policy.ParseTime(req.FromTime)
	if err != nil {
		return EmergencyTime{}, fmt.Errorf("fromTime: %w", err)
	}
	to, err := c.policy.ParseTime(req.ToTime)
	if err != nil {
		return EmergencyTime{}, fmt.Errorf("toTime: %w", err)
	}
	days, err := calendar.ParseDays(req.Days)
	if err != nil {
		return EmergencyTime{}, fmt.Errorf("days: %w", err)
	}

	return EmergencyTime{
		ID:        c.newID(),
		StartDate: start,
		EndDate:   end,
		FromTime:  from,
		ToTime:    to,
		Days:      days,
	}, nil
}

// EmergencyTimesFromRequests convierte todas las guardias de un FormDataRequest.
func (c *Converter) EmergencyTimesFromRequests(reqs []EmergencyTimeRequest) ([]EmergencyTime, error) {
	out := make([]EmergencyTime, 0, len(reqs))
	for i, req := range reqs {
		et, err := c.RequestToEmergencyTime(req)
		if err != nil {
			return nil, fmt.Errorf("emergencyTimes[%d]: %w", i, err)
		}
		out = append(out, et)
	}
	return out, nil
}

// EmergencyTimeFromTemplate: fechas YYYY-MM-DD (inputs de fecha), horas HH:MM,
// días desde el mapa de selección.
func (c *Converter) EmergencyTimeFromTemplate(t EmergencyTimeTemplate) (EmergencyTime, error) {
	start, err := c.policy.ParseISODate(t.StartDate)
	if err != nil {
		return EmergencyTime{}, fmt.Errorf("startDate: %w", err)
	}
	end, err := c.policy.ParseISODate(t.EndDate)
	if err != nil {
		return EmergencyTime{}, fmt.Errorf("endDate: %w", err)
	}
	from, err := c.policy.ParseTime(t.FromTime)
	if err != nil {
		return EmergencyTime{}, fmt.Errorf("fromTime: %w", err)
	}
	to, err := c.policy.ParseTime(t.ToTime)
	if err != nil {
		return EmergencyTime{}, fmt.Errorf("toTime: %w", err)
	}

	return EmergencyTime{
		ID:        c.newID(),
		StartDate: start,
		EndDate:   end,
		FromTime:  from,
		ToTime:    to,
		Days:      t.Days.Days(),
	}, nil
}

// DefaultEmergencyTimeTemplate propone de lunes a viernes de la semana siguiente,
// desde la próxima hora en punto hasta una hora después, sin días marcados.
func (c *Converter) DefaultEmergencyTimeTemplate() EmergencyTimeTemplate {
	loc := c.policy.Location
	if loc == nil {
		loc = time.UTC
	}
	now := c.now().In(loc)

	// time.Weekday: domingo = 0. Desde el domingo el próximo lunes es mañana.
	offsetNextMonday := (7-int(now.Weekday()))%7 + 1
	fromDate := now.AddDate(0, 0, offsetNextMonday)
	toDate := now.AddDate(0, 0, offsetNextMonday+4)

	hour := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), 0, 0, 0, loc)
	fromTime := hour.Add(1 * time.Hour)
	toTime := hour.Add(2 * time.Hour)

	return EmergencyTimeTemplate{
		StartDate: calendar.FormatDate(fromDate),
		EndDate:   calendar.FormatDate(toDate),
		FromTime:  calendar.FormatTime(fromTime),
		ToTime:    calendar.FormatTime(toTime),
		Days:      calendar.DaySelection{},
	}
}
