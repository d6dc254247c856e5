package vets

import (
	"errors"
	"fmt"
	"net/mail"
	"slices"
	"strings"

	"vet-form/internal/domain/calendar"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError junta todos los problemas de un FormDataRequest.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid input: " + strings.Join(e.Problems, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// Normalize recorta espacios y completa el timezone por defecto.
func Normalize(r FormDataRequest) FormDataRequest {
	r.ClinicName = strings.TrimSpace(r.ClinicName)
	r.NameInformation.FirstName = strings.TrimSpace(r.NameInformation.FirstName)
	r.NameInformation.LastName = strings.TrimSpace(r.NameInformation.LastName)

	a := &r.Location.Address
	a.Street = strings.TrimSpace(a.Street)
	a.Number = strings.TrimSpace(a.Number)
	a.City = strings.TrimSpace(a.City)
	a.ZipCode = strings.TrimSpace(a.ZipCode)

	contacts := make([]ContactEntry, 0, len(r.Contacts))
	for _, c := range r.Contacts {
		c.Type = strings.TrimSpace(c.Type)
		c.Value = strings.TrimSpace(c.Value)
		contacts = append(contacts, c)
	}
	r.Contacts = contacts

	if r.Treatments == nil {
		r.Treatments = []string{}
	}
	r.OtherTreatments = strings.TrimSpace(r.OtherTreatments)
	r.TreatmentNote = strings.TrimSpace(r.TreatmentNote)

	if strings.TrimSpace(r.Timezone) == "" {
		r.Timezone = calendar.DefaultTimezone
	}
	return r
}

// Validate aplica las mismas reglas que el backend.
// Las guardias deben parsear con la policy y cumplir startDate <= endDate.
func Validate(r FormDataRequest, policy calendar.Policy) error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if r.ClinicName == "" {
		add("clinicName is required")
	}
	if r.NameInformation.FirstName == "" {
		add("nameInformation.firstName is required")
	}
	if r.NameInformation.LastName == "" {
		add("nameInformation.lastName is required")
	}
	if fa := r.NameInformation.FormOfAddress; fa != "" && !slices.Contains(FormOfAddresses, fa) {
		add("nameInformation.formOfAddress %q is not supported", fa)
	}
	if t := r.NameInformation.Title; t != "" && !slices.Contains(Titles, t) {
		add("nameInformation.title %q is not supported", t)
	}

	a := r.Location.Address
	if a.Street == "" {
		add("location.address.street is required")
	}
	if a.City == "" {
		add("location.address.city is required")
	}
	if a.ZipCode == "" {
		add("location.address.zipCode is required")
	}

	for i, c := range r.Contacts {
		if !slices.Contains(ContactTypes, c.Type) {
			add("contacts[%d].type %q is not supported", i, c.Type)
			continue
		}
		if c.Type == ContactTypeEmail && c.Value != "" {
			if _, err := mail.ParseAddress(c.Value); err != nil {
				add("contacts[%d].value is not a valid email address", i)
			}
		}
	}

	for i, t := range r.Treatments {
		if !slices.Contains(Treatments, Treatment(t)) {
			add("treatments[%d] %q is not supported", i, t)
		}
	}

	for _, d := range calendar.Days {
		info, ok := r.OpeningHours.Get(d)
		if !ok {
			continue
		}
		cmp, err := calendar.CompareTime(info.From, info.To)
		if err != nil {
			add("openingHours.%s: %v", d, err)
			continue
		}
		if cmp >= 0 {
			add("openingHours.%s: from must be before to", d)
		}
	}

	conv := NewConverter(policy)
	for i, req := range r.EmergencyTimes {
		et, err := conv.RequestToEmergencyTime(req)
		if err != nil {
			add("emergencyTimes[%d].%v", i, err)
			continue
		}
		if et.EndDate.Before(et.StartDate) {
			add("emergencyTimes[%d]: startDate must not be after endDate", i)
		}
	}

	if r.Timezone != calendar.DefaultTimezone {
		add("timezone %q is not supported", r.Timezone)
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
