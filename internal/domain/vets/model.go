package vets

import (
	"time"

	"vet-form/internal/domain/calendar"
)

// FormOfAddress define la forma de tratamiento.
// @Enum mr, ms, divers, not_specified
type FormOfAddress string

const (
	FormOfAddressMr           FormOfAddress = "mr"
	FormOfAddressMs           FormOfAddress = "ms"
	FormOfAddressDivers       FormOfAddress = "divers"
	FormOfAddressNotSpecified FormOfAddress = "not_specified"
)

var FormOfAddresses = []FormOfAddress{
	FormOfAddressMr,
	FormOfAddressMs,
	FormOfAddressDivers,
	FormOfAddressNotSpecified,
}

// Title define el título académico.
type Title string

const (
	TitleNotSpecified Title = "not_specified"
	TitleDrMed        Title = "dr_med"
	TitleDrMedDent    Title = "dr_med_dent"
	TitleDrMedVent    Title = "dr_med_vent"
	TitleDrPhil       Title = "dr_phil"
	TitleDrPaed       Title = "dr_paed"
	TitleDrRerNat     Title = "dr_rer_nat"
	TitleDrRerPol     Title = "dr_rer_pol"
	TitleDrIng        Title = "dr_ing"
)

var Titles = []Title{
	TitleNotSpecified,
	TitleDrMed,
	TitleDrMedDent,
	TitleDrMedVent,
	TitleDrPhil,
	TitleDrPaed,
	TitleDrRerNat,
	TitleDrRerPol,
	TitleDrIng,
}

// Treatment es el código de una categoría de animales que atiende la clínica.
type Treatment string

const (
	TreatmentDogs         Treatment = "dogs"
	TreatmentCats         Treatment = "cats"
	TreatmentHorses       Treatment = "horses"
	TreatmentSmallAnimals Treatment = "small_animals"
	TreatmentMisc         Treatment = "misc"
)

var Treatments = []Treatment{
	TreatmentDogs,
	TreatmentCats,
	TreatmentHorses,
	TreatmentSmallAnimals,
	TreatmentMisc,
}

// TreatmentCodes devuelve los códigos como strings (lo que expone GET /treatments).
func TreatmentCodes() []string {
	out := make([]string, 0, len(Treatments))
	for _, t := range Treatments {
		out = append(out, string(t))
	}
	return out
}

type Contact struct {
	ClinicName string `json:"clinicName"`
	Email      string `json:"email"`
	Telephone  string `json:"telephone"`
}

type NameInformation struct {
	FormOfAddress FormOfAddress `json:"formOfAddress,omitempty"`
	Title         Title         `json:"title,omitempty"`
	FirstName     string        `json:"firstName"`
	LastName      string        `json:"lastName"`
}

type Address struct {
	Street  string `json:"street"`
	Number  string `json:"number"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
}

type TreatmentInformation struct {
	Treatments []string `json:"treatments"`
	Other      string   `json:"other,omitempty"`
	Note       string   `json:"note,omitempty"`
}

// Vet es el perfil de la clínica tal como lo edita el formulario.
type Vet struct {
	Contact        Contact                `json:"contact"`
	Name           NameInformation        `json:"name"`
	Address        Address                `json:"address"`
	Treatments     TreatmentInformation   `json:"treatments"`
	OpeningHours   OpeningHours           `json:"openingHours"`
	EmergencyTimes []EmergencyTimeRequest `json:"emergencyTimes,omitempty"`
	Timezone       string                 `json:"timezone"`
}

// EmergencyTime es una franja de guardia recurrente: entre StartDate y EndDate,
// solo en Days, de FromTime a ToTime. Las fechas tienen precisión de día y las
// horas viven sobre 1970-01-01.
type EmergencyTime struct {
	ID        string
	StartDate time.Time
	EndDate   time.Time
	FromTime  time.Time
	ToTime    time.Time
	Days      []calendar.Day
}

// EmergencyTimeTemplate es el estado del formulario antes de crear la EmergencyTime.
// Fechas en YYYY-MM-DD, horas en HH:MM.
type EmergencyTimeTemplate struct {
	StartDate string                `json:"startDate"`
	EndDate   string                `json:"endDate"`
	FromTime  string                `json:"fromTime"`
	ToTime    string                `json:"toTime"`
	Days      calendar.DaySelection `json:"days"`
}
