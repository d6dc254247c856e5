package vets

import "vet-form/internal/domain/calendar"

// Etiquetas en alemán que muestra el formulario.

var DayLabels = map[calendar.Day]string{
	calendar.Mon: "Montag",
	calendar.Tue: "Dienstag",
	calendar.Wed: "Mittwoch",
	calendar.Thu: "Donnerstag",
	calendar.Fri: "Freitag",
	calendar.Sat: "Samstag",
	calendar.Sun: "Sonntag",
}

var TreatmentLabels = map[Treatment]string{
	TreatmentDogs:         "Hund",
	TreatmentCats:         "Katze",
	TreatmentHorses:       "Pferd",
	TreatmentSmallAnimals: "Kleintiere",
	TreatmentMisc:         "Sonstige",
}

var FormOfAddressLabels = map[FormOfAddress]string{
	FormOfAddressMr:           "Herr",
	FormOfAddressMs:           "Frau",
	FormOfAddressDivers:       "Divers",
	FormOfAddressNotSpecified: "Keine Angabe",
}

var TitleLabels = map[Title]string{
	TitleNotSpecified: "Keine Angabe",
	TitleDrMed:        "Dr. med.",
	TitleDrMedDent:    "Dr. med. dent.",
	TitleDrMedVent:    "Dr. med. vet.",
	TitleDrPhil:       "Dr. phil",
	TitleDrPaed:       "Dr. paed.",
	TitleDrRerNat:     "Dr. rer. nat.",
	TitleDrRerPol:     "Dr. rer. pol.",
	TitleDrIng:        "Dr. ing.",
}

// TreatmentLabel devuelve la etiqueta o el código si no es conocido.
func TreatmentLabel(code string) string {
	if l, ok := TreatmentLabels[Treatment(code)]; ok {
		return l
	}
	return code
}
