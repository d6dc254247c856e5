package vets

// VetToFormDataRequest aplana el contacto en dos entradas fijas (teléfono y email,
// en ese orden) y anida la dirección bajo location.address. El resto se copia tal cual.
func VetToFormDataRequest(v Vet) FormDataRequest {
	return FormDataRequest{
		ClinicName:      v.Contact.ClinicName,
		NameInformation: v.Name,
		Contacts: []ContactEntry{
			{Type: ContactTypeLandline, Value: v.Contact.Telephone},
			{Type: ContactTypeEmail, Value: v.Contact.Email},
		},
		Location:        Location{Address: v.Address},
		Treatments:      v.Treatments.Treatments,
		OtherTreatments: v.Treatments.Other,
		TreatmentNote:   v.Treatments.Note,
		OpeningHours:    v.OpeningHours,
		EmergencyTimes:  v.EmergencyTimes,
		Timezone:        v.Timezone,
	}
}

// FormDataRequestToVet es la inversa de VetToFormDataRequest.
// Si falta una entrada de contacto, el campo queda en "" (conversión con pérdida).
func FormDataRequestToVet(r FormDataRequest) Vet {
	telephone, _ := r.ContactValue(ContactTypeLandline)
	email, _ := r.ContactValue(ContactTypeEmail)

	return Vet{
		Contact: Contact{
			ClinicName: r.ClinicName,
			Email:      email,
			Telephone:  telephone,
		},
		Name:    r.NameInformation,
		Address: r.Location.Address,
		Treatments: TreatmentInformation{
			Treatments: r.Treatments,
			Other:      r.OtherTreatments,
			Note:       r.TreatmentNote,
		},
		OpeningHours:   r.OpeningHours,
		EmergencyTimes: r.EmergencyTimes,
		Timezone:       r.Timezone,
	}
}
