package vets

// Discriminadores de ContactEntry.Type.
const (
	ContactTypeLandline = "tel:landline"
	ContactTypeMobile   = "tel:mobile"
	ContactTypeEmail    = "email"
	ContactTypeWebsite  = "website"
)

var ContactTypes = []string{
	ContactTypeLandline,
	ContactTypeMobile,
	ContactTypeEmail,
	ContactTypeWebsite,
}

type ContactEntry struct {
	Type  string `json:"type" enums:"tel:landline,tel:mobile,email,website"`
	Value string `json:"value"`
}

type Location struct {
	Address Address `json:"address"`
}

// EmergencyTimeRequest es la forma wire de EmergencyTime: fechas DD.MM.YYYY,
// horas HH:MM, días como tokens "Mon".."Sun".
type EmergencyTimeRequest struct {
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	FromTime  string   `json:"fromTime"`
	ToTime    string   `json:"toTime"`
	Days      []string `json:"days"`
}

// FormDataRequest es el JSON que se intercambia con el backend.
type FormDataRequest struct {
	ClinicName      string                 `json:"clinicName"`
	NameInformation NameInformation        `json:"nameInformation"`
	Contacts        []ContactEntry         `json:"contacts"`
	Location        Location               `json:"location"`
	Treatments      []string               `json:"treatments"`
	OtherTreatments string                 `json:"otherTreatments,omitempty"`
	TreatmentNote   string                 `json:"treatmentNote,omitempty"`
	OpeningHours    OpeningHours           `json:"openingHours" swaggertype:"object"`
	EmergencyTimes  []EmergencyTimeRequest `json:"emergencyTimes,omitempty"`
	Timezone        string                 `json:"timezone"`
}

// ContactValue busca la primera entrada con el discriminador dado.
func (r FormDataRequest) ContactValue(contactType string) (string, bool) {
	for _, c := range r.Contacts {
		if c.Type == contactType {
			return c.Value, true
		}
	}
	return "", false
}
