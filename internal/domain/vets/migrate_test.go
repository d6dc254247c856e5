package vets

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vet-form/internal/domain/calendar"
)

func TestDecodeFormDataRequest_Current(t *testing.T) {
	in := VetToFormDataRequest(fullVet())
	b, err := json.Marshal(in)
	require.NoError(t, err)

	got, version, err := DecodeFormDataRequest(b)
	require.NoError(t, err)
	assert.Equal(t, SchemaCurrent, version)
	assert.Equal(t, in, got)
}

func TestDecodeFormDataRequest_Legacy(t *testing.T) {
	cases := []struct {
		name string
		body string
		zip  string
	}{
		{
			name: "postCode",
			body: `{"clinicName":"A","location":{"address":{"street":"S","city":"C","postCode":"01067"}},"openingHours":{}}`,
			zip:  "01067",
		},
		{
			name: "numeric zipCode",
			body: `{"clinicName":"A","location":{"address":{"street":"S","city":"C","zipCode":80331}},"openingHours":{}}`,
			zip:  "80331",
		},
		{
			name: "full day names",
			body: `{"clinicName":"A","location":{"address":{"zipCode":"50667"}},
				"openingHours":{"friday":{"from":"09:00","to":"17:00"}},
				"emergencyTimes":[{"startDate":"01.01.2025","endDate":"02.01.2025","fromTime":"20:00","toTime":"22:00","days":["monday","Tue"]}]}`,
			zip: "50667",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, version, err := DecodeFormDataRequest([]byte(tc.body))
			require.NoError(t, err)
			assert.Equal(t, SchemaLegacy, version)
			assert.Equal(t, tc.zip, got.Location.Address.ZipCode)
		})
	}

	got, _, err := DecodeFormDataRequest([]byte(cases[2].body))
	require.NoError(t, err)
	fri, ok := got.OpeningHours.Get(calendar.Fri)
	require.True(t, ok)
	assert.Equal(t, OpeningHoursInformation{From: "09:00", To: "17:00"}, fri)
	assert.Equal(t, []string{"Mon", "Tue"}, got.EmergencyTimes[0].Days)
}

func TestDecodeFormDataRequest_InvalidDayToken(t *testing.T) {
	_, _, err := DecodeFormDataRequest([]byte(`{"openingHours":{"Xyz":{"from":"08:00","to":"09:00"}}}`))
	assert.ErrorIs(t, err, calendar.ErrInvalidDayToken)

	_, _, err = DecodeFormDataRequest([]byte(`{"emergencyTimes":[{"days":["Mon",3]}]}`))
	assert.ErrorIs(t, err, calendar.ErrInvalidDayToken)
}

func TestDecodeFormDataRequest_Conflicts(t *testing.T) {
	_, _, err := DecodeFormDataRequest([]byte(`{"location":{"address":{"postCode":10115,"zipCode":"20095"}}}`))
	assert.ErrorIs(t, err, ErrSchemaConflict)

	_, _, err = DecodeFormDataRequest([]byte(`{"openingHours":{"Mon":{"from":"08:00","to":"12:00"},"monday":{"from":"14:00","to":"18:00"}}}`))
	assert.ErrorIs(t, err, ErrSchemaConflict)

	// mismo valor en ambas formas: no hay nada que decidir
	got, version, err := DecodeFormDataRequest([]byte(`{"location":{"address":{"postCode":10115,"zipCode":"10115"}}}`))
	require.NoError(t, err)
	assert.Equal(t, SchemaLegacy, version)
	assert.Equal(t, "10115", got.Location.Address.ZipCode)
}

func TestOpeningHours_StrictJSONRejectsLegacy(t *testing.T) {
	var oh OpeningHours
	err := json.Unmarshal([]byte(`{"monday":{"from":"08:00","to":"09:00"}}`), &oh)
	assert.ErrorIs(t, err, calendar.ErrInvalidDayToken)
}

func TestOpeningHours_MarshalOmitsClosedDays(t *testing.T) {
	var oh OpeningHours
	oh.Set(calendar.Tue, OpeningHoursInformation{From: "08:00", To: "12:00"})
	oh.Set(calendar.Sat, OpeningHoursInformation{From: "09:00", To: "11:00"})

	b, err := json.Marshal(oh)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Tue":{"from":"08:00","to":"12:00"},"Sat":{"from":"09:00","to":"11:00"}}`, string(b))

	empty, err := json.Marshal(OpeningHours{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(empty))
}
