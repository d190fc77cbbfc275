package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientRecordDecodesLooseValues(t *testing.T) {
	payload := `{
		"first_name": "Jo",
		"last_name": "Lee",
		"email": "jo@x.com",
		"payment_type": "insurance",
		"copay": 25,
		"deductible": "500",
		"age": 29,
		"phq9_scores": {"feeling_down": 2, "poor_appetite": "1"},
		"therapist_specialization": ["Anxiety", "Trauma"],
		"utm": {"utm_source": "ig"}
	}`

	var rec ClientRecord
	require.NoError(t, json.Unmarshal([]byte(payload), &rec))
	assert.Equal(t, "Jo", rec.FirstName)
	assert.Equal(t, float64(25), rec.Copay)
	assert.Equal(t, "500", rec.Deductible)
	assert.Len(t, rec.PHQ9Scores, 2)
	assert.Equal(t, []string{"Anxiety", "Trauma"}, rec.TherapistSpecialization)
}

func TestVerificationDataMalformedIgnored(t *testing.T) {
	for _, payload := range []string{
		`{"verification_data": "unexpected string"}`,
		`{"verification_data": ["unexpected", "array"]}`,
		`{"verification_data": {"subscriber": "not an object"}}`,
	} {
		var rec ClientRecord
		require.NoError(t, json.Unmarshal([]byte(payload), &rec), "payload %s", payload)
		if rec.VerificationData != nil {
			assert.Nil(t, rec.VerificationData.Subscriber, "payload %s", payload)
			assert.Nil(t, rec.VerificationData.Benefits, "payload %s", payload)
		}
	}
}

func TestVerificationDataWellFormed(t *testing.T) {
	payload := `{"verification_data": {
		"subscriber": {"firstName": "Ann", "lastName": "Lee", "memberId": "M1"},
		"benefits": {"copay": "25", "deductible": "500"}
	}}`

	var rec ClientRecord
	require.NoError(t, json.Unmarshal([]byte(payload), &rec))
	require.NotNil(t, rec.VerificationData)
	require.NotNil(t, rec.VerificationData.Subscriber)
	assert.Equal(t, "Ann", rec.VerificationData.Subscriber.FirstName)
	require.NotNil(t, rec.VerificationData.Benefits)
	assert.Equal(t, "25", rec.VerificationData.Benefits.Copay)
}

func TestClientProfileOmitsEmptyOptionalFields(t *testing.T) {
	b, err := json.Marshal(ClientProfile{FirstName: "Jo", LastName: "Lee", Email: "jo@x.com"})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.NotContains(t, decoded, "DateOfBirth")
	assert.NotContains(t, decoded, "CustomFields")
	assert.NotContains(t, decoded, "PrimaryInsuranceCompany")
	assert.Contains(t, decoded, "FirstName")
}
