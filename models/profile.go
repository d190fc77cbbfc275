package models

// ClientProfile is the payload sent to IntakeQ's client-creation endpoint.
// Field names follow IntakeQ's schema exactly; optional fields are omitted
// when empty so the provider keeps its own defaults.
type ClientProfile struct {
	FirstName   string `json:"FirstName"`
	LastName    string `json:"LastName"`
	Email       string `json:"Email"`
	Phone       string `json:"Phone,omitempty"`
	MobilePhone string `json:"MobilePhone,omitempty"`
	Gender      string `json:"Gender,omitempty"`

	// Milliseconds since epoch, UTC. Nil when the submitted date did not
	// parse in any supported format.
	DateOfBirth *int64 `json:"DateOfBirth,omitempty"`

	StreetAddress string `json:"StreetAddress,omitempty"`
	City          string `json:"City,omitempty"`
	State         string `json:"State,omitempty"`
	PostalCode    string `json:"PostalCode,omitempty"`
	Country       string `json:"Country,omitempty"`

	ExternalClientID      string `json:"ExternalClientId,omitempty"`
	AdditionalInformation string `json:"AdditionalInformation,omitempty"`

	// Populated only for insurance clients.
	PrimaryInsuranceCompany           string `json:"PrimaryInsuranceCompany,omitempty"`
	PrimaryInsurancePolicyNumber      string `json:"PrimaryInsurancePolicyNumber,omitempty"`
	PrimaryInsuranceGroupNumber       string `json:"PrimaryInsuranceGroupNumber,omitempty"`
	PrimaryInsuranceHolderName        string `json:"PrimaryInsuranceHolderName,omitempty"`
	PrimaryInsuranceHolderDateOfBirth *int64 `json:"PrimaryInsuranceHolderDateOfBirth,omitempty"`
	PrimaryRelationshipToInsured      string `json:"PrimaryRelationshipToInsured,omitempty"`

	CustomFields []CustomField `json:"CustomFields,omitempty"`
}

// CustomField carries one provider custom-field entry. FieldId is the opaque
// code IntakeQ assigned to the field in the practice settings.
type CustomField struct {
	FieldID string `json:"FieldId"`
	Value   string `json:"Value"`
}
