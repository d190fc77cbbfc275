package models

// MandatoryFormRequest is the legacy form-notification payload. The client is
// addressed either by provider id or by name+email.
type MandatoryFormRequest struct {
	PaymentType      string `json:"payment_type"`
	ClientID         string `json:"client_id"`
	ClientName       string `json:"client_name"`
	ClientEmail      string `json:"client_email"`
	ClientPhone      string `json:"client_phone"`
	PractitionerID   string `json:"practitioner_id"`
	ExternalClientID string `json:"external_client_id"`
}

// MandatoryFormResponse acknowledges a form-notification request.
type MandatoryFormResponse struct {
	IntakeID  string `json:"intake_id"`
	IntakeURL string `json:"intake_url,omitempty"`
	ClientID  string `json:"client_id,omitempty"`
	Status    string `json:"status"`
}
