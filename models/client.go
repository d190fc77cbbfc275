package models

import "encoding/json"

// ClientRecord is the client-intake submission received from the upstream
// survey application. Every field is optional on the wire; the zero value
// means the field was not submitted. Numeric-ish fields arrive as either
// JSON numbers or strings depending on which survey version produced them,
// so they are kept as interface{} and stringified by the payload builder.
type ClientRecord struct {
	// Identity and contact.
	PreferredName string `json:"preferred_name"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	MobilePhone   string `json:"mobile_phone"`
	DateOfBirth   string `json:"date_of_birth"`
	Gender        string `json:"gender"`

	// Address.
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	PostalCode    string `json:"postal_code"`
	Country       string `json:"country"`

	// Submission tracking.
	ResponseID  string                 `json:"response_id"`
	PaymentType string                 `json:"payment_type"`
	PromoCode   string                 `json:"promo_code"`
	ReferredBy  string                 `json:"referred_by"`
	UTM         map[string]interface{} `json:"utm"`

	// Demographics and background.
	Age           interface{} `json:"age"`
	University    string      `json:"university"`
	RaceEthnicity []string    `json:"race_ethnicity"`

	// Mental health screening.
	PHQ9Scores map[string]interface{} `json:"phq9_scores"`
	GAD7Scores map[string]interface{} `json:"gad7_scores"`
	PHQ9Total  interface{}            `json:"phq9_total"`
	GAD7Total  interface{}            `json:"gad7_total"`

	// Substance use screening.
	AlcoholFrequency           string `json:"alcohol_frequency"`
	RecreationalDrugsFrequency string `json:"recreational_drugs_frequency"`

	// Therapist preferences.
	TherapistGenderPreference string   `json:"therapist_gender_preference"`
	TherapistSpecialization   []string `json:"therapist_specialization"`
	LivedExperiences          []string `json:"lived_experiences"`
	TherapistName             string   `json:"therapist_name"`
	WhatBringsYou             string   `json:"what_brings_you"`

	// Safety and matching.
	SuicidalThoughts   string `json:"suicidal_thoughts"`
	SafetyScreening    string `json:"safety_screening"`
	MatchingPreference string `json:"matching_preference"`

	// Emergency contact.
	EmergencyContactName  string `json:"emergency_contact_name"`
	EmergencyContactPhone string `json:"emergency_contact_phone"`

	// Insurance.
	InsuranceProvider                 string      `json:"insurance_provider"`
	InsuranceMemberID                 string      `json:"insurance_member_id"`
	InsuranceGroupNumber              string      `json:"insurance_group_number"`
	InsurancePolicyHolderName         string      `json:"insurance_policy_holder_name"`
	InsurancePolicyHolderDOB          string      `json:"insurance_policy_holder_dob"`
	InsurancePolicyHolderRelationship string      `json:"insurance_policy_holder_relationship"`
	InsuranceVerified                 interface{} `json:"insurance_verified"`

	// Benefit amounts from eligibility verification.
	Copay                    interface{} `json:"copay"`
	Deductible               interface{} `json:"deductible"`
	Coinsurance              interface{} `json:"coinsurance"`
	OutOfPocketMax           interface{} `json:"out_of_pocket_max"`
	RemainingDeductible      interface{} `json:"remaining_deductible"`
	RemainingOOPMax          interface{} `json:"remaining_oop_max"`
	MemberObligation         interface{} `json:"member_obligation"`
	PayerObligation          interface{} `json:"payer_obligation"`
	BenefitStructure         string      `json:"benefit_structure"`
	SessionsBeforeDeductible interface{} `json:"sessions_before_deductible"`

	VerificationData *VerificationData `json:"verification_data"`
}

// VerificationData is the eligibility-verification payload forwarded from the
// benefits check. Upstream sometimes sends it in a shape we don't recognize;
// unmarshalling never fails, a malformed value simply decodes to an empty
// struct and is treated as absent.
type VerificationData struct {
	Benefits   *VerificationBenefits   `json:"benefits"`
	Subscriber *VerificationSubscriber `json:"subscriber"`
}

type VerificationBenefits struct {
	Copay               string `json:"copay"`
	Coinsurance         string `json:"coinsurance"`
	MemberObligation    string `json:"memberObligation"`
	Deductible          string `json:"deductible"`
	RemainingDeductible string `json:"remainingDeductible"`
	OOPMax              string `json:"oopMax"`
	RemainingOOPMax     string `json:"remainingOopMax"`
	BenefitStructure    string `json:"benefitStructure"`
}

type VerificationSubscriber struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
	MemberID    string `json:"memberId"`
}

func (v *VerificationData) UnmarshalJSON(data []byte) error {
	type alias VerificationData
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		// Malformed verification data is ignored, never fails the request.
		*v = VerificationData{}
		return nil
	}
	*v = VerificationData(a)
	return nil
}
