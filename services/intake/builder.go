package intake

import (
	"strings"

	"solbridge/models"
)

const defaultCountry = "USA"

// BuildProfile maps a client-intake submission onto IntakeQ's client schema.
// Pure transform: missing optional data narrows the output, it never fails.
// Presence requirements on name and email are enforced by the service before
// the profile is sent, not here.
func BuildProfile(rec models.ClientRecord, paymentType PaymentType) models.ClientProfile {
	profile := models.ClientProfile{
		FirstName:   effectiveFirstName(rec),
		LastName:    strings.TrimSpace(rec.LastName),
		Email:       strings.TrimSpace(rec.Email),
		Phone:       effectivePhone(rec),
		MobilePhone: rec.MobilePhone,
		Gender:      normalizeGender(rec.Gender),

		StreetAddress: rec.StreetAddress,
		City:          rec.City,
		State:         rec.State,
		PostalCode:    rec.PostalCode,
		Country:       rec.Country,

		ExternalClientID:      rec.ResponseID,
		AdditionalInformation: buildAdditionalInformation(rec),
	}
	if profile.Country == "" {
		profile.Country = defaultCountry
	}
	if ms, ok := normalizeDate(rec.DateOfBirth); ok {
		profile.DateOfBirth = &ms
	}

	if paymentType == PaymentInsurance {
		applyInsuranceFields(&profile, rec)
	}
	profile.CustomFields = buildCustomFields(rec, paymentType)
	return profile
}

// effectiveFirstName prefers the preferred name over the legal first name.
func effectiveFirstName(rec models.ClientRecord) string {
	if name := strings.TrimSpace(rec.PreferredName); name != "" {
		return name
	}
	return strings.TrimSpace(rec.FirstName)
}

// effectivePhone prefers the explicit mobile number over the general one.
func effectivePhone(rec models.ClientRecord) string {
	if rec.MobilePhone != "" {
		return rec.MobilePhone
	}
	return rec.Phone
}

func applyInsuranceFields(profile *models.ClientProfile, rec models.ClientRecord) {
	profile.PrimaryInsuranceCompany = rec.InsuranceProvider
	profile.PrimaryInsurancePolicyNumber = rec.InsuranceMemberID
	profile.PrimaryInsuranceGroupNumber = rec.InsuranceGroupNumber
	profile.PrimaryRelationshipToInsured = rec.InsurancePolicyHolderRelationship

	holder := strings.TrimSpace(rec.InsurancePolicyHolderName)
	if holder == "" {
		// Backfill from the verification subscriber when the survey didn't
		// capture the holder directly.
		if v := rec.VerificationData; v != nil && v.Subscriber != nil {
			holder = strings.TrimSpace(strings.TrimSpace(v.Subscriber.FirstName) + " " + strings.TrimSpace(v.Subscriber.LastName))
		}
	}
	profile.PrimaryInsuranceHolderName = holder

	if ms, ok := normalizeDate(rec.InsurancePolicyHolderDOB); ok {
		profile.PrimaryInsuranceHolderDateOfBirth = &ms
	}
}

// buildCustomFields emits the provider custom-field entries for a
// submission. An entry appears only when the value is present and the
// semantic name has a registry code; everything else is dropped.
func buildCustomFields(rec models.ClientRecord, paymentType PaymentType) []models.CustomField {
	var fields []models.CustomField
	add := func(name string, value string) {
		if value == "" {
			return
		}
		code, ok := registryCode(name)
		if !ok {
			return
		}
		fields = append(fields, models.CustomField{FieldID: code, Value: value})
	}

	// The payment-category indicator is always present.
	if paymentType == PaymentInsurance {
		add("insurance_type", "Insurance")
	} else {
		add("insurance_type", "Cash Pay")
	}

	if paymentType == PaymentInsurance {
		// Flat benefit fields win; the verification payload backfills the
		// gaps when the survey didn't carry the amounts directly.
		vb := &models.VerificationBenefits{}
		if rec.VerificationData != nil && rec.VerificationData.Benefits != nil {
			vb = rec.VerificationData.Benefits
		}
		add("copay", fallback(valueString(rec.Copay), vb.Copay))
		add("deductible", fallback(valueString(rec.Deductible), vb.Deductible))
		add("coinsurance", fallback(valueString(rec.Coinsurance), vb.Coinsurance))
		add("out_of_pocket_max", fallback(valueString(rec.OutOfPocketMax), vb.OOPMax))
		add("remaining_deductible", fallback(valueString(rec.RemainingDeductible), vb.RemainingDeductible))
		add("remaining_oop_max", fallback(valueString(rec.RemainingOOPMax), vb.RemainingOOPMax))
		add("member_obligation", fallback(valueString(rec.MemberObligation), vb.MemberObligation))
		add("benefit_structure", fallback(rec.BenefitStructure, vb.BenefitStructure))

		if truthy(rec.InsuranceVerified) {
			add("coverage_status", "Verified")
		} else {
			add("coverage_status", "Pending Verification")
		}
		add("plan_status", "Active")
	}

	// Independent of payment category.
	add("phq9_total", valueString(rec.PHQ9Total))
	add("gad7_total", valueString(rec.GAD7Total))
	add("age", valueString(rec.Age))
	add("emergency_contact_name", rec.EmergencyContactName)
	add("emergency_contact_phone", rec.EmergencyContactPhone)

	return fields
}

func fallback(direct, verified string) string {
	if direct != "" {
		return direct
	}
	return strings.TrimSpace(verified)
}
