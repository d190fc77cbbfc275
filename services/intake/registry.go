package intake

// customFieldRegistry maps semantic field names to the opaque codes IntakeQ
// assigned to the practice's custom fields. A value is only submitted when
// its semantic name has a code here; names without a code are dropped.
var customFieldRegistry = map[string]string{
	// Benefits.
	"copay":                "791z",
	"deductible":           "v5wl",
	"coinsurance":          "1rd4",
	"out_of_pocket_max":    "ii1b",
	"remaining_deductible": "2iwu",
	"remaining_oop_max":    "vpum",
	"member_obligation":    "uk2k",
	"payer_obligation":     "pkiu",
	"benefit_structure":    "801h",

	// Coverage.
	"insurance_type":         "brop",
	"plan_status":            "kj4y",
	"coverage_status":        "ch4e",
	"mental_health_coverage": "q3lb",

	// Screening and demographics.
	"phq9_total": "8xk2",
	"gad7_total": "m3qn",
	"age":        "a9r4",

	// Emergency contact.
	"emergency_contact_name":  "e7cn",
	"emergency_contact_phone": "e7cp",
}

// registryCode returns the provider code for a semantic field name.
func registryCode(name string) (string, bool) {
	code, ok := customFieldRegistry[name]
	return code, ok
}
