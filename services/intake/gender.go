package intake

import "strings"

// genderSynonyms folds the free-text gender answers the surveys produce into
// IntakeQ's expected values. "Prefer not to say" maps to empty so the field
// is left blank on the profile.
var genderSynonyms = map[string]string{
	"m":                 "Male",
	"male":              "Male",
	"man":               "Male",
	"f":                 "Female",
	"female":            "Female",
	"woman":             "Female",
	"nb":                "Non-binary",
	"non-binary":        "Non-binary",
	"nonbinary":         "Non-binary",
	"other":             "Other",
	"prefer not to say": "",
	"not specified":     "",
}

func normalizeGender(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if mapped, ok := genderSynonyms[strings.ToLower(trimmed)]; ok {
		return mapped
	}
	// Unrecognized values pass through title-cased.
	return titleCase(trimmed)
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
