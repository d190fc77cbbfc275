package intake

import (
	"fmt"
	"sort"
	"strings"

	"solbridge/models"
)

// whatBringsYouLimit caps the free-text answer inside the narrative block;
// longer answers are cut to leave room for the ellipsis marker.
const whatBringsYouLimit = 200

type narrativeSection struct {
	label string
	items []string
}

func (s narrativeSection) render() string {
	if s.label == "" {
		return strings.Join(s.items, "\n")
	}
	return s.label + "\n" + strings.Join(s.items, "\n")
}

// buildAdditionalInformation assembles the free-text profile block from the
// optional narrative parts of a submission. Section order is fixed; empty
// sections are skipped; sections are separated by a blank line.
func buildAdditionalInformation(rec models.ClientRecord) string {
	sections := []narrativeSection{
		headerSection(rec),
		scoreSection("PHQ-9 Scores:", rec.PHQ9Scores),
		scoreSection("GAD-7 Scores:", rec.GAD7Scores),
		totalsSection(rec),
		substanceSection(rec),
		preferencesSection(rec),
		whatBringsYouSection(rec),
		demographicsSection(rec),
		safetySection(rec),
		trackingSection(rec),
	}

	var rendered []string
	for _, s := range sections {
		if len(s.items) > 0 {
			rendered = append(rendered, s.render())
		}
	}
	return strings.Join(rendered, "\n\n")
}

func headerSection(rec models.ClientRecord) narrativeSection {
	var items []string
	if rec.ResponseID != "" {
		items = append(items, "Sol Health Response ID: "+rec.ResponseID)
	}
	if rec.PreferredName != "" {
		items = append(items, "Preferred Name: "+rec.PreferredName)
	}
	return narrativeSection{items: items}
}

func scoreSection(label string, scores map[string]interface{}) narrativeSection {
	if len(scores) == 0 {
		return narrativeSection{}
	}
	keys := make([]string, 0, len(scores))
	for k := range scores {
		if scorePresent(scores[k]) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	items := make([]string, 0, len(keys))
	for _, k := range keys {
		items = append(items, fmt.Sprintf("%s: %s", k, valueString(scores[k])))
	}
	return narrativeSection{label: label, items: items}
}

// scorePresent reports whether a screening answer belongs in the narrative.
// A numeric 0 means "not at all" and is suppressed along with blanks.
func scorePresent(v interface{}) bool {
	switch x := v.(type) {
	case float64:
		return x != 0
	case int:
		return x != 0
	case int64:
		return x != 0
	}
	return valuePresent(v)
}

func totalsSection(rec models.ClientRecord) narrativeSection {
	var items []string
	if valuePresent(rec.PHQ9Total) {
		items = append(items, "PHQ-9 Total: "+valueString(rec.PHQ9Total))
	}
	if valuePresent(rec.GAD7Total) {
		items = append(items, "GAD-7 Total: "+valueString(rec.GAD7Total))
	}
	return narrativeSection{label: "Screening Totals:", items: items}
}

func substanceSection(rec models.ClientRecord) narrativeSection {
	var items []string
	if rec.AlcoholFrequency != "" {
		items = append(items, "Alcohol use: "+rec.AlcoholFrequency)
	}
	if rec.RecreationalDrugsFrequency != "" {
		items = append(items, "Recreational drugs: "+rec.RecreationalDrugsFrequency)
	}
	return narrativeSection{label: "Substance Use:", items: items}
}

func preferencesSection(rec models.ClientRecord) narrativeSection {
	var items []string
	if rec.TherapistGenderPreference != "" {
		items = append(items, "Gender preference: "+rec.TherapistGenderPreference)
	}
	if len(rec.TherapistSpecialization) > 0 {
		items = append(items, "Specialization preferences: "+strings.Join(rec.TherapistSpecialization, ", "))
	}
	if len(rec.LivedExperiences) > 0 {
		items = append(items, "Lived experiences: "+strings.Join(rec.LivedExperiences, ", "))
	}
	if rec.TherapistName != "" {
		items = append(items, "Requested therapist: "+rec.TherapistName)
	}
	return narrativeSection{label: "Therapist Preferences:", items: items}
}

func whatBringsYouSection(rec models.ClientRecord) narrativeSection {
	if rec.WhatBringsYou == "" {
		return narrativeSection{}
	}
	return narrativeSection{
		label: "What brings you here:",
		items: []string{truncate(rec.WhatBringsYou, whatBringsYouLimit)},
	}
}

func demographicsSection(rec models.ClientRecord) narrativeSection {
	var items []string
	if valuePresent(rec.Age) {
		items = append(items, "Age: "+valueString(rec.Age))
	}
	if len(rec.RaceEthnicity) > 0 {
		items = append(items, "Race/Ethnicity: "+strings.Join(rec.RaceEthnicity, ", "))
	}
	if rec.University != "" {
		items = append(items, "University: "+rec.University)
	}
	if rec.ReferredBy != "" {
		items = append(items, "Referred by: "+rec.ReferredBy)
	}
	return narrativeSection{label: "Demographics:", items: items}
}

func safetySection(rec models.ClientRecord) narrativeSection {
	var items []string
	if rec.SuicidalThoughts != "" {
		items = append(items, "Suicidal thoughts: "+rec.SuicidalThoughts)
	}
	if rec.SafetyScreening != "" {
		items = append(items, "Safety screening: "+rec.SafetyScreening)
	}
	if rec.MatchingPreference != "" {
		items = append(items, "Matching preference: "+rec.MatchingPreference)
	}
	return narrativeSection{label: "Safety & Matching:", items: items}
}

func trackingSection(rec models.ClientRecord) narrativeSection {
	var items []string
	if rec.PromoCode != "" {
		items = append(items, "Promo code: "+rec.PromoCode)
	}
	if len(rec.UTM) > 0 {
		keys := make([]string, 0, len(rec.UTM))
		for k := range rec.UTM {
			if valuePresent(rec.UTM[k]) {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			items = append(items, fmt.Sprintf("%s: %s", k, valueString(rec.UTM[k])))
		}
	}
	return narrativeSection{label: "Tracking:", items: items}
}

// truncate cuts s to limit characters, the last three replaced by an
// ellipsis marker. A 250-char answer becomes 197 chars plus "...".
// Limits are counted in runes so a cut never splits a multi-byte character.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}
