package intake

import (
	"strings"
	"time"
)

// Date layouts the survey frontends have been observed to send, tried in
// order. The US form is tried before the day-first form, so an ambiguous
// slash date resolves as MM/DD/YYYY.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"02/01/2006",
	time.RFC3339Nano, // covers RFC3339 with and without fractional seconds
	"2006-01-02T15:04:05",
}

// normalizeDate converts a textual date into UTC milliseconds since epoch.
// An unrecognized format returns ok=false; the caller omits the field
// instead of failing the whole build.
func normalizeDate(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		return t.UTC().UnixMilli(), true
	}
	return 0, false
}
