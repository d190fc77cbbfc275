package intake

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// valueString renders a loosely-typed submission value as the string IntakeQ
// expects. JSON numbers print without a trailing fraction (25, not 25.000000).
func valueString(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

func valuePresent(v interface{}) bool {
	return valueString(v) != ""
}

// truthy interprets the verified flag, which arrives as a bool or a string
// depending on the survey version. Absent values count as not verified.
func truthy(v interface{}) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "true", "yes", "verified", "1":
			return true
		}
	case float64:
		return x != 0
	}
	return false
}
