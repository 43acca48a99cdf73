package jsonutil

import (
	"encoding/json"
	"fmt"
)

// FlexibleStringValue converts a json.RawMessage to a display string. The
// upstream monster API is loose about scalar types (armor class values and
// counts show up as numbers, occasionally strings). Returns empty string for
// null/empty input.
func FlexibleStringValue(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var strVal string
	if err := json.Unmarshal(raw, &strVal); err == nil {
		return strVal
	}

	var numVal float64
	if err := json.Unmarshal(raw, &numVal); err == nil {
		return FormatNumber(numVal)
	}

	var boolVal bool
	if err := json.Unmarshal(raw, &boolVal); err == nil {
		return fmt.Sprintf("%t", boolVal)
	}

	return string(raw)
}

// FormatNumber renders a float the way JavaScript's String() does: integral
// values without a decimal point, everything else in shortest form.
func FormatNumber(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
