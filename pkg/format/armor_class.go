// Package format converts the partially-optional monster stat block into
// display-ready strings. Every function is total over missing input: absent
// fields yield an absent result, never a panic or an error.
package format

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dgrollins/monsterdash/pkg/jsonutil"
)

type armorClassEntry struct {
	Value *float64 `json:"value"`
	Type  string   `json:"type"`
}

// ArmorClass renders the polymorphic armor_class field. A scalar is
// stringified; a list of {value, type} entries renders as "16 (natural
// armor)" joined by ", ", skipping entries without a numeric value. Returns
// false when the field is absent or yields nothing displayable.
func ArmorClass(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", false
	}

	var scalar float64
	if err := json.Unmarshal(raw, &scalar); err == nil {
		return jsonutil.FormatNumber(scalar), true
	}

	var entries []armorClassEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return "", false
	}

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Value == nil {
			continue
		}
		part := jsonutil.FormatNumber(*e.Value)
		if e.Type != "" {
			part = fmt.Sprintf("%s (%s)", part, e.Type)
		}
		parts = append(parts, part)
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, ", "), true
}
