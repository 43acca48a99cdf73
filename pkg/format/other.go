package format

import (
	"encoding/json"
	"strings"

	"github.com/dgrollins/monsterdash/pkg/models"
)

// JoinNames joins a heterogeneous upstream list into a ", "-separated string.
// Entries may be plain strings or {name} references (condition immunities mix
// both). Empty and non-string entries are dropped; an entirely empty result
// is absent rather than "".
func JoinNames(entries []json.RawMessage) (string, bool) {
	parts := make([]string, 0, len(entries))
	for _, raw := range entries {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			var ref models.NamedRef
			if err := json.Unmarshal(raw, &ref); err != nil {
				continue
			}
			s = ref.Name
		}
		if s == "" {
			continue
		}
		parts = append(parts, s)
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, ", "), true
}

// SensesPresent reports whether any named sense field is set. Fields are
// omitted individually when rendering; the whole section disappears only
// when every field is absent.
func SensesPresent(s *models.Senses) bool {
	if s == nil {
		return false
	}
	return s.Blindsight != "" ||
		s.Darkvision != "" ||
		s.Tremorsense != "" ||
		s.Truesight != "" ||
		s.PassivePerception != nil
}
