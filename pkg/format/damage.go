package format

import (
	"strings"

	"github.com/dgrollins/monsterdash/pkg/models"
)

// DamageList renders a damage list as "<dice> <type>" pairs joined by ", ".
// Either half of a pair may be missing; pairs with neither are dropped.
// Returns false when nothing remains.
func DamageList(damage []models.DamageEntry) (string, bool) {
	parts := make([]string, 0, len(damage))
	for _, d := range damage {
		fields := make([]string, 0, 2)
		if d.DamageDice != "" {
			fields = append(fields, d.DamageDice)
		}
		if d.DamageType != nil && d.DamageType.Name != "" {
			fields = append(fields, d.DamageType.Name)
		}
		if len(fields) == 0 {
			continue
		}
		parts = append(parts, strings.Join(fields, " "))
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, ", "), true
}
