package format

import (
	"strings"

	"github.com/dgrollins/monsterdash/pkg/models"
)

// Row is one rendered action line: a label and its damage summary (or
// description when no damage is listed).
type Row struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// reassignedToLegendary reports whether an action belongs in the legendary
// bucket by name, regardless of its other fields.
func reassignedToLegendary(name string) bool {
	n := strings.ToLower(name)
	return strings.Contains(n, "frightful presence") || strings.Contains(n, "breath weapon")
}

// isAttack reports whether an action is attack-like: it has a numeric attack
// bonus, a non-empty damage list, "attack" in its description, or a
// sub-action whose name contains "attack".
func isAttack(a models.MonsterAction) bool {
	if a.AttackBonus != nil {
		return true
	}
	if len(a.Damage) > 0 {
		return true
	}
	if strings.Contains(strings.ToLower(a.Desc), "attack") {
		return true
	}
	for _, sub := range a.Actions {
		if strings.Contains(strings.ToLower(sub.ActionName), "attack") {
			return true
		}
	}
	return false
}

func actionText(a models.MonsterAction) string {
	if text, ok := DamageList(a.Damage); ok {
		return text
	}
	return strings.TrimSpace(a.Desc)
}

func fallbackName(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}

// ClassifyActions splits a monster's actions into the ordinary attack bucket
// and the legendary bucket. The legendary bucket merges, in order: special
// abilities named "Legendary Resistance", the upstream legendary_actions
// list, and ordinary actions reassigned by name (Frightful Presence, Breath
// Weapon). Ordinary rows that render to empty text are dropped.
func ClassifyActions(actions, legendaryActions []models.MonsterAction, specials []models.SpecialAbility) (actionRows, legendaryRows []Row) {
	for _, a := range actions {
		if reassignedToLegendary(a.Name) || !isAttack(a) {
			continue
		}
		text := actionText(a)
		if text == "" {
			continue
		}
		actionRows = append(actionRows, Row{Name: fallbackName(a.Name, "Action"), Text: text})
	}

	for _, s := range specials {
		if !strings.Contains(strings.ToLower(s.Name), "legendary resistance") {
			continue
		}
		legendaryRows = append(legendaryRows, Row{
			Name: fallbackName(s.Name, "Legendary Resistance"),
			Text: s.Desc,
		})
	}

	for _, la := range legendaryActions {
		text, ok := DamageList(la.Damage)
		if !ok {
			text = la.Desc
		}
		legendaryRows = append(legendaryRows, Row{
			Name: fallbackName(la.Name, "Legendary Action"),
			Text: text,
		})
	}

	for _, a := range actions {
		if !reassignedToLegendary(a.Name) {
			continue
		}
		legendaryRows = append(legendaryRows, Row{
			Name: fallbackName(a.Name, "Legendary"),
			Text: actionText(a),
		})
	}

	return actionRows, legendaryRows
}
