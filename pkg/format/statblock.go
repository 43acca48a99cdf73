package format

import (
	"github.com/dgrollins/monsterdash/pkg/models"
)

// Statblock is the display-ready projection of a monster detail record.
// Absent sections marshal away entirely.
type Statblock struct {
	Name       string  `json:"name,omitempty"`
	Image      string  `json:"image,omitempty"`
	ArmorClass string  `json:"armorClass,omitempty"`
	Stats      *Stats  `json:"stats,omitempty"`
	Vitals     *Vitals `json:"vitals,omitempty"`

	Actions   []Row `json:"actions,omitempty"`
	Legendary []Row `json:"legendary,omitempty"`

	Vulnerabilities     string         `json:"vulnerabilities,omitempty"`
	Resistances         string         `json:"resistances,omitempty"`
	Immunities          string         `json:"immunities,omitempty"`
	ConditionImmunities string         `json:"conditionImmunities,omitempty"`
	Senses              *models.Senses `json:"senses,omitempty"`
	Languages           string         `json:"languages,omitempty"`
	ChallengeRating     *float64       `json:"challengeRating,omitempty"`
	ProficiencyBonus    *float64       `json:"proficiencyBonus,omitempty"`

	Proficiencies []ProficiencyRow `json:"proficiencies,omitempty"`
}

// Stats holds the six ability scores. Missing scores stay null.
type Stats struct {
	Strength     *int `json:"strength"`
	Dexterity    *int `json:"dexterity"`
	Constitution *int `json:"constitution"`
	Intelligence *int `json:"intelligence"`
	Wisdom       *int `json:"wisdom"`
	Charisma     *int `json:"charisma"`
}

// Vitals groups hit points, hit dice and movement speeds.
type Vitals struct {
	HitPoints     *int              `json:"hitPoints,omitempty"`
	HitDice       string            `json:"hitDice,omitempty"`
	HitPointsRoll string            `json:"hitPointsRoll,omitempty"`
	Speed         map[string]string `json:"speed,omitempty"`
}

// ProficiencyRow is one saving throw or skill bonus line.
type ProficiencyRow struct {
	Name  string `json:"name"`
	Value *int   `json:"value"`
}

// NewStatblock builds the display projection of a monster detail record.
// Each section is derived independently; a monster missing a whole section
// simply omits it.
func NewStatblock(d *models.MonsterDetail) *Statblock {
	if d == nil {
		return &Statblock{}
	}

	sb := &Statblock{
		Name:             d.Name,
		Image:            d.Image,
		Languages:        d.Languages,
		ChallengeRating:  d.ChallengeRating,
		ProficiencyBonus: d.ProficiencyBonus,
	}

	if ac, ok := ArmorClass(d.ArmorClass); ok {
		sb.ArmorClass = ac
	}

	if d.Strength != nil || d.Dexterity != nil || d.Constitution != nil ||
		d.Intelligence != nil || d.Wisdom != nil || d.Charisma != nil {
		sb.Stats = &Stats{
			Strength:     d.Strength,
			Dexterity:    d.Dexterity,
			Constitution: d.Constitution,
			Intelligence: d.Intelligence,
			Wisdom:       d.Wisdom,
			Charisma:     d.Charisma,
		}
	}

	if d.HitPoints != nil || d.HitDice != "" || d.HitPointsRoll != "" || len(d.Speed) > 0 {
		sb.Vitals = &Vitals{
			HitPoints:     d.HitPoints,
			HitDice:       d.HitDice,
			HitPointsRoll: d.HitPointsRoll,
			Speed:         d.Speed,
		}
	}

	sb.Actions, sb.Legendary = ClassifyActions(d.Actions, d.LegendaryActions, d.SpecialAbilities)

	if v, ok := JoinNames(d.DamageVulnerabilities); ok {
		sb.Vulnerabilities = v
	}
	if v, ok := JoinNames(d.DamageResistances); ok {
		sb.Resistances = v
	}
	if v, ok := JoinNames(d.DamageImmunities); ok {
		sb.Immunities = v
	}
	if v, ok := JoinNames(d.ConditionImmunities); ok {
		sb.ConditionImmunities = v
	}

	if SensesPresent(d.Senses) {
		sb.Senses = d.Senses
	}

	for _, p := range d.Proficiencies {
		name := "Proficiency"
		if p.Proficiency != nil && p.Proficiency.Name != "" {
			name = p.Proficiency.Name
		}
		sb.Proficiencies = append(sb.Proficiencies, ProficiencyRow{Name: name, Value: p.Value})
	}

	return sb
}
