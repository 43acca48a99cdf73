package models

import (
	"encoding/json"

	"github.com/dgrollins/monsterdash/pkg/jsonutil"
)

// MonsterIndexEntry is one row of the upstream monster index.
type MonsterIndexEntry struct {
	Index string `json:"index"`
	Name  string `json:"name"`
	URL   string `json:"url"`
}

// MonsterList is the upstream index listing envelope.
type MonsterList struct {
	Count   int                 `json:"count"`
	Results []MonsterIndexEntry `json:"results"`
}

// MonsterDetail is the full stat block for one monster as returned by the
// upstream API. Every field is optional: the upstream shape varies per
// monster, so nothing here may be assumed present. Polymorphic fields
// (armor_class is a number or a list, condition_immunities mixes strings and
// refs) stay as json.RawMessage and are decoded by pkg/format.
type MonsterDetail struct {
	Index string `json:"index,omitempty"`
	Name  string `json:"name,omitempty"`
	Image string `json:"image,omitempty"`

	ArmorClass json.RawMessage `json:"armor_class,omitempty"`

	Strength     *int `json:"strength,omitempty"`
	Dexterity    *int `json:"dexterity,omitempty"`
	Constitution *int `json:"constitution,omitempty"`
	Intelligence *int `json:"intelligence,omitempty"`
	Wisdom       *int `json:"wisdom,omitempty"`
	Charisma     *int `json:"charisma,omitempty"`

	HitPoints     *int     `json:"hit_points,omitempty"`
	HitDice       string   `json:"hit_dice,omitempty"`
	HitPointsRoll string   `json:"hit_points_roll,omitempty"`
	Speed         SpeedMap `json:"speed,omitempty"`

	Actions          []MonsterAction  `json:"actions,omitempty"`
	LegendaryActions []MonsterAction  `json:"legendary_actions,omitempty"`
	SpecialAbilities []SpecialAbility `json:"special_abilities,omitempty"`

	DamageVulnerabilities []json.RawMessage `json:"damage_vulnerabilities,omitempty"`
	DamageResistances     []json.RawMessage `json:"damage_resistances,omitempty"`
	DamageImmunities      []json.RawMessage `json:"damage_immunities,omitempty"`
	ConditionImmunities   []json.RawMessage `json:"condition_immunities,omitempty"`

	Senses    *Senses `json:"senses,omitempty"`
	Languages string  `json:"languages,omitempty"`

	ChallengeRating  *float64           `json:"challenge_rating,omitempty"`
	ProficiencyBonus *float64           `json:"proficiency_bonus,omitempty"`
	Proficiencies    []ProficiencyEntry `json:"proficiencies,omitempty"`
}

// SpeedMap holds movement speeds keyed by mode ("walk", "fly", "swim").
// The upstream speed object mixes value types: hovering monsters carry
// "hover": true next to the string speeds. Boolean flags are not speeds and
// are dropped; any other scalar is coerced to its display string.
type SpeedMap map[string]string

func (s *SpeedMap) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(SpeedMap, len(raw))
	for mode, val := range raw {
		var flag bool
		if err := json.Unmarshal(val, &flag); err == nil {
			continue
		}
		if v := jsonutil.FlexibleStringValue(val); v != "" {
			out[mode] = v
		}
	}
	*s = out
	return nil
}

// NamedRef is the upstream {index, name, url} reference shape.
type NamedRef struct {
	Index string `json:"index,omitempty"`
	Name  string `json:"name,omitempty"`
	URL   string `json:"url,omitempty"`
}

// DamageEntry pairs a dice expression with a damage type. Either half may be
// missing.
type DamageEntry struct {
	DamageDice string    `json:"damage_dice,omitempty"`
	DamageType *NamedRef `json:"damage_type,omitempty"`
}

// SubAction is a nested action reference inside a multiattack.
type SubAction struct {
	ActionName string `json:"action_name,omitempty"`
	Count      any    `json:"count,omitempty"`
	Type       string `json:"type,omitempty"`
}

// MonsterAction is one action or legendary action of a monster.
type MonsterAction struct {
	Name        string        `json:"name,omitempty"`
	Desc        string        `json:"desc,omitempty"`
	AttackBonus *float64      `json:"attack_bonus,omitempty"`
	Damage      []DamageEntry `json:"damage,omitempty"`
	Actions     []SubAction   `json:"actions,omitempty"`
}

// SpecialAbility is a passive trait of a monster.
type SpecialAbility struct {
	Name   string        `json:"name,omitempty"`
	Desc   string        `json:"desc,omitempty"`
	Damage []DamageEntry `json:"damage,omitempty"`
}

// Senses holds the named sense fields. Absent fields are omitted
// individually when formatting.
type Senses struct {
	Blindsight        string   `json:"blindsight,omitempty"`
	Darkvision        string   `json:"darkvision,omitempty"`
	Tremorsense       string   `json:"tremorsense,omitempty"`
	Truesight         string   `json:"truesight,omitempty"`
	PassivePerception *float64 `json:"passive_perception,omitempty"`
}

// ProficiencyEntry is one saving throw or skill proficiency row.
type ProficiencyEntry struct {
	Value       *int      `json:"value,omitempty"`
	Proficiency *NamedRef `json:"proficiency,omitempty"`
}
