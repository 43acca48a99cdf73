package models

// HitPoints is a user-entered hit point value for a monster, overriding the
// stat block default. At most one row exists per monster name.
type HitPoints struct {
	ID          int64  `json:"id"`
	MonsterName string `json:"monsterName"`
	HitPoints   int    `json:"hitPoints"`
}
