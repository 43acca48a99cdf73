package models

import "time"

// Log is an append-only timestamped entry tied to a monster. Unlike notes,
// logs have no uniqueness constraint.
type Log struct {
	ID          int64     `json:"id"`
	MonsterName string    `json:"monsterName"`
	Text        string    `json:"text"`
	CreatedAt   time.Time `json:"createdAt"`
}
