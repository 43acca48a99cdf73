package models

// Note is a free-text annotation attached to a monster. At most one note
// exists per monster name (unique constraint on notes.monster_name).
type Note struct {
	ID          int64  `json:"id"`
	MonsterName string `json:"monsterName"`
	Text        string `json:"text"`
}
