package entity

import "time"

// Move is an accepted placement of a mark. Moves are never changed after creation.
type Move struct {
	ID       string    `json:"id"`
	GameID   string    `json:"game_id"`
	PlayerID int64     `json:"player"`
	Position int       `json:"position"`
	Turn     Mark      `json:"turn"`
	PlayedAt time.Time `json:"played_at"`
}
