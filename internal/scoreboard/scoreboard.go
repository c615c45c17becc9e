// Package scoreboard derives per-user results and game history from stored games.
package scoreboard

import (
	"cmp"
	"slices"

	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

type Entry struct {
	Username string `json:"username"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
	Draws    int    `json:"draws"`
}

// Compute returns one entry per user, in the order given. Users without any finished game
// get an all-zero entry. Games still in progress are ignored.
func Compute(users []*entity.User, games []*entity.Game) []Entry {
	entries := make([]Entry, 0, len(users))

	for _, user := range users {
		var wins, draws, played int

		for _, game := range games {
			if !game.IsFinished() || !game.HasParticipant(user.ID) {
				continue
			}

			played++

			winnerID, ok := game.State.Winner()
			switch {
			case !ok:
				draws++
			case winnerID == user.ID:
				wins++
			}
		}

		entries = append(entries, Entry{
			Username: user.Username,
			Wins:     wins,
			Losses:   played - wins - draws,
			Draws:    draws,
		})
	}

	return entries
}

// History returns games newest-first by creation time, limited to the games userID plays
// in when userID is not nil.
func History(games []*entity.Game, userID *int64) []*entity.Game {
	history := make([]*entity.Game, 0, len(games))

	for _, game := range games {
		if userID != nil && !game.HasParticipant(*userID) {
			continue
		}
		history = append(history, game)
	}

	slices.SortStableFunc(history, func(a, b *entity.Game) int {
		return cmp.Compare(b.CreatedAt.UnixNano(), a.CreatedAt.UnixNano())
	})

	return history
}
