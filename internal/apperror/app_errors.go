package apperror

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrSamePlayer          = errors.New("need distinct player_x and player_o ids")
	ErrPlayerNotFound      = errors.New("both players must exist")
	ErrInvalidUser         = errors.New("invalid user")
	ErrInvalidPosition     = errors.New("invalid position")
	ErrNotYourTurn         = errors.New("it's not your turn")
	ErrGameAlreadyFinished = errors.New("game is already finished")
	ErrConcurrentMove      = errors.New("game was changed by a concurrent move")

	ErrInvalidUsername = errors.New("username must be between 1 and 50 characters")
	ErrUsernameTaken   = errors.New("username is already taken")
)

type kind struct {
	err     error
	message string
}

// kinds lists every application error. An empty message means the error text is shown as is.
var kinds = []kind{
	{err: ErrNotFound},
	{err: ErrSamePlayer, message: "Need distinct player_x and player_o IDs."},
	{err: ErrPlayerNotFound, message: "Both players must exist."},
	{err: ErrInvalidUser},
	{err: ErrInvalidPosition},
	{err: ErrNotYourTurn},
	{err: ErrGameAlreadyFinished},
	{err: ErrConcurrentMove},
	{err: ErrInvalidUsername},
	{err: ErrUsernameTaken},
}

// Message returns the client-facing text of the error kind err wraps, or false when err is not
// an application error. Clients only ever see these texts.
func Message(err error) (string, bool) {
	for _, k := range kinds {
		if !errors.Is(err, k.err) {
			continue
		}
		if k.message != "" {
			return k.message, true
		}
		return k.err.Error(), true
	}

	return "", false
}
