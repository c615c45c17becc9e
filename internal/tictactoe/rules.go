// Package tictactoe holds the board rules and the per-move state transition of a game.
// Everything here is pure: boards are values and no function touches storage.
package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

// WinCombos are the 8 lines that win: 3 rows, 3 columns, 2 diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// IsValidMove reports whether position is on the board and empty.
func IsValidMove(board entity.Board, position int) bool {
	if position < 0 || position >= len(board) {
		return false
	}

	return board[position] == entity.EmptyCell
}

// ValidateMove is IsValidMove with the rejection reason.
func ValidateMove(board entity.Board, position int) error {
	if position < 0 || position >= len(board) {
		return fmt.Errorf("%w: cell %d is out of range", apperror.ErrInvalidPosition, position)
	}

	if board[position] != entity.EmptyCell {
		return fmt.Errorf("%w: cell %d is already occupied", apperror.ErrInvalidPosition, position)
	}

	return nil
}

// ApplyMove returns a copy of board with mark placed at position.
// The caller must check IsValidMove first.
func ApplyMove(board entity.Board, position int, mark entity.Mark) entity.Board {
	board[position] = mark
	return board
}

// WinningMark returns the mark of a completed line, or EmptyCell if there is none.
func WinningMark(board entity.Board) entity.Mark {
	winner := entity.EmptyCell

	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			winner = a
		}
	}

	return winner
}

func CheckWinner(board entity.Board) bool {
	return WinningMark(board) != entity.EmptyCell
}

func IsBoardFull(board entity.Board) bool {
	for _, cell := range board {
		if cell == entity.EmptyCell {
			return false
		}
	}

	return true
}

func IsDraw(board entity.Board) bool {
	return IsBoardFull(board) && !CheckWinner(board)
}
