package entity

import (
	"errors"
	"fmt"
	"strings"
)

const BoardSize = 9

// Mark is the symbol a player places on the board.
type Mark string

const (
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	EmptyCell Mark = ""
)

// wire form of an empty cell.
const emptyCellChar = ' '

var ErrInvalidBoard = errors.New("invalid board")

// Opponent returns the mark that plays after this one.
func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Board is a 3x3 grid stored row-major: row = index/3, col = index%3.
// The zero value is an empty board.
type Board [BoardSize]Mark

// String renders the board as 9 characters over {' ', 'X', 'O'}.
func (that Board) String() string {
	var sb strings.Builder
	sb.Grow(BoardSize)

	for _, cell := range that {
		if cell == EmptyCell {
			sb.WriteByte(emptyCellChar)
			continue
		}
		sb.WriteString(string(cell))
	}

	return sb.String()
}

// ParseBoard reads the 9-character form produced by String.
func ParseBoard(raw string) (Board, error) {
	var board Board

	if len(raw) != BoardSize {
		return board, fmt.Errorf("%w: length %d", ErrInvalidBoard, len(raw))
	}

	for i := range len(raw) {
		switch raw[i] {
		case emptyCellChar:
			board[i] = EmptyCell
		case 'X':
			board[i] = PlayerX
		case 'O':
			board[i] = PlayerO
		default:
			return Board{}, fmt.Errorf("%w: unexpected %q at %d", ErrInvalidBoard, raw[i], i)
		}
	}

	return board, nil
}

func (that Board) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Board) UnmarshalText(text []byte) error {
	board, err := ParseBoard(string(text))
	if err != nil {
		return err
	}

	*that = board

	return nil
}

// Rows returns the board as three rows of three cells.
func (that Board) Rows() [3][3]Mark {
	var rows [3][3]Mark
	for i, cell := range that {
		rows[i/3][i%3] = cell
	}
	return rows
}
