package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const BoardSize = 3

type Mark string

const (
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	EmptyCell Mark = ""
)

var (
	ErrInvalidBoard = errors.New("invalid board")

	// WinCombos lists rows, then columns, then the main and anti diagonal, as row-major indexes.
	WinCombos = [][BoardSize]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}
)

func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Move addresses a single cell by its zero-based row and column.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Move) index() int {
	return that.Row*BoardSize + that.Col
}

func (that Move) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Board is the 3x3 grid stored row-major. The zero value is an empty board.
type Board struct {
	cells [BoardSize * BoardSize]Mark
}

func NewBoard() *Board {
	return &Board{}
}

// ParseBoard builds a board from one string per row, using X, O and '.' or ' ' for empty cells.
func ParseBoard(rows ...string) (*Board, error) {
	if len(rows) != BoardSize {
		return nil, fmt.Errorf("%w: want %d rows, got %d", ErrInvalidBoard, BoardSize, len(rows))
	}

	board := NewBoard()
	for row, line := range rows {
		if len(line) != BoardSize {
			return nil, fmt.Errorf("%w: row %d has %d cells", ErrInvalidBoard, row, len(line))
		}

		for col, ch := range line {
			switch ch {
			case 'X', 'x':
				board.cells[row*BoardSize+col] = PlayerX
			case 'O', 'o':
				board.cells[row*BoardSize+col] = PlayerO
			case '.', ' ':
			default:
				return nil, fmt.Errorf("%w: unexpected %q at row %d", ErrInvalidBoard, ch, row)
			}
		}
	}

	return board, nil
}

// Place puts mark into an empty cell. It never advances turns.
func (that *Board) Place(move Move, mark Mark) error {
	if !move.InBounds() {
		return fmt.Errorf("%w: cell %s is out of the board", apperror.ErrInvalidMove, move)
	}

	if !mark.IsPlayer() {
		return fmt.Errorf("%w: unknown mark %q", apperror.ErrInvalidMove, mark)
	}

	if that.cells[move.index()] != EmptyCell {
		return fmt.Errorf("%w: cell %s is already occupied", apperror.ErrInvalidMove, move)
	}

	that.cells[move.index()] = mark

	return nil
}

// Speculate places mark for the duration of fn and always clears the cell afterwards,
// including when fn panics. It reports false without calling fn if the move can't be placed.
func (that *Board) Speculate(move Move, mark Mark, fn func()) bool {
	if err := that.Place(move, mark); err != nil {
		return false
	}
	defer func() {
		that.cells[move.index()] = EmptyCell
	}()

	fn()

	return true
}

// LegalMoves returns every empty cell in row-major order.
func (that *Board) LegalMoves() []Move {
	moves := make([]Move, 0, len(that.cells))
	for i, cell := range that.cells {
		if cell == EmptyCell {
			moves = append(moves, Move{Row: i / BoardSize, Col: i % BoardSize})
		}
	}

	return moves
}

func (that *Board) Evaluate() GameResult {
	for _, combo := range WinCombos {
		a, b, c := that.cells[combo[0]], that.cells[combo[1]], that.cells[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return Win(a)
		}
	}

	if !that.IsFull() {
		return Ongoing()
	}

	return Draw()
}

// HasLine reports whether mark owns at least one complete row, column or diagonal.
func (that *Board) HasLine(mark Mark) bool {
	for _, combo := range WinCombos {
		if that.cells[combo[0]] == mark && that.cells[combo[1]] == mark && that.cells[combo[2]] == mark {
			return true
		}
	}

	return false
}

func (that *Board) IsFull() bool {
	for _, cell := range that.cells {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

func (that *Board) Reset() {
	that.cells = [BoardSize * BoardSize]Mark{}
}

func (that *Board) Clone() *Board {
	clone := *that
	return &clone
}

// Cell returns the mark at move, or EmptyCell when move is off the board.
func (that *Board) Cell(move Move) Mark {
	if !move.InBounds() {
		return EmptyCell
	}
	return that.cells[move.index()]
}

func (that *Board) Count(mark Mark) int {
	count := 0
	for _, cell := range that.cells {
		if cell == mark {
			count++
		}
	}

	return count
}

func (that *Board) String() string {
	var sb strings.Builder
	for i, cell := range that.cells {
		if cell == EmptyCell {
			sb.WriteByte('.')
		} else {
			sb.WriteString(string(cell))
		}

		if i%BoardSize == BoardSize-1 && i != len(that.cells)-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
