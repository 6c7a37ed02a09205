package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

// Size is the side length of the grid.
const Size = 3

const cellCount = Size * Size

// emptySymbol marks a free cell in the row-major board notation.
const emptySymbol = '_'

var (
	ErrInvalidMark  = errors.New("invalid mark")
	ErrInvalidBoard = errors.New("invalid board notation")

	// WinCombos lists the cell indexes of every line: rows, then columns, then diagonals.
	WinCombos = [8][3]int{
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

// Move is a zero-based (row, column) coordinate on the grid.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// MoveAt converts a row-major cell index into a Move.
func MoveAt(index int) Move {
	return Move{Row: index / Size, Col: index % Size}
}

func (that Move) InRange() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

// Index returns the row-major cell index of the move.
func (that Move) Index() int {
	return that.Row*Size + that.Col
}

func (that Move) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

// Board is a 3x3 grid. It has value semantics: assigning a Board copies every cell,
// so a copy can be mutated freely without touching the original.
type Board struct {
	cells [cellCount]Mark
}

func NewBoard() Board {
	return Board{}
}

// ParseBoard builds a board from its row-major notation, e.g. "XXOXOO_XO" with '_' for empty.
func ParseBoard(notation string) (Board, error) {
	var board Board

	if len(notation) != cellCount {
		return board, fmt.Errorf("%w: expected %d cells, got %d", ErrInvalidBoard, cellCount, len(notation))
	}

	for i, symbol := range []byte(notation) {
		switch symbol {
		case emptySymbol:
			board.cells[i] = Empty
		case MarkX[0]:
			board.cells[i] = MarkX
		case MarkO[0]:
			board.cells[i] = MarkO
		default:
			return Board{}, fmt.Errorf("%w: unexpected symbol %q at %d", ErrInvalidBoard, symbol, i)
		}
	}

	return board, nil
}

func (that *Board) IsEmpty(row, col int) bool {
	return that.Cell(row, col) == Empty
}

// Cell returns the mark at the given coordinates, Empty when they are out of range.
func (that *Board) Cell(row, col int) Mark {
	move := Move{Row: row, Col: col}
	if !move.InRange() {
		return Empty
	}

	return that.cells[move.Index()]
}

// Cells returns a read-only snapshot of all cells in row-major order.
func (that *Board) Cells() [cellCount]Mark {
	return that.cells
}

// FreeCells returns the unoccupied coordinates in row-major order.
func (that *Board) FreeCells() []Move {
	free := make([]Move, 0, cellCount)
	for i, cell := range that.cells {
		if cell == Empty {
			free = append(free, MoveAt(i))
		}
	}

	return free
}

// Place puts mark on the cell. It is the only way to change a board's contents and
// leaves the board untouched when it fails.
func (that *Board) Place(row, col int, mark Mark) error {
	if !mark.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidMark, mark)
	}

	move := Move{Row: row, Col: col}
	if !move.InRange() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidCell, move)
	}

	if that.cells[move.Index()] != Empty {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, move)
	}

	that.cells[move.Index()] = mark

	return nil
}

// State evaluates the grid; it is never cached.
func (that *Board) State() GameState {
	for _, combo := range WinCombos {
		a, b, c := that.cells[combo[0]], that.cells[combo[1]], that.cells[combo[2]]
		if a != Empty && a == b && b == c {
			return stateFor(a)
		}
	}

	// the game will continue until all the squares are full
	for _, cell := range that.cells {
		if cell == Empty {
			return StateInProgress
		}
	}

	return StateDraw
}

// String renders the board in row-major notation.
func (that *Board) String() string {
	var sb strings.Builder
	sb.Grow(cellCount)

	for _, cell := range that.cells {
		if cell == Empty {
			sb.WriteByte(emptySymbol)
			continue
		}
		sb.WriteString(string(cell))
	}

	return sb.String()
}
