package model

import "math/bits"

// Square identifies a cell on the board
type Square struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// Valid returns true if the square is within a board of the given size
func (sq Square) Valid(size int) bool {
	return sq.Row >= 0 && sq.Row < size && sq.Col >= 0 && sq.Col < size
}

// String returns the square in move notation, e.g. "C4"
func (sq Square) String() string {
	return MoveAt(sq).String()
}

// Cell is the content of a single board cell
type Cell int

const (
	CellEmpty Cell = iota
	CellBlack
	CellWhite
)

// bitset is a fixed-size set of cell indices
type bitset []uint64

func newBitset(n int) bitset {
	return make(bitset, (n+63)/64)
}

func (b bitset) has(i int) bool {
	return b[i/64]&(1<<(uint(i)%64)) != 0
}

func (b bitset) set(i int) {
	b[i/64] |= 1 << (uint(i) % 64)
}

func (b bitset) clear(i int) {
	b[i/64] &^= 1 << (uint(i) % 64)
}

func (b bitset) count() int {
	n := 0
	for _, w := range b {
		n += bits.OnesCount64(w)
	}
	return n
}

// Board is an N x N Othello grid. Occupancy is held as one bitset layer per
// side; a cell is never set in both layers.
type Board struct {
	Turn Side // Side to move

	size   int
	layers [2]bitset
}

// NewEmptyBoard creates a board with no discs and Black to move
func NewEmptyBoard(size int) *Board {
	if size < 0 {
		size = 0
	}
	return &Board{
		Turn: Black,
		size: size,
		layers: [2]bitset{
			newBitset(size * size),
			newBitset(size * size),
		},
	}
}

// NewBoard creates a board with the standard opening: the four centre cells
// split diagonally, White on the main diagonal, Black to move
func NewBoard(size int) *Board {
	b := NewEmptyBoard(size)
	if size < 2 {
		return b
	}
	mid := size / 2
	b.Place(Square{Row: mid - 1, Col: mid - 1}, White)
	b.Place(Square{Row: mid, Col: mid}, White)
	b.Place(Square{Row: mid, Col: mid - 1}, Black)
	b.Place(Square{Row: mid - 1, Col: mid}, Black)
	return b
}

// Clone returns a deep copy that shares no state with b
func (b *Board) Clone() *Board {
	c := &Board{Turn: b.Turn, size: b.size}
	for i, layer := range b.layers {
		c.layers[i] = append(bitset(nil), layer...)
	}
	return c
}

// Size returns the grid dimension
func (b *Board) Size() int {
	return b.size
}

func (b *Board) index(sq Square) int {
	return sq.Row*b.size + sq.Col
}

// Cell returns the content of the square. Off-board squares read as empty.
func (b *Board) Cell(sq Square) Cell {
	if !sq.Valid(b.size) {
		return CellEmpty
	}
	i := b.index(sq)
	switch {
	case b.layers[Black].has(i):
		return CellBlack
	case b.layers[White].has(i):
		return CellWhite
	default:
		return CellEmpty
	}
}

// OccupiedBy returns true if the square holds a disc of the given side
func (b *Board) OccupiedBy(sq Square, side Side) bool {
	return sq.Valid(b.size) && b.layers[side].has(b.index(sq))
}

// IsEmpty returns true if the square is on the board and holds no disc
func (b *Board) IsEmpty(sq Square) bool {
	return sq.Valid(b.size) && b.Cell(sq) == CellEmpty
}

// Place puts a disc of the given side on the square, replacing any disc there
func (b *Board) Place(sq Square, side Side) {
	if !sq.Valid(b.size) {
		return
	}
	i := b.index(sq)
	b.layers[side.Opposite()].clear(i)
	b.layers[side].set(i)
}

// Clear removes any disc from the square
func (b *Board) Clear(sq Square) {
	if !sq.Valid(b.size) {
		return
	}
	i := b.index(sq)
	b.layers[Black].clear(i)
	b.layers[White].clear(i)
}

// Count returns the number of discs the side has on the board
func (b *Board) Count(side Side) int {
	return b.layers[side].count()
}

// EmptyCount returns the number of empty cells
func (b *Board) EmptyCount() int {
	return b.size*b.size - b.Count(Black) - b.Count(White)
}

// IsFull returns true if every cell holds a disc
func (b *Board) IsFull() bool {
	return b.EmptyCount() == 0
}

// Squares returns every square on the board in row-major order
func (b *Board) Squares() []Square {
	squares := make([]Square, 0, b.size*b.size)
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			squares = append(squares, Square{Row: row, Col: col})
		}
	}
	return squares
}
