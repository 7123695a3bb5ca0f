// Package reversi implements the game of Reversi (also sold as Othello) on
// square boards of even size: each placement must bracket at least one run of
// opposing discs, and every bracketed run is flipped to the mover's colour.
package reversi

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/reversai/iago/game"
)

var _ game.Position = &Position{}

// Position is a single Reversi position. Positions are immutable: Apply
// clones the board, so distinct lines of play may be explored from the same
// Position without interference.
type Position struct {
	b      *board
	counts [3]int // discs on the board, indexed by game.Colour
	key    game.Key
}

// New returns the standard starting position of an n×n game: the four centre
// cells are occupied, Dark on the main diagonal. n must be even and at least
// 4, or New panics.
func New(n int) *Position {
	if n < 4 || n%2 != 0 {
		panic(fmt.Sprintf("reversi: no %d×%d boards", n, n))
	}
	b := newBoard(n)
	i := n/2 - 1
	b.it[i][i] = game.Dark
	b.it[i][i+1] = game.Light
	b.it[i+1][i] = game.Light
	b.it[i+1][i+1] = game.Dark
	return wrap(b)
}

// FromCells constructs a position from row-major cells. The number of cells
// must be the square of an even side length of at least 4.
func FromCells(cells []game.Colour) (*Position, error) {
	n, err := side(len(cells))
	if err != nil {
		return nil, err
	}
	b := newBoard(n)
	raw := b.data.Data().([]game.Colour)
	for i, c := range cells {
		switch c {
		case game.None, game.Dark, game.Light:
			raw[i] = c
		default:
			return nil, errors.Errorf("cell %d holds %d, want 0, 1 or 2", i, c)
		}
	}
	return wrap(b), nil
}

// Parse reads a board from its wire form: the cell values 0 (empty),
// 1 (dark) and 2 (light) in row-major order, with any amount of punctuation
// or whitespace between them. Both `((0, 2), (1, 0))` and `[[0, 2], [1, 0]]`
// styles parse, as do bare digit runs.
func Parse(s string) (*Position, error) {
	cells := make([]game.Colour, 0, len(s)/2)
	for _, r := range s {
		switch r {
		case '0':
			cells = append(cells, game.None)
		case '1':
			cells = append(cells, game.Dark)
		case '2':
			cells = append(cells, game.Light)
		case '(', ')', '[', ']', ',', ' ', '\t', '\r', '\n':
		default:
			return nil, errors.Errorf("unexpected %q in board", r)
		}
	}
	pos, err := FromCells(cells)
	if err != nil {
		return nil, errors.WithMessage(err, "unable to parse board")
	}
	return pos, nil
}

func side(cells int) (int, error) {
	for n := 4; n*n <= cells; n += 2 {
		if n*n == cells {
			return n, nil
		}
	}
	return 0, errors.Errorf("%d cells do not form a square board of even size", cells)
}

func wrap(b *board) *Position {
	pos := &Position{b: b}
	raw := b.data.Data().([]game.Colour)
	key := make([]byte, len(raw))
	for i, c := range raw {
		pos.counts[c]++
		key[i] = '0' + byte(c)
	}
	pos.key = game.Key(key)
	return pos
}

// BoardSize returns the board dimensions (rows, cols).
func (p *Position) BoardSize() (int, int) { return p.b.n, p.b.n }

// Board returns the cells in row-major order. The slice aliases the
// position's backing store and must not be mutated.
func (p *Position) Board() []game.Colour { return p.b.data.Data().([]game.Colour) }

// LegalMoves enumerates every legal placement for pl, scanning the board in
// row-major order. The order is fixed: callers may rely on it for
// deterministic tie-breaking. An empty result means pl must pass.
func (p *Position) LegalMoves(pl game.Player) []game.Coord {
	var moves []game.Coord
	for y := 0; y < p.b.n; y++ {
		for x := 0; x < p.b.n; x++ {
			c := game.Coord{X: int16(x), Y: int16(y)}
			if p.b.legal(c, pl) {
				moves = append(moves, c)
			}
		}
	}
	return moves
}

// Apply returns the position after m. The receiver is never modified.
// Applying a move that LegalMoves would not have enumerated returns the
// receiver unchanged.
func (p *Position) Apply(m game.PlayerMove) game.Position {
	b2 := p.b.clone()
	if !b2.place(m.Coord, m.Player) {
		return p
	}
	return wrap(b2)
}

// Count returns the number of discs pl has on the board.
func (p *Position) Count(pl game.Player) int { return p.counts[game.Colour(pl)] }

// Key returns the canonical encoding of the board: one byte per cell in
// row-major order.
func (p *Position) Key() game.Key { return p.key }

// Eq returns true if both positions have cell-for-cell identical boards.
func (p *Position) Eq(other game.Position) bool { return p.key == other.Key() }

func (p *Position) Format(s fmt.State, c rune) { p.b.Format(s, c) }
