package reversi

import (
	"fmt"

	"github.com/reversai/iago/game"
	"gorgonia.org/tensor"
	"gorgonia.org/tensor/native"
)

// directions radiating out from a cell. Runs of opposing discs are walked
// along these rays.
var directions = [8]game.Coord{
	{X: 0, Y: 1},
	{X: 1, Y: 1},
	{X: 1, Y: 0},
	{X: 1, Y: -1},
	{X: 0, Y: -1},
	{X: -1, Y: -1},
	{X: -1, Y: 0},
	{X: -1, Y: 1},
}

type board struct {
	data *tensor.Dense
	it   [][]game.Colour
	n    int
}

func newBoard(n int) *board {
	backing := make([]game.Colour, n*n)
	data := tensor.New(tensor.WithShape(n, n), tensor.WithBacking(backing))
	iter, err := native.Matrix(data)
	if err != nil {
		panic(err)
	}
	it := iter.([][]game.Colour)
	return &board{
		data: data,
		it:   it,
		n:    n,
	}
}

func (b *board) Format(s fmt.State, c rune) {
	switch c {
	case 's', 'v':
		for _, row := range b.it {
			fmt.Fprint(s, "⎢ ")
			for _, col := range row {
				fmt.Fprintf(s, "%s ", col)
			}
			fmt.Fprint(s, "⎥\n")
		}
	}
}

func (b *board) clone() *board {
	b2 := newBoard(b.n)
	raw2 := b2.data.Data().([]game.Colour)
	raw := b.data.Data().([]game.Colour)
	copy(raw2, raw)
	return b2
}

func (b *board) at(c game.Coord) game.Colour { return b.it[c.Y][c.X] }

func (b *board) inBounds(c game.Coord) bool {
	return c.X >= 0 && int(c.X) < b.n && c.Y >= 0 && int(c.Y) < b.n
}

// bracketed reports whether walking from c (exclusive) along d crosses at
// least one opposing disc and lands on one of p's own.
func (b *board) bracketed(c, d game.Coord, p game.Player) bool {
	opp := game.Colour(p.Opponent())
	cur := c.Add(d)
	var crossed bool
	for b.inBounds(cur) && b.at(cur) == opp {
		crossed = true
		cur = cur.Add(d)
	}
	return crossed && b.inBounds(cur) && b.at(cur) == game.Colour(p)
}

// legal reports whether p may place a disc at c: the cell is empty and at
// least one ray from it brackets a run of opposing discs.
func (b *board) legal(c game.Coord, p game.Player) bool {
	if !b.inBounds(c) || b.at(c) != game.None {
		return false
	}
	for _, d := range directions {
		if b.bracketed(c, d, p) {
			return true
		}
	}
	return false
}

// place puts p's disc at c and flips every bracketed run, mutating the board
// in place. It reports whether the placement was legal; an illegal placement
// leaves the board untouched. The rays are disjoint, so flipping one never
// invalidates another.
func (b *board) place(c game.Coord, p game.Player) bool {
	if !b.inBounds(c) || b.at(c) != game.None {
		return false
	}
	opp := game.Colour(p.Opponent())
	var flipped bool
	for _, d := range directions {
		if !b.bracketed(c, d, p) {
			continue
		}
		for cur := c.Add(d); b.at(cur) == opp; cur = cur.Add(d) {
			b.it[cur.Y][cur.X] = game.Colour(p)
		}
		flipped = true
	}
	if flipped {
		b.it[c.Y][c.X] = game.Colour(p)
	}
	return flipped
}
