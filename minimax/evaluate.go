package minimax

import (
	"github.com/reversai/iago/game"
)

// An Evaluator statically scores a position from p's point of view; higher
// is better for p. Evaluators must be pure: caching and move ordering assume
// a position scores the same every time within one search.
type Evaluator func(pos game.Position, p game.Player) float32

// Exact scores a position by material: p's discs minus the opponent's. At a
// finished game this is the final margin.
func Exact(pos game.Position, p game.Player) float32 {
	return float32(pos.Count(p) - pos.Count(p.Opponent()))
}

// Heuristic estimates a midgame position as the sum of three normalized
// differentials: mobility (legal moves available to each side), potential
// mobility (discs of each side that touch empty space) and corner control.
// Each term contributes 100·(mine−theirs)/(mine+theirs) and is skipped
// entirely when neither side has any.
func Heuristic(pos game.Position, p game.Player) float32 {
	opp := p.Opponent()

	var result float32
	result += ratio(len(pos.LegalMoves(p)), len(pos.LegalMoves(opp)))
	result += ratio(frontier(pos, p), frontier(pos, opp))
	result += ratio(corners(pos, p))
	return result
}

func ratio(mine, theirs int) float32 {
	if mine+theirs == 0 {
		return 0
	}
	return 100 * float32(mine-theirs) / float32(mine+theirs)
}

// frontier counts p's discs that have at least one empty cell among their
// eight neighbours.
func frontier(pos game.Position, p game.Player) int {
	rows, cols := pos.BoardSize()
	it := game.MakeIterator(pos.Board(), rows, cols)
	defer game.ReturnIterator(rows, cols, it)

	var total int
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if it[y][x] == game.Colour(p) && touchesEmpty(it, x, y, rows, cols) {
				total++
			}
		}
	}
	return total
}

func touchesEmpty(it [][]game.Colour, x, y, rows, cols int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx < 0 || nx >= cols || ny < 0 || ny >= rows {
				continue
			}
			if it[ny][nx] == game.None {
				return true
			}
		}
	}
	return false
}

// corners counts the corner cells each side holds.
func corners(pos game.Position, p game.Player) (mine, theirs int) {
	rows, cols := pos.BoardSize()
	it := game.MakeIterator(pos.Board(), rows, cols)
	defer game.ReturnIterator(rows, cols, it)

	opp := game.Colour(p.Opponent())
	for _, c := range [4][2]int{{0, 0}, {0, cols - 1}, {rows - 1, 0}, {rows - 1, cols - 1}} {
		switch it[c[0]][c[1]] {
		case game.Colour(p):
			mine++
		case opp:
			theirs++
		}
	}
	return mine, theirs
}
