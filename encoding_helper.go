package iago

import (
	"github.com/pkg/errors"
	"github.com/reversai/iago/game"
	"gorgonia.org/vecf32"
)

// EncodeTwoPlayerBoard encodes dark as 1, light as -1 for each disc placed.
func EncodeTwoPlayerBoard(a []game.Colour, prealloc []float32) []float32 {
	if len(prealloc) != len(a) {
		prealloc = make([]float32, len(a))
	}

	for i := range a {
		switch a[i] {
		case game.Dark:
			prealloc[i] = 1
		case game.Light:
			prealloc[i] = -1
		default:
			prealloc[i] = 0
		}
	}
	return prealloc
}

// MoverBoard encodes a position as a single plane on which the player about
// to move always reads +1, whichever colour they hold.
func MoverBoard(pos game.Position, next game.Player) []float32 {
	plane := EncodeTwoPlayerBoard(pos.Board(), nil)
	if next == game.Player(game.Light) {
		vecf32.Scale(plane, -1)
	}
	return plane
}

// RotateBoard rotates a square board plane by a quarter turn and returns the
// rotated copy.
func RotateBoard(board []float32, m, n int) ([]float32, error) {
	if m != n {
		return nil, errors.Errorf("cannot rotate a %dx%d board. This function only takes square boards", m, n)
	}
	copied := make([]float32, len(board))
	copy(copied, board)
	it := MakeIterator(copied, m, n)
	for i := 0; i < m/2; i++ {
		mi1 := m - i - 1
		for j := i; j < mi1; j++ {
			mj1 := m - j - 1
			tmp := it[i][j]
			// right to top
			it[i][j] = it[j][mi1]

			// bottom to right
			it[j][mi1] = it[mi1][mj1]

			// left to bottom
			it[mi1][mj1] = it[mj1][i]

			// tmp is left
			it[mj1][i] = tmp
		}
	}
	ReturnIterator(m, n, it)
	return copied, nil
}

// RotateCoord rotates a move by the same quarter turn RotateBoard gives the
// board it was chosen on.
func RotateCoord(c game.Coord, m, n int) (game.Coord, error) {
	if m != n {
		return game.Coord{}, errors.Errorf("cannot rotate a %dx%d board. This function only takes square boards", m, n)
	}
	return game.Coord{X: c.Y, Y: int16(m-1) - c.X}, nil
}

// Rotations is an Augmenter: it returns the example plus its three
// quarter-turn rotations. Examples whose boards are not square pass through
// alone.
func Rotations(ex Example) []Example {
	n := sqrt(len(ex.Board))
	if n*n != len(ex.Board) {
		return []Example{ex}
	}
	retVal := []Example{ex}
	board, move := ex.Board, ex.Move
	for i := 0; i < 3; i++ {
		var err error
		if board, err = RotateBoard(board, n, n); err != nil {
			return []Example{ex}
		}
		if move, err = RotateCoord(move, n, n); err != nil {
			return []Example{ex}
		}
		retVal = append(retVal, Example{Board: board, Move: move, Value: ex.Value})
	}
	return retVal
}

func sqrt(a int) int {
	if a == 0 || a == 1 {
		return a
	}
	start := 1
	end := a / 2
	var retVal int
	for start <= end {
		mid := (start + end) / 2
		sq := mid * mid
		if sq == a {
			return mid
		}
		if sq < a {
			start = mid + 1
			retVal = mid
		} else {
			end = mid - 1
		}
	}
	return retVal
}
