package iago

import (
	"github.com/reversai/iago/game"
	"github.com/reversai/iago/minimax"
)

// Config configures a Series.
type Config struct {
	Name string
	A, B minimax.Config

	MaxExamples int // cap on recorded examples; 0 keeps everything

	// extensions
	Encoder       GameEncoder
	OutputEncoder OutputEncoder
	Augmenter     Augmenter
}

// A Searcher picks a move for p on pos: the move, its utility for p, and
// whether p had any move at all.
//
// Its sole purpose is to let an Agent carry any move picker; *minimax.Search
// is the usual one.
type Searcher interface {
	SelectMove(pos game.Position, p game.Player) (game.Coord, float32, bool)
}

// GameEncoder encodes a position, seen from the player about to move, as a
// slice of floats.
type GameEncoder func(pos game.Position, next game.Player) []float32

// OutputEncoder encodes the entire meta state as whatever.
//
// An example OutputEncoder is the GifEncoder. Another example would be a logger.
type OutputEncoder interface {
	Encode(ms game.MetaState) error
	Flush() error
}

// Augmenter takes an example, and creates more examples from it.
type Augmenter func(a Example) []Example

// Example is one recorded decision: the encoded board, the move chosen on
// it, and the final outcome for the mover (1 won, -1 lost, 0 drew).
type Example struct {
	Board []float32
	Move  game.Coord
	Value float32
}
