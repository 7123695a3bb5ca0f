// Package minimax implements depth-bounded adversarial search for two-player
// zero-sum perfect-information games: plain minimax and alpha-beta pruning,
// with optional within-search transposition caching and heuristic move
// ordering.
//
// Utilities are always from the root player's point of view: the maximizing
// half of the recursion moves the root player, the minimizing half moves the
// opponent, and both pick strictly better values only, so ties go to the
// move enumerated first and every search is fully deterministic.
package minimax

import (
	"fmt"
	"strconv"
)

// Algorithm selects the search variant a Search runs.
type Algorithm int

const (
	// Minimax explores every node down to the depth horizon.
	Minimax Algorithm = iota
	// AlphaBeta skips branches that cannot influence the root decision.
	AlphaBeta
)

func (a Algorithm) String() string {
	switch a {
	case Minimax:
		return "minimax"
	case AlphaBeta:
		return "alphabeta"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Depth is a search depth budget, counted in plies.
type Depth int

// Unbounded is the budget that plays out to the end of the game.
const Unbounded Depth = -1

// Exhausted reports whether the budget is spent.
func (d Depth) Exhausted() bool { return d == 0 }

// Dec counts one ply off the budget. An Unbounded budget stays Unbounded,
// and decrementing an exhausted budget yields Unbounded too: a horizon only
// stops a search when the countdown passes through it.
func (d Depth) Dec() Depth {
	if d <= Unbounded {
		return Unbounded
	}
	return d - 1
}

func (d Depth) String() string {
	if d <= Unbounded {
		return "∞"
	}
	return strconv.Itoa(int(d))
}

// Config configures a Search.
type Config struct {
	Algorithm Algorithm
	Limit     Depth // plies to look ahead; Unbounded plays out the whole game
	Caching   bool  // reuse utilities of boards revisited within one SelectMove call
	Ordering  bool  // explore the most promising successor first (AlphaBeta only)

	// Evaluator scores positions at the horizon; nil means Exact. The same
	// evaluator orders successors when Ordering is on, so a single search
	// never mixes scoring functions.
	Evaluator Evaluator

	// RecordTree keeps the explored tree in memory for ToDot. Meant for
	// eyeballing shallow searches; the tree grows with every node visited.
	RecordTree bool
}

// DefaultConfig returns a Config good for casual play.
func DefaultConfig() Config {
	return Config{
		Algorithm: AlphaBeta,
		Limit:     5,
		Caching:   true,
		Ordering:  true,
	}
}

// IsValid reports whether the Config can be handed to New.
func (c Config) IsValid() bool {
	return (c.Algorithm == Minimax || c.Algorithm == AlphaBeta) && c.Limit >= Unbounded
}
