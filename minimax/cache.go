package minimax

import "github.com/reversai/iago/game"

// A search caches only utilities it knows exactly. A node that fails high or
// low under alpha-beta yields a bound, not a utility; replaying a bound on a
// later visit could tilt the chosen move. Keys carry the remaining depth and
// the side to move alongside the board: the same board revisited with a
// different budget left must not reuse the old answer.

type cacheKey struct {
	board      game.Key
	depth      Depth
	maximizing bool
}

type cache struct {
	utilities map[cacheKey]float32
}

func newCache() *cache {
	return &cache{utilities: make(map[cacheKey]float32)}
}

func (c *cache) get(board game.Key, depth Depth, maximizing bool) (float32, bool) {
	utility, ok := c.utilities[cacheKey{board: board, depth: depth, maximizing: maximizing}]
	return utility, ok
}

func (c *cache) put(board game.Key, depth Depth, maximizing bool, utility float32) {
	c.utilities[cacheKey{board: board, depth: depth, maximizing: maximizing}] = utility
}

func (c *cache) size() int { return len(c.utilities) }
