package minimax

import (
	"fmt"
	"sort"

	"github.com/chewxy/math32"
	"github.com/reversai/iago/game"
)

// Stats counts the work done by the most recent SelectMove call.
type Stats struct {
	Nodes     int // nodes visited, the root included
	Leaves    int // static evaluations at terminals and at the horizon
	CacheHits int // nodes answered from the cache
	Cutoffs   int // branches abandoned because the window closed
	CacheSize int // utilities cached by the end of the search
}

func (s Stats) String() string {
	return fmt.Sprintf("nodes=%d leaves=%d hits=%d cutoffs=%d cached=%d",
		s.Nodes, s.Leaves, s.CacheHits, s.Cutoffs, s.CacheSize)
}

// Search runs searches as configured. A Search is not safe for concurrent
// use: each SelectMove call owns it until the call returns.
type Search struct {
	Config
	eval Evaluator

	// per-invocation state
	player game.Player
	cache  *cache
	stats  Stats
	root   *node
	nextID int

	lumberjack
}

// New returns a Search for conf. It panics when conf.IsValid() is false.
func New(conf Config) *Search {
	if !conf.IsValid() {
		panic(fmt.Sprintf("minimax: bad config %+v", conf))
	}
	eval := conf.Evaluator
	if eval == nil {
		eval = Exact
	}
	return &Search{
		Config:     conf,
		eval:       eval,
		lumberjack: makeLumberJack(),
	}
}

// SelectMove picks the best move for p on pos, returning the move, its
// utility for p, and whether p has a move at all. ok is false when p has no
// legal move and must pass; the utility is then the static evaluation of
// pos itself. Every call starts from a fresh cache, so nothing leaks from
// one decision into the next.
func (s *Search) SelectMove(pos game.Position, p game.Player) (m game.Coord, utility float32, ok bool) {
	s.player = p
	s.cache = newCache()
	s.stats = Stats{}
	s.root = nil
	s.nextID = 0
	s.Reset()

	switch s.Algorithm {
	case Minimax:
		rec := s.record(nil, pos, game.PlayerMove{}, false, true, s.Limit)
		m, ok, utility = s.minimax(pos, s.Limit, true, rec)
	case AlphaBeta:
		depth := s.Limit.Dec() // the root itself costs the first ply
		rec := s.record(nil, pos, game.PlayerMove{}, false, true, depth)
		m, ok, utility = s.alphabeta(pos, depth, math32.Inf(-1), math32.Inf(1), true, rec)
	}
	s.stats.CacheSize = s.cache.size()
	s.log("%v limit=%v player=%v: move=%v ok=%t utility=%v %v", s.Algorithm, s.Limit, p, m, ok, utility, s.stats)
	return m, utility, ok
}

// Stats reports on the most recent SelectMove call.
func (s *Search) Stats() Stats { return s.stats }

// minimax is both halves of the classic recursion in one: at a maximizing
// node the root player moves and the greatest child utility wins; at a
// minimizing node the opponent moves and the least wins. Utilities are
// always s.player's, never the mover's. Strict comparisons keep the
// first-enumerated move on ties.
func (s *Search) minimax(pos game.Position, depth Depth, maximizing bool, rec *node) (game.Coord, bool, float32) {
	s.stats.Nodes++
	if s.Caching {
		if utility, ok := s.cache.get(pos.Key(), depth, maximizing); ok {
			s.stats.CacheHits++
			rec.answer(utility, false, true)
			return game.Coord{}, false, utility
		}
	}

	mover := s.player
	if !maximizing {
		mover = s.player.Opponent()
	}

	moves := pos.LegalMoves(mover)
	if len(moves) == 0 || depth.Exhausted() {
		s.stats.Leaves++
		utility := s.eval(pos, s.player)
		if s.Caching {
			s.cache.put(pos.Key(), depth, maximizing, utility)
		}
		rec.answer(utility, true, false)
		return game.Coord{}, false, utility
	}

	var best game.Coord
	var found bool
	bestVal := math32.Inf(-1)
	if !maximizing {
		bestVal = math32.Inf(1)
	}
	for _, m := range moves {
		pm := game.PlayerMove{Player: mover, Coord: m}
		next := pos.Apply(pm)
		krec := s.record(rec, next, pm, true, !maximizing, depth.Dec())
		_, _, val := s.minimax(next, depth.Dec(), !maximizing, krec)
		if maximizing && val > bestVal || !maximizing && val < bestVal {
			best, found, bestVal = m, true, val
		}
	}
	if s.Caching {
		s.cache.put(pos.Key(), depth, maximizing, bestVal)
	}
	rec.answer(bestVal, false, false)
	return best, found, bestVal
}

// successor pairs a move with the position it produces, so ordering scores
// each position exactly once.
type successor struct {
	move game.Coord
	pos  game.Position
	val  float32
}

// alphabeta is minimax with a live (alpha, beta) window. A branch is
// abandoned as soon as its best value escapes the window; the test sits
// after the best-value update and before the window tightens, so the move
// kept on a cutoff is the one that caused it.
func (s *Search) alphabeta(pos game.Position, depth Depth, alpha, beta float32, maximizing bool, rec *node) (game.Coord, bool, float32) {
	s.stats.Nodes++
	if s.Caching {
		if utility, ok := s.cache.get(pos.Key(), depth, maximizing); ok {
			s.stats.CacheHits++
			rec.answer(utility, false, true)
			return game.Coord{}, false, utility
		}
	}

	mover := s.player
	if !maximizing {
		mover = s.player.Opponent()
	}

	moves := pos.LegalMoves(mover)
	if len(moves) == 0 || depth.Exhausted() {
		s.stats.Leaves++
		utility := s.eval(pos, s.player)
		if s.Caching {
			s.cache.put(pos.Key(), depth, maximizing, utility)
		}
		rec.answer(utility, true, false)
		return game.Coord{}, false, utility
	}

	succs := make([]successor, len(moves))
	for i, m := range moves {
		succs[i] = successor{move: m, pos: pos.Apply(game.PlayerMove{Player: mover, Coord: m})}
	}
	if s.Ordering {
		s.order(succs, maximizing)
	}

	alphaOrig, betaOrig := alpha, beta
	var best game.Coord
	var found bool
	bestVal := math32.Inf(-1)
	if !maximizing {
		bestVal = math32.Inf(1)
	}
	for _, succ := range succs {
		pm := game.PlayerMove{Player: mover, Coord: succ.move}
		krec := s.record(rec, succ.pos, pm, true, !maximizing, depth.Dec())
		_, _, val := s.alphabeta(succ.pos, depth.Dec(), alpha, beta, !maximizing, krec)
		if maximizing {
			if val > bestVal {
				best, found, bestVal = succ.move, true, val
			}
			if bestVal >= beta {
				s.stats.Cutoffs++
				rec.cutoff()
				break
			}
			if bestVal > alpha {
				alpha = bestVal
			}
		} else {
			if val < bestVal {
				best, found, bestVal = succ.move, true, val
			}
			if bestVal <= alpha {
				s.stats.Cutoffs++
				rec.cutoff()
				break
			}
			if bestVal < beta {
				beta = bestVal
			}
		}
	}
	// a value clipped by the window is a bound, not a utility
	if s.Caching && alphaOrig < bestVal && bestVal < betaOrig {
		s.cache.put(pos.Key(), depth, maximizing, bestVal)
	}
	rec.answer(bestVal, false, false)
	return best, found, bestVal
}

// order sorts successors most-promising-first for the mover: greatest
// utility first at a maximizing node, least first at a minimizing one. The
// sort is stable, so equally scored successors keep their enumeration order.
func (s *Search) order(succs []successor, maximizing bool) {
	for i := range succs {
		succs[i].val = s.eval(succs[i].pos, s.player)
	}
	sort.SliceStable(succs, func(i, j int) bool {
		if maximizing {
			return succs[i].val > succs[j].val
		}
		return succs[i].val < succs[j].val
	})
}

// SelectMoveMinimax picks a move for p on pos by plain minimax, looking
// limit plies ahead.
func SelectMoveMinimax(pos game.Position, p game.Player, limit Depth, caching bool) (game.Coord, float32, bool) {
	return New(Config{Algorithm: Minimax, Limit: limit, Caching: caching}).SelectMove(pos, p)
}

// SelectMoveAlphaBeta picks a move for p on pos by alpha-beta search. For
// the same limit its horizon sits one ply closer than SelectMoveMinimax's:
// the root itself costs the first ply.
func SelectMoveAlphaBeta(pos game.Position, p game.Player, limit Depth, caching, ordering bool) (game.Coord, float32, bool) {
	return New(Config{Algorithm: AlphaBeta, Limit: limit, Caching: caching, Ordering: ordering}).SelectMove(pos, p)
}
