package iago

import (
	"github.com/reversai/iago/game"
	"github.com/reversai/iago/minimax"
)

// An Agent is a player: a search strategy, the colour it currently holds,
// and its running score.
type Agent struct {
	Search Searcher
	Player game.Player
	Enc    GameEncoder

	// Statistics
	Wins float32
	Loss float32
	Draw float32

	name string
}

func newAgent(name string, conf minimax.Config, enc GameEncoder) *Agent {
	return &Agent{
		Search: minimax.New(conf),
		Enc:    enc,
		name:   name,
	}
}

// SelectMove asks the agent's search to pick a move for the colour it holds.
func (a *Agent) SelectMove(pos game.Position) (game.Coord, float32, bool) {
	return a.Search.SelectMove(pos, a.Player)
}

func (a *Agent) resetStats() {
	a.Wins = 0
	a.Loss = 0
	a.Draw = 0
}
