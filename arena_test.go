package iago

import (
	"bytes"
	"strings"
	"testing"

	"github.com/reversai/iago/game"
	"github.com/reversai/iago/game/reversi"
	"github.com/reversai/iago/minimax"
	"github.com/stretchr/testify/assert"
)

// firstMove is a stand-in Searcher that plays the first legal move it sees.
type firstMove struct{}

func (firstMove) SelectMove(pos game.Position, p game.Player) (game.Coord, float32, bool) {
	moves := pos.LegalMoves(p)
	if len(moves) == 0 {
		return game.Coord{}, 0, false
	}
	return moves[0], 0, true
}

func TestArenaPlay(t *testing.T) {
	assert := assert.New(t)
	conf := minimax.Config{Algorithm: minimax.AlphaBeta, Limit: 3, Caching: true, Ordering: true}
	ar := NewArena(reversi.New(4), conf, conf, MoverBoard, "test arena")

	winner, examples, err := ar.Play(true, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	assert.True(gameOver(ar.Position()), "the game should have been played out")

	dark := ar.Score(game.Player(game.Dark))
	light := ar.Score(game.Player(game.Light))
	switch winner {
	case game.Player(game.Dark):
		assert.True(dark > light, "dark won with %d against %d", dark, light)
	case game.Player(game.Light):
		assert.True(light > dark, "light won with %d against %d", light, dark)
	default:
		assert.Equal(dark, light, "a draw should have equal counts")
	}

	// one game played, seen from both sides
	assert.Equal(ar.A.Wins, ar.B.Loss)
	assert.Equal(ar.B.Wins, ar.A.Loss)
	assert.Equal(ar.A.Draw, ar.B.Draw)
	assert.Equal(float32(1), ar.A.Wins+ar.A.Loss+ar.A.Draw)

	assert.Equal(ar.MoveNumber(), len(examples), "every move should be recorded once")
	for i, ex := range examples {
		assert.Equal(16, len(ex.Board), "example %d", i)
		if winner == game.Player(game.None) {
			assert.Equal(float32(0), ex.Value, "example %d", i)
		} else {
			assert.Contains([]float32{-1, 1}, ex.Value, "example %d", i)
		}
	}

	var buf bytes.Buffer
	ar.Log(&buf)
	if !strings.Contains(buf.String(), "A as dark") {
		t.Error("expected the log to open with who holds dark")
	}
	if !strings.Contains(buf.String(), "plays") {
		t.Error("expected the log to mention moves played")
	}
}

func TestArenaColourAlternation(t *testing.T) {
	conf := minimax.Config{Algorithm: minimax.AlphaBeta, Limit: 2}
	ar := NewArena(reversi.New(4), conf, conf, nil, "")

	if _, _, err := ar.Play(false, nil, nil); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, game.Player(game.Dark), ar.A.Player)
	assert.Equal(t, game.Player(game.Light), ar.B.Player)

	ar.Reset()
	ar.gameNumber++
	if _, _, err := ar.Play(false, nil, nil); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, game.Player(game.Light), ar.A.Player)
	assert.Equal(t, game.Player(game.Dark), ar.B.Player)
}

func TestAgentsAgreeOnValue(t *testing.T) {
	// a depth d minimax and a depth d+1 alpha-beta search the same tree, so
	// two such agents walking one game must see it identically
	mm := newAgent("mm", minimax.Config{Algorithm: minimax.Minimax, Limit: 2}, nil)
	ab := newAgent("ab", minimax.Config{Algorithm: minimax.AlphaBeta, Limit: 3}, nil)

	pos := game.Position(reversi.New(6))
	p := game.Player(game.Dark)
	for ply := 0; ply < 6 && !gameOver(pos); ply++ {
		mm.Player = p
		ab.Player = p

		move, utility, ok := mm.SelectMove(pos)
		move2, utility2, ok2 := ab.SelectMove(pos)
		assert.Equal(t, ok, ok2, "ply %d", ply)
		assert.Equal(t, move, move2, "ply %d", ply)
		assert.Equal(t, utility, utility2, "ply %d", ply)

		if ok {
			pos = pos.Apply(game.PlayerMove{Player: p, Coord: move})
		}
		p = p.Opponent()
	}
}

func TestArenaStubSearcher(t *testing.T) {
	conf := minimax.Config{Algorithm: minimax.Minimax, Limit: 1}
	ar := NewArena(reversi.New(4), conf, conf, nil, "")
	ar.A.Search = firstMove{}
	ar.B.Search = firstMove{}

	winner, examples, err := ar.Play(true, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	assert.True(t, gameOver(ar.Position()))
	assert.Equal(t, winnerOf(ar.Position()), winner)
	assert.Nil(t, examples, "no encoder, no examples")
}
