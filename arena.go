package iago

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"github.com/pkg/errors"
	"github.com/reversai/iago/game"
	"github.com/reversai/iago/minimax"
)

// An Arena hosts two agents and plays them against each other from a fixed
// start position.
type Arena struct {
	start game.Position
	pos   game.Position
	A, B  *Agent

	// state
	current *Agent
	buf     bytes.Buffer
	logger  *log.Logger

	name       string
	gameNumber int
	moveNumber int
}

// MakeArena makes an arena given a start position and a search configuration
// for each agent.
func MakeArena(start game.Position, confA, confB minimax.Config, enc GameEncoder, name string) Arena {
	if name == "" {
		name = "iago"
	}
	return Arena{
		start: start,
		pos:   start,
		A:     newAgent("A", confA, enc),
		B:     newAgent("B", confB, enc),
		name:  name,
	}
}

// NewArena is MakeArena with the game log wired up.
func NewArena(start game.Position, confA, confB minimax.Config, enc GameEncoder, name string) *Arena {
	ar := MakeArena(start, confA, confB, enc, name)
	ar.logger = log.New(&ar.buf, "", log.Ltime)
	return &ar
}

// Play plays one game to completion and returns the winner (None on a draw)
// along with any recorded examples. Colours follow the arena's game number:
// on even games A holds dark, on odd games B does, so a series alternates
// who moves first. A side with no legal move passes; the game ends when
// neither side can move.
func (a *Arena) Play(record bool, enc OutputEncoder, aug Augmenter) (winner game.Player, examples []Example, err error) {
	if a.logger == nil {
		a.logger = log.New(&a.buf, "", log.Ltime)
	}
	if a.gameNumber%2 == 0 {
		a.A.Player = game.Player(game.Dark)
		a.B.Player = game.Player(game.Light)
		a.current = a.A
	} else {
		a.A.Player = game.Player(game.Light)
		a.B.Player = game.Player(game.Dark)
		a.current = a.B
	}

	a.logger.Printf("playing game %d, %s as dark. recording %t\n", a.gameNumber, a.current.name, record)
	a.logger.SetPrefix("\t")
	for !gameOver(a.pos) {
		move, utility, ok := a.current.SelectMove(a.pos)
		if !ok {
			a.logger.Printf("%v passes\n", a.current.Player)
			a.switchPlayer()
			continue
		}
		a.logger.Printf("%v plays %v (utility %v)\n", a.current.Player, move, utility)

		if record && a.current.Enc != nil {
			ex := Example{
				Board: a.current.Enc(a.pos, a.current.Player),
				Move:  move,
				// the winner is unknown until the game ends, so the mover's
				// colour stands in for the value and is rewritten below
				Value: float32(a.current.Player),
			}
			if aug != nil {
				examples = append(examples, aug(ex)...)
			} else {
				examples = append(examples, ex)
			}
		}

		a.pos = a.pos.Apply(game.PlayerMove{Player: a.current.Player, Coord: move})
		a.moveNumber++
		a.switchPlayer()
		if enc != nil {
			if err := enc.Encode(a); err != nil {
				return game.Player(game.None), nil, errors.WithMessage(err, "encoding game state")
			}
		}
	}
	a.logger.SetPrefix("")

	winner = winnerOf(a.pos)
	for i := range examples {
		switch {
		case winner == game.Player(game.None):
			examples[i].Value = 0
		case examples[i].Value == float32(winner):
			examples[i].Value = 1
		default:
			examples[i].Value = -1
		}
	}
	switch winner {
	case game.Player(game.None):
		a.A.Draw++
		a.B.Draw++
	case a.A.Player:
		a.A.Wins++
		a.B.Loss++
	case a.B.Player:
		a.B.Wins++
		a.A.Loss++
	}
	a.logger.Printf("game %d over: winner %v, dark %d, light %d\n", a.gameNumber, winner,
		a.Score(game.Player(game.Dark)), a.Score(game.Player(game.Light)))
	return winner, examples, nil
}

// Reset puts the arena back at its start position, ready for the next game.
func (a *Arena) Reset() {
	a.pos = a.start
	a.moveNumber = 0
}

func (a *Arena) Name() string            { return a.name }
func (a *Arena) GameNumber() int         { return a.gameNumber }
func (a *Arena) MoveNumber() int         { return a.moveNumber }
func (a *Arena) Score(p game.Player) int { return a.pos.Count(p) }
func (a *Arena) Position() game.Position { return a.pos }

// Log writes the running game log to w.
func (a *Arena) Log(w io.Writer) {
	fmt.Fprint(w, a.buf.String())
}

func (a *Arena) switchPlayer() {
	switch a.current {
	case a.A:
		a.current = a.B
	case a.B:
		a.current = a.A
	}
}

// gameOver reports whether neither side has a legal move. A full board is
// the usual case of it.
func gameOver(pos game.Position) bool {
	return len(pos.LegalMoves(game.Player(game.Dark))) == 0 &&
		len(pos.LegalMoves(game.Player(game.Light))) == 0
}

func winnerOf(pos game.Position) game.Player {
	dark := pos.Count(game.Player(game.Dark))
	light := pos.Count(game.Player(game.Light))
	switch {
	case dark > light:
		return game.Player(game.Dark)
	case light > dark:
		return game.Player(game.Light)
	}
	return game.Player(game.None)
}
