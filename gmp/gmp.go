// Package gmp speaks the line-oriented game manager protocol: the engine
// announces its name, reads one comma-separated configuration line, then
// loops answering SCORE lines (status plus a board literal) with moves until
// the manager declares FINAL.
package gmp

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/reversai/iago/game"
	"github.com/reversai/iago/game/reversi"
	"github.com/reversai/iago/minimax"
)

const (
	score = "SCORE"
	final = "FINAL"
)

// Config is the manager's view of an engine: which colour it plays and how
// it searches.
type Config struct {
	Colour game.Player
	Search minimax.Config
}

// ParseConfig parses the manager's configuration line. The line carries five
// comma-separated integers: colour (1 dark, 2 light), depth limit (negative
// for unbounded), algorithm (1 minimax, otherwise alpha-beta), caching flag
// and ordering flag.
func ParseConfig(line string) (Config, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) != 5 {
		return Config{}, errors.Errorf("config: want 5 comma-separated fields, got %q", line)
	}
	var ints [5]int
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return Config{}, errors.WithMessagef(err, "config field %d", i+1)
		}
		ints[i] = n
	}

	var conf Config
	switch ints[0] {
	case 1:
		conf.Colour = game.Player(game.Dark)
	case 2:
		conf.Colour = game.Player(game.Light)
	default:
		return Config{}, errors.Errorf("config: colour is 1 (dark) or 2 (light), got %d", ints[0])
	}

	conf.Search = minimax.Config{
		Algorithm: minimax.AlphaBeta,
		Limit:     minimax.Depth(ints[1]),
		Caching:   ints[3] != 0,
		Ordering:  ints[4] != 0,
	}
	if ints[2] == 1 {
		conf.Search.Algorithm = minimax.Minimax
	}
	if conf.Search.Limit < 0 {
		conf.Search.Limit = minimax.Unbounded
	}
	return conf, nil
}

// An Engine plays one side of one game over a manager connection.
// Diagnostics go to Log; the manager only ever sees the name line and moves.
type Engine struct {
	name string
	conf Config

	search *minimax.Search

	Log *log.Logger
}

// New returns an Engine that will announce itself as name.
func New(name string) *Engine {
	return &Engine{
		name: name,
		Log:  log.New(os.Stderr, "", 0),
	}
}

// Run plays a full game: it writes the name line, reads the configuration,
// then answers every SCORE with a move ("column row", or "-1 -1" when there
// is none) until FINAL arrives. It returns a non-nil error if the manager
// hangs up early or sends a line the protocol does not allow.
func (e *Engine) Run(r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)

	fmt.Fprintln(w, e.name)

	line, err := next(sc)
	if err != nil {
		return errors.WithMessage(err, "reading config")
	}
	if e.conf, err = ParseConfig(line); err != nil {
		return err
	}
	e.search = minimax.New(e.conf.Search)
	e.announce()

	for {
		line, err := next(sc)
		if err != nil {
			return errors.WithMessage(err, "reading status")
		}
		status, dark, light, err := parseStatus(line)
		if err != nil {
			return err
		}
		if status == final {
			e.Log.Printf("final score: dark %d, light %d", dark, light)
			return nil
		}

		line, err = next(sc)
		if err != nil {
			return errors.WithMessage(err, "reading board")
		}
		pos, err := reversi.Parse(line)
		if err != nil {
			return err
		}

		move, utility, ok := e.search.SelectMove(pos, e.conf.Colour)
		if !ok {
			e.Log.Printf("at %d-%d no move, passing (utility %v)", dark, light, utility)
			fmt.Fprintln(w, "-1 -1")
			continue
		}
		e.Log.Printf("at %d-%d playing %v (utility %v)", dark, light, move, utility)
		fmt.Fprintf(w, "%d %d\n", move.X, move.Y)
	}
}

func (e *Engine) announce() {
	c := e.conf.Search
	e.Log.Printf("playing %v as %v", c.Algorithm, e.conf.Colour)
	e.Log.Printf("state caching is %s", onOff(c.Caching))
	e.Log.Printf("node ordering is %s", onOff(c.Ordering))
	if c.Limit == minimax.Unbounded {
		e.Log.Print("depth limit is off")
	} else {
		e.Log.Printf("depth limit is %v", c.Limit)
	}
	if c.Algorithm == minimax.Minimax && c.Ordering {
		e.Log.Print("node ordering has no effect on minimax")
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func next(sc *bufio.Scanner) (string, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return sc.Text(), nil
}

func parseStatus(line string) (status string, dark, light int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return "", 0, 0, errors.Errorf("status: want %q or %q plus two scores, got %q", score, final, line)
	}
	status = fields[0]
	if status != score && status != final {
		return "", 0, 0, errors.Errorf("status: unknown keyword %q", status)
	}
	if dark, err = strconv.Atoi(fields[1]); err != nil {
		return "", 0, 0, errors.WithMessage(err, "status: dark score")
	}
	if light, err = strconv.Atoi(fields[2]); err != nil {
		return "", 0, 0, errors.WithMessage(err, "status: light score")
	}
	return status, dark, light, nil
}
