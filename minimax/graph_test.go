package minimax

import (
	"strings"
	"testing"

	"github.com/reversai/iago/game/reversi"
)

func TestToDot(t *testing.T) {
	s := New(Config{Algorithm: AlphaBeta, Limit: 2, RecordTree: true})
	s.SelectMove(reversi.New(4), dark)

	dot := s.ToDot()
	for _, want := range []string{"digraph G", "Node ID", "Utility", "root", "Dark@(2, 0)", "->"} {
		if !strings.Contains(dot, want) {
			t.Errorf("dot output missing %q", want)
		}
	}
}

func TestToDotOff(t *testing.T) {
	s := New(Config{Algorithm: Minimax, Limit: 2})
	s.SelectMove(reversi.New(4), dark)
	if dot := s.ToDot(); dot != "" {
		t.Errorf("nothing was recorded, got %q", dot)
	}
}
