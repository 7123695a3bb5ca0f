package game

import (
	"fmt"
	"testing"
)

func TestOpponent(t *testing.T) {
	if op := Player(Dark).Opponent(); op != Player(Light) {
		t.Errorf("Dark's opponent: got %v", op)
	}
	if op := Player(Light).Opponent(); op != Player(Dark) {
		t.Errorf("Light's opponent: got %v", op)
	}
	if op := Player(None).Opponent(); op != Player(None) {
		t.Errorf("None's opponent: got %v", op)
	}
}

func TestCoord(t *testing.T) {
	c := Coord{X: 3, Y: 2}
	if got := c.Add(Coord{X: -1, Y: 1}); !got.Eq(Coord{X: 2, Y: 3}) {
		t.Errorf("Add: got %v", got)
	}
	if c.Eq(Coord{X: 2, Y: 3}) {
		t.Error("Eq should compare both axes")
	}
	if s := fmt.Sprintf("%v", c); s != "(3, 2)" {
		t.Errorf("Format: got %q", s)
	}
}

func TestPlayerMoveFormat(t *testing.T) {
	pm := PlayerMove{Player: Player(Dark), Coord: Coord{X: 5, Y: 3}}
	if s := fmt.Sprintf("%v", pm); s != "Dark@(5, 3)" {
		t.Errorf("got %q", s)
	}
	if !pm.Eq(PlayerMove{Player: Player(Dark), Coord: Coord{X: 5, Y: 3}}) {
		t.Error("Eq should hold for identical moves")
	}
	if pm.Eq(PlayerMove{Player: Player(Light), Coord: Coord{X: 5, Y: 3}}) {
		t.Error("Eq should compare players")
	}
}

func TestMakeIterator(t *testing.T) {
	board := make([]Colour, 12)
	it := MakeIterator(board, 3, 4)
	defer ReturnIterator(3, 4, it)

	if len(it) != 3 || len(it[0]) != 4 {
		t.Fatalf("iterator shape: %d×%d", len(it), len(it[0]))
	}

	// the iterator aliases the backing slice
	it[2][3] = Dark
	if board[11] != Dark {
		t.Error("write through iterator should hit the backing slice")
	}
	board[4] = Light
	if it[1][0] != Light {
		t.Error("write to the backing slice should be visible through the iterator")
	}
}
