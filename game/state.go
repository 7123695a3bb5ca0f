package game

import (
	"fmt"
)

// Colour is the colour of a disc (or the absence of one) on a cell.
type Colour int32

const (
	None Colour = iota
	Dark
	Light
)

func (cl Colour) Format(s fmt.State, c rune) {
	switch c {
	case 'v': // used in debug
		switch cl {
		case None:
			fmt.Fprint(s, "None")
		case Dark:
			fmt.Fprint(s, "Dark")
		case Light:
			fmt.Fprint(s, "Light")
		}
	case 's': // used in board rendering
		switch cl {
		case None:
			fmt.Fprint(s, "·")
		case Dark:
			fmt.Fprint(s, "X")
		case Light:
			fmt.Fprint(s, "O")
		}
	}
}

// Player represents a player. It's also a colour.
type Player Colour

// Opponent returns the player on the other side of the board.
// None is its own opponent.
func (p Player) Opponent() Player {
	switch Colour(p) {
	case Dark:
		return Player(Light)
	case Light:
		return Player(Dark)
	}
	return p
}

func (p Player) Format(s fmt.State, c rune) { Colour(p).Format(s, c) }

// Coord represents a (column, row) coordinate.
// Given we're unlikely to actually have a board size of 255x255 or greater,
// a pair of int16s is more than sufficient to represent the coordinates
//		- (0, 0) represents the top left
//		- X grows rightwards (column), Y grows downwards (row)
//		- (7, 7) represents the bottom right of an 8x8 board
type Coord struct {
	X, Y int16
}

// Add returns the coordinate translated by other. Useful for walking rays.
func (c Coord) Add(other Coord) Coord { return Coord{c.X + other.X, c.Y + other.Y} }

func (c Coord) Eq(other Coord) bool { return c.X == other.X && c.Y == other.Y }

func (c Coord) Format(s fmt.State, r rune) { fmt.Fprintf(s, "(%d, %d)", c.X, c.Y) }

// PlayerMove is a tuple indicating the player and the coordinate the player
// places a disc at.
type PlayerMove struct {
	Player
	Coord
}

// Eq returns true if both are equal
func (p PlayerMove) Eq(other PlayerMove) bool {
	return p.Player == other.Player && p.Coord.Eq(other.Coord)
}

func (p PlayerMove) Format(s fmt.State, c rune) { fmt.Fprintf(s, "%v@%v", p.Player, p.Coord) }

// Key is the canonical flattened encoding of a board. Two positions have the
// same Key if and only if they are cell-for-cell identical. Boards of
// different sizes never share a Key because the encodings differ in length.
type Key string

// Position is a single position of a two-player perfect-information game.
// Positions are immutable values: Apply returns a fresh Position and never
// modifies the receiver, so any number of lines of play may be explored from
// the same Position.
type Position interface {
	BoardSize() (int, int)          // returns the board size (rows, cols)
	Board() []Colour                // returns the board cells in row-major order. The slice must not be mutated.
	LegalMoves(p Player) []Coord    // returns every legal placement for p, in a fixed enumeration order
	Apply(m PlayerMove) Position    // returns the position after a legal move. Illegal moves are the caller's bug; the position is returned unchanged.
	Count(p Player) int             // returns the number of discs p has on the board
	Key() Key                       // returns the canonical encoding of the board

	fmt.Formatter
}

// MetaState is the metadata surrounding a position in a series of games.
// Output encoders consume these.
type MetaState interface {
	Name() string // name of the series
	GameNumber() int
	MoveNumber() int
	Score(p Player) int
	Position() Position
}
