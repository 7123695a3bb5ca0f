package gif

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"math"
	"strings"

	"github.com/golang/freetype/truetype"
	"github.com/reversai/iago/game"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

var regular *truetype.Font

const (
	dpi             = 144.0
	fontsize        = 12.0
	lineheight      = 1.2
	dummyLongString = `Game 10000, Move 10000`
)

func init() {
	var err error
	if regular, err = truetype.Parse(gomono.TTF); err != nil {
		panic(err)
	}
}

var globPalette = color.Palette{
	color.Gray{0},
	color.Gray{253},
}

// Encoder renders each move of a series as a frame of an animated GIF. It
// implements the iago.OutputEncoder interface. Assign the Writer before
// Flush is called.
type Encoder struct {
	H, W int
	font.Drawer

	out *gif.GIF
	io.Writer
	face font.Face

	maxH, maxW  int // maxHeight and maxWidth
	padH, padW  int // padding so everything don't start at the topleft
	initialized bool
}

// NewGifEncoder with height and width
func NewGifEncoder(h, w int) *Encoder {
	return &Encoder{
		H:    -1,
		W:    -1,
		maxH: h,
		maxW: w,
		padH: 10,
		padW: 10,

		Drawer: font.Drawer{
			Src: image.Black,
		},
		out: &gif.GIF{LoopCount: -1},
	}
}

// Encode a frame of the running game
func (enc *Encoder) Encode(ms game.MetaState) error {
	pos := ms.Position()
	repr := fmt.Sprintf("%s", pos)

	if !enc.initialized {
		// lazy init of specifications
		enc.face = truetype.NewFace(regular, &truetype.Options{
			Size:    fontsize,
			DPI:     dpi,
			Hinting: font.HintingFull,
		})
		enc.Drawer.Src = image.Black
		enc.Drawer.Face = enc.face

		// first calculate how long the max length will be
		splits := strings.Split(repr, "\n")
		oneline := splits[0]
		maxW := maxInt(font.MeasureString(enc.Face, oneline).Ceil(), font.MeasureString(enc.Face, dummyLongString).Ceil())
		dy := int(math.Ceil(fontsize * lineheight * dpi / 72))
		w := maxW + 2*enc.padW
		h := (len(splits)+3)*dy + 2*enc.padH // + 3 is for the 3 extra lines: series name, game and move, and winner

		w = minInt(w, enc.maxW)
		h = minInt(h, enc.maxH)

		if w == enc.maxW {
			enc.padW = 0
		}
		if h == enc.maxH {
			enc.padH = 0
		}

		enc.H = h
		enc.W = w
		enc.initialized = true
	}

	x := 0
	y := 0

	bg := image.White
	im := image.NewPaletted(image.Rect(0, 0, enc.W, enc.H), globPalette)
	draw.Draw(im, im.Bounds(), bg, image.ZP, draw.Src)
	dy := int(math.Ceil(fontsize * lineheight * dpi / 72))
	enc.Dot = fixed.Point26_6{
		X: fixed.I(x + enc.padW),
		Y: fixed.I(y + enc.padH),
	}
	y += dy
	text := strings.Split(repr, "\n")
	enc.Dst = im
	for _, s := range text {
		enc.Dot = fixed.P(0+enc.padW, y)
		enc.DrawString(s)
		y += dy
	}
	enc.Dot = fixed.P(0+enc.padW, y)
	enc.DrawString(ms.Name())
	y += dy

	enc.Dot = fixed.P(0+enc.padW, y)
	enc.DrawString(fmt.Sprintf("Game %d, Move %d ", ms.GameNumber(), ms.MoveNumber()))
	y += dy

	var delay int
	if over(pos) {
		delay = 300
		dark := ms.Score(game.Player(game.Dark))
		light := ms.Score(game.Player(game.Light))
		enc.Dot = fixed.P(0+enc.padW, y)
		switch {
		case dark > light:
			enc.DrawString(fmt.Sprintf("Winner: %v, %d to %d", game.Dark, dark, light))
		case light > dark:
			enc.DrawString(fmt.Sprintf("Winner: %v, %d to %d", game.Light, light, dark))
		default:
			enc.DrawString(fmt.Sprintf("Drawn %d to %d", dark, light))
		}
	}
	enc.out.Image = append(enc.out.Image, im)
	enc.out.Delay = append(enc.out.Delay, delay)
	return nil
}

// Flush writes the gif into the writer
func (enc *Encoder) Flush() error { return gif.EncodeAll(enc.Writer, enc.out) }

func over(pos game.Position) bool {
	return len(pos.LegalMoves(game.Player(game.Dark))) == 0 &&
		len(pos.LegalMoves(game.Player(game.Light))) == 0
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
