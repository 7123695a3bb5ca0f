// Command arena plays two searchers against each other and reports the
// result. It can render the games as an animated GIF, dump win rates as CSV,
// save the recorded examples, and write the last searched tree as graphviz
// dot.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/reversai/iago"
	"github.com/reversai/iago/encoding/gif"
	"github.com/reversai/iago/game/reversi"
	"github.com/reversai/iago/minimax"
)

func main() {
	games := flag.Int("games", 2, "number of games to play")
	size := flag.Int("size", 8, "board size")
	depthA := flag.Int("depth-a", 5, "A's search depth; negative searches to the end of the game")
	depthB := flag.Int("depth-b", 5, "B's search depth; negative searches to the end of the game")
	plain := flag.Bool("plain-b", false, "B searches without pruning (minimax) instead of alpha-beta")
	gifFile := flag.String("gif", "", "render the games into this GIF file")
	statsFile := flag.String("stats", "", "dump win rates into this CSV file")
	examplesFile := flag.String("examples", "", "save the recorded examples into this file")
	dotFile := flag.String("dot", "", "write the tree of A's last search into this dot file")
	verbose := flag.Bool("v", false, "print the play by play")
	flag.Parse()

	if *size < 4 || *size%2 != 0 {
		log.Fatalf("board size must be even and at least 4, got %d", *size)
	}

	conf := iago.Config{
		Name:      "iago arena",
		A:         minimax.Config{Algorithm: minimax.AlphaBeta, Limit: limit(*depthA), Caching: true, Ordering: true},
		B:         minimax.Config{Algorithm: minimax.AlphaBeta, Limit: limit(*depthB), Caching: true},
		Encoder:   iago.MoverBoard,
		Augmenter: iago.Rotations,
	}
	if *plain {
		conf.B.Algorithm = minimax.Minimax
	}
	if *dotFile != "" {
		conf.A.RecordTree = true
	}

	if *gifFile != "" {
		f, err := os.Create(*gifFile)
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer f.Close()
		enc := gif.NewGifEncoder(2048, 2048)
		enc.Writer = f
		conf.OutputEncoder = enc
	}

	s := iago.New(reversi.New(*size), conf)
	if err := s.Run(*games); err != nil {
		log.Fatalf("%+v", err)
	}

	if *verbose {
		s.Log(os.Stdout)
	}
	fmt.Printf("A (%v, depth %v): %.0f wins, %.0f losses, %.0f draws\n",
		conf.A.Algorithm, conf.A.Limit, s.A.Wins, s.A.Loss, s.A.Draw)
	fmt.Printf("B (%v, depth %v): %.0f wins, %.0f losses, %.0f draws\n",
		conf.B.Algorithm, conf.B.Limit, s.B.Wins, s.B.Loss, s.B.Draw)

	if *statsFile != "" {
		if err := s.Dump(*statsFile); err != nil {
			log.Fatalf("%+v", err)
		}
	}
	if *examplesFile != "" {
		if err := s.SaveExamples(*examplesFile); err != nil {
			log.Fatalf("%+v", err)
		}
		log.Printf("saved %d examples to %s", len(s.Examples()), *examplesFile)
	}
	if *dotFile != "" {
		search := s.A.Search.(*minimax.Search)
		if err := ioutil.WriteFile(*dotFile, []byte(search.ToDot()), 0644); err != nil {
			log.Fatalf("%v", err)
		}
	}
}

func limit(depth int) minimax.Depth {
	if depth < 0 {
		return minimax.Unbounded
	}
	return minimax.Depth(depth)
}
