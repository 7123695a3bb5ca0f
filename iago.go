package iago

import (
	"encoding/gob"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/reversai/iago/game"
)

// Series is the top level structure and the entry point of the API. It pits
// two configured searchers against one another over a run of games, keeping
// score and collecting examples of the moves played along the way.
type Series struct {
	// state
	Arena
	Statistics
	examples []Example

	// config
	conf Config
}

// New creates a Series from a starting position and a configuration for both
// players.
func New(start game.Position, conf Config) *Series {
	if !conf.A.IsValid() {
		panic("A's search configuration is invalid. Unable to proceed")
	}
	if !conf.B.IsValid() {
		panic("B's search configuration is invalid. Unable to proceed")
	}

	retVal := &Series{
		Arena:      MakeArena(start, conf.A, conf.B, conf.Encoder, conf.Name),
		Statistics: makeStatistics(),
		conf:       conf,
	}
	retVal.logger = log.New(&retVal.buf, "", log.Ltime)
	return retVal
}

// Run plays the given number of games, alternating colours between games.
// Examples are recorded when the configuration carries an Encoder.
func (s *Series) Run(games int) error {
	s.A.resetStats()
	s.B.resetStats()

	record := s.conf.Encoder != nil
	for s.gameNumber = 0; s.gameNumber < games; s.gameNumber++ {
		_, examples, err := s.Play(record, s.conf.OutputEncoder, s.conf.Augmenter)
		if err != nil {
			return errors.WithMessagef(err, "game %d", s.gameNumber)
		}
		s.examples = append(s.examples, examples...)
		s.Reset()
	}

	if s.conf.MaxExamples > 0 && len(s.examples) > s.conf.MaxExamples {
		shuffleExamples(s.examples)
		s.examples = s.examples[:s.conf.MaxExamples]
	}

	s.update(s.A)
	s.update(s.B)

	if s.conf.OutputEncoder != nil {
		return s.conf.OutputEncoder.Flush()
	}
	return nil
}

// Examples returns the examples recorded so far.
func (s *Series) Examples() []Example { return s.examples }

// SaveExamples writes the recorded examples into filename.
func (s *Series) SaveExamples(filename string) error {
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()

	enc := gob.NewEncoder(f)
	if err = enc.Encode(s.examples); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// LoadExamples replaces the recorded examples with those in filename.
func (s *Series) LoadExamples(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()

	dec := gob.NewDecoder(f)
	var examples []Example
	if err = dec.Decode(&examples); err != nil {
		return errors.WithStack(err)
	}
	s.examples = examples
	return nil
}

func shuffleExamples(examples []Example) {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := range examples {
		j := r.Intn(i + 1)
		examples[i], examples[j] = examples[j], examples[i]
	}
}
