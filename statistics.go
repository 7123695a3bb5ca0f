package iago

import (
	"encoding/csv"
	"os"
	"strconv"
)

// Statistics tallies results per agent across runs, keyed by agent name.
type Statistics struct {
	Creation []string
	Wins     map[string][]float32
	Losses   map[string][]float32
	Draws    map[string][]float32
}

func makeStatistics() Statistics {
	return Statistics{
		Creation: make([]string, 0, 64),
		Wins:     make(map[string][]float32),
		Losses:   make(map[string][]float32),
		Draws:    make(map[string][]float32),
	}
}

func (s *Statistics) update(a *Agent) {
	if _, ok := s.Wins[a.name]; !ok {
		s.Creation = append(s.Creation, a.name)
	}
	s.Wins[a.name] = append(s.Wins[a.name], a.Wins)
	s.Losses[a.name] = append(s.Losses[a.name], a.Loss)
	s.Draws[a.name] = append(s.Draws[a.name], a.Draw)
}

// Dump writes win rates to filename as CSV: one column per agent, one row
// per recorded snapshot.
func (s *Statistics) Dump(filename string) error {
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write(s.Creation); err != nil {
		return err
	}
	var records [][]string
	for i, agent := range s.Creation {
		for j, win := range s.Wins[agent] {
			record := make([]string, len(s.Creation))
			total := win + s.Losses[agent][j] + s.Draws[agent][j]
			var winRate float32
			if total > 0 {
				winRate = win / total
			}
			record[i] = strconv.FormatFloat(float64(winRate), 'f', 3, 32)
			records = append(records, record)
		}
	}
	if err := w.WriteAll(records); err != nil {
		return err
	}
	w.Flush()
	return nil
}
