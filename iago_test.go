package iago

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/reversai/iago/game/reversi"
	"github.com/reversai/iago/minimax"
	"github.com/stretchr/testify/assert"
)

func TestSeriesRun(t *testing.T) {
	assert := assert.New(t)
	conf := Config{
		Name:      "test series",
		A:         minimax.Config{Algorithm: minimax.AlphaBeta, Limit: 3, Caching: true, Ordering: true},
		B:         minimax.Config{Algorithm: minimax.Minimax, Limit: 2, Caching: true},
		Encoder:   MoverBoard,
		Augmenter: Rotations,
	}
	s := New(reversi.New(4), conf)
	if err := s.Run(4); err != nil {
		t.Fatal(err)
	}

	assert.Equal(float32(4), s.A.Wins+s.A.Loss+s.A.Draw, "A should have seen all 4 games")
	assert.Equal(float32(4), s.B.Wins+s.B.Loss+s.B.Draw, "B should have seen all 4 games")
	assert.Equal(s.A.Wins, s.B.Loss)
	assert.Equal(s.B.Wins, s.A.Loss)

	exs := s.Examples()
	assert.True(len(exs) > 0, "expected examples to have been recorded")
	assert.Equal(0, len(exs)%4, "each move should appear with its three rotations")
	for i, ex := range exs {
		assert.Equal(16, len(ex.Board), "example %d", i)
		assert.Contains([]float32{-1, 0, 1}, ex.Value, "example %d", i)
	}

	assert.Equal([]string{"A", "B"}, s.Creation)
	assert.Equal(1, len(s.Wins["A"]))
	assert.Equal(1, len(s.Losses["B"]))
}

func TestNewPanicsOnBadConfig(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected an invalid search configuration to panic")
		}
	}()
	New(reversi.New(4), Config{
		A: minimax.Config{Algorithm: minimax.AlphaBeta, Limit: -3},
		B: minimax.Config{Algorithm: minimax.Minimax, Limit: 1},
	})
}

func TestExamplePersistence(t *testing.T) {
	conf := Config{
		A:       minimax.Config{Algorithm: minimax.AlphaBeta, Limit: 2},
		B:       minimax.Config{Algorithm: minimax.AlphaBeta, Limit: 2},
		Encoder: MoverBoard,
	}
	s := New(reversi.New(4), conf)
	if err := s.Run(2); err != nil {
		t.Fatal(err)
	}
	if len(s.Examples()) == 0 {
		t.Fatal("expected some examples to have been recorded")
	}

	filename := filepath.Join(t.TempDir(), "examples.gob")
	if err := s.SaveExamples(filename); err != nil {
		t.Fatal(err)
	}

	s2 := New(reversi.New(4), conf)
	if err := s2.LoadExamples(filename); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(s.Examples(), s2.Examples()); diff != "" {
		t.Errorf("examples changed across save/load:\n%s", diff)
	}
}

func TestStatisticsDump(t *testing.T) {
	stats := makeStatistics()
	stats.update(&Agent{name: "A", Wins: 3, Loss: 1})
	stats.update(&Agent{name: "B", Wins: 1, Loss: 3})
	stats.update(&Agent{name: "C"})

	filename := filepath.Join(t.TempDir(), "stats.csv")
	if err := stats.Dump(filename); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(filename)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	want := [][]string{
		{"A", "B", "C"},
		{"0.750", "", ""},
		{"", "0.250", ""},
		{"", "", "0.000"},
	}
	assert.Equal(t, want, records)
}
