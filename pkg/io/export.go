package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/habitstack/pkg/habit"
)

// tomlHabit flattens progress to a plain array so it is written inline
// with the other keys of its [[habits]] table.
type tomlHabit struct {
	ID            string           `toml:"id"`
	Title         string           `toml:"title,omitempty"`
	Prerequisites []string         `toml:"prerequisites,omitempty"`
	Progress      []string         `toml:"progress,omitempty"`
	Freq          *habit.Frequency `toml:"freq,omitempty"`
}

type tomlDocument struct {
	Habits []tomlHabit `toml:"habits"`
}

// WriteJSON encodes habits as an indented {"habits": [...]} document.
// Progress is written as a sorted array, so output is stable. The result
// can be read back with [ReadJSON].
func WriteJSON(habits habit.Collection, w io.Writer) error {
	if habits == nil {
		habits = habit.Collection{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(document{Habits: habits}); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteTOML encodes habits as [[habits]] tables.
func WriteTOML(habits habit.Collection, w io.Writer) error {
	doc := tomlDocument{Habits: make([]tomlHabit, len(habits))}
	for i, h := range habits {
		th := tomlHabit{
			ID:            h.ID,
			Title:         h.Title,
			Prerequisites: h.Prerequisites,
			Freq:          h.Freq,
		}
		for _, k := range h.Progress.Sorted() {
			th.Progress = append(th.Progress, k.String())
		}
		doc.Habits[i] = th
	}
	if err := toml.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportFile writes habits to path, as TOML when the extension is ".toml"
// and JSON otherwise.
func ExportFile(habits habit.Collection, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if isTOML(path) {
		return WriteTOML(habits, f)
	}
	return WriteJSON(habits, f)
}
