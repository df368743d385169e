package io

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/matzehuels/habitstack/pkg/errors"
	"github.com/matzehuels/habitstack/pkg/habit"
)

// Result is a decoded habit file.
type Result struct {
	Habits habit.Collection

	// Generated lists the ids assigned to habits that had none, in file
	// order.
	Generated []string
}

type document struct {
	Habits habit.Collection `json:"habits" toml:"habits"`
}

// ReadJSON decodes a JSON habit file from r.
//
// Both the {"habits": [...]} object form and a bare array are accepted.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read habits")
	}

	var habits habit.Collection
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		err = json.Unmarshal(trimmed, &habits)
	} else {
		var doc document
		err = json.Unmarshal(data, &doc)
		habits = doc.Habits
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode habits")
	}
	return prepare(habits)
}

// ReadTOML decodes a TOML habit file from r. ReadTOML does not close r.
func ReadTOML(r io.Reader) (*Result, error) {
	var doc document
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode habits")
	}
	return prepare(doc.Habits)
}

// ImportFile reads the habit file at path, choosing the decoder by
// extension: ".toml" for TOML, anything else for JSON.
func ImportFile(path string) (*Result, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "habit file %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	if isTOML(path) {
		return ReadTOML(f)
	}
	return ReadJSON(f)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// prepare fills missing ids and validates the rest.
func prepare(habits habit.Collection) (*Result, error) {
	res := &Result{Habits: habits}
	if res.Habits == nil {
		res.Habits = habit.Collection{}
	}

	seen := make(map[string]int, len(habits))
	for i := range res.Habits {
		h := &res.Habits[i]
		if h.ID == "" {
			h.ID = uuid.NewString()
			res.Generated = append(res.Generated, h.ID)
		}
		if err := errors.ValidateHabitID(h.ID); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidHabit, err, "habit #%d", i+1)
		}
		if err := errors.ValidateTitle(h.Title); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidHabit, err, "habit %q", h.ID)
		}
		if first, dup := seen[h.ID]; dup {
			return nil, errors.New(errors.ErrCodeInvalidHabit,
				"duplicate habit id %q (habits #%d and #%d)", h.ID, first+1, i+1)
		}
		seen[h.ID] = i
	}
	return res, nil
}
