package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/habitstack/pkg/datekey"
	"github.com/matzehuels/habitstack/pkg/errors"
	"github.com/matzehuels/habitstack/pkg/habit"
)

const sampleJSON = `{
  "habits": [
    {"id": "stretch", "title": "Stretch", "freq": {"mode": "daily"},
     "progress": ["2026-10-18", "2026-10-19T07:15:00Z"]},
    {"id": "run", "title": "Run", "freq": {"mode": "weekly", "days": [1, 3]},
     "prerequisites": ["stretch"]}
  ]
}`

const sampleTOML = `
[[habits]]
id = "stretch"
title = "Stretch"
freq = { mode = "daily" }
progress = [2026-10-18, "2026-10-19"]

[[habits]]
id = "run"
title = "Run"
prerequisites = ["stretch"]

[habits.freq]
mode = "weekly"
days = [1, 3]
`

func checkSample(t *testing.T, res *Result) {
	t.Helper()
	if len(res.Habits) != 2 {
		t.Fatalf("len(Habits) = %d, want 2", len(res.Habits))
	}
	if len(res.Generated) != 0 {
		t.Errorf("Generated = %v, want none", res.Generated)
	}

	stretch, ok := res.Habits.Find("stretch")
	if !ok {
		t.Fatal("stretch not found")
	}
	if stretch.Freq == nil || stretch.Freq.Mode != habit.ModeDaily {
		t.Errorf("stretch.Freq = %+v, want daily", stretch.Freq)
	}
	for _, k := range []datekey.Key{"2026-10-18", "2026-10-19"} {
		if !stretch.CompletedOn(k) {
			t.Errorf("stretch not completed on %s (progress %v)", k, stretch.Progress.Sorted())
		}
	}

	run, _ := res.Habits.Find("run")
	if run.Freq == nil || run.Freq.Mode != habit.ModeWeekly || len(run.Freq.Days) != 2 {
		t.Errorf("run.Freq = %+v, want weekly [1 3]", run.Freq)
	}
	if len(run.Prerequisites) != 1 || run.Prerequisites[0] != "stretch" {
		t.Errorf("run.Prerequisites = %v", run.Prerequisites)
	}
}

func TestReadJSON(t *testing.T) {
	res, err := ReadJSON(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	checkSample(t, res)
}

func TestReadJSONBareArray(t *testing.T) {
	res, err := ReadJSON(strings.NewReader(`  [{"id": "a", "freq": {"mode": "daily"}}]`))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if ids := res.Habits.IDs(); len(ids) != 1 || ids[0] != "a" {
		t.Errorf("IDs() = %v, want [a]", ids)
	}
}

func TestReadTOML(t *testing.T) {
	res, err := ReadTOML(strings.NewReader(sampleTOML))
	if err != nil {
		t.Fatalf("ReadTOML: %v", err)
	}
	checkSample(t, res)
}

func TestReadGeneratesMissingIDs(t *testing.T) {
	res, err := ReadJSON(strings.NewReader(`{"habits": [{"title": "A"}, {"id": "b"}, {"title": "C"}]}`))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if len(res.Generated) != 2 {
		t.Fatalf("Generated = %v, want 2 ids", res.Generated)
	}
	if res.Habits[0].ID != res.Generated[0] || res.Habits[2].ID != res.Generated[1] {
		t.Errorf("generated ids not assigned in order: %v", res.Habits.IDs())
	}
	if res.Generated[0] == res.Generated[1] {
		t.Error("generated ids are not unique")
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errors.Code
	}{
		{"malformed", `{"habits": [`, errors.ErrCodeInvalidFormat},
		{"wrong type", `{"habits": {"id": "a"}}`, errors.ErrCodeInvalidFormat},
		{"bad progress", `[{"id": "a", "progress": ["yesterday"]}]`, errors.ErrCodeInvalidFormat},
		{"duplicate id", `[{"id": "a"}, {"id": "a"}]`, errors.ErrCodeInvalidHabit},
		{"padded id", `[{"id": " a"}]`, errors.ErrCodeInvalidHabit},
		{"control title", `[{"id": "a", "title": "x\u0007"}]`, errors.ErrCodeInvalidHabit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %s, want %s (%v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestReadEmpty(t *testing.T) {
	res, err := ReadJSON(strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if res.Habits == nil || len(res.Habits) != 0 {
		t.Errorf("Habits = %#v, want empty collection", res.Habits)
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	in, err := ReadJSON(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(in.Habits, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if !strings.Contains(buf.String(), `"2026-10-18",`) {
		t.Errorf("progress not written as sorted day keys:\n%s", buf.String())
	}

	out, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON(WriteJSON()): %v", err)
	}
	checkSample(t, out)
}

func TestWriteTOMLRoundTrip(t *testing.T) {
	in, err := ReadJSON(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteTOML(in.Habits, &buf); err != nil {
		t.Fatalf("WriteTOML: %v", err)
	}
	out, err := ReadTOML(&buf)
	if err != nil {
		t.Fatalf("ReadTOML(WriteTOML()): %v\n%s", err, buf.String())
	}
	checkSample(t, out)
}

func TestImportExportFile(t *testing.T) {
	dir := t.TempDir()
	src, err := ReadJSON(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"habits.json", "habits.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := ExportFile(src.Habits, path); err != nil {
				t.Fatalf("ExportFile: %v", err)
			}
			res, err := ImportFile(path)
			if err != nil {
				t.Fatalf("ImportFile: %v", err)
			}
			checkSample(t, res)
		})
	}
}

func TestImportFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ImportFile(filepath.Join(dir, "missing.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file: code = %s, want %s", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}

	_, err = ImportFile("")
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("empty path: code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidPath)
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("[[habits]\nid="), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = ImportFile(bad)
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("bad toml: code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidFormat)
	}
}
