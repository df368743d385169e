// Package pipeline turns a habit collection into a rendered dependency
// graph: build → annotate → reduce → DOT → render, with the slow render
// step cached.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	res, err := runner.Execute(ctx, habits, pipeline.Options{
//	    Format: pipeline.FormatSVG,
//	    Date:   today,
//	    Reduce: true,
//	})
//	os.Stdout.Write(res.Artifact)
//
// # Stages
//
//  1. Build: [BuildGraph] creates the prerequisite graph and annotates each
//     habit with its status and streak on Options.Date.
//  2. Reduce: cycles are cut (the cut edges are kept and flagged so the
//     drawing still shows them) and implied edges are dropped.
//  3. Render: DOT and node-link JSON are written directly; SVG goes
//     through Graphviz and is cached under a hash of the DOT source.
package pipeline

import (
	"fmt"
	"time"

	"github.com/matzehuels/habitstack/pkg/dag"
	"github.com/matzehuels/habitstack/pkg/errors"
)

// Output formats.
const (
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatDOT:  true,
	FormatSVG:  true,
	FormatJSON: true,
}

// ValidateFormat reports whether format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (want dot, svg or json)", format)
	}
	return nil
}

// Options configures one pipeline run.
type Options struct {
	// Format is FormatDOT, FormatSVG or FormatJSON.
	Format string

	// Date selects the day whose status and streak annotate each node. A
	// zero Date skips annotation.
	Date time.Time

	// Reduce drops edges implied by longer prerequisite chains.
	Reduce bool

	// Detailed labels nodes with all of their metadata.
	Detailed bool

	// Refresh ignores cached renders (they are still rewritten).
	Refresh bool
}

// Result is the output of a pipeline run.
type Result struct {
	Graph    *dag.DAG
	DOT      string
	Artifact []byte

	// CycleEdges lists the edges cut to make the graph acyclic for
	// reduction. Empty for a valid collection.
	CycleEdges []dag.Edge

	Cached bool
	Stats  Stats
}

// Stats holds size and timing figures.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	BuildTime  time.Duration
	RenderTime time.Duration
}

// String summarizes the stats on one line.
func (s Stats) String() string {
	return fmt.Sprintf("%d nodes, %d edges (build %s, render %s)",
		s.NodeCount, s.EdgeCount,
		s.BuildTime.Round(time.Millisecond), s.RenderTime.Round(time.Millisecond))
}
