package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/habitstack/pkg/buildinfo"
	"github.com/matzehuels/habitstack/pkg/cache"
	"github.com/matzehuels/habitstack/pkg/pipeline"
)

type graphOpts struct {
	format   string
	output   string
	reduce   bool
	detailed bool
	refresh  bool
}

// graphCommand draws the prerequisite graph.
func (c *CLI) graphCommand() *cobra.Command {
	opts := graphOpts{reduce: true}

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Draw the prerequisite graph as DOT, SVG or JSON",
		Long: `Draw the prerequisite graph. Each habit points at the habits it needs first
and is colored by its status on the reference day.

Cycles are drawn in red. With --reduce (the default), edges already implied
by a longer prerequisite chain are left out. SVG output is rendered with
Graphviz and cached; --refresh renders again.`,
		Example: `  habitstack graph > habits.dot
  habitstack graph --format svg -o habits.svg
  habitstack graph --format json | jq .nodes
  habitstack graph --format svg --detailed --reduce=false -o full.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.format, "format", pipeline.FormatDOT, "output format: dot, svg or json")
	f.StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	f.BoolVar(&opts.reduce, "reduce", true, "drop edges implied by longer prerequisite chains")
	f.BoolVar(&opts.detailed, "detailed", false, "label habits with status and streak")
	f.BoolVar(&opts.refresh, "refresh", false, "ignore cached renders")

	return cmd
}

func (c *CLI) runGraph(cmd *cobra.Command, opts graphOpts) error {
	ctx := cmd.Context()
	if err := pipeline.ValidateFormat(opts.format); err != nil {
		return err
	}
	ws, err := c.open(ctx)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, ws)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx))
	var spin *Spinner
	if opts.format == pipeline.FormatSVG {
		spin = newSpinnerWithContext(ctx, cmd.ErrOrStderr(), "Rendering graph...")
		spin.Start()
	}
	res, err := runner.Execute(ctx, ws.habits, pipeline.Options{
		Format:   opts.format,
		Date:     ws.today,
		Reduce:   opts.reduce,
		Detailed: opts.detailed,
		Refresh:  opts.refresh,
	})
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return err
	}
	prog.debug("graph stats", "stats", res.Stats.String())

	if err := writeOutput(opts.output, cmd.OutOrStdout(), res.Artifact); err != nil {
		return err
	}
	if opts.output != "" {
		errOut := cmd.ErrOrStderr()
		printSuccess(errOut, "Generated %s", opts.format)
		printFile(errOut, opts.output)
		printStats(errOut, res.Stats.NodeCount, res.Stats.EdgeCount, res.Cached)
		prog.done("Rendered graph")
	}
	return nil
}

// newRunner builds a pipeline runner on the configured cache. Keys are
// scoped to the build version so an upgrade never serves stale drawings.
func (c *CLI) newRunner(ctx context.Context, ws *workspace) (*pipeline.Runner, error) {
	store, err := openCache(ctx, ws.cfg)
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.Version+":")
	runner := pipeline.NewRunner(store, keyer, loggerFromContext(ctx))
	if ws.cfg.Cache.TTL > 0 {
		runner.TTL = ws.cfg.Cache.TTL
	}
	return runner, nil
}
