package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/habitstack/pkg/cache"
	"github.com/matzehuels/habitstack/pkg/graph"
	"github.com/matzehuels/habitstack/pkg/habit"
	"github.com/matzehuels/habitstack/pkg/observability"
	"github.com/matzehuels/habitstack/pkg/render/nodelink"
)

const cacheKind = "render"

// Runner executes the pipeline against a cache. It holds no per-run state
// and is safe for concurrent use if its cache is.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	TTL    time.Duration

	// render is swapped out in tests.
	render func(ctx context.Context, dot string) ([]byte, error)
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// uses cache.DefaultKeyer, and a nil logger uses log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    cache.DefaultTTL,
		render: nodelink.RenderSVG,
	}
}

// Execute builds and renders the dependency graph of habits.
func (r *Runner) Execute(ctx context.Context, habits habit.Collection, opts Options) (*Result, error) {
	if opts.Format == "" {
		opts.Format = FormatDOT
	}
	if err := ValidateFormat(opts.Format); err != nil {
		return nil, err
	}

	start := time.Now()
	g := BuildGraph(habits, opts.Date)
	res := &Result{Graph: g}
	if opts.Reduce {
		g, res.CycleEdges = Reduce(g)
		res.Graph = g
	}
	if len(res.CycleEdges) > 0 {
		r.Logger.Warn("prerequisite graph has cycles", "cut_edges", len(res.CycleEdges))
	}
	res.DOT = nodelink.ToDOT(g, nodelink.Options{Detailed: opts.Detailed})
	res.Stats.NodeCount = g.NodeCount()
	res.Stats.EdgeCount = g.EdgeCount()
	res.Stats.BuildTime = time.Since(start)
	r.Logger.Debug("built graph", "nodes", res.Stats.NodeCount, "edges", res.Stats.EdgeCount)

	switch opts.Format {
	case FormatDOT:
		res.Artifact = []byte(res.DOT)
		return res, nil
	case FormatJSON:
		data, err := graph.MarshalGraph(g)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", opts.Format, err)
		}
		res.Artifact = data
		return res, nil
	}

	renderStart := time.Now()
	data, hit, err := r.renderCached(ctx, res.DOT, res.Stats.NodeCount, opts)
	res.Stats.RenderTime = time.Since(renderStart)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", opts.Format, err)
	}
	res.Artifact = data
	res.Cached = hit
	return res, nil
}

func (r *Runner) renderCached(ctx context.Context, dot string, nodeCount int, opts Options) ([]byte, bool, error) {
	key := r.Keyer.RenderKey(cache.Hash([]byte(dot)), cache.RenderKeyOpts{Format: opts.Format})
	hooks := observability.Cache()

	if !opts.Refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil {
			r.Logger.Warn("cache read failed", "err", err)
		} else if hit {
			hooks.OnCacheHit(ctx, cacheKind)
			return data, true, nil
		}
	}
	hooks.OnCacheMiss(ctx, cacheKind)

	observability.Render().OnRenderStart(ctx, opts.Format, nodeCount)
	start := time.Now()
	data, err := r.render(ctx, dot)
	observability.Render().OnRenderComplete(ctx, opts.Format, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
		r.Logger.Warn("cache write failed", "err", err)
	} else {
		hooks.OnCacheSet(ctx, cacheKind, len(data))
	}
	return data, false, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
