// Package cli implements the habitstack command-line interface.
//
// Every habit command loads the config file, then the habit file, then
// resolves the reference day (--date, or today in the configured time
// zone) before doing its work. Loading errors carry the coded errors of
// pkg/errors so main can print a short message.
//
// # Logging
//
// Commands log through the CLI's charmbracelet logger, which is also
// attached to the command context. --verbose (-v) switches to debug level.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/habitstack/pkg/buildinfo"
	"github.com/matzehuels/habitstack/pkg/cache"
	"github.com/matzehuels/habitstack/pkg/config"
	"github.com/matzehuels/habitstack/pkg/datekey"
	"github.com/matzehuels/habitstack/pkg/errors"
	"github.com/matzehuels/habitstack/pkg/habit"
	habitio "github.com/matzehuels/habitstack/pkg/io"
	"github.com/matzehuels/habitstack/pkg/observability"
)

// appName is the application name used for directories and display.
const appName = "habitstack"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	habitsFile string
	date       string

	// now is replaced in tests.
	now func() time.Time
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		now:    time.Now,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Track habits that build on each other",
		Long: `habitstack tracks recurring habits whose prerequisites must be done first on the same day.

It answers what is due today, what is still locked, how consistently each
habit was kept, and whether a new prerequisite would create a cycle.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, c.Logger))
			observability.SetRenderHooks(logHooks{c.Logger})
			observability.SetCacheHooks(logHooks{c.Logger})
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/habitstack/config.toml)")
	pf.StringVarP(&c.habitsFile, "file", "f", "", "habit file, JSON or TOML (default from config)")
	pf.StringVar(&c.date, "date", "", "reference day as YYYY-MM-DD (default today)")

	root.AddCommand(c.dueCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.compareCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.planCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.tuiCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// workspace is the loaded state a habit command works on.
type workspace struct {
	cfg    *config.Config
	path   string
	today  time.Time
	habits habit.Collection
}

// loadConfig reads the config selected by --config.
func (c *CLI) loadConfig() (*config.Config, error) {
	return config.Load(c.configPath)
}

// open loads config, habits and the reference day.
func (c *CLI) open(ctx context.Context) (*workspace, error) {
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	today := c.now().In(loc)
	if c.date != "" {
		today, err = datekey.Parse(c.date, loc)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDate, err, "invalid --date %q (want YYYY-MM-DD)", c.date)
		}
	}

	path := c.habitsFile
	if path == "" {
		path = cfg.HabitsPath()
	}
	prog := newProgress(logger)
	res, err := habitio.ImportFile(path)
	if err != nil {
		return nil, err
	}
	for _, id := range res.Generated {
		logger.Warn("habit has no id; assigned one for this run", "id", id)
	}
	prog.debug("loaded habits", "file", path, "count", len(res.Habits), "date", datekey.Of(today))

	return &workspace{cfg: cfg, path: path, today: today, habits: res.Habits}, nil
}

// selectHabits returns the habits named by ids in argument order, or all
// habits when ids is empty.
func selectHabits(all habit.Collection, ids []string) (habit.Collection, error) {
	if len(ids) == 0 {
		return all, nil
	}
	out := make(habit.Collection, 0, len(ids))
	for _, id := range ids {
		h, ok := all.Find(id)
		if !ok {
			return nil, errors.New(errors.ErrCodeHabitNotFound, "no habit with id %q", id)
		}
		out = append(out, *h)
	}
	return out, nil
}

// openCache builds the render cache selected by the config. An unreachable
// Redis server degrades to no caching with a warning.
func openCache(ctx context.Context, cfg *config.Config) (cache.Cache, error) {
	logger := loggerFromContext(ctx)
	switch cfg.Cache.Backend {
	case config.BackendNone:
		return cache.NewNullCache(), nil
	case config.BackendRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:   cfg.Cache.RedisAddr,
			DB:     cfg.Cache.RedisDB,
			Prefix: cfg.Cache.Prefix,
		})
		if err != nil {
			logger.Warn("render cache disabled", "err", err)
			return cache.NewNullCache(), nil
		}
		return rc, nil
	default:
		dir, err := cfg.CacheDir()
		if err != nil {
			logger.Warn("render cache disabled", "err", err)
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	}
}
