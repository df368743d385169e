// Package config loads habitstack settings from a TOML file.
//
// The default location is $XDG_CONFIG_HOME/habitstack/config.toml, falling
// back to ~/.config/habitstack/config.toml:
//
//	habits_file = "~/habits.json"
//	timezone    = "Europe/Berlin"
//	days_back   = 30
//	weeks       = 4
//
//	[cache]
//	backend    = "redis"        # file, redis or none
//	redis_addr = "localhost:6379"
//	ttl        = "168h"
//
// Every key is optional. Command-line flags override file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/habitstack/pkg/cache"
	"github.com/matzehuels/habitstack/pkg/errors"
	"github.com/matzehuels/habitstack/pkg/stats"
)

const appName = "habitstack"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config holds all user settings.
type Config struct {
	HabitsFile string      `toml:"habits_file"`
	Timezone   string      `toml:"timezone"`
	DaysBack   int         `toml:"days_back"`
	Weeks      int         `toml:"weeks"`
	Cache      CacheConfig `toml:"cache"`
}

// CacheConfig selects and tunes the render cache.
type CacheConfig struct {
	Backend   string        `toml:"backend"`
	Dir       string        `toml:"dir"`
	RedisAddr string        `toml:"redis_addr"`
	RedisDB   int           `toml:"redis_db"`
	Prefix    string        `toml:"prefix"`
	TTL       time.Duration `toml:"ttl"`
}

// Default returns the settings used when no file exists.
func Default() *Config {
	return &Config{
		DaysBack: stats.DefaultDaysBack,
		Weeks:    stats.DefaultWeeks,
		Cache: CacheConfig{
			Backend:   BackendFile,
			RedisAddr: "localhost:6379",
			Prefix:    appName + ":",
			TTL:       cache.DefaultTTL,
		},
	}
}

// Dir returns the habitstack config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + appName
	}
	return filepath.Join(home, ".config", appName)
}

// File returns the default config file path.
func File() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config at path on top of Default. An empty path means
// File(), and a missing default file yields the defaults. A missing
// explicit path, unknown keys, and invalid values are errors.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = File()
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if os.IsNotExist(err) {
			if !explicit {
				return cfg, nil
			}
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, errs, "%s", path)
	}
	return cfg, nil
}

// Location resolves Timezone. An empty timezone is time.Local.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "timezone %q", c.Timezone)
	}
	return loc, nil
}

// HabitsPath returns HabitsFile with a leading "~/" expanded, or
// habits.json in the config directory when unset.
func (c *Config) HabitsPath() string {
	if c.HabitsFile == "" {
		return filepath.Join(Dir(), "habits.json")
	}
	return expandHome(c.HabitsFile)
}

// CacheDir returns Cache.Dir with "~/" expanded, or the user cache
// directory when unset.
func (c *Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return expandHome(c.Cache.Dir), nil
	}
	return cache.DefaultDir()
}

func expandHome(p string) string {
	if !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[2:])
}

// ValidationError is a single invalid setting.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors collects every invalid setting.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}
	parts := make([]string, len(e))
	for i, err := range e {
		parts[i] = err.Error()
	}
	return fmt.Sprintf("%d validation errors: %s", len(e), strings.Join(parts, "; "))
}

// ValidBackends lists the accepted cache backends.
func ValidBackends() []string {
	return []string{BackendFile, BackendRedis, BackendNone}
}

// Validate reports every invalid setting, or nil.
func (c *Config) Validate() ValidationErrors {
	var errs ValidationErrors
	if c.DaysBack < 1 {
		errs = append(errs, ValidationError{"days_back", c.DaysBack, "must be at least 1"})
	}
	if c.Weeks < 1 {
		errs = append(errs, ValidationError{"weeks", c.Weeks, "must be at least 1"})
	}
	if c.Timezone != "" {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			errs = append(errs, ValidationError{"timezone", c.Timezone, "unknown time zone"})
		}
	}
	if !slices.Contains(ValidBackends(), c.Cache.Backend) {
		errs = append(errs, ValidationError{"cache.backend", c.Cache.Backend,
			"must be one of " + strings.Join(ValidBackends(), ", ")})
	}
	if c.Cache.Backend == BackendRedis && c.Cache.RedisAddr == "" {
		errs = append(errs, ValidationError{"cache.redis_addr", c.Cache.RedisAddr, "required for the redis backend"})
	}
	if c.Cache.TTL < 0 {
		errs = append(errs, ValidationError{"cache.ttl", c.Cache.TTL, "must not be negative"})
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
