package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v11"

	apperrors "github.com/agbru/curriculum/internal/errors"
)

// envConfig mirrors the overridable flags. Pointer fields stay nil when the
// variable is unset so that defaults are never overwritten by zero values.
type envConfig struct {
	Lesson      *string        `env:"LESSON"`
	Seed        *uint64        `env:"SEED"`
	SampleDir   *string        `env:"SAMPLE_DIR"`
	Jobs        *int           `env:"JOBS"`
	Timeout     *time.Duration `env:"TIMEOUT"`
	Quiet       *bool          `env:"QUIET"`
	Verbose     *bool          `env:"VERBOSE"`
	MetricsFile *string        `env:"METRICS_FILE"`
}

// isFlagSet reports whether one of names was given explicitly on the command line.
func isFlagSet(fs *flag.FlagSet, names ...string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		for _, name := range names {
			if f.Name == name {
				found = true
			}
		}
	})
	return found
}

// envOverride binds one environment field to the flag names it shadows.
type envOverride struct {
	flags []string
	apply func(*AppConfig, *envConfig)
}

var envOverrides = []envOverride{
	{[]string{"lesson", "l"}, func(c *AppConfig, e *envConfig) { setIf(&c.Lesson, e.Lesson) }},
	{[]string{"seed"}, func(c *AppConfig, e *envConfig) { setIf(&c.Seed, e.Seed) }},
	{[]string{"sample-dir"}, func(c *AppConfig, e *envConfig) { setIf(&c.SampleDir, e.SampleDir) }},
	{[]string{"jobs", "j"}, func(c *AppConfig, e *envConfig) { setIf(&c.Jobs, e.Jobs) }},
	{[]string{"timeout"}, func(c *AppConfig, e *envConfig) { setIf(&c.Timeout, e.Timeout) }},
	{[]string{"quiet", "q"}, func(c *AppConfig, e *envConfig) { setIf(&c.Quiet, e.Quiet) }},
	{[]string{"verbose", "v"}, func(c *AppConfig, e *envConfig) { setIf(&c.Verbose, e.Verbose) }},
	{[]string{"metrics-file"}, func(c *AppConfig, e *envConfig) { setIf(&c.MetricsFile, e.MetricsFile) }},
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// applyEnvOverrides copies CURRICULUM_* values into config for every flag
// that was not set explicitly. A malformed value is a configuration error.
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) error {
	var e envConfig
	if err := env.ParseWithOptions(&e, env.Options{Prefix: EnvPrefix}); err != nil {
		return apperrors.NewConfigError("invalid environment: %v", err)
	}
	for _, o := range envOverrides {
		if isFlagSet(fs, o.flags...) {
			continue
		}
		o.apply(config, &e)
	}
	return nil
}
