package config

import (
	"strings"
	"time"

	"github.com/arthur-debert/wieldy/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
)

// Compile holds compiler settings
type Compile struct {
	Compress bool `koanf:"compress" toml:"compress"`
}

// Files holds the extensions of sources and compiled files
type Files struct {
	SourceExtension string `koanf:"source_extension" toml:"source_extension"`
	OutputExtension string `koanf:"output_extension" toml:"output_extension"`
}

// Build holds settings of the build driver
type Build struct {
	// OutputDir receives compiled files. Empty means next to each source.
	OutputDir string `koanf:"output_dir" toml:"output_dir"`
	// Workers is the number of files compiled in parallel, 0 for one per CPU.
	Workers int `koanf:"workers" toml:"workers"`
}

// Watch holds settings of mirror mode
type Watch struct {
	Debounce time.Duration `koanf:"debounce" toml:"-"`
}

// Config is the main configuration structure
type Config struct {
	Compile Compile `koanf:"compile" toml:"compile"`
	Files   Files   `koanf:"files" toml:"files"`
	Build   Build   `koanf:"build" toml:"build"`
	Watch   Watch   `koanf:"watch" toml:"watch"`
}

// Default returns the configuration obtained from the embedded defaults alone
func Default() *Config {
	return &Config{
		Files: Files{
			SourceExtension: ".wml",
			OutputExtension: ".html",
		},
		Watch: Watch{Debounce: 100 * time.Millisecond},
	}
}

// Validate checks that the configuration can drive a build
func (c *Config) Validate() error {
	for key, ext := range map[string]string{
		"files.source_extension": c.Files.SourceExtension,
		"files.output_extension": c.Files.OutputExtension,
	} {
		if len(ext) < 2 || !strings.HasPrefix(ext, ".") {
			return errors.Newf(errors.ErrConfigValid,
				"%s must start with a dot and name an extension, got %q", key, ext).
				WithDetail("key", key)
		}
	}

	if c.Files.SourceExtension == c.Files.OutputExtension {
		return errors.Newf(errors.ErrConfigValid,
			"source and output extensions are both %q", c.Files.SourceExtension).
			WithDetail("key", "files.output_extension")
	}

	if c.Build.Workers < 0 {
		return errors.Newf(errors.ErrConfigValid,
			"build.workers cannot be negative, got %d", c.Build.Workers).
			WithDetail("key", "build.workers")
	}

	if c.Watch.Debounce < 0 {
		return errors.Newf(errors.ErrConfigValid,
			"watch.debounce cannot be negative, got %s", c.Watch.Debounce).
			WithDetail("key", "watch.debounce")
	}

	return nil
}

// TOML renders the configuration in the format of the config files
func (c *Config) TOML() (string, error) {
	// go-toml writes durations as integers, the files use strings like "100ms".
	view := struct {
		Compile Compile `toml:"compile"`
		Files   Files   `toml:"files"`
		Build   Build   `toml:"build"`
		Watch   struct {
			Debounce string `toml:"debounce"`
		} `toml:"watch"`
	}{
		Compile: c.Compile,
		Files:   c.Files,
		Build:   c.Build,
	}
	view.Watch.Debounce = c.Watch.Debounce.String()

	data, err := toml.Marshal(view)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return string(data), nil
}
