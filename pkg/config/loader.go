package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/wieldy/pkg/errors"
	"github.com/arthur-debert/wieldy/pkg/logging"
	"github.com/arthur-debert/wieldy/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes environment variables holding configuration values
const EnvPrefix = "WIELDY_"

// Sources tells LoadConfiguration where to look for settings
type Sources struct {
	// UserConfig is the user config file, paths.UserConfigPath() when empty
	UserConfig string
	// ProjectDir holds .wieldy.toml, the working directory when empty
	ProjectDir string
	// Overrides are dotted keys set from the command line
	Overrides map[string]interface{}
}

// LoadConfiguration merges every configuration layer, decodes the result and
// validates it
func LoadConfiguration(src Sources) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User and project files, when they exist
	userConfig := src.UserConfig
	if userConfig == "" {
		userConfig = paths.UserConfigPath()
	}
	projectDir := src.ProjectDir
	if projectDir == "" {
		projectDir = "."
	}
	for _, path := range []string{userConfig, filepath.Join(projectDir, paths.ProjectConfigFile)} {
		if err := loadFile(k, path); err != nil {
			return nil, err
		}
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	// 4. Command line
	if len(src.Overrides) > 0 {
		if err := k.Load(confmap.Provider(src.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("userConfig", userConfig).
		Str("projectDir", projectDir).
		Interface("config", cfg).
		Msg("Configuration loaded")

	return &cfg, nil
}

func loadFile(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path).
			WithDetail("path", path)
	}

	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	return nil
}

// envKey maps WIELDY_BUILD_OUTPUT_DIR to build.output_dir: the first
// underscore separates the section from the key.
func envKey(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
}
