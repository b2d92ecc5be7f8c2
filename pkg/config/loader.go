package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/carrierlock/pkg/errors"
	"github.com/arthur-debert/carrierlock/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	appDirName     = "carrierlock"
	configFileName = "config.toml"
	envPrefix      = "CARRIERLOCK_"
)

// Config is the application configuration
type Config struct {
	Rules  Rules  `koanf:"rules"`
	Output Output `koanf:"output"`
	Log    Log    `koanf:"log"`
}

// Rules configures where rules come from and how they are read
type Rules struct {
	Path     string `koanf:"path"`
	Validate bool   `koanf:"validate"`
}

// Output configures rendering
type Output struct {
	Format string `koanf:"format"`
	Width  int    `koanf:"width"`
}

// Log configures logging beyond the -v flags
type Log struct {
	File bool `koanf:"file"`
}

// UserConfigPath returns the path of the user configuration file
func UserConfigPath() string {
	// Pick up XDG_* changes made after start-up
	xdg.Reload()
	return filepath.Join(xdg.ConfigHome, appDirName, configFileName)
}

// Load builds the configuration from every layer. explicitPath, when not
// empty, must name an existing TOML or YAML file. overrides holds
// dot-separated keys set from the command line and wins over everything
// else; it may be nil.
func Load(explicitPath string, overrides map[string]interface{}) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config if it exists
	userPath := UserConfigPath()
	if _, err := os.Stat(userPath); err == nil {
		if err := loadFile(k, userPath); err != nil {
			return nil, err
		}
		logger.Debug().Str("path", userPath).Msg("Loaded user config")
	}

	// 3. Explicit config file
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileNotFound, "config file not found: %s", explicitPath).
				WithDetail("path", explicitPath)
		}
		if err := loadFile(k, explicitPath); err != nil {
			return nil, err
		}
		logger.Debug().Str("path", explicitPath).Msg("Loaded explicit config")
	}

	// 4. Environment
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	// 5. Command-line overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
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
				expandHomeHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if cfg.Output.Width < 0 {
		return nil, errors.Newf(errors.ErrConfigValid, "output.width must not be negative, got %d", cfg.Output.Width).
			WithDetail("key", "output.width")
	}

	logger.Debug().
		Str("rules.path", cfg.Rules.Path).
		Bool("rules.validate", cfg.Rules.Validate).
		Str("output.format", cfg.Output.Format).
		Msg("Configuration loaded")
	return &cfg, nil
}

func loadFile(k *koanf.Koanf, path string) error {
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		parser = toml.Parser()
	case ".yaml", ".yml":
		parser = yaml.Parser()
	default:
		return errors.Newf(errors.ErrFormatUnsupported, "config files must be TOML or YAML: %s", path).
			WithDetail("path", path)
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	return nil
}

// expandHomeHookFunc expands a leading "~/" in string values
func expandHomeHookFunc() mapstructure.DecodeHookFuncKind {
	return func(from, to reflect.Kind, data interface{}) (interface{}, error) {
		s, ok := data.(string)
		if !ok || from != reflect.String || to != reflect.String {
			return data, nil
		}
		if strings.HasPrefix(s, "~/") {
			return filepath.Join(xdg.Home, s[2:]), nil
		}
		return s, nil
	}
}
