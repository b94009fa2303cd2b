package config

import (
	"context"
	stderrors "errors"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/mrz1836/hyprws/internal/constants"
	"github.com/mrz1836/hyprws/internal/errors"
)

// newViperInstance creates a Viper instance with the HYPRWS_ env prefix,
// key replacer and defaults.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// isConfigNotFoundError returns true if the error is a viper config file not found error.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

// viperDecoderOption returns the decode hooks used for every unmarshal.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	)
}

// Load reads configuration from the global config file, the environment
// and built-in defaults. A missing config file is not an error.
func Load(ctx context.Context) (*Config, error) {
	path, err := GlobalConfigPath()
	if err != nil {
		// No home directory: env and defaults still apply.
		path = ""
	}
	return LoadFromPath(ctx, path)
}

// LoadFromPath loads configuration from a specific file path.
// An empty path or a file that does not exist skips the file layer.
func LoadFromPath(ctx context.Context, path string) (*Config, error) {
	v := newViperInstance()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) && !stderrors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrapf(err, "failed to read config file: %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	logger := zerolog.Ctx(ctx).With().Str("component", "config").Logger()
	logger.Debug().
		Str("config_file", v.ConfigFileUsed()).
		Str("hyprctl.binary", cfg.Hyprctl.Binary).
		Dur("hyprctl.timeout", cfg.Hyprctl.Timeout).
		Str("output.diagnostics", cfg.Output.Diagnostics).
		Msg("configuration loaded")

	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return &cfg, nil
}

// LoadWithOverrides loads configuration and applies CLI flag overrides.
// Only non-zero override values are applied.
func LoadWithOverrides(ctx context.Context, overrides *Config) (*Config, error) {
	cfg, err := Load(ctx)
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		applyOverrides(cfg, overrides)
	}

	if err := Validate(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration after overrides")
	}

	return cfg, nil
}

// applyOverrides merges non-zero override values into the config.
func applyOverrides(cfg, overrides *Config) {
	if overrides.Hyprctl.Binary != "" {
		cfg.Hyprctl.Binary = overrides.Hyprctl.Binary
	}
	if overrides.Hyprctl.Instance != "" {
		cfg.Hyprctl.Instance = overrides.Hyprctl.Instance
	}
	if overrides.Hyprctl.Timeout != 0 {
		cfg.Hyprctl.Timeout = overrides.Hyprctl.Timeout
	}
	if overrides.Output.Diagnostics != "" {
		cfg.Output.Diagnostics = overrides.Output.Diagnostics
	}
}
