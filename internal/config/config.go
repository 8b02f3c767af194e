package config

import (
	"os"

	"github.com/spf13/viper"

	"github.com/thoreinstein/radar2mdx/internal/errors"
	"github.com/thoreinstein/radar2mdx/internal/paths"
)

// AppName is the application name used for config file lookup and env prefix.
const AppName = paths.AppName

// Config represents the top-level configuration structure.
type Config struct {
	Version   int      `mapstructure:"version" yaml:"version"`
	KitTags   []string `mapstructure:"kit_tags" yaml:"kit_tags"`
	OutputExt string   `mapstructure:"output_ext" yaml:"output_ext"`
}

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	return &Config{
		Version:   1,
		KitTags:   []string{"govuk", "nhs"},
		OutputExt: ".mdx",
	}
}

// Init resets Viper and registers search paths, env binding and defaults.
// Call it once at startup before Load.
func Init() {
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix("RADAR2MDX")
	viper.AutomaticEnv()

	def := Default()
	viper.SetDefault("version", def.Version)
	viper.SetDefault("kit_tags", def.KitTags)
	viper.SetDefault("output_ext", def.OutputExt)
}

// Load reads and validates the configuration.
// With an explicit path the file must exist; with an empty path a missing
// file in the search locations falls back to defaults.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
		switch {
		case missing && path == "":
			// Implicit lookup found nothing; defaults apply.
		case missing:
			return nil, errors.Wrapf(err, "config file not found at %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(errs[0], "validating config")
	}

	return &cfg, nil
}
