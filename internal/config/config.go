package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const envPrefix = "COLLIDE"

const (
	keyRenderScale  = "render.scale"
	keyRenderOutput = "render.output"
	keyLogLevel     = "log.level"
	keyColor        = "color"
)

type Config struct {
	config *viper.Viper
}

// Load reads collide.yaml from the working directory or
// $HOME/.config/collide, or the file at path when one is given. A missing
// config file is fine; defaults and COLLIDE_* environment variables still
// apply (COLLIDE_RENDER_SCALE sets render.scale, and so on).
func Load(path string) (*Config, error) {
	viperConfig := viper.New()
	viperConfig.SetDefault(keyRenderScale, 4.0)
	viperConfig.SetDefault(keyRenderOutput, "collide.png")
	viperConfig.SetDefault(keyLogLevel, "info")
	viperConfig.SetDefault(keyColor, true)

	viperConfig.SetEnvPrefix(envPrefix)
	// render.scale is read from COLLIDE_RENDER_SCALE
	viperConfig.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viperConfig.AutomaticEnv()

	if path != "" {
		viperConfig.SetConfigFile(path)
	} else {
		viperConfig.SetConfigName("collide")
		viperConfig.SetConfigType("yaml")
		viperConfig.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viperConfig.AddConfigPath(filepath.Join(home, ".config", "collide"))
		}
	}

	if err := viperConfig.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config")
		}
	}

	return &Config{config: viperConfig}, nil
}

func (c *Config) GetRenderScale() float64 {
	return c.config.GetFloat64(keyRenderScale)
}

func (c *Config) GetRenderOutput() string {
	return c.config.GetString(keyRenderOutput)
}

func (c *Config) GetLogLevel() string {
	return c.config.GetString(keyLogLevel)
}

func (c *Config) GetColor() bool {
	return c.config.GetBool(keyColor)
}

// The file the config was read from, if any.
func (c *Config) GetConfigFile() string {
	return c.config.ConfigFileUsed()
}
