// Package config loads the settings of the htmlattrs command.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Log     LogConfig
	Window  WindowConfig
	Script  ScriptConfig
	Metrics MetricsConfig
}

type LogConfig struct {
	Level string
}

// WindowConfig describes the window documents are loaded into.
type WindowConfig struct {
	URL string
}

type ScriptConfig struct {
	Enabled bool
}

type MetricsConfig struct {
	Namespace string
}

// Load reads configuration from path, if given, and the environment. Env var
// overrides use prefix HTMLATTRS_, e.g. HTMLATTRS_LOG_LEVEL.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("window.url", "about:blank")
	v.SetDefault("script.enabled", true)
	v.SetDefault("metrics.namespace", "htmlattrs")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "read config %s", path)
		}
	}

	v.SetEnvPrefix("HTMLATTRS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config")
	}
	return c, nil
}

// ApplyLogging sets the logrus level from the config.
func (c Config) ApplyLogging() error {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return errors.Wrap(err, "log.level")
	}
	logrus.SetLevel(level)
	return nil
}
