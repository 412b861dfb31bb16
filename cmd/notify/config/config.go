package config

import (
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Environ returns the settings from the environment.
func Environ() (*Config, error) {
	cfg := Config{}
	err := envconfig.Process("", &cfg)
	defaults(&cfg)

	return &cfg, err
}

func defaults(c *Config) {
	if c.DefaultChannel == "" {
		c.DefaultChannel = "cicd-notifications"
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = 10
	}
	if c.RetryBackoffSeconds == 0 {
		c.RetryBackoffSeconds = 2
	}
}

// String returns the configuration in string format.
func (c *Config) String() string {
	out, _ := yaml.Marshal(c)
	return string(out)
}

type Config struct {
	Logging             Logging
	DefaultChannel      string `envconfig:"NOTIFY_DEFAULT_CHANNEL"`
	TimeoutSeconds      int    `envconfig:"NOTIFY_TIMEOUT_SECONDS"`
	RetryBackoffSeconds int    `envconfig:"NOTIFY_RETRY_BACKOFF_SECONDS"`
}

type Logging struct {
	Debug  bool `envconfig:"DEBUG"`
	Trace  bool `envconfig:"TRACE"`
	Text   bool `envconfig:"LOGGING_TEXT"`
	Color  bool `envconfig:"LOGGING_COLOR"`
	Pretty bool `envconfig:"LOGGING_PRETTY"`
}
