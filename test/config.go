package test

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config tunes the integration scenarios from the environment so CI can
// stretch timeouts on slow runners.
type Config struct {
	ScenarioTimeout time.Duration `envconfig:"SCENARIO_TIMEOUT" default:"5s"`
	BufferSize      int           `envconfig:"SCENARIO_BUFFER_SIZE" default:"100"`
	NumWorkers      int           `envconfig:"SCENARIO_NUM_WORKERS" default:"4"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
