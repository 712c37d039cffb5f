package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	EmitIdle              bool
	OutputFormat          string
	OutputWidth           int
	LogLevel              string
}

var outputFormats = []string{"table", "yaml"}

// Load reads the YAML config at path. An empty path looks for config.yaml in the
// working directory and falls back to defaults when there is none. Every key can
// be overridden from the environment with the SCHED_ prefix, e.g.
// SCHED_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.emit_idle", true)
	v.SetDefault("output.format", "table")
	v.SetDefault("output.width", 80)
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("sched")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	config := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		EmitIdle:              v.GetBool("scheduler.emit_idle"),
		OutputFormat:          strings.ToLower(v.GetString("output.format")),
		OutputWidth:           v.GetInt("output.width"),
		LogLevel:              v.GetString("log.level"),
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *SchedulerConfig) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.RoundRobinTimeQuantum <= 0 {
		return fmt.Errorf("invalid round robin time quantum %d: must be positive", c.RoundRobinTimeQuantum)
	}
	if c.OutputWidth <= 0 {
		return fmt.Errorf("invalid output width %d", c.OutputWidth)
	}
	for _, f := range outputFormats {
		if c.OutputFormat == f {
			return nil
		}
	}
	return fmt.Errorf("invalid output format %q: want one of %s", c.OutputFormat, strings.Join(outputFormats, ", "))
}
