package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const EnvPrefix = "SCHED"

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	GanttWidth            int
	MaxProcesses          int
	LogLevel              string
	LogFormat             string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("render.gantt_width", 60)
	v.SetDefault("api.max_processes", 100)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Load reads config.yaml from the working directory, or path when given.
// A missing default file falls back to defaults; a missing explicit file is an
// error. SCHED_* environment variables override both.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
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
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	config := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		GanttWidth:            v.GetInt("render.gantt_width"),
		MaxProcesses:          v.GetInt("api.max_processes"),
		LogLevel:              v.GetString("log.level"),
		LogFormat:             v.GetString("log.format"),
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *SchedulerConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: port %d out of range", c.Port)
	}
	if c.RoundRobinTimeQuantum <= 0 {
		return fmt.Errorf("config: scheduler.round_robin.time_quantum must be positive, got %d", c.RoundRobinTimeQuantum)
	}
	if c.GanttWidth <= 0 {
		return fmt.Errorf("config: render.gantt_width must be positive, got %d", c.GanttWidth)
	}
	if c.MaxProcesses <= 0 {
		return fmt.Errorf("config: api.max_processes must be positive, got %d", c.MaxProcesses)
	}
	return nil
}

func (c *SchedulerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
