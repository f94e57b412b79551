package main

import (
	"context"
	"fmt"
	"os"

	"github.com/skillsenselab/pulse/app"
	"github.com/skillsenselab/pulse/config"
	"github.com/skillsenselab/pulse/observability"
	"github.com/skillsenselab/pulse/redis"
	"github.com/skillsenselab/pulse/server"
	"github.com/skillsenselab/pulse/version"
)

const serviceName = "pulse"

// Config is the full pulse service configuration.
type Config struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Server  server.Config        `yaml:"server" mapstructure:"server"`
	Redis   redis.Config         `yaml:"redis" mapstructure:"redis"`
	Tracing observability.Config `yaml:"tracing" mapstructure:"tracing"`
}

// ApplyDefaults applies defaults to the base config and every section.
func (c *Config) ApplyDefaults() {
	c.ServiceConfig.ApplyDefaults()
	c.Server.ApplyDefaults()
	c.Redis.ApplyDefaults()
	c.Tracing.ApplyDefaults()
}

// Validate validates the base config and every section.
func (c *Config) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	return c.Redis.Validate()
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg Config
	if err := config.LoadConfig(serviceName, &cfg); err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if cfg.Name == "" {
		cfg.Name = serviceName
	}
	if cfg.Version == "" {
		cfg.Version = version.GetShortVersion()
	}

	a, err := app.New(&cfg)
	if err != nil {
		return err
	}

	if cfg.Tracing.Enabled {
		cfg.Tracing.ServiceName = cfg.Name
		cfg.Tracing.ServiceVersion = cfg.Version
		cfg.Tracing.Environment = cfg.Environment

		tp, err := observability.InitTracer(ctx, cfg.Tracing)
		if err != nil {
			return fmt.Errorf("initializing tracer: %w", err)
		}
		a.OnStop(func(ctx context.Context) error {
			return tp.Shutdown(ctx)
		})
	}

	if cfg.Redis.Enabled {
		if err := a.RegisterComponent(redis.NewComponent(cfg.Redis, a.Logger)); err != nil {
			return err
		}
	}

	srv := server.New(cfg.Server, a.Logger)
	srv.ApplyDefaults(cfg.Name, a.HealthCheck)
	if err := a.RegisterComponent(server.NewComponent(srv)); err != nil {
		return err
	}

	return a.Run(ctx)
}
