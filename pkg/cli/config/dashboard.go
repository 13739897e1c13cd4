package config

import (
	"context"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/telcochurn/churnboard/pkg/domain/interfaces"
	"github.com/telcochurn/churnboard/pkg/domain/model"
	"github.com/telcochurn/churnboard/pkg/repository"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Dashboard holds the churn rate source configuration
type Dashboard struct {
	ChurnRate  float64
	ConfigPath string
}

// Flags returns CLI flags for Dashboard configuration
func (d *Dashboard) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.FloatFlag{
			Name:        "churn-rate",
			Usage:       "Churn rate percentage to display",
			Category:    "Dashboard",
			Value:       model.DefaultChurnRate.Float64(),
			Sources:     cli.EnvVars("CHURNBOARD_CHURN_RATE"),
			Destination: &d.ChurnRate,
		},
		&cli.StringFlag{
			Name:        "dashboard-config",
			Usage:       "Path to dashboard YAML file (overrides --churn-rate)",
			Category:    "Dashboard",
			Sources:     cli.EnvVars("CHURNBOARD_DASHBOARD_CONFIG"),
			Destination: &d.ConfigPath,
		},
	}
}

// Configure creates the churn rate source
func (d *Dashboard) Configure(ctx context.Context) (interfaces.ChurnRateSource, error) {
	if d.ConfigPath == "" {
		return repository.NewStatic(model.ChurnRate(d.ChurnRate)), nil
	}

	cfg, err := LoadDashboardFromFile(d.ConfigPath)
	if err != nil {
		return nil, err
	}

	ctxlog.From(ctx).Debug("Loaded dashboard configuration",
		"path", d.ConfigPath,
		"churn_rate", cfg.ChurnRate.Float64(),
	)
	return repository.NewStatic(*cfg.ChurnRate), nil
}

// LogValue returns structured log value
func (d Dashboard) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("churn_rate", d.ChurnRate),
		slog.String("config_path", d.ConfigPath),
	)
}

// LoadDashboardFromFile loads the dashboard configuration from a YAML file
func LoadDashboardFromFile(path string) (*model.DashboardConfig, error) {
	if path == "" {
		return nil, goerr.New("configuration file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "configuration file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read configuration file",
			goerr.V("path", path))
	}

	var config model.DashboardConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML configuration",
			goerr.V("path", path),
			goerr.T(model.ErrTagInvalidConfig))
	}

	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid configuration",
			goerr.V("path", path))
	}

	return &config, nil
}
