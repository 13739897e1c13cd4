package config_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/telcochurn/churnboard/pkg/cli/config"
	"github.com/telcochurn/churnboard/pkg/domain/model"
)

func TestLoadDashboardFromFile(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		cfg, err := config.LoadDashboardFromFile("testdata/dashboard.yaml")
		gt.NoError(t, err).Required()
		gt.V(t, cfg.ChurnRate).NotNil()
		gt.Equal(t, *cfg.ChurnRate, model.ChurnRate(21.75))
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := config.LoadDashboardFromFile("")
		gt.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadDashboardFromFile("testdata/does-not-exist.yaml")
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("configuration file not found")
	})

	t.Run("missing churn_rate", func(t *testing.T) {
		_, err := config.LoadDashboardFromFile("testdata/missing_rate.yaml")
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("invalid configuration")
	})

	t.Run("broken YAML", func(t *testing.T) {
		_, err := config.LoadDashboardFromFile("testdata/broken.yaml")
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.ErrTagInvalidConfig)).True()
	})
}

func TestDashboard_Configure(t *testing.T) {
	ctx := context.Background()

	t.Run("flag value", func(t *testing.T) {
		d := config.Dashboard{ChurnRate: 9.5}
		source, err := d.Configure(ctx)
		gt.NoError(t, err).Required()

		rate, err := source.ChurnRate(ctx)
		gt.NoError(t, err)
		gt.Equal(t, rate, model.ChurnRate(9.5))
	})

	t.Run("config file overrides flag", func(t *testing.T) {
		d := config.Dashboard{ChurnRate: 9.5, ConfigPath: "testdata/dashboard.yaml"}
		source, err := d.Configure(ctx)
		gt.NoError(t, err).Required()

		rate, err := source.ChurnRate(ctx)
		gt.NoError(t, err)
		gt.Equal(t, rate, model.ChurnRate(21.75))
	})

	t.Run("invalid config file", func(t *testing.T) {
		d := config.Dashboard{ConfigPath: "testdata/missing_rate.yaml"}
		_, err := d.Configure(ctx)
		gt.Error(t, err)
	})
}
