package model

import (
	"github.com/m-mizutani/goerr/v2"
)

// DashboardConfig represents the dashboard configuration file
type DashboardConfig struct {
	ChurnRate *ChurnRate `yaml:"churn_rate"`
}

// Validate validates the dashboard configuration
func (c *DashboardConfig) Validate() error {
	if c.ChurnRate == nil {
		return goerr.New("churn_rate is required", goerr.T(ErrTagInvalidConfig))
	}
	return nil
}
