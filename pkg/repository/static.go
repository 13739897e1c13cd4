package repository

import (
	"context"

	"github.com/telcochurn/churnboard/pkg/domain/interfaces"
	"github.com/telcochurn/churnboard/pkg/domain/model"
)

// Static implements ChurnRateSource with a fixed value
type Static struct {
	rate model.ChurnRate
}

// NewStatic creates a source that always returns rate
func NewStatic(rate model.ChurnRate) interfaces.ChurnRateSource {
	return &Static{rate: rate}
}

// ChurnRate returns the fixed value
func (s *Static) ChurnRate(ctx context.Context) (model.ChurnRate, error) {
	return s.rate, nil
}
