package interfaces

//go:generate moq -out mocks/churn_mock.go -pkg mocks . ChurnRateSource

import (
	"context"

	"github.com/telcochurn/churnboard/pkg/domain/model"
)

// ChurnRateSource provides the churn rate shown on the dashboard
type ChurnRateSource interface {
	ChurnRate(ctx context.Context) (model.ChurnRate, error)
}
