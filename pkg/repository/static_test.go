package repository_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/telcochurn/churnboard/pkg/domain/model"
	"github.com/telcochurn/churnboard/pkg/repository"
)

func TestStatic(t *testing.T) {
	ctx := context.Background()

	t.Run("returns injected value", func(t *testing.T) {
		src := repository.NewStatic(42.25)
		rate, err := src.ChurnRate(ctx)
		gt.NoError(t, err)
		gt.Equal(t, rate, model.ChurnRate(42.25))
	})

	t.Run("default value", func(t *testing.T) {
		rate, err := repository.NewStatic(model.DefaultChurnRate).ChurnRate(ctx)
		gt.NoError(t, err)
		gt.Equal(t, rate, model.DefaultChurnRate)
	})

	t.Run("same value on every call", func(t *testing.T) {
		src := repository.NewStatic(-3)
		for i := 0; i < 3; i++ {
			rate, err := src.ChurnRate(ctx)
			gt.NoError(t, err)
			gt.Equal(t, rate, model.ChurnRate(-3))
		}
	})
}
