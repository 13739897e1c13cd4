package apperr

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Handle logs an application error with the values attached by goerr
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	logger := ctxlog.From(ctx)
	if values := goerr.Values(err); len(values) > 0 {
		logger.Error("application error", "error", err, "values", values)
		return
	}
	logger.Error("application error", "error", err)
}
