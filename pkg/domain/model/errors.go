package model

import "github.com/m-mizutani/goerr/v2"

// Error tags for domain operations
var (
	ErrTagInvalidConfig = goerr.NewTag("invalid_config")
	ErrTagSourceFailure = goerr.NewTag("source_failure")
)
