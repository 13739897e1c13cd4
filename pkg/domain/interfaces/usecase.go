package interfaces

import "context"

// Dashboard renders the churn dashboard views
type Dashboard interface {
	// RenderApp renders the root component markup only
	RenderApp(ctx context.Context) (string, error)
	// RenderPage renders a complete HTML document containing the root component
	RenderPage(ctx context.Context) (string, error)
}
