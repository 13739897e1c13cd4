package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/telcochurn/churnboard/pkg/domain/interfaces"
	"github.com/telcochurn/churnboard/pkg/domain/model"
	"github.com/telcochurn/churnboard/pkg/view"
)

// DefaultStylesheet is the href of the embedded dashboard stylesheet
const DefaultStylesheet = "/static/app.css"

// Dashboard implements interfaces.Dashboard
type Dashboard struct {
	source     interfaces.ChurnRateSource
	stylesheet string
}

// DashboardOption configures Dashboard
type DashboardOption func(*Dashboard)

// WithStylesheet overrides the stylesheet href. Empty disables the link.
func WithStylesheet(href string) DashboardOption {
	return func(d *Dashboard) {
		d.stylesheet = href
	}
}

// NewDashboard creates a new dashboard use case
func NewDashboard(source interfaces.ChurnRateSource, opts ...DashboardOption) *Dashboard {
	d := &Dashboard{
		source:     source,
		stylesheet: DefaultStylesheet,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// RenderApp renders the root component with the current churn rate
func (d *Dashboard) RenderApp(ctx context.Context) (string, error) {
	app, err := d.app(ctx)
	if err != nil {
		return "", err
	}
	return view.Render(app), nil
}

// RenderPage renders the full dashboard document
func (d *Dashboard) RenderPage(ctx context.Context) (string, error) {
	app, err := d.app(ctx)
	if err != nil {
		return "", err
	}

	return view.RenderDocument(view.Page{
		Title:      view.AppTitle,
		Stylesheet: d.stylesheet,
		Body:       app,
	}), nil
}

func (d *Dashboard) app(ctx context.Context) (view.App, error) {
	rate, err := d.source.ChurnRate(ctx)
	if err != nil {
		return view.App{}, goerr.Wrap(err, "failed to get churn rate",
			goerr.T(model.ErrTagSourceFailure))
	}

	ctxlog.From(ctx).Debug("Rendering dashboard", "churn_rate", rate.Float64())
	return view.App{ChurnRate: rate}, nil
}
