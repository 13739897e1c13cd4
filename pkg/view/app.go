package view

import (
	"github.com/rohanthewiz/element"
	"github.com/telcochurn/churnboard/pkg/domain/model"
)

const (
	// AppTitle is the dashboard heading and document title
	AppTitle = "Telco Customer Churn Dashboard"
	// WelcomeText is the paragraph shown under the header
	WelcomeText = "Welcome! Your dashboard will display churn analysis data here."
)

// App is the dashboard root. It owns the churn rate and hands it to ChurnData.
type App struct {
	ChurnRate model.ChurnRate
}

// NewApp returns an App showing model.DefaultChurnRate
func NewApp() App {
	return App{ChurnRate: model.DefaultChurnRate}
}

// Render writes the header, the welcome paragraph and ChurnData
func (a App) Render(b *element.Builder) (x any) {
	b.Div("class", "App").R(
		b.Header("class", "App-header").R(
			b.H1().T(AppTitle),
		),
		b.P().T(WelcomeText),
		ChurnData{ChurnRate: a.ChurnRate}.Render(b),
	)
	return
}
