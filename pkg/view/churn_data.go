package view

import (
	"github.com/rohanthewiz/element"
	"github.com/telcochurn/churnboard/pkg/domain/model"
)

// ChurnData displays a churn rate as a subheading and a sentence
type ChurnData struct {
	ChurnRate model.ChurnRate
}

// Render writes the subheading and the churn rate sentence
func (c ChurnData) Render(b *element.Builder) (x any) {
	b.Div().R(
		b.H2().T("Churn Rate"),
		b.P().T("The current churn rate is: "+c.ChurnRate.String()+"%"),
	)
	return
}
