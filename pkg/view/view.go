// Package view holds the dashboard's presentational components.
//
// Components are pure: they render their fields into an element.Builder and
// never modify them, so rendering the same component twice yields the same
// markup.
package view

import (
	"github.com/rohanthewiz/element"
)

// Component renders itself into b
type Component interface {
	Render(b *element.Builder) any
}

// Render renders c and returns the markup
func Render(c Component) string {
	b := element.NewBuilder()
	c.Render(b)
	return b.String()
}
