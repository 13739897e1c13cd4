package view

import (
	"html"

	"github.com/rohanthewiz/element"
)

// element keeps attributes in a map, so tags needing more than one
// attribute are written as literal text to keep the output stable.
const headMeta = `<meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`

// Page wraps Body in a complete HTML document
type Page struct {
	Title      string
	Stylesheet string // href of the stylesheet; omitted when empty
	Body       Component
}

// Render writes the document; element's Html emits the doctype itself.
func (p Page) Render(b *element.Builder) (x any) {
	b.Html("lang", "en").R(
		b.Head().R(
			b.T(headMeta),
			b.Title().T(p.Title),
			p.renderStylesheet(b),
		),
		b.Body().R(
			p.Body.Render(b),
		),
	)
	return
}

func (p Page) renderStylesheet(b *element.Builder) (x any) {
	if p.Stylesheet == "" {
		return
	}
	b.T(`<link rel="stylesheet" href="` + html.EscapeString(p.Stylesheet) + `">`)
	return
}

// RenderDocument renders p as a complete HTML document
func RenderDocument(p Page) string {
	return Render(p)
}
