package board

import (
	"fmt"
	"strings"

	"github.com/board-explorer/backend/internal/models"
)

// EncodeSVG serializes a diagram as a standalone SVG document with a fixed
// viewBox. Output is deterministic for a given diagram.
func EncodeSVG(d models.Diagram) string {
	var b strings.Builder

	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s">`,
		trimFloat(d.Width), trimFloat(d.Height))

	fmt.Fprintf(&b, `<rect x="0" y="0" width="%s" height="%s" fill="%s" rx="%s"/>`,
		trimFloat(d.Background.Width), trimFloat(d.Background.Height),
		d.Background.Fill, trimFloat(d.Background.CornerRadius))

	if d.Placeholder != "" {
		fmt.Fprintf(&b, `<text x="50%%" y="50%%" fill="#555" text-anchor="middle" font-family="sans-serif">%s</text>`,
			escapeText(d.Placeholder))
	}

	for _, m := range d.Markers {
		for _, p := range m.Primitives() {
			writeCircle(&b, p)
		}
	}

	b.WriteString(`</svg>`)
	return b.String()
}

func writeCircle(b *strings.Builder, p models.Primitive) {
	fmt.Fprintf(b, `<circle cx="%s" cy="%s" r="%s"`, trimFloat(p.Cx), trimFloat(p.Cy), trimFloat(p.R))
	if p.Fill != "" {
		fmt.Fprintf(b, ` fill="%s"`, p.Fill)
	} else {
		b.WriteString(` fill="none"`)
	}
	if p.Opacity > 0 {
		fmt.Fprintf(b, ` opacity="%s"`, trimFloat(p.Opacity))
	}
	if p.Stroke != "" {
		fmt.Fprintf(b, ` stroke="%s" stroke-width="%s"`, p.Stroke, trimFloat(p.StrokeWidth))
	}
	b.WriteString(`/>`)
}

// trimFloat formats a float without trailing zeros so coordinates like 10.0
// emit as "10".
func trimFloat(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

func escapeText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
