// Package preview renders a computed plan as an inspectable artifact
// without touching the host application: an SVG sketch of the placements,
// a PNG rasterization of that sketch, or a JSON document for tooling.
package preview

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/khemadeva/lighttable/pkg/layout"
)

const (
	backgroundFill = "#1e1e24"
	plateFill      = "#3b4252"
	plateStroke    = "#81a1c1"
	labelFill      = "#d8dee9"
)

// defaultScale converts world units to pixels.
const defaultScale = 100.0

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	scale  float64
	labels bool
}

// WithScale sets how many pixels one world unit spans.
func WithScale(px float64) SVGOption {
	return func(r *svgRenderer) {
		if px > 0 {
			r.scale = px
		}
	}
}

// WithLabels draws each placement's file name at its center.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// RenderSVG draws the plan's placements on their bounding canvas. The
// world-to-screen mapping flips the y axis, so the plan's top row appears
// at the top of the image.
func RenderSVG(plan layout.Plan, opts ...SVGOption) []byte {
	r := svgRenderer{scale: defaultScale}
	for _, opt := range opts {
		opt(&r)
	}

	w := plan.Width * r.scale
	h := plan.Height * r.scale
	if w <= 0 || h <= 0 {
		w, h = 1, 1
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n", w, h, w, h)
	fmt.Fprintf(&buf, `  <rect width="%.1f" height="%.1f" fill="%s"/>`+"\n", w, h, backgroundFill)

	for _, pl := range plan.Placements {
		x := (pl.Left() + plan.Width/2) * r.scale
		y := (plan.Height/2 - pl.Top()) * r.scale
		pw := pl.Width * r.scale
		ph := pl.Height * r.scale

		fmt.Fprintf(&buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
			x, y, pw, ph, plateFill, plateStroke)

		if r.labels {
			size := ph * 0.12
			if size > 14 {
				size = 14
			}
			fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" font-family="monospace" font-size="%.1f" fill="%s" text-anchor="middle" dominant-baseline="middle">%s</text>`+"\n",
				x+pw/2, y+ph/2, size, labelFill, escapeText(filepath.Base(pl.ID)))
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func escapeText(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
