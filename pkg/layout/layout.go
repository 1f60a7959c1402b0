// Package layout computes grid placements for imported media planes.
//
// Items are packed left-to-right into rows on a virtual canvas. A row ends
// when the next item would push the row past the maximum width, or after a
// fixed column count when no maximum width is set. Heights within a row are
// normalized to the first item of that row, so each row forms a uniform
// horizontal strip. The resulting plan is centered on the origin with the
// first row on top, matching the top-orthographic framing the scene setup
// applies afterwards.
//
// Build is a pure function: callers translate placements into scene-object
// transforms, the planner never touches the host application.
package layout

import "math"

const eps = 1e-9

// Default layout parameters, in world units.
const (
	DefaultMargin   = 0.1
	DefaultOffsetX  = 0.1
	DefaultOffsetY  = 0.1
	DefaultMaxWidth = 5.0
	DefaultColumns  = 4
)

// Params configures one layout computation.
// MaxWidth and Columns are mutually exclusive: a MaxWidth > 0 switches the
// planner to width-based row breaking and Columns is ignored.
type Params struct {
	Margin   float64 // empty border around the full layout
	OffsetX  float64 // horizontal gap between adjacent items
	OffsetY  float64 // vertical gap between adjacent rows
	MaxWidth float64 // maximum row width; 0 means unset
	Columns  int     // items per row when MaxWidth is unset
}

// DefaultParams returns the column-mode defaults (4 columns, 0.1 spacing).
func DefaultParams() Params {
	return Params{
		Margin:  DefaultMargin,
		OffsetX: DefaultOffsetX,
		OffsetY: DefaultOffsetY,
		Columns: DefaultColumns,
	}
}

// Item is one entry to be placed, with dimensions in arbitrary units.
// Callers typically feed unit-height dimensions (aspect ratio × 1.0), the
// size convention of the plane importer.
type Item struct {
	ID     string
	Width  float64
	Height float64
}

// Placement is the computed position of one item within the layout.
// X and Y locate the item's center; Scale converts the item's input
// dimensions to its placed extents.
type Placement struct {
	ID     string
	X, Y   float64
	Scale  float64
	Width  float64 // placed horizontal extent
	Height float64 // placed vertical extent
	Row    int
	Col    int
}

// Left returns the x coordinate of the placement's left edge.
func (p Placement) Left() float64 { return p.X - p.Width/2 }

// Right returns the x coordinate of the placement's right edge.
func (p Placement) Right() float64 { return p.X + p.Width/2 }

// Bottom returns the y coordinate of the placement's bottom edge.
func (p Placement) Bottom() float64 { return p.Y - p.Height/2 }

// Top returns the y coordinate of the placement's top edge.
func (p Placement) Top() float64 { return p.Y + p.Height/2 }

// Plan is the result of a layout computation: one placement per input item,
// in input order, plus the bounding box of the full layout.
type Plan struct {
	Placements []Placement
	Rows       int

	// Width and Height span the content plus the margin on every side.
	Width  float64
	Height float64

	// ContentWidth and ContentHeight span the placed items and offsets only.
	ContentWidth  float64
	ContentHeight float64
}

// Empty reports whether the plan contains no placements.
func (p Plan) Empty() bool { return len(p.Placements) == 0 }

// row accumulates placements before their final positions are known.
type row struct {
	placements []Placement
	width      float64 // placed widths plus inter-item offsets
	height     float64 // height of the first item, shared by the row
}

// Build packs items into rows and returns their placements and the overall
// bounding box. The input order is preserved; an empty input yields an empty
// plan. Items with a zero or negative dimension are treated as 1×1 units.
func Build(items []Item, p Params) Plan {
	if len(items) == 0 {
		return Plan{}
	}

	columns := p.Columns
	if columns <= 0 {
		columns = DefaultColumns
	}
	widthMode := p.MaxWidth > 0

	// First pass: group items into rows and fix scale within each row.
	var rows []row
	cur := row{}
	for _, it := range items {
		w, h := sanitize(it.Width, it.Height)

		if len(cur.placements) > 0 {
			scaled := w * (cur.height / h)
			brk := false
			if widthMode {
				brk = cur.width+p.OffsetX+scaled > p.MaxWidth+eps
			} else {
				brk = len(cur.placements) >= columns
			}
			if brk {
				rows = append(rows, cur)
				cur = row{}
			}
		}

		var scale float64
		if len(cur.placements) == 0 {
			scale = 1.0
			cur.height = h
		} else {
			scale = cur.height / h
			cur.width += p.OffsetX
		}

		pl := Placement{
			ID:     it.ID,
			Scale:  scale,
			Width:  w * scale,
			Height: cur.height,
			Row:    len(rows),
			Col:    len(cur.placements),
		}
		cur.width += pl.Width
		cur.placements = append(cur.placements, pl)
	}
	rows = append(rows, cur)

	// Bounding box of the content.
	var contentW, contentH float64
	for i, r := range rows {
		contentW = math.Max(contentW, r.width)
		contentH += r.height
		if i > 0 {
			contentH += p.OffsetY
		}
	}

	// Second pass: assign centered coordinates, first row on top.
	plan := Plan{
		Rows:          len(rows),
		ContentWidth:  contentW,
		ContentHeight: contentH,
		Width:         contentW + 2*p.Margin,
		Height:        contentH + 2*p.Margin,
		Placements:    make([]Placement, 0, len(items)),
	}

	top := contentH / 2
	for _, r := range rows {
		x := -contentW / 2
		for _, pl := range r.placements {
			pl.X = x + pl.Width/2
			pl.Y = top - r.height/2
			plan.Placements = append(plan.Placements, pl)
			x += pl.Width + p.OffsetX
		}
		top -= r.height + p.OffsetY
	}

	return plan
}

// sanitize replaces degenerate dimensions with a unit square so scale
// factors never divide by zero.
func sanitize(w, h float64) (float64, float64) {
	if w <= 0 || h <= 0 {
		return 1, 1
	}
	return w, h
}
