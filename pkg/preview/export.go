package preview

import (
	"bytes"
	"encoding/json"

	"github.com/khemadeva/lighttable/pkg/errors"
	"github.com/khemadeva/lighttable/pkg/layout"
	"github.com/khemadeva/lighttable/pkg/raster"
)

// RenderPNG rasterizes the SVG preview of the plan.
func RenderPNG(plan layout.Plan, opts ...SVGOption) ([]byte, error) {
	img, err := raster.Render(bytes.NewReader(RenderSVG(plan, opts...)))
	if err != nil {
		return nil, err
	}
	return raster.Encode(img)
}

// RenderJSON exports the plan and its derived fit as indented JSON.
func RenderJSON(plan layout.Plan, fit layout.Fit) ([]byte, error) {
	doc := struct {
		Plan layout.Plan `json:"plan"`
		Fit  layout.Fit  `json:"fit"`
	}{plan, fit}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode plan")
	}
	return append(data, '\n'), nil
}
