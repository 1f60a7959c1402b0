package preview

import (
	"bytes"
	"encoding/json"
	"image/png"
	"strings"
	"testing"

	"github.com/khemadeva/lighttable/pkg/layout"
)

func testPlan(t *testing.T) layout.Plan {
	t.Helper()
	items := []layout.Item{
		{ID: "/media/a.png", Width: 1.5, Height: 1},
		{ID: "/media/b.png", Width: 1, Height: 1},
		{ID: "/media/c.png", Width: 1, Height: 1},
	}
	return layout.Build(items, layout.Params{Margin: 0.1, OffsetX: 0.1, OffsetY: 0.1, Columns: 2})
}

func TestRenderSVG(t *testing.T) {
	plan := testPlan(t)
	got := string(RenderSVG(plan))

	if !strings.HasPrefix(got, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Fatalf("not an svg document:\n%s", got)
	}
	// One background rect plus one per placement.
	if n := strings.Count(got, "<rect"); n != len(plan.Placements)+1 {
		t.Errorf("rect count = %d, want %d", n, len(plan.Placements)+1)
	}
	if strings.Contains(got, "<text") {
		t.Error("labels rendered without WithLabels()")
	}
}

func TestRenderSVGLabels(t *testing.T) {
	got := string(RenderSVG(testPlan(t), WithLabels()))
	for _, name := range []string{"a.png", "b.png", "c.png"} {
		if !strings.Contains(got, ">"+name+"</text>") {
			t.Errorf("label %q missing", name)
		}
	}
}

func TestRenderSVGScale(t *testing.T) {
	plan := testPlan(t)
	small := string(RenderSVG(plan, WithScale(10)))
	if !strings.Contains(small, `width="28"`) {
		// bounds 2.8 wide at 10 px per unit
		t.Errorf("scaled width attribute missing:\n%s", small)
	}
}

func TestRenderSVGEmpty(t *testing.T) {
	got := string(RenderSVG(layout.Plan{}))
	if !strings.HasPrefix(got, "<svg") || !strings.HasSuffix(got, "</svg>\n") {
		t.Errorf("empty plan should still yield a well-formed svg:\n%s", got)
	}
}

func TestRenderSVGEscapesLabels(t *testing.T) {
	plan := layout.Build([]layout.Item{{ID: "/media/a<b&c>.png", Width: 1, Height: 1}}, layout.DefaultParams())
	got := string(RenderSVG(plan, WithLabels()))
	if !strings.Contains(got, "a&lt;b&amp;c&gt;.png") {
		t.Errorf("label not escaped:\n%s", got)
	}
}

func TestRenderPNG(t *testing.T) {
	plan := testPlan(t)
	data, err := RenderPNG(plan, WithScale(50))
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	// bounds 2.8x2.3 world units at 50 px per unit
	b := img.Bounds()
	if b.Dx() != 140 || b.Dy() != 115 {
		t.Errorf("png size = %dx%d, want 140x115", b.Dx(), b.Dy())
	}
}

func TestRenderJSON(t *testing.T) {
	plan := testPlan(t)
	fit := layout.FitPlan(plan, 1920, 1080)

	data, err := RenderJSON(plan, fit)
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var doc struct {
		Plan layout.Plan `json:"plan"`
		Fit  layout.Fit  `json:"fit"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not valid json: %v", err)
	}
	if len(doc.Plan.Placements) != len(plan.Placements) {
		t.Errorf("round-tripped %d placements, want %d", len(doc.Plan.Placements), len(plan.Placements))
	}
	if doc.Fit.OrthoScale != fit.OrthoScale {
		t.Errorf("round-tripped OrthoScale = %g, want %g", doc.Fit.OrthoScale, fit.OrthoScale)
	}
}
