package layout

import "math"

// Base render resolution used when the caller supplies none.
const (
	DefaultBaseResX = 1920
	DefaultBaseResY = 1080
)

// viewDistanceFactor pulls the viewport back far enough that the whole
// layout stays inside the orthographic frustum.
const viewDistanceFactor = 1.5

// Fit holds the camera and render settings that frame a plan exactly:
// an orthographic scale covering the layout bounds and a render resolution
// with the same aspect ratio.
type Fit struct {
	OrthoScale   float64
	ViewDistance float64
	ResX         int
	ResY         int
}

// FitPlan derives camera and render settings for a plan. The orthographic
// scale is the larger side of the plan's bounding box, so a top-down camera
// at that scale contains every placement including the margin. The render
// resolution keeps the longer axis of the base resolution and rescales the
// other to the plan's aspect ratio. An empty plan yields a zero Fit; callers
// leave the scene's camera and render settings untouched in that case.
func FitPlan(p Plan, baseX, baseY int) Fit {
	if p.Empty() || p.Width <= 0 || p.Height <= 0 {
		return Fit{}
	}
	if baseX <= 0 || baseY <= 0 {
		baseX, baseY = DefaultBaseResX, DefaultBaseResY
	}

	scale := math.Max(p.Width, p.Height)
	f := Fit{
		OrthoScale:   scale,
		ViewDistance: scale * viewDistanceFactor,
	}

	aspect := p.Width / p.Height
	if baseX < baseY {
		f.ResY = baseY
		f.ResX = int(math.Round(float64(baseY) * aspect))
	} else {
		f.ResX = baseX
		f.ResY = int(math.Round(float64(baseX) / aspect))
	}
	if f.ResX < 1 {
		f.ResX = 1
	}
	if f.ResY < 1 {
		f.ResY = 1
	}
	return f
}
