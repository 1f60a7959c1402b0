// Package pipeline runs the complete discover → probe → plan → stage →
// launch sequence. Centralizing it here keeps the root command and the
// inspection commands (plan, probe, script) behaving identically on the
// same inputs.
package pipeline

import (
	"time"

	"github.com/khemadeva/lighttable/pkg/blender"
	"github.com/khemadeva/lighttable/pkg/errors"
	"github.com/khemadeva/lighttable/pkg/layout"
	"github.com/khemadeva/lighttable/pkg/media"
)

// Options configures one pipeline run.
type Options struct {
	// Paths are the files and directories to import.
	Paths []string

	// Params drive the layout planner.
	Params layout.Params

	// BaseResX and BaseResY form the base render resolution the fit keeps
	// the longer axis of. Zero falls back to the built-in 1920x1080.
	BaseResX int
	BaseResY int

	// Scene toggles the generated script's adjustments.
	Scene blender.SceneOptions

	// Binary and Terminal configure the launch.
	Binary   string
	Terminal string

	// DryRun computes everything and cleans the staging workspace up again
	// instead of launching.
	DryRun bool

	validated bool
}

// ValidateAndSetDefaults checks required fields. Idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Paths) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "at least one path is required")
	}
	o.validated = true
	return nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Assets in discovery order, dimensions filled in.
	Assets []media.Asset

	// Plan and Fit for the discovered assets.
	Plan layout.Plan
	Fit  layout.Fit

	// Script is the generated scene setup Python.
	Script []byte

	// ScriptPath is the staged script location. Empty for dry runs, whose
	// workspace is removed before returning.
	ScriptPath string

	// PID of the launched host process; zero when nothing was launched.
	PID int

	Stats Stats
}

// Stats contains run statistics.
type Stats struct {
	Assets     int
	Rasterized int
	ProbeTime  time.Duration
	StageTime  time.Duration
}

// Planes pairs each asset with its placement for script generation. The
// planner preserves input order, so the two slices correspond index by
// index.
func Planes(assets []media.Asset, plan layout.Plan) []blender.Plane {
	planes := make([]blender.Plane, 0, len(plan.Placements))
	for i, pl := range plan.Placements {
		planes = append(planes, blender.Plane{
			Path:  assets[i].ImportPath(),
			X:     pl.X,
			Y:     pl.Y,
			Scale: pl.Scale,
		})
	}
	return planes
}
