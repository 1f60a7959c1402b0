package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/khemadeva/lighttable/pkg/blender"
	"github.com/khemadeva/lighttable/pkg/cache"
	"github.com/khemadeva/lighttable/pkg/errors"
	"github.com/khemadeva/lighttable/pkg/layout"
	"github.com/khemadeva/lighttable/pkg/media"
	"github.com/khemadeva/lighttable/pkg/raster"
	"github.com/khemadeva/lighttable/pkg/stage"
)

// Runner executes pipeline stages. It is stateless apart from the probe
// cache and logger; the same Runner serves any number of runs.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables probe caching; a nil
// logger falls back to the default logger.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Close releases the probe cache.
func (r *Runner) Close() error {
	return r.Cache.Close()
}

// Execute runs the full pipeline. With no importable media the result
// carries an empty plan and nothing is staged or launched.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := r.Logger

	if removed := stage.Sweep(stage.SweepAge); removed > 0 {
		logger.Debug("cleared aged staging workspaces", "count", removed)
	}

	assets, err := r.Discover(opts)
	if err != nil {
		return nil, err
	}
	result := &Result{Assets: assets}
	result.Stats.Assets = len(assets)

	if len(assets) == 0 {
		logger.Warn("no importable media found", "paths", strings.Join(opts.Paths, ", "))
		return result, nil
	}

	probeStart := time.Now()
	if err := r.Probe(ctx, assets); err != nil {
		return nil, err
	}
	result.Stats.ProbeTime = time.Since(probeStart)

	result.Plan, result.Fit = r.Plan(assets, opts)
	logger.Info("computed layout",
		"assets", len(assets),
		"rows", result.Plan.Rows,
		"bounds", fmt.Sprintf("%.2fx%.2f", result.Plan.Width, result.Plan.Height))

	stageStart := time.Now()
	ws, rasterized, err := r.Stage(assets)
	if err != nil {
		return nil, err
	}
	result.Stats.Rasterized = rasterized
	result.Stats.StageTime = time.Since(stageStart)

	result.Script = blender.Script(Planes(assets, result.Plan), result.Fit, opts.Scene)

	if opts.DryRun {
		if err := ws.Cleanup(); err != nil {
			logger.Debug("cleanup failed", "dir", ws.Dir(), "err", err)
		}
		logger.Info("dry run, not launching")
		return result, nil
	}

	scriptPath, err := ws.Write(blender.ScriptName, result.Script)
	if err != nil {
		return nil, err
	}
	result.ScriptPath = scriptPath

	pid, err := blender.Launch(blender.LaunchOptions{
		Binary:   opts.Binary,
		Terminal: opts.Terminal,
		Script:   scriptPath,
	})
	if err != nil {
		return nil, err
	}
	result.PID = pid
	logger.Info("launched host application", "pid", pid, "workspace", ws.Dir())

	return result, nil
}

// Discover expands the input paths into assets.
func (r *Runner) Discover(opts Options) ([]media.Asset, error) {
	return media.Discover(opts.Paths, func(format string, args ...any) {
		r.Logger.Debug(fmt.Sprintf(format, args...))
	})
}

// Probe fills in asset dimensions. Probe failures degrade the asset to a
// unit square with a warning; a missing external probe tool aborts, since
// the fix is actionable.
func (r *Runner) Probe(ctx context.Context, assets []media.Asset) error {
	prober := &media.Prober{
		Cache: r.Cache,
		Logf: func(format string, args ...any) {
			r.Logger.Debug(fmt.Sprintf(format, args...))
		},
	}

	for i := range assets {
		if err := prober.Probe(ctx, &assets[i]); err != nil {
			if errors.Is(err, errors.ErrCodeToolNotFound) {
				return err
			}
			r.Logger.Warn("probe failed, treating as unit square",
				"path", assets[i].Path, "err", err)
		}
	}
	return nil
}

// Plan computes placements and the camera fit for the probed assets.
func (r *Runner) Plan(assets []media.Asset, opts Options) (layout.Plan, layout.Fit) {
	items := make([]layout.Item, len(assets))
	for i, a := range assets {
		items[i] = a.Item()
	}
	plan := layout.Build(items, opts.Params)
	return plan, layout.FitPlan(plan, opts.BaseResX, opts.BaseResY)
}

// Stage creates the run's workspace and rasterizes vector assets into it,
// pointing their staged paths at the results. It returns the workspace and
// how many assets were rasterized.
func (r *Runner) Stage(assets []media.Asset) (*stage.Workspace, int, error) {
	ws, err := stage.New()
	if err != nil {
		return nil, 0, err
	}

	rasterized := 0
	for i := range assets {
		if assets[i].Kind != media.KindVector {
			continue
		}
		name := stagedName(i, assets[i].Path)
		dst := ws.Path(name)
		if _, _, err := raster.PNG(assets[i].Path, dst); err != nil {
			ws.Cleanup()
			return nil, 0, err
		}
		assets[i].Staged = dst
		rasterized++
		r.Logger.Debug("rasterized vector", "src", assets[i].Path, "dst", dst)
	}
	return ws, rasterized, nil
}

// stagedName builds a collision-free file name for the i-th asset's
// rasterization.
func stagedName(i int, path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return fmt.Sprintf("%03d_%s.png", i, stem)
}
