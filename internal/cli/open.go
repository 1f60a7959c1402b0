package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/khemadeva/lighttable/pkg/blender"
	"github.com/khemadeva/lighttable/pkg/config"
	"github.com/khemadeva/lighttable/pkg/layout"
	"github.com/khemadeva/lighttable/pkg/pipeline"
)

// launchFlags collects the flag values the root and pick commands share.
// Valued flags only take effect when actually set, so the config file keeps
// providing defaults underneath them.
type launchFlags struct {
	// Scene toggles
	keepCube      bool
	noEmission    bool
	noResolution  bool
	noView        bool
	noCamera      bool
	noLighting    bool
	disableSplash bool
	enableSplash  bool
	noBackground  bool
	background    string

	// Layout
	margin   float64
	offsetX  float64
	offsetY  float64
	maxWidth float64
	columns  int

	// Launch
	terminal string
	blender  string
	dryRun   bool
	noCache  bool
}

// addLayoutFlags registers the grid layout flags.
func addLayoutFlags(cmd *cobra.Command, f *launchFlags) {
	cmd.Flags().Float64Var(&f.margin, "margin", layout.DefaultMargin, "outer margin around the grid, in plane units")
	cmd.Flags().Float64Var(&f.offsetX, "offset-x", layout.DefaultOffsetX, "horizontal gap between planes")
	cmd.Flags().Float64Var(&f.offsetY, "offset-y", layout.DefaultOffsetY, "vertical gap between rows")
	cmd.Flags().Float64Var(&f.maxWidth, "max-width", layout.DefaultMaxWidth, "switch to width-based rows capped at this many plane units")
	cmd.Flags().IntVar(&f.columns, "columns", layout.DefaultColumns, "planes per row (ignored with --max-width)")
}

// addSceneFlags registers the scene adjustment toggles.
func addSceneFlags(cmd *cobra.Command, f *launchFlags) {
	cmd.Flags().BoolVar(&f.keepCube, "keep-cube", false, "keep the default cube")
	cmd.Flags().BoolVar(&f.noEmission, "no-emission-shader", false, "import planes with the principled shader instead of emission")
	cmd.Flags().BoolVar(&f.noResolution, "no-resolution-adjust", false, "leave the render resolution unchanged")
	cmd.Flags().BoolVar(&f.noView, "no-view-adjust", false, "leave the 3D view unchanged")
	cmd.Flags().BoolVar(&f.noCamera, "no-camera-adjust", false, "leave the camera unchanged")
	cmd.Flags().BoolVar(&f.noLighting, "no-lighting-adjust", false, "leave lighting and color management unchanged")
	cmd.Flags().BoolVar(&f.disableSplash, "disable-splash", false, "suppress the splash screen (default)")
	cmd.Flags().BoolVar(&f.enableSplash, "enable-splash", false, "keep the splash screen")
	cmd.Flags().BoolVar(&f.noBackground, "no-compositor-background-change", false, "leave the compositor background unchanged")
	cmd.Flags().StringVar(&f.background, "background", "", "compositor background color (#RRGGBB)")
	cmd.MarkFlagsMutuallyExclusive("disable-splash", "enable-splash")
}

// addLaunchFlags registers everything a launching command needs.
func addLaunchFlags(cmd *cobra.Command, f *launchFlags) {
	addLayoutFlags(cmd, f)
	addSceneFlags(cmd, f)
	cmd.Flags().StringVar(&f.terminal, "terminal", "", "terminal emulator to run Blender in")
	cmd.Flags().StringVar(&f.blender, "blender", "", "path to the Blender executable")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "plan and stage without launching")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the probe cache")
}

// assembleOptions layers changed flags over the config file defaults.
func assembleOptions(cmd *cobra.Command, cfg config.Config, paths []string, f launchFlags) (pipeline.Options, error) {
	fl := cmd.Flags()

	params := cfg.Params()
	if fl.Changed("margin") {
		params.Margin = f.margin
	}
	if fl.Changed("offset-x") {
		params.OffsetX = f.offsetX
	}
	if fl.Changed("offset-y") {
		params.OffsetY = f.offsetY
	}
	if fl.Changed("columns") {
		params.Columns = f.columns
		params.MaxWidth = 0
	}
	// After columns, so giving both picks width-based rows.
	if fl.Changed("max-width") {
		params.MaxWidth = f.maxWidth
	}

	scene := blender.DefaultSceneOptions()
	scene.KeepCube = f.keepCube
	scene.UsePrincipled = f.noEmission
	// The splash is suppressed by default; --disable-splash only states that
	// explicitly, --enable-splash keeps it.
	scene.ShowSplash = f.enableSplash
	scene.AdjustResolution = !f.noResolution
	scene.AdjustView = !f.noView
	scene.AdjustCamera = !f.noCamera
	scene.AdjustLighting = !f.noLighting
	scene.SetBackground = !f.noBackground

	bg := cfg.Render.Background
	if fl.Changed("background") {
		bg = f.background
	}
	color, err := blender.ParseHex(bg)
	if err != nil {
		return pipeline.Options{}, err
	}
	scene.Background = color

	binary := cfg.Blender
	if fl.Changed("blender") {
		binary = f.blender
	}
	terminal := cfg.Terminal
	if fl.Changed("terminal") {
		terminal = f.terminal
	}

	return pipeline.Options{
		Paths:    paths,
		Params:   params,
		BaseResX: cfg.Render.Width,
		BaseResY: cfg.Render.Height,
		Scene:    scene,
		Binary:   binary,
		Terminal: terminal,
		DryRun:   f.dryRun,
	}, nil
}

// buildOptions loads the config file and layers the command's flags on top.
func (c *CLI) buildOptions(cmd *cobra.Command, paths []string, f launchFlags) (pipeline.Options, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return pipeline.Options{}, err
	}
	return assembleOptions(cmd, cfg, paths, f)
}

// runOpen executes the full pipeline and reports the outcome.
func (c *CLI) runOpen(ctx context.Context, cmd *cobra.Command, paths []string, f launchFlags) error {
	opts, err := c.buildOptions(cmd, paths, f)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(f.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinner(ctx, "Preparing scene...")
	spinner.Start()

	res, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Launch failed")
		return err
	}

	if len(res.Assets) == 0 {
		spinner.Stop()
		printWarning("No importable media found")
		return nil
	}

	if opts.DryRun {
		spinner.StopWithSuccess(fmt.Sprintf("Planned %d assets (dry run)", res.Stats.Assets))
		printStats(res.Stats.Assets, res.Plan.Rows, res.Stats.Rasterized)
		printNextStep("Launch with", appName+" "+strings.Join(paths, " "))
		return nil
	}

	spinner.StopWithSuccess(fmt.Sprintf("Launched Blender (pid %d)", res.PID))
	printStats(res.Stats.Assets, res.Plan.Rows, res.Stats.Rasterized)
	printDetail("Workspace: %s", filepath.Dir(res.ScriptPath))
	return nil
}
