package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/khemadeva/lighttable/pkg/errors"
	"github.com/khemadeva/lighttable/pkg/layout"
	"github.com/khemadeva/lighttable/pkg/media"
	"github.com/khemadeva/lighttable/pkg/preview"
)

// planCommand creates the plan command for inspecting the layout.
func (c *CLI) planCommand() *cobra.Command {
	var (
		flags  launchFlags
		format string
		output string
		labels bool
	)

	cmd := &cobra.Command{
		Use:   "plan [paths...]",
		Short: "Compute the grid layout without launching",
		Long: `Compute the grid layout without launching.

The plan command discovers and probes the given media exactly like a launch
would, then prints the placement table together with the derived camera fit.
With --format it also writes a preview artifact: an SVG sketch of the grid,
a PNG rasterization of that sketch, or the plan as JSON for tooling.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlan(cmd.Context(), cmd, args, flags, format, output, labels)
		},
	}

	addLayoutFlags(cmd, &flags)
	cmd.Flags().StringVarP(&format, "format", "f", "", "preview artifact format: svg, png, json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "preview output file (default plan.<format>)")
	cmd.Flags().BoolVar(&labels, "labels", false, "label tiles with file names in svg/png previews")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable the probe cache")

	return cmd
}

// runPlan probes the inputs, prints the placement table, and optionally
// writes a preview artifact.
func (c *CLI) runPlan(ctx context.Context, cmd *cobra.Command, paths []string, f launchFlags, format, output string, labels bool) error {
	opts, err := c.buildOptions(cmd, paths, f)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(f.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinner(ctx, "Probing media...")
	spinner.Start()

	assets, err := runner.Discover(opts)
	if err != nil {
		spinner.StopWithError("Discovery failed")
		return err
	}
	if len(assets) == 0 {
		spinner.Stop()
		printWarning("No importable media found")
		return nil
	}
	if err := runner.Probe(ctx, assets); err != nil {
		spinner.StopWithError("Probing failed")
		return err
	}
	plan, fit := runner.Plan(assets, opts)
	spinner.Stop()

	printPlanTable(assets, plan, fit)

	if format == "" {
		printNewline()
		printNextStep("Launch with", appName+" "+paths[0])
		return nil
	}

	data, err := renderPreview(plan, fit, format, labels)
	if err != nil {
		return err
	}
	if output == "" {
		output = "plan." + format
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	printNewline()
	printFile(output)
	return nil
}

// printPlanTable prints one row per placement plus a fit summary.
func printPlanTable(assets []media.Asset, plan layout.Plan, fit layout.Fit) {
	rows := make([][]string, 0, len(plan.Placements))
	for i, pl := range plan.Placements {
		rows = append(rows, []string{
			assets[i].Name(),
			fmt.Sprintf("%d", pl.Row),
			fmt.Sprintf("%.2f, %.2f", pl.X, pl.Y),
			fmt.Sprintf("%.2f", pl.Scale),
			fmt.Sprintf("%.2fx%.2f", pl.Width, pl.Height),
		})
	}

	fmt.Println(renderTable([]string{"File", "Row", "Center", "Scale", "Size"}, rows))
	printStats(len(assets), plan.Rows, 0)
	printDetail("bounds %.2fx%.2f · ortho scale %.2f · render %dx%d",
		plan.Width, plan.Height, fit.OrthoScale, fit.ResX, fit.ResY)
}

// renderPreview builds the requested artifact for the plan.
func renderPreview(plan layout.Plan, fit layout.Fit, format string, labels bool) ([]byte, error) {
	var svgOpts []preview.SVGOption
	if labels {
		svgOpts = append(svgOpts, preview.WithLabels())
	}

	switch format {
	case "svg":
		return preview.RenderSVG(plan, svgOpts...), nil
	case "png":
		return preview.RenderPNG(plan, svgOpts...)
	case "json":
		return preview.RenderJSON(plan, fit)
	}
	return nil, errors.New(errors.ErrCodeInvalidInput, "unknown preview format %q (expected svg, png, or json)", format)
}
