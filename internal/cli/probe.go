package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khemadeva/lighttable/pkg/pipeline"
)

// probeCommand creates the probe command for inspecting media metadata.
func (c *CLI) probeCommand() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "probe [paths...]",
		Short: "Report detected media kinds and dimensions",
		Long: `Report detected media kinds and dimensions.

Each path is classified and probed exactly like a launch would: image and SVG
headers are read directly, video dimensions come from ffprobe. The source
column shows where each measurement came from; video results served from the
probe cache say so.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runProbe(cmd.Context(), args, noCache)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the probe cache")

	return cmd
}

// runProbe discovers and probes the inputs, then prints the results.
func (c *CLI) runProbe(ctx context.Context, paths []string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinner(ctx, "Probing media...")
	spinner.Start()

	assets, err := runner.Discover(pipeline.Options{Paths: paths})
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
	spinner.Stop()

	rows := make([][]string, 0, len(assets))
	for _, a := range assets {
		size := "-"
		if a.Width > 0 && a.Height > 0 {
			size = fmt.Sprintf("%dx%d", a.Width, a.Height)
		}
		source := a.Source
		if source == "" {
			source = "-"
		}
		rows = append(rows, []string{a.Name(), string(a.Kind), size, source})
	}

	fmt.Println(renderTable([]string{"File", "Kind", "Size", "Source"}, rows))
	return nil
}
