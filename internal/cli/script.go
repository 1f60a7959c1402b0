package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/khemadeva/lighttable/pkg/blender"
	"github.com/khemadeva/lighttable/pkg/pipeline"
)

// scriptCommand creates the script command for emitting the generated Python.
func (c *CLI) scriptCommand() *cobra.Command {
	var (
		flags  launchFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "script [paths...]",
		Short: "Emit the generated scene script without launching",
		Long: `Emit the generated scene script without launching.

The script is exactly what a launch would hand to Blender via --python,
including staged paths for rasterized SVGs. The staging workspace is kept so
those paths stay valid; aged workspaces are swept on later runs.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runScript(cmd.Context(), cmd, args, flags, output)
		},
	}

	addLayoutFlags(cmd, &flags)
	addSceneFlags(cmd, &flags)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the script to a file instead of stdout")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable the probe cache")

	return cmd
}

// runScript builds the scene script and writes it to stdout or a file.
func (c *CLI) runScript(ctx context.Context, cmd *cobra.Command, paths []string, f launchFlags, output string) error {
	opts, err := c.buildOptions(cmd, paths, f)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(f.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	// No spinner here: the script goes to stdout, progress goes to the
	// logger on stderr.
	prog := newProgress(c.Logger)

	assets, err := runner.Discover(opts)
	if err != nil {
		return err
	}
	if len(assets) == 0 {
		printWarning("No importable media found")
		return nil
	}
	if err := runner.Probe(ctx, assets); err != nil {
		return err
	}
	plan, fit := runner.Plan(assets, opts)

	ws, rasterized, err := runner.Stage(assets)
	if err != nil {
		return err
	}
	if rasterized == 0 {
		// Nothing staged, nothing for the script to reference.
		_ = ws.Cleanup()
	}

	script := blender.Script(pipeline.Planes(assets, plan), fit, opts.Scene)
	prog.done(fmt.Sprintf("Generated scene script for %d assets", len(assets)))

	if output != "" {
		if err := os.WriteFile(output, script, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}
		printFile(output)
		return nil
	}

	_, err = os.Stdout.Write(script)
	return err
}
