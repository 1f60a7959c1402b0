package cli

import (
	"io"
	"math"
	"testing"

	"github.com/spf13/cobra"

	"github.com/khemadeva/lighttable/pkg/config"
	"github.com/khemadeva/lighttable/pkg/errors"
	"github.com/khemadeva/lighttable/pkg/layout"
)

// launchCommandForTest builds a bare command carrying the launch flag set.
func launchCommandForTest(f *launchFlags) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	addLaunchFlags(cmd, f)
	return cmd
}

func TestRootCommand(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	if root.Use != "lighttable [paths...]" {
		t.Errorf("Use = %q", root.Use)
	}
	if !root.SilenceUsage {
		t.Error("SilenceUsage should be set")
	}

	want := map[string]bool{
		"plan":       false,
		"probe":      false,
		"script":     false,
		"pick":       false,
		"cache":      false,
		"completion": false,
	}
	for _, sub := range root.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}

	for _, flag := range []string{"keep-cube", "margin", "max-width", "columns", "terminal", "blender", "background", "dry-run", "no-cache"} {
		if root.Flags().Lookup(flag) == nil {
			t.Errorf("root flag %q not registered", flag)
		}
	}
}

func TestAssembleOptionsDefaults(t *testing.T) {
	var f launchFlags
	cmd := launchCommandForTest(&f)
	if err := cmd.ParseFlags(nil); err != nil {
		t.Fatalf("ParseFlags() error: %v", err)
	}

	opts, err := assembleOptions(cmd, config.Default(), []string{"a.png"}, f)
	if err != nil {
		t.Fatalf("assembleOptions() error: %v", err)
	}

	if opts.Params.MaxWidth != 0 {
		t.Errorf("MaxWidth = %v, want 0 (column mode)", opts.Params.MaxWidth)
	}
	if opts.Params.Columns != layout.DefaultColumns {
		t.Errorf("Columns = %d, want %d", opts.Params.Columns, layout.DefaultColumns)
	}
	if opts.Params.Margin != layout.DefaultMargin {
		t.Errorf("Margin = %v, want %v", opts.Params.Margin, layout.DefaultMargin)
	}
	if opts.BaseResX != 1920 || opts.BaseResY != 1080 {
		t.Errorf("base resolution = %dx%d, want 1920x1080", opts.BaseResX, opts.BaseResY)
	}

	s := opts.Scene
	if !s.AdjustResolution || !s.AdjustView || !s.AdjustCamera || !s.AdjustLighting || !s.SetBackground {
		t.Errorf("scene adjustments should default on: %+v", s)
	}
	if s.KeepCube || s.UsePrincipled || s.ShowSplash {
		t.Errorf("cube, shader, and splash overrides should default off: %+v", s)
	}
	if s.Background.R != 0 || s.Background.G != 0 || s.Background.B != 0 {
		t.Errorf("Background = %+v, want black", s.Background)
	}
}

func TestAssembleOptionsFlagPrecedence(t *testing.T) {
	var f launchFlags
	cmd := launchCommandForTest(&f)
	args := []string{
		"--margin", "0.25",
		"--keep-cube",
		"--no-view-adjust",
		"--enable-splash",
		"--background", "#336699",
		"--blender", "/opt/blender/blender",
		"--terminal", "kitty",
		"--dry-run",
	}
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags() error: %v", err)
	}

	cfg := config.Default()
	cfg.Blender = "/usr/bin/blender"
	cfg.Terminal = "xterm"
	cfg.Render.Background = "#ffffff"

	opts, err := assembleOptions(cmd, cfg, []string{"a.png"}, f)
	if err != nil {
		t.Fatalf("assembleOptions() error: %v", err)
	}

	if opts.Params.Margin != 0.25 {
		t.Errorf("Margin = %v, want 0.25", opts.Params.Margin)
	}
	if !opts.Scene.KeepCube {
		t.Error("KeepCube should be set")
	}
	if opts.Scene.AdjustView {
		t.Error("AdjustView should be cleared")
	}
	if !opts.Scene.ShowSplash {
		t.Error("ShowSplash should be set")
	}
	if opts.Binary != "/opt/blender/blender" {
		t.Errorf("Binary = %q, flag should beat config", opts.Binary)
	}
	if opts.Terminal != "kitty" {
		t.Errorf("Terminal = %q, flag should beat config", opts.Terminal)
	}
	if !opts.DryRun {
		t.Error("DryRun should be set")
	}

	bg := opts.Scene.Background
	if math.Abs(bg.R-0.2) > 1e-9 || math.Abs(bg.G-0.4) > 1e-9 || math.Abs(bg.B-0.6) > 1e-9 {
		t.Errorf("Background = %+v, want (0.2, 0.4, 0.6)", bg)
	}
}

func TestAssembleOptionsLayoutMode(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		cfgMaxWidth  float64
		wantMaxWidth float64
		wantColumns  int
	}{
		{
			name:         "config width mode",
			cfgMaxWidth:  4.0,
			wantMaxWidth: 4.0,
			wantColumns:  layout.DefaultColumns,
		},
		{
			name:         "explicit columns beat config width",
			args:         []string{"--columns", "3"},
			cfgMaxWidth:  4.0,
			wantMaxWidth: 0,
			wantColumns:  3,
		},
		{
			name:         "explicit max-width wins",
			args:         []string{"--max-width", "6"},
			wantMaxWidth: 6.0,
			wantColumns:  layout.DefaultColumns,
		},
		{
			name:         "max-width beats columns when both given",
			args:         []string{"--columns", "3", "--max-width", "6"},
			wantMaxWidth: 6.0,
			wantColumns:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f launchFlags
			cmd := launchCommandForTest(&f)
			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatalf("ParseFlags() error: %v", err)
			}

			cfg := config.Default()
			cfg.Layout.MaxWidth = tt.cfgMaxWidth

			opts, err := assembleOptions(cmd, cfg, []string{"a.png"}, f)
			if err != nil {
				t.Fatalf("assembleOptions() error: %v", err)
			}
			if opts.Params.MaxWidth != tt.wantMaxWidth {
				t.Errorf("MaxWidth = %v, want %v", opts.Params.MaxWidth, tt.wantMaxWidth)
			}
			if opts.Params.Columns != tt.wantColumns {
				t.Errorf("Columns = %d, want %d", opts.Params.Columns, tt.wantColumns)
			}
		})
	}
}

func TestAssembleOptionsBadBackground(t *testing.T) {
	var f launchFlags
	cmd := launchCommandForTest(&f)
	if err := cmd.ParseFlags([]string{"--background", "nope"}); err != nil {
		t.Fatalf("ParseFlags() error: %v", err)
	}

	_, err := assembleOptions(cmd, config.Default(), []string{"a.png"}, f)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}
