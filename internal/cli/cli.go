// Package cli implements the lighttable command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/khemadeva/lighttable/pkg/buildinfo"
	"github.com/khemadeva/lighttable/pkg/cache"
	"github.com/khemadeva/lighttable/pkg/config"
	"github.com/khemadeva/lighttable/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "lighttable"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The root command itself runs the launch; invoking it without paths prints
// the help text instead.
func (c *CLI) RootCommand() *cobra.Command {
	var flags launchFlags

	root := &cobra.Command{
		Use:   "lighttable [paths...]",
		Short: "Lighttable lays media out as planes in Blender",
		Long: `Lighttable imports images, videos, and SVGs as planes in Blender, arranged
on a grid under an orthographic camera, like photographs on a light table.
Directories are scanned for supported media; SVGs are rasterized to PNG
before import.

Run with paths to launch, or use 'plan' to inspect the layout first.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return c.runOpen(cmd.Context(), cmd, args, flags)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	addLaunchFlags(root, &flags)

	// Register all subcommands
	root.AddCommand(c.planCommand())
	root.AddCommand(c.probeCommand())
	root.AddCommand(c.scriptCommand())
	root.AddCommand(c.pickCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	probeCache, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(probeCache, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/lighttable/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configDir returns the config directory using XDG standard (~/.config/lighttable/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// loadConfig reads the user config file. No resolvable config directory just
// means built-in defaults; a malformed file is an error.
func (c *CLI) loadConfig() (config.Config, error) {
	dir, err := configDir()
	if err != nil {
		return config.Default(), nil
	}
	return config.Load(filepath.Join(dir, config.FileName))
}
