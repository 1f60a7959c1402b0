// Package pkg provides the core libraries for the lighttable media launcher.
//
// # Overview
//
// Lighttable lays image, video, and vector files out on a flat grid and opens
// the result in Blender, the way photographers spread slides on a light
// table. The pkg directory is organized around that flow:
//
//  1. [media] - Discovery and dimension probing
//  2. [layout] - Grid planning and orthographic camera fitting
//  3. [stage] / [raster] - Rasterizing vectors into a staging workspace
//  4. [blender] - Scene script generation and process launch
//  5. [pipeline] - Orchestration shared by every CLI command
//
// # Architecture
//
// The typical data flow:
//
//	Paths (files and directories)
//	         ↓
//	    [media] package (discover files, probe pixel dimensions)
//	         ↓
//	    [layout] package (plan the grid, fit the camera)
//	         ↓
//	    [stage] package (rasterize vectors via [raster])
//	         ↓
//	    [blender] package (emit scene script, launch the process)
//
// # Quick Start
//
// Plan a grid for a directory of media:
//
//	import (
//	    "context"
//	    "github.com/khemadeva/lighttable/pkg/layout"
//	    "github.com/khemadeva/lighttable/pkg/media"
//	)
//
//	// 1. Discover and probe
//	assets, _ := media.Discover([]string{"shots/"}, nil)
//	prober := &media.Prober{}
//	for i := range assets {
//	    _ = prober.Probe(context.Background(), &assets[i])
//	}
//
//	// 2. Plan the layout
//	items := make([]layout.Item, len(assets))
//	for i, a := range assets {
//	    items[i] = a.Item()
//	}
//	plan := layout.Build(items, layout.DefaultParams())
//
//	// 3. Fit the camera
//	fit := layout.FitPlan(plan, layout.DefaultBaseResX, layout.DefaultBaseResY)
//
// # Main Packages
//
// [media] - File discovery with extension and content-based kind detection,
// plus dimension probing: image headers via the standard decoders, SVG
// viewBox parsing, and ffprobe for video. Probe results flow through [cache].
//
// [layout] - The grid planner (column mode and width-capped mode) and the
// orthographic camera fit that frames the finished grid.
//
// [blender] - Python scene script generation, background color parsing, and
// launching the Blender process, optionally detached inside a terminal
// emulator.
//
// [raster] - SVG rasterization to PNG. [stage] - Staging workspaces for the
// rasterized files, swept after they age out.
//
// [preview] - Renders a computed plan as SVG, PNG, or JSON without launching
// anything.
//
// [pipeline] - The discover, probe, plan, stage, launch sequence used by the
// CLI, with per-stage timing stats.
//
// [config] - Optional TOML defaults. [errors] - Coded errors with
// user-facing messages. [cache] - File-backed probe cache. [buildinfo] -
// Version metadata set at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/layout/...    # Specific package
//	go test -run Example        # Examples only
//
// [media]: https://pkg.go.dev/github.com/khemadeva/lighttable/pkg/media
// [layout]: https://pkg.go.dev/github.com/khemadeva/lighttable/pkg/layout
// [blender]: https://pkg.go.dev/github.com/khemadeva/lighttable/pkg/blender
// [raster]: https://pkg.go.dev/github.com/khemadeva/lighttable/pkg/raster
// [stage]: https://pkg.go.dev/github.com/khemadeva/lighttable/pkg/stage
// [preview]: https://pkg.go.dev/github.com/khemadeva/lighttable/pkg/preview
// [pipeline]: https://pkg.go.dev/github.com/khemadeva/lighttable/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/khemadeva/lighttable/pkg/config
// [errors]: https://pkg.go.dev/github.com/khemadeva/lighttable/pkg/errors
// [cache]: https://pkg.go.dev/github.com/khemadeva/lighttable/pkg/cache
// [buildinfo]: https://pkg.go.dev/github.com/khemadeva/lighttable/pkg/buildinfo
package pkg
