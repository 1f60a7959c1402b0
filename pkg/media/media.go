// Package media discovers importable files and probes their dimensions.
//
// An Asset is one file the host application can import as a plane: a raster
// image, a video, or a vector graphic (rasterized first, see pkg/raster).
// Discovery expands paths and directories into assets by extension, with a
// content sniff as fallback for explicitly named files; probing fills in
// pixel dimensions from file headers, the SVG viewBox, or an external
// ffprobe call for videos.
package media

import (
	"path/filepath"
	"strings"

	"github.com/khemadeva/lighttable/pkg/layout"
)

// Kind classifies an asset by how it is probed and imported.
type Kind string

const (
	KindImage  Kind = "image"
	KindVideo  Kind = "video"
	KindVector Kind = "vector"
)

// Asset is one importable media file. Width and Height are pixel dimensions
// (intrinsic viewBox units for vectors) filled in by probing; zero means the
// probe failed and the planner falls back to a unit square.
type Asset struct {
	Path   string
	Kind   Kind
	Width  int
	Height int

	// Staged is the rasterized substitute for vector assets, set during
	// staging. Empty for assets imported directly.
	Staged string

	// Source records what produced the dimensions, for inspection output.
	Source string
}

// ImportPath returns the path the host application should import: the staged
// raster for vectors, the original file otherwise.
func (a Asset) ImportPath() string {
	if a.Staged != "" {
		return a.Staged
	}
	return a.Path
}

// Name returns the asset's base file name.
func (a Asset) Name() string { return filepath.Base(a.Path) }

// Item converts the asset to a planner item in unit-height dimensions
// (width = aspect ratio, height = 1), the sizing convention of the plane
// importer. Unprobed assets yield a zero-size item, which the planner treats
// as a unit square.
func (a Asset) Item() layout.Item {
	it := layout.Item{ID: a.Path}
	if a.Width > 0 && a.Height > 0 {
		it.Width = float64(a.Width) / float64(a.Height)
		it.Height = 1
	}
	return it
}

// Supported extensions, grouped by how the host application loads them.
// Images follow the host's own loader support, so formats like GIF that it
// cannot open are excluded even though Go could decode them.
var (
	imageExts = map[string]bool{
		".png": true, ".jpg": true, ".jpeg": true, ".bmp": true,
		".tga": true, ".tif": true, ".tiff": true, ".webp": true,
		".exr": true, ".hdr": true, ".dpx": true, ".cin": true,
		".jp2": true, ".j2c": true,
	}
	videoExts = map[string]bool{
		".mp4": true, ".mov": true, ".avi": true, ".mkv": true,
		".webm": true, ".mpg": true, ".mpeg": true, ".ogv": true,
		".ogg": true, ".flv": true, ".wmv": true,
	}
	vectorExts = map[string]bool{
		".svg": true,
	}
)

// KindForPath classifies a path by extension. The second return value is
// false for unsupported or missing extensions.
func KindForPath(path string) (Kind, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case imageExts[ext]:
		return KindImage, true
	case videoExts[ext]:
		return KindVideo, true
	case vectorExts[ext]:
		return KindVector, true
	}
	return "", false
}
