package media

import (
	"context"
	"fmt"
	"image"
	"math"
	"os"
	"time"

	_ "image/jpeg"
	_ "image/png"

	"github.com/srwiley/oksvg"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/khemadeva/lighttable/pkg/cache"
	"github.com/khemadeva/lighttable/pkg/errors"
)

// probeTTL bounds how long cached video dimensions stay valid. The cache key
// already includes size and mtime, so the TTL only clears out entries for
// files that no longer exist.
const probeTTL = 30 * 24 * time.Hour

// Prober resolves asset dimensions. The zero value probes without caching.
type Prober struct {
	// Cache stores ffprobe results keyed by path, size, and mtime.
	Cache cache.Cache

	// Binary overrides the ffprobe executable name.
	Binary string

	// Logf receives debug messages. May be nil.
	Logf func(string, ...any)
}

// Probe fills in the asset's Width, Height, and Source. Image and vector
// probes read file headers; video probes shell out to ffprobe. The returned
// error carries PROBE_FAILED for unreadable media and TOOL_NOT_FOUND when
// ffprobe is missing; callers decide whether to degrade or abort.
func (p *Prober) Probe(ctx context.Context, a *Asset) error {
	switch a.Kind {
	case KindImage:
		return p.probeImage(a)
	case KindVector:
		return p.probeVector(a)
	case KindVideo:
		return p.probeVideo(ctx, a)
	}
	return errors.New(errors.ErrCodeInternal, "unknown media kind %q", a.Kind)
}

func (p *Prober) logf(format string, args ...any) {
	if p.Logf != nil {
		p.Logf(format, args...)
	}
}

// probeImage decodes just enough of the file to read its dimensions.
// Formats without a registered Go decoder (EXR, TGA, ...) fail here and
// degrade to a unit square at plan time.
func (p *Prober) probeImage(a *Asset) error {
	f, err := os.Open(a.Path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeProbeFailed, err, "open %s", a.Path)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return errors.Wrap(errors.ErrCodeProbeFailed, err, "decode header of %s", a.Path)
	}
	a.Width, a.Height = cfg.Width, cfg.Height
	a.Source = format + " header"
	return nil
}

// probeVector reads the SVG viewBox. Dimensions are intrinsic units, not
// pixels; only the aspect ratio matters for layout.
func (p *Prober) probeVector(a *Asset) error {
	f, err := os.Open(a.Path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeProbeFailed, err, "open %s", a.Path)
	}
	defer f.Close()

	icon, err := oksvg.ReadIconStream(f)
	if err != nil {
		return errors.Wrap(errors.ErrCodeProbeFailed, err, "parse %s", a.Path)
	}
	a.Width = int(math.Round(icon.ViewBox.W))
	a.Height = int(math.Round(icon.ViewBox.H))
	a.Source = "svg viewbox"
	return nil
}

// probeVideo consults the cache before shelling out to ffprobe.
func (p *Prober) probeVideo(ctx context.Context, a *Asset) error {
	info, err := os.Stat(a.Path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeProbeFailed, err, "stat %s", a.Path)
	}
	key := cache.ProbeKey(a.Path, info.Size(), info.ModTime().Unix())

	if p.Cache != nil {
		if data, ok, err := p.Cache.Get(ctx, key); err == nil && ok {
			if w, h, err := parseDimensions(string(data)); err == nil {
				a.Width, a.Height = w, h
				a.Source = "cache"
				return nil
			}
			p.logf("discarding malformed cache entry for %s", a.Path)
		}
	}

	w, h, err := ffprobeSize(ctx, p.Binary, a.Path)
	if err != nil {
		return err
	}
	a.Width, a.Height = w, h
	a.Source = "ffprobe"

	if p.Cache != nil {
		entry := fmt.Appendf(nil, "%dx%d", w, h)
		if err := p.Cache.Set(ctx, key, entry, probeTTL); err != nil {
			p.logf("caching probe result for %s failed: %v", a.Path, err)
		}
	}
	return nil
}
