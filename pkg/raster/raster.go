// Package raster converts vector graphics into raster images the host
// application can import. The host's plane importer reads pixel formats
// only, so SVG inputs are rendered to PNG in the staging workspace first.
package raster

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/khemadeva/lighttable/pkg/errors"
)

// Render rasterizes the SVG read from r at its natural viewBox size,
// preserving transparency.
func Render(r io.Reader) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRasterizeFailed, err, "parse svg")
	}

	w := int(icon.ViewBox.W)
	h := int(icon.ViewBox.H)
	if w <= 0 || h <= 0 {
		return nil, errors.New(errors.ErrCodeRasterizeFailed, "svg has no usable viewBox")
	}

	icon.SetTarget(0, 0, float64(w), float64(h))
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	scanner.SetClip(img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	return img, nil
}

// Encode writes img as PNG.
func Encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRasterizeFailed, err, "encode png")
	}
	return buf.Bytes(), nil
}

// PNG renders the SVG file at src to a PNG file at dst and returns the
// pixel dimensions of the written image.
func PNG(src, dst string) (int, int, error) {
	f, err := os.Open(src)
	if err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeRasterizeFailed, err, "open %s", src)
	}
	defer f.Close()

	img, err := Render(f)
	if err != nil {
		return 0, 0, err
	}

	data, err := Encode(img)
	if err != nil {
		return 0, 0, err
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeRasterizeFailed, err, "write %s", dst)
	}
	b := img.Bounds()
	return b.Dx(), b.Dy(), nil
}
