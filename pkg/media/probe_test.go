package media

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/khemadeva/lighttable/pkg/cache"
)

func writePNG(t *testing.T, dir string, w, h int) string {
	t.Helper()
	path := filepath.Join(dir, fmt.Sprintf("test_%dx%d.png", w, h))
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return path
}

func TestProbeImage(t *testing.T) {
	path := writePNG(t, t.TempDir(), 64, 48)

	a := Asset{Path: path, Kind: KindImage}
	p := &Prober{}
	if err := p.Probe(context.Background(), &a); err != nil {
		t.Fatalf("Probe() error: %v", err)
	}
	if a.Width != 64 || a.Height != 48 {
		t.Errorf("probed %dx%d, want 64x48", a.Width, a.Height)
	}
	if a.Source != "png header" {
		t.Errorf("Source = %q, want %q", a.Source, "png header")
	}
}

func TestProbeImageCorrupt(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "broken.png", []byte("not a png at all"))

	a := Asset{Path: path, Kind: KindImage}
	if err := (&Prober{}).Probe(context.Background(), &a); err == nil {
		t.Error("Probe(corrupt) = nil error, want failure")
	}
}

func TestProbeVector(t *testing.T) {
	dir := t.TempDir()
	svg := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 12"><rect width="24" height="12"/></svg>`
	path := writeFile(t, dir, "logo.svg", []byte(svg))

	a := Asset{Path: path, Kind: KindVector}
	if err := (&Prober{}).Probe(context.Background(), &a); err != nil {
		t.Fatalf("Probe() error: %v", err)
	}
	if a.Width != 24 || a.Height != 12 {
		t.Errorf("probed %dx%d, want 24x12", a.Width, a.Height)
	}
	if a.Source != "svg viewbox" {
		t.Errorf("Source = %q, want %q", a.Source, "svg viewbox")
	}
}

func TestProbeVideoCacheHit(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "clip.mp4", []byte("fake video bytes"))

	fc, err := cache.NewFileCache(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}
	defer fc.Close()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	key := cache.ProbeKey(path, info.Size(), info.ModTime().Unix())
	ctx := context.Background()
	if err := fc.Set(ctx, key, []byte("640x480"), probeTTL); err != nil {
		t.Fatal(err)
	}

	// A cache hit must answer without ffprobe being installed.
	a := Asset{Path: path, Kind: KindVideo}
	p := &Prober{Cache: fc, Binary: "ffprobe-that-does-not-exist"}
	if err := p.Probe(ctx, &a); err != nil {
		t.Fatalf("Probe() error: %v", err)
	}
	if a.Width != 640 || a.Height != 480 {
		t.Errorf("probed %dx%d, want 640x480", a.Width, a.Height)
	}
	if a.Source != "cache" {
		t.Errorf("Source = %q, want %q", a.Source, "cache")
	}
}

func TestParseDimensions(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantW   int
		wantH   int
		wantErr bool
	}{
		{name: "plain", input: "1920x1080", wantW: 1920, wantH: 1080},
		{name: "multiline keeps first", input: "1280x720\n1280x720", wantW: 1280, wantH: 720},
		{name: "trailing separator", input: "640x480x", wantW: 640, wantH: 480},
		{name: "garbage", input: "widthxheight", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := parseDimensions(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseDimensions(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && (w != tt.wantW || h != tt.wantH) {
				t.Errorf("parseDimensions(%q) = %dx%d, want %dx%d", tt.input, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}
