package media

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/khemadeva/lighttable/pkg/errors"
)

// pngHeader is the 8-byte PNG signature, enough for magic-byte matching.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDiscoverDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.png", pngHeader)
	writeFile(t, dir, "a.jpg", nil)
	writeFile(t, dir, "notes.txt", []byte("not media"))
	writeFile(t, dir, "c.mp4", nil)
	if err := os.Mkdir(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatal(err)
	}

	var skipped []string
	logf := func(format string, args ...any) {
		skipped = append(skipped, format)
	}

	assets, err := Discover([]string{dir}, logf)
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}

	wantNames := []string{"a.jpg", "b.png", "c.mp4"}
	if len(assets) != len(wantNames) {
		t.Fatalf("Discover() found %d assets, want %d", len(assets), len(wantNames))
	}
	for i, a := range assets {
		if a.Name() != wantNames[i] {
			t.Errorf("asset %d = %q, want %q (sorted order)", i, a.Name(), wantNames[i])
		}
	}
	if len(skipped) != 1 {
		t.Errorf("skipped %d entries, want 1 (notes.txt)", len(skipped))
	}
}

func TestDiscoverExplicitFiles(t *testing.T) {
	dir := t.TempDir()
	img := writeFile(t, dir, "photo.png", pngHeader)
	vec := writeFile(t, dir, "logo.svg", []byte("<svg/>"))

	assets, err := Discover([]string{img, vec}, nil)
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	if len(assets) != 2 {
		t.Fatalf("Discover() found %d assets, want 2", len(assets))
	}
	if assets[0].Kind != KindImage || assets[1].Kind != KindVector {
		t.Errorf("kinds = %q, %q, want image, vector", assets[0].Kind, assets[1].Kind)
	}
}

func TestDiscoverMissingPath(t *testing.T) {
	_, err := Discover([]string{"/no/such/path.png"}, nil)
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("Discover(missing) error = %v, want INVALID_PATH", err)
	}
}

func TestDiscoverUnsupportedFile(t *testing.T) {
	dir := t.TempDir()
	txt := writeFile(t, dir, "readme.txt", []byte("plain text"))

	_, err := Discover([]string{txt}, nil)
	if !errors.Is(err, errors.ErrCodeUnsupportedMedia) {
		t.Errorf("Discover(txt) error = %v, want UNSUPPORTED_MEDIA", err)
	}
	if err != nil && !strings.Contains(err.Error(), "readme.txt") {
		t.Errorf("error %q should name the file", err)
	}
}

func TestDiscoverSniffsExtensionless(t *testing.T) {
	dir := t.TempDir()
	raw := writeFile(t, dir, "snapshot", pngHeader)

	assets, err := Discover([]string{raw}, nil)
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	if len(assets) != 1 || assets[0].Kind != KindImage {
		t.Fatalf("Discover(sniffed png) = %+v, want one image asset", assets)
	}
}

func TestSniffUnknownContent(t *testing.T) {
	dir := t.TempDir()
	raw := writeFile(t, dir, "blob", []byte("arbitrary bytes, no signature"))

	if kind, ok := Sniff(raw); ok {
		t.Errorf("Sniff(blob) = %q, want no match", kind)
	}
}
