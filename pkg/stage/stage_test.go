package stage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestWorkspace(t *testing.T) {
	w, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer w.Cleanup()

	if !strings.HasPrefix(filepath.Base(w.Dir()), prefix) {
		t.Errorf("Dir() = %q, want %q prefix", w.Dir(), prefix)
	}
	if info, err := os.Stat(w.Dir()); err != nil || !info.IsDir() {
		t.Fatalf("workspace directory missing: %v", err)
	}

	path, err := w.Write("scene.py", []byte("import bpy\n"))
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if path != w.Path("scene.py") {
		t.Errorf("Write() path = %q, want %q", path, w.Path("scene.py"))
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "import bpy\n" {
		t.Errorf("staged file = %q, %v", data, err)
	}
}

func TestWorkspaceUnique(t *testing.T) {
	a, err := New()
	if err != nil {
		t.Fatal(err)
	}
	defer a.Cleanup()
	b, err := New()
	if err != nil {
		t.Fatal(err)
	}
	defer b.Cleanup()

	if a.Dir() == b.Dir() {
		t.Errorf("two workspaces share directory %q", a.Dir())
	}
}

func TestCleanup(t *testing.T) {
	w, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Cleanup(); err != nil {
		t.Fatalf("Cleanup() error: %v", err)
	}
	if _, err := os.Stat(w.Dir()); !os.IsNotExist(err) {
		t.Errorf("workspace still exists after Cleanup()")
	}
}

func TestSweep(t *testing.T) {
	old, err := New()
	if err != nil {
		t.Fatal(err)
	}
	defer old.Cleanup()
	fresh, err := New()
	if err != nil {
		t.Fatal(err)
	}
	defer fresh.Cleanup()

	stale := time.Now().Add(-72 * time.Hour)
	if err := os.Chtimes(old.Dir(), stale, stale); err != nil {
		t.Fatal(err)
	}

	if removed := Sweep(SweepAge); removed < 1 {
		t.Errorf("Sweep() removed %d workspaces, want at least 1", removed)
	}
	if _, err := os.Stat(old.Dir()); !os.IsNotExist(err) {
		t.Error("aged workspace survived Sweep()")
	}
	if _, err := os.Stat(fresh.Dir()); err != nil {
		t.Error("fresh workspace removed by Sweep()")
	}
}
