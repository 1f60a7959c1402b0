// Package stage manages the per-run staging workspace in the system temp
// directory. It holds the generated scene script and rasterized vectors.
//
// The workspace must outlive this process: the host application is launched
// detached and reads the staged files after lighttable exits. Cleanup is
// therefore explicit. Dry runs remove their workspace before returning;
// launches leave theirs behind and rely on Sweep to clear aged leftovers on
// later runs.
package stage

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/khemadeva/lighttable/pkg/errors"
)

const prefix = "lighttable-"

// SweepAge is how long launched workspaces survive before Sweep removes
// them. Two days covers host sessions left open overnight.
const SweepAge = 48 * time.Hour

// Workspace is one run's staging directory.
type Workspace struct {
	dir string
}

// New creates a uniquely named workspace under the system temp directory.
func New() (*Workspace, error) {
	dir := filepath.Join(os.TempDir(), prefix+uuid.NewString())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create staging directory")
	}
	return &Workspace{dir: dir}, nil
}

// Dir returns the workspace root.
func (w *Workspace) Dir() string { return w.dir }

// Path returns the location of name inside the workspace.
func (w *Workspace) Path(name string) string { return filepath.Join(w.dir, name) }

// Write stores data under name and returns its full path.
func (w *Workspace) Write(name string, data []byte) (string, error) {
	path := w.Path(name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "stage %s", name)
	}
	return path, nil
}

// Cleanup removes the workspace. Call only when no detached process will
// read from it.
func (w *Workspace) Cleanup() error {
	return os.RemoveAll(w.dir)
}

// Sweep removes sibling workspaces older than maxAge and reports how many
// it deleted. Errors are ignored; a leftover directory is removed on a
// later run.
func Sweep(maxAge time.Duration) int {
	entries, err := os.ReadDir(os.TempDir())
	if err != nil {
		return 0
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, e := range entries {
		if !e.IsDir() || !strings.HasPrefix(e.Name(), prefix) {
			continue
		}
		info, err := e.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if os.RemoveAll(filepath.Join(os.TempDir(), e.Name())) == nil {
			removed++
		}
	}
	return removed
}
