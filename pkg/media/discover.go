package media

import (
	"os"
	"path/filepath"

	"github.com/khemadeva/lighttable/pkg/errors"
)

// Discover expands the given paths into assets. Files are classified by
// extension with a content sniff as fallback; directories are scanned one
// level deep in name order, silently skipping unsupported entries via the
// debug logger. A missing path or an explicitly named unsupported file is an
// error.
func Discover(paths []string, logf func(string, ...any)) ([]Asset, error) {
	if logf == nil {
		logf = func(string, ...any) {}
	}

	var assets []Asset
	for _, p := range paths {
		info, err := os.Stat(p)
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeInvalidPath, "path does not exist: %s", p)
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "stat %s", p)
		}

		if info.IsDir() {
			found, err := scanDir(p, logf)
			if err != nil {
				return nil, err
			}
			assets = append(assets, found...)
			continue
		}

		kind, ok := KindForPath(p)
		if !ok {
			// No usable extension: fall back to magic bytes before
			// rejecting an explicitly named file.
			kind, ok = Sniff(p)
		}
		if !ok {
			return nil, errors.New(errors.ErrCodeUnsupportedMedia, "unsupported media type: %s", p)
		}
		assets = append(assets, Asset{Path: p, Kind: kind})
	}
	return assets, nil
}

// scanDir collects supported files directly inside dir. os.ReadDir returns
// entries sorted by name, which keeps layout order deterministic.
func scanDir(dir string, logf func(string, ...any)) ([]Asset, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read directory %s", dir)
	}

	var assets []Asset
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		kind, ok := KindForPath(path)
		if !ok {
			logf("skipping unsupported file: %s", path)
			continue
		}
		assets = append(assets, Asset{Path: path, Kind: kind})
	}
	return assets, nil
}
