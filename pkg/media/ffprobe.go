package media

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/khemadeva/lighttable/pkg/errors"
)

const defaultFFprobe = "ffprobe"

// ffprobeSize asks ffprobe for the dimensions of the first video stream.
// Requires ffmpeg: brew install ffmpeg (macOS), apt install ffmpeg (Linux).
func ffprobeSize(ctx context.Context, bin, path string) (int, int, error) {
	if bin == "" {
		bin = defaultFFprobe
	}
	if _, err := exec.LookPath(bin); err != nil {
		return 0, 0, errors.New(errors.ErrCodeToolNotFound,
			"video probing requires ffprobe. Install with:\n  macOS:  brew install ffmpeg\n  Linux:  apt install ffmpeg")
	}

	cmd := exec.CommandContext(ctx, bin,
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=width,height",
		"-of", "csv=s=x:p=0",
		path)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(errBuf.String())
		if msg == "" {
			msg = err.Error()
		}
		return 0, 0, errors.Wrap(errors.ErrCodeProbeFailed, err, "ffprobe %s: %s", path, msg)
	}

	w, h, err := parseDimensions(strings.TrimSpace(out.String()))
	if err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeProbeFailed, err, "ffprobe %s", path)
	}
	return w, h, nil
}

// parseDimensions parses "WxH" as produced by ffprobe's csv output and by
// the probe cache entries.
func parseDimensions(s string) (int, int, error) {
	// Some containers report extra per-stream lines; the first one wins.
	if line, _, found := strings.Cut(s, "\n"); found {
		s = line
	}
	ws, hs, found := strings.Cut(strings.TrimSpace(s), "x")
	if !found {
		return 0, 0, fmt.Errorf("malformed dimensions %q", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed width %q", ws)
	}
	h, err := strconv.Atoi(strings.TrimSuffix(hs, "x"))
	if err != nil {
		return 0, 0, fmt.Errorf("malformed height %q", hs)
	}
	return w, h, nil
}
