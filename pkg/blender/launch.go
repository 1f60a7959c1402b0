package blender

import (
	"os"
	"os/exec"

	"github.com/khemadeva/lighttable/pkg/errors"
)

const defaultBinary = "blender"

// EnvBinary is the environment variable consulted when no binary is
// configured explicitly.
const EnvBinary = "BLENDER"

// LaunchOptions configures one host process launch.
type LaunchOptions struct {
	// Binary is the host executable. Empty resolves via $BLENDER, then PATH.
	Binary string

	// Terminal optionally wraps the launch in a terminal emulator, so the
	// host's console output stays visible.
	Terminal string

	// Script is the path of the staged scene script.
	Script string
}

// ResolveBinary locates the host executable: the explicit setting first,
// then $BLENDER, then the default name on PATH.
func ResolveBinary(binary string) (string, error) {
	if binary == "" {
		binary = os.Getenv(EnvBinary)
	}
	if binary == "" {
		binary = defaultBinary
	}
	path, err := exec.LookPath(binary)
	if err != nil {
		return "", errors.New(errors.ErrCodeToolNotFound,
			"host application %q not found. Install Blender and ensure it is on PATH, or point --blender or $%s at the binary", binary, EnvBinary)
	}
	return path, nil
}

// Launch starts `[terminal] blender --python <script>` detached from this
// process with stdio discarded, and returns the spawned process id. The
// child survives lighttable exiting.
func Launch(opts LaunchOptions) (int, error) {
	bin, err := ResolveBinary(opts.Binary)
	if err != nil {
		return 0, err
	}

	name := bin
	args := []string{"--python", opts.Script}
	if opts.Terminal != "" {
		if _, err := exec.LookPath(opts.Terminal); err != nil {
			return 0, errors.New(errors.ErrCodeToolNotFound,
				"terminal emulator %q not found in PATH", opts.Terminal)
		}
		name = opts.Terminal
		args = append([]string{bin}, args...)
	}

	cmd := exec.Command(name, args...)
	cmd.SysProcAttr = detachAttr()
	// Stdin, Stdout, and Stderr stay nil: the child reads from and writes
	// to the null device.

	if err := cmd.Start(); err != nil {
		return 0, errors.Wrap(errors.ErrCodeLaunchFailed, err, "start host application")
	}
	pid := cmd.Process.Pid
	_ = cmd.Process.Release()
	return pid, nil
}
