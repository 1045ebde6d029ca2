package media

import (
	"context"
	"strconv"
	"strings"

	"github.com/gogf/gf/v2/frame/g"
)

// Prober queries container duration through ffprobe.
type Prober struct {
	binPath string
	runner  commandRunner
}

func NewProber(binPath string) *Prober {
	if binPath == "" {
		binPath = "ffprobe"
	}
	return &Prober{binPath: binPath, runner: &execRunner{}}
}

// Duration returns the media duration in seconds. Duration is best-effort
// metadata: missing tool, nonzero exit and malformed output all yield
// ok=false, never an error.
func (p *Prober) Duration(ctx context.Context, path string) (seconds float64, ok bool) {
	result, err := p.runner.Run(ctx, p.binPath,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	if err != nil {
		g.Log().Warningf(ctx, "ffprobe duration failed for %s: %v", path, err)
		return 0, false
	}
	raw := strings.TrimSpace(result.Stdout)
	if raw == "" {
		return 0, false
	}
	seconds, convErr := strconv.ParseFloat(raw, 64)
	if convErr != nil || seconds < 0 {
		g.Log().Warningf(ctx, "ffprobe returned non-numeric duration %q for %s", raw, path)
		return 0, false
	}
	return seconds, true
}

// NewProberForTests constructs a prober with an injected runner.
func NewProberForTests(binPath string, runner commandRunner) *Prober {
	return &Prober{binPath: binPath, runner: runner}
}
