package media

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"strings"

	"knscribe-service/internal/consts"
)

// Kind is the coarse media classification used for routing uploads through
// the pipeline.
type Kind string

const (
	KindAudio   Kind = consts.MediaKindAudio
	KindVideo   Kind = consts.MediaKindVideo
	KindUnknown Kind = "unknown"
)

// Classify determines the media kind from a filename's extension.
// Case-insensitive; filenames without a recognized extension yield
// KindUnknown and must be rejected upstream.
func Classify(filename string) Kind {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return KindUnknown
	}
	kind, ok := consts.MediaKindByExt[ext]
	if !ok {
		return KindUnknown
	}
	return Kind(kind)
}

// commandResult is an internal process execution response.
type commandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// commandRunner abstracts process execution for testability.
type commandRunner interface {
	Run(ctx context.Context, name string, args ...string) (commandResult, error)
}

// execRunner executes commands via os/exec.
type execRunner struct{}

func (r *execRunner) Run(ctx context.Context, name string, args ...string) (commandResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := commandResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: 0,
	}
	if err != nil {
		result.ExitCode = -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		}
		return result, err
	}
	return result, nil
}
