package whisper

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/gogf/gf/v2/frame/g"
)

// Options configures the recognition engine invocation.
type Options struct {
	BinPath   string // whisper.cpp style executable
	ModelPath string // ggml model file
	Language  string // language hint, empty for auto detection
}

// Engine invokes a local whisper.cpp style recognizer. The model is resolved
// once at startup through Init; inference calls are serialized because the
// engine binding is not proven safe for concurrent invocation.
type Engine struct {
	opts   Options
	runner commandRunner

	mu    sync.Mutex
	ready bool
}

func NewEngine(opts Options) *Engine {
	if opts.BinPath == "" {
		opts.BinPath = "whisper.cpp"
	}
	return &Engine{opts: opts, runner: &execRunner{}}
}

// Init performs the one-time blocking startup check: the executable must be
// resolvable and the model file must exist. The server must not accept
// requests until Init succeeds.
func (e *Engine) Init(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.ready {
		return nil
	}
	if _, err := exec.LookPath(e.opts.BinPath); err != nil {
		return gerror.Wrapf(err, "recognition engine binary not found: %s", e.opts.BinPath)
	}
	if strings.TrimSpace(e.opts.ModelPath) == "" {
		return gerror.New("recognition model path is required")
	}
	info, err := os.Stat(e.opts.ModelPath)
	if err != nil {
		return gerror.Wrapf(err, "cannot access recognition model: %s", e.opts.ModelPath)
	}
	if info.IsDir() {
		return gerror.Newf("recognition model path is a directory: %s", e.opts.ModelPath)
	}
	e.ready = true
	g.Log().Infof(ctx, "recognition engine ready, bin=%s model=%s lang=%s",
		e.opts.BinPath, e.opts.ModelPath, e.opts.Language)
	return nil
}

// Transcribe runs the engine on a canonical audio file and returns the
// recognized text with surrounding whitespace trimmed. The invocation is
// synchronous and blocking for the duration of the call.
func (e *Engine) Transcribe(ctx context.Context, audioPath string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.ready {
		return "", gerror.New("recognition engine is not initialized")
	}

	outBase := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))
	args := e.buildArgs(audioPath, outBase)

	result, err := e.runner.Run(ctx, e.opts.BinPath, args...)
	if err != nil {
		g.Log().Errorf(ctx, "recognition engine failed (exit=%d): %s",
			result.ExitCode, strings.TrimSpace(result.Stderr))
		return "", gerror.Wrap(err, "recognition engine failed")
	}

	textPath := outBase + ".txt"
	content, err := os.ReadFile(textPath)
	if err != nil {
		return "", gerror.Wrap(err, "engine completed but transcript file is missing")
	}
	_ = os.Remove(textPath)
	return strings.TrimSpace(string(content)), nil
}

func (e *Engine) buildArgs(audioPath, outBase string) []string {
	args := []string{
		"-m", e.opts.ModelPath,
		"-f", audioPath,
		"-of", outBase,
		"-otxt",
	}
	if lang := strings.TrimSpace(e.opts.Language); lang != "" && !strings.EqualFold(lang, "auto") {
		args = append(args, "-l", lang)
	}
	return args
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

// NewEngineForTests constructs an initialized engine with an injected runner.
func NewEngineForTests(opts Options, runner commandRunner) *Engine {
	return &Engine{opts: opts, runner: runner, ready: true}
}
