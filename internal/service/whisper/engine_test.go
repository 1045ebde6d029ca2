package whisper

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// fakeRunner simulates command execution order and outcomes.
type fakeRunner struct {
	run func(ctx context.Context, name string, args ...string) (commandResult, error)
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) (commandResult, error) {
	if f.run == nil {
		return commandResult{}, nil
	}
	return f.run(ctx, name, args...)
}

func argValue(args []string, flag string) string {
	for i, a := range args {
		if a == flag && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func TestInitRejectsMissingModel(t *testing.T) {
	// "true" resolves on any PATH; the model file does not exist.
	e := NewEngine(Options{BinPath: "true", ModelPath: filepath.Join(t.TempDir(), "absent.bin")})
	if err := e.Init(context.Background()); err == nil {
		t.Fatal("Init() error = nil, want model access error")
	}
}

func TestInitRejectsMissingBinary(t *testing.T) {
	model := filepath.Join(t.TempDir(), "model.bin")
	if err := os.WriteFile(model, []byte("model"), 0o644); err != nil {
		t.Fatal(err)
	}
	e := NewEngine(Options{BinPath: "definitely-not-on-path-48151623", ModelPath: model})
	if err := e.Init(context.Background()); err == nil {
		t.Fatal("Init() error = nil, want lookup error")
	}
}

func TestTranscribeHarvestsTranscript(t *testing.T) {
	root := t.TempDir()
	audioPath := filepath.Join(root, "job.wav")
	if err := os.WriteFile(audioPath, []byte("wav"), 0o644); err != nil {
		t.Fatal(err)
	}

	var gotArgs []string
	runner := &fakeRunner{
		run: func(ctx context.Context, name string, args ...string) (commandResult, error) {
			gotArgs = append([]string{}, args...)
			base := argValue(args, "-of")
			if err := os.WriteFile(base+".txt", []byte("  ola mundo \n"), 0o644); err != nil {
				t.Fatal(err)
			}
			return commandResult{}, nil
		},
	}
	e := NewEngineForTests(Options{BinPath: "whisper-cli", ModelPath: "/models/base.bin", Language: "pt"}, runner)

	text, err := e.Transcribe(context.Background(), audioPath)
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if text != "ola mundo" {
		t.Fatalf("transcript = %q, want trimmed text", text)
	}
	if argValue(gotArgs, "-m") != "/models/base.bin" {
		t.Fatalf("model arg = %q", argValue(gotArgs, "-m"))
	}
	if argValue(gotArgs, "-f") != audioPath {
		t.Fatalf("audio arg = %q", argValue(gotArgs, "-f"))
	}
	if argValue(gotArgs, "-l") != "pt" {
		t.Fatalf("language arg = %q", argValue(gotArgs, "-l"))
	}
	wantBase := filepath.Join(root, "job")
	if argValue(gotArgs, "-of") != wantBase {
		t.Fatalf("output base = %q, want %q", argValue(gotArgs, "-of"), wantBase)
	}
	if _, err := os.Stat(wantBase + ".txt"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("transcript sidecar should be removed, stat err = %v", err)
	}
}

func TestTranscribeAutoLanguageOmitsFlag(t *testing.T) {
	root := t.TempDir()
	audioPath := filepath.Join(root, "job.wav")

	var gotArgs []string
	runner := &fakeRunner{
		run: func(ctx context.Context, name string, args ...string) (commandResult, error) {
			gotArgs = append([]string{}, args...)
			base := argValue(args, "-of")
			if err := os.WriteFile(base+".txt", []byte("text"), 0o644); err != nil {
				t.Fatal(err)
			}
			return commandResult{}, nil
		},
	}
	e := NewEngineForTests(Options{BinPath: "whisper-cli", ModelPath: "m.bin", Language: "auto"}, runner)

	if _, err := e.Transcribe(context.Background(), audioPath); err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if argValue(gotArgs, "-l") != "" {
		t.Fatalf("auto language should not pass -l, args=%v", gotArgs)
	}
}

func TestTranscribeEngineFailure(t *testing.T) {
	runner := &fakeRunner{
		run: func(ctx context.Context, name string, args ...string) (commandResult, error) {
			return commandResult{Stderr: "model load failed", ExitCode: 3}, errors.New("exit status 3")
		},
	}
	e := NewEngineForTests(Options{BinPath: "whisper-cli", ModelPath: "m.bin"}, runner)

	if _, err := e.Transcribe(context.Background(), "a.wav"); err == nil {
		t.Fatal("Transcribe() error = nil, want engine failure")
	}
}

func TestTranscribeMissingTranscriptFile(t *testing.T) {
	// The engine exits zero but never writes the sidecar.
	e := NewEngineForTests(Options{BinPath: "whisper-cli", ModelPath: "m.bin"}, &fakeRunner{})

	if _, err := e.Transcribe(context.Background(), filepath.Join(t.TempDir(), "a.wav")); err == nil {
		t.Fatal("Transcribe() error = nil, want missing transcript error")
	}
}

func TestTranscribeRequiresInit(t *testing.T) {
	e := NewEngine(Options{BinPath: "whisper-cli", ModelPath: "m.bin"})
	if _, err := e.Transcribe(context.Background(), "a.wav"); err == nil {
		t.Fatal("Transcribe() before Init must fail")
	}
}
