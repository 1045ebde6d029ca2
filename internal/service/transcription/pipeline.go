package transcription

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/google/uuid"

	"knscribe-service/internal/codes"
	"knscribe-service/internal/consts"
	"knscribe-service/internal/model/entity"
	"knscribe-service/internal/service/media"
)

// UploadSource abstracts the uploaded file so the pipeline does not depend on
// the HTTP layer.
type UploadSource interface {
	Filename() string
	Open() (multipart.File, error)
}

// DurationProber yields best-effort container duration.
type DurationProber interface {
	Duration(ctx context.Context, path string) (seconds float64, ok bool)
}

// Normalizer produces the canonical audio waveform from any container.
type Normalizer interface {
	ToCanonicalWAV(ctx context.Context, inputPath, outputPath string) error
}

// Engine submits canonical audio to the speech recognizer.
type Engine interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// Saver persists finished jobs.
type Saver interface {
	Save(ctx context.Context, job *entity.Transcription) (*entity.Transcription, error)
}

// Archiver receives the staged original for long-term object storage.
// Implementations must copy the file before returning; the pipeline deletes
// its temporaries on every exit path.
type Archiver interface {
	Enqueue(ctx context.Context, ownerID int64, objectKey, srcPath string)
}

// Options configures one pipeline instance.
type Options struct {
	WorkDir  string        // parent directory for per-job temp dirs
	Language string        // language hint recorded on each job
	Timeout  time.Duration // wall-clock ceiling per run, 0 disables
}

// Pipeline sequences prober, normalizer and engine for one upload and
// assembles the persistence-ready record.
type Pipeline struct {
	opts     Options
	prober   DurationProber
	norm     Normalizer
	engine   Engine
	saver    Saver
	archiver Archiver // optional
}

func NewPipeline(opts Options, prober DurationProber, norm Normalizer, engine Engine, saver Saver, archiver Archiver) *Pipeline {
	if opts.Language == "" {
		opts.Language = consts.DefaultLanguage
	}
	if opts.WorkDir != "" {
		if err := os.MkdirAll(opts.WorkDir, 0o755); err != nil {
			g.Log().Warningf(context.Background(), "cannot create work dir %s, falling back to the system temp dir: %v", opts.WorkDir, err)
			opts.WorkDir = ""
		}
	}
	return &Pipeline{
		opts:     opts,
		prober:   prober,
		norm:     norm,
		engine:   engine,
		saver:    saver,
		archiver: archiver,
	}
}

// Run executes the upload-to-transcript pipeline for one request. Every
// temporary file created during the run lives in one per-job directory that
// is removed on all exit paths.
func (p *Pipeline) Run(ctx context.Context, upload UploadSource, ownerID int64) (job *entity.Transcription, err error) {
	if upload == nil || strings.TrimSpace(upload.Filename()) == "" {
		return nil, gerror.NewCode(codes.CodeUnsupportedMedia, "no media file provided")
	}

	originalName := filepath.Base(upload.Filename())
	ext := strings.ToLower(filepath.Ext(originalName))
	kind := media.Classify(originalName)
	if kind == media.KindUnknown {
		return nil, gerror.NewCodef(codes.CodeUnsupportedMedia, "unsupported media format: %q", ext)
	}

	if p.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.opts.Timeout)
		defer cancel()
	}

	workDir, err := os.MkdirTemp(p.opts.WorkDir, "job-*")
	if err != nil {
		return nil, gerror.Wrap(err, "failed to create job workspace")
	}
	defer func() {
		if rmErr := os.RemoveAll(workDir); rmErr != nil {
			g.Log().Warningf(ctx, "job workspace cleanup failed: %v", rmErr)
		}
	}()

	storedName := uuid.NewString() + ext
	stagedPath := filepath.Join(workDir, storedName)
	sizeBytes, err := p.stage(upload, stagedPath)
	if err != nil {
		return nil, err
	}

	// The extension says media; the bytes must agree.
	if err := p.verifyContent(stagedPath); err != nil {
		return nil, err
	}

	if p.archiver != nil {
		p.archiver.Enqueue(ctx, ownerID, storedName+"/"+sanitizeFilename(originalName), stagedPath)
	}

	audioPath := stagedPath
	if kind == media.KindVideo {
		wavPath := filepath.Join(workDir, strings.TrimSuffix(storedName, ext)+".wav")
		if err := p.norm.ToCanonicalWAV(ctx, stagedPath, wavPath); err != nil {
			return nil, p.processingError(ctx, err, "media conversion failed")
		}
		// Only the derived file feeds the engine; the original is not kept
		// as a fallback.
		_ = os.Remove(stagedPath)
		audioPath = wavPath
	}

	var durationSeconds *float64
	if seconds, ok := p.prober.Duration(ctx, audioPath); ok {
		durationSeconds = &seconds
	}

	started := time.Now()
	text, err := p.engine.Transcribe(ctx, audioPath)
	if err != nil {
		return nil, p.processingError(ctx, err, "transcription failed")
	}
	processingSeconds := time.Since(started).Seconds()

	job = &entity.Transcription{
		OwnerId:           ownerID,
		StoredName:        storedName,
		OriginalName:      sanitizeFilename(originalName),
		MediaKind:         string(kind),
		MediaFormat:       strings.TrimPrefix(ext, "."),
		SizeBytes:         sizeBytes,
		DurationSeconds:   durationSeconds,
		TranscriptionText: strings.TrimSpace(text),
		Language:          p.opts.Language,
		ProcessingSeconds: processingSeconds,
	}
	saved, err := p.saver.Save(ctx, job)
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// stage copies the upload into the job workspace and reports its size as
// observed on disk. Client-declared sizes are untrustworthy.
func (p *Pipeline) stage(upload UploadSource, stagedPath string) (int64, error) {
	src, err := upload.Open()
	if err != nil {
		return 0, gerror.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	dst, err := os.Create(stagedPath)
	if err != nil {
		return 0, gerror.Wrap(err, "failed to stage uploaded file")
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return 0, gerror.Wrap(err, "failed to stage uploaded file")
	}
	if err := dst.Close(); err != nil {
		return 0, gerror.Wrap(err, "failed to stage uploaded file")
	}

	info, err := os.Stat(stagedPath)
	if err != nil {
		return 0, gerror.Wrap(err, "failed to stat staged file")
	}
	if info.Size() > consts.MaxUploadSize {
		return 0, gerror.NewCodef(codes.CodeUnsupportedMedia,
			"file exceeds the maximum upload size of %d bytes", consts.MaxUploadSize)
	}
	return info.Size(), nil
}

func (p *Pipeline) verifyContent(stagedPath string) error {
	mtype, err := mimetype.DetectFile(stagedPath)
	if err != nil {
		return gerror.Wrap(err, "failed to inspect staged file")
	}
	if _, ok := consts.MediaKindByExt[mtype.Extension()]; !ok {
		return gerror.NewCodef(codes.CodeUnsupportedMedia,
			"file content does not look like supported media (detected %s)", mtype.String())
	}
	return nil
}

// processingError downgrades tool failures to a generic message for the
// caller; diagnostics stay in the log. Deadline overruns surface as timeouts.
func (p *Pipeline) processingError(ctx context.Context, err error, msg string) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return gerror.WrapCode(codes.CodeTimeout, err, "processing exceeded the time limit")
	}
	g.Log().Errorf(ctx, "%s: %v", msg, err)
	return gerror.WrapCode(codes.CodeProcessingFailed, err, msg)
}

// sanitizeFilename keeps the user-supplied name safe for storage: path
// separators and shell-hostile characters never reach the database.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	cleaned := strings.Trim(b.String(), "._")
	if cleaned == "" {
		return "upload"
	}
	return cleaned
}
