// Package archive ships original uploads to TOS object storage in the
// background. It is optional: when disabled the pipeline runs without it and
// nothing is retained after a request finishes.
package archive

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/google/uuid"
	"github.com/volcengine/ve-tos-golang-sdk/v2/tos"
)

// Options configures the archiver.
type Options struct {
	SpoolDir  string // archiver-owned copies live here until uploaded
	Bucket    string
	Workers   int
	QueueSize int
}

// Item is one pending archive upload.
type Item struct {
	ObjectKey string
	SpoolPath string
	OwnerID   int64
	Size      int64
}

// Archiver copies staged originals into a spool directory and feeds worker
// goroutines that upload them. Spool files are archiver-owned, so no request
// temporary outlives its request.
type Archiver struct {
	opts   Options
	client *tos.ClientV2
	queue  chan Item
}

func New(opts Options, client *tos.ClientV2) (*Archiver, error) {
	if opts.Workers <= 0 {
		opts.Workers = 2
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = 8
	}
	if opts.SpoolDir == "" {
		return nil, gerror.New("archive spool directory is required")
	}
	if err := os.MkdirAll(opts.SpoolDir, 0o755); err != nil {
		return nil, gerror.Wrap(err, "failed to create archive spool directory")
	}
	return &Archiver{
		opts:   opts,
		client: client,
		queue:  make(chan Item, opts.QueueSize),
	}, nil
}

// Start launches the upload workers.
func (a *Archiver) Start(ctx context.Context) {
	for i := 0; i < a.opts.Workers; i++ {
		go a.worker(ctx)
	}
	g.Log().Infof(ctx, "started %d archive upload workers", a.opts.Workers)
}

// Enqueue copies srcPath into the spool and queues it for upload. Failures
// are logged and dropped; archiving never affects the request outcome.
func (a *Archiver) Enqueue(ctx context.Context, ownerID int64, objectKey, srcPath string) {
	spoolPath := filepath.Join(a.opts.SpoolDir, uuid.NewString())
	size, err := copyFile(srcPath, spoolPath)
	if err != nil {
		g.Log().Warningf(ctx, "archive spool copy failed for %s: %v", objectKey, err)
		return
	}
	item := Item{ObjectKey: objectKey, SpoolPath: spoolPath, OwnerID: ownerID, Size: size}
	select {
	case a.queue <- item:
	default:
		g.Log().Warningf(ctx, "archive queue full, dropping %s", objectKey)
		_ = os.Remove(spoolPath)
	}
}

func (a *Archiver) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case item := <-a.queue:
			if err := a.upload(ctx, item); err != nil {
				g.Log().Warningf(ctx, "archive upload failed, key=%s: %v", item.ObjectKey, err)
				continue
			}
			g.Log().Infof(ctx, "archive upload completed, key=%s, size=%d bytes", item.ObjectKey, item.Size)
		}
	}
}

func (a *Archiver) upload(ctx context.Context, item Item) error {
	file, err := os.Open(item.SpoolPath)
	if err != nil {
		return gerror.Wrap(err, "failed to open spooled file")
	}
	_, err = a.client.PutObjectV2(ctx, &tos.PutObjectV2Input{
		PutObjectBasicInput: tos.PutObjectBasicInput{
			Bucket: a.opts.Bucket,
			Key:    item.ObjectKey,
		},
		Content: file,
	})
	file.Close()
	if err != nil {
		if serverErr, ok := err.(*tos.TosServerError); ok {
			g.Log().Warningf(ctx, "TOS rejected upload, request_id=%s code=%s: %s",
				serverErr.RequestID, serverErr.Code, serverErr.Message)
		}
		return gerror.Wrap(err, "TOS upload failed")
	}
	_ = os.Remove(item.SpoolPath)
	return nil
}

func copyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		_ = os.Remove(dst)
		return 0, err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return 0, err
	}
	return n, nil
}
