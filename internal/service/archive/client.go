package archive

import (
	"context"

	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/volcengine/ve-tos-golang-sdk/v2/tos"
)

// NewFromConfig builds an archiver from the archive.* configuration section.
// Returns (nil, nil) when archiving is disabled.
func NewFromConfig(ctx context.Context) (*Archiver, error) {
	if !g.Cfg().MustGet(ctx, "archive.enabled", false).Bool() {
		return nil, nil
	}

	g.Log().Info(ctx, "Volcengine TOS GO SDK Version:", tos.Version)
	credential := tos.NewStaticCredentials(
		g.Cfg().MustGet(ctx, "archive.tos.ak").String(),
		g.Cfg().MustGet(ctx, "archive.tos.sk").String(),
	)
	client, err := tos.NewClientV2(
		g.Cfg().MustGet(ctx, "archive.tos.endpoint").String(),
		tos.WithCredentials(credential),
		tos.WithRegion(g.Cfg().MustGet(ctx, "archive.tos.region").String()),
	)
	if err != nil {
		return nil, gerror.Wrap(err, "failed to initialize TOS client")
	}

	return New(Options{
		SpoolDir:  g.Cfg().MustGet(ctx, "archive.spoolDir", "./storage/archive").String(),
		Bucket:    g.Cfg().MustGet(ctx, "archive.tos.bucket").String(),
		Workers:   g.Cfg().MustGet(ctx, "archive.workers", 2).Int(),
		QueueSize: g.Cfg().MustGet(ctx, "archive.queueSize", 8).Int(),
	}, client)
}
