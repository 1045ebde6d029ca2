package transcription

import (
	"context"
	"math"
	"mime/multipart"

	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/net/ghttp"

	v1 "knscribe-service/api/transcription/v1"
	"knscribe-service/internal/consts"
	transcriptionSvc "knscribe-service/internal/service/transcription"
)

func (c *ControllerV1) Transcribe(ctx context.Context, req *v1.TranscribeReq) (res *v1.TranscribeRes, err error) {
	r := g.RequestFromCtx(ctx)
	file := r.GetUploadFile("file")
	if file == nil {
		// Older clients upload under "audio".
		file = r.GetUploadFile("audio")
	}

	ownerID := r.GetCtxVar(consts.CtxUserID).Int64()
	var upload transcriptionSvc.UploadSource
	if file != nil {
		upload = &httpUploadSource{file: file}
	}

	job, err := c.pipeline.Run(ctx, upload, ownerID)
	if err != nil {
		return nil, err
	}

	return &v1.TranscribeRes{
		Id:             job.Id,
		Transcription:  job.TranscriptionText,
		Duration:       transcriptionSvc.FormatDuration(job.DurationSeconds),
		ProcessingTime: int(math.Round(job.ProcessingSeconds)),
		FileType:       job.MediaKind,
		FileFormat:     job.MediaFormat,
	}, nil
}

// httpUploadSource adapts a multipart upload to the pipeline's UploadSource.
type httpUploadSource struct {
	file *ghttp.UploadFile
}

func (h *httpUploadSource) Filename() string {
	return h.file.Filename
}

func (h *httpUploadSource) Open() (multipart.File, error) {
	return h.file.Open()
}
