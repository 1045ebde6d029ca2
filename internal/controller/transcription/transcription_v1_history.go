package transcription

import (
	"context"

	"github.com/gogf/gf/v2/frame/g"

	v1 "knscribe-service/api/transcription/v1"
	"knscribe-service/internal/consts"
	transcriptionSvc "knscribe-service/internal/service/transcription"
)

func (c *ControllerV1) History(ctx context.Context, req *v1.HistoryReq) (res *v1.HistoryRes, err error) {
	ownerID := g.RequestFromCtx(ctx).GetCtxVar(consts.CtxUserID).Int64()
	jobs, err := c.store.ListForOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	res = &v1.HistoryRes{History: make([]v1.HistoryItem, 0, len(jobs))}
	for _, job := range jobs {
		res.History = append(res.History, v1.HistoryItem{
			Id:             job.Id,
			Filename:       job.OriginalName,
			FileType:       job.MediaKind,
			FileFormat:     job.MediaFormat,
			FileSize:       job.SizeBytes,
			Duration:       transcriptionSvc.FormatDuration(job.DurationSeconds),
			Transcription:  job.TranscriptionText,
			Language:       job.Language,
			ProcessingTime: job.ProcessingSeconds,
			CreatedAt:      job.CreatedAt,
			UpdatedAt:      job.UpdatedAt,
		})
	}
	return res, nil
}
