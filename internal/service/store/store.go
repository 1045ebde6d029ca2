package store

import (
	"context"

	"github.com/gogf/gf/v2/errors/gcode"
	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/gogf/gf/v2/os/gtime"

	"knscribe-service/internal/codes"
	"knscribe-service/internal/dao"
	"knscribe-service/internal/model/do"
	"knscribe-service/internal/model/entity"
)

// Store is the durable record of transcription jobs, keyed by owning user.
type Store struct{}

func New() *Store {
	return &Store{}
}

// Save assigns identity and timestamps and appends the job to storage.
func (s *Store) Save(ctx context.Context, job *entity.Transcription) (*entity.Transcription, error) {
	now := gtime.Now()
	job.CreatedAt = now
	job.UpdatedAt = now

	id, err := dao.Transcription.Ctx(ctx).Data(do.Transcription{
		OwnerId:           job.OwnerId,
		StoredName:        job.StoredName,
		OriginalName:      job.OriginalName,
		MediaKind:         job.MediaKind,
		MediaFormat:       job.MediaFormat,
		SizeBytes:         job.SizeBytes,
		DurationSeconds:   job.DurationSeconds,
		TranscriptionText: job.TranscriptionText,
		Language:          job.Language,
		ProcessingSeconds: job.ProcessingSeconds,
		UpdatedAt:         job.UpdatedAt,
		CreatedAt:         job.CreatedAt,
	}).InsertAndGetId()
	if err != nil {
		return nil, gerror.WrapCode(gcode.CodeDbOperationError, err, "failed to persist transcription")
	}
	job.Id = id
	return job, nil
}

// ListForOwner returns the owner's jobs in reverse-chronological order.
func (s *Store) ListForOwner(ctx context.Context, ownerID int64) ([]entity.Transcription, error) {
	var jobs []entity.Transcription
	cols := dao.Transcription.Columns()
	if err := dao.Transcription.Ctx(ctx).
		Where(cols.OwnerId+" = ?", ownerID).
		OrderDesc(cols.CreatedAt).
		OrderDesc(cols.Id).
		Scan(&jobs); err != nil {
		return nil, gerror.WrapCode(gcode.CodeDbOperationError, err, "failed to query transcriptions")
	}
	return jobs, nil
}

// DeleteForOwner removes one job scoped to its owner. Ownership is part of
// the query predicate: a job owned by someone else reports not-found rather
// than forbidden, so other users' jobs are not revealed to exist.
func (s *Store) DeleteForOwner(ctx context.Context, ownerID, jobID int64) error {
	cols := dao.Transcription.Columns()
	result, err := dao.Transcription.Ctx(ctx).
		Where(cols.OwnerId+" = ?", ownerID).
		Where(cols.Id+" = ?", jobID).
		Delete()
	if err != nil {
		return gerror.WrapCode(gcode.CodeDbOperationError, err, "failed to delete transcription")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return gerror.WrapCode(gcode.CodeDbOperationError, err, "failed to check deletion result")
	}
	if affected == 0 {
		return gerror.NewCode(codes.CodeNotFound, "transcription not found")
	}
	return nil
}
