package transcription

import (
	transcriptionApi "knscribe-service/api/transcription"
	"knscribe-service/internal/service/store"
	transcriptionSvc "knscribe-service/internal/service/transcription"
)

// ControllerV1 implements the transcription API.
type ControllerV1 struct {
	pipeline *transcriptionSvc.Pipeline
	store    *store.Store
}

func NewV1(pipeline *transcriptionSvc.Pipeline, st *store.Store) transcriptionApi.ITranscriptionV1 {
	return &ControllerV1{pipeline: pipeline, store: st}
}
