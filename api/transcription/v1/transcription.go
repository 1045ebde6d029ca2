package v1

import (
	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/os/gtime"
)

// Transcribe runs the upload-to-transcript pipeline for one media file.
// The file is sent as multipart/form-data in the field "file" ("audio" is
// accepted for older clients).
type TranscribeReq struct {
	g.Meta `path:"/transcribe" method:"post" summary:"Upload one media file and transcribe it"`
}
type TranscribeRes struct {
	Id             int64  `json:"id" dc:"persisted job id"`
	Transcription  string `json:"transcription" dc:"recognized text"`
	Duration       string `json:"duration" dc:"media duration as MM:SS, or N/A"`
	ProcessingTime int    `json:"processingTime" dc:"engine wall-clock time in seconds, rounded"`
	FileType       string `json:"fileType" dc:"audio or video"`
	FileFormat     string `json:"fileFormat" dc:"lowercase extension, e.g. mp3"`
}

// History lists the caller's jobs, newest first.
type HistoryReq struct {
	g.Meta `path:"/history" method:"get" summary:"List the caller's transcriptions"`
}
type HistoryRes struct {
	History []HistoryItem `json:"history" dc:"jobs in reverse-chronological order"`
}

type HistoryItem struct {
	Id             int64       `json:"id" dc:"job id"`
	Filename       string      `json:"filename" dc:"original (sanitized) filename"`
	FileType       string      `json:"file_type" dc:"audio or video"`
	FileFormat     string      `json:"file_format" dc:"lowercase extension"`
	FileSize       int64       `json:"file_size" dc:"upload size in bytes"`
	Duration       string      `json:"duration" dc:"MM:SS, or N/A when probing failed"`
	Transcription  string      `json:"transcription" dc:"recognized text"`
	Language       string      `json:"language" dc:"language hint used"`
	ProcessingTime float64     `json:"processing_time" dc:"engine wall-clock seconds"`
	CreatedAt      *gtime.Time `json:"created_at" dc:"creation time"`
	UpdatedAt      *gtime.Time `json:"updated_at" dc:"last mutation time"`
}

// DeleteHistory removes one job owned by the caller.
type DeleteHistoryReq struct {
	g.Meta `path:"/history/{id}" method:"delete" summary:"Delete one transcription"`
	Id     int64 `json:"id" v:"required|min:1" dc:"job id"`
}
type DeleteHistoryRes struct{}
