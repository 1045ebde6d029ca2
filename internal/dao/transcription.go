// =================================================================================
// This is auto-generated by GoFrame CLI tool only once. Fill this file as you wish.
// =================================================================================

package dao

import (
	"knscribe-service/internal/dao/internal"
)

// transcriptionDao is the data access object for the table transcription.
// You can define custom methods on it to extend its functionality as needed.
type transcriptionDao struct {
	*internal.TranscriptionDao
}

var (
	// Transcription is a globally accessible object for table transcription operations.
	Transcription = transcriptionDao{internal.NewTranscriptionDao()}
)

// Add your custom methods and functionality below.
