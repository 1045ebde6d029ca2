package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/gogf/gf/contrib/drivers/sqlite/v2"
	"github.com/gogf/gf/v2/database/gdb"
	"github.com/gogf/gf/v2/errors/gerror"

	"knscribe-service/internal/codes"
	"knscribe-service/internal/model/entity"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "store-test-*")
	if err != nil {
		panic(err)
	}
	gdb.SetConfig(gdb.Config{
		"default": gdb.ConfigGroup{
			gdb.ConfigNode{
				Type: "sqlite",
				Link: "sqlite::@file(" + filepath.Join(dir, "test.db") + ")",
			},
		},
	})
	if err := Init(context.Background()); err != nil {
		panic(err)
	}
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func newJob(ownerID int64, name string) *entity.Transcription {
	duration := 42.5
	return &entity.Transcription{
		OwnerId:           ownerID,
		StoredName:        "stored-" + name,
		OriginalName:      name,
		MediaKind:         "audio",
		MediaFormat:       "wav",
		SizeBytes:         1024,
		DurationSeconds:   &duration,
		TranscriptionText: "conteudo de " + name,
		Language:          "pt",
		ProcessingSeconds: 1.5,
	}
}

func TestSaveAssignsIdentity(t *testing.T) {
	ctx := context.Background()
	s := New()

	saved, err := s.Save(ctx, newJob(100, "a.wav"))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if saved.Id <= 0 {
		t.Fatalf("id = %d, want positive", saved.Id)
	}
	if saved.CreatedAt == nil || saved.UpdatedAt == nil {
		t.Fatal("timestamps not assigned")
	}
}

func TestListForOwnerScopedAndOrdered(t *testing.T) {
	ctx := context.Background()
	s := New()

	var ids []int64
	for _, name := range []string{"um.wav", "dois.wav", "tres.wav"} {
		saved, err := s.Save(ctx, newJob(200, name))
		if err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		ids = append(ids, saved.Id)
	}
	if _, err := s.Save(ctx, newJob(201, "alheio.wav")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	jobs, err := s.ListForOwner(ctx, 200)
	if err != nil {
		t.Fatalf("ListForOwner() error = %v", err)
	}
	if len(jobs) != 3 {
		t.Fatalf("len(jobs) = %d, want 3", len(jobs))
	}
	// Newest first; insertion ties on created_at break by id.
	for i, want := range []int64{ids[2], ids[1], ids[0]} {
		if jobs[i].Id != want {
			t.Fatalf("jobs[%d].Id = %d, want %d", i, jobs[i].Id, want)
		}
	}
	for _, job := range jobs {
		if job.OwnerId != 200 {
			t.Fatalf("job %d owned by %d, want 200", job.Id, job.OwnerId)
		}
	}
	if jobs[0].DurationSeconds == nil || *jobs[0].DurationSeconds != 42.5 {
		t.Fatalf("duration round-trip = %v, want 42.5", jobs[0].DurationSeconds)
	}
	if jobs[0].TranscriptionText != "conteudo de tres.wav" {
		t.Fatalf("text round-trip = %q", jobs[0].TranscriptionText)
	}
}

func TestListForOwnerEmpty(t *testing.T) {
	jobs, err := New().ListForOwner(context.Background(), 999)
	if err != nil {
		t.Fatalf("ListForOwner() error = %v", err)
	}
	if len(jobs) != 0 {
		t.Fatalf("len(jobs) = %d, want 0", len(jobs))
	}
}

func TestDeleteForOwner(t *testing.T) {
	ctx := context.Background()
	s := New()

	saved, err := s.Save(ctx, newJob(300, "apagar.wav"))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// Someone else's scope reports not-found, not forbidden.
	if err := s.DeleteForOwner(ctx, 301, saved.Id); gerror.Code(err) != codes.CodeNotFound {
		t.Fatalf("cross-owner delete error code = %v, want not found", gerror.Code(err))
	}
	jobs, err := s.ListForOwner(ctx, 300)
	if err != nil || len(jobs) != 1 {
		t.Fatalf("job should survive cross-owner delete, jobs=%d err=%v", len(jobs), err)
	}

	if err := s.DeleteForOwner(ctx, 300, saved.Id); err != nil {
		t.Fatalf("DeleteForOwner() error = %v", err)
	}
	jobs, err = s.ListForOwner(ctx, 300)
	if err != nil || len(jobs) != 0 {
		t.Fatalf("job should be gone, jobs=%d err=%v", len(jobs), err)
	}

	if err := s.DeleteForOwner(ctx, 300, saved.Id); gerror.Code(err) != codes.CodeNotFound {
		t.Fatalf("repeat delete error code = %v, want not found", gerror.Code(err))
	}
}
