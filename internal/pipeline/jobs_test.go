package pipeline

import (
	"testing"
	"time"
)

func TestJob_StateTransitions(t *testing.T) {
	job := &Job{
		ID:        "test-1",
		Status:    StatusQueued,
		Phase:     "queued",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	transitions := []struct {
		status JobStatus
		phase  string
	}{
		{StatusExtracting, "extracting text"},
		{StatusDetecting, "detecting headings"},
		{StatusBuilding, "building tree"},
		{StatusWriting, "writing bookmarks"},
		{StatusCompleted, "done"},
	}

	for _, tr := range transitions {
		before := job.UpdatedAt
		// Small sleep to ensure time difference is detectable.
		time.Sleep(time.Millisecond)
		job.SetStatus(tr.status, tr.phase)

		if job.Status != tr.status {
			t.Errorf("expected status %q, got %q", tr.status, job.Status)
		}
		if job.Phase != tr.phase {
			t.Errorf("expected phase %q, got %q", tr.phase, job.Phase)
		}
		if !job.UpdatedAt.After(before) {
			t.Errorf("expected UpdatedAt to advance after SetStatus(%q)", tr.status)
		}
	}
}

func TestStatusForPhase(t *testing.T) {
	tests := []struct {
		phase Phase
		want  JobStatus
	}{
		{PhaseExtract, StatusExtracting},
		{PhaseDetect, StatusDetecting},
		{PhaseBuild, StatusBuilding},
		{PhaseWrite, StatusWriting},
		{Phase("unknown"), StatusQueued},
	}
	for _, tc := range tests {
		if got := statusForPhase(tc.phase); got != tc.want {
			t.Errorf("phase %q: expected %q, got %q", tc.phase, tc.want, got)
		}
	}
}

func TestJob_SetResultReleasesInput(t *testing.T) {
	job := &Job{ID: "test-2"}
	job.SetFileData([]byte("%PDF"))
	job.SetResult(&Result{Pages: 3, Headings: 2, Outlined: []byte("out")})

	if job.FileData() != nil {
		t.Error("expected input bytes to be released after SetResult")
	}
	res := job.Result()
	if res == nil || res.Pages != 3 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if job.Snapshot().Progress.Headings != 2 {
		t.Errorf("expected progress to reflect result")
	}
}

func TestJob_SnapshotErrorsNeverNil(t *testing.T) {
	job := &Job{ID: "test-3"}
	if errs := job.Snapshot().Progress.Errors; errs == nil {
		t.Error("expected non-nil errors slice in snapshot")
	}
	job.AddError("boom")
	if errs := job.Snapshot().Progress.Errors; len(errs) != 1 || errs[0] != "boom" {
		t.Errorf("unexpected errors: %v", errs)
	}
}

func TestJobStore_PutGetCleanup(t *testing.T) {
	store := NewJobStore(10 * time.Millisecond)
	job := &Job{ID: "test-4", UpdatedAt: time.Now()}
	store.Put(job)

	if store.Get("test-4") != job {
		t.Fatal("expected to get stored job back")
	}
	if store.Get("missing") != nil {
		t.Error("expected nil for unknown job")
	}

	time.Sleep(25 * time.Millisecond)
	store.Cleanup()
	if store.Get("test-4") != nil {
		t.Error("expected expired job to be evicted")
	}
}
