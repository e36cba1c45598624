package pipeline

import (
	"context"
	"log/slog"
)

// Worker processes a single outline job at a time.
type Worker struct {
	outliner *Outliner
	log      *slog.Logger
}

func NewWorker(outliner *Outliner, log *slog.Logger) *Worker {
	return &Worker{
		outliner: outliner,
		log:      log,
	}
}

// Process runs the full outline pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	res, err := w.outliner.Process(ctx, job.FileData(), func(p Phase) {
		job.SetStatus(statusForPhase(p), string(p))
	})
	if err != nil {
		log.Error("outline failed", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "failed")
		return
	}

	job.SetResult(res)
	job.SetStatus(StatusCompleted, "done")
	log.Info("outline complete",
		"pages", res.Pages,
		"headings", res.Headings,
		"truncated", res.Truncated,
	)
}
