package worker

import (
	"context"
	"log/slog"
	"time"

	"opensession-curator/internal/pipeline"
	"opensession-curator/internal/storage"
)

// Runner executes a generation run on an interval. The run ledger keys
// on (Name, UTC day): once a day's run completed, later ticks and
// process restarts within the same day are no-ops.
type Runner struct {
	Name     string // run name, e.g. "news" or "ideas"
	Run      *pipeline.Run
	Ledger   *storage.RunLedger
	Interval time.Duration
}

func (w *Runner) Start(ctx context.Context) error {
	if w.Interval <= 0 {
		w.Interval = 6 * time.Hour
	}
	// run immediately then on interval
	w.runOnce(ctx)

	t := time.NewTicker(w.Interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			w.runOnce(ctx)
		}
	}
}

func (w *Runner) runOnce(ctx context.Context) {
	period := time.Now().UTC().Format("2006-01-02")
	if w.Ledger != nil {
		published, err := w.Ledger.IsPublished(ctx, w.Name, period)
		if err != nil {
			slog.Error("runner: ledger check failed", "run", w.Name, "err", err)
			return
		}
		if published {
			return
		}
	}
	if err := w.Run.Execute(ctx); err != nil {
		slog.Error("runner: run failed", "run", w.Name, "period", period, "err", err)
		return
	}
	if w.Ledger != nil {
		if err := w.Ledger.MarkPublished(ctx, w.Name, period); err != nil {
			slog.Error("runner: ledger mark failed", "run", w.Name, "err", err)
			return
		}
	}
	slog.Info("runner: run completed", "run", w.Name, "period", period)
}
