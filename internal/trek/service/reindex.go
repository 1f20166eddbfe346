package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/BishowDevkota/trekking-company/internal/trek/search"
	"github.com/BishowDevkota/trekking-company/internal/trek/store"
)

// ReindexService periodically pushes every trek into the search index so
// writes that failed to index, or an index rebuilt from scratch, catch up.
type ReindexService struct {
	Store    store.Store
	Index    search.Index
	Logger   *slog.Logger
	Interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	doneCh chan struct{}
}

// NewReindexService creates the worker. If interval is 0 or negative it
// defaults to 15 minutes.
func NewReindexService(store store.Store, index search.Index, logger *slog.Logger, interval time.Duration) *ReindexService {
	if interval <= 0 {
		interval = 15 * time.Minute
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &ReindexService{
		Store:    store,
		Index:    index,
		Logger:   logger,
		Interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		doneCh:   make(chan struct{}),
	}
}

// Start runs the worker in the background. Call Stop to shut it down.
func (s *ReindexService) Start() {
	go s.run()
	s.Logger.Info("reindex service started", "interval", s.Interval)
}

// Stop cancels any in-flight run and waits for the worker to exit.
func (s *ReindexService) Stop() {
	s.cancel()
	<-s.doneCh
	s.Logger.Info("reindex service stopped")
}

func (s *ReindexService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run immediately on startup
	s.RunOnce(s.ctx)

	for {
		select {
		case <-ticker.C:
			s.RunOnce(s.ctx)
		case <-s.ctx.Done():
			return
		}
	}
}

// RunOnce indexes every trek and returns how many succeeded. A failing trek
// is logged and skipped.
func (s *ReindexService) RunOnce(ctx context.Context) int {
	treks, err := s.Store.Treks().ListTreks(ctx)
	if err != nil {
		s.Logger.Error("failed to list treks for reindex", "error", err)
		return 0
	}

	var indexed int
	for _, t := range treks {
		if ctx.Err() != nil {
			s.Logger.Info("reindex interrupted", "indexed", indexed, "total", len(treks))
			return indexed
		}
		if err := s.Index.IndexTrek(ctx, search.DocumentFromTrek(t)); err != nil {
			s.Logger.Error("failed to index trek", "trek_id", t.ID, "error", err)
			continue
		}
		indexed++
	}

	s.Logger.Info("reindex completed", "indexed", indexed, "total", len(treks))
	return indexed
}
