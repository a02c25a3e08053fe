package service

import (
	"context"
	"log/slog"

	"github.com/foreskyapp/foresky-cli/internal/domain"
)

// StatsService fetches the server-computed aggregates. There is no
// client-side bookkeeping to drift out of sync: every read goes to the
// server, and consumers re-fetch after any mutation that could change
// the counts.
type StatsService struct {
	gw     Gateway
	logger *slog.Logger
}

// NewStatsService creates a new stats service.
func NewStatsService(gw Gateway, logger *slog.Logger) *StatsService {
	return &StatsService{gw: gw, logger: logger}
}

// Get returns the current aggregate counts.
func (s *StatsService) Get(ctx context.Context) (*domain.Stats, error) {
	stats, err := s.gw.Stats(ctx)
	if err != nil {
		s.logger.Warn("stats fetch failed", "error", err)
		return nil, err
	}
	return stats, nil
}
