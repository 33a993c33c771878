package infra_memory_history

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/humanbelnik/wordchain/internal/model"
	usecase_match "github.com/humanbelnik/wordchain/internal/usecase/match"
)

// Storage keeps finished matches in memory when postgres is disabled.
type Storage struct {
	mu        sync.RWMutex
	summaries []model.Summary
}

func New() *Storage {
	return &Storage{}
}

func (s *Storage) Save(ctx context.Context, summary model.Summary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.summaries = append(s.summaries, summary)
	return nil
}

func (s *Storage) ByID(ctx context.Context, id uuid.UUID) (model.Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, summary := range s.summaries {
		if summary.MatchID == id {
			return summary, nil
		}
	}
	return model.Summary{}, usecase_match.ErrResourceNotFound
}

// ByPlayer returns the newest matches the player took part in first.
func (s *Storage) ByPlayer(ctx context.Context, player model.PlayerID, limit int) ([]model.Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Summary
	for _, summary := range slices.Backward(s.summaries) {
		if len(out) == limit {
			break
		}
		if slices.ContainsFunc(summary.Ranking, func(ps model.PlayerStats) bool {
			return ps.Player.ID == player
		}) {
			out = append(out, summary)
		}
	}
	return out, nil
}
