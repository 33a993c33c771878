package service_stats

import (
	"errors"
	"slices"
	"time"

	"github.com/humanbelnik/wordchain/internal/model"
)

var ErrUnknownPlayer = errors.New("unknown player")

// Tracker is owned by a single match goroutine and is not safe for
// concurrent use.
type Tracker struct {
	order []model.PlayerID
	stats map[model.PlayerID]*model.PlayerStats
}

// New starts every player's clock at now. Turn order is taken from players.
func New(players []model.Player, now time.Time) *Tracker {
	t := &Tracker{
		order: make([]model.PlayerID, 0, len(players)),
		stats: make(map[model.PlayerID]*model.PlayerStats, len(players)),
	}
	for _, p := range players {
		t.order = append(t.order, p.ID)
		t.stats[p.ID] = &model.PlayerStats{
			Player: p,
			Start:  now,
			Words:  []string{},
		}
	}
	return t
}

// RecordElimination sets End once. Later calls keep the first timestamp.
func (t *Tracker) RecordElimination(id model.PlayerID, at time.Time) error {
	s, ok := t.stats[id]
	if !ok {
		return ErrUnknownPlayer
	}
	if s.End == nil {
		s.End = &at
	}
	return nil
}

// Finish marks the survivor. Same semantics as RecordElimination.
func (t *Tracker) Finish(id model.PlayerID, at time.Time) error {
	return t.RecordElimination(id, at)
}

func (t *Tracker) RecordAcceptedWord(id model.PlayerID, word string) error {
	s, ok := t.stats[id]
	if !ok {
		return ErrUnknownPlayer
	}
	s.Words = append(s.Words, word)
	return nil
}

func (t *Tracker) Get(id model.PlayerID) (model.PlayerStats, bool) {
	s, ok := t.stats[id]
	if !ok {
		return model.PlayerStats{}, false
	}
	return snapshot(s), true
}

// Ranking orders by survival desc, word count desc, then turn order.
func (t *Tracker) Ranking() []model.PlayerStats {
	ranking := make([]model.PlayerStats, 0, len(t.order))
	for _, id := range t.order {
		ranking = append(ranking, snapshot(t.stats[id]))
	}

	slices.SortStableFunc(ranking, func(a, b model.PlayerStats) int {
		if sa, sb := a.Survival(), b.Survival(); sa != sb {
			if sa > sb {
				return -1
			}
			return 1
		}
		return b.ValidWords() - a.ValidWords()
	})
	return ranking
}

func snapshot(s *model.PlayerStats) model.PlayerStats {
	cp := *s
	cp.Words = slices.Clone(s.Words)
	if s.End != nil {
		end := *s.End
		cp.End = &end
	}
	return cp
}
