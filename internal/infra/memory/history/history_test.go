package infra_memory_history

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/wordchain/internal/model"
	usecase_match "github.com/humanbelnik/wordchain/internal/usecase/match"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MemoryHistoryUnitSuite struct {
	suite.Suite
}

func summaryOf(players ...model.PlayerID) model.Summary {
	ranking := make([]model.PlayerStats, 0, len(players))
	for _, p := range players {
		ranking = append(ranking, model.PlayerStats{Player: model.Player{ID: p, Name: string(p)}})
	}
	return model.Summary{
		MatchID:   uuid.New(),
		ChannelID: "general",
		Winner:    ranking[0].Player,
		StartedAt: time.Now(),
		EndedAt:   time.Now(),
		Ranking:   ranking,
	}
}

func (s *MemoryHistoryUnitSuite) TestByID(t provider.T) {
	t.Parallel()
	ctx := context.Background()
	storage := New()

	saved := summaryOf("alice", "bob")
	require.NoError(t, storage.Save(ctx, saved))

	got, err := storage.ByID(ctx, saved.MatchID)
	assert.NoError(t, err)
	assert.Equal(t, saved.MatchID, got.MatchID)

	_, err = storage.ByID(ctx, uuid.New())
	assert.ErrorIs(t, err, usecase_match.ErrResourceNotFound)
}

func (s *MemoryHistoryUnitSuite) TestByPlayer(t provider.T) {
	t.Parallel()
	ctx := context.Background()
	storage := New()

	first := summaryOf("alice", "bob")
	second := summaryOf("carol", "dave")
	third := summaryOf("bob", "carol")
	for _, summary := range []model.Summary{first, second, third} {
		require.NoError(t, storage.Save(ctx, summary))
	}

	got, err := storage.ByPlayer(ctx, "bob", 10)
	assert.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, third.MatchID, got[0].MatchID)
	assert.Equal(t, first.MatchID, got[1].MatchID)

	got, err = storage.ByPlayer(ctx, "bob", 1)
	assert.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, third.MatchID, got[0].MatchID)

	got, err = storage.ByPlayer(ctx, "erin", 10)
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryHistoryUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(MemoryHistoryUnitSuite))
}
