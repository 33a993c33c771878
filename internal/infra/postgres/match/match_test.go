package infra_postgres_match

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/humanbelnik/wordchain/internal/model"
	usecase_match "github.com/humanbelnik/wordchain/internal/usecase/match"
	"github.com/jmoiron/sqlx"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MatchInfraUnitSuite struct {
	suite.Suite
}

type resources struct {
	mock   sqlmock.Sqlmock
	driver *Driver
	ctx    context.Context
}

func initResources(t provider.T) *resources {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return &resources{
		mock:   mock,
		driver: New(sqlx.NewDb(db, "postgres")),
		ctx:    context.Background(),
	}
}

type SummaryBuilder struct {
	s model.Summary
}

func NewSummaryBuilder() *SummaryBuilder {
	started := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ended := started.Add(3 * time.Minute)
	return &SummaryBuilder{
		s: model.Summary{
			MatchID:    uuid.New(),
			ChannelID:  "general",
			Winner:     model.Player{ID: "alice", Name: "Alice"},
			TotalWords: 3,
			StartedAt:  started,
			EndedAt:    ended,
			Ranking: []model.PlayerStats{
				{Player: model.Player{ID: "alice", Name: "Alice"}, Start: started, End: &ended, Words: []string{"casa", "sapo"}},
				{Player: model.Player{ID: "bob", Name: "Bob"}, Start: started, End: &ended, Words: []string{"saco"}},
			},
			Eliminations: []model.Elimination{
				{Player: "bob", Reason: model.ReasonTimeout, At: ended},
			},
		},
	}
}

func (b *SummaryBuilder) WithoutEliminations() *SummaryBuilder {
	b.s.Eliminations = nil
	return b
}

func (b *SummaryBuilder) Build() model.Summary {
	return b.s
}

func matchColumns() []string {
	return []string{"id", "channel_id", "winner_id", "winner_name", "total_words", "started_at", "ended_at"}
}

func playerColumns() []string {
	return []string{"match_id", "position", "player_id", "player_name", "bot", "started_at", "ended_at", "words"}
}

func eliminationColumns() []string {
	return []string{"match_id", "position", "player_id", "reason", "word", "at"}
}

func (s *MatchInfraUnitSuite) TestMigrate(t provider.T) {
	t.Parallel()
	r := initResources(t)

	r.mock.ExpectExec("CREATE TABLE IF NOT EXISTS matches").WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, r.driver.Migrate(r.ctx))
	assert.NoError(t, r.mock.ExpectationsWereMet())
}

func (s *MatchInfraUnitSuite) TestSave(t provider.T) {
	t.Run("writes match players and eliminations in one transaction", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		summary := NewSummaryBuilder().Build()

		r.mock.ExpectBegin()
		r.mock.ExpectExec("INSERT INTO matches").WillReturnResult(sqlmock.NewResult(1, 1))
		r.mock.ExpectExec("INSERT INTO match_players").WillReturnResult(sqlmock.NewResult(1, 1))
		r.mock.ExpectExec("INSERT INTO match_players").WillReturnResult(sqlmock.NewResult(1, 1))
		r.mock.ExpectExec("INSERT INTO match_eliminations").WillReturnResult(sqlmock.NewResult(1, 1))
		r.mock.ExpectCommit()

		assert.NoError(t, r.driver.Save(r.ctx, summary))
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("rolls back on failure", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		summary := NewSummaryBuilder().WithoutEliminations().Build()
		dbErr := errors.New("connection reset")

		r.mock.ExpectBegin()
		r.mock.ExpectExec("INSERT INTO matches").WillReturnResult(sqlmock.NewResult(1, 1))
		r.mock.ExpectExec("INSERT INTO match_players").WillReturnError(dbErr)
		r.mock.ExpectRollback()

		err := r.driver.Save(r.ctx, summary)
		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("begin fails", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		r.mock.ExpectBegin().WillReturnError(sql.ErrConnDone)

		err := r.driver.Save(r.ctx, NewSummaryBuilder().Build())
		assert.ErrorIs(t, err, sql.ErrConnDone)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})
}

func (s *MatchInfraUnitSuite) TestByID(t provider.T) {
	t.Run("not found", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		id := uuid.New()

		r.mock.ExpectQuery("FROM matches").
			WithArgs(id).
			WillReturnError(sql.ErrNoRows)

		_, err := r.driver.ByID(r.ctx, id)
		assert.ErrorIs(t, err, usecase_match.ErrResourceNotFound)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("assembles summary", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		want := NewSummaryBuilder().Build()
		id := want.MatchID

		r.mock.ExpectQuery("FROM matches").
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(matchColumns()).
				AddRow(id.String(), "general", "alice", "Alice", 3, want.StartedAt, want.EndedAt))
		r.mock.ExpectQuery("FROM match_players").
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(playerColumns()).
				AddRow(id.String(), 0, "alice", "Alice", false, want.StartedAt, want.EndedAt, "{casa,sapo}").
				AddRow(id.String(), 1, "bob", "Bob", false, want.StartedAt, want.EndedAt, "{saco}"))
		r.mock.ExpectQuery("FROM match_eliminations").
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(eliminationColumns()).
				AddRow(id.String(), 0, "bob", model.ReasonTimeout, "", want.EndedAt))

		got, err := r.driver.ByID(r.ctx, id)
		require.NoError(t, err)
		assert.Equal(t, want.MatchID, got.MatchID)
		assert.Equal(t, want.Winner, got.Winner)
		assert.Equal(t, want.TotalWords, got.TotalWords)
		require.Len(t, got.Ranking, 2)
		assert.Equal(t, []string{"casa", "sapo"}, got.Ranking[0].Words)
		assert.Equal(t, 3*time.Minute, got.Ranking[1].Survival())
		assert.Equal(t, want.Eliminations, got.Eliminations)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("unfinished player keeps a nil end", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		want := NewSummaryBuilder().WithoutEliminations().Build()
		id := want.MatchID

		r.mock.ExpectQuery("FROM matches").
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(matchColumns()).
				AddRow(id.String(), "general", "alice", "Alice", 0, want.StartedAt, want.EndedAt))
		r.mock.ExpectQuery("FROM match_players").
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(playerColumns()).
				AddRow(id.String(), 0, "alice", "Alice", false, want.StartedAt, nil, "{}"))
		r.mock.ExpectQuery("FROM match_eliminations").
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(eliminationColumns()))

		got, err := r.driver.ByID(r.ctx, id)
		require.NoError(t, err)
		require.Len(t, got.Ranking, 1)
		assert.Nil(t, got.Ranking[0].End)
		assert.Empty(t, got.Ranking[0].Words)
		assert.Empty(t, got.Eliminations)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})
}

func (s *MatchInfraUnitSuite) TestByPlayer(t provider.T) {
	t.Run("returns matches with details", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		want := NewSummaryBuilder().WithoutEliminations().Build()
		id := want.MatchID

		r.mock.ExpectQuery("JOIN match_players").
			WithArgs("bob", 5).
			WillReturnRows(sqlmock.NewRows(matchColumns()).
				AddRow(id.String(), "general", "alice", "Alice", 3, want.StartedAt, want.EndedAt))
		r.mock.ExpectQuery("FROM match_players").
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(playerColumns()).
				AddRow(id.String(), 0, "alice", "Alice", false, want.StartedAt, want.EndedAt, "{casa,sapo}").
				AddRow(id.String(), 1, "bob", "Bob", false, want.StartedAt, want.EndedAt, "{saco}"))
		r.mock.ExpectQuery("FROM match_eliminations").
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(eliminationColumns()))

		got, err := r.driver.ByPlayer(r.ctx, "bob", 5)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, id, got[0].MatchID)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("query fails", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		dbErr := errors.New("timeout")

		r.mock.ExpectQuery("JOIN match_players").
			WithArgs("bob", 5).
			WillReturnError(dbErr)

		_, err := r.driver.ByPlayer(r.ctx, "bob", 5)
		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})
}

func TestMatchInfraUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(MatchInfraUnitSuite))
}
