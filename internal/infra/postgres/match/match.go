package infra_postgres_match

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/humanbelnik/wordchain/internal/model"
	usecase_match "github.com/humanbelnik/wordchain/internal/usecase/match"
	"github.com/jmoiron/sqlx"
)

const schema = `
CREATE TABLE IF NOT EXISTS matches (
	id          UUID PRIMARY KEY,
	channel_id  TEXT NOT NULL,
	winner_id   TEXT NOT NULL,
	winner_name TEXT NOT NULL,
	total_words INTEGER NOT NULL,
	started_at  TIMESTAMPTZ NOT NULL,
	ended_at    TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS match_players (
	match_id    UUID NOT NULL REFERENCES matches (id) ON DELETE CASCADE,
	position    INTEGER NOT NULL,
	player_id   TEXT NOT NULL,
	player_name TEXT NOT NULL,
	bot         BOOLEAN NOT NULL DEFAULT FALSE,
	started_at  TIMESTAMPTZ NOT NULL,
	ended_at    TIMESTAMPTZ,
	words       TEXT[] NOT NULL DEFAULT '{}',
	PRIMARY KEY (match_id, position)
);

CREATE INDEX IF NOT EXISTS match_players_player_id_idx ON match_players (player_id);

CREATE TABLE IF NOT EXISTS match_eliminations (
	match_id  UUID NOT NULL REFERENCES matches (id) ON DELETE CASCADE,
	position  INTEGER NOT NULL,
	player_id TEXT NOT NULL,
	reason    TEXT NOT NULL,
	word      TEXT NOT NULL DEFAULT '',
	at        TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (match_id, position)
);
`

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

// Migrate creates the history tables when they are missing.
func (d *Driver) Migrate(ctx context.Context) error {
	_, err := d.db.ExecContext(ctx, schema)
	return err
}

func (d *Driver) Save(ctx context.Context, summary model.Summary) error {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	insertMatchQuery := `
		INSERT INTO matches (id, channel_id, winner_id, winner_name, total_words, started_at, ended_at)
		VALUES (:id, :channel_id, :winner_id, :winner_name, :total_words, :started_at, :ended_at)
	`
	if _, err := tx.NamedExecContext(ctx, insertMatchQuery, toMatchDTO(summary)); err != nil {
		return err
	}

	insertPlayerQuery := `
		INSERT INTO match_players (match_id, position, player_id, player_name, bot, started_at, ended_at, words)
		VALUES (:match_id, :position, :player_id, :player_name, :bot, :started_at, :ended_at, :words)
	`
	for i, ps := range summary.Ranking {
		if _, err := tx.NamedExecContext(ctx, insertPlayerQuery, toPlayerDTO(summary.MatchID, i, ps)); err != nil {
			return err
		}
	}

	insertEliminationQuery := `
		INSERT INTO match_eliminations (match_id, position, player_id, reason, word, at)
		VALUES (:match_id, :position, :player_id, :reason, :word, :at)
	`
	for i, e := range summary.Eliminations {
		if _, err := tx.NamedExecContext(ctx, insertEliminationQuery, toEliminationDTO(summary.MatchID, i, e)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (d *Driver) ByID(ctx context.Context, id uuid.UUID) (model.Summary, error) {
	var match matchDTO

	query := `
		SELECT id, channel_id, winner_id, winner_name, total_words, started_at, ended_at
		FROM matches
		WHERE id = $1
	`

	if err := d.db.GetContext(ctx, &match, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Summary{}, usecase_match.ErrResourceNotFound
		}
		return model.Summary{}, err
	}

	return d.details(ctx, match)
}

// ByPlayer returns the most recently finished matches of the player first.
func (d *Driver) ByPlayer(ctx context.Context, player model.PlayerID, limit int) ([]model.Summary, error) {
	var matches []matchDTO

	query := `
		SELECT m.id, m.channel_id, m.winner_id, m.winner_name, m.total_words, m.started_at, m.ended_at
		FROM matches m
		JOIN match_players p ON p.match_id = m.id
		WHERE p.player_id = $1
		ORDER BY m.ended_at DESC
		LIMIT $2
	`

	if err := d.db.SelectContext(ctx, &matches, query, string(player), limit); err != nil {
		return nil, err
	}

	summaries := make([]model.Summary, 0, len(matches))
	for _, match := range matches {
		summary, err := d.details(ctx, match)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (d *Driver) details(ctx context.Context, match matchDTO) (model.Summary, error) {
	var players []playerDTO
	playersQuery := `
		SELECT match_id, position, player_id, player_name, bot, started_at, ended_at, words
		FROM match_players
		WHERE match_id = $1
		ORDER BY position
	`
	if err := d.db.SelectContext(ctx, &players, playersQuery, match.ID); err != nil {
		return model.Summary{}, err
	}

	var eliminations []eliminationDTO
	eliminationsQuery := `
		SELECT match_id, position, player_id, reason, word, at
		FROM match_eliminations
		WHERE match_id = $1
		ORDER BY position
	`
	if err := d.db.SelectContext(ctx, &eliminations, eliminationsQuery, match.ID); err != nil {
		return model.Summary{}, err
	}

	return match.toModel(players, eliminations), nil
}
