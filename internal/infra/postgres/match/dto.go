package infra_postgres_match

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/wordchain/internal/model"
	"github.com/lib/pq"
)

type matchDTO struct {
	ID         uuid.UUID `db:"id"`
	ChannelID  string    `db:"channel_id"`
	WinnerID   string    `db:"winner_id"`
	WinnerName string    `db:"winner_name"`
	TotalWords int       `db:"total_words"`
	StartedAt  time.Time `db:"started_at"`
	EndedAt    time.Time `db:"ended_at"`
}

type playerDTO struct {
	MatchID    uuid.UUID      `db:"match_id"`
	Position   int            `db:"position"`
	PlayerID   string         `db:"player_id"`
	PlayerName string         `db:"player_name"`
	Bot        bool           `db:"bot"`
	StartedAt  time.Time      `db:"started_at"`
	EndedAt    sql.NullTime   `db:"ended_at"`
	Words      pq.StringArray `db:"words"`
}

type eliminationDTO struct {
	MatchID  uuid.UUID `db:"match_id"`
	Position int       `db:"position"`
	PlayerID string    `db:"player_id"`
	Reason   string    `db:"reason"`
	Word     string    `db:"word"`
	At       time.Time `db:"at"`
}

func toMatchDTO(s model.Summary) matchDTO {
	return matchDTO{
		ID:         s.MatchID,
		ChannelID:  string(s.ChannelID),
		WinnerID:   string(s.Winner.ID),
		WinnerName: s.Winner.Name,
		TotalWords: s.TotalWords,
		StartedAt:  s.StartedAt,
		EndedAt:    s.EndedAt,
	}
}

func toPlayerDTO(matchID uuid.UUID, position int, ps model.PlayerStats) playerDTO {
	dto := playerDTO{
		MatchID:    matchID,
		Position:   position,
		PlayerID:   string(ps.Player.ID),
		PlayerName: ps.Player.Name,
		Bot:        ps.Player.Bot,
		StartedAt:  ps.Start,
		Words:      pq.StringArray(ps.Words),
	}
	if ps.End != nil {
		dto.EndedAt = sql.NullTime{Time: *ps.End, Valid: true}
	}
	if dto.Words == nil {
		dto.Words = pq.StringArray{}
	}
	return dto
}

func toEliminationDTO(matchID uuid.UUID, position int, e model.Elimination) eliminationDTO {
	return eliminationDTO{
		MatchID:  matchID,
		Position: position,
		PlayerID: string(e.Player),
		Reason:   e.Reason,
		Word:     e.Word,
		At:       e.At,
	}
}

func (d matchDTO) toModel(players []playerDTO, eliminations []eliminationDTO) model.Summary {
	summary := model.Summary{
		MatchID:   d.ID,
		ChannelID: model.ChannelID(d.ChannelID),
		Winner: model.Player{
			ID:   model.PlayerID(d.WinnerID),
			Name: d.WinnerName,
		},
		TotalWords:   d.TotalWords,
		StartedAt:    d.StartedAt,
		EndedAt:      d.EndedAt,
		Ranking:      make([]model.PlayerStats, 0, len(players)),
		Eliminations: make([]model.Elimination, 0, len(eliminations)),
	}

	for _, p := range players {
		ps := model.PlayerStats{
			Player: model.Player{
				ID:   model.PlayerID(p.PlayerID),
				Name: p.PlayerName,
				Bot:  p.Bot,
			},
			Start: p.StartedAt,
			Words: []string(p.Words),
		}
		if p.EndedAt.Valid {
			end := p.EndedAt.Time
			ps.End = &end
		}
		if ps.Player.ID == summary.Winner.ID {
			summary.Winner.Bot = p.Bot
		}
		summary.Ranking = append(summary.Ranking, ps)
	}

	for _, e := range eliminations {
		summary.Eliminations = append(summary.Eliminations, model.Elimination{
			Player: model.PlayerID(e.PlayerID),
			Reason: e.Reason,
			Word:   e.Word,
			At:     e.At,
		})
	}
	return summary
}
