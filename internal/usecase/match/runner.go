package usecase_match

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/humanbelnik/wordchain/internal/model"
)

const defaultHistoryLimit = 20

// Start runs a match in the background. The match keeps ctx values but not
// its cancellation, use Abort to stop it.
func (u *Usecase) Start(ctx context.Context, channelID model.ChannelID, players []model.Player) error {
	if len(players) < model.MinMatchPlayers {
		return ErrNotEnoughPlayers
	}

	u.mu.Lock()
	if _, ok := u.running[channelID]; ok {
		u.mu.Unlock()
		return ErrMatchRunning
	}
	matchCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	u.running[channelID] = cancel
	u.wg.Add(1)
	u.mu.Unlock()

	go func() {
		defer u.wg.Done()
		defer func() {
			cancel()
			u.mu.Lock()
			delete(u.running, channelID)
			u.mu.Unlock()
		}()

		if _, err := u.Run(matchCtx, channelID, players); err != nil {
			if errors.Is(err, ErrAborted) {
				u.logger.Warn("match aborted", slog.String("channel", string(channelID)))
				return
			}
			u.logger.Error("match failed", slog.String("channel", string(channelID)), slog.String("error", err.Error()))
		}
	}()
	return nil
}

func (u *Usecase) Running(channelID model.ChannelID) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	_, ok := u.running[channelID]
	return ok
}

// Abort cancels the match of a torn down channel.
func (u *Usecase) Abort(channelID model.ChannelID) error {
	u.mu.Lock()
	cancel, ok := u.running[channelID]
	u.mu.Unlock()

	if !ok {
		return ErrResourceNotFound
	}
	cancel()
	return nil
}

// Shutdown aborts every running match and waits for them to unwind.
func (u *Usecase) Shutdown() {
	u.mu.Lock()
	for _, cancel := range u.running {
		cancel()
	}
	u.mu.Unlock()

	u.wg.Wait()
}

func (u *Usecase) Summary(ctx context.Context, id uuid.UUID) (model.Summary, error) {
	summary, err := u.history.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return model.Summary{}, ErrResourceNotFound
		}
		return model.Summary{}, errors.Join(ErrInternal, err)
	}
	return summary, nil
}

func (u *Usecase) PlayerHistory(ctx context.Context, player model.PlayerID, limit int) ([]model.Summary, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	summaries, err := u.history.ByPlayer(ctx, player, limit)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	return summaries, nil
}
