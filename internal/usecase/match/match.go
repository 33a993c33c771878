package usecase_match

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/wordchain/internal/model"
	service_stats "github.com/humanbelnik/wordchain/internal/service/stats"
	service_word "github.com/humanbelnik/wordchain/internal/service/word"
)

var (
	ErrTimeout          = errors.New("turn deadline exceeded")
	ErrAborted          = errors.New("match aborted")
	ErrNotEnoughPlayers = errors.New("not enough players")
	ErrMatchRunning     = errors.New("match already running in channel")
	ErrInternal         = errors.New("internal error")
	ErrResourceNotFound = errors.New("no such resource")
)

const acceptedEmoji = "✅"

// InputSource is the only suspension point of a match. Implementations must
// return ErrTimeout once deadline passes and ctx.Err() on cancellation.
//
//go:generate mockery --name=InputSource --output=./mocks/input --filename=input.go
type InputSource interface {
	NextQualifyingMessage(ctx context.Context, channelID model.ChannelID, author model.PlayerID, deadline time.Time) (model.Message, error)
}

//go:generate mockery --name=WordValidator --output=./mocks/validator --filename=validator.go
type WordValidator interface {
	IsValid(ctx context.Context, word string) bool
}

// Announcer calls are fire-and-forget.
//
//go:generate mockery --name=Announcer --output=./mocks/announcer --filename=announcer.go
type Announcer interface {
	Announce(channelID model.ChannelID, a model.Announcement) model.MessageID
	React(channelID model.ChannelID, messageID model.MessageID, emoji string)
	DeleteMessage(channelID model.ChannelID, messageID model.MessageID)
}

//go:generate mockery --name=HistoryRepository --output=./mocks/history --filename=history.go
type HistoryRepository interface {
	Save(ctx context.Context, summary model.Summary) error
	ByID(ctx context.Context, id uuid.UUID) (model.Summary, error)
	ByPlayer(ctx context.Context, player model.PlayerID, limit int) ([]model.Summary, error)
}

type Usecase struct {
	input     InputSource
	validator WordValidator
	announcer Announcer
	history   HistoryRepository

	tiers     Tiers
	countdown time.Duration
	maxErrors int
	now       func() time.Time
	logger    *slog.Logger

	rndMu sync.Mutex
	rnd   *rand.Rand

	mu      sync.Mutex
	running map[model.ChannelID]context.CancelFunc
	wg      sync.WaitGroup
}

type UsecaseOption func(*Usecase)

func WithTiers(t Tiers) UsecaseOption {
	return func(u *Usecase) {
		u.tiers = t
	}
}

// WithCountdown sets the pause between hand-off and the first turn.
func WithCountdown(d time.Duration) UsecaseOption {
	return func(u *Usecase) {
		u.countdown = d
	}
}

// WithMaxConsecutiveErrors bounds how many internal failures in a row a turn
// tolerates before the player is eliminated.
func WithMaxConsecutiveErrors(n int) UsecaseOption {
	return func(u *Usecase) {
		u.maxErrors = n
	}
}

func WithRand(r *rand.Rand) UsecaseOption {
	return func(u *Usecase) {
		u.rnd = r
	}
}

func WithClock(now func() time.Time) UsecaseOption {
	return func(u *Usecase) {
		u.now = now
	}
}

func WithLogger(logger *slog.Logger) UsecaseOption {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(
	input InputSource,
	validator WordValidator,
	announcer Announcer,
	history HistoryRepository,
	opts ...UsecaseOption,
) *Usecase {
	u := &Usecase{
		input:     input,
		validator: validator,
		announcer: announcer,
		history:   history,
		tiers:     DefaultTiers(),
		countdown: 10 * time.Second,
		maxErrors: 5,
		now:       time.Now,
		logger:    slog.Default(),
		rnd:       rand.New(rand.NewSource(time.Now().UnixNano())),
		running:   make(map[model.ChannelID]context.CancelFunc),
	}
	for _, opt := range opts {
		opt(u)
	}

	if !u.tiers.Valid() {
		u.logger.Warn("invalid tiers, using defaults", slog.Any("tiers", u.tiers))
		u.tiers = DefaultTiers()
	}
	if u.maxErrors <= 0 {
		u.maxErrors = 5 /* default */
	}
	return u
}

// match is the state of one running game. Only the goroutine executing Run
// touches it.
type match struct {
	id         uuid.UUID
	channelID  model.ChannelID
	startedAt  time.Time
	active     []model.Player
	used       map[string]struct{}
	previous   string
	validWords int
	stats      *service_stats.Tracker
	eliminated []model.Elimination
}

// Run drives a match to a single survivor. It blocks for the whole match.
func (u *Usecase) Run(ctx context.Context, channelID model.ChannelID, players []model.Player) (model.Summary, error) {
	if len(players) < model.MinMatchPlayers {
		return model.Summary{}, ErrNotEnoughPlayers
	}

	order := slices.Clone(players)
	u.shuffle(order)

	if err := u.countdownToStart(ctx, channelID, order); err != nil {
		return model.Summary{}, err
	}

	now := u.now()
	m := &match{
		id:        uuid.New(),
		channelID: channelID,
		startedAt: now,
		active:    order,
		used:      make(map[string]struct{}),
		stats:     service_stats.New(order, now),
	}

	u.logger.Info("match started",
		slog.String("match_id", m.id.String()),
		slog.String("channel", string(channelID)),
		slog.Int("players", len(order)))

	for len(m.active) > 1 {
		// Eliminations shrink m.active mid-pass
		for _, p := range slices.Clone(m.active) {
			if len(m.active) == 1 {
				break
			}
			if err := u.turn(ctx, m, p); err != nil {
				u.announcer.Announce(channelID, model.Announcement{
					Kind: model.KindMatchAborted,
					Text: "match aborted",
				})
				return model.Summary{}, err
			}
		}
	}

	return u.finish(ctx, m), nil
}

func (u *Usecase) shuffle(players []model.Player) {
	u.rndMu.Lock()
	defer u.rndMu.Unlock()

	u.rnd.Shuffle(len(players), func(i, j int) {
		players[i], players[j] = players[j], players[i]
	})
}

func (u *Usecase) countdownToStart(ctx context.Context, channelID model.ChannelID, order []model.Player) error {
	if u.countdown <= 0 {
		return nil
	}

	ids := make([]model.PlayerID, 0, len(order))
	for _, p := range order {
		ids = append(ids, p.ID)
	}
	startsAt := u.now().Add(u.countdown)
	msgID := u.announcer.Announce(channelID, model.Announcement{
		Kind: model.KindMatchCountdown,
		Text: fmt.Sprintf("match starts in %s", u.countdown),
		Payload: map[string]any{
			"players":   ids,
			"starts_at": startsAt.Unix(),
		},
	})
	defer u.announcer.DeleteMessage(channelID, msgID)

	timer := time.NewTimer(u.countdown)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return errors.Join(ErrAborted, ctx.Err())
	case <-timer.C:
		return nil
	}
}

// turn waits for p until they play an acceptable word or get eliminated.
// Only cancellation of ctx is returned as an error.
func (u *Usecase) turn(ctx context.Context, m *match, p model.Player) error {
	tier := u.tiers.Tier(m.validWords)
	deadline := u.now().Add(tier.Limit)

	promptID := u.announcer.Announce(m.channelID, u.turnAnnouncement(m, p, tier, deadline))
	defer u.announcer.DeleteMessage(m.channelID, promptID)

	failures := 0
	for {
		msg, err := u.input.NextQualifyingMessage(ctx, m.channelID, p.ID, deadline)
		if err == nil {
			var done bool
			done, err = u.safeHandle(ctx, m, p, msg)
			if err == nil {
				if done {
					return nil
				}
				failures = 0
				continue
			}
		}

		switch {
		case errors.Is(err, ErrTimeout):
			u.eliminate(m, p, model.ReasonTimeout, "")
			return nil
		case ctx.Err() != nil:
			return errors.Join(ErrAborted, ctx.Err())
		}

		failures++
		u.logger.Error("turn failed",
			slog.String("match_id", m.id.String()),
			slog.String("player", string(p.ID)),
			slog.Int("consecutive", failures),
			slog.String("error", err.Error()))
		if failures >= u.maxErrors {
			u.eliminate(m, p, model.ReasonError, "")
			return nil
		}
	}
}

func (u *Usecase) turnAnnouncement(m *match, p model.Player, tier Tier, deadline time.Time) model.Announcement {
	a := model.Announcement{
		Kind:   model.KindTurn,
		Target: p.ID,
		Payload: map[string]any{
			"player":      p.ID,
			"tier":        tier.Name,
			"limit_sec":   int(tier.Limit / time.Second),
			"deadline":    deadline.Unix(),
			"word_number": m.validWords,
		},
	}
	if m.previous == "" {
		a.Text = fmt.Sprintf("%s, type the first word", p.Name)
		return a
	}

	suffix := lastTwo(m.previous)
	a.Payload["previous"] = m.previous
	a.Payload["suffix"] = suffix
	a.Text = fmt.Sprintf("%s, type a word starting with %q (%s)", p.Name, suffix, tier.Name)
	return a
}

// safeHandle keeps a single bad candidate from crashing the whole match.
func (u *Usecase) safeHandle(ctx context.Context, m *match, p model.Player, msg model.Message) (done bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			done, err = false, fmt.Errorf("%w: panic: %v", ErrInternal, r)
		}
	}()
	return u.handle(ctx, m, p, msg)
}

// handle reports done when the turn is over for p, either accepted or
// eliminated. Silent rejections keep the turn going on the same deadline.
func (u *Usecase) handle(ctx context.Context, m *match, p model.Player, msg model.Message) (bool, error) {
	word := service_word.Normalize(msg.Text)
	if word == "" {
		return false, nil
	}

	if _, ok := m.used[word]; ok {
		u.eliminate(m, p, model.ReasonRepeat, word)
		return true, nil
	}

	if m.previous != "" && !continues(m.previous, word) {
		return false, nil
	}

	if !u.validator.IsValid(ctx, word) {
		return false, nil
	}

	if err := m.stats.RecordAcceptedWord(p.ID, word); err != nil {
		return false, errors.Join(ErrInternal, err)
	}
	m.used[word] = struct{}{}
	m.previous = word
	m.validWords++

	u.announcer.React(m.channelID, msg.ID, acceptedEmoji)
	return true, nil
}

func (u *Usecase) eliminate(m *match, p model.Player, reason model.EliminationReason, word string) {
	at := u.now()
	if err := m.stats.RecordElimination(p.ID, at); err != nil {
		u.logger.Error("failed to record elimination", slog.String("error", err.Error()))
	}
	m.active = slices.DeleteFunc(m.active, func(a model.Player) bool { return a.ID == p.ID })
	m.eliminated = append(m.eliminated, model.Elimination{
		Player: p.ID,
		Reason: reason,
		Word:   word,
		At:     at,
	})

	u.logger.Info("player eliminated",
		slog.String("match_id", m.id.String()),
		slog.String("player", string(p.ID)),
		slog.String("reason", reason))

	u.announcer.Announce(m.channelID, model.Announcement{
		Kind: model.KindEliminated,
		Text: eliminationText(p, reason, word, u.tiers.Tier(m.validWords).Limit),
		Payload: map[string]any{
			"player": p.ID,
			"reason": reason,
			"word":   word,
			"left":   len(m.active),
		},
	})
}

func eliminationText(p model.Player, reason model.EliminationReason, word string, limit time.Duration) string {
	switch reason {
	case model.ReasonRepeat:
		return fmt.Sprintf("%s played %q again and is out", p.Name, word)
	case model.ReasonTimeout:
		return fmt.Sprintf("%s did not answer in %s and is out", p.Name, limit)
	default:
		return fmt.Sprintf("%s is out", p.Name)
	}
}

func (u *Usecase) finish(ctx context.Context, m *match) model.Summary {
	winner := m.active[0]
	endedAt := u.now()
	if err := m.stats.Finish(winner.ID, endedAt); err != nil {
		u.logger.Error("failed to finish winner stats", slog.String("error", err.Error()))
	}

	summary := model.Summary{
		MatchID:      m.id,
		ChannelID:    m.channelID,
		Winner:       winner,
		TotalWords:   m.validWords,
		StartedAt:    m.startedAt,
		EndedAt:      endedAt,
		Ranking:      m.stats.Ranking(),
		Eliminations: m.eliminated,
	}

	u.logger.Info("match finished",
		slog.String("match_id", m.id.String()),
		slog.String("winner", string(winner.ID)),
		slog.Int("words", summary.TotalWords),
		slog.Duration("duration", summary.Duration()))

	u.announcer.Announce(m.channelID, model.Announcement{
		Kind: model.KindMatchFinished,
		Text: fmt.Sprintf("%s wins after %d words", winner.Name, summary.TotalWords),
		Payload: map[string]any{
			"match_id":     m.id.String(),
			"winner":       winner.ID,
			"total_words":  summary.TotalWords,
			"duration_sec": int(summary.Duration() / time.Second),
			"ranking":      rankingPayload(summary.Ranking),
		},
	})

	if u.history != nil {
		if err := u.history.Save(ctx, summary); err != nil {
			u.logger.Error("failed to save match", slog.String("match_id", m.id.String()), slog.String("error", err.Error()))
		}
	}
	return summary
}

func rankingPayload(ranking []model.PlayerStats) []map[string]any {
	rows := make([]map[string]any, 0, len(ranking))
	for i, s := range ranking {
		rows = append(rows, map[string]any{
			"place":        i + 1,
			"player":       s.Player.ID,
			"words":        s.ValidWords(),
			"shortest":     s.Shortest(),
			"longest":      s.Longest(),
			"survival_sec": int(s.Survival() / time.Second),
		})
	}
	return rows
}

// continues reports whether next starts with the last two characters of prev.
func continues(prev, next string) bool {
	return strings.HasPrefix(next, lastTwo(prev))
}

func lastTwo(word string) string {
	r := []rune(word)
	if len(r) <= 2 {
		return word
	}
	return string(r[len(r)-2:])
}
