package usecase_lobby

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/wordchain/internal/model"
)

var (
	ErrNotAuthor        = errors.New("only the lobby author can do that")
	ErrNotInvited       = errors.New("player is not invited")
	ErrLobbyClosed      = errors.New("lobby is closed")
	ErrLobbyExists      = errors.New("channel already has an open lobby")
	ErrNotEnoughPlayers = errors.New("not enough confirmed players")
	ErrBanned           = errors.New("player is banned")
	ErrInternal         = errors.New("internal error")
	ErrResourceNotFound = errors.New("no such resource")
)

const insufficientPlayers = "insufficient players"

//go:generate mockery --name=MatchStarter --output=./mocks/starter --filename=starter.go
type MatchStarter interface {
	Start(ctx context.Context, channelID model.ChannelID, players []model.Player) error
}

//go:generate mockery --name=Announcer --output=./mocks/announcer --filename=announcer.go
type Announcer interface {
	Announce(channelID model.ChannelID, a model.Announcement) model.MessageID
}

//go:generate mockery --name=BanChecker --output=./mocks/ban --filename=ban.go
type BanChecker interface {
	IsBanned(ctx context.Context, player model.PlayerID) (bool, error)
}

// AfterFunc schedules f once after d and returns a stop function.
type AfterFunc func(d time.Duration, f func()) (stop func() bool)

func realAfterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

type entry struct {
	mu    sync.Mutex
	lobby model.Lobby

	// started is swapped exactly once, by a manual start, an expiry or a cancel
	started  atomic.Bool
	stopTick func() bool
}

type Usecase struct {
	starter   MatchStarter
	announcer Announcer
	bans      BanChecker

	window time.Duration
	now    func() time.Time
	after  AfterFunc
	logger *slog.Logger

	mu        sync.RWMutex
	lobbies   map[uuid.UUID]*entry
	byChannel map[model.ChannelID]uuid.UUID

	// Finished lobbies are purged on every Nth open
	cleanupPeriod int
	opensCount    int
}

type UsecaseOption func(*Usecase)

// WithWindow sets the confirmation window.
func WithWindow(d time.Duration) UsecaseOption {
	return func(u *Usecase) {
		u.window = d
	}
}

func WithBanChecker(b BanChecker) UsecaseOption {
	return func(u *Usecase) {
		u.bans = b
	}
}

func WithClock(now func() time.Time) UsecaseOption {
	return func(u *Usecase) {
		u.now = now
	}
}

func WithAfterFunc(f AfterFunc) UsecaseOption {
	return func(u *Usecase) {
		u.after = f
	}
}

func WithCleanupPeriod(n int) UsecaseOption {
	return func(u *Usecase) {
		u.cleanupPeriod = n
	}
}

func WithLogger(logger *slog.Logger) UsecaseOption {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(
	starter MatchStarter,
	announcer Announcer,
	opts ...UsecaseOption,
) *Usecase {
	u := &Usecase{
		starter:       starter,
		announcer:     announcer,
		window:        120 * time.Second,
		now:           time.Now,
		after:         realAfterFunc,
		logger:        slog.Default(),
		lobbies:       make(map[uuid.UUID]*entry),
		byChannel:     make(map[model.ChannelID]uuid.UUID),
		cleanupPeriod: 20,
	}
	for _, opt := range opts {
		opt(u)
	}

	if u.cleanupPeriod <= 0 {
		u.cleanupPeriod = 20 /* default */
	}
	return u
}

// Open creates a lobby with the author as its only invitee and starts the
// confirmation countdown.
func (u *Usecase) Open(ctx context.Context, channelID model.ChannelID, author model.Player) (model.Lobby, error) {
	if err := u.checkBan(ctx, author.ID); err != nil {
		return model.Lobby{}, err
	}

	u.mu.Lock()
	if id, ok := u.byChannel[channelID]; ok {
		if e := u.lobbies[id]; e != nil && !e.started.Load() {
			u.mu.Unlock()
			return model.Lobby{}, ErrLobbyExists
		}
	}

	u.opensCount++
	if u.opensCount%u.cleanupPeriod == 0 {
		u.cleanupLocked()
	}

	now := u.now()
	e := &entry{
		lobby: model.Lobby{
			ID:        uuid.New(),
			ChannelID: channelID,
			Author:    author,
			Invited:   []model.Player{author},
			Confirmed: []model.PlayerID{},
			CreatedAt: now,
			Deadline:  now.Add(u.window),
			State:     model.LobbyOpen,
		},
	}
	u.lobbies[e.lobby.ID] = e
	u.byChannel[channelID] = e.lobby.ID
	u.mu.Unlock()

	id := e.lobby.ID
	e.mu.Lock()
	e.stopTick = u.after(u.window, func() { u.expire(id) })
	snapshot := copyLobby(e.lobby)
	e.mu.Unlock()

	u.logger.Info("lobby opened",
		slog.String("lobby_id", id.String()),
		slog.String("channel", string(channelID)),
		slog.String("author", string(author.ID)))

	u.announcer.Announce(channelID, model.Announcement{
		Kind:    model.KindLobbyOpened,
		Text:    fmt.Sprintf("%s opened a lobby, confirm before %s", author.Name, snapshot.Deadline.Format(time.TimeOnly)),
		Payload: lobbyPayload(snapshot),
	})
	return snapshot, nil
}

// ToggleInvite adds player or removes them if already invited. Bots, the
// author and adds over the cap are ignored.
func (u *Usecase) ToggleInvite(ctx context.Context, lobbyID uuid.UUID, actor model.PlayerID, player model.Player) (model.Lobby, error) {
	if err := u.checkBan(ctx, actor); err != nil {
		return model.Lobby{}, err
	}

	e, err := u.entry(lobbyID)
	if err != nil {
		return model.Lobby{}, err
	}

	e.mu.Lock()
	if err := u.checkOpen(e); err != nil {
		e.mu.Unlock()
		return model.Lobby{}, err
	}
	l := &e.lobby
	if actor != l.Author.ID {
		e.mu.Unlock()
		u.notice(l.ChannelID, actor, "only the lobby author can invite players")
		return model.Lobby{}, ErrNotAuthor
	}

	changed := true
	switch {
	case player.Bot, player.ID == l.Author.ID:
		changed = false
	case l.IsInvited(player.ID):
		l.Invited = slices.DeleteFunc(l.Invited, func(p model.Player) bool { return p.ID == player.ID })
		l.Confirmed = slices.DeleteFunc(l.Confirmed, func(id model.PlayerID) bool { return id == player.ID })
	case len(l.Invited) >= model.MaxInvited:
		changed = false
	default:
		l.Invited = append(l.Invited, player)
	}
	snapshot := copyLobby(*l)
	e.mu.Unlock()

	if changed {
		u.announceUpdate(snapshot)
	}
	return snapshot, nil
}

// Confirm is idempotent.
func (u *Usecase) Confirm(ctx context.Context, lobbyID uuid.UUID, player model.PlayerID) (model.Lobby, error) {
	if err := u.checkBan(ctx, player); err != nil {
		return model.Lobby{}, err
	}

	e, err := u.entry(lobbyID)
	if err != nil {
		return model.Lobby{}, err
	}

	e.mu.Lock()
	if err := u.checkOpen(e); err != nil {
		e.mu.Unlock()
		return model.Lobby{}, err
	}
	l := &e.lobby
	if !l.IsInvited(player) {
		e.mu.Unlock()
		u.notice(l.ChannelID, player, "you are not invited to this lobby")
		return model.Lobby{}, ErrNotInvited
	}

	changed := !l.IsConfirmed(player)
	if changed {
		l.Confirmed = append(l.Confirmed, player)
	}
	snapshot := copyLobby(*l)
	e.mu.Unlock()

	if changed {
		u.announceUpdate(snapshot)
	}
	return snapshot, nil
}

// ManualStart hands the confirmed players to the match starter right away
// and disables the countdown.
func (u *Usecase) ManualStart(ctx context.Context, lobbyID uuid.UUID, actor model.PlayerID) (model.Lobby, error) {
	if err := u.checkBan(ctx, actor); err != nil {
		return model.Lobby{}, err
	}

	e, err := u.entry(lobbyID)
	if err != nil {
		return model.Lobby{}, err
	}

	e.mu.Lock()
	if err := u.checkOpen(e); err != nil {
		e.mu.Unlock()
		return model.Lobby{}, err
	}
	l := &e.lobby
	if actor != l.Author.ID {
		e.mu.Unlock()
		u.notice(l.ChannelID, actor, "only the lobby author can start the match")
		return model.Lobby{}, ErrNotAuthor
	}
	if len(l.EligiblePlayers()) < model.MinMatchPlayers {
		e.mu.Unlock()
		u.notice(l.ChannelID, actor, "at least one invited player has to confirm")
		return model.Lobby{}, ErrNotEnoughPlayers
	}
	if !e.started.CompareAndSwap(false, true) {
		e.mu.Unlock()
		return model.Lobby{}, ErrLobbyClosed
	}
	if e.stopTick != nil {
		e.stopTick()
	}
	l.State = model.LobbyStarted
	snapshot := copyLobby(*l)
	e.mu.Unlock()

	if err := u.handOff(ctx, snapshot); err != nil {
		return snapshot, err
	}
	return snapshot, nil
}

// Cancel tears the lobby down without starting a match.
func (u *Usecase) Cancel(ctx context.Context, lobbyID uuid.UUID, actor model.PlayerID) (model.Lobby, error) {
	e, err := u.entry(lobbyID)
	if err != nil {
		return model.Lobby{}, err
	}

	e.mu.Lock()
	if err := u.checkOpen(e); err != nil {
		e.mu.Unlock()
		return model.Lobby{}, err
	}
	if actor != e.lobby.Author.ID {
		e.mu.Unlock()
		return model.Lobby{}, ErrNotAuthor
	}
	if !e.started.CompareAndSwap(false, true) {
		e.mu.Unlock()
		return model.Lobby{}, ErrLobbyClosed
	}
	if e.stopTick != nil {
		e.stopTick()
	}
	e.lobby.State = model.LobbyCancelled
	snapshot := copyLobby(e.lobby)
	e.mu.Unlock()

	u.announcer.Announce(snapshot.ChannelID, model.Announcement{
		Kind:    model.KindLobbyCancelled,
		Text:    "lobby cancelled by its author",
		Payload: lobbyPayload(snapshot),
	})
	return snapshot, nil
}

func (u *Usecase) Get(ctx context.Context, lobbyID uuid.UUID) (model.Lobby, error) {
	e, err := u.entry(lobbyID)
	if err != nil {
		return model.Lobby{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return copyLobby(e.lobby), nil
}

func (u *Usecase) ByChannel(ctx context.Context, channelID model.ChannelID) (model.Lobby, error) {
	u.mu.RLock()
	id, ok := u.byChannel[channelID]
	u.mu.RUnlock()
	if !ok {
		return model.Lobby{}, ErrResourceNotFound
	}
	return u.Get(ctx, id)
}

// expire runs on the countdown goroutine. It is a no-op when the lobby was
// already started or cancelled.
func (u *Usecase) expire(lobbyID uuid.UUID) {
	e, err := u.entry(lobbyID)
	if err != nil {
		return
	}
	if !e.started.CompareAndSwap(false, true) {
		return
	}

	e.mu.Lock()
	l := &e.lobby
	if len(l.EligiblePlayers()) < model.MinMatchPlayers {
		l.State = model.LobbyCancelled
	} else {
		l.State = model.LobbyStarted
	}
	snapshot := copyLobby(*l)
	e.mu.Unlock()

	if snapshot.State == model.LobbyCancelled {
		u.logger.Info("lobby expired", slog.String("lobby_id", lobbyID.String()), slog.Int("confirmed", len(snapshot.Confirmed)))
		u.announcer.Announce(snapshot.ChannelID, model.Announcement{
			Kind:    model.KindLobbyCancelled,
			Text:    insufficientPlayers,
			Payload: lobbyPayload(snapshot),
		})
		return
	}

	if err := u.handOff(context.Background(), snapshot); err != nil {
		u.logger.Error("auto start failed", slog.String("lobby_id", lobbyID.String()), slog.String("error", err.Error()))
	}
}

func (u *Usecase) handOff(ctx context.Context, l model.Lobby) error {
	players := l.EligiblePlayers()
	u.logger.Info("lobby started",
		slog.String("lobby_id", l.ID.String()),
		slog.Int("players", len(players)))

	u.announcer.Announce(l.ChannelID, model.Announcement{
		Kind:    model.KindLobbyStarted,
		Text:    fmt.Sprintf("match starting with %d players", len(players)),
		Payload: lobbyPayload(l),
	})

	if err := u.starter.Start(ctx, l.ChannelID, players); err != nil {
		return errors.Join(ErrInternal, err)
	}
	return nil
}

func (u *Usecase) entry(lobbyID uuid.UUID) (*entry, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	e, ok := u.lobbies[lobbyID]
	if !ok {
		return nil, ErrResourceNotFound
	}
	return e, nil
}

// checkOpen must be called with e.mu held.
func (u *Usecase) checkOpen(e *entry) error {
	if e.started.Load() || e.lobby.State != model.LobbyOpen {
		return ErrLobbyClosed
	}
	return nil
}

func (u *Usecase) checkBan(ctx context.Context, player model.PlayerID) error {
	if u.bans == nil {
		return nil
	}

	banned, err := u.bans.IsBanned(ctx, player)
	if err != nil {
		return errors.Join(ErrInternal, err)
	}
	if banned {
		return ErrBanned
	}
	return nil
}

// cleanupLocked drops lobbies that reached a terminal state. u.mu must be held.
func (u *Usecase) cleanupLocked() {
	for id, e := range u.lobbies {
		if !e.started.Load() {
			continue
		}
		delete(u.lobbies, id)
		if u.byChannel[e.lobby.ChannelID] == id {
			delete(u.byChannel, e.lobby.ChannelID)
		}
	}
}

func (u *Usecase) notice(channelID model.ChannelID, target model.PlayerID, text string) {
	u.announcer.Announce(channelID, model.Announcement{
		Kind:   model.KindNotice,
		Target: target,
		Text:   text,
	})
}

func (u *Usecase) announceUpdate(l model.Lobby) {
	u.announcer.Announce(l.ChannelID, model.Announcement{
		Kind:    model.KindLobbyUpdate,
		Text:    fmt.Sprintf("%d/%d players confirmed", len(l.Confirmed), len(l.Invited)),
		Payload: lobbyPayload(l),
	})
}

func lobbyPayload(l model.Lobby) map[string]any {
	invited := make([]model.PlayerID, 0, len(l.Invited))
	for _, p := range l.Invited {
		invited = append(invited, p.ID)
	}
	return map[string]any{
		"lobby_id":  l.ID.String(),
		"author":    l.Author.ID,
		"invited":   invited,
		"confirmed": l.Confirmed,
		"deadline":  l.Deadline.Unix(),
		"state":     l.State,
	}
}

func copyLobby(l model.Lobby) model.Lobby {
	l.Invited = slices.Clone(l.Invited)
	l.Confirmed = slices.Clone(l.Confirmed)
	return l
}
