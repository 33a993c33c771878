package usecase_lobby

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/wordchain/internal/model"
	announcer_mocks "github.com/humanbelnik/wordchain/internal/usecase/lobby/mocks/announcer"
	ban_mocks "github.com/humanbelnik/wordchain/internal/usecase/lobby/mocks/ban"
	starter_mocks "github.com/humanbelnik/wordchain/internal/usecase/lobby/mocks/starter"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type UsecaseLobbyUnitSuite struct {
	suite.Suite
}

// manualTimer captures the countdown callback so tests decide when it fires.
type manualTimer struct {
	mu      sync.Mutex
	fn      func()
	window  time.Duration
	stopped bool
}

func (m *manualTimer) after(d time.Duration, fn func()) func() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fn = fn
	m.window = d
	return func() bool {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.stopped = true
		return true
	}
}

func (m *manualTimer) fire() {
	m.mu.Lock()
	fn := m.fn
	m.mu.Unlock()
	fn()
}

func (m *manualTimer) isStopped() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopped
}

type resources struct {
	usecase   *Usecase
	starter   *starter_mocks.MatchStarter
	announcer *announcer_mocks.Announcer
	timer     *manualTimer
	ctx       context.Context
}

func initResources(t provider.T, opts ...UsecaseOption) *resources {
	r := &resources{
		starter:   starter_mocks.NewMatchStarter(t),
		announcer: announcer_mocks.NewAnnouncer(t),
		timer:     &manualTimer{},
		ctx:       context.Background(),
	}
	r.announcer.On("Announce", mock.Anything, mock.Anything).Return(model.MessageID("announcement")).Maybe()

	base := []UsecaseOption{
		WithAfterFunc(r.timer.after),
		WithClock(func() time.Time { return lobbyClock() }),
	}
	r.usecase = New(r.starter, r.announcer, append(base, opts...)...)
	return r
}

func lobbyClock() time.Time {
	return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
}

func validChannel() model.ChannelID {
	return model.ChannelID("general")
}

func carol() model.Player { return model.Player{ID: "carol", Name: "Carol"} }
func dave() model.Player  { return model.Player{ID: "dave", Name: "Dave"} }
func erin() model.Player  { return model.Player{ID: "erin", Name: "Erin"} }

func botPlayer() model.Player {
	return model.Player{ID: "helper-bot", Name: "Helper", Bot: true}
}

func (r *resources) open(t provider.T) model.Lobby {
	l, err := r.usecase.Open(r.ctx, validChannel(), carol())
	require.NoError(t, err)
	return l
}

// lobbyWith opens a lobby by carol, invites the given players and confirms
// the ones listed in confirmed.
func (r *resources) lobbyWith(t provider.T, invited []model.Player, confirmed ...model.PlayerID) model.Lobby {
	l := r.open(t)
	for _, p := range invited {
		_, err := r.usecase.ToggleInvite(r.ctx, l.ID, carol().ID, p)
		require.NoError(t, err)
	}
	for _, id := range confirmed {
		_, err := r.usecase.Confirm(r.ctx, l.ID, id)
		require.NoError(t, err)
	}
	return l
}

func announced(kind model.AnnouncementKind, text string) any {
	return mock.MatchedBy(func(a model.Announcement) bool {
		return a.Kind == kind && (text == "" || a.Text == text)
	})
}

func (s *UsecaseLobbyUnitSuite) TestOpen(t provider.T) {
	t.Parallel()

	t.Run("Should open lobby with author as only invitee", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		l := r.open(t)

		assert.NotEqual(t, uuid.Nil, l.ID)
		assert.Equal(t, []model.Player{carol()}, l.Invited)
		assert.Empty(t, l.Confirmed)
		assert.Equal(t, model.LobbyOpen, l.State)
		assert.Equal(t, lobbyClock().Add(120*time.Second), l.Deadline)
		assert.Equal(t, 120*time.Second, r.timer.window)
		r.announcer.AssertCalled(t, "Announce", validChannel(), announced(model.KindLobbyOpened, ""))
	})

	t.Run("Should refuse second open lobby in the same channel", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.open(t)

		_, err := r.usecase.Open(r.ctx, validChannel(), dave())

		assert.ErrorIs(t, err, ErrLobbyExists)
	})

	t.Run("Should allow reopening after cancel", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		l := r.open(t)
		_, err := r.usecase.Cancel(r.ctx, l.ID, carol().ID)
		require.NoError(t, err)

		again, err := r.usecase.Open(r.ctx, validChannel(), dave())

		require.NoError(t, err)
		assert.NotEqual(t, l.ID, again.ID)
		assert.True(t, r.timer.isStopped())
	})

	t.Run("Should reject banned author", func(t provider.T) {
		t.Parallel()
		bans := ban_mocks.NewBanChecker(t)
		bans.On("IsBanned", mock.Anything, carol().ID).Return(true, nil).Once()
		r := initResources(t, WithBanChecker(bans))

		_, err := r.usecase.Open(r.ctx, validChannel(), carol())

		assert.ErrorIs(t, err, ErrBanned)
	})

	t.Run("Should wrap ban checker failure", func(t provider.T) {
		t.Parallel()
		bans := ban_mocks.NewBanChecker(t)
		bans.On("IsBanned", mock.Anything, carol().ID).Return(false, errors.New("redis down")).Once()
		r := initResources(t, WithBanChecker(bans))

		_, err := r.usecase.Open(r.ctx, validChannel(), carol())

		assert.ErrorIs(t, err, ErrInternal)
	})
}

func (s *UsecaseLobbyUnitSuite) TestToggleInvite(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		actor         model.PlayerID
		setup         func(r *resources, t provider.T, l model.Lobby)
		player        model.Player
		expectError   error
		expectInvited []model.PlayerID
	}{
		{
			name:          "Should add invited player",
			actor:         carol().ID,
			player:        dave(),
			expectInvited: []model.PlayerID{"carol", "dave"},
		},
		{
			name:   "Should remove already invited player and drop confirmation",
			actor:  carol().ID,
			player: dave(),
			setup: func(r *resources, t provider.T, l model.Lobby) {
				_, err := r.usecase.ToggleInvite(r.ctx, l.ID, carol().ID, dave())
				require.NoError(t, err)
				_, err = r.usecase.Confirm(r.ctx, l.ID, dave().ID)
				require.NoError(t, err)
			},
			expectInvited: []model.PlayerID{"carol"},
		},
		{
			name:          "Should skip bots",
			actor:         carol().ID,
			player:        botPlayer(),
			expectInvited: []model.PlayerID{"carol"},
		},
		{
			name:          "Should skip the author",
			actor:         carol().ID,
			player:        carol(),
			expectInvited: []model.PlayerID{"carol"},
		},
		{
			name:        "Should reject non author",
			actor:       dave().ID,
			player:      erin(),
			expectError: ErrNotAuthor,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			l := r.open(t)
			if tc.setup != nil {
				tc.setup(r, t, l)
			}

			got, err := r.usecase.ToggleInvite(r.ctx, l.ID, tc.actor, tc.player)

			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				r.announcer.AssertCalled(t, "Announce", validChannel(), mock.MatchedBy(func(a model.Announcement) bool {
					return a.Kind == model.KindNotice && a.Target == tc.actor
				}))
				return
			}
			require.NoError(t, err)
			ids := make([]model.PlayerID, 0, len(got.Invited))
			for _, p := range got.Invited {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tc.expectInvited, ids)
			for _, id := range got.Confirmed {
				assert.True(t, got.IsInvited(id))
			}
		})
	}
}

func (s *UsecaseLobbyUnitSuite) TestToggleInviteCap(t provider.T) {
	t.Parallel()

	r := initResources(t)
	l := r.open(t)
	for i := range model.MaxInvited + 5 {
		_, err := r.usecase.ToggleInvite(r.ctx, l.ID, carol().ID, model.Player{ID: model.PlayerID(fmt.Sprintf("p%d", i))})
		require.NoError(t, err)
	}

	got, err := r.usecase.Get(r.ctx, l.ID)

	require.NoError(t, err)
	assert.Len(t, got.Invited, model.MaxInvited)
	assert.Equal(t, carol(), got.Invited[0])
}

func (s *UsecaseLobbyUnitSuite) TestConfirm(t provider.T) {
	t.Parallel()

	t.Run("Should confirm invited player once", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		l := r.lobbyWith(t, []model.Player{dave()})

		_, err := r.usecase.Confirm(r.ctx, l.ID, dave().ID)
		require.NoError(t, err)
		got, err := r.usecase.Confirm(r.ctx, l.ID, dave().ID)

		require.NoError(t, err)
		assert.Equal(t, []model.PlayerID{"dave"}, got.Confirmed)
	})

	t.Run("Should let the author confirm", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		l := r.open(t)

		got, err := r.usecase.Confirm(r.ctx, l.ID, carol().ID)

		require.NoError(t, err)
		assert.True(t, got.IsConfirmed(carol().ID))
	})

	t.Run("Should reject uninvited player", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		l := r.open(t)

		_, err := r.usecase.Confirm(r.ctx, l.ID, erin().ID)

		assert.ErrorIs(t, err, ErrNotInvited)
	})

	t.Run("Should report unknown lobby", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		_, err := r.usecase.Confirm(r.ctx, uuid.New(), dave().ID)

		assert.ErrorIs(t, err, ErrResourceNotFound)
	})
}

func (s *UsecaseLobbyUnitSuite) TestManualStart(t provider.T) {
	t.Parallel()

	t.Run("Should hand confirmed players over and stop the countdown", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		l := r.lobbyWith(t, []model.Player{dave(), erin()}, carol().ID, dave().ID)
		r.starter.On("Start", mock.Anything, validChannel(), []model.Player{carol(), dave()}).Return(nil).Once()

		got, err := r.usecase.ManualStart(r.ctx, l.ID, carol().ID)

		require.NoError(t, err)
		assert.Equal(t, model.LobbyStarted, got.State)
		assert.True(t, r.timer.isStopped())

		_, err = r.usecase.Confirm(r.ctx, l.ID, erin().ID)
		assert.ErrorIs(t, err, ErrLobbyClosed)

		// countdown callback firing late must not start a second match
		r.timer.fire()
		r.starter.AssertNumberOfCalls(t, "Start", 1)
	})

	t.Run("Should reject non author", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		l := r.lobbyWith(t, []model.Player{dave()}, carol().ID, dave().ID)

		_, err := r.usecase.ManualStart(r.ctx, l.ID, dave().ID)

		assert.ErrorIs(t, err, ErrNotAuthor)
	})

	t.Run("Should count the author without a confirmation", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		l := r.lobbyWith(t, []model.Player{dave(), erin()}, dave().ID)
		r.starter.On("Start", mock.Anything, validChannel(), []model.Player{carol(), dave()}).Return(nil).Once()

		got, err := r.usecase.ManualStart(r.ctx, l.ID, carol().ID)

		require.NoError(t, err)
		assert.Equal(t, model.LobbyStarted, got.State)
		assert.False(t, got.IsConfirmed(carol().ID))
	})

	t.Run("Should require an invitee besides the author", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		l := r.lobbyWith(t, []model.Player{dave()}, carol().ID)

		_, err := r.usecase.ManualStart(r.ctx, l.ID, carol().ID)

		assert.ErrorIs(t, err, ErrNotEnoughPlayers)
		got, _ := r.usecase.Get(r.ctx, l.ID)
		assert.Equal(t, model.LobbyOpen, got.State)
	})

	t.Run("Should wrap starter failure", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		l := r.lobbyWith(t, []model.Player{dave()}, carol().ID, dave().ID)
		r.starter.On("Start", mock.Anything, validChannel(), mock.Anything).Return(errors.New("match already running")).Once()

		_, err := r.usecase.ManualStart(r.ctx, l.ID, carol().ID)

		assert.ErrorIs(t, err, ErrInternal)
	})
}

func (s *UsecaseLobbyUnitSuite) TestExpire(t provider.T) {
	t.Parallel()

	t.Run("Should cancel with insufficient players", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		l := r.lobbyWith(t, []model.Player{dave()}, carol().ID)

		r.timer.fire()

		got, err := r.usecase.Get(r.ctx, l.ID)
		require.NoError(t, err)
		assert.Equal(t, model.LobbyCancelled, got.State)
		r.announcer.AssertCalled(t, "Announce", validChannel(), announced(model.KindLobbyCancelled, "insufficient players"))
		r.starter.AssertNotCalled(t, "Start", mock.Anything, mock.Anything, mock.Anything)

		_, err = r.usecase.ToggleInvite(r.ctx, l.ID, carol().ID, erin())
		assert.ErrorIs(t, err, ErrLobbyClosed)
	})

	t.Run("Should auto start with enough players", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		l := r.lobbyWith(t, []model.Player{dave()}, dave().ID, carol().ID)
		r.starter.On("Start", mock.Anything, validChannel(), []model.Player{carol(), dave()}).Return(nil).Once()

		r.timer.fire()

		got, _ := r.usecase.Get(r.ctx, l.ID)
		assert.Equal(t, model.LobbyStarted, got.State)
		_, err := r.usecase.ManualStart(r.ctx, l.ID, carol().ID)
		assert.ErrorIs(t, err, ErrLobbyClosed)
	})

	t.Run("Should auto start when only an invitee confirmed", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		l := r.lobbyWith(t, []model.Player{dave()}, dave().ID)
		r.starter.On("Start", mock.Anything, validChannel(), []model.Player{carol(), dave()}).Return(nil).Once()

		r.timer.fire()

		got, err := r.usecase.Get(r.ctx, l.ID)
		require.NoError(t, err)
		assert.Equal(t, model.LobbyStarted, got.State)
		assert.Equal(t, []model.PlayerID{"dave"}, got.Confirmed)
	})

	t.Run("Should start exactly once under a race", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		l := r.lobbyWith(t, []model.Player{dave()}, carol().ID, dave().ID)
		r.starter.On("Start", mock.Anything, validChannel(), mock.Anything).Return(nil).Once()

		var wg sync.WaitGroup
		for range 8 {
			wg.Add(2)
			go func() {
				defer wg.Done()
				_, _ = r.usecase.ManualStart(r.ctx, l.ID, carol().ID)
			}()
			go func() {
				defer wg.Done()
				r.timer.fire()
			}()
		}
		wg.Wait()

		r.starter.AssertNumberOfCalls(t, "Start", 1)
	})

	t.Run("Should fire on a real timer", func(t provider.T) {
		t.Parallel()
		r := initResources(t, WithAfterFunc(realAfterFunc), WithWindow(20*time.Millisecond))
		l := r.open(t)

		assert.Eventually(t, func() bool {
			got, _ := r.usecase.Get(r.ctx, l.ID)
			return got.State == model.LobbyCancelled
		}, time.Second, 10*time.Millisecond)
	})
}

func (s *UsecaseLobbyUnitSuite) TestByChannel(t provider.T) {
	t.Parallel()

	r := initResources(t)
	l := r.open(t)

	got, err := r.usecase.ByChannel(r.ctx, validChannel())
	require.NoError(t, err)
	assert.Equal(t, l.ID, got.ID)

	_, err = r.usecase.ByChannel(r.ctx, "random")
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func (s *UsecaseLobbyUnitSuite) TestCleanup(t provider.T) {
	t.Parallel()

	r := initResources(t, WithCleanupPeriod(2))
	first := r.open(t)
	_, err := r.usecase.Cancel(r.ctx, first.ID, carol().ID)
	require.NoError(t, err)

	_, err = r.usecase.Open(r.ctx, "other", dave())
	require.NoError(t, err)

	_, err = r.usecase.Get(r.ctx, first.ID)
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestUsecaseLobbyUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseLobbyUnitSuite))
}
