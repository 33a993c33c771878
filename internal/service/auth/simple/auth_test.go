package servie_simple_auth

import (
	"errors"
	"testing"
	"time"

	"github.com/humanbelnik/wordchain/internal/model"
	mocks "github.com/humanbelnik/wordchain/internal/service/auth/simple/mocks/session"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type ServiceAuthUnitSuite struct {
	suite.Suite
}

const testSecret = "gateway"

func initService(t provider.T) (*Service, *mocks.SessionCache) {
	cache := mocks.NewSessionCache(t)
	secret := testSecret
	ttl := time.Hour
	return New(&secret, cache, &ttl), cache
}

func (s *ServiceAuthUnitSuite) TestAuth(t provider.T) {
	alice := model.Player{ID: "alice", Name: "Alice"}

	testCases := []struct {
		name       string
		code       string
		player     model.Player
		setupMocks func(cache *mocks.SessionCache)
		wantErr    error
	}{
		{
			name:   "issues token",
			code:   testSecret,
			player: alice,
			setupMocks: func(cache *mocks.SessionCache) {
				cache.On("Set", mock.AnythingOfType("string"), `{"id":"alice","name":"Alice","bot":false}`, time.Hour).
					Return(nil).Once()
			},
		},
		{
			name:       "wrong code",
			code:       "guess",
			player:     alice,
			setupMocks: func(cache *mocks.SessionCache) {},
			wantErr:    ErrWrongCode,
		},
		{
			name:       "empty player",
			code:       testSecret,
			player:     model.Player{Name: "ghost"},
			setupMocks: func(cache *mocks.SessionCache) {},
			wantErr:    ErrInvalidPlayer,
		},
		{
			name:   "cache failure",
			code:   testSecret,
			player: alice,
			setupMocks: func(cache *mocks.SessionCache) {
				cache.On("Set", mock.Anything, mock.Anything, mock.Anything).
					Return(errors.New("redis down")).Once()
			},
			wantErr: ErrInternal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			service, cache := initService(t)
			tc.setupMocks(cache)

			token, err := service.Auth(tc.code, tc.player)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, token)
				return
			}
			assert.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}
}

func (s *ServiceAuthUnitSuite) TestResolve(t provider.T) {
	t.Run("known token", func(t provider.T) {
		t.Parallel()
		service, cache := initService(t)
		cache.On("Get", "tok").Return(`{"id":"bob","name":"Bob","bot":true}`, nil).Once()

		player, err := service.Resolve("tok")
		assert.NoError(t, err)
		assert.Equal(t, model.Player{ID: "bob", Name: "Bob", Bot: true}, player)
	})

	t.Run("expired token", func(t provider.T) {
		t.Parallel()
		service, cache := initService(t)
		cache.On("Get", "tok").Return("", nil).Once()

		_, err := service.Resolve("tok")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("empty token", func(t provider.T) {
		t.Parallel()
		service, _ := initService(t)

		_, err := service.Resolve("")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("corrupted session", func(t provider.T) {
		t.Parallel()
		service, cache := initService(t)
		cache.On("Get", "tok").Return("not json", nil).Once()

		_, err := service.Resolve("tok")
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func (s *ServiceAuthUnitSuite) TestRevoke(t provider.T) {
	t.Parallel()
	service, cache := initService(t)
	cache.On("Delete", "tok").Return(nil).Once()

	assert.NoError(t, service.Revoke("tok"))
}

func TestServiceAuthUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(ServiceAuthUnitSuite))
}
