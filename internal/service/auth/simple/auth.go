package servie_simple_auth

//! Shared secret between the chat gateway and the game server

import (
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/wordchain/internal/model"
)

type Token = string

var (
	ErrInternal      = errors.New("internal error")
	ErrWrongCode     = errors.New("wrong code")
	ErrInvalidPlayer = errors.New("invalid player")
	ErrUnauthorized  = errors.New("unauthorized")
)

//go:generate mockery --name=SessionCache --output=./mocks/session --filename=session.go
type SessionCache interface {
	Set(key string, value string, ttl time.Duration) error
	Get(key string) (string, error)
	Delete(key string) error
}

type Service struct {
	secret       string
	sessionCache SessionCache
	ttl          time.Duration
}

func New(
	secret *string,
	sessionCache SessionCache,
	ttl *time.Duration,
) *Service {
	if ttl == nil {
		ttl = func() *time.Duration {
			defaultTokenTTL := time.Hour * 24
			return &defaultTokenTTL
		}()
	}

	if secret == nil {
		secret = func() *string {
			secret := os.Getenv("GATEWAY_SECRET")
			return &secret
		}()
		if *secret == "" {
			*secret = "shared"
		}
	}

	return &Service{
		secret:       *secret,
		sessionCache: sessionCache,
		ttl:          *ttl,
	}
}

type session struct {
	ID   model.PlayerID `json:"id"`
	Name string         `json:"name"`
	Bot  bool           `json:"bot"`
}

// Auth opens a session for a player of the chat platform. Only the gateway
// knows the code.
func (s *Service) Auth(code string, player model.Player) (Token, error) {
	if code != s.secret {
		return "", ErrWrongCode
	}
	if player.ID == model.EmptyPlayerID {
		return "", ErrInvalidPlayer
	}

	raw, err := json.Marshal(session{ID: player.ID, Name: player.Name, Bot: player.Bot})
	if err != nil {
		return "", errors.Join(ErrInternal, err)
	}

	t := s.genToken()
	if err := s.sessionCache.Set(t, string(raw), s.ttl); err != nil {
		return "", errors.Join(ErrInternal, err)
	}

	return t, nil
}

func (s *Service) Resolve(t Token) (model.Player, error) {
	if t == "" {
		return model.Player{}, ErrUnauthorized
	}

	v, err := s.sessionCache.Get(t)
	if err != nil {
		return model.Player{}, errors.Join(ErrInternal, err)
	}
	if v == "" {
		return model.Player{}, ErrUnauthorized
	}

	var sess session
	if err := json.Unmarshal([]byte(v), &sess); err != nil {
		return model.Player{}, errors.Join(ErrInternal, err)
	}

	return model.Player{ID: sess.ID, Name: sess.Name, Bot: sess.Bot}, nil
}

func (s *Service) Revoke(t Token) error {
	if err := s.sessionCache.Delete(t); err != nil {
		return errors.Join(ErrInternal, err)
	}
	return nil
}

func (s *Service) genToken() string {
	return uuid.New().String()
}
