package http_auth_middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/wordchain/internal/delivery/http/common"
	"github.com/humanbelnik/wordchain/internal/model"
	servie_simple_auth "github.com/humanbelnik/wordchain/internal/service/auth/simple"
)

const (
	Header    = "X-user-token"
	playerKey = "player"
)

type PlayerResolver interface {
	Resolve(token string) (model.Player, error)
}

type Middleware struct {
	resolver PlayerResolver
	logger   *slog.Logger
}

func New(
	resolver PlayerResolver,
) *Middleware {
	return &Middleware{
		resolver: resolver,
		logger:   slog.Default(),
	}
}

// AuthRequired puts the session player into the gin context.
func (m *Middleware) AuthRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		t := ctx.GetHeader(Header)
		if t == "" {
			m.logger.Warn(fmt.Sprintf("no %s header", Header))
			ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
				Message: fmt.Sprintf("no %s header", Header),
			})
			ctx.Abort()
			return
		}

		player, err := m.resolver.Resolve(t)
		if err != nil {
			if errors.Is(err, servie_simple_auth.ErrUnauthorized) {
				m.logger.Warn("invalid token", slog.String("provided token", t))
				ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
					Message: "invalid token",
				})
				ctx.Abort()
				return
			}
			m.logger.Error("internal error", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
			ctx.Abort()
			return
		}

		ctx.Set(playerKey, player)
		ctx.Next()
	}
}

// Player returns the player stored by AuthRequired.
func Player(ctx *gin.Context) (model.Player, bool) {
	v, ok := ctx.Get(playerKey)
	if !ok {
		return model.Player{}, false
	}
	player, ok := v.(model.Player)
	return player, ok
}
