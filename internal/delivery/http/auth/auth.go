package http_auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/wordchain/internal/delivery/http/common"
	http_auth_middleware "github.com/humanbelnik/wordchain/internal/delivery/http/middleware/auth"
	"github.com/humanbelnik/wordchain/internal/model"
	servie_simple_auth "github.com/humanbelnik/wordchain/internal/service/auth/simple"
)

type Controller struct {
	service *servie_simple_auth.Service
	logger  *slog.Logger
}

func New(
	service *servie_simple_auth.Service,
) *Controller {
	return &Controller{
		service: service,
		logger:  slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	auth.POST("", c.auth)
	auth.DELETE("", c.revoke)
}

// AuthRequestDTO DTO для запроса аутентификации игрока
type AuthRequestDTO struct {
	Code     string `json:"code" binding:"required" example:"secret123"`
	PlayerID string `json:"player_id" binding:"required" example:"4242"`
	Name     string `json:"name" binding:"required" example:"alice"`
	Bot      bool   `json:"bot"`
}

// Auth открывает сессию игрока
// @Summary Аутентификация игрока
// @Description Шлюз чата передает общий код и данные игрока, токен возвращается в заголовке X-user-token
// @Tags Auth operations
// @Accept json
// @Produce json
// @Param request body AuthRequestDTO true "Данные для аутентификации"
// @Success 202
// @Header 202 {string} X-user-token "Токен игрока"
// @Failure 400 {object} http_common.ErrorResponse "Неверный формат запроса"
// @Failure 403 {object} http_common.ErrorResponse "Неверный код аутентификации"
// @Failure 500 {object} http_common.ErrorResponse "Внутренняя ошибка сервера"
// @Router /auth [post]
func (c *Controller) auth(ctx *gin.Context) {
	var req AuthRequestDTO

	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request format", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "Invalid request format",
		})
		return
	}

	token, err := c.service.Auth(req.Code, model.Player{
		ID:   model.PlayerID(req.PlayerID),
		Name: req.Name,
		Bot:  req.Bot,
	})
	if err != nil {
		switch {
		case errors.Is(err, servie_simple_auth.ErrWrongCode):
			c.logger.Warn("wrong code", slog.String("player", req.PlayerID))
			ctx.JSON(http.StatusForbidden, http_common.ErrorResponse{
				Message: "forbidden",
			})
		case errors.Is(err, servie_simple_auth.ErrInvalidPlayer):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: "invalid player",
			})
		default:
			c.logger.Error("internal auth error", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
		}
		return
	}

	ctx.Header(http_auth_middleware.Header, token)
	ctx.Status(http.StatusAccepted)
}

// Revoke закрывает сессию игрока
// @Summary Завершение сессии
// @Tags Auth operations
// @Success 204
// @Failure 401 {object} http_common.ErrorResponse "Нет токена"
// @Failure 500 {object} http_common.ErrorResponse "Внутренняя ошибка сервера"
// @Security UserToken
// @Router /auth [delete]
func (c *Controller) revoke(ctx *gin.Context) {
	token := ctx.GetHeader(http_auth_middleware.Header)
	if token == "" {
		ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
			Message: "X-user-token not found",
		})
		return
	}

	if err := c.service.Revoke(token); err != nil {
		c.logger.Error("failed to revoke session", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}
