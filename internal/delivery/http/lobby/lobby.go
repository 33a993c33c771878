package http_lobby

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/humanbelnik/wordchain/internal/delivery/http/common"
	http_auth_middleware "github.com/humanbelnik/wordchain/internal/delivery/http/middleware/auth"
	"github.com/humanbelnik/wordchain/internal/model"
	usecase_lobby "github.com/humanbelnik/wordchain/internal/usecase/lobby"
)

type Controller struct {
	usecase        *usecase_lobby.Usecase
	authMiddleware *http_auth_middleware.Middleware
	logger         *slog.Logger
}

func New(
	usecase *usecase_lobby.Usecase,
	authMiddleware *http_auth_middleware.Middleware,
) *Controller {
	return &Controller{
		usecase:        usecase,
		authMiddleware: authMiddleware,
		logger:         slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	channels := router.Group("/channels/:channel_id")
	{
		channels.GET("/lobby", c.byChannel)
		channels.POST("/lobbies", c.authMiddleware.AuthRequired(), c.open)
	}

	lobbies := router.Group("/lobbies/:lobby_id")
	{
		lobbies.GET("", c.get)

		protected := lobbies.Group("")
		protected.Use(c.authMiddleware.AuthRequired())
		protected.POST("/invitations", c.toggleInvite)
		protected.POST("/confirmations", c.confirm)
		protected.POST("/start", c.start)
		protected.DELETE("", c.cancel)
	}
}

type PlayerDTO struct {
	ID   string `json:"id" binding:"required" example:"4242"`
	Name string `json:"name" example:"alice"`
	Bot  bool   `json:"bot"`
}

type LobbyResponseDTO struct {
	ID        string      `json:"id"`
	ChannelID string      `json:"channel_id"`
	Author    PlayerDTO   `json:"author"`
	Invited   []PlayerDTO `json:"invited"`
	Confirmed []string    `json:"confirmed"`
	Deadline  int64       `json:"deadline"`
	State     string      `json:"state"`
}

func toLobbyDTO(l model.Lobby) LobbyResponseDTO {
	invited := make([]PlayerDTO, 0, len(l.Invited))
	for _, p := range l.Invited {
		invited = append(invited, toPlayerDTO(p))
	}
	confirmed := make([]string, 0, len(l.Confirmed))
	for _, id := range l.Confirmed {
		confirmed = append(confirmed, string(id))
	}
	return LobbyResponseDTO{
		ID:        l.ID.String(),
		ChannelID: string(l.ChannelID),
		Author:    toPlayerDTO(l.Author),
		Invited:   invited,
		Confirmed: confirmed,
		Deadline:  l.Deadline.Unix(),
		State:     l.State,
	}
}

func toPlayerDTO(p model.Player) PlayerDTO {
	return PlayerDTO{ID: string(p.ID), Name: p.Name, Bot: p.Bot}
}

// Open создает лобби в канале
// @Summary Создание лобби
// @Description Автор открывает лобби и становится первым приглашенным, отсчет подтверждения запускается сразу
// @Tags Lobbies
// @Produce json
// @Param channel_id path string true "Идентификатор канала"
// @Success 201 {object} LobbyResponseDTO "Лобби создано"
// @Failure 401 {object} http_common.ErrorResponse "Не авторизован"
// @Failure 403 {object} http_common.ErrorResponse "Игрок заблокирован"
// @Failure 409 {object} http_common.ErrorResponse "В канале уже есть открытое лобби"
// @Failure 500 {object} http_common.ErrorResponse "Внутренняя ошибка сервера"
// @Security UserToken
// @Router /channels/{channel_id}/lobbies [post]
func (c *Controller) open(ctx *gin.Context) {
	player, _ := http_auth_middleware.Player(ctx)
	channelID := model.ChannelID(ctx.Param("channel_id"))

	lobby, err := c.usecase.Open(ctx.Request.Context(), channelID, player)
	if err != nil {
		c.fail(ctx, "failed to open lobby", err)
		return
	}

	ctx.JSON(http.StatusCreated, toLobbyDTO(lobby))
}

// Get возвращает лобби
// @Summary Получение лобби
// @Tags Lobbies
// @Produce json
// @Param lobby_id path string true "Идентификатор лобби"
// @Success 200 {object} LobbyResponseDTO
// @Failure 400 {object} http_common.ErrorResponse "Неверный идентификатор"
// @Failure 404 {object} http_common.ErrorResponse "Лобби не найдено"
// @Router /lobbies/{lobby_id} [get]
func (c *Controller) get(ctx *gin.Context) {
	id, ok := c.lobbyID(ctx)
	if !ok {
		return
	}

	lobby, err := c.usecase.Get(ctx.Request.Context(), id)
	if err != nil {
		c.fail(ctx, "failed to get lobby", err)
		return
	}

	ctx.JSON(http.StatusOK, toLobbyDTO(lobby))
}

// ByChannel возвращает последнее лобби канала
// @Summary Лобби канала
// @Tags Lobbies
// @Produce json
// @Param channel_id path string true "Идентификатор канала"
// @Success 200 {object} LobbyResponseDTO
// @Failure 404 {object} http_common.ErrorResponse "Лобби не найдено"
// @Router /channels/{channel_id}/lobby [get]
func (c *Controller) byChannel(ctx *gin.Context) {
	lobby, err := c.usecase.ByChannel(ctx.Request.Context(), model.ChannelID(ctx.Param("channel_id")))
	if err != nil {
		c.fail(ctx, "failed to get channel lobby", err)
		return
	}

	ctx.JSON(http.StatusOK, toLobbyDTO(lobby))
}

// ToggleInvite приглашает игрока или отзывает приглашение
// @Summary Приглашение игрока
// @Description Повторный вызов для приглашенного игрока отзывает приглашение. Боты и автор игнорируются
// @Tags Lobbies
// @Accept json
// @Produce json
// @Param lobby_id path string true "Идентификатор лобби"
// @Param request body PlayerDTO true "Игрок"
// @Success 200 {object} LobbyResponseDTO
// @Failure 400 {object} http_common.ErrorResponse "Неверный формат запроса"
// @Failure 403 {object} http_common.ErrorResponse "Только автор может приглашать"
// @Failure 404 {object} http_common.ErrorResponse "Лобби не найдено"
// @Failure 409 {object} http_common.ErrorResponse "Лобби закрыто"
// @Security UserToken
// @Router /lobbies/{lobby_id}/invitations [post]
func (c *Controller) toggleInvite(ctx *gin.Context) {
	id, ok := c.lobbyID(ctx)
	if !ok {
		return
	}

	var req PlayerDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request format", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "Invalid request format",
		})
		return
	}

	actor, _ := http_auth_middleware.Player(ctx)
	lobby, err := c.usecase.ToggleInvite(ctx.Request.Context(), id, actor.ID, model.Player{
		ID:   model.PlayerID(req.ID),
		Name: req.Name,
		Bot:  req.Bot,
	})
	if err != nil {
		c.fail(ctx, "failed to toggle invite", err)
		return
	}

	ctx.JSON(http.StatusOK, toLobbyDTO(lobby))
}

// Confirm подтверждает участие
// @Summary Подтверждение участия
// @Tags Lobbies
// @Produce json
// @Param lobby_id path string true "Идентификатор лобби"
// @Success 200 {object} LobbyResponseDTO
// @Failure 403 {object} http_common.ErrorResponse "Игрок не приглашен"
// @Failure 404 {object} http_common.ErrorResponse "Лобби не найдено"
// @Failure 409 {object} http_common.ErrorResponse "Лобби закрыто"
// @Security UserToken
// @Router /lobbies/{lobby_id}/confirmations [post]
func (c *Controller) confirm(ctx *gin.Context) {
	id, ok := c.lobbyID(ctx)
	if !ok {
		return
	}

	player, _ := http_auth_middleware.Player(ctx)
	lobby, err := c.usecase.Confirm(ctx.Request.Context(), id, player.ID)
	if err != nil {
		c.fail(ctx, "failed to confirm", err)
		return
	}

	ctx.JSON(http.StatusOK, toLobbyDTO(lobby))
}

// Start запускает матч досрочно
// @Summary Ручной старт
// @Tags Lobbies
// @Produce json
// @Param lobby_id path string true "Идентификатор лобби"
// @Success 202 {object} LobbyResponseDTO "Матч запущен"
// @Failure 403 {object} http_common.ErrorResponse "Только автор может запустить матч"
// @Failure 409 {object} http_common.ErrorResponse "Лобби закрыто"
// @Failure 422 {object} http_common.ErrorResponse "Недостаточно подтвержденных игроков"
// @Security UserToken
// @Router /lobbies/{lobby_id}/start [post]
func (c *Controller) start(ctx *gin.Context) {
	id, ok := c.lobbyID(ctx)
	if !ok {
		return
	}

	actor, _ := http_auth_middleware.Player(ctx)
	lobby, err := c.usecase.ManualStart(ctx.Request.Context(), id, actor.ID)
	if err != nil {
		c.fail(ctx, "failed to start match", err)
		return
	}

	ctx.JSON(http.StatusAccepted, toLobbyDTO(lobby))
}

// Cancel отменяет лобби
// @Summary Отмена лобби
// @Tags Lobbies
// @Param lobby_id path string true "Идентификатор лобби"
// @Success 200 {object} LobbyResponseDTO
// @Failure 403 {object} http_common.ErrorResponse "Только автор может отменить лобби"
// @Failure 409 {object} http_common.ErrorResponse "Лобби закрыто"
// @Security UserToken
// @Router /lobbies/{lobby_id} [delete]
func (c *Controller) cancel(ctx *gin.Context) {
	id, ok := c.lobbyID(ctx)
	if !ok {
		return
	}

	actor, _ := http_auth_middleware.Player(ctx)
	lobby, err := c.usecase.Cancel(ctx.Request.Context(), id, actor.ID)
	if err != nil {
		c.fail(ctx, "failed to cancel lobby", err)
		return
	}

	ctx.JSON(http.StatusOK, toLobbyDTO(lobby))
}

func (c *Controller) lobbyID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("lobby_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid lobby id",
		})
		return uuid.Nil, false
	}
	return id, true
}

func (c *Controller) fail(ctx *gin.Context, msg string, err error) {
	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, usecase_lobby.ErrResourceNotFound):
		status, message = http.StatusNotFound, "not found"
	case errors.Is(err, usecase_lobby.ErrNotAuthor),
		errors.Is(err, usecase_lobby.ErrNotInvited),
		errors.Is(err, usecase_lobby.ErrBanned):
		status, message = http.StatusForbidden, err.Error()
	case errors.Is(err, usecase_lobby.ErrLobbyClosed),
		errors.Is(err, usecase_lobby.ErrLobbyExists):
		status, message = http.StatusConflict, err.Error()
	case errors.Is(err, usecase_lobby.ErrNotEnoughPlayers):
		status, message = http.StatusUnprocessableEntity, err.Error()
	}

	if status == http.StatusInternalServerError {
		c.logger.Error(msg, slog.String("error", err.Error()))
	} else {
		c.logger.Warn(msg, slog.String("error", err.Error()))
	}
	ctx.JSON(status, http_common.ErrorResponse{Message: message})
}
