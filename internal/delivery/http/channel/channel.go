package http_channel

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/wordchain/internal/delivery/http/common"
	http_auth_middleware "github.com/humanbelnik/wordchain/internal/delivery/http/middleware/auth"
	"github.com/humanbelnik/wordchain/internal/model"
	service_chat "github.com/humanbelnik/wordchain/internal/service/chat"
)

type Controller struct {
	chat           *service_chat.Service
	authMiddleware *http_auth_middleware.Middleware
	logger         *slog.Logger
}

func New(
	chat *service_chat.Service,
	authMiddleware *http_auth_middleware.Middleware,
) *Controller {
	return &Controller{
		chat:           chat,
		authMiddleware: authMiddleware,
		logger:         slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/channels/:channel_id/messages", c.authMiddleware.AuthRequired(), c.post)
}

type PostRequestDTO struct {
	Text string `json:"text" binding:"required" example:"casa"`
}

type PostResponseDTO struct {
	MessageID string `json:"message_id"`
	Taken     bool   `json:"taken"`
}

// Post отправляет сообщение в канал
// @Summary Сообщение в канал
// @Description Сообщение показывается в канале и передается матчу, если сейчас ход автора
// @Tags Channels
// @Accept json
// @Produce json
// @Param channel_id path string true "Идентификатор канала"
// @Param request body PostRequestDTO true "Текст сообщения"
// @Success 201 {object} PostResponseDTO
// @Failure 400 {object} http_common.ErrorResponse "Неверный формат запроса"
// @Failure 401 {object} http_common.ErrorResponse "Не авторизован"
// @Security UserToken
// @Router /channels/{channel_id}/messages [post]
func (c *Controller) post(ctx *gin.Context) {
	var req PostRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request format", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "Invalid request format",
		})
		return
	}

	author, _ := http_auth_middleware.Player(ctx)
	msg, taken, err := c.chat.Post(model.ChannelID(ctx.Param("channel_id")), author, req.Text)
	if err != nil {
		if errors.Is(err, service_chat.ErrEmptyMessage) || errors.Is(err, service_chat.ErrTooLong) {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: err.Error(),
			})
			return
		}
		c.logger.Error("failed to post message", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.JSON(http.StatusCreated, PostResponseDTO{
		MessageID: string(msg.ID),
		Taken:     taken,
	})
}
