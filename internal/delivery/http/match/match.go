package http_match

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/humanbelnik/wordchain/internal/delivery/http/common"
	http_auth_middleware "github.com/humanbelnik/wordchain/internal/delivery/http/middleware/auth"
	"github.com/humanbelnik/wordchain/internal/model"
	usecase_match "github.com/humanbelnik/wordchain/internal/usecase/match"
)

const maxHistoryLimit = 100

type Controller struct {
	usecase        *usecase_match.Usecase
	authMiddleware *http_auth_middleware.Middleware
	logger         *slog.Logger
}

func New(
	usecase *usecase_match.Usecase,
	authMiddleware *http_auth_middleware.Middleware,
) *Controller {
	return &Controller{
		usecase:        usecase,
		authMiddleware: authMiddleware,
		logger:         slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/matches/:match_id", c.summary)
	router.GET("/players/:player_id/matches", c.playerHistory)

	channels := router.Group("/channels/:channel_id/match")
	{
		channels.GET("", c.status)
		channels.DELETE("", c.authMiddleware.AuthRequired(), c.abort)
	}
}

type PlayerStatsDTO struct {
	PlayerID   string   `json:"player_id"`
	Name       string   `json:"name"`
	SurvivalMs int64    `json:"survival_ms"`
	ValidWords int      `json:"valid_words"`
	Shortest   string   `json:"shortest,omitempty"`
	Longest    string   `json:"longest,omitempty"`
	Words      []string `json:"words"`
}

type EliminationDTO struct {
	PlayerID string `json:"player_id"`
	Reason   string `json:"reason"`
	Word     string `json:"word,omitempty"`
	At       int64  `json:"at"`
}

type SummaryResponseDTO struct {
	MatchID      string           `json:"match_id"`
	ChannelID    string           `json:"channel_id"`
	WinnerID     string           `json:"winner_id"`
	WinnerName   string           `json:"winner_name"`
	TotalWords   int              `json:"total_words"`
	StartedAt    int64            `json:"started_at"`
	DurationMs   int64            `json:"duration_ms"`
	Ranking      []PlayerStatsDTO `json:"ranking"`
	Eliminations []EliminationDTO `json:"eliminations"`
}

type StatusResponseDTO struct {
	Running bool `json:"running"`
}

func toSummaryDTO(s model.Summary) SummaryResponseDTO {
	ranking := make([]PlayerStatsDTO, 0, len(s.Ranking))
	for _, ps := range s.Ranking {
		words := ps.Words
		if words == nil {
			words = []string{}
		}
		ranking = append(ranking, PlayerStatsDTO{
			PlayerID:   string(ps.Player.ID),
			Name:       ps.Player.Name,
			SurvivalMs: ps.Survival().Milliseconds(),
			ValidWords: ps.ValidWords(),
			Shortest:   ps.Shortest(),
			Longest:    ps.Longest(),
			Words:      words,
		})
	}

	eliminations := make([]EliminationDTO, 0, len(s.Eliminations))
	for _, e := range s.Eliminations {
		eliminations = append(eliminations, EliminationDTO{
			PlayerID: string(e.Player),
			Reason:   e.Reason,
			Word:     e.Word,
			At:       e.At.Unix(),
		})
	}

	return SummaryResponseDTO{
		MatchID:      s.MatchID.String(),
		ChannelID:    string(s.ChannelID),
		WinnerID:     string(s.Winner.ID),
		WinnerName:   s.Winner.Name,
		TotalWords:   s.TotalWords,
		StartedAt:    s.StartedAt.Unix(),
		DurationMs:   s.Duration().Milliseconds(),
		Ranking:      ranking,
		Eliminations: eliminations,
	}
}

// Summary возвращает итоги матча
// @Summary Итоги матча
// @Tags Matches
// @Produce json
// @Param match_id path string true "Идентификатор матча"
// @Success 200 {object} SummaryResponseDTO
// @Failure 400 {object} http_common.ErrorResponse "Неверный идентификатор"
// @Failure 404 {object} http_common.ErrorResponse "Матч не найден"
// @Failure 500 {object} http_common.ErrorResponse "Внутренняя ошибка сервера"
// @Router /matches/{match_id} [get]
func (c *Controller) summary(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("match_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid match id",
		})
		return
	}

	summary, err := c.usecase.Summary(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase_match.ErrResourceNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "not found",
			})
			return
		}
		c.logger.Error("failed to get summary", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.JSON(http.StatusOK, toSummaryDTO(summary))
}

// PlayerHistory возвращает последние матчи игрока
// @Summary История игрока
// @Tags Matches
// @Produce json
// @Param player_id path string true "Идентификатор игрока"
// @Param limit query int false "Количество матчей"
// @Success 200 {array} SummaryResponseDTO
// @Failure 400 {object} http_common.ErrorResponse "Неверный лимит"
// @Failure 500 {object} http_common.ErrorResponse "Внутренняя ошибка сервера"
// @Router /players/{player_id}/matches [get]
func (c *Controller) playerHistory(ctx *gin.Context) {
	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > maxHistoryLimit {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: "invalid limit",
			})
			return
		}
		limit = n
	}

	summaries, err := c.usecase.PlayerHistory(ctx.Request.Context(), model.PlayerID(ctx.Param("player_id")), limit)
	if err != nil {
		c.logger.Error("failed to get player history", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	out := make([]SummaryResponseDTO, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, toSummaryDTO(s))
	}
	ctx.JSON(http.StatusOK, out)
}

// Status сообщает, идет ли матч в канале
// @Summary Статус матча в канале
// @Tags Matches
// @Produce json
// @Param channel_id path string true "Идентификатор канала"
// @Success 200 {object} StatusResponseDTO
// @Router /channels/{channel_id}/match [get]
func (c *Controller) status(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, StatusResponseDTO{
		Running: c.usecase.Running(model.ChannelID(ctx.Param("channel_id"))),
	})
}

// Abort прерывает матч при удалении канала
// @Summary Прерывание матча
// @Tags Matches
// @Param channel_id path string true "Идентификатор канала"
// @Success 204
// @Failure 401 {object} http_common.ErrorResponse "Не авторизован"
// @Failure 404 {object} http_common.ErrorResponse "Матч не идет"
// @Security UserToken
// @Router /channels/{channel_id}/match [delete]
func (c *Controller) abort(ctx *gin.Context) {
	channelID := model.ChannelID(ctx.Param("channel_id"))

	if err := c.usecase.Abort(channelID); err != nil {
		if errors.Is(err, usecase_match.ErrResourceNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "no running match",
			})
			return
		}
		c.logger.Error("failed to abort match", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	actor, _ := http_auth_middleware.Player(ctx)
	c.logger.Info("match aborted on request",
		slog.String("channel", string(channelID)),
		slog.String("actor", string(actor.ID)))
	ctx.Status(http.StatusNoContent)
}
