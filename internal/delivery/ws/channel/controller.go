package ws_channel

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	http_common "github.com/humanbelnik/wordchain/internal/delivery/http/common"
	"github.com/humanbelnik/wordchain/internal/model"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxFrameSize   = 4096
	tokenQueryName = "token"
)

type PlayerResolver interface {
	Resolve(token string) (model.Player, error)
}

type Poster interface {
	Post(channelID model.ChannelID, author model.Player, text string) (model.Message, bool, error)
}

// Controller serves the live feed of a channel. Connections opened with a
// valid token may also post chat lines as text frames.
type Controller struct {
	hub      *Hub
	resolver PlayerResolver
	poster   Poster
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

func NewController(hub *Hub, resolver PlayerResolver, poster Poster) *Controller {
	return &Controller{
		hub:      hub,
		resolver: resolver,
		poster:   poster,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		logger: slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/channels/:channel_id/ws", c.subscribe)
}

type inboundFrame struct {
	Text string `json:"text"`
}

// Subscribe открывает websocket канала
// @Summary Лента канала
// @Description События лобби и матча в реальном времени. С токеном соединение может отправлять сообщения {"text": "..."}
// @Tags Channels
// @Param channel_id path string true "Идентификатор канала"
// @Param token query string false "Токен игрока"
// @Success 101
// @Failure 401 {object} http_common.ErrorResponse "Неверный токен"
// @Router /channels/{channel_id}/ws [get]
func (c *Controller) subscribe(ctx *gin.Context) {
	channelID := model.ChannelID(ctx.Param("channel_id"))

	var player model.Player
	if token := ctx.Query(tokenQueryName); token != "" {
		p, err := c.resolver.Resolve(token)
		if err != nil {
			c.logger.Warn("ws auth failed", slog.String("error", err.Error()))
			ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
				Message: "invalid token",
			})
			return
		}
		player = p
	}

	conn, err := c.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.logger.Error("ws upgrade failed", slog.String("error", err.Error()))
		return
	}

	client := &Client{
		hub:       c.hub,
		conn:      conn,
		send:      make(chan []byte, sendBuffer),
		channelID: channelID,
		player:    player,
	}

	select {
	case c.hub.register <- client:
	case <-c.hub.done:
		_ = conn.Close()
		return
	}

	go c.writePump(client)
	go c.readPump(client)
}

func (c *Controller) readPump(client *Client) {
	defer func() {
		select {
		case c.hub.unregister <- client:
		case <-c.hub.done:
		}
		_ = client.conn.Close()
	}()

	client.conn.SetReadLimit(maxFrameSize)
	_ = client.conn.SetReadDeadline(time.Now().Add(pongWait))
	client.conn.SetPongHandler(func(string) error {
		return client.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := client.conn.ReadMessage()
		if err != nil {
			return
		}
		if client.player.ID == model.EmptyPlayerID {
			continue
		}

		var frame inboundFrame
		if err := json.Unmarshal(raw, &frame); err != nil {
			frame.Text = string(raw)
		}
		if _, _, err := c.poster.Post(client.channelID, client.player, frame.Text); err != nil {
			c.logger.Debug("ws frame rejected", slog.String("error", err.Error()))
		}
	}
}

func (c *Controller) writePump(client *Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = client.conn.Close()
	}()

	for {
		select {
		case message, ok := <-client.send:
			_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = client.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := client.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
