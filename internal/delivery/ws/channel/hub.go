package ws_channel

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/humanbelnik/wordchain/internal/model"
)

const (
	EventReaction       = "REACTION"
	EventMessageDeleted = "MESSAGE_DELETED"

	sendBuffer = 64
)

// Event is the frame pushed to websocket subscribers. Announcement kinds are
// used as event types as is.
type Event struct {
	Type      string         `json:"type"`
	ID        string         `json:"id"`
	ChannelID string         `json:"channel_id"`
	Text      string         `json:"text,omitempty"`
	Target    string         `json:"target,omitempty"`
	Payload   map[string]any `json:"payload,omitempty"`
	At        int64          `json:"at"`
}

type Client struct {
	hub       *Hub
	conn      *websocket.Conn
	send      chan []byte
	channelID model.ChannelID
	player    model.Player
}

type Hub struct {
	logger     *slog.Logger
	channels   map[model.ChannelID]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	now        func() time.Time
	mu         sync.RWMutex
}

type HubOption func(*Hub)

func WithLogger(logger *slog.Logger) HubOption {
	return func(h *Hub) {
		h.logger = logger
	}
}

func NewHub(opts ...HubOption) *Hub {
	h := &Hub{
		logger:     slog.Default(),
		channels:   make(map[model.ChannelID]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.handleRegister(client)

		case client := <-h.unregister:
			h.handleUnregister(client)

		case <-h.done:
			h.closeAll()
			return
		}
	}
}

func (h *Hub) Stop() {
	close(h.done)
}

func (h *Hub) handleRegister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.channels[client.channelID]; !exists {
		h.channels[client.channelID] = make(map[*Client]bool)
	}
	h.channels[client.channelID][client] = true

	h.logger.Info("client registered",
		slog.String("channel", string(client.channelID)),
		slog.String("player", string(client.player.ID)))
}

func (h *Hub) handleUnregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeLocked(client)

	h.logger.Info("client unregistered",
		slog.String("channel", string(client.channelID)),
		slog.String("player", string(client.player.ID)))
}

func (h *Hub) removeLocked(client *Client) {
	clients, ok := h.channels[client.channelID]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}

	delete(clients, client)
	close(client.send)
	if len(clients) == 0 {
		delete(h.channels, client.channelID)
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, clients := range h.channels {
		for client := range clients {
			h.removeLocked(client)
		}
	}
}

// Announce pushes a to every subscriber of the channel, or only to the
// target's connections when a.Target is set.
func (h *Hub) Announce(channelID model.ChannelID, a model.Announcement) model.MessageID {
	id := a.ID
	if id == "" {
		id = model.MessageID(uuid.NewString())
	}

	h.broadcast(channelID, Event{
		Type:      a.Kind,
		ID:        string(id),
		ChannelID: string(channelID),
		Text:      a.Text,
		Target:    string(a.Target),
		Payload:   a.Payload,
		At:        h.now().Unix(),
	}, a.Target)
	return id
}

func (h *Hub) React(channelID model.ChannelID, messageID model.MessageID, emoji string) {
	h.broadcast(channelID, Event{
		Type:      EventReaction,
		ID:        string(messageID),
		ChannelID: string(channelID),
		Text:      emoji,
		At:        h.now().Unix(),
	}, model.EmptyPlayerID)
}

func (h *Hub) DeleteMessage(channelID model.ChannelID, messageID model.MessageID) {
	h.broadcast(channelID, Event{
		Type:      EventMessageDeleted,
		ID:        string(messageID),
		ChannelID: string(channelID),
		At:        h.now().Unix(),
	}, model.EmptyPlayerID)
}

// Subscribers counts live connections of a channel.
func (h *Hub) Subscribers(channelID model.ChannelID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.channels[channelID])
}

func (h *Hub) broadcast(channelID model.ChannelID, event Event, target model.PlayerID) {
	raw, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to encode event", slog.String("type", event.Type), slog.String("error", err.Error()))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.channels[channelID] {
		if target != model.EmptyPlayerID && client.player.ID != target {
			continue
		}
		select {
		case client.send <- raw:
		default:
			h.logger.Warn("slow client dropped",
				slog.String("channel", string(channelID)),
				slog.String("player", string(client.player.ID)))
			h.removeLocked(client)
		}
	}
}
