package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

const tokenHeader = "X-user-token"

type Event struct {
	Type      string         `json:"type"`
	ID        string         `json:"id"`
	ChannelID string         `json:"channel_id"`
	Text      string         `json:"text"`
	Target    string         `json:"target"`
	Payload   map[string]any `json:"payload"`
}

type Lobby struct {
	ID        string   `json:"id"`
	State     string   `json:"state"`
	Confirmed []string `json:"confirmed"`
	Deadline  int64    `json:"deadline"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

type Client struct {
	baseURL    string
	token      string
	playerID   string
	channel    string
	lobbyID    string
	httpClient *http.Client
	wsConn     *websocket.Conn
	wsDone     chan struct{}
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) makeRequest(method, path string, in any, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set(tokenHeader, c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var e ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return fmt.Errorf("%d %s", resp.StatusCode, e.Message)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) Auth(code, playerID, name string) error {
	raw, _ := json.Marshal(map[string]string{"code": code, "player_id": playerID, "name": name})
	resp, err := c.httpClient.Post(c.baseURL+"/auth", "application/json", bytes.NewReader(raw))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("auth returned %d", resp.StatusCode)
	}
	c.token = resp.Header.Get(tokenHeader)
	c.playerID = playerID
	return nil
}

func (c *Client) Join(channel string) error {
	if c.wsConn != nil {
		c.Close()
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return err
	}
	scheme := "ws"
	if u.Scheme == "https" {
		scheme = "wss"
	}
	wsURL := fmt.Sprintf("%s://%s%s/channels/%s/ws?token=%s", scheme, u.Host, u.Path, url.PathEscape(channel), url.QueryEscape(c.token))

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		return err
	}

	c.channel = channel
	c.wsConn = conn
	c.wsDone = make(chan struct{})
	go c.listenWebSocket()
	return nil
}

func (c *Client) listenWebSocket() {
	defer close(c.wsDone)

	for {
		_, raw, err := c.wsConn.ReadMessage()
		if err != nil {
			return
		}

		var event Event
		if err := json.Unmarshal(raw, &event); err != nil {
			continue
		}
		c.render(event)
	}
}

func (c *Client) render(e Event) {
	switch e.Type {
	case "CHAT":
		fmt.Printf("<%v> %s\n", e.Payload["author_name"], e.Text)
	case "REACTION":
		fmt.Printf("   %s\n", e.Text)
	case "MESSAGE_DELETED":
	case "LOBBY_OPENED":
		if id, ok := e.Payload["lobby_id"].(string); ok {
			c.lobbyID = id
		}
		fmt.Printf("* %s\n", e.Text)
	case "TURN":
		if e.Payload["player"] == c.playerID {
			fmt.Printf(">>> %s\n", e.Text)
			return
		}
		fmt.Printf("* %s\n", e.Text)
	default:
		fmt.Printf("* [%s] %s\n", e.Type, e.Text)
	}
}

func (c *Client) Send(text string) error {
	return c.wsConn.WriteJSON(map[string]string{"text": text})
}

func (c *Client) Open() error {
	var l Lobby
	if err := c.makeRequest(http.MethodPost, "/channels/"+c.channel+"/lobbies", nil, &l); err != nil {
		return err
	}
	c.lobbyID = l.ID
	return nil
}

func (c *Client) Invite(playerID, name string) error {
	return c.makeRequest(http.MethodPost, "/lobbies/"+c.lobbyID+"/invitations",
		map[string]string{"id": playerID, "name": name}, nil)
}

func (c *Client) Confirm() error {
	if c.lobbyID == "" {
		var l Lobby
		if err := c.makeRequest(http.MethodGet, "/channels/"+c.channel+"/lobby", nil, &l); err != nil {
			return err
		}
		c.lobbyID = l.ID
	}
	return c.makeRequest(http.MethodPost, "/lobbies/"+c.lobbyID+"/confirmations", nil, nil)
}

func (c *Client) Start() error {
	return c.makeRequest(http.MethodPost, "/lobbies/"+c.lobbyID+"/start", nil, nil)
}

func (c *Client) Cancel() error {
	return c.makeRequest(http.MethodDelete, "/lobbies/"+c.lobbyID, nil, nil)
}

func (c *Client) Close() {
	if c.wsConn != nil {
		_ = c.wsConn.Close()
		<-c.wsDone
		c.wsConn = nil
	}
}

func (c *Client) handle(line string) error {
	if !strings.HasPrefix(line, "/") {
		return c.Send(line)
	}

	fields := strings.Fields(line)
	switch fields[0] {
	case "/join":
		if len(fields) != 2 {
			return fmt.Errorf("usage: /join <channel>")
		}
		return c.Join(fields[1])
	case "/open":
		return c.Open()
	case "/invite":
		if len(fields) < 2 {
			return fmt.Errorf("usage: /invite <player_id> [name]")
		}
		name := fields[1]
		if len(fields) > 2 {
			name = strings.Join(fields[2:], " ")
		}
		return c.Invite(fields[1], name)
	case "/confirm":
		return c.Confirm()
	case "/start":
		return c.Start()
	case "/cancel":
		return c.Cancel()
	case "/quit":
		c.Close()
		os.Exit(0)
	}
	return fmt.Errorf("unknown command %s", fields[0])
}

func main() {
	baseURL := "http://localhost:8080/api/v1"
	if v := os.Getenv("WORDCHAIN_URL"); v != "" {
		baseURL = v
	}
	code := os.Getenv("GATEWAY_SECRET")
	if code == "" {
		code = "shared"
	}

	scanner := bufio.NewScanner(os.Stdin)
	prompt := func(label string) string {
		fmt.Print(label)
		scanner.Scan()
		return strings.TrimSpace(scanner.Text())
	}

	client := NewClient(baseURL)
	defer client.Close()

	playerID := prompt("player id: ")
	name := prompt("name: ")
	if err := client.Auth(code, playerID, name); err != nil {
		fmt.Println("auth failed:", err)
		os.Exit(1)
	}
	if err := client.Join(prompt("channel: ")); err != nil {
		fmt.Println("join failed:", err)
		os.Exit(1)
	}

	fmt.Println("commands: /open /invite <id> [name] /confirm /start /cancel /join <channel> /quit")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := client.handle(line); err != nil {
			fmt.Println("!", err)
		}
	}
}
