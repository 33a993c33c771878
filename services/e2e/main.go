package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

func baseURL() string {
	env := os.Getenv("ENV")
	switch env {
	case "CI":
		return "http://core-app:8080/api/v1"
	}
	return "http://localhost:8080/api/v1"
}

const (
	gatewayCode = "shared"
	channel     = "e2e"
	tokenHeader = "X-user-token"
)

type AuthRequest struct {
	Code     string `json:"code"`
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
}

type PlayerRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Lobby struct {
	ID        string   `json:"id"`
	State     string   `json:"state"`
	Confirmed []string `json:"confirmed"`
}

type MatchStatus struct {
	Running bool `json:"running"`
}

func main() {
	fmt.Println("Starting E2E tests for Wordchain API...")

	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	if !waitForService(client) {
		os.Exit(1)
	}

	alice, err := authenticate(client, "e2e-alice", "Alice")
	exitOn("Authentication failed", err)
	bob, err := authenticate(client, "e2e-bob", "Bob")
	exitOn("Authentication failed", err)
	fmt.Println("Authenticated both players")

	var lobby Lobby
	exitOn("Open lobby failed", call(client, http.MethodPost, "/channels/"+channel+"/lobbies", alice, nil, http.StatusCreated, &lobby))
	fmt.Printf("Lobby opened. ID: %s\n", lobby.ID)

	exitOn("Invite failed", call(client, http.MethodPost, "/lobbies/"+lobby.ID+"/invitations", alice,
		PlayerRequest{ID: "e2e-bob", Name: "Bob"}, http.StatusOK, &lobby))
	exitOn("Confirm failed", call(client, http.MethodPost, "/lobbies/"+lobby.ID+"/confirmations", bob, nil, http.StatusOK, &lobby))
	fmt.Printf("Confirmed players: %v\n", lobby.Confirmed)

	exitOn("Start failed", call(client, http.MethodPost, "/lobbies/"+lobby.ID+"/start", alice, nil, http.StatusAccepted, &lobby))
	fmt.Printf("Lobby state: %s\n", lobby.State)

	var status MatchStatus
	exitOn("Match status failed", call(client, http.MethodGet, "/channels/"+channel+"/match", "", nil, http.StatusOK, &status))
	if !status.Running {
		exitOn("Match status failed", fmt.Errorf("match is not running"))
	}

	exitOn("Abort failed", call(client, http.MethodDelete, "/channels/"+channel+"/match", alice, nil, http.StatusNoContent, nil))
	fmt.Println("Match aborted")

	fmt.Println("\n All E2E tests passed!")
}

func exitOn(step string, err error) {
	if err != nil {
		fmt.Printf("%s: %v\n", step, err)
		os.Exit(1)
	}
}

func waitForService(client *http.Client) bool {
	fmt.Println(" Waiting for service to be ready...")

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		resp, err := client.Get(baseURL() + "/channels/" + channel + "/match")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				fmt.Println(" Service is ready!")
				return true
			}
		}

		if i < maxRetries-1 {
			fmt.Printf(" Service not ready yet (attempt %d/%d)...\n", i+1, maxRetries)
			time.Sleep(2 * time.Second)
		}
	}

	fmt.Println(" Service didn't start in time")
	return false
}

func authenticate(client *http.Client, playerID, name string) (string, error) {
	body, err := json.Marshal(AuthRequest{Code: gatewayCode, PlayerID: playerID, Name: name})
	if err != nil {
		return "", fmt.Errorf("failed to marshal auth request: %v", err)
	}

	resp, err := client.Post(baseURL()+"/auth", "application/json", bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("auth request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("auth returned status %d: %s", resp.StatusCode, string(body))
	}

	token := resp.Header.Get(tokenHeader)
	if token == "" {
		return "", fmt.Errorf("player token not found in response headers")
	}
	return token, nil
}

func call(client *http.Client, method, path, token string, in any, wantStatus int, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, baseURL()+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(tokenHeader, token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%s %s returned status %d: %s", method, path, resp.StatusCode, string(raw))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
