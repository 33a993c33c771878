package model

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

type LobbyState = string

const (
	LobbyOpen      LobbyState = "OPEN"
	LobbyStarted   LobbyState = "STARTED"
	LobbyCancelled LobbyState = "CANCELLED"
)

const (
	MaxInvited      = 25
	MinMatchPlayers = 2
)

type Lobby struct {
	ID        uuid.UUID
	ChannelID ChannelID
	Author    Player

	// Author is always Invited[0]
	Invited   []Player
	Confirmed []PlayerID

	CreatedAt time.Time
	Deadline  time.Time
	State     LobbyState
}

func (l Lobby) IsInvited(id PlayerID) bool {
	return slices.ContainsFunc(l.Invited, func(p Player) bool { return p.ID == id })
}

func (l Lobby) IsConfirmed(id PlayerID) bool {
	return slices.Contains(l.Confirmed, id)
}

// EligiblePlayers is the author plus every confirmed invitee, in invitation
// order. The author never has to confirm.
func (l Lobby) EligiblePlayers() []Player {
	players := make([]Player, 0, len(l.Confirmed)+1)
	for _, p := range l.Invited {
		if p.ID == l.Author.ID || l.IsConfirmed(p.ID) {
			players = append(players, p)
		}
	}
	return players
}
