package model

type AnnouncementKind = string

const (
	KindLobbyOpened    AnnouncementKind = "LOBBY_OPENED"
	KindLobbyUpdate    AnnouncementKind = "LOBBY_UPDATE"
	KindLobbyCancelled AnnouncementKind = "LOBBY_CANCELLED"
	KindLobbyStarted   AnnouncementKind = "LOBBY_STARTED"
	KindNotice         AnnouncementKind = "NOTICE"

	KindChat           AnnouncementKind = "CHAT"
	KindMatchCountdown AnnouncementKind = "MATCH_COUNTDOWN"
	KindTurn           AnnouncementKind = "TURN"
	KindEliminated     AnnouncementKind = "ELIMINATED"
	KindMatchFinished  AnnouncementKind = "MATCH_FINISHED"
	KindMatchAborted   AnnouncementKind = "MATCH_ABORTED"
)

// Announcement is a channel-wide notification. A non-empty Target narrows it
// down to a single player.
type Announcement struct {
	ID      MessageID
	Kind    AnnouncementKind
	Text    string
	Target  PlayerID
	Payload map[string]any
}
