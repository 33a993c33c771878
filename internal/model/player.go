package model

type PlayerID string

const EmptyPlayerID PlayerID = ""

type ChannelID string

type MessageID string

type Player struct {
	ID   PlayerID
	Name string
	Bot  bool
}

// Message is a chat line delivered into a channel by a player.
type Message struct {
	ID        MessageID
	ChannelID ChannelID
	Author    PlayerID
	Text      string
}
