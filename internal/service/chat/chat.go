package service_chat

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/humanbelnik/wordchain/internal/model"
)

const maxMessageLen = 2000

var (
	ErrEmptyMessage = errors.New("empty message")
	ErrTooLong      = errors.New("message too long")
)

//go:generate mockery --name=Announcer --output=./mocks/announcer --filename=announcer.go
type Announcer interface {
	Announce(channelID model.ChannelID, a model.Announcement) model.MessageID
}

//go:generate mockery --name=Inbox --output=./mocks/inbox --filename=inbox.go
type Inbox interface {
	Deliver(msg model.Message) bool
}

// Service is the entry point of player chat lines: every line is shown in
// the channel and offered to the match waiting on its author.
type Service struct {
	announcer Announcer
	inbox     Inbox
}

func New(announcer Announcer, inbox Inbox) *Service {
	return &Service{
		announcer: announcer,
		inbox:     inbox,
	}
}

// Post reports whether a running turn took the message.
func (s *Service) Post(channelID model.ChannelID, author model.Player, text string) (model.Message, bool, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Message{}, false, ErrEmptyMessage
	}
	if utf8.RuneCountInString(text) > maxMessageLen {
		return model.Message{}, false, ErrTooLong
	}

	id := s.announcer.Announce(channelID, model.Announcement{
		Kind: model.KindChat,
		Text: text,
		Payload: map[string]any{
			"author":      author.ID,
			"author_name": author.Name,
		},
	})

	msg := model.Message{
		ID:        id,
		ChannelID: channelID,
		Author:    author.ID,
		Text:      text,
	}
	return msg, s.inbox.Deliver(msg), nil
}
