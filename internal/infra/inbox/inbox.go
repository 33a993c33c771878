package infra_inbox

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/humanbelnik/wordchain/internal/model"
	usecase_match "github.com/humanbelnik/wordchain/internal/usecase/match"
)

type waiterKey struct {
	channelID model.ChannelID
	author    model.PlayerID
}

// Inbox routes channel messages to the match waiting on their author.
// Nothing is buffered: a message nobody waits for is dropped.
type Inbox struct {
	mu      sync.Mutex
	waiters map[waiterKey]chan model.Message
}

func New() *Inbox {
	return &Inbox{
		waiters: make(map[waiterKey]chan model.Message),
	}
}

// Deliver reports whether a waiting turn took the message.
func (i *Inbox) Deliver(msg model.Message) bool {
	if strings.TrimSpace(msg.Text) == "" {
		return false
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	waiter, ok := i.waiters[waiterKey{channelID: msg.ChannelID, author: msg.Author}]
	if !ok {
		return false
	}

	select {
	case waiter <- msg:
		return true
	default:
		return false
	}
}

func (i *Inbox) NextQualifyingMessage(
	ctx context.Context,
	channelID model.ChannelID,
	author model.PlayerID,
	deadline time.Time,
) (model.Message, error) {
	wait := time.Until(deadline)
	if wait <= 0 {
		return model.Message{}, usecase_match.ErrTimeout
	}

	key := waiterKey{channelID: channelID, author: author}
	waiter := make(chan model.Message, 1)

	i.mu.Lock()
	i.waiters[key] = waiter
	i.mu.Unlock()

	defer func() {
		i.mu.Lock()
		if i.waiters[key] == waiter {
			delete(i.waiters, key)
		}
		i.mu.Unlock()
	}()

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case msg := <-waiter:
		return msg, nil
	case <-timer.C:
		return model.Message{}, usecase_match.ErrTimeout
	case <-ctx.Done():
		return model.Message{}, ctx.Err()
	}
}

func (i *Inbox) Waiting(channelID model.ChannelID, author model.PlayerID) bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	_, ok := i.waiters[waiterKey{channelID: channelID, author: author}]
	return ok
}
