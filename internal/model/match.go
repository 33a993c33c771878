package model

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

type Phase = string

const (
	PhaseRunning  Phase = "RUNNING"
	PhaseFinished Phase = "FINISHED"
)

type EliminationReason = string

const (
	ReasonTimeout EliminationReason = "TIMEOUT"
	ReasonRepeat  EliminationReason = "REPEAT"
	ReasonError   EliminationReason = "ERROR"
)

type Elimination struct {
	Player PlayerID
	Reason EliminationReason
	Word   string
	At     time.Time
}

type PlayerStats struct {
	Player Player
	Start  time.Time
	End    *time.Time
	Words  []string
}

// Survival is zero while End is unset.
func (s PlayerStats) Survival() time.Duration {
	if s.End == nil {
		return 0
	}
	return s.End.Sub(s.Start)
}

func (s PlayerStats) ValidWords() int {
	return len(s.Words)
}

func (s PlayerStats) Shortest() string {
	var shortest string
	for _, w := range s.Words {
		if shortest == "" || utf8.RuneCountInString(w) < utf8.RuneCountInString(shortest) {
			shortest = w
		}
	}
	return shortest
}

func (s PlayerStats) Longest() string {
	var longest string
	for _, w := range s.Words {
		if utf8.RuneCountInString(w) > utf8.RuneCountInString(longest) {
			longest = w
		}
	}
	return longest
}

type Summary struct {
	MatchID      uuid.UUID
	ChannelID    ChannelID
	Winner       Player
	TotalWords   int
	StartedAt    time.Time
	EndedAt      time.Time
	Ranking      []PlayerStats
	Eliminations []Elimination
}

func (s Summary) Duration() time.Duration {
	return s.EndedAt.Sub(s.StartedAt)
}
