package usecase_match

import "time"

type TierName = string

const (
	TierNormal      TierName = "NORMAL"
	TierReduced     TierName = "REDUCED"
	TierSuddenDeath TierName = "SUDDEN_DEATH"
)

type Tier struct {
	Name  TierName
	Limit time.Duration
}

// Tiers maps the cumulative valid-word count onto a turn time budget.
// Older deployments used 70/120 as thresholds, newer ones 50/100.
type Tiers struct {
	LowThreshold  int
	HighThreshold int

	Normal      time.Duration
	Reduced     time.Duration
	SuddenDeath time.Duration
}

func DefaultTiers() Tiers {
	return Tiers{
		LowThreshold:  50,
		HighThreshold: 100,
		Normal:        60 * time.Second,
		Reduced:       30 * time.Second,
		SuddenDeath:   15 * time.Second,
	}
}

func (t Tiers) Tier(validWords int) Tier {
	switch {
	case validWords <= t.LowThreshold:
		return Tier{Name: TierNormal, Limit: t.Normal}
	case validWords <= t.HighThreshold:
		return Tier{Name: TierReduced, Limit: t.Reduced}
	default:
		return Tier{Name: TierSuddenDeath, Limit: t.SuddenDeath}
	}
}

func (t Tiers) Valid() bool {
	return t.LowThreshold >= 0 &&
		t.LowThreshold <= t.HighThreshold &&
		t.SuddenDeath > 0 &&
		t.SuddenDeath <= t.Reduced &&
		t.Reduced <= t.Normal
}
