// Package xp holds the experience ledger and the level formula.
package xp

import "fmt"

// LevelStep is the XP span of one level: level = floor(xp/step) + 1.
const LevelStep = 1000

// Ledger tracks spendable and lifetime experience. Level is always derived
// from XP; the persisted copy of Level exists only for fast boot-time render.
type Ledger struct {
	XP            int `json:"xp"`
	Level         int `json:"level"`
	TotalXPGained int `json:"total_xp_gained"`
}

// NewLedger returns the documented default state.
func NewLedger() Ledger {
	return Ledger{XP: 0, Level: 1, TotalXPGained: 0}
}

// LevelForXP implements the consolidated level formula.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/LevelStep + 1
}

// Apply adds a non-negative XP delta and rederives the level. A negative
// delta is a contract violation: XP is never deducted.
func Apply(l Ledger, delta int) (Ledger, error) {
	if delta < 0 {
		return l, fmt.Errorf("xp: negative delta %d", delta)
	}
	l.XP += delta
	l.TotalXPGained += delta
	l.Level = LevelForXP(l.XP)
	return l, nil
}

// Normalize repairs a ledger loaded from the store: negative values fall back
// to defaults and the level is rederived from XP.
func Normalize(l Ledger) Ledger {
	if l.XP < 0 {
		l.XP = 0
	}
	if l.TotalXPGained < l.XP {
		l.TotalXPGained = l.XP
	}
	l.Level = LevelForXP(l.XP)
	return l
}

// ToNextLevel returns the XP still needed for the next level.
func ToNextLevel(l Ledger) int {
	return l.Level*LevelStep - l.XP
}

// LevelProgressPercent returns progress through the current level, 0..100.
func LevelProgressPercent(l Ledger) float64 {
	base := (l.Level - 1) * LevelStep
	p := float64(l.XP-base) / float64(LevelStep) * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// RankTitle maps a level to the scholar rank ladder shown in the profile.
func RankTitle(level int) string {
	switch {
	case level >= 50:
		return "Legendary Scholar"
	case level >= 30:
		return "Master Librarian"
	case level >= 20:
		return "Expert Reader"
	case level >= 10:
		return "Advanced Learner"
	case level >= 5:
		return "Apprentice Scholar"
	default:
		return "Novice Reader"
	}
}
