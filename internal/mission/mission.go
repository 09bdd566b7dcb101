// Package mission defines the mission catalog and the tracker that converts
// completion counters into mission progress and one-time XP rewards.
package mission

import (
	"fmt"
	"time"
)

type Type string

const (
	TypeDaily       Type = "daily"
	TypeWeekly      Type = "weekly"
	TypeMonthly     Type = "monthly"
	TypeAchievement Type = "achievement"
	TypeSpecial     Type = "special"
)

// IsRecurring reports whether completion is scoped to a calendar period.
func (t Type) IsRecurring() bool {
	switch t {
	case TypeDaily, TypeWeekly, TypeMonthly:
		return true
	default:
		return false
	}
}

type Category string

const (
	CategoryProductivity Category = "productivity"
	CategoryConsistency  Category = "consistency"
	CategoryMastery      Category = "mastery"
	CategoryExploration  Category = "exploration"
	CategoryMilestone    Category = "milestone"
)

// Mission is a catalog definition. Pure data: progress and completion are
// derived by the tracker, never stored on the definition.
type Mission struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	XPReward    int      `json:"xp_reward"`
	Type        Type     `json:"type"`
	Category    Category `json:"category"`
	Requirement int      `json:"requirement"`
	Color       string   `json:"color"`

	// MinLevel gates visibility. Missions below the player's level are
	// excluded from evaluation entirely.
	MinLevel int `json:"min_level,omitempty"`
}

// State is the persisted per-mission completion record. Recurring missions
// store the period key they were last completed in; achievement and special
// missions store a permanent flag.
type State struct {
	CompletedPeriod string `json:"completed_period,omitempty"`
	Completed       bool   `json:"completed,omitempty"`
}

// StateMap is keyed by mission id. Missing entries mean "never completed".
type StateMap map[string]State

// View is a catalog entry projected against current counters.
type View struct {
	Mission
	Progress  int  `json:"progress"`
	Completed bool `json:"completed"`
}

// PeriodKey identifies the current validity period for a mission type.
// Non-recurring types have a single permanent period, keyed "".
func PeriodKey(t Type, now time.Time) string {
	switch t {
	case TypeDaily:
		return now.Format("2006-01-02")
	case TypeWeekly:
		year, week := now.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case TypeMonthly:
		return now.Format("2006-01")
	default:
		return ""
	}
}
