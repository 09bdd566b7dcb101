package mission

import (
	"time"

	"noteflow/internal/progress"
)

// Inputs bundles the signals a tick evaluates against.
type Inputs struct {
	Counters progress.Counters
	Streak   int
	Level    int
	XP       int
}

// Result of one tracker tick. States is the updated persistence map; XPEarned
// is the sum of rewards for missions newly completed in this tick.
type Result struct {
	Missions       []View
	NewlyCompleted []string
	XPEarned       int
	States         StateMap

	// Unmapped lists catalog ids with no progress rule. A non-empty list is
	// a configuration defect, caught by the catalog exhaustiveness test.
	Unmapped []string
}

// Tracker evaluates the catalog against counters and persisted state.
type Tracker struct {
	catalog []Mission
}

func NewTracker(catalog []Mission) *Tracker {
	if catalog == nil {
		catalog = Catalog()
	}
	return &Tracker{catalog: catalog}
}

// Tick recomputes progress for every unlocked mission and flags new
// completions. Reward XP is issued at most once per period for recurring
// missions and once ever for achievement/special missions; the decision is
// made against the persisted state, never the recomputed completion flag.
func (tr *Tracker) Tick(states StateMap, in Inputs, now time.Time) Result {
	res := Result{
		Missions: make([]View, 0, len(tr.catalog)),
		States:   make(StateMap, len(states)),
	}
	for id, st := range states {
		res.States[id] = st
	}

	for _, m := range tr.catalog {
		if in.Level < m.MinLevel {
			// Locked missions are invisible: no progress, no XP.
			continue
		}

		prog, known := progressFor(m.ID, in, now)
		if !known {
			res.Unmapped = append(res.Unmapped, m.ID)
		}
		if prog > m.Requirement {
			prog = m.Requirement
		}
		if prog < 0 {
			prog = 0
		}

		st := res.States[m.ID]
		period := PeriodKey(m.Type, now)

		doneBefore := false
		if m.Type.IsRecurring() {
			doneBefore = st.CompletedPeriod == period && period != ""
		} else {
			doneBefore = st.Completed
		}

		completed := doneBefore || prog >= m.Requirement
		if completed && !doneBefore {
			res.XPEarned += m.XPReward
			res.NewlyCompleted = append(res.NewlyCompleted, m.ID)
			if m.Type.IsRecurring() {
				st.CompletedPeriod = period
			} else {
				st.Completed = true
			}
			res.States[m.ID] = st
		}
		if doneBefore {
			prog = m.Requirement
		}

		res.Missions = append(res.Missions, View{
			Mission:   m,
			Progress:  prog,
			Completed: completed,
		})
	}

	return res
}

// progressFor is the per-mission progress rule. Recurring missions read the
// period-scoped counters; achievements read lifetime counters, level, streak,
// or XP. An id missing here never completes (configuration defect).
func progressFor(id string, in Inputs, now time.Time) (int, bool) {
	c := in.Counters
	switch id {
	case "daily-login":
		if in.Streak > 0 {
			return 1, true
		}
		return 0, true
	case "daily-tasks-3", "daily-tasks-5", "achieve-single-day-10":
		return c.CompletedToday, true
	case "daily-focus-all":
		if c.AllFocusedDone {
			return 1, true
		}
		return 0, true
	case "daily-high-priority":
		return c.CompletedHighPriorityToday, true

	case "weekly-tasks-15":
		return c.CompletedThisWeek, true
	case "weekly-streak-7", "achieve-streak-7", "achieve-streak-30", "monthly-login-30":
		return in.Streak, true
	case "weekly-focus-10":
		return c.CompletedFocusedThisWeek, true

	case "monthly-tasks-100":
		return c.CompletedThisMonth, true

	case "achieve-first-task", "achieve-tasks-10", "achieve-tasks-25",
		"achieve-tasks-50", "achieve-tasks-100", "achieve-tasks-250",
		"achieve-tasks-500":
		return c.CompletedTotal, true
	case "achieve-level-5", "achieve-level-10", "achieve-level-25", "achieve-level-50":
		return in.Level, true
	case "achieve-focus-50":
		return c.CompletedFocused, true
	case "achieve-priority-high-25":
		return c.CompletedHighPriority, true
	case "achieve-xp-1000", "achieve-xp-5000", "achieve-xp-10000":
		return in.XP, true

	case "special-weekend-warrior":
		if wd := now.Weekday(); wd == time.Saturday || wd == time.Sunday {
			return c.CompletedToday, true
		}
		return 0, true
	case "special-early-bird":
		return c.CompletedEarlyToday, true
	case "special-night-owl":
		return c.CompletedLateToday, true
	}
	return 0, false
}

// HasProgressRule reports whether an id is covered by the progress mapping.
// Used by the exhaustiveness test.
func HasProgressRule(id string) bool {
	_, known := progressFor(id, Inputs{}, time.Time{})
	return known
}
