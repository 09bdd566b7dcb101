// Package progress computes derived completion counters from the task ledger.
// Everything here is pure: counters are recomputed from scratch on every call
// so there is no incremental state to drift.
package progress

import (
	"time"

	"noteflow/internal/task"
)

// Counters is the full set of signals the mission and badge evaluators read.
// Lifetime counters feed achievements; the day/week/month-scoped counters feed
// recurring missions, which must not see carried-over totals.
type Counters struct {
	CompletedTotal             int `json:"completed_total"`
	CompletedToday             int `json:"completed_today"`
	CompletedThisWeek          int `json:"completed_this_week"`
	CompletedThisMonth         int `json:"completed_this_month"`
	CompletedFocused           int `json:"completed_focused"`
	CompletedFocusedThisWeek   int `json:"completed_focused_this_week"`
	CompletedHighPriority      int `json:"completed_high_priority"`
	CompletedHighPriorityToday int `json:"completed_high_priority_today"`

	// Off-hours completions on today's calendar day, for the special
	// early-bird / night-owl missions. The ledger has no completion
	// timestamp, so CreatedAt stands in for it throughout.
	CompletedEarlyToday int `json:"completed_early_today"`
	CompletedLateToday  int `json:"completed_late_today"`

	FocusSetSize   int  `json:"focus_set_size"`
	AllFocusedDone bool `json:"all_focused_done"`
}

const (
	earlyBirdHour = 8
	nightOwlHour  = 22
)

// Evaluate derives counters from the ledger and focus set. Empty inputs yield
// zero counters; there are no error conditions.
func Evaluate(tasks []task.Task, focus []string, now time.Time) Counters {
	focused := make(map[string]bool, len(focus))
	for _, id := range focus {
		focused[id] = true
	}

	var c Counters
	c.FocusSetSize = len(focused)

	focusedDone := 0
	for _, t := range tasks {
		if !t.Completed {
			continue
		}
		created := t.CreatedAt.In(now.Location())

		c.CompletedTotal++
		if sameDay(created, now) {
			c.CompletedToday++
			if created.Hour() < earlyBirdHour {
				c.CompletedEarlyToday++
			}
			if created.Hour() >= nightOwlHour {
				c.CompletedLateToday++
			}
		}
		if sameISOWeek(created, now) {
			c.CompletedThisWeek++
		}
		if sameMonth(created, now) {
			c.CompletedThisMonth++
		}
		if focused[t.ID] {
			c.CompletedFocused++
			if sameISOWeek(created, now) {
				c.CompletedFocusedThisWeek++
			}
			focusedDone++
		}
		if t.Priority == task.PriorityHigh {
			c.CompletedHighPriority++
			if sameDay(created, now) {
				c.CompletedHighPriorityToday++
			}
		}
	}

	c.AllFocusedDone = c.FocusSetSize > 0 && focusedDone == c.FocusSetSize
	return c
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func sameISOWeek(a, b time.Time) bool {
	ay, aw := a.ISOWeek()
	by, bw := b.ISOWeek()
	return ay == by && aw == bw
}

func sameMonth(a, b time.Time) bool {
	ay, am, _ := a.Date()
	by, bm, _ := b.Date()
	return ay == by && am == bm
}
