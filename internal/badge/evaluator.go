package badge

import "noteflow/internal/progress"

// Inputs are the metrics badge thresholds are checked against.
type Inputs struct {
	Counters progress.Counters
	Streak   int
	Level    int
	XP       int
}

// Result carries the projected views and the updated persistence map.
type Result struct {
	Badges      []View
	NewlyEarned []string
	Earned      EarnedMap
}

// Evaluate rechecks every badge threshold and ORs the outcome with the
// previously earned state, so a badge stays earned even if the underlying
// metric later drops (external task deletion, say).
func Evaluate(catalog []Badge, prev EarnedMap, in Inputs) Result {
	if catalog == nil {
		catalog = Catalog()
	}
	res := Result{
		Badges: make([]View, 0, len(catalog)),
		Earned: make(EarnedMap, len(catalog)),
	}

	for _, b := range catalog {
		earned := prev[b.ID] || metricFor(b.ID, in) >= b.Requirement
		if earned && !prev[b.ID] {
			res.NewlyEarned = append(res.NewlyEarned, b.ID)
		}
		if earned {
			res.Earned[b.ID] = true
		}
		res.Badges = append(res.Badges, View{Badge: b, Earned: earned})
	}
	return res
}

// metricFor maps a badge id to the counter its threshold applies to. Unknown
// ids read as zero and the badge is never earned; the exhaustiveness test
// keeps the mapping in sync with the catalog.
func metricFor(id string, in Inputs) int {
	c := in.Counters
	switch id {
	case "first-steps", "task-novice", "task-apprentice", "task-expert",
		"task-master", "task-legend", "task-mythic":
		return c.CompletedTotal
	case "streak-warrior", "streak-legend":
		return in.Streak
	case "focus-master":
		return c.CompletedFocused
	case "lightning-fast":
		return c.CompletedToday
	case "level-master", "enlightened":
		return in.Level
	case "xp-collector", "xp-hoarder":
		return in.XP
	}
	return 0
}

// HasMetric reports whether a badge id has a threshold mapping. Used by the
// exhaustiveness test.
func HasMetric(id string) bool {
	switch id {
	case "first-steps", "task-novice", "task-apprentice", "task-expert",
		"task-master", "task-legend", "task-mythic",
		"streak-warrior", "streak-legend",
		"focus-master", "lightning-fast",
		"level-master", "enlightened",
		"xp-collector", "xp-hoarder":
		return true
	}
	return false
}
