package badge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"noteflow/internal/progress"
)

func viewByID(t *testing.T, views []View, id string) View {
	t.Helper()
	for _, v := range views {
		if v.ID == id {
			return v
		}
	}
	t.Fatalf("badge %q not in result", id)
	return View{}
}

func TestCatalog_EveryBadgeHasMetric(t *testing.T) {
	for _, b := range Catalog() {
		assert.True(t, HasMetric(b.ID), "badge %q has no metric mapping and can never be earned", b.ID)
	}
}

func TestCatalog_Invariants(t *testing.T) {
	seen := map[string]bool{}
	for _, b := range Catalog() {
		assert.False(t, seen[b.ID], "duplicate badge id %q", b.ID)
		seen[b.ID] = true
		assert.Greater(t, b.Requirement, 0, "badge %q requirement must be positive", b.ID)
		assert.NotEmpty(t, b.Name)
	}
	assert.Len(t, Catalog(), 15)
}

func TestEvaluate_ThresholdBoundary(t *testing.T) {
	at99 := Evaluate(nil, EarnedMap{}, Inputs{Counters: progress.Counters{CompletedTotal: 99}})
	assert.False(t, viewByID(t, at99.Badges, "task-master").Earned, "99 must not earn the 100 badge")

	at100 := Evaluate(nil, EarnedMap{}, Inputs{Counters: progress.Counters{CompletedTotal: 100}})
	assert.True(t, viewByID(t, at100.Badges, "task-master").Earned)
	assert.Contains(t, at100.NewlyEarned, "task-master")
}

func TestEvaluate_Monotonic(t *testing.T) {
	res := Evaluate(nil, EarnedMap{}, Inputs{Counters: progress.Counters{CompletedTotal: 12}})
	assert.True(t, viewByID(t, res.Badges, "task-novice").Earned)

	// The metric drops below the threshold; earned state must survive.
	res2 := Evaluate(nil, res.Earned, Inputs{Counters: progress.Counters{CompletedTotal: 3}})
	assert.True(t, viewByID(t, res2.Badges, "task-novice").Earned)
	assert.NotContains(t, res2.NewlyEarned, "task-novice", "already-earned badges are not newly earned")
}

func TestEvaluate_MetricFamilies(t *testing.T) {
	in := Inputs{
		Counters: progress.Counters{
			CompletedTotal:   1,
			CompletedToday:   10,
			CompletedFocused: 50,
		},
		Streak: 7,
		Level:  25,
		XP:     5000,
	}
	res := Evaluate(nil, EarnedMap{}, in)

	assert.True(t, viewByID(t, res.Badges, "first-steps").Earned)
	assert.True(t, viewByID(t, res.Badges, "lightning-fast").Earned)
	assert.True(t, viewByID(t, res.Badges, "focus-master").Earned)
	assert.True(t, viewByID(t, res.Badges, "streak-warrior").Earned)
	assert.True(t, viewByID(t, res.Badges, "level-master").Earned)
	assert.True(t, viewByID(t, res.Badges, "xp-collector").Earned)

	assert.False(t, viewByID(t, res.Badges, "streak-legend").Earned)
	assert.False(t, viewByID(t, res.Badges, "enlightened").Earned)
	assert.False(t, viewByID(t, res.Badges, "xp-hoarder").Earned)
}

func TestEvaluate_EarnedMapOnlyHoldsTrue(t *testing.T) {
	res := Evaluate(nil, EarnedMap{}, Inputs{})
	assert.Empty(t, res.Earned, "nothing earned yields an empty map")
	assert.Len(t, res.Badges, len(Catalog()))
}
