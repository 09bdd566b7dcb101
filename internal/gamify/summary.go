package gamify

import (
	"context"
	"time"

	"noteflow/internal/storage"
	"noteflow/internal/xp"
)

// Summary is the offline view of the persisted state, used by the ops CLI.
// It reads the store directly and never touches the task ledger.
type Summary struct {
	Level             int
	XP                int
	TotalXPGained     int
	XPToNextLevel     int
	RankTitle         string
	LoginStreak       int
	LastLoginDate     time.Time
	MissionsCompleted int
	BadgesEarned      int
}

func LoadSummary(ctx context.Context, st storage.Store, scope string) (Summary, error) {
	if scope == "" {
		scope = "default"
	}
	snap, err := loadSnapshot(ctx, st, scope)
	if err != nil {
		return Summary{}, err
	}

	missionsDone := 0
	for _, ms := range snap.Missions {
		if ms.Completed || ms.CompletedPeriod != "" {
			missionsDone++
		}
	}
	badgesEarned := 0
	for _, earned := range snap.Badges {
		if earned {
			badgesEarned++
		}
	}

	return Summary{
		Level:             snap.Ledger.Level,
		XP:                snap.Ledger.XP,
		TotalXPGained:     snap.Ledger.TotalXPGained,
		XPToNextLevel:     xp.ToNextLevel(snap.Ledger),
		RankTitle:         xp.RankTitle(snap.Ledger.Level),
		LoginStreak:       snap.Streak.Count,
		LastLoginDate:     snap.Streak.LastLoginDate,
		MissionsCompleted: missionsDone,
		BadgesEarned:      badgesEarned,
	}, nil
}
