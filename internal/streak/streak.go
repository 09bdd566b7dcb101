// Package streak implements the daily login streak state machine.
package streak

import "time"

// LoginStreak is the persisted streak state. LastLoginDate is compared at
// calendar-day granularity; the stored time-of-day is irrelevant.
type LoginStreak struct {
	LastLoginDate time.Time `json:"last_login_date"`
	Count         int       `json:"count"`
}

// Bonuses are the XP awards for login events. Zero-value means no award.
type Bonuses struct {
	FirstLogin  int
	Consecutive int
}

// DefaultBonuses matches the product defaults: 25 XP for a first or
// streak-restarting login, 50 XP for extending a streak.
func DefaultBonuses() Bonuses {
	return Bonuses{FirstLogin: 25, Consecutive: 50}
}

// Result reports the updated streak and whether anything changed. Changed is
// false on the same-day branch so callers can skip the persistence write.
type Result struct {
	Streak  LoginStreak
	BonusXP int
	Changed bool
}

// OnSessionStart advances the streak for a session beginning at now.
//
// Branches by day difference d from the previous login:
//
//	no previous login  -> streak 1, first-login bonus
//	d == 0 (same day)  -> unchanged, no bonus (idempotent)
//	d == 1             -> streak+1, consecutive bonus
//	d  > 1             -> streak resets to 1, first-login bonus
//	d  < 0             -> treated as same day (clock skew guard)
func OnSessionStart(prev *LoginStreak, now time.Time, bonuses Bonuses) Result {
	if prev == nil || prev.LastLoginDate.IsZero() {
		return Result{
			Streak:  LoginStreak{LastLoginDate: now, Count: 1},
			BonusXP: bonuses.FirstLogin,
			Changed: true,
		}
	}

	d := daysBetween(prev.LastLoginDate, now)
	switch {
	case d == 0 || d < 0:
		return Result{Streak: *prev, BonusXP: 0, Changed: false}
	case d == 1:
		count := prev.Count + 1
		if count < 1 {
			count = 1
		}
		return Result{
			Streak:  LoginStreak{LastLoginDate: now, Count: count},
			BonusXP: bonuses.Consecutive,
			Changed: true,
		}
	default:
		return Result{
			Streak:  LoginStreak{LastLoginDate: now, Count: 1},
			BonusXP: bonuses.FirstLogin,
			Changed: true,
		}
	}
}

// daysBetween counts civil calendar days from a to b in b's location. The
// duration between local midnights is rounded to the nearest day so DST
// transitions (23h or 25h days) still count as one day.
func daysBetween(a, b time.Time) int {
	loc := b.Location()
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.Date()
	start := time.Date(ay, am, ad, 0, 0, 0, 0, loc)
	end := time.Date(by, bm, bd, 0, 0, 0, 0, loc)
	d := end.Sub(start)
	if d < 0 {
		return int((d - 12*time.Hour) / (24 * time.Hour))
	}
	return int((d + 12*time.Hour) / (24 * time.Hour))
}
