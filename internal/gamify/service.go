// Package gamify orchestrates the gamification engine: it reads the task
// ledger, runs the progress/mission/badge evaluators, applies XP, and persists
// the derived state in the scoped key-value store.
package gamify

import (
	"context"
	"log"
	"sync"

	"noteflow/internal/badge"
	"noteflow/internal/mission"
	"noteflow/internal/progress"
	"noteflow/internal/storage"
	"noteflow/internal/streak"
	"noteflow/internal/task"
	"noteflow/internal/telemetry"
	"noteflow/internal/xp"
)

// DisplayState is the read-only projection handed to the UI layer.
type DisplayState struct {
	Level                int               `json:"level"`
	XP                   int               `json:"xp"`
	TotalXPGained        int               `json:"total_xp_gained"`
	XPToNextLevel        int               `json:"xp_to_next_level"`
	LevelProgressPercent float64           `json:"level_progress_percent"`
	RankTitle            string            `json:"rank_title"`
	LoginStreak          int               `json:"login_streak"`
	ActiveMissions       []mission.View    `json:"active_missions"`
	EarnedBadges         []badge.View      `json:"earned_badges"`
	AllBadges            []badge.View      `json:"all_badges"`
	Counters             progress.Counters `json:"counters"`
}

type Options struct {
	Store   storage.Store
	Ledger  task.Ledger
	Events  telemetry.Repository
	Clock   Clock
	Logger  *log.Logger
	Scope   string
	Bonuses streak.Bonuses
}

// Service runs all evaluation serially under one mutex. Within a process that
// matches the single-threaded event-driven model; across processes sharing a
// store, last-write-wins applies.
type Service struct {
	mu      sync.Mutex
	store   storage.Store
	ledger  task.Ledger
	events  telemetry.Repository
	clock   Clock
	logger  *log.Logger
	scope   string
	bonuses streak.Bonuses
	tracker *mission.Tracker
	badges  []badge.Badge
}

func NewService(opts Options) *Service {
	if opts.Clock == nil {
		opts.Clock = RealClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Scope == "" {
		opts.Scope = "default"
	}
	if (opts.Bonuses == streak.Bonuses{}) {
		opts.Bonuses = streak.DefaultBonuses()
	}
	return &Service{
		store:   opts.Store,
		ledger:  opts.Ledger,
		events:  opts.Events,
		clock:   opts.Clock,
		logger:  opts.Logger,
		scope:   opts.Scope,
		bonuses: opts.Bonuses,
		tracker: mission.NewTracker(mission.Catalog()),
		badges:  badge.Catalog(),
	}
}

// StartSession applies the login-streak state machine, issues the login bonus,
// and runs a full evaluation. Safe to call repeatedly: same-day calls award
// nothing.
func (s *Service) StartSession(ctx context.Context) (DisplayState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := loadSnapshot(ctx, s.store, s.scope)
	if err != nil {
		return DisplayState{}, err
	}
	now := s.clock.Now()

	var prev *streak.LoginStreak
	if !snap.Streak.LastLoginDate.IsZero() {
		prev = &snap.Streak
	}
	res := streak.OnSessionStart(prev, now, s.bonuses)
	snap.Streak = res.Streak

	if res.Changed {
		s.record(telemetry.EventSessionStarted, telemetry.EventMetadata{
			"streak": res.Streak.Count,
		})
	}
	if res.BonusXP > 0 {
		if err := s.applyXP(&snap, res.BonusXP, "login"); err != nil {
			return DisplayState{}, err
		}
	}

	return s.evaluateLocked(ctx, &snap, true)
}

// Refresh re-evaluates missions and badges after a ledger change, awarding
// any newly earned XP and persisting the result.
func (s *Service) Refresh(ctx context.Context) (DisplayState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := loadSnapshot(ctx, s.store, s.scope)
	if err != nil {
		return DisplayState{}, err
	}
	return s.evaluateLocked(ctx, &snap, true)
}

// DisplayState recomputes the projection without awarding or persisting
// anything. Rewards are only issued by StartSession and Refresh.
func (s *Service) DisplayState(ctx context.Context) (DisplayState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := loadSnapshot(ctx, s.store, s.scope)
	if err != nil {
		return DisplayState{}, err
	}
	return s.evaluateLocked(ctx, &snap, false)
}

func (s *Service) evaluateLocked(ctx context.Context, snap *snapshot, commit bool) (DisplayState, error) {
	now := s.clock.Now()

	tasks, err := s.ledger.List(task.ListFilter{Status: "all"})
	if err != nil {
		return DisplayState{}, err
	}
	focus, err := s.ledger.FocusSet()
	if err != nil {
		return DisplayState{}, err
	}
	counters := progress.Evaluate(tasks, focus, now)

	tick := s.tracker.Tick(snap.Missions, mission.Inputs{
		Counters: counters,
		Streak:   snap.Streak.Count,
		Level:    snap.Ledger.Level,
		XP:       snap.Ledger.XP,
	}, now)
	for _, id := range tick.Unmapped {
		s.logger.Printf("gamify: mission %q has no progress rule; it can never complete", id)
	}

	if commit {
		snap.Missions = tick.States
		for _, id := range tick.NewlyCompleted {
			s.record(telemetry.EventMissionCompleted, telemetry.EventMetadata{"mission": id})
		}
		if tick.XPEarned > 0 {
			if err := s.applyXP(snap, tick.XPEarned, "missions"); err != nil {
				return DisplayState{}, err
			}
		}
	}

	badgeRes := badge.Evaluate(s.badges, snap.Badges, badge.Inputs{
		Counters: counters,
		Streak:   snap.Streak.Count,
		Level:    snap.Ledger.Level,
		XP:       snap.Ledger.XP,
	})
	if commit {
		snap.Badges = badgeRes.Earned
		for _, id := range badgeRes.NewlyEarned {
			s.record(telemetry.EventBadgeEarned, telemetry.EventMetadata{"badge": id})
		}
		if err := saveSnapshot(ctx, s.store, s.scope, *snap); err != nil {
			return DisplayState{}, err
		}
	}

	earned := make([]badge.View, 0, len(badgeRes.Badges))
	for _, b := range badgeRes.Badges {
		if b.Earned {
			earned = append(earned, b)
		}
	}

	return DisplayState{
		Level:                snap.Ledger.Level,
		XP:                   snap.Ledger.XP,
		TotalXPGained:        snap.Ledger.TotalXPGained,
		XPToNextLevel:        xp.ToNextLevel(snap.Ledger),
		LevelProgressPercent: xp.LevelProgressPercent(snap.Ledger),
		RankTitle:            xp.RankTitle(snap.Ledger.Level),
		LoginStreak:          snap.Streak.Count,
		ActiveMissions:       tick.Missions,
		EarnedBadges:         earned,
		AllBadges:            badgeRes.Badges,
		Counters:             counters,
	}, nil
}

func (s *Service) applyXP(snap *snapshot, delta int, reason string) error {
	before := snap.Ledger.Level
	next, err := xp.Apply(snap.Ledger, delta)
	if err != nil {
		return err
	}
	snap.Ledger = next

	s.record(telemetry.EventXPGained, telemetry.EventMetadata{
		"amount": delta,
		"reason": reason,
	})
	if next.Level > before {
		s.record(telemetry.EventLevelUp, telemetry.EventMetadata{
			"from": before,
			"to":   next.Level,
		})
	}
	return nil
}

func (s *Service) record(t telemetry.EventType, meta telemetry.EventMetadata) {
	if s.events == nil {
		return
	}
	if err := s.events.RecordEvent(t, meta); err != nil {
		s.logger.Printf("gamify: record %s event: %v", t, err)
	}
}
