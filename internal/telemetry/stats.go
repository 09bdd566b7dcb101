package telemetry

import (
	"encoding/json"
	"time"
)

type Stats struct {
	Period            string            `json:"period"`
	EventCounts       map[EventType]int `json:"event_counts"`
	TaskCompletions   int               `json:"task_completions"`
	SessionsStarted   int               `json:"sessions_started"`
	MissionsCompleted int               `json:"missions_completed"`
	BadgesEarned      int               `json:"badges_earned"`
	LevelUps          int               `json:"level_ups"`
	XPGained          int               `json:"xp_gained"`
	XPByReason        map[string]int    `json:"xp_by_reason"`
}

// CalculateStats computes engagement stats from events
func CalculateStats(events []Event, since time.Time) (Stats, error) {
	stats := Stats{
		Period:      since.Format("2006-01-02"),
		EventCounts: make(map[EventType]int),
		XPByReason:  make(map[string]int),
	}

	for _, event := range events {
		stats.EventCounts[event.Type]++

		var metadata EventMetadata
		if err := json.Unmarshal([]byte(event.Metadata), &metadata); err != nil {
			continue
		}

		switch event.Type {
		case EventTaskCompleted:
			stats.TaskCompletions++
		case EventSessionStarted:
			stats.SessionsStarted++
		case EventMissionCompleted:
			stats.MissionsCompleted++
		case EventBadgeEarned:
			stats.BadgesEarned++
		case EventLevelUp:
			stats.LevelUps++
		case EventXPGained:
			if amount, ok := metadata["amount"].(float64); ok {
				stats.XPGained += int(amount)
				if reason, ok := metadata["reason"].(string); ok {
					stats.XPByReason[reason] += int(amount)
				}
			}
		}
	}

	return stats, nil
}
