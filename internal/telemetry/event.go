package telemetry

import "time"

type EventType string

const (
	EventTaskCreated      EventType = "task_created"
	EventTaskCompleted    EventType = "task_completed"
	EventSessionStarted   EventType = "session_started"
	EventXPGained         EventType = "xp_gained"
	EventMissionCompleted EventType = "mission_completed"
	EventBadgeEarned      EventType = "badge_earned"
	EventLevelUp          EventType = "level_up"
)

type Event struct {
	ID        int       `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Metadata  string    `json:"metadata"`
}

type EventMetadata map[string]interface{}
