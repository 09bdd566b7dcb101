// Package badge defines the badge registry and its threshold evaluator.
// Badges carry no XP reward; they are recognition markers and earning them is
// monotonic: once earned, never revoked.
package badge

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityMythic    Rarity = "mythic"
)

type Category string

const (
	CategoryCollector Category = "collector"
	CategoryAchiever  Category = "achiever"
	CategoryMaster    Category = "master"
	CategoryLegend    Category = "legend"
)

type Badge struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Color       string   `json:"color"`
	Requirement int      `json:"requirement"`
	Category    Category `json:"category"`
	Rarity      Rarity   `json:"rarity"`
}

// View is a badge with its earned flag for the current evaluation.
type View struct {
	Badge
	Earned bool `json:"earned"`
}

// EarnedMap is the persisted id -> earned mapping. Missing ids mean false.
type EarnedMap map[string]bool

// Catalog returns the fixed badge registry.
func Catalog() []Badge {
	return []Badge{
		{ID: "first-steps", Name: "First Steps", Description: "Complete your first task", Color: "#F59E0B", Requirement: 1, Category: CategoryCollector, Rarity: RarityCommon},
		{ID: "task-novice", Name: "Task Novice", Description: "Complete 10 tasks", Color: "#3B82F6", Requirement: 10, Category: CategoryCollector, Rarity: RarityCommon},
		{ID: "task-apprentice", Name: "Task Apprentice", Description: "Complete 25 tasks", Color: "#8B5CF6", Requirement: 25, Category: CategoryCollector, Rarity: RarityRare},
		{ID: "task-expert", Name: "Task Expert", Description: "Complete 50 tasks", Color: "#06B6D4", Requirement: 50, Category: CategoryAchiever, Rarity: RarityRare},
		{ID: "task-master", Name: "Task Master", Description: "Complete 100 tasks", Color: "#7C3AED", Requirement: 100, Category: CategoryAchiever, Rarity: RarityEpic},
		{ID: "task-legend", Name: "Task Legend", Description: "Complete 250 tasks", Color: "#B91C1C", Requirement: 250, Category: CategoryMaster, Rarity: RarityLegendary},
		{ID: "task-mythic", Name: "Task Mythic", Description: "Complete 500 tasks", Color: "#9333EA", Requirement: 500, Category: CategoryLegend, Rarity: RarityMythic},
		{ID: "streak-warrior", Name: "Streak Warrior", Description: "Complete tasks for 7 days straight", Color: "#EF4444", Requirement: 7, Category: CategoryAchiever, Rarity: RarityRare},
		{ID: "streak-legend", Name: "Streak Legend", Description: "Complete tasks for 30 days straight", Color: "#059669", Requirement: 30, Category: CategoryMaster, Rarity: RarityLegendary},
		{ID: "focus-master", Name: "Focus Master", Description: "Complete 50 focused tasks", Color: "#FBBF24", Requirement: 50, Category: CategoryMaster, Rarity: RarityEpic},
		{ID: "lightning-fast", Name: "Lightning Fast", Description: "Complete 10 tasks in one day", Color: "#FBBF24", Requirement: 10, Category: CategoryAchiever, Rarity: RarityRare},
		{ID: "level-master", Name: "Level Master", Description: "Reach Level 25", Color: "#8B5CF6", Requirement: 25, Category: CategoryMaster, Rarity: RarityEpic},
		{ID: "enlightened", Name: "Enlightened", Description: "Reach Level 50", Color: "#7C3AED", Requirement: 50, Category: CategoryLegend, Rarity: RarityLegendary},
		{ID: "xp-collector", Name: "XP Collector", Description: "Earn 5000 XP", Color: "#9333EA", Requirement: 5000, Category: CategoryCollector, Rarity: RarityEpic},
		{ID: "xp-hoarder", Name: "XP Hoarder", Description: "Earn 10000 XP", Color: "#B91C1C", Requirement: 10000, Category: CategoryLegend, Rarity: RarityMythic},
	}
}
