package mission

// Catalog returns the fixed mission registry. IDs are stable across sessions
// and releases; persisted state is keyed by them.
func Catalog() []Mission {
	return []Mission{
		// Daily
		{ID: "daily-login", Title: "Daily Scholar", Description: "Log in to your knowledge vault", XPReward: 25, Type: TypeDaily, Category: CategoryConsistency, Requirement: 1, Color: "#10B981"},
		{ID: "daily-tasks-3", Title: "Page Turner", Description: "Complete 3 tasks today", XPReward: 50, Type: TypeDaily, Category: CategoryProductivity, Requirement: 3, Color: "#3B82F6"},
		{ID: "daily-tasks-5", Title: "Chapter Master", Description: "Complete 5 tasks today", XPReward: 75, Type: TypeDaily, Category: CategoryProductivity, Requirement: 5, Color: "#8B5CF6"},
		{ID: "daily-focus-all", Title: "Focused Reader", Description: "Complete all focused tasks", XPReward: 100, Type: TypeDaily, Category: CategoryProductivity, Requirement: 1, Color: "#F59E0B"},
		{ID: "daily-high-priority", Title: "Priority Scholar", Description: "Complete 2 high-priority tasks", XPReward: 60, Type: TypeDaily, Category: CategoryProductivity, Requirement: 2, Color: "#EF4444"},

		// Weekly
		{ID: "weekly-tasks-15", Title: "Weekly Bibliophile", Description: "Complete 15 tasks this week", XPReward: 200, Type: TypeWeekly, Category: CategoryProductivity, Requirement: 15, Color: "#06B6D4"},
		{ID: "weekly-streak-7", Title: "Consistent Learner", Description: "Complete tasks for 7 days straight", XPReward: 300, Type: TypeWeekly, Category: CategoryConsistency, Requirement: 7, Color: "#10B981"},
		{ID: "weekly-focus-10", Title: "Focus Master", Description: "Complete 10 focused tasks this week", XPReward: 250, Type: TypeWeekly, Category: CategoryMastery, Requirement: 10, Color: "#FBBF24"},

		// Monthly
		{ID: "monthly-tasks-100", Title: "Century Scholar", Description: "Complete 100 tasks this month", XPReward: 1000, Type: TypeMonthly, Category: CategoryMilestone, Requirement: 100, Color: "#7C3AED"},
		{ID: "monthly-login-30", Title: "Dedicated Reader", Description: "Log in for 30 days this month", XPReward: 800, Type: TypeMonthly, Category: CategoryConsistency, Requirement: 30, Color: "#059669"},

		// Achievements (permanent)
		{ID: "achieve-first-task", Title: "First Page", Description: "Complete your first task", XPReward: 25, Type: TypeAchievement, Category: CategoryMilestone, Requirement: 1, Color: "#F59E0B"},
		{ID: "achieve-tasks-10", Title: "Novice Reader", Description: "Complete 10 total tasks", XPReward: 100, Type: TypeAchievement, Category: CategoryMilestone, Requirement: 10, Color: "#3B82F6"},
		{ID: "achieve-tasks-25", Title: "Apprentice Scholar", Description: "Complete 25 total tasks", XPReward: 200, Type: TypeAchievement, Category: CategoryMilestone, Requirement: 25, Color: "#8B5CF6"},
		{ID: "achieve-tasks-50", Title: "Skilled Learner", Description: "Complete 50 total tasks", XPReward: 400, Type: TypeAchievement, Category: CategoryMilestone, Requirement: 50, Color: "#06B6D4"},
		{ID: "achieve-tasks-100", Title: "Master Scholar", Description: "Complete 100 total tasks", XPReward: 800, Type: TypeAchievement, Category: CategoryMilestone, Requirement: 100, Color: "#7C3AED"},
		{ID: "achieve-tasks-250", Title: "Grand Master", Description: "Complete 250 total tasks", XPReward: 1500, Type: TypeAchievement, Category: CategoryMilestone, Requirement: 250, Color: "#B91C1C", MinLevel: 10},
		{ID: "achieve-tasks-500", Title: "Legendary Scholar", Description: "Complete 500 total tasks", XPReward: 3000, Type: TypeAchievement, Category: CategoryMilestone, Requirement: 500, Color: "#9333EA", MinLevel: 20},
		{ID: "achieve-level-5", Title: "Rising Star", Description: "Reach Level 5", XPReward: 150, Type: TypeAchievement, Category: CategoryMilestone, Requirement: 5, Color: "#F59E0B"},
		{ID: "achieve-level-10", Title: "Knowledge Seeker", Description: "Reach Level 10", XPReward: 300, Type: TypeAchievement, Category: CategoryMilestone, Requirement: 10, Color: "#3B82F6"},
		{ID: "achieve-level-25", Title: "Wisdom Keeper", Description: "Reach Level 25", XPReward: 750, Type: TypeAchievement, Category: CategoryMilestone, Requirement: 25, Color: "#8B5CF6", MinLevel: 5},
		{ID: "achieve-level-50", Title: "Enlightened Master", Description: "Reach Level 50", XPReward: 2000, Type: TypeAchievement, Category: CategoryMilestone, Requirement: 50, Color: "#7C3AED", MinLevel: 15},
		{ID: "achieve-streak-7", Title: "Week Warrior", Description: "Complete tasks for 7 days in a row", XPReward: 300, Type: TypeAchievement, Category: CategoryConsistency, Requirement: 7, Color: "#EF4444"},
		{ID: "achieve-streak-30", Title: "Month Master", Description: "Complete tasks for 30 days in a row", XPReward: 1000, Type: TypeAchievement, Category: CategoryConsistency, Requirement: 30, Color: "#059669", MinLevel: 5},
		{ID: "achieve-focus-50", Title: "Focus Champion", Description: "Complete 50 focused tasks", XPReward: 500, Type: TypeAchievement, Category: CategoryMastery, Requirement: 50, Color: "#FBBF24"},
		{ID: "achieve-priority-high-25", Title: "Priority Master", Description: "Complete 25 high-priority tasks", XPReward: 400, Type: TypeAchievement, Category: CategoryMastery, Requirement: 25, Color: "#EF4444"},
		{ID: "achieve-single-day-10", Title: "Lightning Scholar", Description: "Complete 10 tasks in a single day", XPReward: 250, Type: TypeAchievement, Category: CategoryProductivity, Requirement: 10, Color: "#FBBF24"},
		{ID: "achieve-xp-1000", Title: "Knowledge Collector", Description: "Earn 1000 total XP", XPReward: 200, Type: TypeAchievement, Category: CategoryMilestone, Requirement: 1000, Color: "#9333EA"},
		{ID: "achieve-xp-5000", Title: "Wisdom Hoarder", Description: "Earn 5000 total XP", XPReward: 500, Type: TypeAchievement, Category: CategoryMilestone, Requirement: 5000, Color: "#B91C1C", MinLevel: 10},
		{ID: "achieve-xp-10000", Title: "Infinite Learner", Description: "Earn 10000 total XP", XPReward: 1000, Type: TypeAchievement, Category: CategoryMilestone, Requirement: 10000, Color: "#7C2D12", MinLevel: 20},

		// Special
		{ID: "special-weekend-warrior", Title: "Weekend Scholar", Description: "Complete 5 tasks on a weekend", XPReward: 150, Type: TypeSpecial, Category: CategoryExploration, Requirement: 5, Color: "#EC4899"},
		{ID: "special-early-bird", Title: "Dawn Reader", Description: "Complete a task before 8 AM", XPReward: 100, Type: TypeSpecial, Category: CategoryExploration, Requirement: 1, Color: "#F59E0B"},
		{ID: "special-night-owl", Title: "Midnight Scholar", Description: "Complete a task after 10 PM", XPReward: 100, Type: TypeSpecial, Category: CategoryExploration, Requirement: 1, Color: "#7C3AED"},
	}
}
