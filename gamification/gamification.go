// Package gamification maps rewarded actions to experience points and derives
// the profile level from them.
package gamification

import "prospera-go-be/models"

// Action is a rewarded user action.
type Action int

const (
	TransactionAdded Action = iota
	LessonCompleted
	HabitToggled
)

// XPPerLevel is the experience needed to advance one level.
const XPPerLevel = 500

// Reward returns the experience awarded for an action.
func Reward(a Action) int {
	switch a {
	case TransactionAdded:
		return 10
	case LessonCompleted:
		return 50
	case HabitToggled:
		return 5
	}
	return 0
}

// LevelFor derives the level from total experience.
func LevelFor(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}

// Apply returns p with the action's reward added and the level re-derived.
func Apply(p models.UserProfile, a Action) models.UserProfile {
	p.XP += Reward(a)
	p.Level = LevelFor(p.XP)
	return p
}

// Normalize re-derives the level of a profile read from storage.
func Normalize(p models.UserProfile) models.UserProfile {
	p.Level = LevelFor(p.XP)
	return p
}
