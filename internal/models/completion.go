package models

// CompletionState is everything an exercise completion reads and rewrites.
// Storage loads it inside one transaction and persists it after mutation.
type CompletionState struct {
	User         User
	Profile      CognitiveProfile
	Exercise     Exercise
	Today        *DailyStreak // nil when no exercise was completed today yet
	HadYesterday bool
	Goals        []UserGoal // open (not completed) goals
	Record       ExerciseHistory
}
