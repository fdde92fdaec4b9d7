package models

// The generation collaborator speaks a low/medium/high + easy/moderate/hard
// vocabulary. Every crossing of that boundary goes through these tables so
// the remapping lives in exactly one place.

var priorityFromExternal = map[string]Priority{
	"low":    PriorityOptional,
	"medium": PriorityScheduled,
	"high":   PriorityUrgent,
}

var difficultyFromExternal = map[string]Difficulty{
	"easy":     DifficultyLight,
	"moderate": DifficultyStandard,
	"hard":     DifficultyChallenging,
}

var priorityToExternal = map[Priority]string{
	PriorityOptional:  "low",
	PriorityScheduled: "medium",
	PriorityUrgent:    "high",
}

var difficultyToExternal = map[Difficulty]string{
	DifficultyLight:       "easy",
	DifficultyStandard:    "moderate",
	DifficultyChallenging: "hard",
}

// PriorityFromExternal maps external priority vocabulary to the internal one.
// Unknown values fall back to the middle bucket so the mapping is total over
// anything the generation collaborator might emit.
func PriorityFromExternal(s string) Priority {
	if p, ok := priorityFromExternal[s]; ok {
		return p
	}
	return PriorityScheduled
}

// DifficultyFromExternal maps external difficulty vocabulary to the internal
// one, falling back to the middle bucket for unknown values.
func DifficultyFromExternal(s string) Difficulty {
	if d, ok := difficultyFromExternal[s]; ok {
		return d
	}
	return DifficultyStandard
}

// PriorityToExternal is the inverse mapping, used for display breakdowns.
func PriorityToExternal(p Priority) string {
	if s, ok := priorityToExternal[p]; ok {
		return s
	}
	return "medium"
}

// DifficultyToExternal is the inverse mapping for difficulty.
func DifficultyToExternal(d Difficulty) string {
	if s, ok := difficultyToExternal[d]; ok {
		return s
	}
	return "moderate"
}
