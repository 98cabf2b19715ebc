// Package catalog holds the static exercise reference data and the fixed
// weekly training schedule. The catalog is defined once and never mutated;
// workouts are constructed fresh on every call, so callers can stamp
// per-exercise duration overrides onto them without touching the source data.
package catalog

import "errors"

// ErrUnknownExercise is returned when an exercise id is not part of the
// catalog. Toggling or rating such ids is rejected instead of silently
// persisting orphaned records.
var ErrUnknownExercise = errors.New("unknown exercise")

const (
	MaxHoldKegels     = "maxHoldKegels"
	RapidFireSqueezes = "rapidFireSqueezes"
	WeightedTilts     = "weightedTilts"
	WallSlides        = "wallSlides"
	Superman          = "superman"
	DoorwayRows       = "doorwayRows"
	TowelWring        = "towelWring"
	FingertipPushups  = "fingertipPushups"
	DeadHang          = "deadHang"
	HappyBaby         = "happyBaby"
	LegsUpWall        = "legsUpWall"
)

var exercises = map[string]Exercise{
	MaxHoldKegels: {
		ID:           MaxHoldKegels,
		Title:        "Max-Hold Kegels",
		Reps:         "3x10 (5s hold)",
		Description:  "Squeeze and hold the pelvic floor muscles.",
		TechnicalCue: "Focus on the perineum. Squeeze as if lifting an object. Maintain deep nasal breathing.",
		Kind:         KindHold,

		DurationSeconds: 5,
	},
	RapidFireSqueezes: {
		ID:           RapidFireSqueezes,
		Title:        "Rapid-Fire Squeezes",
		Reps:         "30s",
		Description:  "Quick, rhythmic contractions.",
		TechnicalCue: "Pulse quickly. Do not sacrifice quality for speed.",
		Kind:         KindTime,

		DurationSeconds: 30,
	},
	WeightedTilts: {
		ID:           WeightedTilts,
		Title:        "Weighted Pelvic Tilts",
		Reps:         "3x10",
		Description:  "Lying on back, tilt pelvis up with weight.",
		TechnicalCue: "Drive through heels. Squeeze glutes at top. Weight sits on pubic bone.",
		Kind:         KindReps,
	},
	WallSlides: {
		ID:           WallSlides,
		Title:        "Iron Cross Wall Slides",
		Reps:         "3x15",
		Description:  "Back against wall, arms in W shape sliding to Y.",
		TechnicalCue: "Slow is smooth. Keep chin tucked. If elbows leave wall, reset.",
		Kind:         KindReps,
	},
	Superman: {
		ID:           Superman,
		Title:        "Superman Holds",
		Reps:         "60s",
		Description:  "Lift chest and legs while lying face down.",
		TechnicalCue: "Gaze down at floor. Think \"length\" from fingers to toes.",
		Kind:         KindHold,

		DurationSeconds: 60,
	},
	DoorwayRows: {
		ID:           DoorwayRows,
		Title:        "Doorway Rows",
		Reps:         "3x12",
		Description:  "Lean back holding door frame, pull self up.",
		TechnicalCue: "Pinch shoulder blades together at the top.",
		Kind:         KindReps,
	},
	TowelWring: {
		ID:           TowelWring,
		Title:        "The Towel Wring",
		Reps:         "60s",
		Description:  "Twist a towel aggressively.",
		TechnicalCue: "Explosive movement. Change direction every 10s. Focus on forearm burn.",
		Kind:         KindTime,

		DurationSeconds: 60,
	},
	FingertipPushups: {
		ID:           FingertipPushups,
		Title:        "Fingertip Push-ups",
		Reps:         "3x10",
		Description:  "Push-ups on fingertips.",
		TechnicalCue: "Spread fingers wide. Stiffen the claw.",
		Kind:         KindReps,
	},
	DeadHang: {
		ID:           DeadHang,
		Title:        "Dead Hangs",
		Reps:         "Max holds",
		Description:  "Hang from a bar.",
		TechnicalCue: "Pack shoulders down (don't let them shrug to ears).",
		Kind:         KindHold,

		// default target, ratcheted up by the progression engine
		DurationSeconds: 60,
	},
	HappyBaby: {
		ID:           HappyBaby,
		Title:        "Happy Baby Pose",
		Reps:         "60s",
		Description:  "Lie on back, grab feet, open hips.",
		TechnicalCue: "Relax into the stretch. Deep belly breathing.",
		Kind:         KindHold,

		DurationSeconds: 60,
	},
	LegsUpWall: {
		ID:           LegsUpWall,
		Title:        "Legs-Up-The-Wall",
		Reps:         "5-10 min",
		Description:  "Lie on back with legs vertical against wall.",
		TechnicalCue: "Focus on lymphatic drainage and nervous system reset.",
		Kind:         KindTime,

		DurationSeconds: 300,
	},
}

var (
	circuitFull = []string{
		MaxHoldKegels,
		RapidFireSqueezes,
		WeightedTilts,
		WallSlides,
		Superman,
		DoorwayRows,
		FingertipPushups,
		TowelWring,
		DeadHang,
		HappyBaby,
		LegsUpWall,
	}
	// cardio part is covered by the interval timer on the client,
	// the checklist only carries the exercises
	circuitFlowCardio = []string{
		MaxHoldKegels,
		HappyBaby,
		RapidFireSqueezes,
	}
	circuitFrame = []string{
		WallSlides,
		Superman,
		TowelWring,
		DeadHang,
		DoorwayRows,
	}
	circuitRest = []string{
		LegsUpWall,
	}
)

// ByID returns the catalog exercise for the given id.
func ByID(id string) (Exercise, error) {
	e, ok := exercises[id]
	if !ok {
		return Exercise{}, ErrUnknownExercise
	}
	return e, nil
}

// Exists reports whether the given id is part of the catalog.
func Exists(id string) bool {
	_, ok := exercises[id]
	return ok
}

// Size returns the number of exercises in the catalog.
func Size() int {
	return len(exercises)
}
