package catalog

import (
	"context"
	"time"

	"github.com/2beens/ironroutine/internal/calendar"
)

// DurationResolver resolves the effective duration of a time/hold exercise,
// i.e. the progression override when one was earned, the nominal catalog
// value otherwise. Implemented by the progression engine.
type DurationResolver interface {
	EffectiveDuration(ctx context.Context, exerciseID string, nominalSeconds int) int
}

// DailyWorkout returns the workout assigned to the given date. It is a pure
// function of the date's weekday:
//
//	Mon, Wed, Fri -> full high-intensity circuit
//	Tue, Thu      -> flow & cardio
//	Sat           -> posture & grip ("the frame")
//	Sun           -> active recovery
//
// A nil resolver leaves the nominal catalog durations in place.
func DailyWorkout(ctx context.Context, day calendar.Date, resolver DurationResolver) Workout {
	var w Workout
	switch day.Weekday() {
	case time.Monday, time.Wednesday, time.Friday:
		w = Workout{
			ID:          "high-intensity",
			Title:       "High-Intensity Circuit",
			Description: "Full body protocol: Pelvic, Frame, Grip.",
			Exercises:   buildExercises(circuitFull),
		}
	case time.Tuesday, time.Thursday:
		w = Workout{
			ID:          "flow-cardio",
			Title:       "Flow & Cardio",
			Description: "Pelvic health and cardiovascular system focus.",
			Exercises:   buildExercises(circuitFlowCardio),
		}
	case time.Saturday:
		w = Workout{
			ID:          "the-frame",
			Title:       "The Frame",
			Description: "Posture and grip strength focus.",
			Exercises:   buildExercises(circuitFrame),
		}
	case time.Sunday:
		w = Workout{
			ID:          "active-recovery",
			Title:       "Active Recovery",
			Description: "Rest and reset.",
			Exercises:   buildExercises(circuitRest),
		}
	}

	if resolver != nil {
		for i := range w.Exercises {
			e := &w.Exercises[i]
			if e.DurationSeconds == 0 {
				continue // reps exercises have no duration to resolve
			}
			e.DurationSeconds = resolver.EffectiveDuration(ctx, e.ID, e.DurationSeconds)
		}
	}

	return w
}

func buildExercises(ids []string) []Exercise {
	built := make([]Exercise, 0, len(ids))
	for _, id := range ids {
		built = append(built, exercises[id])
	}
	return built
}
