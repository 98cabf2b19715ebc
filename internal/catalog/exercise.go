package catalog

// Kind says how an exercise is performed: counted reps, a timed
// interval, or a static hold.
type Kind string

const (
	KindReps Kind = "reps"
	KindTime Kind = "time"
	KindHold Kind = "hold"
)

type Exercise struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Reps         string `json:"reps"`
	Description  string `json:"description"`
	TechnicalCue string `json:"technicalCue"`
	Kind         Kind   `json:"type"`
	// DurationSeconds is set only for time/hold exercises. On workouts
	// returned by DailyWorkout it already reflects the progression
	// override, when one exists.
	DurationSeconds int `json:"durationSeconds,omitempty"`
}

type Workout struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Exercises   []Exercise `json:"exercises"`
}
