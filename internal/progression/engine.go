// Package progression owns the per-exercise adaptive difficulty state. The
// engine is a ratchet: only a run of three consecutive "easy" ratings can
// change an exercise's duration, and only ever upward, in 5-second steps.
package progression

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/2beens/ironroutine/internal/catalog"
	"github.com/2beens/ironroutine/internal/store"

	log "github.com/sirupsen/logrus"
)

const progressionsKey = "exercise_progressions"

// levelUpAfter is the number of consecutive easy ratings needed for a level up.
const levelUpAfter = 3

type Rating string

const (
	RatingEasy Rating = "easy"
	RatingGood Rating = "good"
	RatingHard Rating = "hard"
)

func ParseRating(s string) (Rating, error) {
	switch Rating(s) {
	case RatingEasy, RatingGood, RatingHard:
		return Rating(s), nil
	default:
		return "", fmt.Errorf("unknown rating [%s]", s)
	}
}

type Progression struct {
	ID        string `json:"id"`
	EasyCount int    `json:"easyCount"`
	// CurrentDurationOverride is 0 until the first level up; once set it
	// never decreases, regardless of later hard/good ratings.
	CurrentDurationOverride int `json:"currentDurationOverride,omitempty"`
}

type Engine struct {
	store store.Store
	// serializes read-modify-write of the progressions map across requests
	mutex sync.Mutex
}

func NewEngine(s store.Store) *Engine {
	return &Engine{
		store: s,
	}
}

// RecordRating applies a difficulty rating for the given exercise and returns
// the updated progression record. Non-easy ratings reset the easy counter and
// leave any existing override untouched.
func (e *Engine) RecordRating(
	ctx context.Context,
	exerciseID string,
	rating Rating,
	nominalSeconds int,
) (Progression, error) {
	if !catalog.Exists(exerciseID) {
		return Progression{}, catalog.ErrUnknownExercise
	}

	e.mutex.Lock()
	defer e.mutex.Unlock()

	progressions := e.load(ctx)
	prog, ok := progressions[exerciseID]
	if !ok {
		prog = Progression{ID: exerciseID}
	}

	switch rating {
	case RatingEasy:
		prog.EasyCount++
		if prog.EasyCount >= levelUpAfter {
			base := prog.CurrentDurationOverride
			if base == 0 {
				base = nominalSeconds
			}
			prog.CurrentDurationOverride = base + levelUpIncrease(base)
			prog.EasyCount = 0
			log.Debugf(
				"progression: %s leveled up, duration %d -> %d",
				exerciseID, base, prog.CurrentDurationOverride,
			)
		}
	case RatingGood, RatingHard:
		// no de-escalation, the override stays where it is
		prog.EasyCount = 0
	default:
		return Progression{}, fmt.Errorf("unknown rating [%s]", rating)
	}

	progressions[exerciseID] = prog
	if err := e.save(ctx, progressions); err != nil {
		return Progression{}, err
	}

	return prog, nil
}

// EffectiveDuration implements catalog.DurationResolver.
func (e *Engine) EffectiveDuration(ctx context.Context, exerciseID string, nominalSeconds int) int {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	prog, ok := e.load(ctx)[exerciseID]
	if !ok || prog.CurrentDurationOverride == 0 {
		return nominalSeconds
	}
	return prog.CurrentDurationOverride
}

// Progressions returns all progression records, keyed by exercise id.
func (e *Engine) Progressions(ctx context.Context) map[string]Progression {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.load(ctx)
}

// levelUpIncrease is at least 5 seconds, otherwise 10% of the base
// rounded up to the nearest multiple of 5.
func levelUpIncrease(baseSeconds int) int {
	increase := (baseSeconds + 49) / 50 * 5 // ceil(base * 0.10 / 5) * 5
	if increase < 5 {
		increase = 5
	}
	return increase
}

// load reads the progressions map, treating an absent or unparseable value
// as an empty map. The tracker starts fresh rather than erroring out.
func (e *Engine) load(ctx context.Context) map[string]Progression {
	progressions := make(map[string]Progression)

	val, err := e.store.Get(ctx, progressionsKey)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Errorf("progression: load records: %s", err)
		}
		return progressions
	}

	if err := json.Unmarshal([]byte(val), &progressions); err != nil {
		log.Errorf("progression: malformed records, starting fresh: %s", err)
		return make(map[string]Progression)
	}

	return progressions
}

func (e *Engine) save(ctx context.Context, progressions map[string]Progression) error {
	progsJson, err := json.Marshal(progressions)
	if err != nil {
		return fmt.Errorf("marshal progressions: %w", err)
	}
	if err := e.store.Set(ctx, progressionsKey, string(progsJson)); err != nil {
		return fmt.Errorf("save progressions: %w", err)
	}
	return nil
}
