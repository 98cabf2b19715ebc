// Package routine owns the per-day exercise completion state and the
// daily-workout streak counter.
package routine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"sync"

	"github.com/2beens/ironroutine/internal/calendar"
	"github.com/2beens/ironroutine/internal/catalog"
	"github.com/2beens/ironroutine/internal/store"

	log "github.com/sirupsen/logrus"
)

const (
	progressKeyPrefix = "workout_progress_"
	streakCountKey    = "streak_count"
	lastLoggedDateKey = "last_logged_date"
)

type Tracker struct {
	store store.Store
	// serializes read-modify-write of the completion map and streak keys
	mutex sync.Mutex
}

func NewTracker(s store.Store) *Tracker {
	return &Tracker{
		store: s,
	}
}

// Completions returns the completion map for the given day. Absent or
// malformed state yields an empty map, never an error.
func (t *Tracker) Completions(ctx context.Context, day calendar.Date) map[string]bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.loadCompletions(ctx, day)
}

// ToggleCompletion flips the completed flag of the given exercise for the
// given day and persists the updated map immediately.
func (t *Tracker) ToggleCompletion(
	ctx context.Context,
	day calendar.Date,
	exerciseID string,
) (map[string]bool, error) {
	if !catalog.Exists(exerciseID) {
		return nil, catalog.ErrUnknownExercise
	}

	t.mutex.Lock()
	defer t.mutex.Unlock()

	completions := t.loadCompletions(ctx, day)
	completions[exerciseID] = !completions[exerciseID]

	completionsJson, err := json.Marshal(completions)
	if err != nil {
		return nil, fmt.Errorf("marshal completions: %w", err)
	}
	if err := t.store.Set(ctx, progressKeyPrefix+day.String(), string(completionsJson)); err != nil {
		return nil, fmt.Errorf("save completions: %w", err)
	}

	return completions, nil
}

// LogWorkout marks today's workout as done and advances the streak:
//   - already logged today: no-op, the current streak is returned
//   - last log was exactly yesterday: streak + 1
//   - anything else (first log ever, or a gap of more than one calendar
//     day): the streak collapses back to 1 - logging always means at
//     least today counts
func (t *Tracker) LogWorkout(ctx context.Context, today calendar.Date) (int, error) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	lastLogged := t.loadLastLoggedDate(ctx)
	streak := t.loadStreakCount(ctx)

	if lastLogged == today {
		return streak, nil
	}

	if !lastLogged.IsZero() && lastLogged.DaysBetween(today) == 1 {
		streak++
	} else {
		streak = 1
	}

	if err := t.store.Set(ctx, streakCountKey, strconv.Itoa(streak)); err != nil {
		return 0, fmt.Errorf("save streak count: %w", err)
	}
	if err := t.store.Set(ctx, lastLoggedDateKey, today.String()); err != nil {
		return 0, fmt.Errorf("save last logged date: %w", err)
	}

	log.Debugf("workout logged for %s, streak: %d", today, streak)

	return streak, nil
}

// Streak returns the current streak count, 0 when nothing was ever logged.
func (t *Tracker) Streak(ctx context.Context) int {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.loadStreakCount(ctx)
}

func (t *Tracker) IsLoggedToday(ctx context.Context, today calendar.Date) bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.loadLastLoggedDate(ctx) == today
}

// ProgressPercentage returns the rounded percentage of the workout's
// exercises marked completed. Completion entries for exercises outside the
// workout are ignored, and an empty workout yields 0.
func ProgressPercentage(completions map[string]bool, workout catalog.Workout) int {
	total := len(workout.Exercises)
	if total == 0 {
		return 0
	}

	completed := 0
	for _, e := range workout.Exercises {
		if completions[e.ID] {
			completed++
		}
	}

	return int(math.Round(100 * float64(completed) / float64(total)))
}

func (t *Tracker) loadCompletions(ctx context.Context, day calendar.Date) map[string]bool {
	completions := make(map[string]bool)

	val, err := t.store.Get(ctx, progressKeyPrefix+day.String())
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Errorf("routine: load completions for %s: %s", day, err)
		}
		return completions
	}

	if err := json.Unmarshal([]byte(val), &completions); err != nil {
		log.Errorf("routine: malformed completions for %s, starting fresh: %s", day, err)
		return make(map[string]bool)
	}

	return completions
}

func (t *Tracker) loadStreakCount(ctx context.Context) int {
	val, err := t.store.Get(ctx, streakCountKey)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Errorf("routine: load streak count: %s", err)
		}
		return 0
	}

	streak, err := strconv.Atoi(val)
	if err != nil || streak < 0 {
		log.Errorf("routine: malformed streak count [%s], starting fresh", val)
		return 0
	}

	return streak
}

func (t *Tracker) loadLastLoggedDate(ctx context.Context) calendar.Date {
	val, err := t.store.Get(ctx, lastLoggedDateKey)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Errorf("routine: load last logged date: %s", err)
		}
		return calendar.Date{}
	}

	day, err := calendar.Parse(val)
	if err != nil {
		log.Errorf("routine: malformed last logged date [%s], starting fresh", val)
		return calendar.Date{}
	}

	return day
}
