// Package readiness covers the morning readiness check: a single 1 to 3
// score (1 worn out, 2 moderate, 3 peak condition) submitted once per day.
package readiness

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/ironroutine/internal/calendar"
	"github.com/2beens/ironroutine/internal/store"
)

const (
	checkDateKey = "readiness_check_date"
	scoreKey     = "readiness_score"

	ScoreWornOut  = 1
	ScoreModerate = 2
	ScorePeak     = 3
)

var ErrInvalidScore = errors.New("readiness score out of range")

type Status struct {
	CheckedToday bool `json:"checkedToday"`
	// Score is the last submitted score, 0 when nothing was ever submitted
	Score int `json:"score"`
}

type Checker struct {
	store store.Store
	mutex sync.Mutex
}

func NewChecker(s store.Store) *Checker {
	return &Checker{
		store: s,
	}
}

// Check returns whether the readiness survey was already answered today,
// along with the last recorded score.
func (c *Checker) Check(ctx context.Context, today calendar.Date) Status {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return Status{
		CheckedToday: c.loadCheckDate(ctx) == today,
		Score:        c.loadScore(ctx),
	}
}

// Submit records today's readiness score. Submitting again on the same day
// simply overwrites the previous answer.
func (c *Checker) Submit(ctx context.Context, today calendar.Date, score int) error {
	if score < ScoreWornOut || score > ScorePeak {
		return fmt.Errorf("%w: %d", ErrInvalidScore, score)
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if err := c.store.Set(ctx, checkDateKey, today.String()); err != nil {
		return fmt.Errorf("save readiness check date: %w", err)
	}
	if err := c.store.Set(ctx, scoreKey, strconv.Itoa(score)); err != nil {
		return fmt.Errorf("save readiness score: %w", err)
	}

	return nil
}

func (c *Checker) loadCheckDate(ctx context.Context) calendar.Date {
	val, err := c.store.Get(ctx, checkDateKey)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Errorf("readiness: load check date: %s", err)
		}
		return calendar.Date{}
	}

	day, err := calendar.Parse(val)
	if err != nil {
		log.Errorf("readiness: malformed check date [%s], starting fresh", val)
		return calendar.Date{}
	}

	return day
}

func (c *Checker) loadScore(ctx context.Context) int {
	val, err := c.store.Get(ctx, scoreKey)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Errorf("readiness: load score: %s", err)
		}
		return 0
	}

	score, err := strconv.Atoi(val)
	if err != nil || score < ScoreWornOut || score > ScorePeak {
		log.Errorf("readiness: malformed score [%s], starting fresh", val)
		return 0
	}

	return score
}
