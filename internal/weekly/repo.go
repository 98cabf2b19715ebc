// Package weekly stores the once-a-week body metrics log: pelvic floor max
// hold, dead hang time and a subjective vascularity rating.
package weekly

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/ironroutine/internal/calendar"
	"github.com/2beens/ironroutine/internal/store"
)

const (
	metricsKey = "weekly_metrics"

	cacheSize          = 256 * 1024
	cacheExpireSeconds = 5 * 60

	minVisualRating = 1
	maxVisualRating = 10
)

type Entry struct {
	Date            calendar.Date `json:"date"`
	PelvicEndurance int           `json:"pelvicEndurance"`
	GripEndurance   int           `json:"gripEndurance"`
	VisualRating    int           `json:"visualRating"`
}

// Repo keeps the full metrics history as a single json document in the
// store, newest entry first. Reads go through a small in-process cache.
type Repo struct {
	store store.Store
	cache *freecache.Cache
	mutex sync.Mutex
}

func NewRepo(s store.Store) *Repo {
	return &Repo{
		store: s,
		cache: freecache.NewCache(cacheSize),
	}
}

// Entries returns the metrics history, newest first. An empty history
// yields an empty slice, not an error.
func (r *Repo) Entries(ctx context.Context) ([]Entry, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.entries(ctx)
}

// Add validates the entry, prepends it to the history and persists the
// updated list. The visual rating gets clamped to the 1 to 10 scale.
func (r *Repo) Add(ctx context.Context, entry Entry) ([]Entry, error) {
	if entry.Date.IsZero() {
		return nil, errors.New("entry date empty")
	}
	if entry.PelvicEndurance < 0 || entry.GripEndurance < 0 {
		return nil, errors.New("endurance seconds negative")
	}

	if entry.VisualRating < minVisualRating {
		entry.VisualRating = minVisualRating
	} else if entry.VisualRating > maxVisualRating {
		entry.VisualRating = maxVisualRating
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	entries, err := r.entries(ctx)
	if err != nil {
		return nil, err
	}

	entries = append([]Entry{entry}, entries...)

	entriesJson, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("marshal weekly metrics: %w", err)
	}
	if err := r.store.Set(ctx, metricsKey, string(entriesJson)); err != nil {
		return nil, fmt.Errorf("save weekly metrics: %w", err)
	}

	r.cache.Del([]byte(metricsKey))

	return entries, nil
}

func (r *Repo) entries(ctx context.Context) ([]Entry, error) {
	if cached, err := r.cache.Get([]byte(metricsKey)); err == nil {
		var entries []Entry
		if err := json.Unmarshal(cached, &entries); err == nil {
			return entries, nil
		}
		r.cache.Del([]byte(metricsKey))
	}

	val, err := r.store.Get(ctx, metricsKey)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []Entry{}, nil
		}
		return nil, fmt.Errorf("load weekly metrics: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal([]byte(val), &entries); err != nil {
		log.Errorf("weekly: malformed metrics history, starting fresh: %s", err)
		return []Entry{}, nil
	}

	if err := r.cache.Set([]byte(metricsKey), []byte(val), cacheExpireSeconds); err != nil {
		log.Warnf("weekly: cache metrics history: %s", err)
	}

	return entries, nil
}
