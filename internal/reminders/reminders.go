// Package reminders persists the daily workout reminder settings: the
// reminder time of day and whether notifications are enabled at all.
// Delivering the notifications is up to the clients.
package reminders

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/ironroutine/internal/store"
)

const (
	reminderTimeKey  = "reminder_time"
	notificationsKey = "notifications_enabled"

	timeLayout = "15:04"

	// evening nudge, matches the default the clients start with
	DefaultReminderTime = "20:00"
)

var ErrInvalidReminderTime = errors.New("invalid reminder time")

type Settings struct {
	// ReminderTime is a 24h wall clock time in HH:MM form
	ReminderTime         string `json:"reminderTime"`
	NotificationsEnabled bool   `json:"notificationsEnabled"`
}

type Service struct {
	store store.Store
	mutex sync.Mutex
}

func NewService(s store.Store) *Service {
	return &Service{
		store: s,
	}
}

// Settings returns the stored reminder settings, falling back to the
// defaults (20:00, notifications off) for anything absent or malformed.
func (s *Service) Settings(ctx context.Context) Settings {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	settings := Settings{
		ReminderTime: DefaultReminderTime,
	}

	if val, err := s.store.Get(ctx, reminderTimeKey); err == nil {
		if _, parseErr := time.Parse(timeLayout, val); parseErr == nil {
			settings.ReminderTime = val
		} else {
			log.Errorf("reminders: malformed reminder time [%s], using default", val)
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Errorf("reminders: load reminder time: %s", err)
	}

	if val, err := s.store.Get(ctx, notificationsKey); err == nil {
		enabled, parseErr := strconv.ParseBool(val)
		if parseErr != nil {
			log.Errorf("reminders: malformed notifications flag [%s], using default", val)
		}
		settings.NotificationsEnabled = enabled && parseErr == nil
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Errorf("reminders: load notifications flag: %s", err)
	}

	return settings
}

// Update validates and persists the given settings.
func (s *Service) Update(ctx context.Context, settings Settings) error {
	if _, err := time.Parse(timeLayout, settings.ReminderTime); err != nil {
		return fmt.Errorf("%w [%s]: %v", ErrInvalidReminderTime, settings.ReminderTime, err)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err := s.store.Set(ctx, reminderTimeKey, settings.ReminderTime); err != nil {
		return fmt.Errorf("save reminder time: %w", err)
	}
	if err := s.store.Set(ctx, notificationsKey, strconv.FormatBool(settings.NotificationsEnabled)); err != nil {
		return fmt.Errorf("save notifications flag: %w", err)
	}

	return nil
}
