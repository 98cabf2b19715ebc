package routine

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/ironroutine/internal/calendar"
	"github.com/2beens/ironroutine/internal/catalog"
	"github.com/2beens/ironroutine/internal/telemetry/metrics"
	"github.com/2beens/ironroutine/internal/telemetry/tracing"
	"github.com/2beens/ironroutine/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=routine_mocks_test.go -package=routine_test

type progressTracker interface {
	Completions(ctx context.Context, day calendar.Date) map[string]bool
	ToggleCompletion(ctx context.Context, day calendar.Date, exerciseID string) (map[string]bool, error)
	LogWorkout(ctx context.Context, today calendar.Date) (int, error)
	Streak(ctx context.Context) int
	IsLoggedToday(ctx context.Context, today calendar.Date) bool
}

type TodayResponse struct {
	Date        string          `json:"date"`
	Workout     catalog.Workout `json:"workout"`
	Completions map[string]bool `json:"completions"`
	Percentage  int             `json:"percentage"`
	Streak      int             `json:"streak"`
	LoggedToday bool            `json:"loggedToday"`
}

type ToggleResponse struct {
	Completions map[string]bool `json:"completions"`
	Percentage  int             `json:"percentage"`
}

type LogWorkoutResponse struct {
	Streak      int  `json:"streak"`
	LoggedToday bool `json:"loggedToday"`
}

type Handler struct {
	tracker   progressTracker
	durations catalog.DurationResolver
	metrics   *metrics.Manager
	location  *time.Location
}

func NewHandler(
	tracker progressTracker,
	durations catalog.DurationResolver,
	metricsManager *metrics.Manager,
	location *time.Location,
) *Handler {
	return &Handler{
		tracker:   tracker,
		durations: durations,
		metrics:   metricsManager,
		location:  location,
	}
}

func (handler *Handler) HandleToday(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routine.today")
	defer span.End()

	today := calendar.Today(handler.location)
	workout := catalog.DailyWorkout(ctx, today, handler.durations)
	completions := handler.tracker.Completions(ctx, today)

	resp := TodayResponse{
		Date:        today.String(),
		Workout:     workout,
		Completions: completions,
		Percentage:  ProgressPercentage(completions, workout),
		Streak:      handler.tracker.Streak(ctx),
		LoggedToday: handler.tracker.IsLoggedToday(ctx, today),
	}

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("marshal today response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routine.toggle")
	defer span.End()

	vars := mux.Vars(r)
	exerciseID := vars["exerciseId"]
	if exerciseID == "" {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}

	today := calendar.Today(handler.location)
	completions, err := handler.tracker.ToggleCompletion(ctx, today, exerciseID)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, catalog.ErrUnknownExercise) {
			http.Error(w, "error, unknown exercise", http.StatusBadRequest)
			return
		}
		log.Errorf("toggle completion [%s] for %s: %s", exerciseID, today, err)
		http.Error(w, "toggle completion failed", http.StatusInternalServerError)
		return
	}

	workout := catalog.DailyWorkout(ctx, today, handler.durations)
	respJson, err := json.Marshal(ToggleResponse{
		Completions: completions,
		Percentage:  ProgressPercentage(completions, workout),
	})
	if err != nil {
		log.Errorf("marshal toggle response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	log.Debugf("completion toggled [%s] for %s", exerciseID, today)

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routine.log")
	defer span.End()

	today := calendar.Today(handler.location)
	streak, err := handler.tracker.LogWorkout(ctx, today)
	if err != nil {
		span.RecordError(err)
		log.Errorf("log workout for %s: %s", today, err)
		http.Error(w, "log workout failed", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterWorkoutsLogged.Inc()

	respJson, err := json.Marshal(LogWorkoutResponse{Streak: streak, LoggedToday: true})
	if err != nil {
		log.Errorf("marshal log workout response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
