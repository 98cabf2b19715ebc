package progression

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/ironroutine/internal/catalog"
	"github.com/2beens/ironroutine/internal/telemetry/metrics"
	"github.com/2beens/ironroutine/internal/telemetry/tracing"
	"github.com/2beens/ironroutine/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=progression_mocks_test.go -package=progression_test

type ratingRecorder interface {
	RecordRating(ctx context.Context, exerciseID string, rating Rating, nominalSeconds int) (Progression, error)
	Progressions(ctx context.Context) map[string]Progression
}

type RateRequest struct {
	ExerciseID string `json:"exerciseId"`
	Rating     string `json:"rating"`
}

type RateResponse struct {
	Progression Progression `json:"progression"`
}

type ListResponse struct {
	Progressions map[string]Progression `json:"progressions"`
}

type Handler struct {
	engine  ratingRecorder
	metrics *metrics.Manager
}

func NewHandler(engine ratingRecorder, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		engine:  engine,
		metrics: metricsManager,
	}
}

func (handler *Handler) HandleRate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.rate")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req RateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("rate exercise, unmarshal json params: %s", err)
		http.Error(w, "rate exercise failed", http.StatusBadRequest)
		return
	}

	rating, err := ParseRating(req.Rating)
	if err != nil {
		http.Error(w, "error, invalid rating", http.StatusBadRequest)
		return
	}

	exercise, err := catalog.ByID(req.ExerciseID)
	if err != nil {
		http.Error(w, "error, unknown exercise", http.StatusBadRequest)
		return
	}

	prog, err := handler.engine.RecordRating(ctx, exercise.ID, rating, exercise.DurationSeconds)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, catalog.ErrUnknownExercise) {
			http.Error(w, "error, unknown exercise", http.StatusBadRequest)
			return
		}
		log.Errorf("record rating [%s] for [%s]: %s", rating, exercise.ID, err)
		http.Error(w, "rate exercise failed", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterRatingsRecorded.Inc()

	respJson, err := json.Marshal(RateResponse{Progression: prog})
	if err != nil {
		log.Errorf("marshal rate response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.list")
	defer span.End()

	respJson, err := json.Marshal(ListResponse{
		Progressions: handler.engine.Progressions(ctx),
	})
	if err != nil {
		log.Errorf("marshal progressions response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
