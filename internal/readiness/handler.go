package readiness

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/ironroutine/internal/calendar"
	"github.com/2beens/ironroutine/internal/telemetry/tracing"
	"github.com/2beens/ironroutine/pkg"
)

type SubmitRequest struct {
	Score int `json:"score"`
}

type Handler struct {
	checker  *Checker
	location *time.Location
}

func NewHandler(checker *Checker, location *time.Location) *Handler {
	return &Handler{
		checker:  checker,
		location: location,
	}
}

func (handler *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.readiness.status")
	defer span.End()

	status := handler.checker.Check(ctx, calendar.Today(handler.location))

	respJson, err := json.Marshal(status)
	if err != nil {
		log.Errorf("marshal readiness status: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.readiness.submit")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("submit readiness, unmarshal json params: %s", err)
		http.Error(w, "submit readiness failed", http.StatusBadRequest)
		return
	}

	today := calendar.Today(handler.location)
	if err := handler.checker.Submit(ctx, today, req.Score); err != nil {
		span.RecordError(err)
		if errors.Is(err, ErrInvalidScore) {
			http.Error(w, "error, invalid score", http.StatusBadRequest)
			return
		}
		log.Errorf("submit readiness score for %s: %s", today, err)
		http.Error(w, "submit readiness failed", http.StatusInternalServerError)
		return
	}

	status := handler.checker.Check(ctx, today)
	respJson, err := json.Marshal(status)
	if err != nil {
		log.Errorf("marshal readiness status: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
