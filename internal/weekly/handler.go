package weekly

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/ironroutine/internal/calendar"
	"github.com/2beens/ironroutine/internal/telemetry/tracing"
	"github.com/2beens/ironroutine/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=weekly_mocks_test.go -package=weekly_test

type metricsRepo interface {
	Entries(ctx context.Context) ([]Entry, error)
	Add(ctx context.Context, entry Entry) ([]Entry, error)
}

type AddEntryRequest struct {
	PelvicEndurance int `json:"pelvicEndurance"`
	GripEndurance   int `json:"gripEndurance"`
	VisualRating    int `json:"visualRating"`
}

type EntriesResponse struct {
	Entries []Entry `json:"entries"`
}

type Handler struct {
	repo     metricsRepo
	location *time.Location
}

func NewHandler(repo metricsRepo, location *time.Location) *Handler {
	return &Handler{
		repo:     repo,
		location: location,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weekly.list")
	defer span.End()

	entries, err := handler.repo.Entries(ctx)
	if err != nil {
		span.RecordError(err)
		log.Errorf("list weekly metrics: %s", err)
		http.Error(w, "list metrics failed", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(EntriesResponse{Entries: entries})
	if err != nil {
		log.Errorf("marshal weekly metrics response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weekly.add")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req AddEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("add weekly metrics, unmarshal json params: %s", err)
		http.Error(w, "add metrics failed", http.StatusBadRequest)
		return
	}

	entries, err := handler.repo.Add(ctx, Entry{
		Date:            calendar.Today(handler.location),
		PelvicEndurance: req.PelvicEndurance,
		GripEndurance:   req.GripEndurance,
		VisualRating:    req.VisualRating,
	})
	if err != nil {
		span.RecordError(err)
		log.Errorf("add weekly metrics entry: %s", err)
		http.Error(w, "add metrics failed", http.StatusBadRequest)
		return
	}

	respJson, err := json.Marshal(EntriesResponse{Entries: entries})
	if err != nil {
		log.Errorf("marshal weekly metrics response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
