package reminders

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/ironroutine/internal/telemetry/tracing"
	"github.com/2beens/ironroutine/pkg"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reminders.get")
	defer span.End()

	respJson, err := json.Marshal(handler.service.Settings(ctx))
	if err != nil {
		log.Errorf("marshal reminder settings: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reminders.update")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var settings Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		log.Tracef("update reminders, unmarshal json params: %s", err)
		http.Error(w, "update reminders failed", http.StatusBadRequest)
		return
	}

	if err := handler.service.Update(ctx, settings); err != nil {
		span.RecordError(err)
		if errors.Is(err, ErrInvalidReminderTime) {
			http.Error(w, "error, invalid reminder time", http.StatusBadRequest)
			return
		}
		log.Errorf("update reminder settings: %s", err)
		http.Error(w, "update reminders failed", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(handler.service.Settings(ctx))
	if err != nil {
		log.Errorf("marshal reminder settings: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
