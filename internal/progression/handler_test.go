package progression_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/2beens/ironroutine/internal/catalog"
	"github.com/2beens/ironroutine/internal/progression"
	"github.com/2beens/ironroutine/internal/telemetry/metrics"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_HandleRate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deadHang, err := catalog.ByID(catalog.DeadHang)
	require.NoError(t, err)

	engine := NewMockratingRecorder(ctrl)
	engine.EXPECT().
		RecordRating(gomock.Any(), catalog.DeadHang, progression.RatingEasy, deadHang.DurationSeconds).
		Return(progression.Progression{ID: catalog.DeadHang, EasyCount: 1}, nil)

	handler := progression.NewHandler(engine, metrics.NewTestManager())

	req := httptest.NewRequest(
		"POST", "/progression/rate",
		strings.NewReader(`{"exerciseId":"deadHang","rating":"easy"}`),
	)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.HandleRate(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp progression.RateResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, catalog.DeadHang, resp.Progression.ID)
	assert.Equal(t, 1, resp.Progression.EasyCount)
}

func TestHandler_HandleRate_invalidRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := progression.NewHandler(NewMockratingRecorder(ctrl), metrics.NewTestManager())

	for name, tc := range map[string]struct {
		contentType string
		body        string
	}{
		"wrong content type": {
			contentType: "text/plain",
			body:        `{"exerciseId":"deadHang","rating":"easy"}`,
		},
		"broken json": {
			contentType: "application/json",
			body:        `{not json`,
		},
		"invalid rating": {
			contentType: "application/json",
			body:        `{"exerciseId":"deadHang","rating":"brutal"}`,
		},
		"unknown exercise": {
			contentType: "application/json",
			body:        `{"exerciseId":"shadow-boxing","rating":"easy"}`,
		},
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/progression/rate", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", tc.contentType)
			rr := httptest.NewRecorder()
			handler.HandleRate(rr, req)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestHandler_HandleList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	progressions := map[string]progression.Progression{
		catalog.DeadHang: {ID: catalog.DeadHang, CurrentDurationOverride: 70},
	}

	engine := NewMockratingRecorder(ctrl)
	engine.EXPECT().Progressions(gomock.Any()).Return(progressions)

	handler := progression.NewHandler(engine, metrics.NewTestManager())

	req := httptest.NewRequest("GET", "/progression", nil)
	rr := httptest.NewRecorder()
	handler.HandleList(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp progression.ListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, progressions, resp.Progressions)
}
