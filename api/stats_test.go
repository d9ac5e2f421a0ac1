package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/LeonSantana7/forms/schema"
)

func TestSurveyStatsRequiresToken(t *testing.T) {
	store := &stubStore{}
	s := newTestServer(store)

	w := performRequest(s, http.MethodGet, "/api/admin/stats", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	// an unauthorized request must never reach the store
	assert.Equal(t, 0, store.listCalls)
}

func TestSurveyStatsRejectsWrongToken(t *testing.T) {
	store := &stubStore{}
	s := newTestServer(store)

	header := http.Header{}
	header.Set(adminTokenHeader, "not-the-token")

	w := performRequest(s, http.MethodGet, "/api/admin/stats", "", header)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, store.listCalls)
}

func TestSurveyStatsLocksWhenTokenUnconfigured(t *testing.T) {
	store := &stubStore{}
	s := NewServer(store, Config{})

	header := http.Header{}
	header.Set(adminTokenHeader, "")

	w := performRequest(s, http.MethodGet, "/api/admin/stats", "", header)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, store.listCalls)
}

func TestSurveyStats(t *testing.T) {
	now := time.Now().UTC()
	store := &stubStore{
		responses: []schema.SurveyResponse{
			{
				ID:        primitive.NewObjectID(),
				Q1:        schema.MultiChoice{Options: []string{"WhatsApp"}},
				Q4:        5,
				Q5:        "Sim, muito!",
				City:      "Recife",
				CreatedAt: now,
			},
			{
				ID:        primitive.NewObjectID(),
				Q4:        3,
				CreatedAt: now.Add(-time.Minute),
			},
		},
	}
	s := newTestServer(store)

	header := http.Header{}
	header.Set(adminTokenHeader, testAdminToken)

	w := performRequest(s, http.MethodGet, "/api/admin/stats", "", header)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, store.listCalls)

	var report schema.StatsReport
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 2, report.TodayCount)
	assert.Equal(t, 4.0, report.Q4.Avg)
	assert.Equal(t, map[string]int{"WhatsApp": 1}, report.Q1)
	assert.Len(t, report.Recent, 2)
}

func TestSurveyStatsStoreFailure(t *testing.T) {
	store := &stubStore{listErr: fmt.Errorf("cursor timeout")}
	s := newTestServer(store)

	header := http.Header{}
	header.Set(adminTokenHeader, testAdminToken)

	w := performRequest(s, http.MethodGet, "/api/admin/stats", "", header)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHealthz(t *testing.T) {
	s := newTestServer(&stubStore{})

	w := performRequest(s, http.MethodGet, "/healthz", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}

func TestHealthzStoreDown(t *testing.T) {
	s := newTestServer(&stubStore{pingErr: fmt.Errorf("no reachable servers")})

	w := performRequest(s, http.MethodGet, "/healthz", "", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
