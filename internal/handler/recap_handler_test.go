package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
	"github.com/jmo2498/MLB/internal/model"
)

type fakeRecapStore struct {
	recap  *model.StoredRecap
	recaps []model.StoredRecap
	total  int
	err    error

	gotGamePk, gotTeamID int
	gotLimit, gotOffset  int
}

func (f *fakeRecapStore) GetRecap(gamePk, teamID int) (*model.StoredRecap, error) {
	f.gotGamePk, f.gotTeamID = gamePk, teamID
	return f.recap, f.err
}

func (f *fakeRecapStore) GetRecaps(limit, offset int) ([]model.StoredRecap, error) {
	f.gotLimit, f.gotOffset = limit, offset
	return f.recaps, f.err
}

func (f *fakeRecapStore) GetRecapTotal() (int, error) {
	return f.total, f.err
}

type fakeQueue struct {
	jobs []model.RecapJob
	err  error
}

func (f *fakeQueue) Enqueue(ctx context.Context, date string, teamID int) (*model.RecapJob, error) {
	if f.err != nil {
		return nil, f.err
	}
	job := model.RecapJob{ID: "job-1", Date: date, TeamID: teamID, QueuedAt: time.Date(2024, 7, 5, 12, 0, 0, 0, time.UTC)}
	f.jobs = append(f.jobs, job)
	return &job, nil
}

func newTestRecapRouter(store RecapStore, queue JobQueue) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewRecapHandler(store, queue)
	r.GET("/recaps", h.GetRecaps)
	r.GET("/recaps/:gamePk", h.GetRecap)
	r.POST("/recaps", h.CreateRecapJob)
	return r
}

func storedRecap(id int64, gamePk int) model.StoredRecap {
	now := time.Now()
	return model.StoredRecap{
		ID:        id,
		GamePk:    gamePk,
		TeamID:    147,
		GameDate:  "2024-07-04",
		ModelUsed: "gpt-4o-mini",
		CreatedAt: now,
		UpdatedAt: now,
		Summary:   model.GameSummary{GamePk: gamePk, ConciseSummary: "Yankees win."},
	}
}

func TestGetRecaps_ReturnsPage(t *testing.T) {
	store := &fakeRecapStore{
		recaps: []model.StoredRecap{storedRecap(2, 745805), storedRecap(1, 745804)},
		total:  2,
	}
	r := newTestRecapRouter(store, &fakeQueue{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/recaps?limit=500&offset=-1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 100, store.gotLimit)
	assert.Equal(t, 0, store.gotOffset)

	var res RecapsResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, 2, len(res.Recaps))
	assert.Equal(t, 745805, res.Recaps[0].GamePk)
	assert.Equal(t, "Yankees win.", res.Recaps[0].Recap.ConciseSummary)
}

func TestGetRecaps_DefaultLimit(t *testing.T) {
	store := &fakeRecapStore{}
	r := newTestRecapRouter(store, &fakeQueue{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/recaps", nil))

	var res RecapsResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10, res.Limit)
	assert.Equal(t, 0, res.Offset)
	assert.Equal(t, 0, len(res.Recaps))
}

func TestGetRecaps_DBError(t *testing.T) {
	store := &fakeRecapStore{err: errors.New("DB down")}
	r := newTestRecapRouter(store, &fakeQueue{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/recaps", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetRecap_Found(t *testing.T) {
	stored := storedRecap(1, 745804)
	store := &fakeRecapStore{recap: &stored}
	r := newTestRecapRouter(store, &fakeQueue{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/recaps/745804?team_id=147", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 745804, store.gotGamePk)
	assert.Equal(t, 147, store.gotTeamID)

	var res RecapResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, int64(1), res.ID)
	assert.Equal(t, "gpt-4o-mini", res.ModelUsed)
	assert.Equal(t, 745804, res.Recap.GamePk)
}

func TestGetRecap_NotFound(t *testing.T) {
	r := newTestRecapRouter(&fakeRecapStore{}, &fakeQueue{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/recaps/999?team_id=147", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRecap_InvalidParams(t *testing.T) {
	r := newTestRecapRouter(&fakeRecapStore{}, &fakeQueue{})

	for _, url := range []string{"/recaps/abc?team_id=147", "/recaps/745804", "/recaps/745804?team_id=x"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", url, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestCreateRecapJob_Queued(t *testing.T) {
	queue := &fakeQueue{}
	r := newTestRecapRouter(&fakeRecapStore{}, queue)

	body, _ := json.Marshal(RecapJobRequest{Date: "2024-07-04", TeamID: 147})
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/recaps", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, 1, len(queue.jobs))
	assert.Equal(t, 147, queue.jobs[0].TeamID)

	var res RecapJobResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "job-1", res.JobID)
	assert.Equal(t, "2024-07-04", res.Date)
	assert.Equal(t, "2024-07-05T12:00:00Z", res.QueuedAt)
}

func TestCreateRecapJob_Invalid(t *testing.T) {
	queue := &fakeQueue{}
	r := newTestRecapRouter(&fakeRecapStore{}, queue)

	for _, body := range []string{`not json`, `{"date": "2024-07-04"}`, `{"date": "July 4", "team_id": 147}`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/recaps", bytes.NewReader([]byte(body)))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	assert.Equal(t, 0, len(queue.jobs))
}

func TestCreateRecapJob_QueueError(t *testing.T) {
	r := newTestRecapRouter(&fakeRecapStore{}, &fakeQueue{err: errors.New("redis down")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/recaps", bytes.NewReader([]byte(`{"date": "2024-07-04", "team_id": 147}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	healthy := NewHealthHandler(map[string]HealthCheck{
		"database": func(ctx context.Context) error { return nil },
	})
	r := gin.New()
	r.GET("/health", healthy.GetHealth)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", res["status"])
	assert.Equal(t, "connected", res["database"])

	unhealthy := NewHealthHandler(map[string]HealthCheck{
		"database": func(ctx context.Context) error { return nil },
		"redis":    func(ctx context.Context) error { return errors.New("refused") },
	})
	r = gin.New()
	r.GET("/health", unhealthy.GetHealth)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	res = map[string]string{}
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "unhealthy", res["status"])
	assert.Equal(t, "disconnected", res["redis"])
	assert.Equal(t, "connected", res["database"])
}

func TestGetHealth_QueueLength(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewHealthHandler(map[string]HealthCheck{
		"redis": func(ctx context.Context) error { return nil },
	}).
		WithGauge("queue_length", func(ctx context.Context) (int64, error) { return 4, nil }).
		WithGauge("failed_length", func(ctx context.Context) (int64, error) { return 0, errors.New("refused") })

	r := gin.New()
	r.GET("/health", h.GetHealth)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	var res map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", res["status"])
	assert.Equal(t, float64(4), res["queue_length"])

	_, reported := res["failed_length"]
	assert.Equal(t, false, reported)
}
