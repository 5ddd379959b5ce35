package router

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polkiloo/workouttracker/internal/config"
	"github.com/polkiloo/workouttracker/internal/domain/model"
	pkgAuth "github.com/polkiloo/workouttracker/internal/pkg/auth"
	"github.com/polkiloo/workouttracker/internal/server/http/handlers"
	"github.com/polkiloo/workouttracker/internal/server/http/middleware"
	testhelpers "github.com/polkiloo/workouttracker/internal/test"
)

func newEngine(t *testing.T, facade handlers.TrackerFacade) *gin.Engine {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	engine, err := Setup(facade, logger, &config.Config{CORSOrigins: []string{"*"}})
	require.NoError(t, err)
	return engine
}

func trackerStub() testhelpers.TrackerFacadeStub {
	return testhelpers.TrackerFacadeStub{
		AuthFacadeStub: testhelpers.AuthFacadeStub{
			ParseFn: func(token string) (pkgAuth.Identity, error) {
				if token != "good" {
					return pkgAuth.Identity{}, pkgAuth.ErrInvalidToken
				}
				return pkgAuth.Identity{UserID: "user-1", Username: "alice"}, nil
			},
		},
		WorkoutFacadeStub: testhelpers.WorkoutFacadeStub{
			ListFn: func(_ context.Context, userID string) ([]model.Workout, error) {
				at := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
				return []model.Workout{{ID: "w1", UserID: userID, Type: "run", Duration: 30, Date: at, CreatedAt: at}}, nil
			},
		},
	}
}

func serve(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	return resp
}

func TestSetupPublicRoutes(t *testing.T) {
	engine := newEngine(t, trackerStub())

	resp := serve(engine, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "Fitness Tracker API is running", resp.Body.String())
	assert.NotEmpty(t, resp.Header().Get(middleware.RequestIDHeader))

	resp = serve(engine, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, resp.Code)

	body, _ := json.Marshal(map[string]string{"username": "alice", "email": "a@x.com", "password": "pw"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp = serve(engine, req)
	assert.Equal(t, http.StatusCreated, resp.Code)

	body, _ = json.Marshal(map[string]string{"usernameOrEmail": "alice", "password": "pw"})
	req = httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp = serve(engine, req)
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = serve(engine, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.JSONEq(t, `{"message":"Not found"}`, resp.Body.String())
}

func TestSetupWorkoutRoutesRequireToken(t *testing.T) {
	engine := newEngine(t, trackerStub())

	routes := []struct {
		method string
		target string
	}{
		{http.MethodPost, "/api/workouts"},
		{http.MethodGet, "/api/workouts"},
		{http.MethodGet, "/api/workouts/recent"},
		{http.MethodGet, "/api/workouts/by-date?date=2024-03-10"},
		{http.MethodDelete, "/api/workouts/0b7c1c1e-2a53-4a51-9a3e-4f4f1c2b8a10"},
	}

	for _, r := range routes {
		resp := serve(engine, httptest.NewRequest(r.method, r.target, nil))
		assert.Equal(t, http.StatusUnauthorized, resp.Code, "%s %s without token", r.method, r.target)

		req := httptest.NewRequest(r.method, r.target, nil)
		req.Header.Set("Authorization", "Bearer bad")
		resp = serve(engine, req)
		assert.Equal(t, http.StatusUnauthorized, resp.Code, "%s %s with bad token", r.method, r.target)
		assert.JSONEq(t, `{"message":"Unauthorized"}`, resp.Body.String())
	}
}

func TestSetupWorkoutRoutesWithToken(t *testing.T) {
	engine := newEngine(t, trackerStub())

	req := httptest.NewRequest(http.MethodGet, "/api/workouts", nil)
	req.Header.Set("Authorization", "Bearer good")
	resp := serve(engine, req)
	require.Equal(t, http.StatusOK, resp.Code)

	var list struct {
		Workouts []map[string]any `json:"workouts"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &list))
	require.Len(t, list.Workouts, 1)
	assert.Equal(t, "user-1", list.Workouts[0]["userId"])

	req = httptest.NewRequest(http.MethodGet, "/api/workouts/by-date", nil)
	req.Header.Set("Authorization", "Bearer good")
	resp = serve(engine, req)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	req = httptest.NewRequest(http.MethodDelete, "/api/workouts/w1", nil)
	req.Header.Set("Authorization", "Bearer good")
	resp = serve(engine, req)
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestSetupAcceptsGzipBodies(t *testing.T) {
	var got model.NewWorkout
	facade := trackerStub()
	facade.AddFn = func(_ context.Context, userID string, in model.NewWorkout) (*model.Workout, error) {
		got = in
		return &model.Workout{ID: "w1", UserID: userID, Type: in.Type, Duration: *in.Duration}, nil
	}
	engine := newEngine(t, facade)

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(`{"type":"swim","duration":"45"}`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/workouts", &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Authorization", "Bearer good")
	resp := serve(engine, req)

	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	assert.Equal(t, "swim", got.Type)
	require.NotNil(t, got.Duration)
	assert.Equal(t, 45.0, *got.Duration)
}

func TestSetupCompressesResponses(t *testing.T) {
	engine := newEngine(t, trackerStub())

	req := httptest.NewRequest(http.MethodGet, "/api/workouts", nil)
	req.Header.Set("Authorization", "Bearer good")
	req.Header.Set("Accept-Encoding", "gzip")
	resp := serve(engine, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "gzip", resp.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(resp.Body)
	require.NoError(t, err)
	plain, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Contains(t, string(plain), `"type":"run"`)
}

func TestSetupCORSPreflight(t *testing.T) {
	engine := newEngine(t, trackerStub())

	req := httptest.NewRequest(http.MethodOptions, "/api/workouts", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")
	resp := serve(engine, req)

	assert.Equal(t, http.StatusNoContent, resp.Code)
	assert.Equal(t, "*", resp.Header().Get("Access-Control-Allow-Origin"))
}

func TestSetupHealthUnavailable(t *testing.T) {
	facade := trackerStub()
	facade.HealthFacadeStub = testhelpers.HealthFacadeStub{Err: errors.New("ping failed")}
	engine := newEngine(t, facade)

	resp := serve(engine, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
}

func TestSetupRejectsInvalidCORSConfig(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	_, err := Setup(trackerStub(), logger, &config.Config{CORSOrigins: []string{"not a url"}})
	assert.Error(t, err)
}

var _ handlers.TrackerFacade = testhelpers.TrackerFacadeStub{}
