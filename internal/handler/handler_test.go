package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/deppfellow/devmatch/internal/config"
	"github.com/deppfellow/devmatch/internal/errs"
	"github.com/deppfellow/devmatch/internal/lib/stmt"
	"github.com/deppfellow/devmatch/internal/middleware"
	"github.com/deppfellow/devmatch/internal/model"
	"github.com/deppfellow/devmatch/internal/server"
	"github.com/deppfellow/devmatch/internal/service"
	"github.com/deppfellow/devmatch/internal/sqlerr"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{
			Primary:       config.Primary{Env: "test"},
			Observability: config.DefaultObservabilityConfig(),
		},
		Logger: &logger,
	}
}

func newTestEcho(s *server.Server) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = middleware.NewGlobalMiddlewares(s).GlobalErrorHandler
	return e
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// developerStore records the last update it received. Updates go through
// the statement builder first, so an empty body fails the way the database
// repository does.
type developerStore struct {
	mu        sync.Mutex
	last      *model.UpdateDeveloperRequest
	lastQuery string
	rows      map[int64]*model.Developer
}

func (s *developerStore) List(ctx context.Context) ([]model.Developer, error) {
	return []model.Developer{}, nil
}

func (s *developerStore) GetByID(ctx context.Context, id int64) (*model.Developer, error) {
	if d, ok := s.rows[id]; ok {
		return d, nil
	}
	return nil, sqlerr.NotFound("developers")
}

func (s *developerStore) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := s.rows[id]
	return ok, nil
}

func (s *developerStore) Create(ctx context.Context, req *model.CreateDeveloperRequest) (*model.Developer, error) {
	return &model.Developer{ID: 10, Name: req.Name}, nil
}

func (s *developerStore) Update(ctx context.Context, req *model.UpdateDeveloperRequest) (*model.Developer, error) {
	query, _, err := stmt.BuildUpdate("developers",
		stmt.Where{SQL: "id = $1", Args: []any{req.ID}},
		[]stmt.Field{
			stmt.Opt("name", req.Name),
			stmt.Opt("profile_image", req.ProfileImage),
			stmt.Opt("about_me", req.AboutMe),
		},
	)

	s.mu.Lock()
	s.last = req
	s.lastQuery = query
	s.mu.Unlock()

	if err != nil {
		return nil, err
	}

	d, ok := s.rows[req.ID]
	if !ok {
		return nil, sqlerr.NotFound("developers")
	}
	return d, nil
}

func newDeveloperRoutes(t *testing.T) (*echo.Echo, *developerStore) {
	t.Helper()

	s := newTestServer()
	store := &developerStore{rows: map[int64]*model.Developer{1: {ID: 1, Name: "Ada"}}}
	h := NewDeveloperHandler(s, service.NewDeveloperService(store, nil), nil, nil)

	e := newTestEcho(s)
	e.GET("/developers/:id", Handle(h.Handler, h.Get, http.StatusOK))
	e.POST("/developers", Handle(h.Handler, h.Create, http.StatusCreated))
	e.PATCH("/developers/:id", Handle(h.Handler, h.Update, http.StatusOK))
	return e, store
}

func TestHandle_BindsPathAndPresence(t *testing.T) {
	e, store := newDeveloperRoutes(t)

	rec := do(e, http.MethodPatch, "/developers/1", `{"about_me": null, "profile_image": ""}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	require.NotNil(t, store.last)
	assert.Equal(t, int64(1), store.last.ID)
	assert.False(t, store.last.Name.IsSet())
	assert.True(t, store.last.AboutMe.IsNull())
	value, ok := store.last.ProfileImage.Get()
	assert.True(t, ok)
	assert.Equal(t, "", value)
}

func TestHandle_EmptyPatchBody(t *testing.T) {
	e, store := newDeveloperRoutes(t)

	for _, body := range []string{`{}`, `{"unknown": 1}`} {
		rec := do(e, http.MethodPatch, "/developers/1", body)
		require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

		var got errs.HTTPError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, errs.CodeNoUpdatableFields, got.Code)
		assert.Equal(t, http.StatusBadRequest, got.Status)
		assert.Equal(t, []errs.FieldError{
			{Field: "name", Error: "not provided"},
			{Field: "profile_image", Error: "not provided"},
			{Field: "about_me", Error: "not provided"},
		}, got.Errors)
		assert.Empty(t, store.lastQuery)
	}

	rec := do(e, http.MethodPatch, "/developers/1", `{"name": "Grace"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "UPDATE developers SET name = $2 WHERE id = $1 RETURNING *", store.lastQuery)
}

func TestHandle_FreshRequestPerCall(t *testing.T) {
	e, store := newDeveloperRoutes(t)

	require.Equal(t, http.StatusOK, do(e, http.MethodPatch, "/developers/1", `{"name": "Grace"}`).Code)
	first := store.last

	require.Equal(t, http.StatusOK, do(e, http.MethodPatch, "/developers/1", `{"about_me": "x"}`).Code)
	second := store.last

	assert.NotSame(t, first, second)
	assert.False(t, second.Name.IsSet(), "name from the previous request must not leak")
}

func TestHandle_Statuses(t *testing.T) {
	e, _ := newDeveloperRoutes(t)

	rec := do(e, http.MethodPost, "/developers", `{"name": "Ada"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created model.Developer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Ada", created.Name)

	rec = do(e, http.MethodGet, "/developers/42", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Developer with ID = 42 does not exist")

	rec = do(e, http.MethodGet, "/developers/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodGet, "/developers/0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodPost, "/developers", `{"about_me": "no name"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "name", body.Errors[0].Field)
}

func TestCheckHealth(t *testing.T) {
	tests := []struct {
		name   string
		checks map[string]pingFunc
		status int
		want   string
	}{
		{
			name: "all healthy",
			checks: map[string]pingFunc{
				checkDatabase: func(context.Context) error { return nil },
				checkRedis:    func(context.Context) error { return nil },
			},
			status: http.StatusOK,
			want:   "healthy",
		},
		{
			name: "redis down degrades",
			checks: map[string]pingFunc{
				checkDatabase: func(context.Context) error { return nil },
				checkRedis:    func(context.Context) error { return errors.New("connection refused") },
			},
			status: http.StatusOK,
			want:   "degraded",
		},
		{
			name: "database down",
			checks: map[string]pingFunc{
				checkDatabase: func(context.Context) error { return errors.New("timeout") },
				checkRedis:    func(context.Context) error { return nil },
			},
			status: http.StatusServiceUnavailable,
			want:   "unhealthy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer()
			h := &HealthHandler{Handler: NewHandler(s), checks: tt.checks}

			e := newTestEcho(s)
			e.GET("/status", h.CheckHealth)

			rec := do(e, http.MethodGet, "/status", "")
			assert.Equal(t, tt.status, rec.Code)

			var body healthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.want, body.Status)
			assert.Equal(t, "test", body.Environment)
			assert.Len(t, body.Checks, 2)
		})
	}
}

func TestServeOpenAPIUI(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "openapi.html"), []byte("<html>docs</html>"), 0o600))

	s := newTestServer()
	h := &OpenAPIHandler{Handler: NewHandler(s), staticDir: dir}

	e := newTestEcho(s)
	e.GET("/docs", h.ServeOpenAPIUI)

	rec := do(e, http.MethodGet, "/docs", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "<html>docs</html>", rec.Body.String())

	h.staticDir = filepath.Join(dir, "missing")
	rec = do(e, http.MethodGet, "/docs", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
