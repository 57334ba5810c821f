package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/deppfellow/devmatch/internal/middleware"
	"github.com/deppfellow/devmatch/internal/server"
	"github.com/labstack/echo/v4"
)

const (
	checkDatabase = "database"
	checkRedis    = "redis"

	defaultCheckTimeout = 5 * time.Second
)

// pingFunc probes one dependency.
type pingFunc func(ctx context.Context) error

// HealthHandler serves GET /status for load balancers and uptime monitors.
//
// A failing database makes the service unhealthy (503). Redis only backs
// notifications, so a failing Redis reports "degraded" with a 200.
type HealthHandler struct {
	Handler
	checks map[string]pingFunc
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	checks := make(map[string]pingFunc)
	if s.DB != nil {
		checks[checkDatabase] = s.DB.Ping
	}
	if s.Redis != nil {
		checks[checkRedis] = func(ctx context.Context) error {
			return s.Redis.Ping(ctx).Err()
		}
	}

	return &HealthHandler{
		Handler: NewHandler(s),
		checks:  checks,
	}
}

type checkResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

type healthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]checkResult `json:"checks"`
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := healthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      make(map[string]checkResult),
	}

	names, timeout := h.enabledChecks()
	for _, name := range names {
		ping, ok := h.checks[name]
		if !ok {
			continue
		}

		result := runCheck(c.Request().Context(), ping, timeout)
		response.Checks[name] = result

		if result.Error == "" {
			logger.Debug().Str("check", name).Str("response_time", result.ResponseTime).Msg("health check passed")
			continue
		}

		logger.Error().Str("check", name).Str("error", result.Error).Msg("health check failed")
		h.recordFailure(name, result)

		if name == checkDatabase {
			response.Status = "unhealthy"
		} else if response.Status == "healthy" {
			response.Status = "degraded"
		}
	}

	if response.Status == "unhealthy" {
		logger.Warn().Dur("total_duration", time.Since(start)).Msg("service unhealthy")
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	return c.JSON(http.StatusOK, response)
}

// enabledChecks returns the configured checks, defaulting to database and
// redis when observability is not configured.
func (h *HealthHandler) enabledChecks() ([]string, time.Duration) {
	obs := h.server.Config.Observability
	if obs == nil {
		return []string{checkDatabase, checkRedis}, defaultCheckTimeout
	}
	if !obs.HealthChecks.Enabled {
		return nil, 0
	}

	timeout := obs.HealthChecks.Timeout
	if timeout <= 0 {
		timeout = defaultCheckTimeout
	}
	return obs.HealthChecks.Checks, timeout
}

func runCheck(ctx context.Context, ping pingFunc, timeout time.Duration) checkResult {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	err := ping(ctx)
	result := checkResult{
		Status:       "healthy",
		ResponseTime: time.Since(start).String(),
	}
	if err != nil {
		result.Status = "unhealthy"
		result.Error = err.Error()
	}
	return result
}

func (h *HealthHandler) recordFailure(name string, result checkResult) {
	if h.server.LoggerService == nil || h.server.LoggerService.GetApplication() == nil {
		return
	}

	h.server.LoggerService.GetApplication().RecordCustomEvent(
		"HealthCheckError",
		map[string]interface{}{
			"check_type":    name,
			"operation":     "health_check",
			"error_type":    name + "_unhealthy",
			"response_time": result.ResponseTime,
			"error_message": result.Error,
		},
	)
}
