// Package router builds the echo instance: it installs the middleware stack
// and the global error handler and registers every route.
package router

import (
	"github.com/deppfellow/devmatch/internal/handler"
	"github.com/deppfellow/devmatch/internal/middleware"
	"github.com/deppfellow/devmatch/internal/server"
	"github.com/labstack/echo/v4"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// Order matters: the request ID and the New Relic transaction must exist
	// before the context enhancer builds the request logger.
	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.RateLimit.Limit(),
	)

	registerSystemRoutes(router, h)
	registerDeveloperRoutes(router, h)
	registerBusinessRoutes(router, h)
	registerProjectRoutes(router, h)

	return router
}
