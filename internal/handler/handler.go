// Package handler is the HTTP layer. It binds and validates requests,
// calls the service layer and writes JSON responses; errors are left to the
// global error handler.
package handler

import (
	"github.com/deppfellow/devmatch/internal/server"
	"github.com/deppfellow/devmatch/internal/service"
)

// Handlers groups every HTTP handler for the router.
type Handlers struct {
	Developers   *DeveloperHandler
	Services     *ServiceHandler
	Businesses   *BusinessHandler
	Projects     *ProjectHandler
	Applications *ApplicationHandler
	Health       *HealthHandler
	OpenAPI      *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Developers:   NewDeveloperHandler(s, services.Developers, services.Skills, services.Testimonials),
		Services:     NewServiceHandler(s, services.Skills),
		Businesses:   NewBusinessHandler(s, services.Businesses),
		Projects:     NewProjectHandler(s, services.Projects, services.Applications),
		Applications: NewApplicationHandler(s, services.Applications),
		Health:       NewHealthHandler(s),
		OpenAPI:      NewOpenAPIHandler(s),
	}
}
