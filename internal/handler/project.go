package handler

import (
	"github.com/deppfellow/devmatch/internal/model"
	"github.com/deppfellow/devmatch/internal/server"
	"github.com/deppfellow/devmatch/internal/service"
	"github.com/labstack/echo/v4"
)

// ProjectHandler serves /business-projects and the applications nested
// under each project.
type ProjectHandler struct {
	Handler
	projects     *service.ProjectService
	applications *service.ApplicationService
}

func NewProjectHandler(s *server.Server, projects *service.ProjectService, applications *service.ApplicationService) *ProjectHandler {
	return &ProjectHandler{Handler: NewHandler(s), projects: projects, applications: applications}
}

func (h *ProjectHandler) List(c echo.Context, req *model.ListProjectsRequest) ([]model.BusinessProject, error) {
	return h.projects.List(c.Request().Context(), req)
}

func (h *ProjectHandler) Create(c echo.Context, req *model.CreateProjectRequest) (*model.BusinessProject, error) {
	return h.projects.Create(c.Request().Context(), req)
}

func (h *ProjectHandler) Update(c echo.Context, req *model.UpdateProjectRequest) (*model.BusinessProject, error) {
	return h.projects.Update(c.Request().Context(), req)
}

func (h *ProjectHandler) ListApplications(c echo.Context, req *model.ProjectIDRequest) ([]model.Application, error) {
	return h.applications.ListByProject(c.Request().Context(), req.ProjectID)
}

func (h *ProjectHandler) Apply(c echo.Context, req *model.CreateApplicationRequest) (*model.Application, error) {
	return h.applications.Create(c.Request().Context(), req)
}

type ApplicationHandler struct {
	Handler
	applications *service.ApplicationService
}

func NewApplicationHandler(s *server.Server, applications *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Handler: NewHandler(s), applications: applications}
}

func (h *ApplicationHandler) Update(c echo.Context, req *model.UpdateApplicationRequest) (*model.Application, error) {
	return h.applications.Update(c.Request().Context(), req)
}
