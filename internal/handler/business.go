package handler

import (
	"github.com/deppfellow/devmatch/internal/model"
	"github.com/deppfellow/devmatch/internal/server"
	"github.com/deppfellow/devmatch/internal/service"
	"github.com/labstack/echo/v4"
)

type BusinessHandler struct {
	Handler
	businesses *service.BusinessService
}

func NewBusinessHandler(s *server.Server, businesses *service.BusinessService) *BusinessHandler {
	return &BusinessHandler{Handler: NewHandler(s), businesses: businesses}
}

func (h *BusinessHandler) List(c echo.Context, _ *model.ListBusinessesRequest) ([]model.Business, error) {
	return h.businesses.List(c.Request().Context())
}

func (h *BusinessHandler) Get(c echo.Context, req *model.BusinessIDRequest) (*model.Business, error) {
	return h.businesses.Get(c.Request().Context(), req.ID)
}

func (h *BusinessHandler) Create(c echo.Context, req *model.CreateBusinessRequest) (*model.Business, error) {
	return h.businesses.Create(c.Request().Context(), req)
}

func (h *BusinessHandler) Update(c echo.Context, req *model.UpdateBusinessRequest) (*model.Business, error) {
	return h.businesses.Update(c.Request().Context(), req)
}

// ServiceHandler serves the skill catalogue.
type ServiceHandler struct {
	Handler
	skills *service.SkillService
}

func NewServiceHandler(s *server.Server, skills *service.SkillService) *ServiceHandler {
	return &ServiceHandler{Handler: NewHandler(s), skills: skills}
}

func (h *ServiceHandler) List(c echo.Context, _ *model.ListServicesRequest) ([]model.Service, error) {
	return h.skills.Catalogue(c.Request().Context())
}
