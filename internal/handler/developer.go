package handler

import (
	"github.com/deppfellow/devmatch/internal/model"
	"github.com/deppfellow/devmatch/internal/server"
	"github.com/deppfellow/devmatch/internal/service"
	"github.com/labstack/echo/v4"
)

// DeveloperHandler serves /developers and its nested resources.
type DeveloperHandler struct {
	Handler
	developers   *service.DeveloperService
	skills       *service.SkillService
	testimonials *service.TestimonialService
}

func NewDeveloperHandler(
	s *server.Server,
	developers *service.DeveloperService,
	skills *service.SkillService,
	testimonials *service.TestimonialService,
) *DeveloperHandler {
	return &DeveloperHandler{
		Handler:      NewHandler(s),
		developers:   developers,
		skills:       skills,
		testimonials: testimonials,
	}
}

func (h *DeveloperHandler) List(c echo.Context, _ *model.ListDevelopersRequest) ([]model.Developer, error) {
	return h.developers.List(c.Request().Context())
}

func (h *DeveloperHandler) Get(c echo.Context, req *model.DeveloperIDRequest) (*model.Developer, error) {
	return h.developers.Get(c.Request().Context(), req.ID)
}

func (h *DeveloperHandler) Create(c echo.Context, req *model.CreateDeveloperRequest) (*model.Developer, error) {
	return h.developers.Create(c.Request().Context(), req)
}

func (h *DeveloperHandler) Update(c echo.Context, req *model.UpdateDeveloperRequest) (*model.Developer, error) {
	return h.developers.Update(c.Request().Context(), req)
}

func (h *DeveloperHandler) GetSocialLinks(c echo.Context, req *model.DeveloperIDRequest) (*model.SocialLinks, error) {
	return h.developers.GetSocialLinks(c.Request().Context(), req.ID)
}

func (h *DeveloperHandler) CreateSocialLinks(c echo.Context, req *model.SocialLinksRequest) (*model.SocialLinks, error) {
	return h.developers.CreateSocialLinks(c.Request().Context(), req)
}

func (h *DeveloperHandler) UpdateSocialLinks(c echo.Context, req *model.SocialLinksRequest) (*model.SocialLinks, error) {
	return h.developers.UpdateSocialLinks(c.Request().Context(), req)
}

func (h *DeveloperHandler) ListServices(c echo.Context, req *model.DeveloperIDRequest) ([]model.DeveloperSkill, error) {
	return h.skills.ListByDeveloper(c.Request().Context(), req.ID)
}

func (h *DeveloperHandler) AddService(c echo.Context, req *model.AddDeveloperServiceRequest) (*model.DeveloperService, error) {
	return h.skills.Attach(c.Request().Context(), req)
}

func (h *DeveloperHandler) ListTestimonials(c echo.Context, req *model.DeveloperIDRequest) ([]model.TestimonialView, error) {
	return h.testimonials.ListByDeveloper(c.Request().Context(), req.ID)
}

func (h *DeveloperHandler) CreateTestimonial(c echo.Context, req *model.CreateTestimonialRequest) (*model.Testimonial, error) {
	return h.testimonials.Create(c.Request().Context(), req)
}

func (h *DeveloperHandler) UpdateTestimonial(c echo.Context, req *model.UpdateTestimonialRequest) (*model.Testimonial, error) {
	return h.testimonials.Update(c.Request().Context(), req)
}
