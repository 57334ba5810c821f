package router

import (
	"net/http"

	"github.com/deppfellow/devmatch/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerDeveloperRoutes(r *echo.Echo, h *handler.Handlers) {
	dh := h.Developers

	developers := r.Group("/developers")
	developers.GET("", handler.Handle(dh.Handler, dh.List, http.StatusOK))
	developers.POST("", handler.Handle(dh.Handler, dh.Create, http.StatusCreated))
	developers.GET("/:id", handler.Handle(dh.Handler, dh.Get, http.StatusOK))
	developers.PATCH("/:id", handler.Handle(dh.Handler, dh.Update, http.StatusOK))

	developers.GET("/:id/social-links", handler.Handle(dh.Handler, dh.GetSocialLinks, http.StatusOK))
	developers.POST("/:id/social-links", handler.Handle(dh.Handler, dh.CreateSocialLinks, http.StatusCreated))
	developers.PATCH("/:id/social-links", handler.Handle(dh.Handler, dh.UpdateSocialLinks, http.StatusOK))

	developers.GET("/:id/services", handler.Handle(dh.Handler, dh.ListServices, http.StatusOK))
	developers.POST("/:id/services", handler.Handle(dh.Handler, dh.AddService, http.StatusCreated))

	developers.GET("/:id/testimonials", handler.Handle(dh.Handler, dh.ListTestimonials, http.StatusOK))
	developers.POST("/:id/testimonials", handler.Handle(dh.Handler, dh.CreateTestimonial, http.StatusCreated))
	developers.PATCH("/:id/testimonials", handler.Handle(dh.Handler, dh.UpdateTestimonial, http.StatusOK))

	sh := h.Services
	r.GET("/services", handler.Handle(sh.Handler, sh.List, http.StatusOK))
}

func registerBusinessRoutes(r *echo.Echo, h *handler.Handlers) {
	bh := h.Businesses

	businesses := r.Group("/businesses")
	businesses.GET("", handler.Handle(bh.Handler, bh.List, http.StatusOK))
	businesses.POST("", handler.Handle(bh.Handler, bh.Create, http.StatusCreated))
	businesses.GET("/:id", handler.Handle(bh.Handler, bh.Get, http.StatusOK))
	businesses.PATCH("/:id", handler.Handle(bh.Handler, bh.Update, http.StatusOK))
}

func registerProjectRoutes(r *echo.Echo, h *handler.Handlers) {
	ph := h.Projects

	projects := r.Group("/business-projects")
	projects.GET("", handler.Handle(ph.Handler, ph.List, http.StatusOK))
	projects.POST("", handler.Handle(ph.Handler, ph.Create, http.StatusCreated))
	projects.PATCH("/:projectId", handler.Handle(ph.Handler, ph.Update, http.StatusOK))
	projects.GET("/:projectId/applications", handler.Handle(ph.Handler, ph.ListApplications, http.StatusOK))
	projects.POST("/:projectId/applications", handler.Handle(ph.Handler, ph.Apply, http.StatusCreated))

	ah := h.Applications
	r.PATCH("/applications/:id", handler.Handle(ah.Handler, ah.Update, http.StatusOK))
}
