package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/devmatch/internal/model"
)

const (
	entityBusiness    = "Business"
	entityTestimonial = "Testimonial"
)

type BusinessService struct {
	businesses BusinessStore
}

func NewBusinessService(businesses BusinessStore) *BusinessService {
	return &BusinessService{businesses: businesses}
}

func (s *BusinessService) List(ctx context.Context) ([]model.Business, error) {
	return s.businesses.List(ctx)
}

func (s *BusinessService) Get(ctx context.Context, id int64) (*model.Business, error) {
	business, err := s.businesses.GetByID(ctx, id)
	if isNoRows(err) {
		return nil, notFound(entityBusiness, id)
	}
	return business, err
}

func (s *BusinessService) Create(ctx context.Context, req *model.CreateBusinessRequest) (*model.Business, error) {
	business, err := s.businesses.Create(ctx, req)
	if err != nil {
		return nil, writeError(err, nil)
	}
	return business, nil
}

func (s *BusinessService) Update(ctx context.Context, req *model.UpdateBusinessRequest) (*model.Business, error) {
	business, err := s.businesses.Update(ctx, req)
	if err != nil {
		return nil, writeError(err, notFound(entityBusiness, req.ID))
	}
	return business, nil
}

// ---------------------------------------------------------------------------

// TestimonialService manages reviews that businesses leave on developers.
type TestimonialService struct {
	developers   DeveloperStore
	businesses   BusinessStore
	testimonials TestimonialStore
}

func NewTestimonialService(developers DeveloperStore, businesses BusinessStore, testimonials TestimonialStore) *TestimonialService {
	return &TestimonialService{developers: developers, businesses: businesses, testimonials: testimonials}
}

func (s *TestimonialService) ListByDeveloper(ctx context.Context, developerID int64) ([]model.TestimonialView, error) {
	if err := requireExists(ctx, s.developers.Exists, entityDeveloper, developerID); err != nil {
		return nil, err
	}

	testimonials, err := s.testimonials.ListByDeveloper(ctx, developerID)
	if err != nil {
		return nil, err
	}
	if len(testimonials) == 0 {
		return nil, notFoundMessage("Testimonials", fmt.Sprintf("Developer with ID = %d has no testimonials", developerID))
	}
	return testimonials, nil
}

func (s *TestimonialService) Create(ctx context.Context, req *model.CreateTestimonialRequest) (*model.Testimonial, error) {
	if err := requireExists(ctx, s.developers.Exists, entityDeveloper, req.DeveloperID); err != nil {
		return nil, err
	}
	if err := requireExists(ctx, s.businesses.Exists, entityBusiness, req.TestimonialOwner); err != nil {
		return nil, err
	}

	testimonial, err := s.testimonials.Create(ctx, req)
	if err != nil {
		return nil, writeError(err, nil)
	}
	return testimonial, nil
}

// Update rewrites the testimonial that business TestimonialOwner left on the
// developer.
func (s *TestimonialService) Update(ctx context.Context, req *model.UpdateTestimonialRequest) (*model.Testimonial, error) {
	if err := requireExists(ctx, s.developers.Exists, entityDeveloper, req.DeveloperID); err != nil {
		return nil, err
	}

	missing := notFoundMessage(entityTestimonial, fmt.Sprintf(
		"Business with ID = %d has no testimonial for developer with ID = %d",
		req.TestimonialOwner, req.DeveloperID,
	))

	testimonial, err := s.testimonials.Update(ctx, req)
	if err != nil {
		return nil, writeError(err, missing)
	}
	return testimonial, nil
}
