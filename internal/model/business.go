package model

import (
	"github.com/deppfellow/devmatch/internal/lib/optional"
	"github.com/deppfellow/devmatch/internal/validation"
)

// Business is a row of the businesses table. ContactEmail receives the
// notification sent when a developer applies to one of its projects.
type Business struct {
	ID           int64   `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	CompanyLogo  *string `json:"company_logo" db:"company_logo"`
	Industry     *string `json:"industry" db:"industry"`
	Description  *string `json:"description" db:"description"`
	ContactEmail *string `json:"contact_email" db:"contact_email"`
}

// Testimonial is a row of the testimonials table.
type Testimonial struct {
	ID               int64   `json:"id" db:"id"`
	DeveloperID      int64   `json:"developer_id" db:"developer_id"`
	TestimonialOwner int64   `json:"testimonial_owner" db:"testimonial_owner"`
	Rating           int     `json:"rating" db:"rating"`
	Feedback         *string `json:"feedback" db:"feedback"`
}

// TestimonialView is a testimonial joined with the name of the business
// that wrote it.
type TestimonialView struct {
	DeveloperID int64   `json:"developer_id" db:"developer_id"`
	Name        string  `json:"name" db:"name"`
	Rating      int     `json:"rating" db:"rating"`
	Feedback    *string `json:"feedback" db:"feedback"`
}

// ---------------------------------------------------------------------------

// ListBusinessesRequest has no parameters.
type ListBusinessesRequest struct{}

func (r *ListBusinessesRequest) Validate() error { return nil }

// BusinessIDRequest addresses a business by the :id path parameter.
type BusinessIDRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,min=1"`
}

func (r *BusinessIDRequest) Validate() error {
	return validation.Struct(r)
}

// CreateBusinessRequest is the body of POST /businesses.
type CreateBusinessRequest struct {
	Name         string                 `json:"name" validate:"required,max=255"`
	CompanyLogo  optional.Value[string] `json:"company_logo"`
	Industry     optional.Value[string] `json:"industry"`
	Description  optional.Value[string] `json:"description"`
	ContactEmail optional.Value[string] `json:"contact_email"`
}

func (r *CreateBusinessRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}

	var errs validation.CustomValidationErrors
	validation.CheckOptional(&errs, "company_logo", r.CompanyLogo, "max=2048", validation.Nullable)
	validation.CheckOptional(&errs, "industry", r.Industry, "max=255", validation.Nullable)
	validation.CheckOptional(&errs, "description", r.Description, "max=5000", validation.Nullable)
	validation.CheckOptional(&errs, "contact_email", r.ContactEmail, "email", validation.Nullable)
	return errs.Err()
}

// UpdateBusinessRequest is the body of PATCH /businesses/:id.
type UpdateBusinessRequest struct {
	ID           int64                  `param:"id" json:"-" validate:"required,min=1"`
	Name         optional.Value[string] `json:"name"`
	CompanyLogo  optional.Value[string] `json:"company_logo"`
	Industry     optional.Value[string] `json:"industry"`
	Description  optional.Value[string] `json:"description"`
	ContactEmail optional.Value[string] `json:"contact_email"`
}

func (r *UpdateBusinessRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}

	var errs validation.CustomValidationErrors
	validation.CheckOptional(&errs, "name", r.Name, "min=1,max=255", validation.NotNullable)
	validation.CheckOptional(&errs, "company_logo", r.CompanyLogo, "max=2048", validation.Nullable)
	validation.CheckOptional(&errs, "industry", r.Industry, "max=255", validation.Nullable)
	validation.CheckOptional(&errs, "description", r.Description, "max=5000", validation.Nullable)
	validation.CheckOptional(&errs, "contact_email", r.ContactEmail, "email", validation.Nullable)
	return errs.Err()
}

// CreateTestimonialRequest is the body of POST /developers/:id/testimonials.
type CreateTestimonialRequest struct {
	DeveloperID      int64                  `param:"id" json:"-" validate:"required,min=1"`
	TestimonialOwner int64                  `json:"testimonial_owner" validate:"required,min=1"`
	Rating           int                    `json:"rating" validate:"required,min=1,max=5"`
	Feedback         optional.Value[string] `json:"feedback"`
}

func (r *CreateTestimonialRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}

	var errs validation.CustomValidationErrors
	validation.CheckOptional(&errs, "feedback", r.Feedback, "max=5000", validation.Nullable)
	return errs.Err()
}

// UpdateTestimonialRequest is the body of PATCH /developers/:id/testimonials.
// TestimonialOwner selects the row together with the path's developer id.
type UpdateTestimonialRequest struct {
	DeveloperID      int64                  `param:"id" json:"-" validate:"required,min=1"`
	TestimonialOwner int64                  `json:"testimonial_owner" validate:"required,min=1"`
	Rating           optional.Value[int]    `json:"rating"`
	Feedback         optional.Value[string] `json:"feedback"`
}

func (r *UpdateTestimonialRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}

	var errs validation.CustomValidationErrors
	validation.CheckOptional(&errs, "rating", r.Rating, "min=1,max=5", validation.NotNullable)
	validation.CheckOptional(&errs, "feedback", r.Feedback, "max=5000", validation.Nullable)
	return errs.Err()
}
