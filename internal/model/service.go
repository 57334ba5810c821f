package model

import "github.com/deppfellow/devmatch/internal/validation"

// Service is an entry of the skill catalogue.
type Service struct {
	ID    int64  `json:"id" db:"id"`
	Title string `json:"title" db:"title"`
}

// DeveloperService links a developer to a catalogue entry.
type DeveloperService struct {
	ID          int64 `json:"id" db:"id"`
	DeveloperID int64 `json:"developer_id" db:"developer_id"`
	ServiceID   int64 `json:"service_id" db:"service_id"`
}

// DeveloperSkill is a DeveloperService joined with the service title.
type DeveloperSkill struct {
	ID        int64  `json:"id" db:"id"`
	ServiceID int64  `json:"service_id" db:"service_id"`
	Title     string `json:"title" db:"title"`
}

// ListServicesRequest has no parameters.
type ListServicesRequest struct{}

func (r *ListServicesRequest) Validate() error { return nil }

// AddDeveloperServiceRequest is the body of POST /developers/:id/services.
type AddDeveloperServiceRequest struct {
	DeveloperID int64 `param:"id" json:"-" validate:"required,min=1"`
	ServiceID   int64 `json:"service_id" validate:"required,min=1"`
}

func (r *AddDeveloperServiceRequest) Validate() error {
	return validation.Struct(r)
}
