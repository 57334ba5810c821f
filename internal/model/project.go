package model

import (
	"time"

	"github.com/deppfellow/devmatch/internal/lib/optional"
	"github.com/deppfellow/devmatch/internal/validation"
	"github.com/jackc/pgx/v5/pgtype"
)

// ProjectStatus is the lifecycle state of a business project.
type ProjectStatus string

const (
	ProjectStatusOpen       ProjectStatus = "open"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusClosed     ProjectStatus = "closed"
)

// ApplicationStatus is the review state of an application.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// BusinessProject is a row of the business_projects table. Deadline is a
// DATE and serialises as "2006-01-02".
type BusinessProject struct {
	ID           int64         `json:"id" db:"id"`
	ProjectOwner int64         `json:"project_owner" db:"project_owner"`
	Title        string        `json:"title" db:"title"`
	Brief        *string       `json:"brief" db:"brief"`
	DesiredSkill *string       `json:"desired_skill" db:"desired_skill"`
	Deadline     pgtype.Date   `json:"deadline" db:"deadline"`
	Status       ProjectStatus `json:"status" db:"status"`
}

// Application is a developer's application to a business project.
type Application struct {
	ID          int64             `json:"id" db:"id"`
	ProjectID   int64             `json:"project_id" db:"project_id"`
	DeveloperID int64             `json:"developer_id" db:"developer_id"`
	CoverLetter *string           `json:"cover_letter" db:"cover_letter"`
	Status      ApplicationStatus `json:"status" db:"status"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
}

// ---------------------------------------------------------------------------

const (
	projectStatusTag     = "oneof=open in_progress closed"
	applicationStatusTag = "oneof=pending accepted rejected"
	dateTag              = "datetime=" + validation.DateLayout
)

// ListProjectsRequest filters GET /business-projects. Both filters are
// optional query parameters.
type ListProjectsRequest struct {
	Status string `query:"status" validate:"omitempty,oneof=open in_progress closed"`
	Owner  int64  `query:"owner" validate:"omitempty,min=1"`
}

func (r *ListProjectsRequest) Validate() error {
	return validation.Struct(r)
}

// CreateProjectRequest is the body of POST /business-projects.
type CreateProjectRequest struct {
	ProjectOwner int64                  `json:"project_owner" validate:"required,min=1"`
	Title        string                 `json:"title" validate:"required,max=255"`
	Brief        optional.Value[string] `json:"brief"`
	DesiredSkill optional.Value[string] `json:"desired_skill"`
	Deadline     optional.Value[string] `json:"deadline"`
	Status       optional.Value[string] `json:"status"`
}

func (r *CreateProjectRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}

	var errs validation.CustomValidationErrors
	validation.CheckOptional(&errs, "brief", r.Brief, "max=5000", validation.Nullable)
	validation.CheckOptional(&errs, "desired_skill", r.DesiredSkill, "max=255", validation.Nullable)
	validation.CheckOptional(&errs, "deadline", r.Deadline, dateTag, validation.Nullable)
	validation.CheckOptional(&errs, "status", r.Status, projectStatusTag, validation.NotNullable)
	return errs.Err()
}

// UpdateProjectRequest is the body of PATCH /business-projects/:projectId.
type UpdateProjectRequest struct {
	ID           int64                  `param:"projectId" json:"-" validate:"required,min=1"`
	ProjectOwner optional.Value[int64]  `json:"project_owner"`
	Title        optional.Value[string] `json:"title"`
	Brief        optional.Value[string] `json:"brief"`
	DesiredSkill optional.Value[string] `json:"desired_skill"`
	Deadline     optional.Value[string] `json:"deadline"`
	Status       optional.Value[string] `json:"status"`
}

func (r *UpdateProjectRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}

	var errs validation.CustomValidationErrors
	validation.CheckOptional(&errs, "project_owner", r.ProjectOwner, "min=1", validation.NotNullable)
	validation.CheckOptional(&errs, "title", r.Title, "min=1,max=255", validation.NotNullable)
	validation.CheckOptional(&errs, "brief", r.Brief, "max=5000", validation.Nullable)
	validation.CheckOptional(&errs, "desired_skill", r.DesiredSkill, "max=255", validation.Nullable)
	validation.CheckOptional(&errs, "deadline", r.Deadline, dateTag, validation.Nullable)
	validation.CheckOptional(&errs, "status", r.Status, projectStatusTag, validation.NotNullable)
	return errs.Err()
}

// ProjectIDRequest addresses a project by the :projectId path parameter.
type ProjectIDRequest struct {
	ProjectID int64 `param:"projectId" json:"-" validate:"required,min=1"`
}

func (r *ProjectIDRequest) Validate() error {
	return validation.Struct(r)
}

// CreateApplicationRequest is the body of
// POST /business-projects/:projectId/applications.
type CreateApplicationRequest struct {
	ProjectID   int64                  `param:"projectId" json:"-" validate:"required,min=1"`
	DeveloperID int64                  `json:"developer_id" validate:"required,min=1"`
	CoverLetter optional.Value[string] `json:"cover_letter"`
}

func (r *CreateApplicationRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}

	var errs validation.CustomValidationErrors
	validation.CheckOptional(&errs, "cover_letter", r.CoverLetter, "max=5000", validation.Nullable)
	return errs.Err()
}

// UpdateApplicationRequest is the body of PATCH /applications/:id.
type UpdateApplicationRequest struct {
	ID          int64                  `param:"id" json:"-" validate:"required,min=1"`
	Status      optional.Value[string] `json:"status"`
	CoverLetter optional.Value[string] `json:"cover_letter"`
}

func (r *UpdateApplicationRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}

	var errs validation.CustomValidationErrors
	validation.CheckOptional(&errs, "status", r.Status, applicationStatusTag, validation.NotNullable)
	validation.CheckOptional(&errs, "cover_letter", r.CoverLetter, "max=5000", validation.Nullable)
	return errs.Err()
}
