// Package model holds the rows returned by the repositories and the request
// payloads accepted by the handlers.
//
// Request fields a client may omit are decoded into optional.Value so that
// "not sent", "sent as null" and "sent as a zero value" stay distinguishable
// all the way down to the SQL builder.
package model

import (
	"github.com/deppfellow/devmatch/internal/lib/optional"
	"github.com/deppfellow/devmatch/internal/validation"
)

// Developer is a row of the developers table.
type Developer struct {
	ID           int64   `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	ProfileImage *string `json:"profile_image" db:"profile_image"`
	AboutMe      *string `json:"about_me" db:"about_me"`
}

// SocialLinks is the single social_links row of a developer.
type SocialLinks struct {
	ID          int64   `json:"id" db:"id"`
	DeveloperID int64   `json:"developer_id" db:"developer_id"`
	Linkedin    *string `json:"linkedin" db:"linkedin"`
	Github      *string `json:"github" db:"github"`
	Website     *string `json:"website" db:"website"`
	Other       *string `json:"other" db:"other"`
}

// ---------------------------------------------------------------------------

// ListDevelopersRequest has no parameters.
type ListDevelopersRequest struct{}

func (r *ListDevelopersRequest) Validate() error { return nil }

// DeveloperIDRequest addresses a developer by the :id path parameter.
type DeveloperIDRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,min=1"`
}

func (r *DeveloperIDRequest) Validate() error {
	return validation.Struct(r)
}

// CreateDeveloperRequest is the body of POST /developers.
type CreateDeveloperRequest struct {
	Name         string                 `json:"name" validate:"required,max=255"`
	ProfileImage optional.Value[string] `json:"profile_image"`
	AboutMe      optional.Value[string] `json:"about_me"`
}

func (r *CreateDeveloperRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}

	var errs validation.CustomValidationErrors
	validation.CheckOptional(&errs, "profile_image", r.ProfileImage, "max=2048", validation.Nullable)
	validation.CheckOptional(&errs, "about_me", r.AboutMe, "max=5000", validation.Nullable)
	return errs.Err()
}

// UpdateDeveloperRequest is the body of PATCH /developers/:id.
type UpdateDeveloperRequest struct {
	ID           int64                  `param:"id" json:"-" validate:"required,min=1"`
	Name         optional.Value[string] `json:"name"`
	ProfileImage optional.Value[string] `json:"profile_image"`
	AboutMe      optional.Value[string] `json:"about_me"`
}

func (r *UpdateDeveloperRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}

	var errs validation.CustomValidationErrors
	validation.CheckOptional(&errs, "name", r.Name, "min=1,max=255", validation.NotNullable)
	validation.CheckOptional(&errs, "profile_image", r.ProfileImage, "max=2048", validation.Nullable)
	validation.CheckOptional(&errs, "about_me", r.AboutMe, "max=5000", validation.Nullable)
	return errs.Err()
}

// SocialLinksRequest is the body of POST and PATCH
// /developers/:id/social-links.
type SocialLinksRequest struct {
	DeveloperID int64                  `param:"id" json:"-" validate:"required,min=1"`
	Linkedin    optional.Value[string] `json:"linkedin"`
	Github      optional.Value[string] `json:"github"`
	Website     optional.Value[string] `json:"website"`
	Other       optional.Value[string] `json:"other"`
}

func (r *SocialLinksRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}

	var errs validation.CustomValidationErrors
	validation.CheckOptional(&errs, "linkedin", r.Linkedin, "max=2048", validation.Nullable)
	validation.CheckOptional(&errs, "github", r.Github, "max=2048", validation.Nullable)
	validation.CheckOptional(&errs, "website", r.Website, "max=2048", validation.Nullable)
	validation.CheckOptional(&errs, "other", r.Other, "max=2048", validation.Nullable)
	return errs.Err()
}
