package service

import (
	"context"

	"github.com/deppfellow/devmatch/internal/lib/job"
	"github.com/deppfellow/devmatch/internal/model"
)

// The store interfaces are implemented by the repositories in
// internal/repository.

type DeveloperStore interface {
	List(ctx context.Context) ([]model.Developer, error)
	GetByID(ctx context.Context, id int64) (*model.Developer, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, req *model.CreateDeveloperRequest) (*model.Developer, error)
	Update(ctx context.Context, req *model.UpdateDeveloperRequest) (*model.Developer, error)
}

type SocialLinkStore interface {
	GetByDeveloper(ctx context.Context, developerID int64) (*model.SocialLinks, error)
	Create(ctx context.Context, req *model.SocialLinksRequest) (*model.SocialLinks, error)
	Update(ctx context.Context, req *model.SocialLinksRequest) (*model.SocialLinks, error)
}

type SkillStore interface {
	List(ctx context.Context) ([]model.Service, error)
	Exists(ctx context.Context, id int64) (bool, error)
	ListByDeveloper(ctx context.Context, developerID int64) ([]model.DeveloperSkill, error)
	Attach(ctx context.Context, req *model.AddDeveloperServiceRequest) (*model.DeveloperService, error)
}

type BusinessStore interface {
	List(ctx context.Context) ([]model.Business, error)
	GetByID(ctx context.Context, id int64) (*model.Business, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, req *model.CreateBusinessRequest) (*model.Business, error)
	Update(ctx context.Context, req *model.UpdateBusinessRequest) (*model.Business, error)
}

type TestimonialStore interface {
	ListByDeveloper(ctx context.Context, developerID int64) ([]model.TestimonialView, error)
	Create(ctx context.Context, req *model.CreateTestimonialRequest) (*model.Testimonial, error)
	Update(ctx context.Context, req *model.UpdateTestimonialRequest) (*model.Testimonial, error)
}

type ProjectStore interface {
	List(ctx context.Context, filter *model.ListProjectsRequest) ([]model.BusinessProject, error)
	GetByID(ctx context.Context, id int64) (*model.BusinessProject, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, req *model.CreateProjectRequest) (*model.BusinessProject, error)
	Update(ctx context.Context, req *model.UpdateProjectRequest) (*model.BusinessProject, error)
}

type ApplicationStore interface {
	ListByProject(ctx context.Context, projectID int64) ([]model.Application, error)
	Create(ctx context.Context, req *model.CreateApplicationRequest) (*model.Application, error)
	Update(ctx context.Context, req *model.UpdateApplicationRequest) (*model.Application, error)
}

// Notifier enqueues background notifications. *job.JobService implements it.
type Notifier interface {
	EnqueueApplicationReceived(ctx context.Context, p job.ApplicationReceivedPayload) error
}
