package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/devmatch/internal/errs"
	"github.com/deppfellow/devmatch/internal/lib/job"
	"github.com/deppfellow/devmatch/internal/model"
	"github.com/rs/zerolog"
)

const (
	entityProject     = "Business project"
	entityApplication = "Application"
)

type ProjectService struct {
	businesses BusinessStore
	projects   ProjectStore
}

func NewProjectService(businesses BusinessStore, projects ProjectStore) *ProjectService {
	return &ProjectService{businesses: businesses, projects: projects}
}

func (s *ProjectService) List(ctx context.Context, filter *model.ListProjectsRequest) ([]model.BusinessProject, error) {
	return s.projects.List(ctx, filter)
}

func (s *ProjectService) Create(ctx context.Context, req *model.CreateProjectRequest) (*model.BusinessProject, error) {
	if err := requireExists(ctx, s.businesses.Exists, entityBusiness, req.ProjectOwner); err != nil {
		return nil, err
	}

	project, err := s.projects.Create(ctx, req)
	if err != nil {
		return nil, writeError(err, nil)
	}
	return project, nil
}

// Update checks the new owner only when the body moves the project to
// another business.
func (s *ProjectService) Update(ctx context.Context, req *model.UpdateProjectRequest) (*model.BusinessProject, error) {
	if owner, ok := req.ProjectOwner.Get(); ok {
		if err := requireExists(ctx, s.businesses.Exists, entityBusiness, owner); err != nil {
			return nil, err
		}
	}

	project, err := s.projects.Update(ctx, req)
	if err != nil {
		return nil, writeError(err, notFound(entityProject, req.ID))
	}
	return project, nil
}

// ---------------------------------------------------------------------------

// ApplicationService records developers applying to projects and notifies
// the owning business.
type ApplicationService struct {
	logger       *zerolog.Logger
	developers   DeveloperStore
	businesses   BusinessStore
	projects     ProjectStore
	applications ApplicationStore
	notifier     Notifier
}

func NewApplicationService(
	logger *zerolog.Logger,
	developers DeveloperStore,
	businesses BusinessStore,
	projects ProjectStore,
	applications ApplicationStore,
	notifier Notifier,
) *ApplicationService {
	return &ApplicationService{
		logger:       logger,
		developers:   developers,
		businesses:   businesses,
		projects:     projects,
		applications: applications,
		notifier:     notifier,
	}
}

func (s *ApplicationService) ListByProject(ctx context.Context, projectID int64) ([]model.Application, error) {
	if err := requireExists(ctx, s.projects.Exists, entityProject, projectID); err != nil {
		return nil, err
	}
	return s.applications.ListByProject(ctx, projectID)
}

// Create stores the application and, when the business has a contact
// email, enqueues a notification. A failed enqueue is logged and does not
// fail the request.
func (s *ApplicationService) Create(ctx context.Context, req *model.CreateApplicationRequest) (*model.Application, error) {
	project, err := s.projects.GetByID(ctx, req.ProjectID)
	if isNoRows(err) {
		return nil, notFound(entityProject, req.ProjectID)
	}
	if err != nil {
		return nil, err
	}
	if project.Status != model.ProjectStatusOpen {
		return nil, projectNotOpen(project)
	}

	developer, err := s.developers.GetByID(ctx, req.DeveloperID)
	if isNoRows(err) {
		return nil, notFound(entityDeveloper, req.DeveloperID)
	}
	if err != nil {
		return nil, err
	}

	application, err := s.applications.Create(ctx, req)
	if err != nil {
		return nil, writeError(err, nil)
	}

	s.notify(ctx, project, developer, application)

	return application, nil
}

func (s *ApplicationService) Update(ctx context.Context, req *model.UpdateApplicationRequest) (*model.Application, error) {
	application, err := s.applications.Update(ctx, req)
	if err != nil {
		return nil, writeError(err, notFound(entityApplication, req.ID))
	}
	return application, nil
}

func (s *ApplicationService) notify(ctx context.Context, project *model.BusinessProject, developer *model.Developer, application *model.Application) {
	logger := s.logger.With().
		Int64("application_id", application.ID).
		Int64("project_id", project.ID).
		Logger()

	business, err := s.businesses.GetByID(ctx, project.ProjectOwner)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load business for application notification")
		return
	}
	if business.ContactEmail == nil || *business.ContactEmail == "" {
		logger.Debug().Msg("business has no contact email, skipping notification")
		return
	}

	payload := job.ApplicationReceivedPayload{
		To:            *business.ContactEmail,
		ApplicationID: application.ID,
		BusinessName:  business.Name,
		ProjectTitle:  project.Title,
		DeveloperName: developer.Name,
	}
	if application.CoverLetter != nil {
		payload.CoverLetter = *application.CoverLetter
	}

	if err := s.notifier.EnqueueApplicationReceived(ctx, payload); err != nil {
		logger.Error().Err(err).Msg("failed to enqueue application notification")
	}
}

func projectNotOpen(project *model.BusinessProject) error {
	code := "BUSINESS_PROJECT_NOT_OPEN"
	return errs.NewConflictError(
		fmt.Sprintf("Business project with ID = %d is %s and does not accept applications", project.ID, project.Status),
		true, &code,
	)
}
