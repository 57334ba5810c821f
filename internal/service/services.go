// Package service contains the business logic.
//
// It sits between the handler and repository layers: it checks that the
// rows a request refers to exist, turns repository failures into client
// facing errors and triggers background work.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/devmatch/internal/errs"
	"github.com/deppfellow/devmatch/internal/lib/job"
	"github.com/deppfellow/devmatch/internal/lib/stmt"
	"github.com/deppfellow/devmatch/internal/repository"
	"github.com/deppfellow/devmatch/internal/server"
	"github.com/jackc/pgx/v5"
)

type Services struct {
	Developers   *DeveloperService
	Skills       *SkillService
	Businesses   *BusinessService
	Testimonials *TestimonialService
	Projects     *ProjectService
	Applications *ApplicationService
	Job          *job.JobService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	if s.Job == nil {
		return nil, errors.New("job service is not initialized")
	}

	return &Services{
		Developers:   NewDeveloperService(repos.Developers, repos.SocialLinks),
		Skills:       NewSkillService(repos.Developers, repos.Services),
		Businesses:   NewBusinessService(repos.Businesses),
		Testimonials: NewTestimonialService(repos.Developers, repos.Businesses, repos.Testimonials),
		Projects:     NewProjectService(repos.Businesses, repos.Projects),
		Applications: NewApplicationService(s.Logger, repos.Developers, repos.Businesses, repos.Projects, repos.Applications, s.Job),
		Job:          s.Job,
	}, nil
}

// existsFunc is the Exists method of a repository.
type existsFunc func(ctx context.Context, id int64) (bool, error)

// notFound renders the 404 returned for a missing parent row, e.g.
// "Developer with ID = 4 does not exist" with code DEVELOPER_NOT_FOUND.
func notFound(entity string, id int64) *errs.HTTPError {
	return notFoundMessage(entity, fmt.Sprintf("%s with ID = %d does not exist", entity, id))
}

func notFoundMessage(entity, message string) *errs.HTTPError {
	code := errs.MakeUpperCaseWithUnderscores(entity) + "_NOT_FOUND"
	return errs.NewNotFoundError(message, true, &code)
}

func requireExists(ctx context.Context, exists existsFunc, entity string, id int64) error {
	found, err := exists(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return notFound(entity, id)
	}
	return nil
}

// writeError maps a failed INSERT or UPDATE. A body without any writable
// column becomes NO_UPDATABLE_FIELDS and a missing target row becomes
// missing. Everything else is left for the global error handler.
func writeError(err error, missing *errs.HTTPError) error {
	var empty *stmt.EmptyStatementError
	if errors.As(err, &empty) {
		return errs.NoUpdatableFields(empty.Candidates...)
	}
	if missing != nil && errors.Is(err, pgx.ErrNoRows) {
		return missing
	}
	return err
}

// isNoRows reports whether a read found nothing.
func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
