package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/deppfellow/devmatch/internal/errs"
	"github.com/deppfellow/devmatch/internal/lib/optional"
	"github.com/deppfellow/devmatch/internal/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	return httpErr
}

func assertNotFound(t *testing.T, err error, code, message string) {
	t.Helper()

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, code, httpErr.Code)
	assert.Equal(t, message, httpErr.Message)
}

func newDevelopers() *fakeDevelopers {
	return &fakeDevelopers{rows: map[int64]*model.Developer{
		1: {ID: 1, Name: "Ada"},
		2: {ID: 2, Name: "Linus"},
	}}
}

func TestDeveloperService_Get(t *testing.T) {
	svc := NewDeveloperService(newDevelopers(), &fakeSocialLinks{rows: map[int64]*model.SocialLinks{}})
	ctx := context.Background()

	developer, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Ada", developer.Name)

	_, err = svc.Get(ctx, 9)
	assertNotFound(t, err, "DEVELOPER_NOT_FOUND", "Developer with ID = 9 does not exist")
}

func TestDeveloperService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("present field is applied", func(t *testing.T) {
		svc := NewDeveloperService(newDevelopers(), nil)
		developer, err := svc.Update(ctx, &model.UpdateDeveloperRequest{ID: 1, Name: optional.Some("Grace")})
		require.NoError(t, err)
		assert.Equal(t, "Grace", developer.Name)
	})

	t.Run("missing row", func(t *testing.T) {
		svc := NewDeveloperService(newDevelopers(), nil)
		_, err := svc.Update(ctx, &model.UpdateDeveloperRequest{ID: 7, Name: optional.Some("x")})
		assertNotFound(t, err, "DEVELOPER_NOT_FOUND", "Developer with ID = 7 does not exist")
	})

	t.Run("empty body", func(t *testing.T) {
		developers := newDevelopers()
		developers.updateErr = errEmpty
		svc := NewDeveloperService(developers, nil)

		_, err := svc.Update(ctx, &model.UpdateDeveloperRequest{ID: 1})
		httpErr := asHTTPError(t, err)
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, errs.CodeNoUpdatableFields, httpErr.Code)
		assert.Contains(t, httpErr.Message, "name, profile_image, about_me")
	})

	t.Run("other errors pass through", func(t *testing.T) {
		developers := newDevelopers()
		developers.updateErr = errBoom
		svc := NewDeveloperService(developers, nil)

		_, err := svc.Update(ctx, &model.UpdateDeveloperRequest{ID: 1})
		assert.ErrorIs(t, err, errBoom)
	})
}

func TestDeveloperService_SocialLinks(t *testing.T) {
	links := &fakeSocialLinks{rows: map[int64]*model.SocialLinks{}}
	svc := NewDeveloperService(newDevelopers(), links)
	ctx := context.Background()

	_, err := svc.GetSocialLinks(ctx, 5)
	assertNotFound(t, err, "DEVELOPER_NOT_FOUND", "Developer with ID = 5 does not exist")

	_, err = svc.GetSocialLinks(ctx, 1)
	assertNotFound(t, err, "SOCIAL_LINKS_NOT_FOUND", "Developer with ID = 1 has no social links")

	_, err = svc.UpdateSocialLinks(ctx, &model.SocialLinksRequest{DeveloperID: 1, Github: optional.Some("gh")})
	assertNotFound(t, err, "SOCIAL_LINKS_NOT_FOUND", "Developer with ID = 1 has no social links")

	_, err = svc.CreateSocialLinks(ctx, &model.SocialLinksRequest{DeveloperID: 5})
	assertNotFound(t, err, "DEVELOPER_NOT_FOUND", "Developer with ID = 5 does not exist")

	created, err := svc.CreateSocialLinks(ctx, &model.SocialLinksRequest{DeveloperID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.DeveloperID)

	got, err := svc.GetSocialLinks(ctx, 1)
	require.NoError(t, err)
	assert.Same(t, created, got)
}

func TestSkillService(t *testing.T) {
	skills := &fakeSkills{
		catalogue: map[int64]string{1: "Web Development"},
		attached:  map[int64][]model.DeveloperSkill{},
	}
	svc := NewSkillService(newDevelopers(), skills)
	ctx := context.Background()

	_, err := svc.ListByDeveloper(ctx, 1)
	assertNotFound(t, err, "SERVICES_NOT_FOUND", "Developer with ID = 1 has no services")

	_, err = svc.Attach(ctx, &model.AddDeveloperServiceRequest{DeveloperID: 1, ServiceID: 42})
	assertNotFound(t, err, "SERVICE_NOT_FOUND", "Service with ID = 42 does not exist")

	_, err = svc.Attach(ctx, &model.AddDeveloperServiceRequest{DeveloperID: 8, ServiceID: 1})
	assertNotFound(t, err, "DEVELOPER_NOT_FOUND", "Developer with ID = 8 does not exist")

	_, err = svc.Attach(ctx, &model.AddDeveloperServiceRequest{DeveloperID: 1, ServiceID: 1})
	require.NoError(t, err)

	list, err := svc.ListByDeveloper(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Web Development", list[0].Title)

	catalogue, err := svc.Catalogue(ctx)
	require.NoError(t, err)
	assert.Len(t, catalogue, 1)
}

func TestBusinessService(t *testing.T) {
	svc := NewBusinessService(&fakeBusinesses{rows: map[int64]*model.Business{3: {ID: 3, Name: "Acme"}}})
	ctx := context.Background()

	_, err := svc.Get(ctx, 4)
	assertNotFound(t, err, "BUSINESS_NOT_FOUND", "Business with ID = 4 does not exist")

	_, err = svc.Update(ctx, &model.UpdateBusinessRequest{ID: 4, Name: optional.Some("x")})
	assertNotFound(t, err, "BUSINESS_NOT_FOUND", "Business with ID = 4 does not exist")

	business, err := svc.Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Acme", business.Name)
}

func TestTestimonialService(t *testing.T) {
	businesses := &fakeBusinesses{rows: map[int64]*model.Business{3: {ID: 3, Name: "Acme"}}}
	testimonials := &fakeTestimonials{views: []model.TestimonialView{{DeveloperID: 2, Name: "Acme", Rating: 5}}}
	svc := NewTestimonialService(newDevelopers(), businesses, testimonials)
	ctx := context.Background()

	_, err := svc.ListByDeveloper(ctx, 1)
	assertNotFound(t, err, "TESTIMONIALS_NOT_FOUND", "Developer with ID = 1 has no testimonials")

	views, err := svc.ListByDeveloper(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, views, 1)

	_, err = svc.Create(ctx, &model.CreateTestimonialRequest{DeveloperID: 1, TestimonialOwner: 9, Rating: 4})
	assertNotFound(t, err, "BUSINESS_NOT_FOUND", "Business with ID = 9 does not exist")

	created, err := svc.Create(ctx, &model.CreateTestimonialRequest{DeveloperID: 1, TestimonialOwner: 3, Rating: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, created.Rating)

	_, err = svc.Update(ctx, &model.UpdateTestimonialRequest{DeveloperID: 1, TestimonialOwner: 3, Rating: optional.Some(2)})
	assertNotFound(t, err, "TESTIMONIAL_NOT_FOUND", "Business with ID = 3 has no testimonial for developer with ID = 1")
}

func TestProjectService(t *testing.T) {
	businesses := &fakeBusinesses{rows: map[int64]*model.Business{3: {ID: 3, Name: "Acme"}}}
	projects := &fakeProjects{rows: map[int64]*model.BusinessProject{10: {ID: 10, ProjectOwner: 3, Title: "Site"}}}
	svc := NewProjectService(businesses, projects)
	ctx := context.Background()

	_, err := svc.Create(ctx, &model.CreateProjectRequest{ProjectOwner: 4, Title: "x"})
	assertNotFound(t, err, "BUSINESS_NOT_FOUND", "Business with ID = 4 does not exist")

	project, err := svc.Create(ctx, &model.CreateProjectRequest{ProjectOwner: 3, Title: "x"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), project.ProjectOwner)

	_, err = svc.Update(ctx, &model.UpdateProjectRequest{ID: 10, ProjectOwner: optional.Some(int64(4))})
	assertNotFound(t, err, "BUSINESS_NOT_FOUND", "Business with ID = 4 does not exist")

	_, err = svc.Update(ctx, &model.UpdateProjectRequest{ID: 11, Title: optional.Some("y")})
	assertNotFound(t, err, "BUSINESS_PROJECT_NOT_FOUND", "Business project with ID = 11 does not exist")

	_, err = svc.Update(ctx, &model.UpdateProjectRequest{ID: 10, Title: optional.Some("y")})
	require.NoError(t, err)
}

type applicationFixture struct {
	svc          *ApplicationService
	businesses   *fakeBusinesses
	projects     *fakeProjects
	applications *fakeApplications
	notifier     *fakeNotifier
}

func newApplicationFixture() *applicationFixture {
	logger := zerolog.Nop()
	f := &applicationFixture{
		businesses: &fakeBusinesses{rows: map[int64]*model.Business{
			3: {ID: 3, Name: "Acme", ContactEmail: strPtr("hiring@acme.test")},
			4: {ID: 4, Name: "Quiet Co"},
		}},
		projects: &fakeProjects{rows: map[int64]*model.BusinessProject{
			10: {ID: 10, ProjectOwner: 3, Title: "Site", Status: model.ProjectStatusOpen},
			11: {ID: 11, ProjectOwner: 4, Title: "App", Status: model.ProjectStatusOpen},
			12: {ID: 12, ProjectOwner: 3, Title: "Old", Status: model.ProjectStatusClosed},
		}},
		applications: &fakeApplications{},
		notifier:     &fakeNotifier{},
	}
	f.svc = NewApplicationService(&logger, newDevelopers(), f.businesses, f.projects, f.applications, f.notifier)
	return f
}

func TestApplicationService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("notifies the business contact", func(t *testing.T) {
		f := newApplicationFixture()

		application, err := f.svc.Create(ctx, &model.CreateApplicationRequest{
			ProjectID:   10,
			DeveloperID: 1,
			CoverLetter: optional.Some("hire me"),
		})
		require.NoError(t, err)
		assert.Equal(t, model.ApplicationStatusPending, application.Status)

		require.Len(t, f.notifier.sent, 1)
		sent := f.notifier.sent[0]
		assert.Equal(t, "hiring@acme.test", sent.To)
		assert.Equal(t, "Acme", sent.BusinessName)
		assert.Equal(t, "Site", sent.ProjectTitle)
		assert.Equal(t, "Ada", sent.DeveloperName)
		assert.Equal(t, "hire me", sent.CoverLetter)
		assert.Equal(t, application.ID, sent.ApplicationID)
	})

	t.Run("skips businesses without contact email", func(t *testing.T) {
		f := newApplicationFixture()

		_, err := f.svc.Create(ctx, &model.CreateApplicationRequest{ProjectID: 11, DeveloperID: 1})
		require.NoError(t, err)
		assert.Empty(t, f.notifier.sent)
	})

	t.Run("enqueue failure does not fail the request", func(t *testing.T) {
		f := newApplicationFixture()
		f.notifier.err = errBoom

		_, err := f.svc.Create(ctx, &model.CreateApplicationRequest{ProjectID: 10, DeveloperID: 1})
		require.NoError(t, err)
		assert.Len(t, f.applications.created, 1)
	})

	t.Run("business lookup failure does not fail the request", func(t *testing.T) {
		f := newApplicationFixture()
		f.businesses.getErr = errBoom

		_, err := f.svc.Create(ctx, &model.CreateApplicationRequest{ProjectID: 10, DeveloperID: 1})
		require.NoError(t, err)
		assert.Empty(t, f.notifier.sent)
	})

	t.Run("unknown project", func(t *testing.T) {
		f := newApplicationFixture()

		_, err := f.svc.Create(ctx, &model.CreateApplicationRequest{ProjectID: 99, DeveloperID: 1})
		assertNotFound(t, err, "BUSINESS_PROJECT_NOT_FOUND", "Business project with ID = 99 does not exist")
		assert.Empty(t, f.applications.created)
	})

	t.Run("unknown developer", func(t *testing.T) {
		f := newApplicationFixture()

		_, err := f.svc.Create(ctx, &model.CreateApplicationRequest{ProjectID: 10, DeveloperID: 50})
		assertNotFound(t, err, "DEVELOPER_NOT_FOUND", "Developer with ID = 50 does not exist")
	})

	t.Run("closed project", func(t *testing.T) {
		f := newApplicationFixture()

		_, err := f.svc.Create(ctx, &model.CreateApplicationRequest{ProjectID: 12, DeveloperID: 1})
		httpErr := asHTTPError(t, err)
		assert.Equal(t, http.StatusConflict, httpErr.Status)
		assert.Equal(t, "BUSINESS_PROJECT_NOT_OPEN", httpErr.Code)
		assert.Empty(t, f.applications.created)
	})
}

func TestApplicationService_ListAndUpdate(t *testing.T) {
	f := newApplicationFixture()
	ctx := context.Background()

	_, err := f.svc.ListByProject(ctx, 99)
	assertNotFound(t, err, "BUSINESS_PROJECT_NOT_FOUND", "Business project with ID = 99 does not exist")

	list, err := f.svc.ListByProject(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = f.svc.Update(ctx, &model.UpdateApplicationRequest{ID: 5, Status: optional.Some("accepted")})
	assertNotFound(t, err, "APPLICATION_NOT_FOUND", "Application with ID = 5 does not exist")
}
