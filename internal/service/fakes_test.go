package service

import (
	"context"
	"errors"

	"github.com/deppfellow/devmatch/internal/lib/job"
	"github.com/deppfellow/devmatch/internal/lib/stmt"
	"github.com/deppfellow/devmatch/internal/model"
	"github.com/deppfellow/devmatch/internal/sqlerr"
)

var errEmpty = &stmt.EmptyStatementError{
	Op:         "update",
	Table:      "developers",
	Candidates: []string{"name", "profile_image", "about_me"},
}

type fakeDevelopers struct {
	rows      map[int64]*model.Developer
	updateErr error
}

func (f *fakeDevelopers) List(ctx context.Context) ([]model.Developer, error) {
	out := []model.Developer{}
	for _, d := range f.rows {
		out = append(out, *d)
	}
	return out, nil
}

func (f *fakeDevelopers) GetByID(ctx context.Context, id int64) (*model.Developer, error) {
	if d, ok := f.rows[id]; ok {
		return d, nil
	}
	return nil, sqlerr.NotFound("developers")
}

func (f *fakeDevelopers) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := f.rows[id]
	return ok, nil
}

func (f *fakeDevelopers) Create(ctx context.Context, req *model.CreateDeveloperRequest) (*model.Developer, error) {
	return &model.Developer{ID: 100, Name: req.Name}, nil
}

func (f *fakeDevelopers) Update(ctx context.Context, req *model.UpdateDeveloperRequest) (*model.Developer, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	d, ok := f.rows[req.ID]
	if !ok {
		return nil, sqlerr.NotFound("developers")
	}
	if name, ok := req.Name.Get(); ok {
		d.Name = name
	}
	return d, nil
}

type fakeSocialLinks struct {
	rows map[int64]*model.SocialLinks
}

func (f *fakeSocialLinks) GetByDeveloper(ctx context.Context, developerID int64) (*model.SocialLinks, error) {
	if l, ok := f.rows[developerID]; ok {
		return l, nil
	}
	return nil, sqlerr.NotFound("social_links")
}

func (f *fakeSocialLinks) Create(ctx context.Context, req *model.SocialLinksRequest) (*model.SocialLinks, error) {
	l := &model.SocialLinks{ID: 1, DeveloperID: req.DeveloperID}
	f.rows[req.DeveloperID] = l
	return l, nil
}

func (f *fakeSocialLinks) Update(ctx context.Context, req *model.SocialLinksRequest) (*model.SocialLinks, error) {
	if l, ok := f.rows[req.DeveloperID]; ok {
		return l, nil
	}
	return nil, sqlerr.NotFound("social_links")
}

type fakeSkills struct {
	catalogue map[int64]string
	attached  map[int64][]model.DeveloperSkill
}

func (f *fakeSkills) List(ctx context.Context) ([]model.Service, error) {
	out := []model.Service{}
	for id, title := range f.catalogue {
		out = append(out, model.Service{ID: id, Title: title})
	}
	return out, nil
}

func (f *fakeSkills) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := f.catalogue[id]
	return ok, nil
}

func (f *fakeSkills) ListByDeveloper(ctx context.Context, developerID int64) ([]model.DeveloperSkill, error) {
	return append([]model.DeveloperSkill{}, f.attached[developerID]...), nil
}

func (f *fakeSkills) Attach(ctx context.Context, req *model.AddDeveloperServiceRequest) (*model.DeveloperService, error) {
	f.attached[req.DeveloperID] = append(f.attached[req.DeveloperID], model.DeveloperSkill{
		ID: 1, ServiceID: req.ServiceID, Title: f.catalogue[req.ServiceID],
	})
	return &model.DeveloperService{ID: 1, DeveloperID: req.DeveloperID, ServiceID: req.ServiceID}, nil
}

type fakeBusinesses struct {
	rows   map[int64]*model.Business
	getErr error
}

func (f *fakeBusinesses) List(ctx context.Context) ([]model.Business, error) {
	return []model.Business{}, nil
}

func (f *fakeBusinesses) GetByID(ctx context.Context, id int64) (*model.Business, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if b, ok := f.rows[id]; ok {
		return b, nil
	}
	return nil, sqlerr.NotFound("businesses")
}

func (f *fakeBusinesses) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := f.rows[id]
	return ok, nil
}

func (f *fakeBusinesses) Create(ctx context.Context, req *model.CreateBusinessRequest) (*model.Business, error) {
	return &model.Business{ID: 200, Name: req.Name}, nil
}

func (f *fakeBusinesses) Update(ctx context.Context, req *model.UpdateBusinessRequest) (*model.Business, error) {
	if b, ok := f.rows[req.ID]; ok {
		return b, nil
	}
	return nil, sqlerr.NotFound("businesses")
}

type fakeTestimonials struct {
	views []model.TestimonialView
}

func (f *fakeTestimonials) ListByDeveloper(ctx context.Context, developerID int64) ([]model.TestimonialView, error) {
	out := []model.TestimonialView{}
	for _, v := range f.views {
		if v.DeveloperID == developerID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeTestimonials) Create(ctx context.Context, req *model.CreateTestimonialRequest) (*model.Testimonial, error) {
	return &model.Testimonial{ID: 1, DeveloperID: req.DeveloperID, TestimonialOwner: req.TestimonialOwner, Rating: req.Rating}, nil
}

func (f *fakeTestimonials) Update(ctx context.Context, req *model.UpdateTestimonialRequest) (*model.Testimonial, error) {
	return nil, sqlerr.NotFound("testimonials")
}

type fakeProjects struct {
	rows map[int64]*model.BusinessProject
}

func (f *fakeProjects) List(ctx context.Context, filter *model.ListProjectsRequest) ([]model.BusinessProject, error) {
	return []model.BusinessProject{}, nil
}

func (f *fakeProjects) GetByID(ctx context.Context, id int64) (*model.BusinessProject, error) {
	if p, ok := f.rows[id]; ok {
		return p, nil
	}
	return nil, sqlerr.NotFound("business_projects")
}

func (f *fakeProjects) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := f.rows[id]
	return ok, nil
}

func (f *fakeProjects) Create(ctx context.Context, req *model.CreateProjectRequest) (*model.BusinessProject, error) {
	return &model.BusinessProject{ID: 300, ProjectOwner: req.ProjectOwner, Title: req.Title, Status: model.ProjectStatusOpen}, nil
}

func (f *fakeProjects) Update(ctx context.Context, req *model.UpdateProjectRequest) (*model.BusinessProject, error) {
	if p, ok := f.rows[req.ID]; ok {
		return p, nil
	}
	return nil, sqlerr.NotFound("business_projects")
}

type fakeApplications struct {
	created []*model.CreateApplicationRequest
}

func (f *fakeApplications) ListByProject(ctx context.Context, projectID int64) ([]model.Application, error) {
	return []model.Application{}, nil
}

func (f *fakeApplications) Create(ctx context.Context, req *model.CreateApplicationRequest) (*model.Application, error) {
	f.created = append(f.created, req)
	a := &model.Application{
		ID:          int64(len(f.created)),
		ProjectID:   req.ProjectID,
		DeveloperID: req.DeveloperID,
		Status:      model.ApplicationStatusPending,
	}
	if letter, ok := req.CoverLetter.Get(); ok {
		a.CoverLetter = &letter
	}
	return a, nil
}

func (f *fakeApplications) Update(ctx context.Context, req *model.UpdateApplicationRequest) (*model.Application, error) {
	return nil, sqlerr.NotFound("applications")
}

type fakeNotifier struct {
	sent []job.ApplicationReceivedPayload
	err  error
}

func (f *fakeNotifier) EnqueueApplicationReceived(ctx context.Context, p job.ApplicationReceivedPayload) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, p)
	return nil
}

var errBoom = errors.New("boom")
