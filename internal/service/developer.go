package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/devmatch/internal/errs"
	"github.com/deppfellow/devmatch/internal/model"
)

const entityDeveloper = "Developer"

// DeveloperService manages developer profiles and their social links.
type DeveloperService struct {
	developers  DeveloperStore
	socialLinks SocialLinkStore
}

func NewDeveloperService(developers DeveloperStore, socialLinks SocialLinkStore) *DeveloperService {
	return &DeveloperService{developers: developers, socialLinks: socialLinks}
}

func (s *DeveloperService) List(ctx context.Context) ([]model.Developer, error) {
	return s.developers.List(ctx)
}

func (s *DeveloperService) Get(ctx context.Context, id int64) (*model.Developer, error) {
	developer, err := s.developers.GetByID(ctx, id)
	if isNoRows(err) {
		return nil, notFound(entityDeveloper, id)
	}
	return developer, err
}

func (s *DeveloperService) Create(ctx context.Context, req *model.CreateDeveloperRequest) (*model.Developer, error) {
	developer, err := s.developers.Create(ctx, req)
	if err != nil {
		return nil, writeError(err, nil)
	}
	return developer, nil
}

func (s *DeveloperService) Update(ctx context.Context, req *model.UpdateDeveloperRequest) (*model.Developer, error) {
	developer, err := s.developers.Update(ctx, req)
	if err != nil {
		return nil, writeError(err, notFound(entityDeveloper, req.ID))
	}
	return developer, nil
}

func (s *DeveloperService) GetSocialLinks(ctx context.Context, developerID int64) (*model.SocialLinks, error) {
	if err := requireExists(ctx, s.developers.Exists, entityDeveloper, developerID); err != nil {
		return nil, err
	}

	links, err := s.socialLinks.GetByDeveloper(ctx, developerID)
	if isNoRows(err) {
		return nil, noSocialLinks(developerID)
	}
	return links, err
}

func (s *DeveloperService) CreateSocialLinks(ctx context.Context, req *model.SocialLinksRequest) (*model.SocialLinks, error) {
	if err := requireExists(ctx, s.developers.Exists, entityDeveloper, req.DeveloperID); err != nil {
		return nil, err
	}

	links, err := s.socialLinks.Create(ctx, req)
	if err != nil {
		return nil, writeError(err, nil)
	}
	return links, nil
}

func (s *DeveloperService) UpdateSocialLinks(ctx context.Context, req *model.SocialLinksRequest) (*model.SocialLinks, error) {
	if err := requireExists(ctx, s.developers.Exists, entityDeveloper, req.DeveloperID); err != nil {
		return nil, err
	}

	links, err := s.socialLinks.Update(ctx, req)
	if err != nil {
		return nil, writeError(err, noSocialLinks(req.DeveloperID))
	}
	return links, nil
}

func noSocialLinks(developerID int64) *errs.HTTPError {
	return notFoundMessage("Social links", fmt.Sprintf("Developer with ID = %d has no social links", developerID))
}
