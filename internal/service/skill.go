package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/devmatch/internal/model"
)

const entityService = "Service"

// SkillService exposes the skill catalogue and the skills attached to each
// developer.
type SkillService struct {
	developers DeveloperStore
	skills     SkillStore
}

func NewSkillService(developers DeveloperStore, skills SkillStore) *SkillService {
	return &SkillService{developers: developers, skills: skills}
}

func (s *SkillService) Catalogue(ctx context.Context) ([]model.Service, error) {
	return s.skills.List(ctx)
}

// ListByDeveloper answers 404 both for an unknown developer and for a
// developer without skills.
func (s *SkillService) ListByDeveloper(ctx context.Context, developerID int64) ([]model.DeveloperSkill, error) {
	if err := requireExists(ctx, s.developers.Exists, entityDeveloper, developerID); err != nil {
		return nil, err
	}

	skills, err := s.skills.ListByDeveloper(ctx, developerID)
	if err != nil {
		return nil, err
	}
	if len(skills) == 0 {
		return nil, notFoundMessage("Services", fmt.Sprintf("Developer with ID = %d has no services", developerID))
	}
	return skills, nil
}

func (s *SkillService) Attach(ctx context.Context, req *model.AddDeveloperServiceRequest) (*model.DeveloperService, error) {
	if err := requireExists(ctx, s.developers.Exists, entityDeveloper, req.DeveloperID); err != nil {
		return nil, err
	}
	if err := requireExists(ctx, s.skills.Exists, entityService, req.ServiceID); err != nil {
		return nil, err
	}

	attached, err := s.skills.Attach(ctx, req)
	if err != nil {
		return nil, writeError(err, nil)
	}
	return attached, nil
}
