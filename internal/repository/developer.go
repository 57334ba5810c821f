package repository

import (
	"context"

	"github.com/deppfellow/devmatch/internal/lib/stmt"
	"github.com/deppfellow/devmatch/internal/model"
)

const (
	tableDevelopers  = "developers"
	tableSocialLinks = "social_links"
)

type DeveloperRepository struct {
	db DBTX
}

func NewDeveloperRepository(db DBTX) *DeveloperRepository {
	return &DeveloperRepository{db: db}
}

func (r *DeveloperRepository) List(ctx context.Context) ([]model.Developer, error) {
	return selectAll[model.Developer](ctx, r.db, tableDevelopers,
		psql.Select("*").From(tableDevelopers).OrderBy("id"))
}

func (r *DeveloperRepository) GetByID(ctx context.Context, id int64) (*model.Developer, error) {
	return selectOne[model.Developer](ctx, r.db, tableDevelopers,
		psql.Select("*").From(tableDevelopers).Where("id = ?", id))
}

func (r *DeveloperRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, tableDevelopers, id)
}

func (r *DeveloperRepository) Create(ctx context.Context, req *model.CreateDeveloperRequest) (*model.Developer, error) {
	query, args, err := buildDeveloperInsert(req)
	if err != nil {
		return nil, err
	}
	return queryOne[model.Developer](ctx, r.db, tableDevelopers, query, args)
}

// Update writes the fields present in req. A missing developer yields
// sqlerr.NotFound.
func (r *DeveloperRepository) Update(ctx context.Context, req *model.UpdateDeveloperRequest) (*model.Developer, error) {
	query, args, err := buildDeveloperUpdate(req)
	if err != nil {
		return nil, err
	}
	return queryOne[model.Developer](ctx, r.db, tableDevelopers, query, args)
}

func buildDeveloperInsert(req *model.CreateDeveloperRequest) (string, []any, error) {
	return stmt.BuildInsert(tableDevelopers, nil, []stmt.Field{
		stmt.Set("name", req.Name),
		stmt.Opt("profile_image", req.ProfileImage),
		stmt.Opt("about_me", req.AboutMe),
	})
}

func buildDeveloperUpdate(req *model.UpdateDeveloperRequest) (string, []any, error) {
	return stmt.BuildUpdate(tableDevelopers,
		stmt.Where{SQL: "id = $1", Args: []any{req.ID}},
		[]stmt.Field{
			stmt.Opt("name", req.Name),
			stmt.Opt("profile_image", req.ProfileImage),
			stmt.Opt("about_me", req.AboutMe),
		},
	)
}

// ---------------------------------------------------------------------------

// SocialLinkRepository manages the one social_links row a developer may own.
type SocialLinkRepository struct {
	db DBTX
}

func NewSocialLinkRepository(db DBTX) *SocialLinkRepository {
	return &SocialLinkRepository{db: db}
}

func (r *SocialLinkRepository) GetByDeveloper(ctx context.Context, developerID int64) (*model.SocialLinks, error) {
	return selectOne[model.SocialLinks](ctx, r.db, tableSocialLinks,
		psql.Select("*").From(tableSocialLinks).Where("developer_id = ?", developerID))
}

func (r *SocialLinkRepository) Create(ctx context.Context, req *model.SocialLinksRequest) (*model.SocialLinks, error) {
	query, args, err := buildSocialLinksInsert(req)
	if err != nil {
		return nil, err
	}
	return queryOne[model.SocialLinks](ctx, r.db, tableSocialLinks, query, args)
}

func (r *SocialLinkRepository) Update(ctx context.Context, req *model.SocialLinksRequest) (*model.SocialLinks, error) {
	query, args, err := buildSocialLinksUpdate(req)
	if err != nil {
		return nil, err
	}
	return queryOne[model.SocialLinks](ctx, r.db, tableSocialLinks, query, args)
}

func socialLinkFields(req *model.SocialLinksRequest) []stmt.Field {
	return []stmt.Field{
		stmt.Opt("linkedin", req.Linkedin),
		stmt.Opt("github", req.Github),
		stmt.Opt("website", req.Website),
		stmt.Opt("other", req.Other),
	}
}

// buildSocialLinksInsert always writes developer_id, so a body without any
// link still creates an empty row.
func buildSocialLinksInsert(req *model.SocialLinksRequest) (string, []any, error) {
	return stmt.BuildInsert(tableSocialLinks,
		[]stmt.Key{{Column: "developer_id", Value: req.DeveloperID}},
		socialLinkFields(req),
	)
}

func buildSocialLinksUpdate(req *model.SocialLinksRequest) (string, []any, error) {
	return stmt.BuildUpdate(tableSocialLinks,
		stmt.Where{SQL: "developer_id = $1", Args: []any{req.DeveloperID}},
		socialLinkFields(req),
	)
}
