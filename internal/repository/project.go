package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/deppfellow/devmatch/internal/lib/stmt"
	"github.com/deppfellow/devmatch/internal/model"
)

const (
	tableBusinessProjects = "business_projects"
	tableApplications     = "applications"
)

type ProjectRepository struct {
	db DBTX
}

func NewProjectRepository(db DBTX) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// List returns projects ordered by id, optionally filtered by status and
// owner.
func (r *ProjectRepository) List(ctx context.Context, filter *model.ListProjectsRequest) ([]model.BusinessProject, error) {
	return selectAll[model.BusinessProject](ctx, r.db, tableBusinessProjects, projectsQuery(filter))
}

func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*model.BusinessProject, error) {
	return selectOne[model.BusinessProject](ctx, r.db, tableBusinessProjects,
		psql.Select("*").From(tableBusinessProjects).Where("id = ?", id))
}

func (r *ProjectRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, tableBusinessProjects, id)
}

func (r *ProjectRepository) Create(ctx context.Context, req *model.CreateProjectRequest) (*model.BusinessProject, error) {
	query, args, err := buildProjectInsert(req)
	if err != nil {
		return nil, err
	}
	return queryOne[model.BusinessProject](ctx, r.db, tableBusinessProjects, query, args)
}

func (r *ProjectRepository) Update(ctx context.Context, req *model.UpdateProjectRequest) (*model.BusinessProject, error) {
	query, args, err := buildProjectUpdate(req)
	if err != nil {
		return nil, err
	}
	return queryOne[model.BusinessProject](ctx, r.db, tableBusinessProjects, query, args)
}

func projectsQuery(filter *model.ListProjectsRequest) squirrel.SelectBuilder {
	b := psql.Select("*").From(tableBusinessProjects).OrderBy("id")
	if filter == nil {
		return b
	}

	if filter.Status != "" {
		b = b.Where(squirrel.Eq{"status": filter.Status})
	}
	if filter.Owner > 0 {
		b = b.Where(squirrel.Eq{"project_owner": filter.Owner})
	}
	return b
}

func buildProjectInsert(req *model.CreateProjectRequest) (string, []any, error) {
	return stmt.BuildInsert(tableBusinessProjects, nil, []stmt.Field{
		stmt.Set("project_owner", req.ProjectOwner),
		stmt.Set("title", req.Title),
		stmt.Opt("brief", req.Brief),
		stmt.Opt("desired_skill", req.DesiredSkill),
		stmt.Opt("deadline", req.Deadline),
		stmt.Opt("status", req.Status),
	})
}

func buildProjectUpdate(req *model.UpdateProjectRequest) (string, []any, error) {
	return stmt.BuildUpdate(tableBusinessProjects,
		stmt.Where{SQL: "id = $1", Args: []any{req.ID}},
		[]stmt.Field{
			stmt.Opt("project_owner", req.ProjectOwner),
			stmt.Opt("title", req.Title),
			stmt.Opt("brief", req.Brief),
			stmt.Opt("desired_skill", req.DesiredSkill),
			stmt.Opt("deadline", req.Deadline),
			stmt.Opt("status", req.Status),
		},
	)
}

// ---------------------------------------------------------------------------

// ApplicationRepository stores developers' applications to projects.
type ApplicationRepository struct {
	db DBTX
}

func NewApplicationRepository(db DBTX) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) ListByProject(ctx context.Context, projectID int64) ([]model.Application, error) {
	return selectAll[model.Application](ctx, r.db, tableApplications,
		psql.Select("*").From(tableApplications).
			Where("project_id = ?", projectID).
			OrderBy("created_at", "id"))
}

func (r *ApplicationRepository) Create(ctx context.Context, req *model.CreateApplicationRequest) (*model.Application, error) {
	query, args, err := buildApplicationInsert(req)
	if err != nil {
		return nil, err
	}
	return queryOne[model.Application](ctx, r.db, tableApplications, query, args)
}

func (r *ApplicationRepository) Update(ctx context.Context, req *model.UpdateApplicationRequest) (*model.Application, error) {
	query, args, err := buildApplicationUpdate(req)
	if err != nil {
		return nil, err
	}
	return queryOne[model.Application](ctx, r.db, tableApplications, query, args)
}

func buildApplicationInsert(req *model.CreateApplicationRequest) (string, []any, error) {
	return stmt.BuildInsert(tableApplications,
		[]stmt.Key{{Column: "project_id", Value: req.ProjectID}},
		[]stmt.Field{
			stmt.Set("developer_id", req.DeveloperID),
			stmt.Opt("cover_letter", req.CoverLetter),
		},
	)
}

func buildApplicationUpdate(req *model.UpdateApplicationRequest) (string, []any, error) {
	return stmt.BuildUpdate(tableApplications,
		stmt.Where{SQL: "id = $1", Args: []any{req.ID}},
		[]stmt.Field{
			stmt.Opt("status", req.Status),
			stmt.Opt("cover_letter", req.CoverLetter),
		},
	)
}
