package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/deppfellow/devmatch/internal/lib/stmt"
	"github.com/deppfellow/devmatch/internal/model"
)

const (
	tableServices          = "services"
	tableDeveloperServices = "developer_services"
)

// ServiceRepository reads the skill catalogue and the skills attached to
// developers.
type ServiceRepository struct {
	db DBTX
}

func NewServiceRepository(db DBTX) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) List(ctx context.Context) ([]model.Service, error) {
	return selectAll[model.Service](ctx, r.db, tableServices,
		psql.Select("*").From(tableServices).OrderBy("id"))
}

func (r *ServiceRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, tableServices, id)
}

func (r *ServiceRepository) ListByDeveloper(ctx context.Context, developerID int64) ([]model.DeveloperSkill, error) {
	return selectAll[model.DeveloperSkill](ctx, r.db, tableDeveloperServices,
		developerSkillsQuery(developerID))
}

// Attach links a catalogue entry to a developer. Attaching twice violates
// the unique pair and is reported by sqlerr.
func (r *ServiceRepository) Attach(ctx context.Context, req *model.AddDeveloperServiceRequest) (*model.DeveloperService, error) {
	query, args, err := buildDeveloperServiceInsert(req)
	if err != nil {
		return nil, err
	}
	return queryOne[model.DeveloperService](ctx, r.db, tableDeveloperServices, query, args)
}

func developerSkillsQuery(developerID int64) squirrel.SelectBuilder {
	return psql.Select(
		"developer_services.id",
		"developer_services.service_id",
		"services.title",
	).
		From(tableDeveloperServices).
		InnerJoin("services ON developer_services.service_id = services.id").
		Where("developer_services.developer_id = ?", developerID).
		OrderBy("developer_services.id")
}

func buildDeveloperServiceInsert(req *model.AddDeveloperServiceRequest) (string, []any, error) {
	return stmt.BuildInsert(tableDeveloperServices,
		[]stmt.Key{{Column: "developer_id", Value: req.DeveloperID}},
		[]stmt.Field{stmt.Set("service_id", req.ServiceID)},
	)
}
