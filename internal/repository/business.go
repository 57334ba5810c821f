package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/deppfellow/devmatch/internal/lib/stmt"
	"github.com/deppfellow/devmatch/internal/model"
)

const (
	tableBusinesses   = "businesses"
	tableTestimonials = "testimonials"
)

type BusinessRepository struct {
	db DBTX
}

func NewBusinessRepository(db DBTX) *BusinessRepository {
	return &BusinessRepository{db: db}
}

func (r *BusinessRepository) List(ctx context.Context) ([]model.Business, error) {
	return selectAll[model.Business](ctx, r.db, tableBusinesses,
		psql.Select("*").From(tableBusinesses).OrderBy("id"))
}

func (r *BusinessRepository) GetByID(ctx context.Context, id int64) (*model.Business, error) {
	return selectOne[model.Business](ctx, r.db, tableBusinesses,
		psql.Select("*").From(tableBusinesses).Where("id = ?", id))
}

func (r *BusinessRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, tableBusinesses, id)
}

func (r *BusinessRepository) Create(ctx context.Context, req *model.CreateBusinessRequest) (*model.Business, error) {
	query, args, err := buildBusinessInsert(req)
	if err != nil {
		return nil, err
	}
	return queryOne[model.Business](ctx, r.db, tableBusinesses, query, args)
}

func (r *BusinessRepository) Update(ctx context.Context, req *model.UpdateBusinessRequest) (*model.Business, error) {
	query, args, err := buildBusinessUpdate(req)
	if err != nil {
		return nil, err
	}
	return queryOne[model.Business](ctx, r.db, tableBusinesses, query, args)
}

func buildBusinessInsert(req *model.CreateBusinessRequest) (string, []any, error) {
	return stmt.BuildInsert(tableBusinesses, nil, []stmt.Field{
		stmt.Set("name", req.Name),
		stmt.Opt("company_logo", req.CompanyLogo),
		stmt.Opt("industry", req.Industry),
		stmt.Opt("description", req.Description),
		stmt.Opt("contact_email", req.ContactEmail),
	})
}

func buildBusinessUpdate(req *model.UpdateBusinessRequest) (string, []any, error) {
	return stmt.BuildUpdate(tableBusinesses,
		stmt.Where{SQL: "id = $1", Args: []any{req.ID}},
		[]stmt.Field{
			stmt.Opt("name", req.Name),
			stmt.Opt("company_logo", req.CompanyLogo),
			stmt.Opt("industry", req.Industry),
			stmt.Opt("description", req.Description),
			stmt.Opt("contact_email", req.ContactEmail),
		},
	)
}

// ---------------------------------------------------------------------------

// TestimonialRepository manages the reviews businesses leave on developers.
// A business reviews a developer at most once.
type TestimonialRepository struct {
	db DBTX
}

func NewTestimonialRepository(db DBTX) *TestimonialRepository {
	return &TestimonialRepository{db: db}
}

// ListByDeveloper returns the developer's testimonials with the name of
// the reviewing business.
func (r *TestimonialRepository) ListByDeveloper(ctx context.Context, developerID int64) ([]model.TestimonialView, error) {
	return selectAll[model.TestimonialView](ctx, r.db, tableTestimonials,
		testimonialsQuery(developerID))
}

func (r *TestimonialRepository) Create(ctx context.Context, req *model.CreateTestimonialRequest) (*model.Testimonial, error) {
	query, args, err := buildTestimonialInsert(req)
	if err != nil {
		return nil, err
	}
	return queryOne[model.Testimonial](ctx, r.db, tableTestimonials, query, args)
}

func (r *TestimonialRepository) Update(ctx context.Context, req *model.UpdateTestimonialRequest) (*model.Testimonial, error) {
	query, args, err := buildTestimonialUpdate(req)
	if err != nil {
		return nil, err
	}
	return queryOne[model.Testimonial](ctx, r.db, tableTestimonials, query, args)
}

func testimonialsQuery(developerID int64) squirrel.SelectBuilder {
	return psql.Select(
		"testimonials.developer_id",
		"businesses.name",
		"testimonials.rating",
		"testimonials.feedback",
	).
		From(tableTestimonials).
		InnerJoin("businesses ON testimonials.testimonial_owner = businesses.id").
		Where("testimonials.developer_id = ?", developerID).
		OrderBy("testimonials.id")
}

func buildTestimonialInsert(req *model.CreateTestimonialRequest) (string, []any, error) {
	return stmt.BuildInsert(tableTestimonials,
		[]stmt.Key{{Column: "developer_id", Value: req.DeveloperID}},
		[]stmt.Field{
			stmt.Set("testimonial_owner", req.TestimonialOwner),
			stmt.Set("rating", req.Rating),
			stmt.Opt("feedback", req.Feedback),
		},
	)
}

func buildTestimonialUpdate(req *model.UpdateTestimonialRequest) (string, []any, error) {
	return stmt.BuildUpdate(tableTestimonials,
		stmt.Where{
			SQL:  "developer_id = $1 AND testimonial_owner = $2",
			Args: []any{req.DeveloperID, req.TestimonialOwner},
		},
		[]stmt.Field{
			stmt.Opt("rating", req.Rating),
			stmt.Opt("feedback", req.Feedback),
		},
	)
}
