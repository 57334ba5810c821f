// Package repository handles all interactions with the database.
//
// Reads are composed with squirrel. Writes go through internal/lib/stmt so
// that only the columns a client actually sent end up in the statement.
// Rows are scanned into model structs by their `db` tags.
//
// A missing row is reported as sqlerr.NotFound(<table>), which wraps
// pgx.ErrNoRows.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/deppfellow/devmatch/internal/server"
	"github.com/deppfellow/devmatch/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// psql renders $n placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repositories is a container for all repository instances.
type Repositories struct {
	Developers   *DeveloperRepository
	SocialLinks  *SocialLinkRepository
	Services     *ServiceRepository
	Testimonials *TestimonialRepository
	Businesses   *BusinessRepository
	Projects     *ProjectRepository
	Applications *ApplicationRepository
}

// NewRepositories wires every repository to the server's pool.
func NewRepositories(s *server.Server) *Repositories {
	return NewRepositoriesWithDB(s.DB.Pool)
}

// NewRepositoriesWithDB wires every repository to db.
func NewRepositoriesWithDB(db DBTX) *Repositories {
	return &Repositories{
		Developers:   NewDeveloperRepository(db),
		SocialLinks:  NewSocialLinkRepository(db),
		Services:     NewServiceRepository(db),
		Testimonials: NewTestimonialRepository(db),
		Businesses:   NewBusinessRepository(db),
		Projects:     NewProjectRepository(db),
		Applications: NewApplicationRepository(db),
	}
}

// queryOne runs query and scans exactly one row into a T.
func queryOne[T any](ctx context.Context, db DBTX, table, query string, args []any) (*T, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}

	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sqlerr.NotFound(table)
		}
		return nil, fmt.Errorf("failed to collect %s row: %w", table, err)
	}

	return item, nil
}

// queryAll runs query and scans every row. It never returns a nil slice.
func queryAll[T any](ctx context.Context, db DBTX, table, query string, args []any) ([]T, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("failed to collect %s rows: %w", table, err)
	}
	if items == nil {
		items = []T{}
	}

	return items, nil
}

// selectOne renders b and scans exactly one row.
func selectOne[T any](ctx context.Context, db DBTX, table string, b squirrel.SelectBuilder) (*T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build %s query: %w", table, err)
	}
	return queryOne[T](ctx, db, table, query, args)
}

// selectAll renders b and scans every row.
func selectAll[T any](ctx context.Context, db DBTX, table string, b squirrel.SelectBuilder) ([]T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build %s query: %w", table, err)
	}
	return queryAll[T](ctx, db, table, query, args)
}

// exists reports whether table has a row with the given id.
func exists(ctx context.Context, db DBTX, table string, id int64) (bool, error) {
	query, args, err := psql.Select("1").
		Prefix("SELECT EXISTS (").
		From(table).
		Where(squirrel.Eq{"id": id}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build %s exists query: %w", table, err)
	}

	var found bool
	if err := db.QueryRow(ctx, query, args...).Scan(&found); err != nil {
		return false, fmt.Errorf("failed to check %s existence: %w", table, err)
	}
	return found, nil
}
