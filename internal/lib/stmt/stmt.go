// Package stmt assembles parameterized INSERT and UPDATE statements from a
// list of candidate columns, keeping only the columns the client actually sent.
//
// Only values are bound through placeholders ($1, $2, ...). Table and column
// names are interpolated into the SQL text, so every identifier is checked
// against a strict pattern before it is written.
//
// The builder is pure: it holds no state, performs no I/O and can be called
// from any number of goroutines.
//
// Usage:
//
//	query, args, err := stmt.BuildUpdate("developers",
//		stmt.Where{SQL: "id = $1", Args: []any{id}},
//		[]stmt.Field{
//			stmt.Opt("name", req.Name),
//			stmt.Opt("about_me", req.AboutMe),
//		},
//	)
package stmt

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/deppfellow/devmatch/internal/lib/optional"
)

var (
	// ErrEmptyStatement is returned when no column survives filtering.
	// Callers should answer with a client error rather than execute anything.
	ErrEmptyStatement = errors.New("stmt: no columns to write")

	// ErrUnsafeIdentifier is returned when a table or column name is not a
	// plain SQL identifier. It signals a programming mistake, not bad input.
	ErrUnsafeIdentifier = errors.New("stmt: unsafe identifier")

	// ErrDuplicateColumn is returned when the same column is listed twice.
	ErrDuplicateColumn = errors.New("stmt: duplicate column")

	// ErrMissingWhere is returned by BuildUpdate for an empty where clause.
	ErrMissingWhere = errors.New("stmt: update without where clause")

	// ErrWhereArgs is returned by BuildUpdate when the where clause does not
	// use exactly $1..$n for its n arguments.
	ErrWhereArgs = errors.New("stmt: where placeholders do not match arguments")
)

var (
	identifierPattern  = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
	placeholderPattern = regexp.MustCompile(`\$([0-9]+)`)
)

// EmptyStatementError is the concrete error behind ErrEmptyStatement. It
// lists the candidate columns so callers can tell the client what it could
// have sent.
type EmptyStatementError struct {
	Op         string
	Table      string
	Candidates []string
}

func (e *EmptyStatementError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Op, e.Table, ErrEmptyStatement)
}

func (e *EmptyStatementError) Unwrap() error {
	return ErrEmptyStatement
}

func emptyStatement(op, table string, candidates []Field) error {
	columns := make([]string, len(candidates))
	for i, f := range candidates {
		columns[i] = f.Column
	}
	return &EmptyStatementError{Op: op, Table: table, Candidates: columns}
}

// Field is one candidate column. It is written only when Present is true.
type Field struct {
	Column  string
	Value   any
	Present bool
}

// Key is a column that is always written, typically a foreign key taken
// from the path.
type Key struct {
	Column string
	Value  any
}

// Where is a pre-built condition whose placeholders are numbered from $1.
type Where struct {
	SQL  string
	Args []any
}

// Set returns a present field.
func Set(column string, value any) Field {
	return Field{Column: column, Value: value, Present: true}
}

// Unset returns an absent field. It is skipped by the builders.
func Unset(column string) Field {
	return Field{Column: column}
}

// Opt converts a decoded optional value into a field. Explicit JSON null is
// present and binds SQL NULL.
func Opt[T any](column string, v optional.Value[T]) Field {
	if !v.IsSet() {
		return Unset(column)
	}
	return Set(column, v.Any())
}

// IsIdentifier reports whether name can be interpolated into SQL as-is.
func IsIdentifier(name string) bool {
	return identifierPattern.MatchString(name)
}

// BuildInsert renders
//
//	INSERT INTO <table> (<keys>, <present fields>) VALUES ($1, ...) RETURNING *
//
// Keys come first, followed by present candidates in declaration order.
func BuildInsert(table string, keys []Key, candidates []Field) (string, []any, error) {
	if err := checkIdentifier(table); err != nil {
		return "", nil, err
	}

	seen := make(map[string]struct{}, len(keys)+len(candidates))
	columns := make([]string, 0, len(keys)+len(candidates))
	args := make([]any, 0, len(keys)+len(candidates))

	for _, k := range keys {
		if err := addColumn(seen, k.Column); err != nil {
			return "", nil, err
		}
		columns = append(columns, k.Column)
		args = append(args, k.Value)
	}

	for _, f := range candidates {
		// Identifiers are checked even for absent fields so that a bad
		// column list fails on every request, not only on some.
		if err := checkIdentifier(f.Column); err != nil {
			return "", nil, err
		}
		if !f.Present {
			continue
		}
		if err := addColumn(seen, f.Column); err != nil {
			return "", nil, err
		}
		columns = append(columns, f.Column)
		args = append(args, f.Value)
	}

	if len(columns) == 0 {
		return "", nil, emptyStatement("insert into", table, candidates)
	}

	placeholders := make([]string, len(args))
	for i := range args {
		placeholders[i] = placeholder(i + 1)
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(table)
	sb.WriteString(" (")
	sb.WriteString(strings.Join(columns, ", "))
	sb.WriteString(") VALUES (")
	sb.WriteString(strings.Join(placeholders, ", "))
	sb.WriteString(") RETURNING *")

	return sb.String(), args, nil
}

// BuildUpdate renders
//
//	UPDATE <table> SET c1 = $k+1, ... WHERE <where> RETURNING *
//
// where k is len(where.Args): the where clause keeps $1..$k and the
// assignments continue the numbering without gaps.
func BuildUpdate(table string, where Where, candidates []Field) (string, []any, error) {
	if err := checkIdentifier(table); err != nil {
		return "", nil, err
	}
	if strings.TrimSpace(where.SQL) == "" {
		return "", nil, fmt.Errorf("update %s: %w", table, ErrMissingWhere)
	}
	if err := checkWhere(where); err != nil {
		return "", nil, fmt.Errorf("update %s: %w", table, err)
	}

	seen := make(map[string]struct{}, len(candidates))
	args := make([]any, 0, len(where.Args)+len(candidates))
	args = append(args, where.Args...)

	assignments := make([]string, 0, len(candidates))
	for _, f := range candidates {
		if err := checkIdentifier(f.Column); err != nil {
			return "", nil, err
		}
		if !f.Present {
			continue
		}
		if err := addColumn(seen, f.Column); err != nil {
			return "", nil, err
		}
		args = append(args, f.Value)
		assignments = append(assignments, f.Column+" = "+placeholder(len(args)))
	}

	if len(assignments) == 0 {
		return "", nil, emptyStatement("update", table, candidates)
	}

	var sb strings.Builder
	sb.WriteString("UPDATE ")
	sb.WriteString(table)
	sb.WriteString(" SET ")
	sb.WriteString(strings.Join(assignments, ", "))
	sb.WriteString(" WHERE ")
	sb.WriteString(where.SQL)
	sb.WriteString(" RETURNING *")

	return sb.String(), args, nil
}

func addColumn(seen map[string]struct{}, column string) error {
	if err := checkIdentifier(column); err != nil {
		return err
	}
	if _, ok := seen[column]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateColumn, column)
	}
	seen[column] = struct{}{}
	return nil
}

func checkIdentifier(name string) error {
	if !IsIdentifier(name) {
		return fmt.Errorf("%w: %q", ErrUnsafeIdentifier, name)
	}
	return nil
}

// checkWhere makes sure the where clause numbers its placeholders $1..$n
// with n = len(Args), so the assignments can start at $n+1.
func checkWhere(where Where) error {
	used := make(map[int]struct{})
	highest := 0
	for _, m := range placeholderPattern.FindAllStringSubmatch(where.SQL, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil || n == 0 {
			return fmt.Errorf("%w: invalid placeholder %q", ErrWhereArgs, m[0])
		}
		used[n] = struct{}{}
		highest = max(highest, n)
	}

	if highest != len(where.Args) {
		return fmt.Errorf("%w: highest placeholder $%d, %d args", ErrWhereArgs, highest, len(where.Args))
	}
	for n := 1; n <= highest; n++ {
		if _, ok := used[n]; !ok {
			return fmt.Errorf("%w: $%d is never used", ErrWhereArgs, n)
		}
	}
	return nil
}

func placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}
