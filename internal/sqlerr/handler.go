package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/deppfellow/devmatch/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TablePrefix marks not-found errors with the table they came from, e.g.
//
//	fmt.Errorf("table:developers: %w", pgx.ErrNoRows)
//
// HandleError uses it to name the entity in the 404 message.
const TablePrefix = "table:"

// referenceAliases names the entity behind foreign key columns that do not
// follow the <entity>_id convention.
var referenceAliases = map[string]string{
	"project_owner":     "business",
	"testimonial_owner": "business",
	"project_id":        "business project",
}


// NotFound wraps pgx.ErrNoRows so that HandleError reports the entity by name.
func NotFound(table string) error {
	return fmt.Errorf("%s%s: %w", TablePrefix, table, pgx.ErrNoRows)
}

// ConvertPgError converts a raw server error into an *Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// generateErrorCode builds codes like DEVELOPER_NOT_FOUND or
// BUSINESS_PROJECT_ALREADY_EXISTS from the table and the violation.
func generateErrorCode(tableName string, errType Code) string {
	domain := "RECORD"
	if tableName != "" {
		domain = strings.ToUpper(singular(tableName))
	}

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation, InvalidTextRepresentation, InvalidDatetimeFormat, StringDataRightTruncation:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

func formatUserFriendlyMessage(sqlErr *Error) string {
	switch sqlErr.Code {
	case ForeignKeyViolation:
		column := sqlErr.ColumnName
		if column == "" {
			column = extractColumnForForeignKey(sqlErr.TableName, sqlErr.ConstraintName)
		}
		return fmt.Sprintf("The referenced %s does not exist", strings.ToLower(getEntityName("", column)))

	case UniqueViolation:
		return uniqueViolationMessage(sqlErr.TableName, sqlErr.ConstraintName)

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = humanizeText(extractColumnForCheck(sqlErr.TableName, sqlErr.ConstraintName))
		}
		if fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	case InvalidTextRepresentation, InvalidDatetimeFormat:
		return "One or more values have an invalid format"

	case StringDataRightTruncation:
		return "One or more values are too long"

	default:
		return "An error occurred while processing your request"
	}
}

// getEntityName prefers the column (user_id -> "User", project_owner ->
// "Business") and falls back to the singular table name.
func getEntityName(tableName, columnName string) string {
	column := strings.ToLower(columnName)
	if alias, ok := referenceAliases[column]; ok {
		return humanizeText(alias)
	}
	if column != "" && strings.HasSuffix(column, "_id") {
		return humanizeText(strings.TrimSuffix(column, "_id"))
	}

	if tableName != "" {
		return humanizeText(singular(tableName))
	}

	return "Record"
}

// singular handles the plural forms used by the schema: developers,
// businesses, business_projects, social_links.
func singular(name string) string {
	switch {
	case strings.HasSuffix(name, "sses"):
		return strings.TrimSuffix(name, "es")
	case strings.HasSuffix(name, "ies"):
		return strings.TrimSuffix(name, "ies") + "y"
	case strings.HasSuffix(name, "ss"):
		return name
	case strings.HasSuffix(name, "s") && len(name) > 1:
		return strings.TrimSuffix(name, "s")
	}
	return name
}

// humanizeText turns snake_case into Title Case.
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// uniqueColumns reads the columns of "<table>_<col>[_<col>...]_key" and
// "unique_<table>_<col>..." constraint names. Columns are split after every
// "id" token and after known reference columns, so
// "applications_project_id_developer_id_key" gives project_id, developer_id.
func uniqueColumns(tableName, constraintName string) []string {
	rest := strings.TrimPrefix(constraintName, "unique_")
	if tableName != "" {
		rest = strings.TrimPrefix(rest, tableName+"_")
	}
	rest = strings.TrimSuffix(strings.TrimSuffix(rest, "_key"), "_ukey")
	if rest == "" || rest == constraintName {
		return nil
	}

	var columns []string
	current := ""
	for _, token := range strings.Split(rest, "_") {
		if current == "" {
			current = token
		} else {
			current += "_" + token
		}
		if _, ok := referenceAliases[current]; ok || token == "id" {
			columns = append(columns, current)
			current = ""
		}
	}
	if current != "" {
		columns = append(columns, current)
	}
	return columns
}

func isReference(column string) bool {
	_, ok := referenceAliases[column]
	return ok || strings.HasSuffix(column, "_id")
}

// uniqueViolationMessage names the entity and what makes it a duplicate:
// "An application for this business project and developer already exists"
// or "A service with this title already exists".
func uniqueViolationMessage(tableName, constraintName string) string {
	entity := strings.ToLower(getEntityName(tableName, ""))
	columns := uniqueColumns(tableName, constraintName)
	if len(columns) == 0 {
		return fmt.Sprintf("%s %s with this identifier already exists", capitalize(article(entity)), entity)
	}

	preposition := "for"
	names := make([]string, 0, len(columns))
	for _, column := range columns {
		if isReference(column) {
			names = append(names, strings.ToLower(getEntityName("", column)))
			continue
		}
		preposition = "with"
		names = append(names, strings.ToLower(humanizeText(column)))
	}

	return fmt.Sprintf("%s %s %s this %s already exists",
		capitalize(article(entity)), entity, preposition, strings.Join(names, " and "))
}

func article(word string) string {
	if word != "" && strings.ContainsRune("aeiou", rune(word[0])) {
		return "an"
	}
	return "a"
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}

// extractColumnForForeignKey reads "<table>_<column>_fkey".
func extractColumnForForeignKey(tableName, constraintName string) string {
	return trimConstraint(tableName, constraintName, "_fkey")
}

// extractColumnForCheck reads "<table>_<column>_check".
func extractColumnForCheck(tableName, constraintName string) string {
	return trimConstraint(tableName, constraintName, "_check")
}

func trimConstraint(tableName, constraintName, suffix string) string {
	if constraintName == "" || !strings.HasSuffix(constraintName, suffix) {
		return ""
	}
	column := strings.TrimSuffix(constraintName, suffix)
	if tableName != "" {
		column = strings.TrimPrefix(column, tableName+"_")
	}
	return column
}

// HandleError converts an error returned by the database layer into an
// *errs.HTTPError. HTTP errors pass through unchanged; anything unrecognised
// becomes a generic 500.
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)

		errorCode := generateErrorCode(sqlErr.TableName, sqlErr.Code)
		userMessage := formatUserFriendlyMessage(sqlErr)

		switch sqlErr.Code {
		case ForeignKeyViolation:
			return errs.NewBadRequestError(userMessage, false, &errorCode, nil)

		case UniqueViolation:
			return errs.NewConflictError(userMessage, true, &errorCode)

		case NotNullViolation:
			fieldErrors := []errs.FieldError{
				{
					Field: strings.ToLower(sqlErr.ColumnName),
					Error: "is required",
				},
			}
			return errs.NewBadRequestError(userMessage, true, &errorCode, fieldErrors)

		case CheckViolation, InvalidTextRepresentation, InvalidDatetimeFormat, StringDataRightTruncation:
			return errs.NewBadRequestError(userMessage, true, &errorCode, nil)

		default:
			return errs.NewInternalServerError()
		}
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		errMsg := err.Error()
		if idx := strings.Index(errMsg, TablePrefix); idx >= 0 {
			table := strings.SplitN(errMsg[idx+len(TablePrefix):], ":", 2)[0]
			entityName := getEntityName(table, "")
			code := generateNotFoundCode(table)
			return errs.NewNotFoundError(fmt.Sprintf("%s not found", entityName), true, &code)
		}
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	return errs.NewInternalServerError()
}

func generateNotFoundCode(table string) string {
	return strings.ToUpper(singular(table)) + "_NOT_FOUND"
}
