// Package psqlbuilder wraps squirrel with PostgreSQL placeholder format
// so repositories never have to repeat the $-placeholder setup.
package psqlbuilder

import (
	"strings"

	"github.com/Masterminds/squirrel"
)

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes the LIKE/ILIKE pattern metacharacters in s, so
// user-supplied search terms always match literally.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// Select starts a SELECT statement with $-placeholders.
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert starts an INSERT statement with $-placeholders.
func Insert(into string) squirrel.InsertBuilder {
	return builder.Insert(into)
}

// Update starts an UPDATE statement with $-placeholders.
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete starts a DELETE statement with $-placeholders.
func Delete(from string) squirrel.DeleteBuilder {
	return builder.Delete(from)
}
