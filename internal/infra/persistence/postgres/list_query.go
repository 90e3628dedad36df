package postgres

import (
	"strings"

	"tuition/internal/domain/entity"
)

// orderClause maps a client sort field onto a whitelisted column. Unknown
// fields fall back to the default column.
func orderClause(query entity.ListQuery, columns map[string]string, fallback string) string {
	column, ok := columns[query.Sort]
	if !ok {
		column = fallback
	}

	direction := "DESC"
	if query.Order == entity.SortAsc {
		direction = "ASC"
	}

	return column + " " + direction
}

func likePattern(search string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(search)

	return "%" + escaped + "%"
}
