package repository

import (
	"fmt"
	"strings"

	"github.com/metinatakli/movie-catalog/internal/domain"
)

// listQuery describes a paginated, searchable SELECT over one table. Every
// field is a compile-time constant; user input only ever reaches the
// statement as a bound parameter.
type listQuery struct {
	table      string
	columns    string
	searchable []string
	orderBy    string
}

// selectSQL builds the page query. The search pattern, when present, is $1
// and LIMIT/OFFSET follow it.
func (q listQuery) selectSQL(filters domain.ListFilters) (string, []any) {
	var (
		sb   strings.Builder
		args []any
	)

	fmt.Fprintf(&sb, "SELECT %s FROM %s", q.columns, q.table)

	if filters.HasSearch() {
		args = append(args, filters.SearchPattern())
		sb.WriteString(" WHERE ")
		sb.WriteString(q.searchPredicate(len(args)))
	}

	fmt.Fprintf(&sb, " ORDER BY %s", q.orderBy)

	args = append(args, filters.Limit(), filters.Offset())
	fmt.Fprintf(&sb, " LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	return sb.String(), args
}

// countSQL builds the total query for the same predicate selectSQL uses.
func (q listQuery) countSQL(search string) (string, []any) {
	filters := domain.ListFilters{Search: search}

	if !filters.HasSearch() {
		return fmt.Sprintf("SELECT count(*) FROM %s", q.table), nil
	}

	query := fmt.Sprintf("SELECT count(*) FROM %s WHERE %s", q.table, q.searchPredicate(1))

	return query, []any{filters.SearchPattern()}
}

func (q listQuery) searchPredicate(placeholder int) string {
	conds := make([]string, len(q.searchable))
	for i, column := range q.searchable {
		conds[i] = fmt.Sprintf("%s ILIKE $%d", column, placeholder)
	}

	return strings.Join(conds, " OR ")
}
