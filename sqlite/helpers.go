package sqlite

import (
	"fmt"
	"strings"
	"time"
)

// selectQuery builds a filtered SELECT one condition at a time.
type selectQuery struct {
	sql  strings.Builder
	args []any
}

func newSelectQuery(columns, table string) *selectQuery {
	q := &selectQuery{}
	q.sql.WriteString("SELECT " + columns + " FROM " + table + " WHERE 1=1")
	return q
}

// and adds "AND cond" with a single placeholder argument.
func (q *selectQuery) and(cond string, arg any) {
	q.sql.WriteString(" AND " + cond)
	q.args = append(q.args, arg)
}

func (q *selectQuery) orderBy(clause string) {
	q.sql.WriteString(" ORDER BY " + clause)
}

// paginate appends LIMIT and OFFSET for positive values. SQLite only accepts
// OFFSET after a LIMIT, so an offset alone is paired with LIMIT -1.
func (q *selectQuery) paginate(limit, offset int) {
	switch {
	case limit > 0:
		q.sql.WriteString(" LIMIT ?")
		q.args = append(q.args, limit)
	case offset > 0:
		q.sql.WriteString(" LIMIT -1")
	}
	if offset > 0 {
		q.sql.WriteString(" OFFSET ?")
		q.args = append(q.args, offset)
	}
}

// parseTimestamp reads a stored RFC 3339 column value as UTC.
func parseTimestamp(value, column string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %s %q: %w", column, value, err)
	}
	return t.UTC(), nil
}
