package query

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Query is an executable plan: a windowed select plus the companion count
// that shares its predicates but not its LIMIT/OFFSET arguments.
type Query struct {
	SelectSQL  string
	SelectArgs []any
	CountSQL   string
	CountArgs  []any
}

// Build assembles the SQL for parsed params. The search block comes first,
// then filters in the order ParseParams resolved them, all joined with AND.
// Relationship predicates become correlated EXISTS subqueries so a match on
// any related row qualifies the base row without duplicating it.
func Build(e *Entity, p Params) Query {
	var (
		where []string
		args  []any
	)

	if p.Search != "" {
		if cols := e.textColumns(); len(cols) > 0 {
			ors := make([]string, 0, len(cols))
			for _, col := range cols {
				args = append(args, "%"+p.Search+"%")
				ors = append(ors, fmt.Sprintf("%s.%s ILIKE $%d", e.Table, col, len(args)))
			}
			where = append(where, "("+strings.Join(ors, " OR ")+")")
		}
	}

	for _, f := range p.Filters {
		owner := e
		if f.Rel != nil {
			owner = f.Rel.Entity
		}

		cond, arg := compare(owner.Table, f.Column, f.Kind, f.Value, len(args)+1)
		args = append(args, arg)

		if f.Rel != nil {
			cond = fmt.Sprintf("EXISTS (SELECT 1 FROM %s WHERE %s.%s = %s.%s AND %s)",
				owner.Table, owner.Table, f.Rel.ForeignColumn, e.Table, f.Rel.LocalColumn, cond)
		}
		where = append(where, cond)
	}

	var whereSQL string
	if len(where) > 0 {
		whereSQL = " WHERE " + strings.Join(where, " AND ")
	}

	countArgs := make([]any, len(args))
	copy(countArgs, args)

	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(e.Columns, ", "))
	b.WriteString(" FROM ")
	b.WriteString(e.Table)
	b.WriteString(whereSQL)

	if len(p.Sort) > 0 {
		terms := make([]string, len(p.Sort))
		for i, s := range p.Sort {
			dir := " ASC"
			if s.Desc {
				dir = " DESC"
			}
			terms[i] = e.Table + "." + s.Column + dir
		}
		b.WriteString(" ORDER BY ")
		b.WriteString(strings.Join(terms, ", "))
	}

	args = append(args, p.PerPage, (p.Page-1)*p.PerPage)
	fmt.Fprintf(&b, " LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	return Query{
		SelectSQL:  b.String(),
		SelectArgs: args,
		CountSQL:   "SELECT COUNT(*) FROM " + e.Table + whereSQL,
		CountArgs:  countArgs,
	}
}

// compare renders one comparison against placeholder $idx and returns the
// bound argument. Text fields match as case-insensitive substrings. Other
// kinds compare for equality after coercion; when the raw value does not
// coerce, the column is compared as text against the literal instead, which
// yields an empty result rather than a database error.
func compare(table, column string, kind Kind, raw string, idx int) (string, any) {
	qualified := table + "." + column

	if kind == Text {
		return fmt.Sprintf("%s ILIKE $%d", qualified, idx), "%" + raw + "%"
	}

	v, ok := coerce(raw, kind)
	if !ok {
		return fmt.Sprintf("CAST(%s AS TEXT) = $%d", qualified, idx), raw
	}
	return fmt.Sprintf("%s = $%d", qualified, idx), v
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// coerce converts a raw string to the field's native type. Booleans never
// fail: true, 1 and yes (any case) are true, everything else is false.
func coerce(raw string, kind Kind) (any, bool) {
	switch kind {
	case Int:
		n, err := strconv.ParseInt(raw, 10, 64)
		return n, err == nil
	case Float:
		f, err := strconv.ParseFloat(raw, 64)
		return f, err == nil
	case Bool:
		switch strings.ToLower(raw) {
		case "true", "1", "yes":
			return true, true
		default:
			return false, true
		}
	case Timestamp:
		for _, layout := range timestampLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	default:
		return raw, true
	}
}
