package query

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// relSeparator splits a relationship filter key into its hop and field
// parts, e.g. addresses__city.
const relSeparator = "__"

// reservedParams are control parameters that never become filters. skip and
// limit are reserved for offset-style clients but are not interpreted.
var reservedParams = map[string]struct{}{
	"page":     {},
	"per_page": {},
	"sort":     {},
	"search":   {},
	"skip":     {},
	"limit":    {},
}

// Predicate is a single resolved filter condition. Rel is non-nil when the
// condition was reached through a relationship hop and must be evaluated
// against the related entity's table.
type Predicate struct {
	Column string
	Kind   Kind
	Value  string
	Rel    *Relationship
}

// SortKey is one resolved ordering term.
type SortKey struct {
	Column string
	Desc   bool
}

// Params is the parsed, validated form of a list request's query string.
type Params struct {
	Filters []Predicate
	Search  string
	Sort    []SortKey
	Page    int
	PerPage int
}

// ParseParams interprets a query string against the entity's schema. Errors
// are client errors: a non-positive or non-numeric page, a per_page outside
// [1, max], or a sort key naming an unknown field. Filter keys that resolve
// to nothing are dropped silently. Only the first value of a repeated key is
// considered, and filters are collected in sorted key order so the generated
// SQL is stable for a given URL.
func ParseParams(e *Entity, values url.Values, lim Limits) (Params, error) {
	lim = lim.withDefaults()
	p := Params{Page: 1, PerPage: lim.DefaultPerPage}

	if raw := values.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return Params{}, fmt.Errorf("invalid page %q: must be a positive integer", raw)
		}
		p.Page = n
	}

	if raw := values.Get("per_page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > lim.MaxPerPage {
			return Params{}, fmt.Errorf("invalid per_page %q: must be between 1 and %d", raw, lim.MaxPerPage)
		}
		p.PerPage = n
	}

	p.Search = values.Get("search")

	if raw := values.Get("sort"); raw != "" {
		keys, err := parseSort(e, raw)
		if err != nil {
			return Params{}, err
		}
		p.Sort = keys
	}

	names := make([]string, 0, len(values))
	for name := range values {
		if _, ok := reservedParams[name]; ok {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if pred, ok := resolve(e, name, values.Get(name)); ok {
			p.Filters = append(p.Filters, pred)
		}
	}

	return p, nil
}

func parseSort(e *Entity, raw string) ([]SortKey, error) {
	parts := strings.Split(raw, ",")
	keys := make([]SortKey, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		key := SortKey{}
		if strings.HasPrefix(part, "-") {
			key.Desc = true
			part = part[1:]
		}

		f, ok := e.Fields[part]
		if !ok {
			return nil, fmt.Errorf("unknown sort field %q for %s", part, e.Name)
		}
		key.Column = f.Column
		keys = append(keys, key)
	}
	return keys, nil
}

// resolve maps a filter key to a predicate. A key containing the separator
// is a relationship hop: both the relationship and the field on the related
// entity must be declared, otherwise the key is skipped. Nested hops are not
// supported; everything after the first separator is treated as one field
// name.
func resolve(e *Entity, name, value string) (Predicate, bool) {
	if rel, field, ok := strings.Cut(name, relSeparator); ok {
		r, declared := e.Relationships[rel]
		if !declared {
			return Predicate{}, false
		}
		f, declared := r.Entity.Fields[field]
		if !declared {
			return Predicate{}, false
		}
		return Predicate{Column: f.Column, Kind: f.Kind, Value: value, Rel: r}, true
	}

	f, declared := e.Fields[name]
	if !declared {
		return Predicate{}, false
	}
	return Predicate{Column: f.Column, Kind: f.Kind, Value: value}, true
}
