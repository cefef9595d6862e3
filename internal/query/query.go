// Package query translates URL query parameters into executable SQL plans
// against a declared entity schema.
//
// Filtering supports plain fields (name=ann), one-hop relationship fields
// (addresses__city=berlin), free-text search across an entity's text fields
// (search=ann), multi-field sorting (sort=-age,name), and page/per_page
// pagination. Text fields match case-insensitive substrings; all other
// fields match exact values after type coercion. Unknown filter fields are
// skipped so the API stays forgiving of stray parameters, while malformed
// control parameters (page, per_page, sort) are rejected outright.
package query

// Kind classifies a field for value coercion and predicate selection.
type Kind int

const (
	Text Kind = iota
	Int
	Float
	Bool
	Timestamp
)

// Field describes one filterable column of an entity.
type Field struct {
	Column string
	Kind   Kind
}

// Relationship is a one-hop link to another entity, expressed as the pair
// of columns that join the two tables. For a parent with children the local
// column is the parent's primary key and the foreign column is the child's
// foreign key; for a child pointing at its parent the pair is reversed.
type Relationship struct {
	Entity        *Entity
	LocalColumn   string
	ForeignColumn string
}

// Entity describes one queryable table: its select list, its filterable
// fields keyed by parameter name, and its declared relationships. Entities
// are built once at startup and treated as read-only afterwards.
type Entity struct {
	Name          string // singular display name, used in error messages
	Table         string
	Columns       []string // select list, in scan order
	Fields        map[string]Field
	Relationships map[string]*Relationship
}

// textColumns returns the entity's text-kind columns in select-list order,
// which keeps generated search SQL deterministic.
func (e *Entity) textColumns() []string {
	cols := make([]string, 0, len(e.Columns))
	for _, col := range e.Columns {
		for _, f := range e.Fields {
			if f.Column == col && f.Kind == Text {
				cols = append(cols, col)
				break
			}
		}
	}
	return cols
}

// Default pagination bounds, applied when Limits leaves them unset.
const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// Limits bounds pagination input. The zero value falls back to the package
// defaults.
type Limits struct {
	DefaultPerPage int
	MaxPerPage     int
}

func (l Limits) withDefaults() Limits {
	if l.DefaultPerPage <= 0 {
		l.DefaultPerPage = DefaultPerPage
	}
	if l.MaxPerPage <= 0 {
		l.MaxPerPage = MaxPerPage
	}
	return l
}
