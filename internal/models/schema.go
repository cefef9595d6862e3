package models

import "peopledir/internal/query"

// Query descriptors for the three tables. Handlers parse list parameters
// against these and repositories build SQL from them, so parameter names,
// columns and kinds live in exactly one place.
var (
	PersonEntity = &query.Entity{
		Name:    "Person",
		Table:   "persons",
		Columns: []string{"id", "name", "age", "created_at"},
		Fields: map[string]query.Field{
			"id":         {Column: "id", Kind: query.Int},
			"name":       {Column: "name", Kind: query.Text},
			"age":        {Column: "age", Kind: query.Int},
			"created_at": {Column: "created_at", Kind: query.Timestamp},
		},
	}

	AddressEntity = &query.Entity{
		Name:    "Address",
		Table:   "addresses",
		Columns: []string{"id", "street", "city", "person_id"},
		Fields: map[string]query.Field{
			"id":        {Column: "id", Kind: query.Int},
			"street":    {Column: "street", Kind: query.Text},
			"city":      {Column: "city", Kind: query.Text},
			"person_id": {Column: "person_id", Kind: query.Int},
		},
	}

	PhoneEntity = &query.Entity{
		Name:    "Phone",
		Table:   "phones",
		Columns: []string{"id", "number", "type", "person_id"},
		Fields: map[string]query.Field{
			"id":        {Column: "id", Kind: query.Int},
			"number":    {Column: "number", Kind: query.Text},
			"type":      {Column: "type", Kind: query.Text},
			"person_id": {Column: "person_id", Kind: query.Int},
		},
	}
)

// The descriptors reference each other, so the links cannot appear in the
// variable initializers above without an initialization cycle.
func init() {
	PersonEntity.Relationships = map[string]*query.Relationship{
		"addresses": {Entity: AddressEntity, LocalColumn: "id", ForeignColumn: "person_id"},
		"phones":    {Entity: PhoneEntity, LocalColumn: "id", ForeignColumn: "person_id"},
	}
	AddressEntity.Relationships = map[string]*query.Relationship{
		"person": {Entity: PersonEntity, LocalColumn: "person_id", ForeignColumn: "id"},
	}
	PhoneEntity.Relationships = map[string]*query.Relationship{
		"person": {Entity: PersonEntity, LocalColumn: "person_id", ForeignColumn: "id"},
	}
}
