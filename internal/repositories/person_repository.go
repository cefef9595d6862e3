package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"peopledir/internal/models"
	"peopledir/internal/query"
)

type PersonRepository struct {
	pool *pgxpool.Pool
}

func NewPersonRepository(pool *pgxpool.Pool) *PersonRepository {
	return &PersonRepository{pool: pool}
}

func (r *PersonRepository) Create(ctx context.Context, person *models.Person) error {
	sql := `
		INSERT INTO persons (name, age)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, sql, person.Name, person.Age).
		Scan(&person.ID, &person.CreatedAt)
	if err != nil {
		return err
	}

	person.Addresses = []models.Address{}
	person.Phones = []models.Phone{}
	return nil
}

func (r *PersonRepository) GetByID(ctx context.Context, id int64) (*models.Person, error) {
	sql := `
		SELECT id, name, age, created_at
		FROM persons
		WHERE id = $1
	`

	var person models.Person
	err := r.pool.QueryRow(ctx, sql, id).
		Scan(&person.ID, &person.Name, &person.Age, &person.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if err := r.loadChildren(ctx, []*models.Person{&person}); err != nil {
		return nil, err
	}

	return &person, nil
}

func (r *PersonRepository) List(ctx context.Context, params query.Params) ([]models.Person, int64, error) {
	plan := query.Build(models.PersonEntity, params)

	var total int64
	if err := r.pool.QueryRow(ctx, plan.CountSQL, plan.CountArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, plan.SelectSQL, plan.SelectArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	persons := make([]models.Person, 0)
	for rows.Next() {
		var person models.Person
		if err := rows.Scan(&person.ID, &person.Name, &person.Age, &person.CreatedAt); err != nil {
			return nil, 0, err
		}
		persons = append(persons, person)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	refs := make([]*models.Person, len(persons))
	for i := range persons {
		refs[i] = &persons[i]
	}
	if err := r.loadChildren(ctx, refs); err != nil {
		return nil, 0, err
	}

	return persons, total, nil
}

func (r *PersonRepository) Update(ctx context.Context, person *models.Person) error {
	sql := `
		UPDATE persons
		SET name = $2, age = $3
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, sql, person.ID, person.Name, person.Age)
	return err
}

// Delete removes the person and their addresses and phones in a single
// transaction. Reports false when no person row matched.
func (r *PersonRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	children := []string{
		`DELETE FROM addresses WHERE person_id = $1`,
		`DELETE FROM phones WHERE person_id = $1`,
	}
	for _, sql := range children {
		if _, err := tx.Exec(ctx, sql, id); err != nil {
			return false, err
		}
	}

	tag, err := tx.Exec(ctx, `DELETE FROM persons WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	return true, tx.Commit(ctx)
}

func (r *PersonRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM persons WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

// loadChildren hydrates addresses and phones with one query per child
// table. The slices start empty so a person with no children serializes as
// [] rather than null.
func (r *PersonRepository) loadChildren(ctx context.Context, persons []*models.Person) error {
	if len(persons) == 0 {
		return nil
	}

	ids := make([]int64, len(persons))
	byID := make(map[int64]*models.Person, len(persons))
	for i, p := range persons {
		p.Addresses = []models.Address{}
		p.Phones = []models.Phone{}
		ids[i] = p.ID
		byID[p.ID] = p
	}

	if err := r.loadAddresses(ctx, ids, byID); err != nil {
		return err
	}
	return r.loadPhones(ctx, ids, byID)
}

func (r *PersonRepository) loadAddresses(ctx context.Context, ids []int64, byID map[int64]*models.Person) error {
	sql := `
		SELECT id, street, city, person_id
		FROM addresses
		WHERE person_id = ANY($1)
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, sql, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var address models.Address
		if err := rows.Scan(&address.ID, &address.Street, &address.City, &address.PersonID); err != nil {
			return err
		}
		if p, ok := byID[address.PersonID]; ok {
			p.Addresses = append(p.Addresses, address)
		}
	}
	return rows.Err()
}

func (r *PersonRepository) loadPhones(ctx context.Context, ids []int64, byID map[int64]*models.Person) error {
	sql := `
		SELECT id, number, type, person_id
		FROM phones
		WHERE person_id = ANY($1)
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, sql, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var phone models.Phone
		if err := rows.Scan(&phone.ID, &phone.Number, &phone.Type, &phone.PersonID); err != nil {
			return err
		}
		if p, ok := byID[phone.PersonID]; ok {
			p.Phones = append(p.Phones, phone)
		}
	}
	return rows.Err()
}
