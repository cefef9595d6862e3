package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"peopledir/internal/models"
	"peopledir/internal/query"
)

type AddressRepository struct {
	pool *pgxpool.Pool
}

func NewAddressRepository(pool *pgxpool.Pool) *AddressRepository {
	return &AddressRepository{pool: pool}
}

func (r *AddressRepository) Create(ctx context.Context, address *models.Address) error {
	sql := `
		INSERT INTO addresses (street, city, person_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	return r.pool.QueryRow(ctx, sql, address.Street, address.City, address.PersonID).
		Scan(&address.ID)
}

func (r *AddressRepository) GetByID(ctx context.Context, id int64) (*models.Address, error) {
	sql := `
		SELECT id, street, city, person_id
		FROM addresses
		WHERE id = $1
	`

	var address models.Address
	err := r.pool.QueryRow(ctx, sql, id).
		Scan(&address.ID, &address.Street, &address.City, &address.PersonID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &address, nil
}

func (r *AddressRepository) List(ctx context.Context, params query.Params) ([]models.Address, int64, error) {
	plan := query.Build(models.AddressEntity, params)

	var total int64
	if err := r.pool.QueryRow(ctx, plan.CountSQL, plan.CountArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, plan.SelectSQL, plan.SelectArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	addresses := make([]models.Address, 0)
	for rows.Next() {
		var address models.Address
		if err := rows.Scan(&address.ID, &address.Street, &address.City, &address.PersonID); err != nil {
			return nil, 0, err
		}
		addresses = append(addresses, address)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return addresses, total, nil
}

func (r *AddressRepository) Update(ctx context.Context, address *models.Address) error {
	sql := `
		UPDATE addresses
		SET street = $2, city = $3, person_id = $4
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, sql, address.ID, address.Street, address.City, address.PersonID)
	return err
}

func (r *AddressRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM addresses WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
