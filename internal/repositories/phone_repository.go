package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"peopledir/internal/models"
	"peopledir/internal/query"
)

type PhoneRepository struct {
	pool *pgxpool.Pool
}

func NewPhoneRepository(pool *pgxpool.Pool) *PhoneRepository {
	return &PhoneRepository{pool: pool}
}

func (r *PhoneRepository) Create(ctx context.Context, phone *models.Phone) error {
	sql := `
		INSERT INTO phones (number, type, person_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	return r.pool.QueryRow(ctx, sql, phone.Number, phone.Type, phone.PersonID).
		Scan(&phone.ID)
}

func (r *PhoneRepository) GetByID(ctx context.Context, id int64) (*models.Phone, error) {
	sql := `
		SELECT id, number, type, person_id
		FROM phones
		WHERE id = $1
	`

	var phone models.Phone
	err := r.pool.QueryRow(ctx, sql, id).
		Scan(&phone.ID, &phone.Number, &phone.Type, &phone.PersonID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &phone, nil
}

func (r *PhoneRepository) List(ctx context.Context, params query.Params) ([]models.Phone, int64, error) {
	plan := query.Build(models.PhoneEntity, params)

	var total int64
	if err := r.pool.QueryRow(ctx, plan.CountSQL, plan.CountArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, plan.SelectSQL, plan.SelectArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	phones := make([]models.Phone, 0)
	for rows.Next() {
		var phone models.Phone
		if err := rows.Scan(&phone.ID, &phone.Number, &phone.Type, &phone.PersonID); err != nil {
			return nil, 0, err
		}
		phones = append(phones, phone)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return phones, total, nil
}

func (r *PhoneRepository) Update(ctx context.Context, phone *models.Phone) error {
	sql := `
		UPDATE phones
		SET number = $2, type = $3, person_id = $4
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, sql, phone.ID, phone.Number, phone.Type, phone.PersonID)
	return err
}

func (r *PhoneRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM phones WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
