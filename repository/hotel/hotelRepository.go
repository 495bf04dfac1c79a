package hotel

import (
	"context"
	"database/sql"

	"github.com/saqi06/Hotel-Management-API/model"
)

type Repo interface {
	Create(ctx context.Context, h *model.Hotel) error
	List(ctx context.Context) ([]model.Hotel, error)
	ByID(ctx context.Context, id int64) (*model.Hotel, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) Create(ctx context.Context, h *model.Hotel) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO hotels(name, address)
		VALUES ($1,$2)
		RETURNING id, created_at`,
		h.Name, h.Address,
	).Scan(&h.ID, &h.CreatedAt)
}

func (r *repo) List(ctx context.Context) ([]model.Hotel, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, address, created_at
		FROM hotels
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Hotel
	for rows.Next() {
		var h model.Hotel
		if err := rows.Scan(&h.ID, &h.Name, &h.Address, &h.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Hotel, error) {
	h := &model.Hotel{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, address, created_at
		FROM hotels
		WHERE id = $1`, id,
	).Scan(&h.ID, &h.Name, &h.Address, &h.CreatedAt)
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (r *repo) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM hotels WHERE id = $1)`, id,
	).Scan(&ok)
	return ok, err
}
