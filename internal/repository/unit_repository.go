package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"millage/internal/models"
)

type unitRepository struct {
	db *sqlx.DB
}

func NewUnitRepository(db *sqlx.DB) UnitRepository {
	return &unitRepository{db: db}
}

func (r *unitRepository) Create(ctx context.Context, unit *models.Unit) error {
	query := `INSERT INTO units (name, created_at) VALUES ($1, $2) RETURNING id`

	unit.CreatedAt = time.Now().UTC()

	if err := r.db.QueryRowxContext(ctx, query, unit.Name, unit.CreatedAt).Scan(&unit.UnitID); err != nil {
		return storageErr("create unit", err)
	}

	return nil
}

func (r *unitRepository) GetByName(ctx context.Context, name string) (*models.Unit, error) {
	var unit models.Unit

	err := r.db.GetContext(ctx, &unit, `SELECT id, name, created_at FROM units WHERE name = $1`, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("unit", name)
		}
		return nil, storageErr("get unit", err)
	}

	return &unit, nil
}
