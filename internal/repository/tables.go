package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type tablesRepository struct {
	db *sqlx.DB
}

func NewTablesRepository(db *sqlx.DB) TablesRepository {
	return &tablesRepository{db: db}
}

// CountTablesDB reports how many tables the public schema holds, a cheap
// sign that migrations ran.
func (r *tablesRepository) CountTablesDB(ctx context.Context) (int, error) {
	var count int

	err := r.db.GetContext(ctx, &count, `
			SELECT COUNT(*)
			FROM information_schema.tables
			WHERE table_schema = 'public'
		`)
	if err != nil {
		return 0, storageErr("count tables", err)
	}

	return count, nil
}
