package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"millage/internal/models"
)

type recruitRepository struct {
	db *sqlx.DB
}

func NewRecruitRepository(db *sqlx.DB) RecruitRepository {
	return &recruitRepository{db: db}
}

// LatestByUnit lists the newest recruit posts on boards of the unit that allow
// recruiting or polls.
func (r *recruitRepository) LatestByUnit(ctx context.Context, unitID int64, limit int) ([]models.RecruitSummary, error) {
	query := `
		SELECT p.id, p.title, rc.total_member,
			(SELECT COUNT(*) FROM recruiting_users ru WHERE ru.recruit_id = rc.id) AS current_count
		FROM posts p
		INNER JOIN boards b ON p.board_id = b.id
			AND b.unit_id = $1
			AND (b.allow_recruit OR b.allow_poll)
		INNER JOIN recruits rc ON rc.post_id = p.id
		WHERE p.post_type = $2
		ORDER BY p.created_at DESC
		LIMIT $3
	`

	recruits := []models.RecruitSummary{}
	if err := r.db.SelectContext(ctx, &recruits, query, unitID, models.PostTypeRecruit, limit); err != nil {
		return nil, storageErr("list recruits", err)
	}

	return recruits, nil
}
