package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/WakoSS-nsk/api-yamdb/internal/data/entity"
	"github.com/WakoSS-nsk/api-yamdb/pkg/database"
)

type TitleGenreRepository interface {
	CreateBatch(ctx context.Context, titleGenres []*entity.TitleGenre) error
	DeleteByTitleID(ctx context.Context, titleID uuid.UUID) error
}

type titleGenreRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTitleGenreRepository(db database.PgxIface, log *zap.Logger) TitleGenreRepository {
	return &titleGenreRepository{
		db:  db,
		log: log.With(zap.String("repository", "title_genre")),
	}
}

// CreateBatch inserts the join rows inside one transaction so a title
// never ends up with half its genre set.
func (r *titleGenreRepository) CreateBatch(ctx context.Context, titleGenres []*entity.TitleGenre) error {
	if len(titleGenres) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin title_genres batch: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO title_genres (id, title_id, genre_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	for _, tg := range titleGenres {
		if _, err := tx.Exec(ctx, query, tg.ID, tg.TitleID, tg.GenreID, tg.CreatedAt); err != nil {
			r.log.Error("Failed to create title-genre row",
				zap.Error(err),
				zap.String("title_id", tg.TitleID.String()),
				zap.String("genre_id", tg.GenreID.String()),
			)
			return fmt.Errorf("create title_genre: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit title_genres batch: %w", err)
	}

	return nil
}

func (r *titleGenreRepository) DeleteByTitleID(ctx context.Context, titleID uuid.UUID) error {
	query := `DELETE FROM title_genres WHERE title_id = $1`

	if _, err := r.db.Exec(ctx, query, titleID); err != nil {
		r.log.Error("Failed to delete title-genre rows",
			zap.Error(err),
			zap.String("title_id", titleID.String()),
		)
		return fmt.Errorf("delete title_genres for title %s: %w", titleID.String(), err)
	}

	return nil
}
