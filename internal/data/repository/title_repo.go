package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/WakoSS-nsk/api-yamdb/internal/data/entity"
	"github.com/WakoSS-nsk/api-yamdb/pkg/database"
)

// TitleFilter narrows title listings. All set fields combine with AND.
type TitleFilter struct {
	Name         string
	Year         *int
	CategorySlug string
	GenreSlug    string
}

type TitleRepository interface {
	Create(ctx context.Context, title *entity.Title) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Title, error)
	FindAll(ctx context.Context, filter TitleFilter, limit, offset int) ([]*entity.Title, error)
	CountAll(ctx context.Context, filter TitleFilter) (int64, error)
	Update(ctx context.Context, title *entity.Title) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type titleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTitleRepository(db database.PgxIface, log *zap.Logger) TitleRepository {
	return &titleRepository{
		db:  db,
		log: log.With(zap.String("repository", "title")),
	}
}

func (r *titleRepository) Create(ctx context.Context, title *entity.Title) error {
	query := `
		INSERT INTO titles (id, name, year, description, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		title.ID,
		title.Name,
		title.Year,
		title.Description,
		title.CategoryID,
		title.CreatedAt,
		title.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create title",
			zap.Error(err),
			zap.String("name", title.Name),
		)
		return fmt.Errorf("create title %s: %w", title.Name, err)
	}

	return nil
}

// FindByID loads a title with its rating computed from the current
// review set. The AVG is NULL when no reviews exist.
func (r *titleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Title, error) {
	query := `
		SELECT t.id, t.name, t.year, t.description, t.category_id,
		       t.created_at, t.updated_at, AVG(r.score)::float8 AS rating
		FROM titles t
		LEFT JOIN reviews r ON r.title_id = t.id
		WHERE t.id = $1
		GROUP BY t.id
	`

	var title entity.Title
	err := r.db.QueryRow(ctx, query, id).Scan(
		&title.ID,
		&title.Name,
		&title.Year,
		&title.Description,
		&title.CategoryID,
		&title.CreatedAt,
		&title.UpdatedAt,
		&title.Rating,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find title by ID",
			zap.Error(err),
			zap.String("title_id", id.String()),
		)
		return nil, fmt.Errorf("find title by ID %s: %w", id.String(), err)
	}

	return &title, nil
}

// filterClause builds the shared WHERE conditions for FindAll/CountAll.
// Placeholders start at $1 in a fixed order so both queries can bind
// the same args slice.
func filterClause(filter TitleFilter) (string, []any) {
	clause := `
		WHERE ($1 = '' OR t.name ILIKE '%' || $1 || '%')
		  AND ($2::int IS NULL OR t.year = $2)
		  AND ($3 = '' OR t.category_id = (SELECT id FROM categories WHERE slug = $3))
		  AND ($4 = '' OR EXISTS (
		      SELECT 1 FROM title_genres tg
		      JOIN genres g ON g.id = tg.genre_id
		      WHERE tg.title_id = t.id AND g.slug = $4))
	`
	args := []any{filter.Name, filter.Year, filter.CategorySlug, filter.GenreSlug}
	return clause, args
}

func (r *titleRepository) FindAll(ctx context.Context, filter TitleFilter, limit, offset int) ([]*entity.Title, error) {
	clause, args := filterClause(filter)
	query := `
		SELECT t.id, t.name, t.year, t.description, t.category_id,
		       t.created_at, t.updated_at, AVG(r.score)::float8 AS rating
		FROM titles t
		LEFT JOIN reviews r ON r.title_id = t.id
	` + clause + `
		GROUP BY t.id
		ORDER BY t.name
		LIMIT $5 OFFSET $6
	`
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to get titles",
			zap.Error(err),
			zap.String("name", filter.Name),
			zap.String("category", filter.CategorySlug),
			zap.String("genre", filter.GenreSlug),
		)
		return nil, fmt.Errorf("find all titles: %w", err)
	}
	defer rows.Close()

	var titles []*entity.Title
	for rows.Next() {
		var title entity.Title
		err := rows.Scan(
			&title.ID,
			&title.Name,
			&title.Year,
			&title.Description,
			&title.CategoryID,
			&title.CreatedAt,
			&title.UpdatedAt,
			&title.Rating,
		)
		if err != nil {
			r.log.Error("Failed to scan title row", zap.Error(err))
			return nil, fmt.Errorf("scan title row: %w", err)
		}
		titles = append(titles, &title)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate titles rows: %w", err)
	}

	return titles, nil
}

func (r *titleRepository) CountAll(ctx context.Context, filter TitleFilter) (int64, error) {
	clause, args := filterClause(filter)
	query := `SELECT COUNT(*) FROM titles t` + clause

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count titles", zap.Error(err))
		return 0, fmt.Errorf("count titles: %w", err)
	}

	return count, nil
}

func (r *titleRepository) Update(ctx context.Context, title *entity.Title) error {
	query := `
		UPDATE titles
		SET name = $2, year = $3, description = $4, category_id = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		title.ID,
		title.Name,
		title.Year,
		title.Description,
		title.CategoryID,
		title.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update title",
			zap.Error(err),
			zap.String("title_id", title.ID.String()),
		)
		return fmt.Errorf("update title %s: %w", title.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("title %s not found", title.ID.String())
	}

	return nil
}

// Delete removes the title. Join rows and reviews (with their
// comments) cascade at the database level.
func (r *titleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM titles WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete title",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete title %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("title %s not found", id.String())
	}

	r.log.Info("Title deleted", zap.String("id", id.String()))
	return nil
}
