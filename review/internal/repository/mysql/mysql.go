package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"mfilmrate/pkg/logging"
	"mfilmrate/review/configs"
	"mfilmrate/review/internal/repository"
	"mfilmrate/review/pkg/model"

	_ "github.com/go-sql-driver/mysql"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

const tracerID = "review-repository-mysql"

// Repository defines a MySQL-based review repository.
type Repository struct {
	db     *sql.DB
	logger *zap.Logger
}

// New creates a new MySQL-based review repository.
func New(config configs.MysqlConfig, logger *zap.Logger) (*Repository, error) {
	logger = logger.With(
		zap.String(logging.FieldComponent, "repository"),
		zap.String(logging.FieldType, "mysql"),
	)
	logger.Info("Connecting to mysql")
	db, err := sql.Open("mysql", fmt.Sprintf("%s:%s@tcp(%s:%d)/%s", config.User, config.Pass, config.Host, config.Port, config.Name))
	if err != nil {
		return nil, err
	}
	return &Repository{db: db, logger: logger}, nil
}

// Create stores a new review and returns its auto-increment id.
func (r *Repository) Create(ctx context.Context, review *model.Review) (model.ReviewId, error) {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Create")
	defer span.End()
	if review == nil {
		return 0, errors.New("review is nil")
	}
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO reviews (content, is_positive, user_id, film_id, useful) VALUES (?, ?, ?, ?, 0)",
		review.Content, review.IsPositive, review.UserId, review.FilmId)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	review.ReviewId = model.ReviewId(id)
	return review.ReviewId, nil
}

// Get retrieves a review by id.
func (r *Repository) Get(ctx context.Context, id model.ReviewId) (*model.Review, error) {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Get")
	defer span.End()
	row := r.db.QueryRowContext(ctx,
		"SELECT id, content, is_positive, user_id, film_id, useful FROM reviews WHERE id = ?", id)
	var review model.Review
	if err := row.Scan(&review.ReviewId, &review.Content, &review.IsPositive, &review.UserId, &review.FilmId, &review.Useful); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		r.logger.Warn("Failed to get review from MySQL", zap.Int64("id", int64(id)), zap.Error(err))
		return nil, err
	}
	return &review, nil
}

// Update replaces the mutable fields of an existing review.
func (r *Repository) Update(ctx context.Context, review *model.Review) error {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Update")
	defer span.End()
	if review == nil {
		return errors.New("review is nil")
	}
	res, err := r.db.ExecContext(ctx,
		"UPDATE reviews SET content = ?, is_positive = ? WHERE id = ?",
		review.Content, review.IsPositive, review.ReviewId)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a review by id.
func (r *Repository) Delete(ctx context.Context, id model.ReviewId) error {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Delete")
	defer span.End()
	res, err := r.db.ExecContext(ctx, "DELETE FROM reviews WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// ByFilm returns up to count reviews of the given film ordered by
// usefulness, all films when filmId is 0.
func (r *Repository) ByFilm(ctx context.Context, filmId int64, count int) ([]model.Review, error) {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/ByFilm")
	defer span.End()
	query := "SELECT id, content, is_positive, user_id, film_id, useful FROM reviews ORDER BY useful DESC LIMIT ?"
	args := []any{count}
	if filmId != 0 {
		query = "SELECT id, content, is_positive, user_id, film_id, useful FROM reviews WHERE film_id = ? ORDER BY useful DESC LIMIT ?"
		args = []any{filmId, count}
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := make([]model.Review, 0)
	for rows.Next() {
		var review model.Review
		if err := rows.Scan(&review.ReviewId, &review.Content, &review.IsPositive, &review.UserId, &review.FilmId, &review.Useful); err != nil {
			return nil, err
		}
		res = append(res, review)
	}
	return res, rows.Err()
}
