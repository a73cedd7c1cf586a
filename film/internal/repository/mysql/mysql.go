package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"mfilmrate/film/configs"
	"mfilmrate/film/internal/repository"
	"mfilmrate/film/pkg/model"
	"mfilmrate/pkg/logging"

	usermodel "mfilmrate/user/pkg/model"

	_ "github.com/go-sql-driver/mysql"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

const tracerID = "film-repository-mysql"

// Repository defines a MySQL-based film repository.
type Repository struct {
	db     *sql.DB
	logger *zap.Logger
}

// New creates a new MySQL-based film repository.
func New(config configs.MysqlConfig, logger *zap.Logger) (*Repository, error) {
	logger = logger.With(
		zap.String(logging.FieldComponent, "repository"),
		zap.String(logging.FieldType, "mysql"),
	)
	logger.Info("Connecting to mysql")
	db, err := sql.Open("mysql", fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true", config.User, config.Pass, config.Host, config.Port, config.Name))
	if err != nil {
		return nil, err
	}
	return &Repository{db: db, logger: logger}, nil
}

// Get retrieves a film by id.
func (r *Repository) Get(ctx context.Context, id model.FilmId) (*model.Film, error) {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Get")
	defer span.End()
	row := r.db.QueryRowContext(ctx, "SELECT id, name, description, duration, release_date FROM films WHERE id = ?", id)
	var f model.Film
	if err := row.Scan(&f.Id, &f.Name, &f.Description, &f.Duration, &f.ReleaseDate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		r.logger.Warn("Failed to get film from MySQL", zap.Int64("id", int64(id)), zap.Error(err))
		return nil, err
	}
	return &f, nil
}

// Put adds or replaces a film for a given film id.
func (r *Repository) Put(ctx context.Context, id model.FilmId, f *model.Film) error {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Put")
	defer span.End()
	if f == nil {
		return errors.New("film is nil")
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO films (id, name, description, duration, release_date) VALUES (?, ?, ?, ?, ?) "+
			"ON DUPLICATE KEY UPDATE name = VALUES(name), description = VALUES(description), duration = VALUES(duration), release_date = VALUES(release_date)",
		id, f.Name, f.Description, f.Duration, f.ReleaseDate)
	return err
}

// Delete removes a film. Like edges go away with it through foreign key cascades.
func (r *Repository) Delete(ctx context.Context, id model.FilmId) error {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Delete")
	defer span.End()
	res, err := r.db.ExecContext(ctx, "DELETE FROM films WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// All returns every stored film.
func (r *Repository) All(ctx context.Context) ([]model.Film, error) {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/All")
	defer span.End()
	rows, err := r.db.QueryContext(ctx, "SELECT id, name, description, duration, release_date FROM films")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFilms(rows)
}

// Exists reports whether a film with the given id is stored.
func (r *Repository) Exists(ctx context.Context, id model.FilmId) (bool, error) {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Exists")
	defer span.End()
	row := r.db.QueryRowContext(ctx, "SELECT id FROM films WHERE id = ?", id)
	var got int64
	if err := row.Scan(&got); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// AddLike creates a like edge. The unique key on (film_id, user_id) keeps
// a duplicate like from creating a second edge.
func (r *Repository) AddLike(ctx context.Context, id model.FilmId, userId usermodel.UserId) error {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/AddLike")
	defer span.End()
	_, err := r.db.ExecContext(ctx, "INSERT IGNORE INTO film_likes (film_id, user_id) VALUES (?, ?)", id, userId)
	return err
}

// RemoveLike destroys a like edge. Removing an absent edge is a no-op.
func (r *Repository) RemoveLike(ctx context.Context, id model.FilmId, userId usermodel.UserId) error {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/RemoveLike")
	defer span.End()
	_, err := r.db.ExecContext(ctx, "DELETE FROM film_likes WHERE film_id = ? AND user_id = ?", id, userId)
	return err
}

// Likers returns the set of users who liked the given film.
func (r *Repository) Likers(ctx context.Context, id model.FilmId) ([]usermodel.UserId, error) {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Likers")
	defer span.End()
	rows, err := r.db.QueryContext(ctx, "SELECT user_id FROM film_likes WHERE film_id = ?", id)
	if err != nil {
		r.logger.Warn("Failed to get likers from MySQL", zap.Int64("filmId", int64(id)), zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	res := make([]usermodel.UserId, 0)
	for rows.Next() {
		var userId usermodel.UserId
		if err := rows.Scan(&userId); err != nil {
			return nil, err
		}
		res = append(res, userId)
	}
	return res, rows.Err()
}

// LikedFilms returns the set of films the given user liked.
func (r *Repository) LikedFilms(ctx context.Context, userId usermodel.UserId) ([]model.FilmId, error) {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/LikedFilms")
	defer span.End()
	rows, err := r.db.QueryContext(ctx, "SELECT film_id FROM film_likes WHERE user_id = ?", userId)
	if err != nil {
		r.logger.Warn("Failed to get liked films from MySQL", zap.Int64("userId", int64(userId)), zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	res := make([]model.FilmId, 0)
	for rows.Next() {
		var filmId model.FilmId
		if err := rows.Scan(&filmId); err != nil {
			return nil, err
		}
		res = append(res, filmId)
	}
	return res, rows.Err()
}

// TopFilms returns up to count films ordered by like count descending.
func (r *Repository) TopFilms(ctx context.Context, count int) ([]model.Film, error) {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/TopFilms")
	defer span.End()
	rows, err := r.db.QueryContext(ctx,
		"SELECT f.id, f.name, f.description, f.duration, f.release_date FROM films f "+
			"LEFT JOIN film_likes fl ON fl.film_id = f.id "+
			"GROUP BY f.id ORDER BY COUNT(fl.user_id) DESC, f.id LIMIT ?", count)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFilms(rows)
}

func scanFilms(rows *sql.Rows) ([]model.Film, error) {
	res := make([]model.Film, 0)
	for rows.Next() {
		var f model.Film
		if err := rows.Scan(&f.Id, &f.Name, &f.Description, &f.Duration, &f.ReleaseDate); err != nil {
			return nil, err
		}
		res = append(res, f)
	}
	return res, rows.Err()
}
