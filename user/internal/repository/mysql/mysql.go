package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"mfilmrate/pkg/logging"
	"mfilmrate/user/configs"
	"mfilmrate/user/internal/repository"
	"mfilmrate/user/pkg/model"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

const tracerID = "user-repository-mysql"

// Repository defines a MySQL-based user repository.
type Repository struct {
	db     *sql.DB
	logger *zap.Logger
}

// New creates a new MySQL-based user repository.
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

// Get retrieves a user by id.
func (r *Repository) Get(ctx context.Context, id model.UserId) (*model.User, error) {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Get")
	defer span.End()
	row := r.db.QueryRowContext(ctx, "SELECT id, email, login, name, birthday FROM users WHERE id = ?", id)
	var u model.User
	if err := row.Scan(&u.Id, &u.Email, &u.Login, &u.Name, &u.Birthday); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		r.logger.Warn("Failed to get user from MySQL", zap.Int64("id", int64(id)), zap.Error(err))
		return nil, err
	}
	return &u, nil
}

// Put adds or replaces a user for a given user id.
func (r *Repository) Put(ctx context.Context, id model.UserId, u *model.User) error {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Put")
	defer span.End()
	if u == nil {
		return errors.New("user is nil")
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO users (id, email, login, name, birthday) VALUES (?, ?, ?, ?, ?) "+
			"ON DUPLICATE KEY UPDATE email = VALUES(email), login = VALUES(login), name = VALUES(name), birthday = VALUES(birthday)",
		id, u.Email, u.Login, u.Name, u.Birthday)
	return err
}

// Delete removes a user. Friendship edges and events go away with it
// through foreign key cascades.
func (r *Repository) Delete(ctx context.Context, id model.UserId) error {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Delete")
	defer span.End()
	res, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// All returns every registered user.
func (r *Repository) All(ctx context.Context) ([]model.User, error) {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/All")
	defer span.End()
	rows, err := r.db.QueryContext(ctx, "SELECT id, email, login, name, birthday FROM users")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanUsers(rows)
}

// Exists reports whether a user with the given id is registered.
func (r *Repository) Exists(ctx context.Context, id model.UserId) (bool, error) {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Exists")
	defer span.End()
	row := r.db.QueryRowContext(ctx, "SELECT id FROM users WHERE id = ?", id)
	var got int64
	if err := row.Scan(&got); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// AddFriend creates a directed friendship edge. A duplicate edge is a conflict.
func (r *Repository) AddFriend(ctx context.Context, id model.UserId, friendId model.UserId) error {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/AddFriend")
	defer span.End()
	row := r.db.QueryRowContext(ctx, "SELECT 1 FROM friendship WHERE user_id = ? AND friend_user_id = ?", id, friendId)
	var one int
	if err := row.Scan(&one); err == nil {
		return repository.ErrAlreadyExists
	} else if !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	_, err := r.db.ExecContext(ctx, "INSERT INTO friendship (user_id, friend_user_id) VALUES (?, ?)", id, friendId)
	return err
}

// RemoveFriend destroys a directed friendship edge.
func (r *Repository) RemoveFriend(ctx context.Context, id model.UserId, friendId model.UserId) error {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/RemoveFriend")
	defer span.End()
	res, err := r.db.ExecContext(ctx, "DELETE FROM friendship WHERE user_id = ? AND friend_user_id = ?", id, friendId)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Friends returns the users the given user added as friends.
func (r *Repository) Friends(ctx context.Context, id model.UserId) ([]model.User, error) {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Friends")
	defer span.End()
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, email, login, name, birthday FROM users WHERE id IN "+
			"(SELECT friend_user_id FROM friendship WHERE user_id = ?)", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanUsers(rows)
}

// CommonFriends returns the users both given users added as friends.
func (r *Repository) CommonFriends(ctx context.Context, id model.UserId, otherId model.UserId) ([]model.User, error) {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/CommonFriends")
	defer span.End()
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, email, login, name, birthday FROM users u "+
			"WHERE u.id IN (SELECT friend_user_id FROM friendship WHERE user_id = ?) "+
			"AND u.id IN (SELECT friend_user_id FROM friendship WHERE user_id = ?)", id, otherId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanUsers(rows)
}

// AddEvent appends an immutable activity event with a repository-assigned
// timestamp and an auto-increment event id.
func (r *Repository) AddEvent(ctx context.Context, userId model.UserId, eventType model.EventType, operation model.Operation, entityId int64) error {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/AddEvent")
	defer span.End()
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO events (timestamp, user_id, event_type, operation, entity_id) VALUES (?, ?, ?, ?, ?)",
		time.Now().UnixMilli(), userId, eventType, operation, entityId)
	return err
}

// Feed returns the events of the given user ordered by timestamp,
// then by event id for events sharing a timestamp.
func (r *Repository) Feed(ctx context.Context, userId model.UserId) ([]model.Event, error) {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Feed")
	defer span.End()
	rows, err := r.db.QueryContext(ctx,
		"SELECT timestamp, user_id, event_type, operation, id, entity_id FROM events "+
			"WHERE user_id = ? ORDER BY timestamp, id", userId)
	if err != nil {
		r.logger.Warn("Failed to get feed from MySQL", zap.Int64("userId", int64(userId)), zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	res := make([]model.Event, 0)
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.Timestamp, &e.UserId, &e.EventType, &e.Operation, &e.EventId, &e.EntityId); err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, rows.Err()
}

func scanUsers(rows *sql.Rows) ([]model.User, error) {
	res := make([]model.User, 0)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.Id, &u.Email, &u.Login, &u.Name, &u.Birthday); err != nil {
			return nil, err
		}
		res = append(res, u)
	}
	return res, rows.Err()
}
