package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	domainErrors "github.com/polkiloo/workouttracker/internal/domain/errors"
	"github.com/polkiloo/workouttracker/internal/domain/model"
	"github.com/polkiloo/workouttracker/internal/domain/repository"
	"github.com/polkiloo/workouttracker/internal/storage/postgres/migrations"
)

const uniqueViolation = "23505"

type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// runMigrations applies the embedded schema through a database/sql view of the pool.
var runMigrations = func(ctx context.Context, pool pgxPool) error {
	p, ok := pool.(*pgxpool.Pool)
	if !ok {
		return fmt.Errorf("migrations need *pgxpool.Pool, got %T", pool)
	}
	db := stdlib.OpenDBFromPool(p)
	defer db.Close()

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type workoutRepository struct {
	storage *Storage
}

// New connects to PostgreSQL and brings the schema up to date.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	if err := runMigrations(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	logger.Info("database schema is up to date")

	return &Storage{pool: pool, logger: logger}, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// HealthCheck verifies the database is reachable.
func (s *Storage) HealthCheck(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Workouts() repository.WorkoutRepository {
	return &workoutRepository{storage: s}
}

// --- UserRepository implementation ---

const userColumns = `id::text, username, email, password_hash, created_at`

func (r *userRepository) Create(ctx context.Context, username, email, passwordHash string) (*model.User, error) {
	const query = `INSERT INTO users (id, username, email, password_hash) VALUES ($1, $2, $3, $4) RETURNING created_at`
	u := model.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}
	err := r.storage.pool.QueryRow(ctx, query, u.ID, username, email, passwordHash).Scan(&u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE username=$1 LIMIT 1`, username)
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email=$1 LIMIT 1`, email)
}

// FindByUsernameOrEmail prefers a username match when two accounts qualify.
func (r *userRepository) FindByUsernameOrEmail(ctx context.Context, value string) (*model.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users
                   WHERE username=$1 OR email=$1
                   ORDER BY username=$1 DESC, created_at LIMIT 1`, value)
}

func (r *userRepository) findOne(ctx context.Context, query string, arg string) (*model.User, error) {
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, arg).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- WorkoutRepository implementation ---

const workoutColumns = `id::text, user_id::text, type, duration, calories, date, created_at`

func (r *workoutRepository) Create(ctx context.Context, w model.Workout) (*model.Workout, error) {
	const query = `INSERT INTO workouts (id, user_id, type, duration, calories, date)
                   VALUES ($1, $2, $3, $4, $5, $6)
                   RETURNING created_at`
	w.ID = uuid.NewString()
	err := r.storage.pool.QueryRow(ctx, query, w.ID, w.UserID, w.Type, w.Duration, w.Calories, w.Date).Scan(&w.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *workoutRepository) ListByUser(ctx context.Context, userID string) ([]model.Workout, error) {
	const query = `SELECT ` + workoutColumns + `
                   FROM workouts WHERE user_id=$1
                   ORDER BY date DESC, created_at DESC, id`
	return r.list(ctx, query, userID)
}

func (r *workoutRepository) ListRecent(ctx context.Context, userID string, limit int) ([]model.Workout, error) {
	const query = `SELECT ` + workoutColumns + `
                   FROM workouts WHERE user_id=$1
                   ORDER BY date DESC, created_at DESC, id
                   LIMIT $2`
	return r.list(ctx, query, userID, limit)
}

func (r *workoutRepository) ListBetween(ctx context.Context, userID string, from, to time.Time) ([]model.Workout, error) {
	const query = `SELECT ` + workoutColumns + `
                   FROM workouts WHERE user_id=$1 AND date >= $2 AND date <= $3
                   ORDER BY date ASC, created_at ASC, id`
	return r.list(ctx, query, userID, from, to)
}

func (r *workoutRepository) Delete(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM workouts WHERE id=$1 AND user_id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		r.storage.logger.Debug("workout delete matched no rows", slog.String("workout_id", id))
	}
	return nil
}

func (r *workoutRepository) list(ctx context.Context, query string, args ...any) ([]model.Workout, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Workout, 0)
	for rows.Next() {
		var w model.Workout
		if err := rows.Scan(&w.ID, &w.UserID, &w.Type, &w.Duration, &w.Calories, &w.Date, &w.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
