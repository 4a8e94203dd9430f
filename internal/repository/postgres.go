// Package repository implements data access on PostgreSQL.
package repository

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/rpanganiban/diskwento-system/internal/model"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// HistoryLimit is how many saved calculations are kept per user; older
// entries are dropped on insert.
const HistoryLimit = 10

var (
	// ErrUserExists is returned when the login is already registered.
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound is returned when no user matches the login.
	ErrUserNotFound = errors.New("user not found")
	// ErrNotFound is returned when a calculation or rating does not exist
	// or belongs to another user.
	ErrNotFound = errors.New("record not found")
)

// PostgresRepository provides access to the PostgreSQL storage.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a repository and initializes the schema
// through embedded migrations.
func NewPostgresRepository(dsn string) (*PostgresRepository, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	r := &PostgresRepository{pool: pool}

	if err := r.runMigrations(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return r, nil
}

func (r *PostgresRepository) runMigrations(ctx context.Context) error {
	db := stdlib.OpenDBFromPool(r.pool)
	defer db.Close()

	goose.SetBaseFS(migrationsFS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func (r *PostgresRepository) withRetry(ctx context.Context, fn func() error) error {
	var err error
	delays := []time.Duration{1 * time.Second, 3 * time.Second, 5 * time.Second}

	for i := 0; i <= len(delays); i++ {
		err = fn()
		if err == nil {
			return nil
		}

		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		// Retries only help for serialization failures, deadlocks and
		// transient network errors; pgxpool handles reconnects itself.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == pgerrcode.SerializationFailure || pgErr.Code == pgerrcode.DeadlockDetected {
				if i < len(delays) {
					time.Sleep(delays[i])
					continue
				}
			}
		}

		if isConnectionError(err) {
			if i < len(delays) {
				time.Sleep(delays[i])
				continue
			}
		}

		break
	}
	return err
}

func isConnectionError(err error) bool {
	return strings.Contains(err.Error(), "connection refused") ||
		strings.Contains(err.Error(), "broken pipe") ||
		strings.Contains(err.Error(), "connection reset by peer")
}

// Close closes the connection pool.
func (r *PostgresRepository) Close() error {
	r.pool.Close()
	return nil
}

// CreateUser creates a new user.
func (r *PostgresRepository) CreateUser(ctx context.Context, login string, passwordHash []byte) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (login, password_hash) VALUES ($1, $2) RETURNING id`,
		login, passwordHash,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return 0, fmt.Errorf("%w: %s", ErrUserExists, login)
		}
		return 0, fmt.Errorf("create user: %w", err)
	}
	return id, nil
}

// GetUserByLogin returns the user with the given login.
func (r *PostgresRepository) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, login, password_hash, created_at FROM users WHERE login = $1`,
		login,
	)

	var u model.User
	err := row.Scan(&u.ID, &u.Login, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &u, nil
}

// SaveCalculation stores a calculation for the user and trims the history
// to the newest HistoryLimit entries in the same transaction.
func (r *PostgresRepository) SaveCalculation(ctx context.Context, userID int64, calc model.Calculation) error {
	return r.withRetry(ctx, func() error {
		tx, err := r.pool.Begin(ctx)
		if err != nil {
			return fmt.Errorf("begin tx: %w", err)
		}
		defer tx.Rollback(ctx)

		_, err = tx.Exec(ctx,
			`INSERT INTO calculations (id, user_id, category, inputs, result, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			calc.ID, userID, calc.Category, calc.Inputs, calc.Result, calc.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert calculation: %w", err)
		}

		_, err = tx.Exec(ctx,
			`DELETE FROM calculations
			 WHERE user_id = $1 AND id NOT IN (
			   SELECT id FROM calculations
			   WHERE user_id = $1
			   ORDER BY created_at DESC
			   LIMIT $2
			 )`,
			userID, HistoryLimit,
		)
		if err != nil {
			return fmt.Errorf("trim history: %w", err)
		}

		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("commit tx: %w", err)
		}
		return nil
	})
}

// GetCalculationsByUser returns the user's saved calculations, newest first.
func (r *PostgresRepository) GetCalculationsByUser(ctx context.Context, userID int64) ([]model.Calculation, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, category, inputs, result, created_at
		 FROM calculations
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, HistoryLimit,
	)
	if err != nil {
		return nil, fmt.Errorf("select calculations: %w", err)
	}
	defer rows.Close()

	var res []model.Calculation
	for rows.Next() {
		var (
			c      model.Calculation
			inputs []byte
			result []byte
		)
		if err := rows.Scan(&c.ID, &c.Category, &inputs, &result, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan calculation: %w", err)
		}
		c.Inputs = json.RawMessage(inputs)
		c.Result = json.RawMessage(result)
		res = append(res, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return res, nil
}

// DeleteCalculation removes one saved calculation owned by the user.
func (r *PostgresRepository) DeleteCalculation(ctx context.Context, userID int64, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM calculations WHERE user_id = $1 AND id = $2`,
		userID, id,
	)
	if err != nil {
		return fmt.Errorf("delete calculation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAllCalculations removes the user's entire history.
func (r *PostgresRepository) DeleteAllCalculations(ctx context.Context, userID int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM calculations WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete calculations: %w", err)
	}
	return nil
}

// CreateRating stores an establishment rating for the user.
func (r *PostgresRepository) CreateRating(ctx context.Context, userID int64, rating model.EstablishmentRating) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO establishment_ratings (id, user_id, name, branch, status, notes, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rating.ID, userID, rating.Name, rating.Branch, string(rating.Status), rating.Notes, rating.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert rating: %w", err)
	}
	return nil
}

// GetRatingsByUser returns the user's establishment ratings, newest first.
func (r *PostgresRepository) GetRatingsByUser(ctx context.Context, userID int64) ([]model.EstablishmentRating, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, branch, status, notes, created_at
		 FROM establishment_ratings
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("select ratings: %w", err)
	}
	defer rows.Close()

	var res []model.EstablishmentRating
	for rows.Next() {
		var (
			rating model.EstablishmentRating
			status string
		)
		if err := rows.Scan(&rating.ID, &rating.Name, &rating.Branch, &status, &rating.Notes, &rating.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan rating: %w", err)
		}
		rating.Status = model.RatingStatus(status)
		res = append(res, rating)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return res, nil
}

// DeleteRating removes one establishment rating owned by the user.
func (r *PostgresRepository) DeleteRating(ctx context.Context, userID int64, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM establishment_ratings WHERE user_id = $1 AND id = $2`,
		userID, id,
	)
	if err != nil {
		return fmt.Errorf("delete rating: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
