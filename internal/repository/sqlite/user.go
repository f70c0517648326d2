package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/opspulse/opspulse-backend-go/internal/domain/user"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// InitTable creates the users table if it does not exist yet.
func (r *UserRepository) InitTable(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			role TEXT NOT NULL,
			team TEXT NOT NULL,
			location_type TEXT NOT NULL,
			goals TEXT NOT NULL DEFAULT '{}',
			active INTEGER NOT NULL DEFAULT 1,
			created_at TEXT NOT NULL,
			last_login TEXT
		);
	`
	_, err := r.db.ExecContext(ctx, query)
	if err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

// Create implements user.Repository.
func (r *UserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	goals, err := json.Marshal(u.Goals)
	if err != nil {
		return user.User{}, fmt.Errorf("marshal goals: %w", err)
	}

	u.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO users (id, name, email, role, team, location_type, goals, active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.ExecContext(ctx, query,
		u.ID, u.Name, u.Email, string(u.Role), u.Team, string(u.LocationType),
		string(goals), u.Active, u.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return user.User{}, fmt.Errorf("create user: %w", err)
	}

	return u, nil
}

const userColumns = `id, name, email, role, team, location_type, goals, active, created_at, last_login`

// GetByID implements user.Repository.
func (r *UserRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

// GetByEmail implements user.Repository.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

// ListByTeamAndRole implements user.Repository.
func (r *UserRepository) ListByTeamAndRole(ctx context.Context, teamID string, role user.Role) ([]user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE team = ? AND role = ? AND active = 1 ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, teamID, string(role))
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	defer rows.Close()
	return scanUsers(rows)
}

// ListAll implements user.Repository.
func (r *UserRepository) ListAll(ctx context.Context) ([]user.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	return scanUsers(rows)
}

// TouchLastLogin implements user.Repository.
func (r *UserRepository) TouchLastLogin(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET last_login = ? WHERE id = ?`,
		time.Now().UTC().Format(time.RFC3339), id,
	)
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	if affected == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (user.User, error) {
	var u user.User
	var goals, createdAt string
	var lastLogin sql.NullString
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.Role, &u.Team, &u.LocationType,
		&goals, &u.Active, &createdAt, &lastLogin,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("scan user: %w", err)
	}
	if err := json.Unmarshal([]byte(goals), &u.Goals); err != nil {
		return user.User{}, fmt.Errorf("unmarshal goals: %w", err)
	}
	u.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return user.User{}, fmt.Errorf("parse created_at: %w", err)
	}
	if lastLogin.Valid {
		u.LastLogin, err = time.Parse(time.RFC3339, lastLogin.String)
		if err != nil {
			return user.User{}, fmt.Errorf("parse last_login: %w", err)
		}
	}
	return u, nil
}

func scanUsers(rows *sql.Rows) ([]user.User, error) {
	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read users: %w", err)
	}
	return users, nil
}
