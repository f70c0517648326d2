package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/opspulse/opspulse-backend-go/internal/domain/user"
	"github.com/opspulse/opspulse-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

const userColumns = `id, name, email, role, team, location_type, goals, active, created_at, last_login`

// Create implements user.Repository.
func (r *userRepositoryImpl) Create(ctx context.Context, u user.User) (user.User, error) {
	query := `
		INSERT INTO users (
			id, name, email, role, team, location_type, goals, active
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		u.ID,
		u.Name,
		u.Email,
		u.Role,
		u.Team,
		u.LocationType,
		u.Goals,
		u.Active,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

// GetByID implements user.Repository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByEmail implements user.Repository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.getOne(ctx, query, email)
}

func (r *userRepositoryImpl) getOne(ctx context.Context, query string, arg any) (user.User, error) {
	var u user.User
	var lastLogin *time.Time
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Name, &u.Email, &u.Role, &u.Team, &u.LocationType,
		&u.Goals, &u.Active, &u.CreatedAt, &lastLogin,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	if lastLogin != nil {
		u.LastLogin = *lastLogin
	}
	return u, nil
}

// ListByTeamAndRole implements user.Repository.
func (r *userRepositoryImpl) ListByTeamAndRole(ctx context.Context, teamID string, role user.Role) ([]user.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE team = $1 AND role = $2 AND active = true
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, teamID, role)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// ListAll implements user.Repository.
func (r *userRepositoryImpl) ListAll(ctx context.Context) ([]user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// TouchLastLogin implements user.Repository.
func (r *userRepositoryImpl) TouchLastLogin(ctx context.Context, id string) error {
	query := `UPDATE users SET last_login = now() WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func scanUsers(rows pgx.Rows) ([]user.User, error) {
	var users []user.User
	for rows.Next() {
		var u user.User
		var lastLogin *time.Time
		err := rows.Scan(
			&u.ID, &u.Name, &u.Email, &u.Role, &u.Team, &u.LocationType,
			&u.Goals, &u.Active, &u.CreatedAt, &lastLogin,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		if lastLogin != nil {
			u.LastLogin = *lastLogin
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}
	return users, nil
}

func NewUserRepository(db *database.DB) user.Repository {
	return &userRepositoryImpl{db: db}
}
