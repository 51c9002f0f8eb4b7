package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/georgemunganga/retail/internal/database"
	"github.com/georgemunganga/retail/internal/modules/geo"
)

type postgresRepository struct {
	db database.Querier
}

// NewPostgresRepository creates a new PostgreSQL user repository.
func NewPostgresRepository(db database.Querier) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) CreateUser(ctx context.Context, u *User) error {
	query := `
		INSERT INTO Users (name, password, latitude, longitude, type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING userID
	`
	rows, err := r.db.Query(ctx, query, u.Name, u.PasswordHash, u.Location.Lat, u.Location.Lon, string(u.Role))
	if err != nil {
		if database.IsUniqueViolation(err) {
			return ErrDuplicateName
		}
		return fmt.Errorf("insert user: %w", err)
	}
	if len(rows) != 1 {
		return fmt.Errorf("insert user: expected one id, got %d rows", len(rows))
	}
	return rows[0].Scan(&u.ID)
}

func (r *postgresRepository) GetUserByID(ctx context.Context, id int64) (*User, error) {
	return r.one(ctx, `SELECT `+userColumns+` FROM Users WHERE userID = $1`, id)
}

func (r *postgresRepository) GetUserByName(ctx context.Context, name string) (*User, error) {
	return r.one(ctx, `SELECT `+userColumns+` FROM Users WHERE name = $1`, name)
}

func (r *postgresRepository) NameExists(ctx context.Context, name string) (bool, error) {
	rows, err := r.db.Query(ctx, `SELECT userID FROM Users WHERE name = $1`, name)
	if err != nil {
		return false, fmt.Errorf("check user name: %w", err)
	}
	return len(rows) > 0, nil
}

func (r *postgresRepository) SearchByName(ctx context.Context, part string) ([]*User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+userColumns+`
		FROM Users
		WHERE name LIKE '%' || $1 || '%'
		ORDER BY userID`, escapeLike(part))
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	return database.ScanAll(rows, scanUser)
}

func (r *postgresRepository) UpdateName(ctx context.Context, id int64, name string) error {
	n, err := r.db.Exec(ctx, `UPDATE Users SET name = $1 WHERE userID = $2`, name, id)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return ErrDuplicateName
		}
		return fmt.Errorf("update user name: %w", err)
	}
	return affected(n)
}

func (r *postgresRepository) UpdatePassword(ctx context.Context, id int64, hash string) error {
	n, err := r.db.Exec(ctx, `UPDATE Users SET password = $1 WHERE userID = $2`, hash, id)
	if err != nil {
		return fmt.Errorf("update user password: %w", err)
	}
	return affected(n)
}

func (r *postgresRepository) UpdateLocation(ctx context.Context, id int64, loc geo.Point) error {
	n, err := r.db.Exec(ctx, `UPDATE Users SET latitude = $1, longitude = $2 WHERE userID = $3`, loc.Lat, loc.Lon, id)
	if err != nil {
		return fmt.Errorf("update user location: %w", err)
	}
	return affected(n)
}

// ── helpers ──────────────────────────────────────────────────────────────────

func (r *postgresRepository) one(ctx context.Context, query string, args ...any) (*User, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return scanUser(rows[0])
}

func affected(n int64) error {
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes part match literally inside a LIKE pattern.
func escapeLike(part string) string { return likeEscaper.Replace(part) }
