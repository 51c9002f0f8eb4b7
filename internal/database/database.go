package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/georgemunganga/retail/internal/config"
	"github.com/lib/pq"
)

// Querier runs parameterized statements and returns rows as ordered string fields.
type Querier interface {
	Query(ctx context.Context, query string, args ...any) ([]Row, error)
	Exec(ctx context.Context, query string, args ...any) (int64, error)
}

// DB is the session's single connection to the retail schema.
type DB interface {
	Querier
	// InTx runs fn inside a transaction. fn returning an error rolls back.
	InTx(ctx context.Context, fn func(q Querier) error) error
	Close() error
}

type sqlRunner interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type postgresDB struct{ db *sql.DB }

// DSN builds a lib/pq connection URL from cfg.
func DSN(cfg config.Config) string {
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(cfg.DBHost, strconv.Itoa(cfg.DBPort)),
		Path:   "/" + cfg.DBName,
	}
	if cfg.DBPassword != "" {
		u.User = url.UserPassword(cfg.DBUser, cfg.DBPassword)
	} else {
		u.User = url.User(cfg.DBUser)
	}
	q := url.Values{}
	q.Set("sslmode", cfg.DBSSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// Open connects to PostgreSQL and verifies the connection.
func Open(ctx context.Context, cfg config.Config) (DB, error) {
	db, err := sql.Open("postgres", DSN(cfg))
	if err != nil {
		return nil, err
	}
	// one connection per session
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return New(db), nil
}

// New wraps an already opened *sql.DB.
func New(db *sql.DB) DB { return &postgresDB{db: db} }

func (p *postgresDB) Query(ctx context.Context, query string, args ...any) ([]Row, error) {
	return queryRows(ctx, p.db, query, args...)
}

func (p *postgresDB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	return execAffected(ctx, p.db, query, args...)
}

func (p *postgresDB) InTx(ctx context.Context, fn func(q Querier) error) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(txQuerier{tx: tx}); err != nil {
		return err
	}
	return tx.Commit()
}

func (p *postgresDB) Close() error { return p.db.Close() }

type txQuerier struct{ tx *sql.Tx }

func (t txQuerier) Query(ctx context.Context, query string, args ...any) ([]Row, error) {
	return queryRows(ctx, t.tx, query, args...)
}

func (t txQuerier) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	return execAffected(ctx, t.tx, query, args...)
}

func queryRows(ctx context.Context, r sqlRunner, query string, args ...any) ([]Row, error) {
	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	var out []Row
	for rows.Next() {
		vals := make([]sql.NullString, len(cols))
		dest := make([]any, len(cols))
		for i := range vals {
			dest[i] = &vals[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		row := make(Row, len(cols))
		for i, v := range vals {
			row[i] = v.String
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func execAffected(ctx context.Context, r sqlRunner, query string, args ...any) (int64, error) {
	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}

// IsUniqueViolation reports whether err is a PostgreSQL unique constraint violation (code 23505).
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "duplicate key")
}
