// Package databasetest provides a recording in-memory stand-in for database.DB.
package databasetest

import (
	"context"
	"strings"

	"github.com/georgemunganga/retail/internal/database"
)

// Call is one recorded statement.
type Call struct {
	Query string
	Args  []any
	InTx  bool
}

// Fake records every statement. OnQuery and OnExec, when set, supply results.
type Fake struct {
	OnQuery func(query string, args []any) ([]database.Row, error)
	OnExec  func(query string, args []any) (int64, error)

	Queries   []Call
	Execs     []Call
	Commits   int
	Rollbacks int

	inTx bool
}

var _ database.DB = (*Fake)(nil)

func (f *Fake) Query(_ context.Context, query string, args ...any) ([]database.Row, error) {
	f.Queries = append(f.Queries, Call{Query: query, Args: args, InTx: f.inTx})
	if f.OnQuery == nil {
		return nil, nil
	}
	return f.OnQuery(query, args)
}

func (f *Fake) Exec(_ context.Context, query string, args ...any) (int64, error) {
	f.Execs = append(f.Execs, Call{Query: query, Args: args, InTx: f.inTx})
	if f.OnExec == nil {
		return 1, nil
	}
	return f.OnExec(query, args)
}

func (f *Fake) InTx(_ context.Context, fn func(q database.Querier) error) error {
	f.inTx = true
	err := fn(f)
	f.inTx = false
	if err != nil {
		f.Rollbacks++
		return err
	}
	f.Commits++
	return nil
}

func (f *Fake) Close() error { return nil }

// Writes counts Exec calls plus queries that mutate (INSERT ... RETURNING and friends).
func (f *Fake) Writes() int {
	n := len(f.Execs)
	for _, c := range f.Queries {
		if isMutation(c.Query) {
			n++
		}
	}
	return n
}

func isMutation(query string) bool {
	q := strings.ToUpper(strings.TrimSpace(query))
	for _, verb := range []string{"INSERT", "UPDATE", "DELETE"} {
		if strings.HasPrefix(q, verb) {
			return true
		}
	}
	return false
}
