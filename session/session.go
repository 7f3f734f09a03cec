// Package session executes compiled statements against a Postgres/PostGIS
// database through bun, converting named parameters to the positional form
// the driver expects.
package session

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"github.com/gear6io/geosql/pkg/errors"
	"github.com/gear6io/geosql/shape"
	"github.com/gear6io/geosql/sqlgen"
)

// NewDB wraps an opened database handle with the Postgres dialect.
func NewDB(sqldb *sql.DB) *bun.DB {
	return bun.NewDB(sqldb, pgdialect.New())
}

// Session runs compiled statements. It owns no connection lifecycle; the
// caller manages the underlying handle.
type Session struct {
	db          *bun.DB
	log         zerolog.Logger
	placeholder sqlgen.Placeholder
}

// Option configures a Session.
type Option func(*Session)

// WithLogger enables per-query debug logging.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithPlaceholder overrides the positional placeholder style.
func WithPlaceholder(p sqlgen.Placeholder) Option {
	return func(s *Session) { s.placeholder = p }
}

// New builds a session over a bun database handle.
func New(db *bun.DB, opts ...Option) *Session {
	s := &Session{
		db:          db,
		log:         zerolog.Nop(),
		placeholder: sqlgen.Dollar,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Exec runs a statement that returns no rows.
func (s *Session) Exec(ctx context.Context, stmt *sqlgen.Statement) (sql.Result, error) {
	sqlText, args, err := stmt.Positional(s.placeholder)
	if err != nil {
		return nil, err
	}

	queryID := uuid.NewString()
	start := time.Now()
	s.log.Debug().Str("query_id", queryID).Str("sql", sqlText).Msg("executing statement")

	// The compiled SQL is final; it goes through the raw handle because
	// bun's own ExecContext would reinterpret it through its formatter.
	res, err := s.db.DB.ExecContext(ctx, sqlText, args...)
	if err != nil {
		return nil, errors.Wrap(ErrExecFailed, err, "statement execution failed").
			AddContext("query_id", queryID)
	}
	s.log.Debug().Str("query_id", queryID).Dur("elapsed", time.Since(start)).Msg("statement done")
	return res, nil
}

// ExecAll runs a statement list, e.g. emitted DDL, inside one transaction.
func (s *Session) ExecAll(ctx context.Context, stmts []*sqlgen.Statement) error {
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for _, stmt := range stmts {
			sqlText, args, err := stmt.Positional(s.placeholder)
			if err != nil {
				return err
			}
			if _, err := tx.Tx.ExecContext(ctx, sqlText, args...); err != nil {
				return errors.Wrap(ErrExecFailed, err, "statement execution failed").
					AddContext("sql", sqlText)
			}
		}
		return nil
	})
}

// Query runs a statement returning rows. The caller closes the rows.
func (s *Session) Query(ctx context.Context, stmt *sqlgen.Statement) (*sql.Rows, error) {
	sqlText, args, err := stmt.Positional(s.placeholder)
	if err != nil {
		return nil, err
	}

	queryID := uuid.NewString()
	start := time.Now()
	s.log.Debug().Str("query_id", queryID).Str("sql", sqlText).Msg("running query")

	rows, err := s.db.DB.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return nil, errors.Wrap(ErrQueryFailed, err, "query failed").
			AddContext("query_id", queryID)
	}
	s.log.Debug().Str("query_id", queryID).Dur("elapsed", time.Since(start)).Msg("query done")
	return rows, nil
}

// QueryGeometries runs a single-column query of serialized geometries and
// scans each row into a WKB element.
func (s *Session) QueryGeometries(ctx context.Context, stmt *sqlgen.Statement) ([]shape.WKBElement, error) {
	rows, err := s.Query(ctx, stmt)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var elements []shape.WKBElement
	for rows.Next() {
		var e shape.WKBElement
		if err := rows.Scan(&e); err != nil {
			return nil, errors.Wrap(ErrScanFailed, err, "cannot scan geometry row")
		}
		elements = append(elements, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(ErrQueryFailed, err, "row iteration failed")
	}
	return elements, nil
}
