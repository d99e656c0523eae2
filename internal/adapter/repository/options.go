package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

// Option customises the SQL repositories.
type Option func(*sqlStore)

// WithQueryLogger logs every statement at debug level.
func WithQueryLogger(log logrus.FieldLogger) Option {
	return func(s *sqlStore) { s.log = log }
}

// sqlStore is the shared state of the sqlx-backed repositories.
type sqlStore struct {
	db  *sqlx.DB
	log logrus.FieldLogger
}

func newSQLStore(db *sqlx.DB, opts []Option) sqlStore {
	s := sqlStore{db: db}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

func (s *sqlStore) trace(ctx context.Context, query string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WithFields(logrus.Fields{"query": query, "args": args}).Debug("sql")
}
