// internal/db/store.go
package db

import "database/sql"

// Statement is one parameterized command inside a transactional sequence.
type Statement struct {
	Query string
	Args  []any
}

// Store is the narrow gateway the repositories run their SQL through.
// WithinTx executes the given statements in order inside one transaction;
// either every statement commits or none of their effects is observable.
type Store interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
	Exec(query string, args ...any) (sql.Result, error)
	WithinTx(stmts []Statement) error
}

// SQLStore backs the Store interface with a *sql.DB.
type SQLStore struct {
	DB *sql.DB
}

func NewStore(db *sql.DB) *SQLStore {
	return &SQLStore{DB: db}
}

func (s *SQLStore) Query(query string, args ...any) (*sql.Rows, error) {
	return s.DB.Query(query, args...)
}

func (s *SQLStore) QueryRow(query string, args ...any) *sql.Row {
	return s.DB.QueryRow(query, args...)
}

func (s *SQLStore) Exec(query string, args ...any) (sql.Result, error) {
	return s.DB.Exec(query, args...)
}

func (s *SQLStore) WithinTx(stmts []Statement) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}

	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt.Query, stmt.Args...); err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				return rbErr
			}
			return err
		}
	}

	return tx.Commit()
}

var _ Store = (*SQLStore)(nil)
