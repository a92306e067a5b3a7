package repositories

import (
	"database/sql"

	intconfig "wanderstay/internal/config"
)

// Execer lets repository writes run against either the shared *sql.DB or an
// open *sql.Tx, so multi-table updates can share one transaction.
type Execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func sharedDB(db *sql.DB) *sql.DB {
	if db != nil {
		return db
	}
	return intconfig.DB
}
