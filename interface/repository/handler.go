package repository

import (
	"database/sql"

	"github.com/behrang/sqlbatch"
)

var (
	BatchOptionNormal = sql.TxOptions{
		ReadOnly:  false,
		Isolation: sql.LevelReadCommitted,
	}

	BatchOptionNormalReadOnly = sql.TxOptions{
		ReadOnly:  true,
		Isolation: sql.LevelReadCommitted,
	}
)

// BatchHandler executes a batch of SQL commands inside one transaction.
type BatchHandler interface {
	Batch(opts *sql.TxOptions, commands []sqlbatch.Command) ([]interface{}, error)
}
