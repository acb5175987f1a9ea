package contracts

import (
	"context"
	"database/sql"
)

type ID interface {
	String() string
	IsValid() bool
}

type Store interface {
	Connect() error
	Close() error
	Ping(ctx context.Context) error
	DB() (*sql.DB, error)
}
