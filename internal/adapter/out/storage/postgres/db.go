package postgres

import (
	"errors"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
)

var ErrBuildingQuery = errors.New("building query")

// DB is satisfied by *pgxpool.Pool and by the pgx transaction the manager
// puts into the context.
//
//go:generate mockgen -destination=./mocks/db_mock.go -package=mocks techblog/internal/adapter/out/storage/postgres DB
type DB interface {
	trmpgx.Tr
}

type rowScanner interface {
	Scan(dest ...any) error
}
