package postgres

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_migrateURL(t *testing.T) {
	require.Equal(t, "pgx5://u:p@db:5432/blog?sslmode=disable", migrateURL("postgres://u:p@db:5432/blog?sslmode=disable"))
	require.Equal(t, "pgx5://u@db/blog", migrateURL("postgresql://u@db/blog"))
	require.Equal(t, "pgx5://already", migrateURL("pgx5://already"))
}

func Test_migrationsEmbedded(t *testing.T) {
	names, err := fs.Glob(migrationsFS, "migrations/*.sql")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{
		"migrations/0001_init.up.sql",
		"migrations/0001_init.down.sql",
	}, names)
}
