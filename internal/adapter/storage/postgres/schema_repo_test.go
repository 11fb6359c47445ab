package postgres

import (
	"context"
	"testing"

	"stakeledger/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaRepo_Version(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSchemaRepo(mock)

	mock.ExpectQuery("SELECT version FROM schema_info").
		WillReturnRows(pgxmock.NewRows([]string{"version"}).AddRow(uint32(2)))

	v, err := repo.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint32(2), v)
}

func TestSchemaRepo_SetVersion(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSchemaRepo(mock)
	ctx := context.Background()

	mock.ExpectBegin()
	tx, err := mock.Begin(ctx)
	require.NoError(t, err)

	mock.ExpectExec("UPDATE schema_info SET version").
		WithArgs(uint32(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.SetVersion(ctx, tx, 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSchemaRepo_RegisterPartition(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSchemaRepo(mock)
	ctx := context.Background()

	mock.ExpectBegin()
	tx, err := mock.Begin(ctx)
	require.NoError(t, err)

	key := domain.PartitionHex(domain.NamespaceCoreV1)
	mock.ExpectExec("INSERT INTO partitions").
		WithArgs(domain.NamespaceCoreV1, uint32(1), key).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.RegisterPartition(ctx, tx, 1, domain.NamespaceCoreV1, key))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSchemaRepo_EnsureSchema(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSchemaRepo(mock)

	for range ddl {
		mock.ExpectExec(".*").WillReturnResult(pgxmock.NewResult("CREATE", 0))
	}

	assert.NoError(t, repo.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
