package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/cabbooking/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDSN(t *testing.T) {
	dsn := BuildDSN(models.DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		Username: "cab",
		Password: "secret",
		Database: "cabbooking",
		SSLMode:  "disable",
	})

	assert.Equal(t, "host=localhost port=5432 user=cab password=secret dbname=cabbooking sslmode=disable", dsn)
}

func TestPostgresClient_GetDB(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	client := &PostgresClient{db: sqlxDB}

	assert.Same(t, sqlxDB, client.GetDB())

	mock.ExpectClose()
	assert.NoError(t, client.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresClient_CloseNil(t *testing.T) {
	client := &PostgresClient{}
	assert.NoError(t, client.Close())
}

func TestNewPostgresClient_UnknownDriver(t *testing.T) {
	client, err := NewPostgresClient(models.DatabaseConfig{Driver: "no-such-driver"})

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to open postgres")
}
