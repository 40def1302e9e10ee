package repository_test

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"moul.io/zapgorm2"

	"droscher.com/BeerDiary/configs"
	"droscher.com/BeerDiary/pkg/repository"
)

// RepositorySuite runs repository methods against sqlmock through the postgres dialect.
type RepositorySuite struct {
	suite.Suite
	DB           *gorm.DB
	mock         sqlmock.Sqlmock
	observedLogs *observer.ObservedLogs
	repository   repository.Repository
}

func (suite *RepositorySuite) SetupTest() {
	var (
		db              *sql.DB
		err             error
		observedZapCore zapcore.Core
	)

	observedZapCore, suite.observedLogs = observer.New(zap.InfoLevel)
	observedLogger := zap.New(observedZapCore)

	db, suite.mock, err = sqlmock.New()
	suite.Require().NoError(err)

	gormLogger := zapgorm2.New(observedLogger)
	gormLogger.SetAsDefault()

	suite.DB, err = gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{Logger: gormLogger})
	suite.Require().NoError(err)

	suite.repository = repository.Repository{DB: suite.DB, Logger: observedLogger}
}

func (suite *RepositorySuite) TearDownTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
}

func TestOpen_UnknownDriver(t *testing.T) {
	conf := &configs.Config{DB: configs.DB{Driver: "oracle"}}

	repo, err := repository.Open(conf, zaptest.NewLogger(t))

	require.ErrorIs(t, err, configs.ErrConfiguration)
	assert.Nil(t, repo)
}
