package configs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"droscher.com/BeerDiary/configs"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) TestGetConfig_GetsNamedFile() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/config.toml", logger)

	suite.Require().NoError(err)
	suite.Equal(configs.DriverPostgres, config.DB.Driver)
	suite.Equal("test.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("testuser", config.DB.User)
	suite.Equal("test123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal(5, config.DB.MaxIdleConnections)
	suite.Equal(7, config.DB.MaxOpenConnections)
	suite.Equal(666, config.Server.Port)
	suite.Equal([]string{"http://localhost:3000"}, config.Server.AllowedOrigins)
	suite.Equal("tester", config.Journal.GuestUserID)
	suite.True(config.Journal.BufferOnly)
	suite.Equal(30*time.Minute, config.Journal.SessionTTL)
	suite.Equal("beers.csv", config.Catalog.CSVFile)
	suite.Equal("audience", config.Auth.Audience)
	suite.Equal("secret", config.Auth.SecretKey)
}

func (suite *ConfigTestSuite) TestGetConfig_Defaults() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("", logger)

	suite.Require().NoError(err)
	suite.Equal(configs.DriverSQLite, config.DB.Driver)
	suite.Equal("craft_beer.db", config.DB.Path)
	suite.Equal(8080, config.Server.Port)
	suite.Equal([]string{"*"}, config.Server.AllowedOrigins)
	suite.Equal("guest", config.Journal.GuestUserID)
	suite.False(config.Journal.BufferOnly)
	suite.Equal(12*time.Hour, config.Journal.SessionTTL)
	suite.Equal("beer_data_set.csv", config.Catalog.CSVFile)
	suite.Empty(config.Auth.SecretKey)
}

func (suite *ConfigTestSuite) TestGetConfig_GetsEnv() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("BEERDIARY_DB_DRIVER", "postgres")
	suite.T().Setenv("BEERDIARY_DB_HOST", "test.local")
	suite.T().Setenv("BEERDIARY_DB_PORT", "1234")
	suite.T().Setenv("BEERDIARY_DB_USER", "testuser")
	suite.T().Setenv("BEERDIARY_DB_PASSWORD", "test123")
	suite.T().Setenv("BEERDIARY_DB_DATABASE", "testdb")
	suite.T().Setenv("BEERDIARY_DB_MAXIDLECONNECTIONS", "5")
	suite.T().Setenv("BEERDIARY_DB_MAXOPENCONNECTIONS", "7")
	suite.T().Setenv("BEERDIARY_SERVER_PORT", "666")
	suite.T().Setenv("BEERDIARY_JOURNAL_GUESTUSERID", "envguest")
	suite.T().Setenv("BEERDIARY_AUTH_AUDIENCE", "audience")
	suite.T().Setenv("BEERDIARY_AUTH_SECRETKEY", "secret")

	config, err := configs.GetConfig("", logger)

	suite.Require().NoError(err)
	suite.Equal(configs.DriverPostgres, config.DB.Driver)
	suite.Equal("test.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("testuser", config.DB.User)
	suite.Equal("test123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal(5, config.DB.MaxIdleConnections)
	suite.Equal(7, config.DB.MaxOpenConnections)
	suite.Equal(666, config.Server.Port)
	suite.Equal("envguest", config.Journal.GuestUserID)
	suite.Equal("audience", config.Auth.Audience)
	suite.Equal("secret", config.Auth.SecretKey)
}

func (suite *ConfigTestSuite) TestGetConfig_EnvOverridesFile() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("BEERDIARY_DB_HOST", "env.local")
	suite.T().Setenv("BEERDIARY_DB_USER", "envuser")
	suite.T().Setenv("BEERDIARY_DB_PASSWORD", "env123")
	suite.T().Setenv("BEERDIARY_AUTH_SECRETKEY", "envsecret")

	config, err := configs.GetConfig("testdata/config.toml", logger)

	suite.Require().NoError(err)
	suite.Equal("env.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("envuser", config.DB.User)
	suite.Equal("env123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal("tester", config.Journal.GuestUserID)
	suite.Equal("envsecret", config.Auth.SecretKey)
}

func (suite *ConfigTestSuite) TestGetConfig_MissingFileFallsBackToEnv() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("BEERDIARY_DB_PATH", "/tmp/diary.db")

	config, err := configs.GetConfig("testdata/missing.toml", logger)

	suite.Require().NoError(err)
	suite.Equal(configs.DriverSQLite, config.DB.Driver)
	suite.Equal("/tmp/diary.db", config.DB.Path)
}

func (suite *ConfigTestSuite) TestGetConfig_PostgresMissingValues() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("BEERDIARY_DB_DRIVER", "postgres")

	config, err := configs.GetConfig("", logger)

	suite.Nil(config)
	suite.Require().ErrorIs(err, configs.ErrConfiguration)
	suite.EqualError(err, "configuration error: DB.Host, DB.Password required for the postgres driver")
}

func (suite *ConfigTestSuite) TestGetConfig_UnknownDriver() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("BEERDIARY_DB_DRIVER", "mysql")

	config, err := configs.GetConfig("", logger)

	suite.Nil(config)
	suite.Require().ErrorIs(err, configs.ErrConfiguration)
	suite.ErrorContains(err, `unknown DB.Driver "mysql"`)
}

func (suite *ConfigTestSuite) TestGetConfig_RejectsNonPositiveSessionTTL() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("BEERDIARY_JOURNAL_SESSIONTTL", "-1m")

	config, err := configs.GetConfig("", logger)

	suite.Nil(config)
	suite.Require().ErrorIs(err, configs.ErrConfiguration)
	suite.ErrorContains(err, "Journal.SessionTTL must be positive")
}
