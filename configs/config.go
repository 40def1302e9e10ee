package configs

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kkyr/fig"
	"go.uber.org/zap"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type DB struct {
	Driver             string `default:"sqlite"`
	Path               string `default:"craft_beer.db"`
	Host               string
	Port               int    `default:"5432"`
	User               string `default:"postgres"`
	Password           string
	Database           string `default:"postgres"`
	MaxIdleConnections int    `default:"10"`
	MaxOpenConnections int    `default:"10"`
}

type Server struct {
	Port           int      `default:"8080"`
	AllowedOrigins []string `default:"*"`
}

// Journal.BufferOnly disables the direct write on AddTasting; entries then only reach
// the database through a session sync. Sessions idle for longer than SessionTTL are dropped.
type Journal struct {
	GuestUserID string        `default:"guest"`
	BufferOnly  bool
	SessionTTL  time.Duration `default:"12h"`
}

type Catalog struct {
	CSVFile string `default:"beer_data_set.csv"`
}

type Config struct {
	DB      DB
	Server  Server
	Journal Journal
	Catalog Catalog
	Auth    Auth
}

// Auth is disabled when SecretKey is empty; every request then runs as Journal.GuestUserID.
type Auth struct {
	SecretKey string
	Audience  string
}

const envPrefix = "BEERDIARY" // env prefix for env vars

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}
	homeDir, _ := os.UserHomeDir()

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if strings.Contains(err.Error(), "file not found") {
			logger.Warn("Could not find config file", zap.String("file", configFileName))

			err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case DriverSQLite:
		if len(c.DB.Path) == 0 {
			return fmt.Errorf("%w: DB.Path is required for the sqlite driver", ErrConfiguration)
		}
	case DriverPostgres:
		var missing []string

		if len(c.DB.Host) == 0 {
			missing = append(missing, "DB.Host")
		}

		if len(c.DB.Password) == 0 {
			missing = append(missing, "DB.Password")
		}

		if len(missing) > 0 {
			return fmt.Errorf("%w: %s required for the postgres driver", ErrConfiguration, strings.Join(missing, ", "))
		}
	default:
		return fmt.Errorf("%w: unknown DB.Driver %q", ErrConfiguration, c.DB.Driver)
	}

	if len(c.Journal.GuestUserID) == 0 {
		return fmt.Errorf("%w: Journal.GuestUserID must not be empty", ErrConfiguration)
	}

	if c.Journal.SessionTTL <= 0 {
		return fmt.Errorf("%w: Journal.SessionTTL must be positive", ErrConfiguration)
	}

	return nil
}
