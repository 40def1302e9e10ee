package cmd

import (
	"go.uber.org/zap"

	"droscher.com/BeerDiary/configs"
	"droscher.com/BeerDiary/pkg/repository"
)

type Context struct {
	Debug bool
}

var CLI struct {
	Debug bool `help:"Enable debug mode"`

	Serve   ServeCmd   `cmd:"" default:"1" help:"Run the server"`
	Migrate MigrateCmd `cmd:"" help:"Run database migrations"`
	Seed    SeedCmd    `cmd:"" help:"Import the beer catalog from CSV"`
	Export  ExportCmd  `cmd:"" help:"Write a user's tasting journal as CSV"`
}

func commandLogger(ctx *Context) *zap.Logger {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	if ctx != nil && !ctx.Debug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	logger, _ := logConfig.Build()

	return logger
}

func openRepository(configFile string, logger *zap.Logger) (*configs.Config, *repository.Repository, error) {
	conf, err := configs.GetConfig(configFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return nil, nil, err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return nil, nil, err
	}

	return conf, repo, nil
}
