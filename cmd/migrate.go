package cmd

import (
	"go.uber.org/zap"
)

type MigrateCmd struct {
	ConfigFile string `default:".BeerDiary.toml" help:"Path to config file" short:"c"`
}

func (m *MigrateCmd) Run(ctx *Context) error {
	logger := commandLogger(ctx)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	_, repo, err := openRepository(m.ConfigFile, logger)
	if err != nil {
		return err
	}
	defer repo.Close()

	if err := repo.Migrate(); err != nil {
		logger.Error("error migrating database", zap.Error(err))

		return err
	}

	logger.Info("database migrated")

	return nil
}
