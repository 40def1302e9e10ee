package cmd

import (
	"context"
	"io"
	"os"

	"go.uber.org/zap"

	"droscher.com/BeerDiary/pkg/journal"
	"droscher.com/BeerDiary/pkg/model"
)

type ExportCmd struct {
	ConfigFile string `default:".BeerDiary.toml" help:"Path to config file" short:"c"`
	User       string `help:"User whose journal is exported, defaults to the guest user" short:"u"`
	Output     string `help:"Output file, stdout when empty" short:"o" type:"path"`
}

func (e *ExportCmd) Run(ctx *Context) error {
	logger := commandLogger(ctx)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, repo, err := openRepository(e.ConfigFile, logger)
	if err != nil {
		return err
	}
	defer repo.Close()

	userID := e.User
	if len(userID) == 0 {
		userID = conf.Journal.GuestUserID
	}

	entries, err := journal.NewStore(repo, logger).ListTastings(context.Background(), userID)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout

	if len(e.Output) > 0 {
		file, err := os.Create(e.Output)
		if err != nil {
			return err
		}
		defer file.Close()

		out = file
	}

	rows := make([]model.TastingEntry, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, *entry)
	}

	if err := journal.WriteCSV(out, rows); err != nil {
		logger.Error("error writing journal", zap.Error(err))

		return err
	}

	logger.Info("exported journal", zap.String("user_id", userID), zap.Int("entries", len(rows)))

	return nil
}
