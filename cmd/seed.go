package cmd

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/BeerDiary/pkg/catalog"
)

type SeedCmd struct {
	ConfigFile string `default:".BeerDiary.toml" help:"Path to config file" short:"c"`
	File       string `help:"Catalog CSV, defaults to Catalog.CSVFile" short:"f" type:"path"`
	Force      bool   `help:"Replace a catalog that already has beers"`
}

func (s *SeedCmd) Run(ctx *Context) error {
	logger := commandLogger(ctx)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, repo, err := openRepository(s.ConfigFile, logger)
	if err != nil {
		return err
	}
	defer repo.Close()

	background := context.Background()

	if err := repo.Migrate(); err != nil {
		return err
	}

	count, err := repo.CountCatalogBeers(background)
	if err != nil {
		return err
	}

	if count > 0 {
		if !s.Force {
			logger.Info("catalog already seeded, skipping", zap.Int64("beers", count))

			return nil
		}

		removed, err := repo.ClearCatalog(background)
		if err != nil {
			return err
		}

		logger.Info("cleared catalog", zap.Int64("beers", removed))
	}

	file := s.File
	if len(file) == 0 {
		file = conf.Catalog.CSVFile
	}

	beers, err := catalog.ParseFile(file)
	if err != nil {
		logger.Error("error reading catalog", zap.String("file", file), zap.Error(err))

		return err
	}

	imported, err := repo.AddCatalogBeers(background, beers)
	if err != nil {
		logger.Error("error importing catalog", zap.Error(err))

		return err
	}

	logger.Info("seeded catalog", zap.String("file", file), zap.Int64("beers", imported))

	return nil
}
