package main

import (
	"os"

	"maropost_fixtures/internal/config"
	"maropost_fixtures/internal/generator"
	"maropost_fixtures/internal/logging"
	"maropost_fixtures/internal/storage"

	"github.com/rs/zerolog/log"
)

func main() {
	logging.Setup("fixture-generator")

	if err := run(config.DefaultConfigPath); err != nil {
		log.Error().Err(err).Msg("Fixture generation failed")
		os.Exit(1)
	}
}

// run builds the dataset and writes it to the configured output path.
// config.yaml is optional, defaults apply without it.
func run(configPath string) error {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}

	ds := generator.New(cfg.Dataset).BuildDataset()
	log.Debug().
		Int("orders", len(ds.Orders)).
		Int("customers", len(ds.Customers)).
		Int("products", len(ds.Products)).
		Msg("Dataset generated")

	if err := storage.Save(cfg.Dataset.OutputPath, ds); err != nil {
		return err
	}

	log.Info().Msg("File has been written successfully to " + cfg.Dataset.OutputPath)
	return nil
}
