package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/offerlens/offercompare/internal/calculation"
	"github.com/offerlens/offercompare/internal/config"
	"github.com/offerlens/offercompare/internal/refdata"
)

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "offercompare",
	Short: "Normalize and rank job offers by adjusted value",
	Long: `offercompare converts heterogeneous job offers (location, tax
exposure, work mode, benefits) into a single comparable adjusted value
and ranks them against the offer you designate as current.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(serveCmd)
}

// bootstrap loads configuration, builds the logger, fetches reference
// data, and assembles the engine shared by the subcommands.
func bootstrap() (*config.Config, *zap.SugaredLogger, *calculation.ComparisonEngine, *refdata.Client, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := config.NewLogger(cfg.Logging, logLevel)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	sugar := logger.Sugar()

	client := refdata.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout(), sugar)
	engine := calculation.NewComparisonEngine(client.FetchReferenceData())
	engine.SetLogger(sugar)
	if cfg.FallbackCity != "" {
		engine.FallbackCity = cfg.FallbackCity
	}

	return cfg, sugar, engine, client, nil
}
