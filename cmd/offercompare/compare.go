package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/offerlens/offercompare/internal/calculation"
	"github.com/offerlens/offercompare/internal/config"
	"github.com/offerlens/offercompare/internal/domain"
	"github.com/offerlens/offercompare/internal/output"
	"github.com/offerlens/offercompare/internal/refdata"
	"github.com/offerlens/offercompare/internal/settings"
)

var (
	offersPath   string
	outputFormat string
	outputFile   bool
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Rank offers from an offers file plus saved simulated scenarios",
	RunE:  runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&offersPath, "offers", "", "path to offers YAML file (required)")
	compareCmd.Flags().StringVar(&outputFormat, "format", "", "output format override: console, json, csv")
	compareCmd.Flags().BoolVar(&outputFile, "write-file", false, "write output to a timestamped file instead of stdout")
	_ = compareCmd.MarkFlagRequired("offers")
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, logger, engine, client, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	doc, err := config.NewInputParser().LoadFromFile(offersPath)
	if err != nil {
		return err
	}

	store := settings.NewStore(cfg.SettingsPath, logger)
	saved := store.Load()

	status := saved.MaritalStatus
	if doc.MaritalStatus != "" {
		status = doc.MaritalStatus
	}

	offers := make([]*domain.Offer, 0, len(doc.Offers)+len(saved.SimulatedOffers))
	offers = append(offers, doc.Offers...)
	offers = append(offers, saved.SimulatedOffers...)

	rents := refdata.NewRentCache(client.FetchRentEstimate)
	comparison, _ := engine.Compare(calculation.ComparisonInput{
		MaritalStatus: status,
		Offers:        offers,
		Rent:          rents.Get,
	})

	format := cfg.Output.Format
	if outputFormat != "" {
		format = outputFormat
	}
	formatter := output.GetFormatterByName(format)
	if formatter == nil {
		return fmt.Errorf("unknown output format: %s", format)
	}

	if outputFile {
		name, err := output.WriteFormatted(formatter, comparison, formatter.Name())
		if err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		logger.Infow("comparison written", "file", name)
		return nil
	}

	data, err := formatter.Format(comparison)
	if err != nil {
		return fmt.Errorf("failed to format comparison: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}
