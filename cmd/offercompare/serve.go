package main

import (
	"github.com/spf13/cobra"

	"github.com/offerlens/offercompare/internal/refdata"
	"github.com/offerlens/offercompare/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the comparison engine as a JSON API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
}

func runServe(cmd *cobra.Command, args []string) error {
	_, logger, engine, client, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	rents := refdata.NewRentCache(client.FetchRentEstimate)
	return server.New(engine, rents, logger).ListenAndServe(serveAddr)
}
