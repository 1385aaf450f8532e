package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/prompted365/scamdetect/internal/app"
	"github.com/prompted365/scamdetect/internal/enrich"
	"github.com/prompted365/scamdetect/internal/game"
	"github.com/prompted365/scamdetect/internal/scenario"
	"github.com/prompted365/scamdetect/internal/store"
	"github.com/prompted365/scamdetect/internal/tools"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	repo, err := scenario.Default()
	if err != nil {
		return fmt.Errorf("load scenarios: %w", err)
	}

	opts := app.Options{
		Repo:    repo,
		Toolkit: tools.NewKit(rand.New(rand.NewSource(time.Now().UnixNano()))),
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Settings unavailable:", err)
	} else {
		st, err := store.Open(dbPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Settings unavailable:", err)
		} else {
			defer st.Close()
			opts.Store = st
		}
	}

	opts.Enricher = buildEnricher()

	return app.Run(opts)
}

// buildEnricher returns a live blockchain data client when an Etherscan API
// key is configured, nil otherwise. Without it tools run on simulated data.
func buildEnricher() game.Enricher {
	key := os.Getenv("SCAMDETECT_ETHERSCAN_KEY")
	if key == "" {
		return nil
	}
	return enrich.NewClient(enrich.WithAPIKey(key))
}
