package cmd

import (
	"github.com/prompted365/scamdetect/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scamdetect",
	Short: "Crypto scam recognition trainer",
	Long:  "ScamDetect — terminal training game that teaches you to spot crypto scams: phishing emails, fake dApps, malicious contracts, and social engineering.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite settings database (overrides SCAMDETECT_DB env var)")

	rootCmd.AddCommand(scenariosCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SCAMDETECT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
