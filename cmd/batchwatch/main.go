package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/batchwatch/batchwatch/internal/commands"
)

var version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "batchwatch",
		Short: "Daily file-batch audit engine",
		Long: `Batchwatch audits the daily file drops of upstream data sources against
statistical baselines extracted from per-source profile documents. It flags
missing files, duplicates, unexpected empties, volume anomalies, late uploads
and stale re-deliveries, and consolidates the incidents into one report.`,
		Version: version,
	}

	root.AddCommand(
		commands.NewInitCmd(),
		commands.NewAuditCmd(),
		commands.NewReportCmd(),
		commands.NewServeCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
