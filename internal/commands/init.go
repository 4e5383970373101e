package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [project-name]",
		Short: "Initialize a new batchwatch project",
		Long:  "Creates project scaffolding: a data directory layout and a starter batchwatch.yaml.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(args[0])
		},
	}
}

func runInit(projectName string) error {
	bold := color.New(color.Bold)
	_, _ = bold.Printf("Initializing batchwatch project: %s\n", projectName)

	dirs := []string{
		filepath.Join("data", "datasource_cvs"),
		filepath.Join("data", "reports"),
	}
	for _, dir := range dirs {
		path := filepath.Join(projectName, dir)
		if err := os.MkdirAll(path, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", path, err)
		}
	}

	configPath := filepath.Join(projectName, "batchwatch.yaml")
	configContent := `provider: fs
fs:
  dataDir: ./data
server:
  addr: ":3000"
engine:
  concurrency: 8
publisher:
  type: log
`
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	color.Green("Project created.")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Printf("  cd %s\n", projectName)
	fmt.Println("  # drop daily batches under data/<date>_<label>/files.json")
	fmt.Println("  # drop source profiles under data/datasource_cvs/<id>_native.md")
	fmt.Println("  batchwatch audit 2025-09-08")
	return nil
}
