package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhruska/callsight/internal/scenarios"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List the built-in demo scenarios",
	RunE:  runScenarios,
}

func init() {
	rootCmd.AddCommand(scenariosCmd)
}

func runScenarios(cmd *cobra.Command, args []string) error {
	for _, sc := range scenarios.All() {
		fmt.Printf("%-22s %s\n", sc.ID, sc.Title)
		fmt.Printf("%-22s %s\n", "", sc.Description)
	}
	return nil
}
