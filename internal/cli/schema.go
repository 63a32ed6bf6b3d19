package cli

import (
	"github.com/spf13/cobra"

	"github.com/jhruska/callsight/internal/extraction"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the analysis JSON schema",
	Long: `Prints the schema the model output has to conform to. The same document
is sent with every completion request as a strict response_format directive.`,
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, args []string) error {
	return printJSON(extraction.AnalysisSchema())
}
