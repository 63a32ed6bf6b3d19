package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "callsight",
	Short: "Turn customer service call transcripts into structured data",
	Long: `callsight runs a schema-constrained model completion over a customer
service call transcript and prints the extracted analysis. It talks to the
same Azure OpenAI deployment as the server and reads the same environment
variables (AZURE_OPENAI_ENDPOINT, AZURE_OPENAI_API_KEY, AZURE_OPENAI_DEPLOYMENT).`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
