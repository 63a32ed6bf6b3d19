package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhruska/callsight/internal/app"
	"github.com/jhruska/callsight/internal/crm"
	"github.com/jhruska/callsight/internal/extraction"
	"github.com/jhruska/callsight/internal/scenarios"
)

var (
	analyzeFile     string
	analyzeScenario string
	analyzeValidate bool
	analyzeEmit     bool
	analyzeTimeout  time.Duration
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run schema-constrained extraction on a transcript",
	Long: `Analyze reads a call transcript from a file or one of the built-in demo
scenarios, sends it through the extraction client and prints the resulting
analysis as JSON. With --emit it also prints the mock CRM record and the
follow-up email draft that would be produced after review.`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Path to a transcript file")
	analyzeCmd.Flags().StringVarP(&analyzeScenario, "scenario", "s", "", "ID of a built-in demo scenario")
	analyzeCmd.Flags().BoolVar(&analyzeValidate, "validate", false, "Re-validate model output against the schema locally")
	analyzeCmd.Flags().BoolVar(&analyzeEmit, "emit", false, "Also print the mock CRM record and follow-up email")
	analyzeCmd.Flags().DurationVar(&analyzeTimeout, "timeout", 2*time.Minute, "Overall timeout for the completion call")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	transcript, err := resolveTranscript()
	if err != nil {
		return err
	}

	cfg := app.LoadConfigFromEnv()
	client := extraction.NewClient(extraction.Config{
		Endpoint:          cfg.OpenAIEndpoint,
		APIKey:            cfg.OpenAIAPIKey,
		Deployment:        cfg.OpenAIDeployment,
		ValidateResponses: analyzeValidate || cfg.ValidateResponses,
	})

	ctx, cancel := context.WithTimeout(context.Background(), analyzeTimeout)
	defer cancel()

	analysis, err := client.Analyze(ctx, transcript)
	if err != nil {
		return err
	}

	if err := printJSON(analysis); err != nil {
		return err
	}

	if analyzeEmit {
		record := crm.NewRecord(analyzeScenario, *analysis)
		email := crm.ComposeFollowUp(*analysis)
		fmt.Println()
		if err := printJSON(map[string]any{"record": record, "email": email}); err != nil {
			return err
		}
	}

	return nil
}

func resolveTranscript() (string, error) {
	if analyzeFile != "" {
		data, err := os.ReadFile(analyzeFile)
		if err != nil {
			return "", fmt.Errorf("failed to read transcript file: %w", err)
		}
		return string(data), nil
	}
	if analyzeScenario != "" {
		sc, ok := scenarios.ByID(analyzeScenario)
		if !ok {
			return "", fmt.Errorf("unknown scenario %q, run 'callsight scenarios' to list them", analyzeScenario)
		}
		return sc.Transcript, nil
	}
	return "", fmt.Errorf("either --file or --scenario is required")
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
