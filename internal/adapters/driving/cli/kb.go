package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var kbListJSON bool

var kbCmd = &cobra.Command{
	Use:   "kb",
	Short: "Inspect the knowledge base",
}

var kbListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every stored question and answer",
	Args:  cobra.NoArgs,
	RunE:  runKBList,
}

var kbStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show knowledge base size and location",
	Args:  cobra.NoArgs,
	RunE:  runKBStats,
}

func init() {
	kbListCmd.Flags().BoolVar(&kbListJSON, "json", false, "output records as JSON")
	kbCmd.AddCommand(kbListCmd)
	kbCmd.AddCommand(kbStatsCmd)
	rootCmd.AddCommand(kbCmd)
}

func runKBList(cmd *cobra.Command, _ []string) error {
	if knowledgeService == nil {
		return errors.New("knowledge service not configured")
	}

	records, err := knowledgeService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing records: %w", err)
	}

	if kbListJSON {
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling records: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(records) == 0 {
		cmd.Println("Knowledge base is empty.")
		return nil
	}

	for _, rec := range records {
		cmd.Printf("[%d] %s\n    %s\n", rec.ID, rec.Question, rec.Answer)
	}
	return nil
}

func runKBStats(cmd *cobra.Command, _ []string) error {
	if knowledgeService == nil {
		return errors.New("knowledge service not configured")
	}

	count, err := knowledgeService.Count(cmd.Context())
	if err != nil {
		return fmt.Errorf("counting records: %w", err)
	}

	cmd.Printf("Records:   %d\n", count)
	cmd.Printf("Store:     %s\n", settings.StorePath)
	cmd.Printf("Threshold: %.3f\n", settings.Threshold)
	return nil
}
