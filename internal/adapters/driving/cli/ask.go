package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var askJSON bool

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a single question",
	Long: `Matches one question against the knowledge base and prints the answer.
A miss prints the fallback answer and still exits 0; it is an expected
outcome, not an error.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the outcome as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if chatService == nil {
		return errors.New("chat service not configured")
	}

	outcome, err := chatService.Respond(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("answering: %w", err)
	}

	if askJSON {
		data, err := json.MarshalIndent(outcome, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling outcome: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if outcome.Hit {
		cmd.Printf("%s  [match=%q score=%.3f]\n", outcome.Answer, outcome.MatchedQuestion, outcome.Score)
	} else {
		cmd.Printf("%s  [score≈%.3f]\n", outcome.Answer, outcome.Score)
	}
	return nil
}
