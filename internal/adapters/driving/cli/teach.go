package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var teachCmd = &cobra.Command{
	Use:   "teach [question] [answer]",
	Short: "Store a question and its answer",
	Long: `Adds a (question, answer) pair to the knowledge base without going
through the interactive loop. The question is normalised before it is
stored; the answer is kept verbatim.`,
	Args: cobra.ExactArgs(2),
	RunE: runTeach,
}

func init() {
	rootCmd.AddCommand(teachCmd)
}

func runTeach(cmd *cobra.Command, args []string) error {
	if chatService == nil {
		return errors.New("chat service not configured")
	}

	if err := chatService.Teach(cmd.Context(), args[0], args[1]); err != nil {
		return fmt.Errorf("teaching: %w", err)
	}

	cmd.Println("Listo. Ya lo aprendí.")
	return nil
}
