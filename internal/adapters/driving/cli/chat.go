package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// REPL styles.
var (
	styleUser  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	styleBot   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	styleScore = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive session",
	Long: `Starts the conversational loop. Each line you type is matched against
the knowledge base; when nothing is close enough the bot asks to be
taught and stores your answer for next time. Ctrl+C exits.`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	if chatService == nil {
		return errors.New("chat service not configured")
	}

	// Signal-driven exit is an explicit loop condition checked after
	// every read, not an abort from a handler.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	interactive := isTerminal(cmd.InOrStdin())
	lines := readLines(cmd.InOrStdin())

	fmt.Fprintln(out, "Sistema experto. Ctrl+C para salir.")
	for {
		prompt(out, interactive, styleUser.Render("Tú: "))
		line, ok := nextLine(ctx, lines)
		if !ok {
			fmt.Fprintln(out, "\nSaliendo…")
			return nil
		}
		user := strings.TrimSpace(line)
		if user == "" {
			continue
		}

		outcome, err := chatService.Respond(ctx, user)
		if err != nil {
			// A failed operation halts this turn, not the loop.
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
			continue
		}

		if outcome.Hit {
			fmt.Fprintf(out, "%s %s  %s\n",
				styleBot.Render("Bot:"),
				outcome.Answer,
				styleScore.Render(fmt.Sprintf("[match=%q score=%.3f]", outcome.MatchedQuestion, outcome.Score)))
			continue
		}

		fmt.Fprintf(out, "%s %s  %s\n",
			styleBot.Render("Bot:"),
			outcome.Answer,
			styleScore.Render(fmt.Sprintf("[score≈%.3f]", outcome.Score)))
		fmt.Fprintf(out, "%s ¿Qué te gustaría que respondiera la próxima vez?\n", styleBot.Render("Bot:"))

		prompt(out, interactive, styleUser.Render("Enséñame la respuesta: "))
		answer, ok := nextLine(ctx, lines)
		if !ok {
			fmt.Fprintln(out, "\nSaliendo…")
			return nil
		}
		answer = strings.TrimSpace(answer)
		if answer == "" {
			continue
		}

		if err := chatService.Teach(ctx, user, answer); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
			continue
		}
		fmt.Fprintf(out, "%s Listo. Ya lo aprendí.\n", styleBot.Render("Bot:"))
	}
}

// readLines pumps lines from r into a channel, closing it on EOF.
func readLines(r io.Reader) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			ch <- scanner.Text()
		}
	}()
	return ch
}

// nextLine blocks for the next input line. The second return is false
// when input is exhausted or the session was interrupted.
func nextLine(ctx context.Context, lines <-chan string) (string, bool) {
	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-lines:
		return line, ok
	}
}

// prompt writes the prompt only for interactive sessions, so piped
// input produces clean transcripts.
func prompt(out io.Writer, interactive bool, s string) {
	if interactive {
		fmt.Fprint(out, s)
	}
}

// isTerminal reports whether in is an interactive terminal.
func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
