// Package cli implements the experto command-line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Benjaminr180/experto-cli/internal/adapters/driven/config/file"
	"github.com/Benjaminr180/experto-cli/internal/adapters/driven/storage/sqlite"
	"github.com/Benjaminr180/experto-cli/internal/core/domain"
	"github.com/Benjaminr180/experto-cli/internal/core/ports/driving"
	"github.com/Benjaminr180/experto-cli/internal/core/services"
	"github.com/Benjaminr180/experto-cli/internal/logger"
)

// version is overridden at build time via ldflags.
var version = "dev"

// Global flags.
var (
	configPath    string
	storePathFlag string
	thresholdFlag float64
	verbose       bool
)

// Services driving the commands. Wired from configuration on first run;
// tests inject their own implementations before calling Execute.
var (
	chatService      driving.ChatService
	knowledgeService driving.KnowledgeService
	settings         domain.Settings
)

var rootCmd = &cobra.Command{
	Use:   "experto",
	Short: "Console expert system with teach-on-miss learning",
	Long: `Experto answers questions from a local knowledge base by cosine
similarity over bags of words. When no stored question is close enough,
it asks to be taught and remembers the answer for next time.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if chatService != nil {
			return nil
		}
		return wireServices(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config.toml (default ~/.experto/config.toml)")
	rootCmd.PersistentFlags().StringVar(&storePathFlag, "store", "", "knowledge database path (default ~/.experto/kb.db)")
	rootCmd.PersistentFlags().Float64Var(&thresholdFlag, "threshold", domain.DefaultThreshold, "minimum similarity for a match, in [0,1]")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// wireServices resolves settings (flags > environment > config file >
// defaults), opens the knowledge store and builds the services.
func wireServices(cmd *cobra.Command) error {
	loaded, err := file.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	settings = loaded

	if cmd.Flags().Changed("threshold") {
		settings.Threshold = thresholdFlag
	}
	if storePathFlag != "" {
		settings.StorePath = storePathFlag
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	store, err := sqlite.NewStore(settings.StorePath)
	if err != nil {
		return err
	}
	if err := store.Bootstrap(cmd.Context()); err != nil {
		return err
	}
	settings.StorePath = store.Path()

	chatService = services.NewChatService(store, settings.Threshold)
	knowledgeService = services.NewKnowledgeService(store)

	logger.Debug("Wired: store=%s threshold=%.3f", settings.StorePath, settings.Threshold)
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
