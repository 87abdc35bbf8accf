package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Benjaminr180/experto-cli/internal/adapters/driven/storage/memory"
	"github.com/Benjaminr180/experto-cli/internal/core/domain"
	"github.com/Benjaminr180/experto-cli/internal/core/services"
)

// setupTestServices wires the commands to a seeded in-memory store and
// restores the previous wiring when the test ends.
func setupTestServices(t *testing.T) *memory.Store {
	t.Helper()

	store := memory.NewStore()
	require.NoError(t, store.Bootstrap(context.Background()))

	oldChat := chatService
	oldKnowledge := knowledgeService
	oldSettings := settings

	chatService = services.NewChatService(store, domain.DefaultThreshold)
	knowledgeService = services.NewKnowledgeService(store)
	settings = domain.Settings{Threshold: domain.DefaultThreshold, StorePath: "(memory)"}

	t.Cleanup(func() {
		chatService = oldChat
		knowledgeService = oldKnowledge
		settings = oldSettings
	})
	return store
}

// execute runs the root command with args and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}
