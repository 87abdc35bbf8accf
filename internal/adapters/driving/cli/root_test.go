package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Benjaminr180/experto-cli/internal/core/domain"
)

// resetWiring clears the wired services so the next Execute goes through
// wireServices, and restores everything afterwards.
func resetWiring(t *testing.T) {
	t.Helper()

	oldChat := chatService
	oldKnowledge := knowledgeService
	oldSettings := settings
	oldConfigPath := configPath
	oldStorePath := storePathFlag

	chatService = nil
	knowledgeService = nil

	t.Cleanup(func() {
		chatService = oldChat
		knowledgeService = oldKnowledge
		settings = oldSettings
		configPath = oldConfigPath
		storePathFlag = oldStorePath
	})
}

func TestRootCmd_WiresFromFlags(t *testing.T) {
	resetWiring(t)
	storePath := filepath.Join(t.TempDir(), "kb.db")

	out, err := execute(t, "ask", "Hola!!",
		"--store", storePath,
		"--config", filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Contains(t, out, "Hola, ¿en qué te ayudo?")
	assert.Equal(t, storePath, settings.StorePath)
	assert.Equal(t, domain.DefaultThreshold, settings.Threshold)
}

func TestRootCmd_EndToEndSQLite(t *testing.T) {
	resetWiring(t)
	storePath := filepath.Join(t.TempDir(), "kb.db")
	missingConfig := filepath.Join(t.TempDir(), "missing.toml")

	out, err := execute(t, "ask", "cuentame un chiste",
		"--store", storePath, "--config", missingConfig)
	require.NoError(t, err)
	assert.Contains(t, out, domain.FallbackAnswer)

	out, err = execute(t, "teach", "cuentame un chiste", "No sé chistes")
	require.NoError(t, err)
	assert.Contains(t, out, "Listo. Ya lo aprendí.")

	out, err = execute(t, "ask", "cuentame un chiste")
	require.NoError(t, err)
	assert.Contains(t, out, "No sé chistes")
	assert.Contains(t, out, "score=1.000")
}
