package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Benjaminr180/experto-cli/internal/core/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultThreshold, settings.Threshold)
	assert.Empty(t, settings.StorePath)
}

func TestLoad_ReadsTOML(t *testing.T) {
	path := writeConfig(t, "threshold = 0.5\nstore_path = \"/tmp/test-kb.db\"\n")

	settings, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.5, settings.Threshold)
	assert.Equal(t, "/tmp/test-kb.db", settings.StorePath)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "store_path = \"/tmp/test-kb.db\"\n")

	settings, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultThreshold, settings.Threshold)
	assert.Equal(t, "/tmp/test-kb.db", settings.StorePath)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "threshold = 0.5\n")
	t.Setenv("EXPERTO_THRESHOLD", "0.9")
	t.Setenv("EXPERTO_STORE_PATH", "/tmp/env-kb.db")

	settings, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.9, settings.Threshold)
	assert.Equal(t, "/tmp/env-kb.db", settings.StorePath)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := writeConfig(t, "threshold = not-a-number\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_OutOfRangeThreshold(t *testing.T) {
	path := writeConfig(t, "threshold = 1.5\n")

	_, err := Load(path)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
