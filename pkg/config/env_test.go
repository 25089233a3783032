package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredVar(t *testing.T) {
	t.Setenv("AUTOPILOOT_PRESENT", "value")

	v, err := RequiredVar("AUTOPILOOT_PRESENT")
	require.NoError(t, err)
	assert.Equal(t, "value", v)

	_, err = RequiredVar("AUTOPILOOT_ABSENT_VAR")
	var missing *MissingEnvError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "AUTOPILOOT_ABSENT_VAR", missing.Name)

	// RequiredEnvVar is an alias with the identical contract.
	v2, err := RequiredEnvVar("AUTOPILOOT_PRESENT")
	require.NoError(t, err)
	assert.Equal(t, v, v2)
}

func TestOptionalVar(t *testing.T) {
	t.Setenv("AUTOPILOOT_OPT", "set")
	assert.Equal(t, "set", OptionalVar("AUTOPILOOT_OPT", "def"))
	assert.Equal(t, "def", OptionalVar("AUTOPILOOT_OPT_UNSET", "def"))
}

func TestResolveCredentials(t *testing.T) {
	saPath := filepath.Join(t.TempDir(), "sa.json")
	require.NoError(t, os.WriteFile(saPath, []byte("{}"), 0o600))

	setRequired := func(t *testing.T) {
		t.Setenv(EnvOpenAIAPIKey, "sk-test")
		t.Setenv(EnvYouTubeAPIKey, "yt-test")
		t.Setenv(EnvGCPProjectID, "proj-test")
		t.Setenv(EnvServiceAccountPath, saPath)
		t.Setenv(EnvApplicationCredentials, "")
	}

	t.Run("resolves full set", func(t *testing.T) {
		setRequired(t)
		t.Setenv(EnvSlackBotToken, "xoxb-test")

		creds, err := ResolveCredentials()
		require.NoError(t, err)
		assert.Equal(t, "sk-test", creds.OpenAIAPIKey)
		assert.Equal(t, saPath, creds.ServiceAccountPath)
		assert.Equal(t, "xoxb-test", creds.SlackBotToken)
	})

	t.Run("GOOGLE_APPLICATION_CREDENTIALS is accepted as the path", func(t *testing.T) {
		setRequired(t)
		t.Setenv(EnvServiceAccountPath, "")
		t.Setenv(EnvApplicationCredentials, saPath)

		creds, err := ResolveCredentials()
		require.NoError(t, err)
		assert.Equal(t, saPath, creds.ServiceAccountPath)
	})

	t.Run("fails when a required var is missing", func(t *testing.T) {
		setRequired(t)
		t.Setenv(EnvYouTubeAPIKey, "")

		_, err := ResolveCredentials()
		var missing *MissingEnvError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, EnvYouTubeAPIKey, missing.Name)
	})

	t.Run("fails when the service account file does not exist", func(t *testing.T) {
		setRequired(t)
		t.Setenv(EnvServiceAccountPath, filepath.Join(t.TempDir(), "nope.json"))

		_, err := ResolveCredentials()
		require.Error(t, err)
	})
}
