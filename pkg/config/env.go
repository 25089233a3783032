package config

import (
	"fmt"
	"os"
)

// Required environment variables (names are stable contract).
const (
	EnvOpenAIAPIKey  = "OPENAI_API_KEY"
	EnvYouTubeAPIKey = "YOUTUBE_API_KEY"
	EnvGCPProjectID  = "GCP_PROJECT_ID"

	// Exactly one of these must point to an existing file.
	EnvServiceAccountPath     = "GOOGLE_SERVICE_ACCOUNT_PATH"
	EnvApplicationCredentials = "GOOGLE_APPLICATION_CREDENTIALS"

	// Optional.
	EnvAssemblyAIAPIKey = "ASSEMBLYAI_API_KEY"
	EnvSlackBotToken    = "SLACK_BOT_TOKEN"
	EnvZepAPIKey        = "ZEP_API_KEY"
)

// RequiredVar returns the value of a required environment variable, failing
// with MissingEnvError if unset or empty.
func RequiredVar(name string) (string, error) {
	v := os.Getenv(name)
	if v == "" {
		return "", &MissingEnvError{Name: name}
	}
	return v, nil
}

// RequiredEnvVar is an alias of RequiredVar with the identical contract.
// Both spellings are part of the stable surface.
func RequiredEnvVar(name string) (string, error) {
	return RequiredVar(name)
}

// OptionalVar returns the value of an environment variable, or the default
// when unset or empty.
func OptionalVar(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

// Credentials holds the resolved credential set for the process.
type Credentials struct {
	OpenAIAPIKey       string
	YouTubeAPIKey      string
	GCPProjectID       string
	ServiceAccountPath string

	// Optional; empty when unset.
	AssemblyAIAPIKey string
	SlackBotToken    string
	ZepAPIKey        string
}

// ResolveCredentials validates presence of the required credential variables
// and resolves the Google service-account path, which must exist on disk.
// Configuration errors block the run; they are never retried.
func ResolveCredentials() (*Credentials, error) {
	creds := &Credentials{}

	var err error
	if creds.OpenAIAPIKey, err = RequiredVar(EnvOpenAIAPIKey); err != nil {
		return nil, err
	}
	if creds.YouTubeAPIKey, err = RequiredVar(EnvYouTubeAPIKey); err != nil {
		return nil, err
	}
	if creds.GCPProjectID, err = RequiredVar(EnvGCPProjectID); err != nil {
		return nil, err
	}

	path := os.Getenv(EnvServiceAccountPath)
	if path == "" {
		path = os.Getenv(EnvApplicationCredentials)
	}
	if path == "" {
		return nil, &MissingEnvError{Name: EnvServiceAccountPath}
	}
	if !FileExists(path) {
		return nil, fmt.Errorf("service account file does not exist: %s", path)
	}
	creds.ServiceAccountPath = path

	creds.AssemblyAIAPIKey = os.Getenv(EnvAssemblyAIAPIKey)
	creds.SlackBotToken = os.Getenv(EnvSlackBotToken)
	creds.ZepAPIKey = os.Getenv(EnvZepAPIKey)

	return creds, nil
}
