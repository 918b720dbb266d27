package ai

import (
	"os"
	"strings"
)

// DefaultAPIKeyEnv is the environment variable read by EnvCredential when no
// name is configured.
const DefaultAPIKeyEnv = "OPENAI_API_KEY"

// CredentialSource supplies the API key for an AI attempt.
type CredentialSource interface {
	// APIKey returns the key and whether one is configured.
	APIKey() (string, bool)
	// Describe names the source for warnings, e.g. "OPENAI_API_KEY".
	Describe() string
}

// EnvCredential reads the key from an environment variable at call time.
type EnvCredential struct {
	Name string
}

// NewEnvCredential returns a source reading name, or DefaultAPIKeyEnv when
// name is empty.
func NewEnvCredential(name string) EnvCredential {
	if strings.TrimSpace(name) == "" {
		name = DefaultAPIKeyEnv
	}
	return EnvCredential{Name: name}
}

// APIKey implements CredentialSource.
func (e EnvCredential) APIKey() (string, bool) {
	key := strings.TrimSpace(os.Getenv(e.name()))
	return key, key != ""
}

// Describe implements CredentialSource.
func (e EnvCredential) Describe() string {
	return e.name()
}

func (e EnvCredential) name() string {
	if e.Name == "" {
		return DefaultAPIKeyEnv
	}
	return e.Name
}

// StaticCredential is a fixed key, mostly useful in tests.
type StaticCredential string

// APIKey implements CredentialSource.
func (s StaticCredential) APIKey() (string, bool) {
	key := strings.TrimSpace(string(s))
	return key, key != ""
}

// Describe implements CredentialSource.
func (s StaticCredential) Describe() string {
	return "static credential"
}
