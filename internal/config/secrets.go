package config

import (
	"os"
	"path/filepath"
	"strings"
)

// secretSource resolves credential values from a Docker-style secrets
// directory, falling back to environment variables when no secret file
// exists. Values are read once at startup; rotating a secret requires a
// restart.
type secretSource struct {
	dir string
}

func newSecretSource() secretSource {
	return secretSource{dir: getEnv("SECRETS_DIR", "/run/secrets")}
}

func (s secretSource) Lookup(name string) string {
	path := filepath.Join(s.dir, strings.ToLower(name))
	if data, err := os.ReadFile(path); err == nil {
		if value := strings.TrimSpace(string(data)); value != "" {
			return value
		}
	}
	return os.Getenv(name)
}
