// Package appconfig holds the fixed constants of the managed meetx stack and
// the host paths meetxctl owns.
package appconfig

import (
	"os"
	"path/filepath"
)

const (
	// ComposeProject is the fixed docker compose project name for the stack.
	ComposeProject = "meetx"

	// ComposeFile is the compose definition at the project root.
	ComposeFile = "docker-compose.yml"

	// AppPort is where uvicorn serves the application.
	AppPort = 8000

	// AppEntrypoint is the uvicorn import string of the application.
	AppEntrypoint = "app.main:app"

	// AgentModule is the speech-recognition sidecar module.
	AgentModule = "app.services.agent"

	// StackNetwork is the isolated network the compose stack attaches to.
	StackNetwork = "meetx-network"

	// DBService is the compose service running Postgres.
	DBService = "db"

	// DBUser and DBName are the credentials for the interactive psql shell.
	DBUser = "postgres"
	DBName = "meetx"
)

// ImageRepo is the registry-qualified repository docker-push tags into.
// Overridable for forks and staging registries.
func ImageRepo() string {
	if repo := os.Getenv("MEETX_IMAGE_REPO"); repo != "" {
		return repo
	}
	return "nourabuild/meetx-api"
}

// EnvFile is the environment file handed to docker compose.
func EnvFile() string {
	if path := os.Getenv("MEETX_ENV_FILE"); path != "" {
		return path
	}
	return ".env"
}

// RegistryCredentials returns the push credentials, empty when the daemon's
// own login should be used.
func RegistryCredentials() (username, password string) {
	return os.Getenv("MEETX_REGISTRY_USERNAME"), os.Getenv("MEETX_REGISTRY_PASSWORD")
}

func ConfigBasePath() string {
	homedir, err := os.UserHomeDir()
	if err != nil {
		homedir = "/usr/local/config/meetxctl"
	}

	return filepath.Join(homedir, ".config", "meetxctl")
}

func StateDBFile() string {
	return filepath.Join(ConfigBasePath(), "state.db")
}
