package config

import (
	"fmt"
	"strings"
)

// VaultBackend selects where session state is persisted.
type VaultBackend string

const (
	// VaultBackendFile stores state in a single JSON file. Suits the
	// default single-workstation deployment.
	VaultBackendFile VaultBackend = "file"
	// VaultBackendRedis stores state in Redis for multi-replica setups.
	VaultBackendRedis VaultBackend = "redis"
)

// UnmarshalText implements encoding.TextUnmarshaler for VaultBackend.
func (v *VaultBackend) UnmarshalText(text []byte) error {
	val := strings.ToLower(string(text))
	switch val {
	case "file", "redis":
		*v = VaultBackend(val)
		return nil
	default:
		return fmt.Errorf("invalid VaultBackend: %q (valid options: file, redis)", val)
	}
}

// VaultConfig configures the persistent state vault.
type VaultConfig struct {
	// Backend selects the vault implementation.
	Backend VaultBackend `env:"BACKEND" envDefault:"file"`

	// FilePath is where the file backend keeps its JSON store.
	FilePath string `env:"FILE_PATH" envDefault:"toolrent-session.json"`

	// Redis connection settings (used when Backend=redis).
	RedisAddr     string `env:"REDIS_ADDR"     envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"REDIS_DB"       envDefault:"0"`
	RedisPrefix   string `env:"REDIS_PREFIX"   envDefault:"toolrent:gateway:"`
}

// Sanitize applies guardrails to vault configuration values.
func (v *VaultConfig) Sanitize() {
	if v.Backend == "" {
		v.Backend = VaultBackendFile
	}
	if v.FilePath == "" {
		v.FilePath = "toolrent-session.json"
	}
}
