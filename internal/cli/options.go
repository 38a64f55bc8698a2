package cli

import "os"

const (
	// EnvRedisURL overrides the Redis URL when --redis-url is not given.
	EnvRedisURL = "JORNADA_REDIS_URL"
	// EnvEncryptionKey holds a base64 AES-256 key. When set, session records
	// are sealed before they reach the store.
	EnvEncryptionKey = "JORNADA_ENCRYPTION_KEY"
)

// Store backends accepted by --store.
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreRedis  = "redis"
)

// Options holds the configuration shared by every command.
type Options struct {
	// Modules lists YAML module files or directories. Empty means the
	// built-in onboarding catalog.
	Modules  []string
	Lenient  bool
	Debug    bool
	Store    string
	StoreDir string
	RedisURL string
	// EncryptionKey is a base64 AES-256 key; empty falls back to
	// EnvEncryptionKey.
	EncryptionKey string
	// SessionID resumes (or names) a session. Empty starts an anonymous one.
	SessionID string
}

func (o Options) redisURL() string {
	if o.RedisURL != "" {
		return o.RedisURL
	}
	return os.Getenv(EnvRedisURL)
}

func (o Options) encryptionKey() string {
	if o.EncryptionKey != "" {
		return o.EncryptionKey
	}
	return os.Getenv(EnvEncryptionKey)
}
