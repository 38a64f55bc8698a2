package cli

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/aretw0/jornada/pkg/adapters/file"
	"github.com/aretw0/jornada/pkg/adapters/memory"
	"github.com/aretw0/jornada/pkg/adapters/redis"
	"github.com/aretw0/jornada/pkg/persistence/middleware"
	"github.com/aretw0/jornada/pkg/ports"
)

// createStore opens the session store selected by opts.Store, sealed with
// AES-GCM when an encryption key is configured. The returned closer releases
// its connections.
func createStore(ctx context.Context, opts Options) (ports.SessionStore, func() error, error) {
	store, closeStore, err := openStore(ctx, opts)
	if err != nil {
		return nil, nil, err
	}

	encoded := opts.encryptionKey()
	if encoded == "" {
		return store, closeStore, nil
	}
	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || len(key) != middleware.KeySize {
		return nil, nil, errors.Join(
			fmt.Errorf("%s must be a base64 encoded %d byte key", EnvEncryptionKey, middleware.KeySize),
			closeStore(),
		)
	}
	return middleware.Chain(store, middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: key})), closeStore, nil
}

func openStore(ctx context.Context, opts Options) (ports.SessionStore, func() error, error) {
	noop := func() error { return nil }

	switch opts.Store {
	case "", StoreMemory:
		return memory.NewStore(), noop, nil
	case StoreFile:
		return file.New(opts.StoreDir), noop, nil
	case StoreRedis:
		url := opts.redisURL()
		if url == "" {
			return nil, nil, fmt.Errorf("redis store needs --redis-url or %s", EnvRedisURL)
		}
		store, err := redis.NewFromURL(url)
		if err != nil {
			return nil, nil, err
		}
		if err := store.Ping(ctx); err != nil {
			return nil, nil, errors.Join(fmt.Errorf("redis unreachable: %w", err), store.Close())
		}
		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q (want %s, %s or %s)", opts.Store, StoreMemory, StoreFile, StoreRedis)
	}
}
