package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-blog-keeper/internal/config"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
)

// Storages groups the repositories used by the service layer together with
// the connections they hold.
type Storages struct {
	UserRepository  UserRepository
	ResetTokenStore ResetTokenStore

	closers []io.Closer
}

// NewStorages initialises the storage layer:
//  1. Opens the database selected by cfg.DB.DSN.
//  2. Applies the embedded schema migrations.
//  3. Chooses the reset-token backend (database table or Redis).
//
// On failure every connection opened so far is closed.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectDB(ctx, cfg.DB.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting database: %w", err)
	}

	storages := &Storages{
		UserRepository: NewUserRepository(db, log),
		closers:        []io.Closer{db},
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error migrating database")
		_ = storages.Close()
		return nil, err
	}

	switch cfg.TokensBackend {
	case config.TokensBackendRedis:
		client, err := NewRedisClient(ctx, cfg.Redis, log)
		if err != nil {
			_ = storages.Close()
			return nil, err
		}
		storages.closers = append(storages.closers, client)
		storages.ResetTokenStore = NewRedisResetTokenStore(client, cfg.Redis.Retention, log)
	default:
		storages.ResetTokenStore = NewResetTokenRepository(db, log)
	}

	log.Info().Str("func", "NewStorages").Str("tokens_backend", cfg.TokensBackend).Msg("storages initialized")

	return storages, nil
}

// Close releases every connection held by the storages.
func (s *Storages) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil

	return errors.Join(errs...)
}
