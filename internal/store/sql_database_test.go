package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-blog-keeper/internal/config"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/models"
)

func TestNewConnectDB_UnsupportedDSN(t *testing.T) {
	for _, dsn := range []string{"mysql://root@localhost/blog", "blog.db", ""} {
		_, err := NewConnectDB(context.Background(), dsn, logger.Nop())
		assert.ErrorIs(t, err, ErrUnsupportedDSN, dsn)
	}
}

func Test_sqliteFilePath(t *testing.T) {
	assert.Equal(t, "blog.db", sqliteFilePath("file:blog.db?cache=shared"))
	assert.Equal(t, "/tmp/blog.db", sqliteFilePath("/tmp/blog.db"))
}

func Test_withSQLiteParams(t *testing.T) {
	tests := map[string]string{
		"blog.db":                   "blog.db?_foreign_keys=on&_busy_timeout=5000",
		"file:blog.db?cache=shared": "file:blog.db?cache=shared&_foreign_keys=on&_busy_timeout=5000",
		"blog.db?_foreign_keys=off": "blog.db?_foreign_keys=off&_busy_timeout=5000",
		"blog.db?_busy_timeout=100": "blog.db?_busy_timeout=100&_foreign_keys=on",
	}

	for dsn, want := range tests {
		assert.Equal(t, want, withSQLiteParams(dsn), dsn)
	}
}

func Test_touchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blog.db")

	require.NoError(t, touchFile(path))
	require.NoError(t, os.WriteFile(path, []byte("keep"), 0o600))
	require.NoError(t, touchFile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(content))

	assert.Error(t, touchFile(filepath.Join(t.TempDir(), "missing", "blog.db")))
}

func TestNewConnectPostgres_InvalidDSN(t *testing.T) {
	_, err := NewConnectPostgres(context.Background(), "postgres://localhost:notaport/blog", logger.Nop())
	assert.Error(t, err)
}

// newSQLiteStorages opens a migrated SQLite database in a temp dir. The test
// is skipped when the sqlite driver is unavailable (CGO disabled).
func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	dsn := "sqlite://" + filepath.Join(t.TempDir(), "blog.db")
	storages, err := NewStorages(context.Background(), config.Storage{
		DB:            config.DB{DSN: dsn},
		TokensBackend: config.TokensBackendDB,
	}, logger.Nop())
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	t.Cleanup(func() { _ = storages.Close() })

	return storages
}

func TestSQLiteStorages_UserAndResetTokenLifecycle(t *testing.T) {
	storages := newSQLiteStorages(t)
	ctx := context.Background()

	user := testUser()
	_, err := storages.UserRepository.CreateUser(ctx, user)
	require.NoError(t, err)

	dup := testUser()
	dup.ID = "0195d0c4-7b1e-7000-8000-000000000002"
	dup.Username = "other"
	_, err = storages.UserRepository.CreateUser(ctx, dup)
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	dup.Email = "other@example.com"
	dup.Username = user.Username
	_, err = storages.UserRepository.CreateUser(ctx, dup)
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)

	found, err := storages.UserRepository.FindUserByUsername(ctx, user.Username)
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, user.AvatarID, found.AvatarID)

	first := models.ResetToken{UserID: user.ID, Token: "first", CreatedAt: fixedNow, ExpiresAt: fixedNow.Add(15 * time.Minute)}
	second := first
	second.Token = "second"
	require.NoError(t, storages.ResetTokenStore.SaveResetToken(ctx, first))
	require.NoError(t, storages.ResetTokenStore.SaveResetToken(ctx, second))

	assert.ErrorIs(t, storages.ResetTokenStore.ConsumeResetToken(ctx, user.ID, "first"), ErrResetTokenNotFound)
	require.NoError(t, storages.ResetTokenStore.ConsumeResetToken(ctx, user.ID, "second"))
	assert.ErrorIs(t, storages.ResetTokenStore.ConsumeResetToken(ctx, user.ID, "second"), ErrResetTokenNotFound)

	_, err = storages.ResetTokenStore.FindResetToken(ctx, user.ID)
	assert.ErrorIs(t, err, ErrResetTokenNotFound)
}
