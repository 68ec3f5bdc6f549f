package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-blog-keeper/internal/adapter"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/mock"
	"github.com/MKhiriev/go-blog-keeper/internal/store"
	"github.com/MKhiriev/go-blog-keeper/internal/validators"
	"github.com/MKhiriev/go-blog-keeper/models"
)

func newTestUserSvc(t *testing.T, ctrl *gomock.Controller) (UserService, *mock.MockUserRepository, *mock.MockImageHost) {
	t.Helper()

	users := mock.NewMockUserRepository(ctrl)
	host := mock.NewMockImageHost(ctrl)

	return NewUserService(users, host, time.Second, logger.Nop()), users, host
}

func userWithAvatar(avatarID string) models.User {
	return models.User{ID: "u1", Username: "johndoe", Avatar: "https://img/old.png", AvatarID: avatarID}
}

func strPtr(s string) *string { return &s }

// ── ReplaceAvatar ───────────────────────────────────────────────────────────

func TestReplaceAvatar_DeletesOldThenUpdates(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, host := newTestUserSvc(t, ctrl)
	update := models.AvatarUpdate{Avatar: "https://img/new.png", AvatarID: "new"}

	updated := userWithAvatar("new")
	updated.Avatar = update.Avatar

	gomock.InOrder(
		users.EXPECT().FindUserByID(gomock.Any(), "u1").Return(userWithAvatar("old"), nil),
		host.EXPECT().Delete(gomock.Any(), "old").Return(nil),
		users.EXPECT().UpdateUserAvatar(gomock.Any(), "u1", update.Avatar, update.AvatarID).Return(updated, nil),
	)

	profile, err := svc.ReplaceAvatar(context.Background(), "u1", update)
	require.NoError(t, err)
	assert.Equal(t, update.Avatar, profile.Avatar)
}

func TestReplaceAvatar_NoHostCall(t *testing.T) {
	tests := []struct {
		name  string
		oldID string
		newID string
	}{
		{name: "no previous avatar", oldID: "", newID: "new"},
		{name: "same id", oldID: "same", newID: "same"},
		{name: "no ids at all", oldID: "", newID: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, users, _ := newTestUserSvc(t, ctrl)

			users.EXPECT().FindUserByID(gomock.Any(), "u1").Return(userWithAvatar(tt.oldID), nil)
			users.EXPECT().UpdateUserAvatar(gomock.Any(), "u1", "https://img/new.png", tt.newID).Return(userWithAvatar(tt.newID), nil)

			_, err := svc.ReplaceAvatar(context.Background(), "u1", models.AvatarUpdate{Avatar: "https://img/new.png", AvatarID: tt.newID})
			assert.NoError(t, err)
		})
	}
}

func TestReplaceAvatar_OldDeleteFails_CompensatesAndAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, host := newTestUserSvc(t, ctrl)
	hostErr := errors.New("host down")

	gomock.InOrder(
		users.EXPECT().FindUserByID(gomock.Any(), "u1").Return(userWithAvatar("old"), nil),
		host.EXPECT().Delete(gomock.Any(), "old").Return(hostErr),
		host.EXPECT().Delete(gomock.Any(), "new").Return(errors.New("still down")),
	)
	// UpdateUserAvatar must not be called

	_, err := svc.ReplaceAvatar(context.Background(), "u1", models.AvatarUpdate{Avatar: "https://img/new.png", AvatarID: "new"})
	assert.ErrorIs(t, err, ErrAvatarUpdateAborted)
	assert.ErrorIs(t, err, hostErr)
}

func TestReplaceAvatar_CleanupOutlivesRequestDeadline(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, host := newTestUserSvc(t, ctrl)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var cleanupCtxErr error
	var cleanupDeadline bool
	gomock.InOrder(
		users.EXPECT().FindUserByID(gomock.Any(), "u1").Return(userWithAvatar("old"), nil),
		host.EXPECT().Delete(gomock.Any(), "old").DoAndReturn(func(ctx context.Context, _ string) error {
			<-ctx.Done()
			return ctx.Err()
		}),
		host.EXPECT().Delete(gomock.Any(), "new").DoAndReturn(func(ctx context.Context, _ string) error {
			cleanupCtxErr = ctx.Err()
			_, cleanupDeadline = ctx.Deadline()
			return nil
		}),
	)

	_, err := svc.ReplaceAvatar(ctx, "u1", models.AvatarUpdate{Avatar: "https://img/new.png", AvatarID: "new"})
	assert.ErrorIs(t, err, ErrAvatarUpdateAborted)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NoError(t, cleanupCtxErr, "cleanup must not inherit the expired request context")
	assert.True(t, cleanupDeadline, "cleanup must be bounded by its own timeout")
}

func TestReplaceAvatar_OldDeleteFails_NoNewID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, host := newTestUserSvc(t, ctrl)

	users.EXPECT().FindUserByID(gomock.Any(), "u1").Return(userWithAvatar("old"), nil)
	host.EXPECT().Delete(gomock.Any(), "old").Return(adapter.ErrHostUnavailable).Times(1)

	_, err := svc.ReplaceAvatar(context.Background(), "u1", models.AvatarUpdate{Avatar: "https://img/new.png"})
	assert.ErrorIs(t, err, ErrAvatarUpdateAborted)
}

func TestReplaceAvatar_UserMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestUserSvc(t, ctrl)

	users.EXPECT().FindUserByID(gomock.Any(), "u1").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.ReplaceAvatar(context.Background(), "u1", models.AvatarUpdate{Avatar: "https://img/new.png"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestReplaceAvatar_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestUserSvc(t, ctrl)

	_, err := svc.ReplaceAvatar(context.Background(), "", models.AvatarUpdate{Avatar: "https://img/new.png"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── GetProfile / UpdateDetails ──────────────────────────────────────────────

func TestGetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestUserSvc(t, ctrl)

	users.EXPECT().FindUserByID(gomock.Any(), "u1").Return(models.User{ID: "u1", Username: "johndoe", Password: "hash", AvatarID: "a"}, nil)

	profile, err := svc.GetProfile(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "johndoe", profile.Username)
}

func TestUpdateDetails_ChecksUniquenessExcludingSelf(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestUserSvc(t, ctrl)
	req := models.UpdateDetailsRequest{UserID: "u1", Email: strPtr("me@example.com"), Username: strPtr("johndoe")}

	gomock.InOrder(
		users.EXPECT().IsEmailTaken(gomock.Any(), "me@example.com", "u1").Return(false, nil),
		users.EXPECT().IsUsernameTaken(gomock.Any(), "johndoe", "u1").Return(false, nil),
		users.EXPECT().UpdateUserDetails(gomock.Any(), req).Return(models.User{ID: "u1", Email: "me@example.com"}, nil),
	)

	profile, err := svc.UpdateDetails(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "me@example.com", profile.Email)
}

func TestUpdateDetails_Conflicts(t *testing.T) {
	t.Run("email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, users, _ := newTestUserSvc(t, ctrl)

		users.EXPECT().IsEmailTaken(gomock.Any(), "taken@example.com", "u1").Return(true, nil)

		_, err := svc.UpdateDetails(context.Background(), models.UpdateDetailsRequest{UserID: "u1", Email: strPtr("taken@example.com")})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("username", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, users, _ := newTestUserSvc(t, ctrl)

		users.EXPECT().IsUsernameTaken(gomock.Any(), "taken", "u1").Return(true, nil)

		_, err := svc.UpdateDetails(context.Background(), models.UpdateDetailsRequest{UserID: "u1", Username: strPtr("taken")})
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("race on write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, users, _ := newTestUserSvc(t, ctrl)

		users.EXPECT().IsUsernameTaken(gomock.Any(), "late", "u1").Return(false, nil)
		users.EXPECT().UpdateUserDetails(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUsernameAlreadyExists)

		_, err := svc.UpdateDetails(context.Background(), models.UpdateDetailsRequest{UserID: "u1", Username: strPtr("late")})
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})
}

func TestUpdateDetails_NothingToUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestUserSvc(t, ctrl)

	users.EXPECT().UpdateUserDetails(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrNothingToUpdate)

	_, err := svc.UpdateDetails(context.Background(), models.UpdateDetailsRequest{UserID: "u1"})
	assert.ErrorIs(t, err, validators.ErrValidation)
}
