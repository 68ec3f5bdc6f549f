package store

import (
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-blog-keeper/models"
)

const (
	usersTable       = "users"
	resetTokensTable = "reset_tokens"
)

var userColumns = []string{
	"id",
	"username",
	"email",
	"password",
	"avatar",
	"avatar_id",
	"title",
	"bio",
	"firstname",
	"surname",
	"othername",
	"created_at",
	"updated_at",
}

var resetTokenColumns = []string{"user_id", "token", "expires_at", "created_at"}

// upsertResetTokenSuffix makes the insert replace the user's previous token.
// Both PostgreSQL and SQLite (3.24+) understand this clause.
const upsertResetTokenSuffix = `ON CONFLICT (user_id) DO UPDATE SET
	token = EXCLUDED.token,
	expires_at = EXCLUDED.expires_at,
	created_at = EXCLUDED.created_at`

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(userColumns...).
		Values(
			user.ID,
			user.Username,
			user.Email,
			user.Password,
			nullString(user.Avatar),
			nullString(user.AvatarID),
			user.Title,
			user.Bio,
			user.Firstname,
			user.Surname,
			user.Othername,
			user.CreatedAt,
			user.UpdatedAt,
		).
		ToSql()
}

func buildSelectUserQuery(b sq.StatementBuilderType, column, value string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{column: value}).
		Limit(1).
		ToSql()
}

// buildCountTakenQuery counts users holding value in column, skipping
// excludeUserID when it is not empty.
func buildCountTakenQuery(b sq.StatementBuilderType, column, value, excludeUserID string) (string, []any, error) {
	query := b.Select("COUNT(*)").
		From(usersTable).
		Where(sq.Eq{column: value})
	if excludeUserID != "" {
		query = query.Where(sq.NotEq{"id": excludeUserID})
	}

	return query.ToSql()
}

func buildUpdateUserDetailsQuery(b sq.StatementBuilderType, update models.UpdateDetailsRequest, now time.Time) (string, []any, error) {
	fields := map[string]*string{
		"username":  update.Username,
		"email":     update.Email,
		"firstname": update.Firstname,
		"surname":   update.Surname,
		"othername": update.Othername,
		"title":     update.Title,
		"bio":       update.Bio,
	}

	set := make(map[string]any, len(fields)+1)
	for column, value := range fields {
		if value != nil {
			set[column] = *value
		}
	}
	if len(set) == 0 {
		return "", nil, ErrNothingToUpdate
	}
	set["updated_at"] = now

	return b.Update(usersTable).
		SetMap(set).
		Where(sq.Eq{"id": update.UserID}).
		ToSql()
}

func buildUpdateUserAvatarQuery(b sq.StatementBuilderType, userID, avatar, avatarID string, now time.Time) (string, []any, error) {
	return b.Update(usersTable).
		Set("avatar", nullString(avatar)).
		Set("avatar_id", nullString(avatarID)).
		Set("updated_at", now).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildUpdateUserPasswordQuery(b sq.StatementBuilderType, userID, passwordHash string, now time.Time) (string, []any, error) {
	return b.Update(usersTable).
		Set("password", passwordHash).
		Set("updated_at", now).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildUpsertResetTokenQuery(b sq.StatementBuilderType, token models.ResetToken) (string, []any, error) {
	return b.Insert(resetTokensTable).
		Columns(resetTokenColumns...).
		Values(token.UserID, token.Token, token.ExpiresAt, token.CreatedAt).
		Suffix(upsertResetTokenSuffix).
		ToSql()
}

func buildSelectResetTokenQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Select(resetTokenColumns...).
		From(resetTokensTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildConsumeResetTokenQuery(b sq.StatementBuilderType, userID, token string) (string, []any, error) {
	return b.Delete(resetTokensTable).
		Where(sq.Eq{"user_id": userID, "token": token}).
		ToSql()
}
