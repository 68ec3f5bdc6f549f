package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/models"
)

// userRepository is the SQL implementation of [UserRepository]. It handles
// account creation, lookup and profile mutations against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CreateUser persists a new user record. CreatedAt and UpdatedAt are filled
// when the caller left them empty.
//
// Error handling:
//   - unique violation on username → [ErrUsernameAlreadyExists].
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.CreatedAt.IsZero() {
		user.CreatedAt = r.now()
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = user.CreatedAt
	}

	query, args, err := buildInsertUserQuery(r.db.builder(), user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, r.db.classify(err)
	}

	return user, nil
}

func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findUser(ctx, "id", userID)
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, "username", username)
}

func (r *userRepository) IsUsernameTaken(ctx context.Context, username, excludeUserID string) (bool, error) {
	return r.isTaken(ctx, "username", username, excludeUserID)
}

func (r *userRepository) IsEmailTaken(ctx context.Context, email, excludeUserID string) (bool, error) {
	return r.isTaken(ctx, "email", email, excludeUserID)
}

// UpdateUserDetails writes the non-nil fields of update and returns the
// resulting user.
func (r *userRepository) UpdateUserDetails(ctx context.Context, update models.UpdateDetailsRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserDetailsQuery(r.db.builder(), update, r.now())
	if errors.Is(err, ErrNothingToUpdate) {
		return models.User{}, err
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUserDetails").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execUpdate(ctx, "*userRepository.UpdateUserDetails", query, args); err != nil {
		return models.User{}, err
	}

	return r.FindUserByID(ctx, update.UserID)
}

// UpdateUserAvatar replaces avatar URL and host reference of the user.
func (r *userRepository) UpdateUserAvatar(ctx context.Context, userID, avatar, avatarID string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserAvatarQuery(r.db.builder(), userID, avatar, avatarID, r.now())
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUserAvatar").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execUpdate(ctx, "*userRepository.UpdateUserAvatar", query, args); err != nil {
		return models.User{}, err
	}

	return r.FindUserByID(ctx, userID)
}

// UpdateUserPassword overwrites the stored password hash.
func (r *userRepository) UpdateUserPassword(ctx context.Context, userID, passwordHash string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserPasswordQuery(r.db.builder(), userID, passwordHash, r.now())
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUserPassword").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execUpdate(ctx, "*userRepository.UpdateUserPassword", query, args)
}

// execUpdate runs an UPDATE addressed by user id and maps "no rows
// affected" to [ErrNoUserWasFound].
func (r *userRepository) execUpdate(ctx context.Context, funcName, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing update")
		return r.db.classify(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

func (r *userRepository) findUser(ctx context.Context, column, value string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery(r.db.builder(), column, value)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		user     models.User
		avatar   sql.NullString
		avatarID sql.NullString
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Password,
		&avatar,
		&avatarID,
		&user.Title,
		&user.Bio,
		&user.Firstname,
		&user.Surname,
		&user.Othername,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Str("by", column).Msg("error scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	user.Avatar = avatar.String
	user.AvatarID = avatarID.String

	return user, nil
}

func (r *userRepository) isTaken(ctx context.Context, column, value, excludeUserID string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountTakenQuery(r.db.builder(), column, value, excludeUserID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.isTaken").Msg("failed to build query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*userRepository.isTaken").Str("by", column).Msg("error counting users")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}
