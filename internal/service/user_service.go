package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/phrazzld/podcast-api/internal/domain"
	"github.com/phrazzld/podcast-api/internal/service/auth"
	"github.com/phrazzld/podcast-api/internal/store"
)

// Fixed failure messages of the account operations.
const (
	MsgDuplicateEmail      = "There is a user with that email already"
	MsgCouldNotCreate      = "Could not create account"
	MsgLoginUserNotFound   = "User not found"
	MsgWrongPassword       = "Wrong password"
	MsgUserNotFound        = "User Not Found"
	MsgCouldNotEditProfile = "Could not update profile"
)

// CreateAccountInput holds the fields of a new account.
type CreateAccountInput struct {
	Email    string
	Password string
	Role     domain.Role
}

// LoginInput holds login credentials.
type LoginInput struct {
	Email    string
	Password string
}

// EditProfileInput holds a partial profile update. Nil fields are left unchanged;
// a present password must not be empty.
type EditProfileInput struct {
	Email    *string
	Password *string
}

// UserService provides account operations.
type UserService interface {
	// CreateAccount registers a new user unless the email is taken.
	CreateAccount(ctx context.Context, input CreateAccountInput) Result[struct{}]

	// Login checks credentials and returns a session token.
	Login(ctx context.Context, input LoginInput) Result[string]

	// FindByID returns the user without its password hash.
	FindByID(ctx context.Context, id int64) Result[*domain.User]

	// EditProfile applies the present fields of input to the user.
	// A new password is re-hashed by the store; an absent one keeps the stored hash.
	EditProfile(ctx context.Context, userID int64, input EditProfileInput) Result[struct{}]
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	users     store.UserStore
	tokens    auth.TokenService
	passwords auth.PasswordVerifier
	logger    *slog.Logger
}

var _ UserService = (*UserServiceImpl)(nil)

// NewUserService creates a new UserService
func NewUserService(
	users store.UserStore,
	tokens auth.TokenService,
	passwords auth.PasswordVerifier,
	logger *slog.Logger,
) *UserServiceImpl {
	return &UserServiceImpl{
		users:     users,
		tokens:    tokens,
		passwords: passwords,
		logger:    logger.With("component", "user_service"),
	}
}

// CreateAccount implements UserService.
func (s *UserServiceImpl) CreateAccount(
	ctx context.Context,
	input CreateAccountInput,
) Result[struct{}] {
	_, err := s.users.FindByEmail(ctx, input.Email)
	switch {
	case err == nil:
		s.logger.Debug("account creation rejected: email taken", "email", input.Email)
		return Reject[struct{}](ErrDuplicateEmail, MsgDuplicateEmail)
	case !errors.Is(err, store.ErrNotFound):
		s.logger.Error("failed to look up email before account creation",
			"error", err,
			"email", input.Email)
		return Fail[struct{}](MsgCouldNotCreate, err)
	}

	user, err := domain.NewUser(input.Email, input.Password, input.Role)
	if err != nil {
		s.logger.Debug("account creation rejected: invalid user data",
			"error", err,
			"email", input.Email)
		return Fail[struct{}](MsgCouldNotCreate, err)
	}

	if err := s.users.Save(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			s.logger.Debug("account creation rejected: email taken on write", "email", input.Email)
			return Reject[struct{}](ErrDuplicateEmail, MsgDuplicateEmail)
		}
		s.logger.Error("failed to save new user",
			"error", err,
			"email", input.Email)
		return Fail[struct{}](MsgCouldNotCreate, err)
	}

	s.logger.Info("account created",
		"user_id", user.ID,
		"role", user.Role)
	return Done()
}

// Login implements UserService.
func (s *UserServiceImpl) Login(ctx context.Context, input LoginInput) Result[string] {
	user, err := s.users.FindByEmail(ctx, input.Email, store.IncludePassword())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.logger.Debug("login rejected: unknown email", "email", input.Email)
			return Reject[string](ErrUserNotFound, MsgLoginUserNotFound)
		}
		s.logger.Error("failed to look up user for login",
			"error", err,
			"email", input.Email)
		return FailWithCause[string](err)
	}

	if err := s.passwords.Compare(user.HashedPassword, input.Password); err != nil {
		if auth.IsMismatch(err) {
			s.logger.Debug("login rejected: wrong password", "user_id", user.ID)
			return Reject[string](ErrWrongPassword, MsgWrongPassword)
		}
		s.logger.Error("failed to compare password",
			"error", err,
			"user_id", user.ID)
		return FailWithCause[string](err)
	}

	token, err := s.tokens.Sign(ctx, user.ID)
	if err != nil {
		s.logger.Error("failed to sign session token",
			"error", err,
			"user_id", user.ID)
		return FailWithCause[string](err)
	}

	s.logger.Debug("login succeeded", "user_id", user.ID)
	return Ok(token)
}

// FindByID implements UserService.
func (s *UserServiceImpl) FindByID(ctx context.Context, id int64) Result[*domain.User] {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.logger.Debug("user not found", "user_id", id)
			return Reject[*domain.User](ErrUserNotFound, MsgUserNotFound)
		}
		s.logger.Error("failed to retrieve user",
			"error", err,
			"user_id", id)
		return Fail[*domain.User](MsgUserNotFound, err)
	}

	return Ok(user)
}

// EditProfile implements UserService.
func (s *UserServiceImpl) EditProfile(
	ctx context.Context,
	userID int64,
	input EditProfileInput,
) Result[struct{}] {
	if input.Password != nil && *input.Password == "" {
		s.logger.Debug("profile update rejected: empty password", "user_id", userID)
		return Reject[struct{}](domain.ErrEmptyPassword, MsgCouldNotEditProfile)
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.logger.Debug("profile update rejected: user not found", "user_id", userID)
			return Reject[struct{}](ErrUserNotFound, MsgCouldNotEditProfile)
		}
		s.logger.Error("failed to retrieve user for profile update",
			"error", err,
			"user_id", userID)
		return Fail[struct{}](MsgCouldNotEditProfile, err)
	}

	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Password != nil {
		user.SetPassword(*input.Password)
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Save(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			s.logger.Debug("profile update rejected: email taken", "user_id", userID)
			return Reject[struct{}](ErrDuplicateEmail, MsgCouldNotEditProfile)
		}
		s.logger.Error("failed to save profile update",
			"error", err,
			"user_id", userID)
		return Fail[struct{}](MsgCouldNotEditProfile, err)
	}

	s.logger.Debug("profile updated",
		"user_id", userID,
		"email_changed", input.Email != nil,
		"password_changed", input.Password != nil)
	return Done()
}
