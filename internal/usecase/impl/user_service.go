// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "medbotanica/internal/delivery/context"
	"medbotanica/internal/domain/entity"
	domainerrors "medbotanica/internal/domain/errors"
	"medbotanica/internal/domain/repository"
	"medbotanica/internal/domain/service"
	"medbotanica/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// timingDummyPassword is hashed once and verified against when an email is
// unknown, so a missing account costs the same bcrypt work as a wrong password.
const timingDummyPassword = "medbotanica-timing-dummy-password"

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger

	dummyHash func() (string, error)
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
		dummyHash: sync.OnceValues(func() (string, error) {
			return params.Hasher.Hash(timingDummyPassword)
		}),
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser hashes the password, stores the account and logs the user in.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Name:           input.Name,
		Email:          input.Email,
		HashedPassword: hashedPassword,
		Role:           entity.RoleOrDefault(input.Role),
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	token, err := srv.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return &usecase.RegisterOutput{User: user, AccessToken: token}, nil
}

// Login checks the email/password pair and issues an access token.
// Unknown email and wrong password are indistinguishable to the caller.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.burnVerify(ctx, input.Password)
		srv.log(ctx).Info("Login failed: unknown email")

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	ok, err := srv.hasher.Verify(input.Password, user.HashedPassword)
	if err != nil {
		// A stored hash we cannot parse is data corruption, not a client error.
		srv.log(ctx).Error("Stored password hash is unreadable", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}
	if !ok {
		srv.log(ctx).Info("Login failed: password mismatch", slog.Any("userID", user.ID))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	token, err := srv.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}

	return &usecase.LoginOutput{AccessToken: token, User: user}, nil
}

// GetCurrentUser maps the token subject to a user. A subject that does not
// resolve is reported as unauthorized, the same as a bad token.
func (srv *userService) GetCurrentUser(ctx context.Context, subject string) (*entity.User, error) {
	userID, err := uuid.Parse(subject)
	if err != nil {
		srv.log(ctx).Warn("Token subject is not a user id", slog.String("subject", subject))

		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Token subject has no user", slog.Any("userID", userID))

		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

func (srv *userService) issueToken(ctx context.Context, user *entity.User) (string, error) {
	token, err := srv.tokenService.Issue(user.ID.String())
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", slog.Any("userID", user.ID), slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	return token, nil
}

func (srv *userService) burnVerify(ctx context.Context, password string) {
	hash, err := srv.dummyHash()
	if err != nil {
		srv.log(ctx).Warn("Failed to prepare timing dummy hash", slog.Any("error", err))

		return
	}

	_, _ = srv.hasher.Verify(password, hash)
}
