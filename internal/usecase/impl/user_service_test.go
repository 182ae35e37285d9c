package impl

import (
	"context"
	"testing"

	"medbotanica/config"
	"medbotanica/internal/domain/entity"
	domainerrors "medbotanica/internal/domain/errors"
	"medbotanica/internal/domain/repository"
	"medbotanica/internal/domain/service"
	"medbotanica/internal/infra/auth"
	mockRepo "medbotanica/internal/mocks/repository"
	mockSvc "medbotanica/internal/mocks/service"
	"medbotanica/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	svc := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      svc,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
	}
	userID := uuid.New()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, "hashed_password", user.HashedPassword)
			assert.Equal(t, entity.RoleUser, user.Role)
			user.ID = userID
		}).
		Return(nil)
	fx.tokenService.EXPECT().Issue(userID.String()).Return("access-token", nil)

	output, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, userID, output.User.ID)
	assert.Equal(t, "access-token", output.AccessToken)
}

func TestUserService_RegisterUser_KeepsContributorRole(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Name:     "Botanist",
		Email:    "botanist@example.com",
		Password: "Password123!",
		Role:     "contributor",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)
	fx.tokenService.EXPECT().Issue(mock.AnythingOfType("string")).Return("access-token", nil)

	output, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleContributor, output.User.Role)
}

func TestUserService_RegisterUser_HashFailure(t *testing.T) {
	fx := createTestUserService(t)

	input := &usecase.RegisterUserInput{Name: "Test", Email: "test@example.com", Password: "Password123!"}
	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("boom"))

	output, err := fx.service.RegisterUser(context.Background(), input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestUserService_RegisterUser_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{Name: "Test", Email: "taken@example.com", Password: "Password123!"}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered"))

	output, err := fx.service.RegisterUser(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_RegisterUser_TokenFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{Name: "Test", Email: "test@example.com", Password: "Password123!"}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.tokenService.EXPECT().Issue(mock.AnythingOfType("string")).Return("", service.ErrEmptySubject)

	output, err := fx.service.RegisterUser(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenIssueFailed))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com", HashedPassword: "hashed"}
	input := &usecase.LoginInput{Email: user.Email, Password: "Password123!"}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	fx.hasher.EXPECT().Verify(input.Password, user.HashedPassword).Return(true, nil)
	fx.tokenService.EXPECT().Issue(user.ID.String()).Return("access-token", nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com", HashedPassword: "hashed"}
	input := &usecase.LoginInput{Email: user.Email, Password: "wrong"}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	fx.hasher.EXPECT().Verify(input.Password, user.HashedPassword).Return(false, nil)

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever1"}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	// The dummy hash is computed once and then verified against.
	fx.hasher.EXPECT().Hash(timingDummyPassword).Return("dummy-hash", nil).Once()
	fx.hasher.EXPECT().Verify(input.Password, "dummy-hash").Return(false, nil).Twice()

	for range 2 {
		output, err := fx.service.Login(ctx, input)

		assert.Nil(t, output)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	}
}

func TestUserService_Login_CorruptStoredHash(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com", HashedPassword: "not-bcrypt"}
	input := &usecase.LoginInput{Email: user.Email, Password: "Password123!"}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	fx.hasher.EXPECT().
		Verify(input.Password, user.HashedPassword).
		Return(false, errors.Wrap(service.ErrCredentialFormat, "bad hash"))

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInternalError))
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_RepositoryFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "test@example.com", Password: "Password123!"}
	dbErr := errors.New("connection reset")

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, dbErr)

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, dbErr))
}

func TestUserService_GetCurrentUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("found", func(t *testing.T) {
		fx := createTestUserService(t)
		user := &entity.User{ID: userID, Email: "test@example.com"}
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

		got, err := fx.service.GetCurrentUser(ctx, userID.String())

		require.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("subject is not a uuid", func(t *testing.T) {
		fx := createTestUserService(t)

		got, err := fx.service.GetCurrentUser(ctx, "user-42")

		assert.Nil(t, got)
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})

	t.Run("user deleted", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

		got, err := fx.service.GetCurrentUser(ctx, userID.String())

		assert.Nil(t, got)
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})
}

func TestUserService_RegisterThenLogin_RealCredentials(t *testing.T) {
	ctx := context.Background()
	cfg := newTestConfig(0)
	cfg.JWT = config.JWTConfig{Secret: "integration-secret", Algorithm: "HS256", ExpMinutes: 5}

	hasher, err := auth.NewBcryptHasher(cfg)
	require.NoError(t, err)
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokens,
		Logger:       newDiscardLogger(),
	})

	var stored *entity.User
	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
			stored = user
		}).
		Return(nil)

	registered, err := svc.RegisterUser(ctx, &usecase.RegisterUserInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", stored.HashedPassword)

	claims, err := tokens.Verify(registered.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, stored.ID.String(), claims.Subject)

	userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(stored, nil)

	loggedIn, err := svc.Login(ctx, &usecase.LoginInput{Email: "ana@example.com", Password: "correct horse battery"})
	require.NoError(t, err)
	assert.NotEqual(t, registered.AccessToken, loggedIn.AccessToken)

	_, err = svc.Login(ctx, &usecase.LoginInput{Email: "ana@example.com", Password: "wrong horse battery"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}
