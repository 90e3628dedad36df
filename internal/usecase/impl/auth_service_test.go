package impl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tuition/internal/domain/entity"
	domainerrors "tuition/internal/domain/errors"
	"tuition/internal/domain/repository"
	mockSvc "tuition/internal/mocks/service"
	"tuition/internal/usecase"
)

type authFixtures struct {
	service usecase.AuthUsecase
	repos   *repoMocks
	hasher  *mockSvc.MockPasswordHasher
	tokens  *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authFixtures {
	repos := newRepoMocks(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		TxManager:    newTxManager(t, repos),
		Hasher:       hasher,
		TokenService: tokens,
		Logger:       newTestLogger(),
	})

	return authFixtures{
		service: service,
		repos:   repos,
		hasher:  hasher,
		tokens:  tokens,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength("Secret#Pass9").Return(nil).Once()
	fx.hasher.EXPECT().Hash("Secret#Pass9").Return("hashed", nil).Once()
	fx.repos.user.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "tutor@example.com" && u.PasswordHash == "hashed" && u.Role == entity.RoleTeacher
		})).
		Return(nil).
		Once()
	fx.tokens.EXPECT().GenerateAccessToken(mock.Anything, []string{"teacher"}).Return("signed.jwt", nil).Once()
	fx.tokens.EXPECT().AccessTokenTTL().Return(15 * time.Minute).Once()

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Tutor",
		Email:    " Tutor@Example.com ",
		Password: "Secret#Pass9",
		Role:     entity.RoleTeacher,
	})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt", out.AccessToken)
	assert.Equal(t, "Bearer", out.TokenType)
	assert.Equal(t, int64(900), out.ExpiresIn)
	assert.Equal(t, "tutor@example.com", out.User.Email)
}

func TestAuthService_Register_RejectsAdminRole(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Root",
		Email:    "root@example.com",
		Password: "Secret#Pass9",
		Role:     entity.RoleAdmin,
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidEnum)
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t)

	fx.hasher.EXPECT().
		ValidatePasswordStrength("short").
		Return(domainerrors.ErrPasswordStrength.WithDetails("password must be at least 8 characters long")).
		Once()

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Student",
		Email:    "student@example.com",
		Password: "short",
		Role:     entity.RoleStudent,
	})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength(mock.Anything).Return(nil).Once()
	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil).Once()
	fx.repos.user.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateEmail).Once()

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Student",
		Email:    "student@example.com",
		Password: "Secret#Pass9",
		Role:     entity.RoleStudent,
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "admin@example.com",
		PasswordHash: "hashed",
		Role:         entity.RoleAdmin,
	}

	t.Run("success", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.repos.user.EXPECT().FindByEmail(ctx, "admin@example.com").Return(user, nil).Once()
		fx.hasher.EXPECT().Check("Secret#Pass9", "hashed").Return(true).Once()
		fx.tokens.EXPECT().GenerateAccessToken(user.ID, []string{"admin"}).Return("signed.jwt", nil).Once()
		fx.tokens.EXPECT().AccessTokenTTL().Return(time.Hour).Once()

		out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "Admin@Example.com", Password: "Secret#Pass9"})

		require.NoError(t, err)
		assert.Equal(t, user, out.User)
		assert.Equal(t, int64(3600), out.ExpiresIn)
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.repos.user.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound).Once()

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.repos.user.EXPECT().FindByEmail(ctx, "admin@example.com").Return(user, nil).Once()
		fx.hasher.EXPECT().Check("nope", "hashed").Return(false).Once()

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "admin@example.com", Password: "nope"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}
