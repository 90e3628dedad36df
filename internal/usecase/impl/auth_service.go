package impl

import (
	"context"
	"log/slog"
	"strings"

	"go.uber.org/fx"

	deliverycontext "tuition/internal/delivery/context"
	"tuition/internal/domain/entity"
	domainerrors "tuition/internal/domain/errors"
	"tuition/internal/domain/repository"
	"tuition/internal/domain/service"
	"tuition/internal/errors"
	"tuition/internal/usecase"
)

const tokenTypeBearer = "Bearer"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a teacher or student account and signs the user in.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	srv.log(ctx).Info("Registering user", slog.String("email", email), slog.String("role", input.Role.String()))

	if input.Role != entity.RoleTeacher && input.Role != entity.RoleStudent {
		return nil, domainerrors.ErrInvalidEnum.WithDetails("role must be teacher or student")
	}
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:        email,
		Name:         strings.TrimSpace(input.Name),
		PasswordHash: hash,
		Role:         input.Role,
	}
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Create(ctx, user)
	})
	if err != nil {
		return nil, translateError(err, "failed to register user")
	}

	return srv.issue(user)
}

// Login verifies the credentials and issues an access token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		user, err = repoFactory.UserRepo().FindByEmail(ctx, email)

		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, translateError(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login rejected", slog.String("userID", user.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issue(user)
}

func (srv *authService) issue(user *entity.User) (*usecase.AuthOutput, error) {
	token, err := srv.tokenService.GenerateAccessToken(user.ID, []string{user.Role.String()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.AuthOutput{
		User:        user,
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		ExpiresIn:   int64(srv.tokenService.AccessTokenTTL().Seconds()),
	}, nil
}
