package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"time"

	"retrokick/config"
	deliverycontext "retrokick/internal/delivery/context"
	"retrokick/internal/domain/entity"
	domainerrors "retrokick/internal/domain/errors"
	"retrokick/internal/domain/repository"
	"retrokick/internal/domain/service"
	"retrokick/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager     repository.TransactionManager
	userRepo      repository.UserRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	dispatcher    service.MailDispatcher
	adminEmail    string
	adminPassword string
	logger        *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Dispatcher   service.MailDispatcher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	adminEmail, adminPassword := "", ""
	if params.Config != nil && params.Config.Admin != nil {
		adminEmail = params.Config.Admin.Email
		adminPassword = params.Config.Admin.Password
	}

	return &userService{
		txManager:     params.TxManager,
		userRepo:      params.UserRepo,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		dispatcher:    params.Dispatcher,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
		logger:        params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers a new customer. The email pre-check gives a clean
// error for the common case; the unique constraint still backstops
// concurrent signups of the same address.
func (srv *userService) Signup(ctx context.Context, input usecase.SignupInput) (*usecase.SignupOutput, error) {
	srv.log(ctx).Info("Starting signup", slog.String("email", input.Email))

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing email")
		}

		return userRepo.Create(ctx, user)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute signup transaction",
			slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.dispatcher.Enqueue(welcomeMail(user))

	srv.log(ctx).Debug("Signup completed", slog.Any("userID", user.ID))

	return &usecase.SignupOutput{User: user}, nil
}

// Login checks the customer's credentials and issues a token pair with
// the customer role. A sign-in notification carrying the caller IP is
// enqueued on success.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(
		user.ID.String(), []string{service.RoleCustomer})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.dispatcher.Enqueue(loginAlertMail(user, input.ClientIP, time.Now()))

	srv.log(ctx).Info("Customer logged in",
		slog.Any("userID", user.ID), slog.String("clientIP", input.ClientIP))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// AdminLogin checks the configured credential pair and issues a token
// pair with the admin role. Both comparisons are constant-time.
func (srv *userService) AdminLogin(ctx context.Context, input usecase.AdminLoginInput) (*usecase.AdminLoginOutput, error) {
	emailMatch := subtle.ConstantTimeCompare([]byte(input.Email), []byte(srv.adminEmail))
	passwordMatch := subtle.ConstantTimeCompare([]byte(input.Password), []byte(srv.adminPassword))
	if srv.adminEmail == "" || emailMatch != 1 || passwordMatch != 1 {
		srv.log(ctx).Warn("Admin login rejected", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(
		srv.adminEmail, []string{service.RoleAdmin})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate admin tokens")
	}

	srv.log(ctx).Info("Admin logged in", slog.String("email", srv.adminEmail))

	return &usecase.AdminLoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Email:        srv.adminEmail,
	}, nil
}
