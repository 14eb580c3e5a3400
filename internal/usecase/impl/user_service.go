// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"

	"verifiedtutors/config"
	deliverycontext "verifiedtutors/internal/delivery/context"
	"verifiedtutors/internal/domain/entity"
	domainerrors "verifiedtutors/internal/domain/errors"
	"verifiedtutors/internal/domain/repository"
	"verifiedtutors/internal/domain/service"
	"verifiedtutors/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	googleAuthService service.OAuthAuthService
	mailer            service.Mailer
	dispatcher        usecase.NotificationDispatcher
	appBaseURL        string
	logger            *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	UserRepo          repository.UserRepository
	Hasher            service.PasswordHasher
	TokenService      service.TokenService
	GoogleAuthService service.OAuthAuthService
	Mailer            service.Mailer
	Dispatcher        usecase.NotificationDispatcher
	Config            *config.Config
	Logger            *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	appBaseURL := ""
	if params.Config != nil {
		appBaseURL = params.Config.HTTP.BaseURL
	}

	return &userService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		googleAuthService: params.GoogleAuthService,
		mailer:            params.Mailer,
		dispatcher:        params.Dispatcher,
		appBaseURL:        appBaseURL,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a local account. Tutor registrations also create the
// empty tutor profile inside the same transaction.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.Any("role", input.Role), slog.String("email", input.Email))

	if !input.Role.Selectable() {
		return nil, errors.WithStack(domainerrors.ErrRoleInvalid)
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	user := &entity.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: hash,
		Role:         input.Role,
		Provider:     entity.AuthProviderLocal,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if _, err := userRepo.FindByEmail(ctx, input.Email); err == nil {
			return errors.WithStack(domainerrors.ErrEmailAlreadyRegistered)
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing email")
		}

		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		if input.Role == entity.RoleTutor {
			tutor := &entity.Tutor{
				UserID:       user.ID,
				Verification: entity.Verification{Status: entity.VerificationPending},
			}
			if err := repoFactory.NewTutorRepository().Create(ctx, tutor); err != nil {
				return errors.Wrap(err, "failed to create tutor profile")
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	token, err := srv.tokenService.GenerateAccessToken(user.ID, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.dispatcher.Dispatch(ctx, welcomeEvent(user))

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{AccessToken: token, User: user}, nil
}

// Login authenticates a local account with email and password.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !user.HasPassword() || !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	token, err := srv.tokenService.GenerateAccessToken(user.ID, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{AccessToken: token, User: user}, nil
}

// GoogleLogin verifies a Google ID token and finds or creates the
// account. Fresh accounts are created without a role; no token is
// issued until SelectRole completes.
func (srv *userService) GoogleLogin(ctx context.Context, input usecase.GoogleLoginInput) (*usecase.AuthOutput, error) {
	oauthUser, err := srv.googleAuthService.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		return nil, domainerrors.ErrOAuthTokenInvalid.WrapMessage("google id token verification failed")
	}

	user, err := srv.userRepo.FindByGoogleID(ctx, oauthUser.ID)
	if errors.Is(err, repository.ErrUserNotFound) {
		// Fall back to email so an existing local account links instead
		// of duplicating.
		user, err = srv.userRepo.FindByEmail(ctx, oauthUser.Email)
		if errors.Is(err, repository.ErrUserNotFound) {
			return srv.createGoogleAccount(ctx, oauthUser)
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to find user by email")
		}

		user.GoogleID = oauthUser.ID
		if err := srv.userRepo.Update(ctx, user); err != nil {
			return nil, errors.Wrap(err, "failed to link google account")
		}
	} else if err != nil {
		return nil, errors.Wrap(err, "failed to find user by google id")
	}

	if user.NeedsRoleSelection() {
		return &usecase.AuthOutput{User: user, NeedsRoleSelection: true}, nil
	}

	token, err := srv.tokenService.GenerateAccessToken(user.ID, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.AuthOutput{AccessToken: token, User: user}, nil
}

func (srv *userService) createGoogleAccount(ctx context.Context, oauthUser *service.OAuthUser) (*usecase.AuthOutput, error) {
	user := &entity.User{
		ID:           uuid.New(),
		Name:         oauthUser.Name,
		Email:        oauthUser.Email,
		Role:         entity.RoleUnset,
		Provider:     entity.AuthProviderGoogle,
		GoogleID:     oauthUser.ID,
		ProfileImage: oauthUser.AvatarURL,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create google account")
	}

	srv.log(ctx).Info("Created account from google sign-in", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{User: user, NeedsRoleSelection: true}, nil
}

// SelectRole finalises an OAuth account. The role is immutable once set.
func (srv *userService) SelectRole(ctx context.Context, input usecase.SelectRoleInput) (*usecase.AuthOutput, error) {
	if !input.Role.Selectable() {
		return nil, errors.WithStack(domainerrors.ErrRoleInvalid)
	}

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		found, err := userRepo.FindByID(ctx, input.UserID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.WithStack(domainerrors.ErrUserNotFound)
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		if !found.NeedsRoleSelection() {
			return errors.WithStack(domainerrors.ErrRoleAlreadySet)
		}

		found.Role = input.Role
		if err := userRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to set role")
		}

		if input.Role == entity.RoleTutor {
			tutor := &entity.Tutor{
				UserID:       found.ID,
				Verification: entity.Verification{Status: entity.VerificationPending},
			}
			if err := repoFactory.NewTutorRepository().Create(ctx, tutor); err != nil {
				return errors.Wrap(err, "failed to create tutor profile")
			}
		}

		user = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := srv.tokenService.GenerateAccessToken(user.ID, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.dispatcher.Dispatch(ctx, welcomeEvent(user))

	return &usecase.AuthOutput{AccessToken: token, User: user}, nil
}

// GetMe returns the authenticated account.
func (srv *userService) GetMe(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.WithStack(domainerrors.ErrUserNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateProfile changes the account's basic fields.
func (srv *userService) UpdateProfile(ctx context.Context, input usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.WithStack(domainerrors.ErrUserNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}
	if input.ProfileImage != "" {
		user.ProfileImage = input.ProfileImage
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	return user, nil
}

// ChangePassword rotates the password after checking the current one.
func (srv *userService) ChangePassword(ctx context.Context, input usecase.ChangePasswordInput) error {
	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return errors.WithStack(domainerrors.ErrUserNotFound)
	}
	if err != nil {
		return errors.Wrap(err, "failed to find user")
	}

	if !user.HasPassword() || !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		return errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash new password")
	}

	user.PasswordHash = hash
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Info("Password changed", slog.Any("userID", user.ID))

	return nil
}

// ForgotPassword emails a reset link. Unlike other notification sends
// the email IS the operation, so a send failure fails the request.
// Unknown emails return success to avoid account enumeration.
func (srv *userService) ForgotPassword(ctx context.Context, email string) error {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Info("Password reset requested for unknown email")

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to find user by email")
	}

	token, err := srv.tokenService.GenerateResetToken(user.ID)
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", srv.appBaseURL, token)
	mail := &service.Mail{
		ToName:    user.Name,
		ToAddress: user.Email,
		Subject:   "Reset your VerifiedTutors password",
		PlainBody: fmt.Sprintf("Hi %s,\n\nOpen this link to reset your password: %s\n\nThe link expires shortly. If you did not request a reset, ignore this email.", user.Name, resetURL),
		HTMLBody:  fmt.Sprintf("<p>Hi %s,</p><p><a href=%q>Reset your password</a>. The link expires shortly.</p><p>If you did not request a reset, ignore this email.</p>", user.Name, resetURL),
	}
	if err := srv.mailer.Send(ctx, mail); err != nil {
		return errors.Wrap(err, "failed to send password reset email")
	}

	srv.log(ctx).Info("Password reset email sent", slog.Any("userID", user.ID))

	return nil
}

// ResetPassword completes the reset from the emailed token.
func (srv *userService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) error {
	claims, err := srv.tokenService.ValidateToken(input.Token)
	if err != nil || claims.Type != service.TokenTypeReset {
		return errors.WithStack(domainerrors.ErrTokenInvalid)
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return errors.WithStack(domainerrors.ErrTokenInvalid)
	}
	if err != nil {
		return errors.Wrap(err, "failed to find user")
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash new password")
	}

	user.PasswordHash = hash
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Info("Password reset completed", slog.Any("userID", user.ID))

	return nil
}

func welcomeEvent(user *entity.User) *usecase.NotificationEvent {
	return &usecase.NotificationEvent{
		UserID:       user.ID,
		Type:         entity.NotificationSystem,
		Category:     entity.CategorySuccess,
		Title:        "Welcome to VerifiedTutors",
		Message:      fmt.Sprintf("Welcome, %s. Your %s account is ready.", user.Name, user.Role),
		Priority:     entity.PriorityNormal,
		EmailSubject: "Welcome to VerifiedTutors",
		EmailHTMLBody: fmt.Sprintf(
			"<p>Hi %s,</p><p>Your %s account is ready. Log in to complete your profile.</p>",
			user.Name, user.Role,
		),
	}
}
