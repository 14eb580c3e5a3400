package impl

import (
	"context"
	"strings"
	"testing"

	"verifiedtutors/internal/domain/entity"
	domainerrors "verifiedtutors/internal/domain/errors"
	"verifiedtutors/internal/domain/repository"
	"verifiedtutors/internal/domain/service"
	mockRepo "verifiedtutors/internal/mocks/repository"
	mockService "verifiedtutors/internal/mocks/service"
	mockUsecase "verifiedtutors/internal/mocks/usecase"
	"verifiedtutors/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceMocks struct {
	txManager  *mockRepo.MockTransactionManager
	userRepo   *mockRepo.MockUserRepository
	hasher     *mockService.MockPasswordHasher
	tokenSvc   *mockService.MockTokenService
	googleAuth *mockService.MockOAuthAuthService
	mailer     *mockService.MockMailer
	dispatcher *mockUsecase.MockNotificationDispatcher
}

func newUserService(t *testing.T) (usecase.UserUsecase, *userServiceMocks) {
	m := &userServiceMocks{
		txManager:  mockRepo.NewMockTransactionManager(t),
		userRepo:   mockRepo.NewMockUserRepository(t),
		hasher:     mockService.NewMockPasswordHasher(t),
		tokenSvc:   mockService.NewMockTokenService(t),
		googleAuth: mockService.NewMockOAuthAuthService(t),
		mailer:     mockService.NewMockMailer(t),
		dispatcher: mockUsecase.NewMockNotificationDispatcher(t),
	}

	svc := NewUserService(UserServiceParams{
		TxManager:         m.txManager,
		UserRepo:          m.userRepo,
		Hasher:            m.hasher,
		TokenService:      m.tokenSvc,
		GoogleAuthService: m.googleAuth,
		Mailer:            m.mailer,
		Dispatcher:        m.dispatcher,
		Config:            newTestConfig(),
		Logger:            newDiscardLogger(),
	})

	return svc, m
}

func TestUserService_Register_StudentIssuesToken(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().NewUserRepository().Return(txUserRepo)
	expectTx(m.txManager, factory)

	m.hasher.EXPECT().Hash("secret-password").Return("hashed", nil)
	txUserRepo.EXPECT().FindByEmail(ctx, "nimal@example.lk").Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	m.tokenSvc.EXPECT().GenerateAccessToken(mock.AnythingOfType("uuid.UUID"), "student").Return("access-token", nil)
	m.dispatcher.EXPECT().
		Dispatch(ctx, mock.MatchedBy(func(event *usecase.NotificationEvent) bool {
			return event.Title == "Welcome to VerifiedTutors" && event.EmailSubject != ""
		})).
		Return()

	out, err := svc.Register(ctx, usecase.RegisterInput{
		Name:     "Nimal Perera",
		Email:    "nimal@example.lk",
		Password: "secret-password",
		Role:     entity.RoleStudent,
	})
	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, entity.RoleStudent, out.User.Role)
	assert.Equal(t, "hashed", out.User.PasswordHash)
	assert.Equal(t, entity.AuthProviderLocal, out.User.Provider)
}

func TestUserService_Register_TutorCreatesEmptyProfile(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txTutorRepo := mockRepo.NewMockTutorRepository(t)
	factory.EXPECT().NewUserRepository().Return(txUserRepo)
	factory.EXPECT().NewTutorRepository().Return(txTutorRepo)
	expectTx(m.txManager, factory)

	m.hasher.EXPECT().Hash("secret-password").Return("hashed", nil)
	txUserRepo.EXPECT().FindByEmail(ctx, "kumari@example.lk").Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	txTutorRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(tutor *entity.Tutor) bool {
			return tutor.Verification.Status == entity.VerificationPending && !tutor.Verification.IsVerified
		})).
		Return(nil)
	m.tokenSvc.EXPECT().GenerateAccessToken(mock.AnythingOfType("uuid.UUID"), "tutor").Return("access-token", nil)
	m.dispatcher.EXPECT().Dispatch(ctx, mock.AnythingOfType("*usecase.NotificationEvent")).Return()

	out, err := svc.Register(ctx, usecase.RegisterInput{
		Name:     "Kumari Silva",
		Email:    "kumari@example.lk",
		Password: "secret-password",
		Role:     entity.RoleTutor,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleTutor, out.User.Role)
}

func TestUserService_Register_AdminRoleRejected(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.Register(context.Background(), usecase.RegisterInput{
		Name:     "Someone",
		Email:    "someone@example.lk",
		Password: "secret-password",
		Role:     entity.RoleAdmin,
	})
	assert.ErrorIs(t, err, domainerrors.ErrRoleInvalid)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().NewUserRepository().Return(txUserRepo)
	expectTx(m.txManager, factory)

	m.hasher.EXPECT().Hash("secret-password").Return("hashed", nil)
	txUserRepo.EXPECT().FindByEmail(ctx, "taken@example.lk").Return(&entity.User{ID: uuid.New()}, nil)

	_, err := svc.Register(ctx, usecase.RegisterInput{
		Name:     "Someone",
		Email:    "taken@example.lk",
		Password: "secret-password",
		Role:     entity.RoleStudent,
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestUserService_Login_Success(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Email: "nimal@example.lk", PasswordHash: "hashed", Role: entity.RoleStudent}

	m.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	m.hasher.EXPECT().Check("secret-password", "hashed").Return(true)
	m.tokenSvc.EXPECT().GenerateAccessToken(user.ID, "student").Return("access-token", nil)

	out, err := svc.Login(ctx, usecase.LoginInput{Email: user.Email, Password: "secret-password"})
	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, user, out.User)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Email: "nimal@example.lk", PasswordHash: "hashed"}

	m.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	m.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, err := svc.Login(ctx, usecase.LoginInput{Email: user.Email, Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_GoogleOnlyAccountHasNoPassword(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Email: "nimal@example.lk", Provider: entity.AuthProviderGoogle}

	m.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)

	_, err := svc.Login(ctx, usecase.LoginInput{Email: user.Email, Password: "anything"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_GoogleLogin_ExistingAccount(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()

	oauthUser := &service.OAuthUser{ID: "google-123", Email: "nimal@example.lk"}
	user := &entity.User{ID: uuid.New(), GoogleID: "google-123", Role: entity.RoleStudent}

	m.googleAuth.EXPECT().VerifyIDToken(ctx, "id-token").Return(oauthUser, nil)
	m.userRepo.EXPECT().FindByGoogleID(ctx, "google-123").Return(user, nil)
	m.tokenSvc.EXPECT().GenerateAccessToken(user.ID, "student").Return("access-token", nil)

	out, err := svc.GoogleLogin(ctx, usecase.GoogleLoginInput{IDToken: "id-token"})
	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.False(t, out.NeedsRoleSelection)
}

func TestUserService_GoogleLogin_LinksLocalAccountByEmail(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()

	oauthUser := &service.OAuthUser{ID: "google-123", Email: "nimal@example.lk"}
	user := &entity.User{ID: uuid.New(), Email: "nimal@example.lk", Role: entity.RoleStudent, Provider: entity.AuthProviderLocal}

	m.googleAuth.EXPECT().VerifyIDToken(ctx, "id-token").Return(oauthUser, nil)
	m.userRepo.EXPECT().FindByGoogleID(ctx, "google-123").Return(nil, repository.ErrUserNotFound)
	m.userRepo.EXPECT().FindByEmail(ctx, "nimal@example.lk").Return(user, nil)
	m.userRepo.EXPECT().Update(ctx, user).Return(nil)
	m.tokenSvc.EXPECT().GenerateAccessToken(user.ID, "student").Return("access-token", nil)

	out, err := svc.GoogleLogin(ctx, usecase.GoogleLoginInput{IDToken: "id-token"})
	require.NoError(t, err)
	assert.Equal(t, "google-123", out.User.GoogleID)
}

func TestUserService_GoogleLogin_FreshAccountNeedsRole(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()

	oauthUser := &service.OAuthUser{ID: "google-123", Email: "new@example.lk", Name: "New Student"}

	m.googleAuth.EXPECT().VerifyIDToken(ctx, "id-token").Return(oauthUser, nil)
	m.userRepo.EXPECT().FindByGoogleID(ctx, "google-123").Return(nil, repository.ErrUserNotFound)
	m.userRepo.EXPECT().FindByEmail(ctx, "new@example.lk").Return(nil, repository.ErrUserNotFound)
	m.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	out, err := svc.GoogleLogin(ctx, usecase.GoogleLoginInput{IDToken: "id-token"})
	require.NoError(t, err)
	assert.True(t, out.NeedsRoleSelection)
	assert.Empty(t, out.AccessToken)
	assert.Equal(t, entity.RoleUnset, out.User.Role)
	assert.Equal(t, entity.AuthProviderGoogle, out.User.Provider)
}

func TestUserService_GoogleLogin_BadToken(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()

	m.googleAuth.EXPECT().VerifyIDToken(ctx, "garbage").Return(nil, errors.New("invalid token"))

	_, err := svc.GoogleLogin(ctx, usecase.GoogleLoginInput{IDToken: "garbage"})
	assert.ErrorIs(t, err, domainerrors.ErrOAuthTokenInvalid)
}

func TestUserService_SelectRole_TutorGetsProfile(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Role: entity.RoleUnset, Provider: entity.AuthProviderGoogle}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txTutorRepo := mockRepo.NewMockTutorRepository(t)
	factory.EXPECT().NewUserRepository().Return(txUserRepo)
	factory.EXPECT().NewTutorRepository().Return(txTutorRepo)
	expectTx(m.txManager, factory)

	txUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	txUserRepo.EXPECT().Update(ctx, user).Return(nil)
	txTutorRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Tutor")).Return(nil)
	m.tokenSvc.EXPECT().GenerateAccessToken(user.ID, "tutor").Return("access-token", nil)
	m.dispatcher.EXPECT().Dispatch(ctx, mock.AnythingOfType("*usecase.NotificationEvent")).Return()

	out, err := svc.SelectRole(ctx, usecase.SelectRoleInput{UserID: user.ID, Role: entity.RoleTutor})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleTutor, out.User.Role)
	assert.Equal(t, "access-token", out.AccessToken)
}

func TestUserService_SelectRole_RoleAlreadySet(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Role: entity.RoleStudent}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().NewUserRepository().Return(txUserRepo)
	expectTx(m.txManager, factory)

	txUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	_, err := svc.SelectRole(ctx, usecase.SelectRoleInput{UserID: user.ID, Role: entity.RoleTutor})
	assert.ErrorIs(t, err, domainerrors.ErrRoleAlreadySet)
}

func TestUserService_ChangePassword_ChecksCurrent(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), PasswordHash: "old-hash"}

	m.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	m.hasher.EXPECT().Check("current", "old-hash").Return(true)
	m.hasher.EXPECT().Hash("brand-new").Return("new-hash", nil)
	m.userRepo.EXPECT().Update(ctx, user).Return(nil)

	err := svc.ChangePassword(ctx, usecase.ChangePasswordInput{
		UserID:          user.ID,
		CurrentPassword: "current",
		NewPassword:     "brand-new",
	})
	require.NoError(t, err)
	assert.Equal(t, "new-hash", user.PasswordHash)
}

func TestUserService_ForgotPassword_UnknownEmailStaysSilent(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()

	m.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.lk").Return(nil, repository.ErrUserNotFound)

	err := svc.ForgotPassword(ctx, "ghost@example.lk")
	assert.NoError(t, err)
	m.mailer.AssertNotCalled(t, "Send")
}

func TestUserService_ForgotPassword_SendsResetLink(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Name: "Nimal", Email: "nimal@example.lk"}

	m.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	m.tokenSvc.EXPECT().GenerateResetToken(user.ID).Return("reset-jwt", nil)
	m.mailer.EXPECT().
		Send(ctx, mock.MatchedBy(func(mail *service.Mail) bool {
			return mail.ToAddress == user.Email &&
				strings.Contains(mail.PlainBody, "https://verifiedtutors.lk/reset-password?token=reset-jwt")
		})).
		Return(nil)

	err := svc.ForgotPassword(ctx, user.Email)
	assert.NoError(t, err)
}

func TestUserService_ForgotPassword_MailFailureSurfaces(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Name: "Nimal", Email: "nimal@example.lk"}

	m.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	m.tokenSvc.EXPECT().GenerateResetToken(user.ID).Return("reset-jwt", nil)
	m.mailer.EXPECT().Send(ctx, mock.AnythingOfType("*service.Mail")).Return(errors.New("smtp refused"))

	err := svc.ForgotPassword(ctx, user.Email)
	assert.Error(t, err)
}

func TestUserService_ResetPassword_AccessTokenRejected(t *testing.T) {
	svc, m := newUserService(t)

	m.tokenSvc.EXPECT().
		ValidateToken("access-jwt").
		Return(&service.Claims{UserID: uuid.New(), Type: service.TokenTypeAccess}, nil)

	err := svc.ResetPassword(context.Background(), usecase.ResetPasswordInput{Token: "access-jwt", NewPassword: "brand-new"})
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestUserService_ResetPassword_Success(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), PasswordHash: "old-hash"}

	m.tokenSvc.EXPECT().
		ValidateToken("reset-jwt").
		Return(&service.Claims{UserID: user.ID, Type: service.TokenTypeReset}, nil)
	m.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	m.hasher.EXPECT().Hash("brand-new").Return("new-hash", nil)
	m.userRepo.EXPECT().Update(ctx, user).Return(nil)

	err := svc.ResetPassword(ctx, usecase.ResetPasswordInput{Token: "reset-jwt", NewPassword: "brand-new"})
	require.NoError(t, err)
	assert.Equal(t, "new-hash", user.PasswordHash)
}
