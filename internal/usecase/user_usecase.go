// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"verifiedtutors/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// Role must be student or tutor; tutor registrations create the tutor
// profile extension in the same transaction.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     entity.Role
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// GoogleLoginInput carries the ID token produced by Google Sign-In.
type GoogleLoginInput struct {
	IDToken string
}

// SelectRoleInput finalises an OAuth account by picking its role.
type SelectRoleInput struct {
	UserID uuid.UUID
	Role   entity.Role
}

// UpdateProfileInput updates the account's basic fields.
type UpdateProfileInput struct {
	UserID       uuid.UUID
	Name         string
	Phone        string
	ProfileImage string
}

// ChangePasswordInput rotates a local account's password.
type ChangePasswordInput struct {
	UserID          uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// ResetPasswordInput completes a password reset from an emailed token.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// --- Output DTOs ---

// AuthOutput returns the access token after a successful login or
// registration, along with the account.
type AuthOutput struct {
	AccessToken string
	User        *entity.User
	// NeedsRoleSelection is set on OAuth logins for accounts that have
	// not picked a role yet. No token is issued until they do.
	NeedsRoleSelection bool
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
	GoogleLogin(ctx context.Context, input GoogleLoginInput) (*AuthOutput, error)
	SelectRole(ctx context.Context, input SelectRoleInput) (*AuthOutput, error)
	GetMe(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*entity.User, error)
	ChangePassword(ctx context.Context, input ChangePasswordInput) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, input ResetPasswordInput) error
}
