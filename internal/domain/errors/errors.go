package errors

import (
	"net/http"

	"verifiedtutors/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrEmailAlreadyRegistered = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_REGISTERED",
		"This email address is already registered",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email or password",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid or expired token",
		"",
	)

	ErrRoleAlreadySet = NewBaseError(
		http.StatusConflict,
		"ROLE_ALREADY_SET",
		"A role has already been selected for this account",
		"",
	)

	ErrRoleInvalid = NewBaseError(
		http.StatusBadRequest,
		"ROLE_INVALID",
		"The requested role cannot be assigned",
		"",
	)

	// OAuth-related errors
	ErrOAuthTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"OAUTH_TOKEN_INVALID",
		"Invalid Google ID token",
		"",
	)

	// Tutor-related errors
	ErrTutorNotFound = NewBaseError(
		http.StatusNotFound,
		"TUTOR_NOT_FOUND",
		"Tutor not found",
		"",
	)

	ErrTutorNotVerified = NewBaseError(
		http.StatusBadRequest,
		"TUTOR_NOT_VERIFIED",
		"This tutor has not been verified yet",
		"",
	)

	ErrTutorAlreadyVerified = NewBaseError(
		http.StatusConflict,
		"TUTOR_ALREADY_VERIFIED",
		"This tutor is already verified",
		"",
	)

	ErrRejectionReasonRequired = NewBaseError(
		http.StatusBadRequest,
		"REJECTION_REASON_REQUIRED",
		"A rejection reason is required",
		"",
	)

	ErrTutorHasActiveBookings = NewBaseError(
		http.StatusConflict,
		"TUTOR_HAS_ACTIVE_BOOKINGS",
		"The profile cannot be deleted while bookings are pending or confirmed",
		"",
	)

	// Catalog-related errors
	ErrSubjectNotFound = NewBaseError(
		http.StatusNotFound,
		"SUBJECT_NOT_FOUND",
		"Subject not found",
		"",
	)

	ErrSubjectNameTaken = NewBaseError(
		http.StatusConflict,
		"SUBJECT_NAME_TAKEN",
		"A subject with this name already exists",
		"",
	)

	ErrTopicNotFound = NewBaseError(
		http.StatusNotFound,
		"TOPIC_NOT_FOUND",
		"Topic not found",
		"",
	)

	ErrTopicNameTaken = NewBaseError(
		http.StatusConflict,
		"TOPIC_NAME_TAKEN",
		"This subject already has a topic with this name",
		"",
	)

	// Location-related errors
	ErrLocationNotFound = NewBaseError(
		http.StatusNotFound,
		"LOCATION_NOT_FOUND",
		"Location not found",
		"",
	)

	ErrLocationNameTaken = NewBaseError(
		http.StatusConflict,
		"LOCATION_NAME_TAKEN",
		"A location with this name already exists under the same parent",
		"",
	)

	ErrLocationParentInvalid = NewBaseError(
		http.StatusBadRequest,
		"LOCATION_PARENT_INVALID",
		"The location's parent must sit exactly one level above it",
		"",
	)

	ErrLocationHasChildren = NewBaseError(
		http.StatusConflict,
		"LOCATION_HAS_CHILDREN",
		"The location cannot be deleted while it has child locations",
		"",
	)

	// Booking-related errors
	ErrBookingNotFound = NewBaseError(
		http.StatusNotFound,
		"BOOKING_NOT_FOUND",
		"Booking not found",
		"",
	)

	ErrBookingTransitionInvalid = NewBaseError(
		http.StatusBadRequest,
		"BOOKING_TRANSITION_INVALID",
		"The booking cannot move to the requested status",
		"",
	)

	ErrBookingModeUnavailable = NewBaseError(
		http.StatusBadRequest,
		"BOOKING_MODE_UNAVAILABLE",
		"The tutor does not offer the requested teaching mode for this subject",
		"",
	)

	ErrBookingNotCompleted = NewBaseError(
		http.StatusBadRequest,
		"BOOKING_NOT_COMPLETED",
		"Only completed bookings can be rated",
		"",
	)

	// Rating-related errors
	ErrRatingNotFound = NewBaseError(
		http.StatusNotFound,
		"RATING_NOT_FOUND",
		"Rating not found",
		"",
	)

	ErrBookingAlreadyRated = NewBaseError(
		http.StatusConflict,
		"BOOKING_ALREADY_RATED",
		"This booking has already been rated",
		"",
	)

	ErrDuplicateTopicRating = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_TOPIC_RATING",
		"You have already rated this tutor for the same topic selection",
		"",
	)

	// Favorite-related errors
	ErrFavoriteExists = NewBaseError(
		http.StatusConflict,
		"FAVORITE_EXISTS",
		"This tutor is already in your favorites",
		"",
	)

	ErrFavoriteNotFound = NewBaseError(
		http.StatusNotFound,
		"FAVORITE_NOT_FOUND",
		"This tutor is not in your favorites",
		"",
	)

	// Notification-related errors
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"Notification not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)
