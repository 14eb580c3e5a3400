// Package response builds the unified API response envelope.
package response

import (
	deliverycontext "verifiedtutors/internal/delivery/context"
	domainerrors "verifiedtutors/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Success writes a successful response with the request ID in the meta
// block so clients can quote it when reporting problems.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, domainerrors.SuccessResponse{
		Data: data,
		Meta: &domainerrors.MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// Error writes an error response envelope directly. Most errors flow
// through the error middleware instead; this is for handlers that must
// answer before a use case is ever reached, like bad bindings.
func Error(c echo.Context, statusCode int, errorCode, message string) error {
	return c.JSON(statusCode, domainerrors.ErrorResponse{
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Message: message,
		},
		Meta: &domainerrors.MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}
