package handler

import (
	"net/http"

	"verifiedtutors/internal/delivery/http/middleware"
	"verifiedtutors/internal/delivery/http/response"
	"verifiedtutors/internal/domain/entity"
	"verifiedtutors/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VerificationHandler holds dependencies for the admin review workflow.
type VerificationHandler struct {
	uc usecase.VerificationUsecase
}

// NewVerificationHandler is the constructor for VerificationHandler, injected by Fx.
func NewVerificationHandler(uc usecase.VerificationUsecase) *VerificationHandler {
	return &VerificationHandler{uc: uc}
}

// ListByStatus pages tutors in one verification state. Defaults to the
// pending queue.
func (h *VerificationHandler) ListByStatus(c echo.Context) error {
	status := entity.VerificationStatus(c.QueryParam("status"))
	if status == "" {
		status = entity.VerificationPending
	}

	page, err := h.uc.ListByStatus(c.Request().Context(), status, queryInt(c, "page", 1), queryInt(c, "per_page", 20))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page)
}

// Approve verifies the tutor.
func (h *VerificationHandler) Approve(c echo.Context) error {
	adminID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid user ID in token")
	}

	tutorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid tutor ID")
	}

	tutor, err := h.uc.Approve(c.Request().Context(), adminID, tutorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tutor)
}

type rejectRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// Reject declines verification with a mandatory reason.
func (h *VerificationHandler) Reject(c echo.Context) error {
	adminID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid user ID in token")
	}

	tutorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid tutor ID")
	}

	var req rejectRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid rejection input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tutor, err := h.uc.Reject(c.Request().Context(), adminID, tutorID, req.Reason)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tutor)
}

// Toggle flips the tutor's verified flag.
func (h *VerificationHandler) Toggle(c echo.Context) error {
	adminID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid user ID in token")
	}

	tutorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid tutor ID")
	}

	tutor, err := h.uc.Toggle(c.Request().Context(), adminID, tutorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tutor)
}
