package handler

import (
	"net/http"

	"verifiedtutors/internal/delivery/http/middleware"
	"verifiedtutors/internal/delivery/http/response"
	"verifiedtutors/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RatingHandler holds dependencies for rating handlers.
type RatingHandler struct {
	uc usecase.RatingUsecase
}

// NewRatingHandler is the constructor for RatingHandler, injected by Fx.
func NewRatingHandler(uc usecase.RatingUsecase) *RatingHandler {
	return &RatingHandler{uc: uc}
}

type createRatingRequest struct {
	BookingID uuid.UUID `json:"booking_id" validate:"required"`
	Score     float64   `json:"score" validate:"required,min=1,max=5"`
	Review    string    `json:"review" validate:"required"`
}

// Create rates a completed booking. Rating the same booking again
// updates the existing review in place.
func (h *RatingHandler) Create(c echo.Context) error {
	studentID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid user ID in token")
	}

	var req createRatingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid rating input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	rating, err := h.uc.CreateRating(c.Request().Context(), usecase.CreateRatingInput{
		StudentID: studentID,
		BookingID: req.BookingID,
		Score:     req.Score,
		Review:    req.Review,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, rating)
}

// Delete removes a rating. The owning student and admins only.
func (h *RatingHandler) Delete(c echo.Context) error {
	requesterID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid user ID in token")
	}

	ratingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid rating ID")
	}

	err = h.uc.DeleteRating(c.Request().Context(), requesterID, middleware.UserRole(c), ratingID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Rating deleted"})
}

// ListForTutor pages one tutor's ratings, newest first.
func (h *RatingHandler) ListForTutor(c echo.Context) error {
	tutorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid tutor ID")
	}

	page, err := h.uc.ListTutorRatings(c.Request().Context(), tutorID, queryInt(c, "page", 1), queryInt(c, "per_page", 20))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page)
}
