package handler

import (
	"context"
	"net/http"
	"time"

	"verifiedtutors/internal/delivery/http/middleware"
	"verifiedtutors/internal/delivery/http/response"
	"verifiedtutors/internal/domain/entity"
	"verifiedtutors/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BookingHandler holds dependencies for booking lifecycle handlers.
type BookingHandler struct {
	uc usecase.BookingUsecase
}

// NewBookingHandler is the constructor for BookingHandler, injected by Fx.
func NewBookingHandler(uc usecase.BookingUsecase) *BookingHandler {
	return &BookingHandler{uc: uc}
}

type createBookingRequest struct {
	TutorID   uuid.UUID   `json:"tutor_id" validate:"required"`
	SubjectID uuid.UUID   `json:"subject_id" validate:"required"`
	TopicIDs  []uuid.UUID `json:"topic_ids"`
	StartTime time.Time   `json:"start_time" validate:"required"`
	EndTime   time.Time   `json:"end_time" validate:"required"`
	Mode      string      `json:"mode" validate:"required"`
}

// Create requests a session with a tutor. The price is computed
// server-side from the tutor's published rate.
func (h *BookingHandler) Create(c echo.Context) error {
	studentID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid user ID in token")
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid booking input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	booking, err := h.uc.CreateBooking(c.Request().Context(), usecase.CreateBookingInput{
		StudentID: studentID,
		TutorID:   req.TutorID,
		SubjectID: req.SubjectID,
		TopicIDs:  req.TopicIDs,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Mode:      entity.TeachingMode(req.Mode),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, booking)
}

// Get returns one booking. Only the two parties may see it.
func (h *BookingHandler) Get(c echo.Context) error {
	requesterID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid user ID in token")
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid booking ID")
	}

	booking, err := h.uc.GetBooking(c.Request().Context(), requesterID, bookingID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, booking)
}

// List pages the caller's bookings. Tutors pass as_tutor=true to see
// their teaching schedule instead of their own study bookings.
func (h *BookingHandler) List(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid user ID in token")
	}

	page, err := h.uc.ListBookings(c.Request().Context(), usecase.ListBookingsInput{
		UserID:  userID,
		AsTutor: c.QueryParam("as_tutor") == "true",
		Status:  entity.BookingStatus(c.QueryParam("status")),
		Page:    queryInt(c, "page", 1),
		PerPage: queryInt(c, "per_page", 20),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page)
}

// Confirm moves a pending booking to confirmed. Tutor only.
func (h *BookingHandler) Confirm(c echo.Context) error {
	return h.transition(c, h.uc.ConfirmBooking)
}

// Complete moves a confirmed booking to completed. Tutor only.
func (h *BookingHandler) Complete(c echo.Context) error {
	return h.transition(c, h.uc.CompleteBooking)
}

func (h *BookingHandler) transition(c echo.Context, fn func(ctx context.Context, tutorID, bookingID uuid.UUID) (*entity.Booking, error)) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid user ID in token")
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid booking ID")
	}

	booking, err := fn(c.Request().Context(), userID, bookingID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, booking)
}

type cancelBookingRequest struct {
	Reason string `json:"reason"`
}

// Cancel drops a pending or confirmed booking. Either party.
func (h *BookingHandler) Cancel(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid user ID in token")
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid booking ID")
	}

	var req cancelBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid cancel input")
	}

	booking, err := h.uc.CancelBooking(c.Request().Context(), userID, bookingID, req.Reason)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, booking)
}
