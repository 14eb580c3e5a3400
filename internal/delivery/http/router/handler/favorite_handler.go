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

// FavoriteHandler holds dependencies for bookmark handlers.
type FavoriteHandler struct {
	uc usecase.FavoriteUsecase
}

// NewFavoriteHandler is the constructor for FavoriteHandler, injected by Fx.
func NewFavoriteHandler(uc usecase.FavoriteUsecase) *FavoriteHandler {
	return &FavoriteHandler{uc: uc}
}

// Add bookmarks a tutor for the authenticated student.
func (h *FavoriteHandler) Add(c echo.Context) error {
	studentID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid user ID in token")
	}

	tutorID, err := uuid.Parse(c.Param("tutorId"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid tutor ID")
	}

	if err := h.uc.AddFavorite(c.Request().Context(), studentID, tutorID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"message": "Tutor favorited"})
}

// Remove drops the bookmark.
func (h *FavoriteHandler) Remove(c echo.Context) error {
	studentID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid user ID in token")
	}

	tutorID, err := uuid.Parse(c.Param("tutorId"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid tutor ID")
	}

	if err := h.uc.RemoveFavorite(c.Request().Context(), studentID, tutorID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Favorite removed"})
}

// List returns the authenticated student's favorites.
func (h *FavoriteHandler) List(c echo.Context) error {
	studentID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid user ID in token")
	}

	favorites, err := h.uc.ListFavorites(c.Request().Context(), studentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, favorites)
}
