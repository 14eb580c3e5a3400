package handler

import (
	"net/http"

	"verifiedtutors/internal/delivery/http/response"
	"verifiedtutors/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LocationHandler holds dependencies for the area-tree handlers.
type LocationHandler struct {
	uc usecase.LocationUsecase
}

// NewLocationHandler is the constructor for LocationHandler, injected by Fx.
func NewLocationHandler(uc usecase.LocationUsecase) *LocationHandler {
	return &LocationHandler{uc: uc}
}

// GetTree returns the full three-level area tree.
func (h *LocationHandler) GetTree(c echo.Context) error {
	tree, err := h.uc.GetTree(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tree)
}

type locationRequest struct {
	Name     string     `json:"name" validate:"required"`
	Level    int        `json:"level" validate:"required,min=1,max=3"`
	ParentID *uuid.UUID `json:"parent_id"`
}

// Create adds a node to the area tree.
func (h *LocationHandler) Create(c echo.Context) error {
	var req locationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid location input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	location, err := h.uc.CreateLocation(c.Request().Context(), usecase.LocationInput{
		Name:     req.Name,
		Level:    req.Level,
		ParentID: req.ParentID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, location)
}

// Update modifies a node.
func (h *LocationHandler) Update(c echo.Context) error {
	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid location ID")
	}

	var req locationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid location input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	location, err := h.uc.UpdateLocation(c.Request().Context(), locationID, usecase.LocationInput{
		Name:     req.Name,
		Level:    req.Level,
		ParentID: req.ParentID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, location)
}

// Delete removes a childless node.
func (h *LocationHandler) Delete(c echo.Context) error {
	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid location ID")
	}

	if err := h.uc.DeleteLocation(c.Request().Context(), locationID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Location deleted"})
}
