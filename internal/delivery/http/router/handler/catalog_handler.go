package handler

import (
	"net/http"

	"verifiedtutors/internal/delivery/http/response"
	"verifiedtutors/internal/domain/entity"
	"verifiedtutors/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for subject and topic handlers.
type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListSubjects returns the catalog. include_inactive is admin-facing
// but harmless publicly; inactive entries carry no secrets.
func (h *CatalogHandler) ListSubjects(c echo.Context) error {
	includeInactive := c.QueryParam("include_inactive") == "true"

	subjects, err := h.uc.ListSubjects(c.Request().Context(), includeInactive)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, subjects)
}

// GetSubject returns one subject with its topics.
func (h *CatalogHandler) GetSubject(c echo.Context) error {
	subjectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid subject ID")
	}

	subject, err := h.uc.GetSubject(c.Request().Context(), subjectID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, subject)
}

type subjectRequest struct {
	Name           string `json:"name" validate:"required"`
	Category       string `json:"category" validate:"required"`
	EducationLevel string `json:"education_level" validate:"required"`
}

func (r *subjectRequest) toInput() usecase.SubjectInput {
	return usecase.SubjectInput{
		Name:           r.Name,
		Category:       r.Category,
		EducationLevel: entity.EducationLevel(r.EducationLevel),
	}
}

// CreateSubject adds a subject to the catalog.
func (h *CatalogHandler) CreateSubject(c echo.Context) error {
	var req subjectRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid subject input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	subject, err := h.uc.CreateSubject(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, subject)
}

// UpdateSubject modifies a subject.
func (h *CatalogHandler) UpdateSubject(c echo.Context) error {
	subjectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid subject ID")
	}

	var req subjectRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid subject input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	subject, err := h.uc.UpdateSubject(c.Request().Context(), subjectID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, subject)
}

// DeactivateSubject retires a subject without deleting history.
func (h *CatalogHandler) DeactivateSubject(c echo.Context) error {
	subjectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid subject ID")
	}

	if err := h.uc.DeactivateSubject(c.Request().Context(), subjectID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Subject deactivated"})
}

// ListTopics returns the topics of one subject.
func (h *CatalogHandler) ListTopics(c echo.Context) error {
	subjectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid subject ID")
	}
	includeInactive := c.QueryParam("include_inactive") == "true"

	topics, err := h.uc.ListTopics(c.Request().Context(), subjectID, includeInactive)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, topics)
}

type topicRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// CreateTopic adds a topic under a subject.
func (h *CatalogHandler) CreateTopic(c echo.Context) error {
	subjectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid subject ID")
	}

	var req topicRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid topic input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	topic, err := h.uc.CreateTopic(c.Request().Context(), subjectID, usecase.TopicInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, topic)
}

// UpdateTopic modifies a topic.
func (h *CatalogHandler) UpdateTopic(c echo.Context) error {
	topicID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid topic ID")
	}

	var req topicRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid topic input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	topic, err := h.uc.UpdateTopic(c.Request().Context(), topicID, usecase.TopicInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, topic)
}

// DeactivateTopic retires a topic.
func (h *CatalogHandler) DeactivateTopic(c echo.Context) error {
	topicID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid topic ID")
	}

	if err := h.uc.DeactivateTopic(c.Request().Context(), topicID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Topic deactivated"})
}
