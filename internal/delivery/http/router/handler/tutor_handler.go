package handler

import (
	"net/http"
	"strconv"

	"verifiedtutors/internal/delivery/http/middleware"
	"verifiedtutors/internal/delivery/http/response"
	"verifiedtutors/internal/domain/entity"
	"verifiedtutors/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TutorHandler holds dependencies for tutor profile handlers.
type TutorHandler struct {
	uc usecase.TutorUsecase
}

// NewTutorHandler is the constructor for TutorHandler, injected by Fx.
func NewTutorHandler(uc usecase.TutorUsecase) *TutorHandler {
	return &TutorHandler{uc: uc}
}

// Search filters the tutor directory. All filters are optional.
func (h *TutorHandler) Search(c echo.Context) error {
	input := usecase.TutorSearchInput{
		Mode:      entity.TeachingMode(c.QueryParam("mode")),
		Location:  c.QueryParam("location"),
		Page:      queryInt(c, "page", 1),
		PerPage:   queryInt(c, "per_page", 20),
		MinRating: queryFloat(c, "min_rating"),
	}
	input.VerifiedOnly = c.QueryParam("verified") != "false"

	if raw := c.QueryParam("subject_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid subject_id")
		}
		input.SubjectID = &id
	}
	if raw := c.QueryParam("topic_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid topic_id")
		}
		input.TopicID = &id
	}

	page, err := h.uc.SearchTutors(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page)
}

// Get returns one tutor profile by user ID.
func (h *TutorHandler) Get(c echo.Context) error {
	tutorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid tutor ID")
	}

	tutor, err := h.uc.GetTutor(c.Request().Context(), tutorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tutor)
}

// GetOwn returns the authenticated tutor's profile.
func (h *TutorHandler) GetOwn(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid user ID in token")
	}

	tutor, err := h.uc.GetTutor(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tutor)
}

type tutorSubjectRequest struct {
	SubjectID    uuid.UUID                                  `json:"subject_id" validate:"required"`
	TopicIDs     []uuid.UUID                                `json:"topic_ids"`
	Modes        map[entity.TeachingMode]entity.ModeOffering `json:"modes"`
	Availability map[string][]entity.TimeSlot               `json:"availability"`
}

type updateTutorProfileRequest struct {
	Bio                string                   `json:"bio"`
	Gender             string                   `json:"gender"`
	SocialLinks        map[string]string        `json:"social_links"`
	TeachingMediums    []string                 `json:"teaching_mediums"`
	Education          []entity.EducationEntry  `json:"education"`
	Experience         []entity.ExperienceEntry `json:"experience"`
	Subjects           []tutorSubjectRequest    `json:"subjects"`
	AvailableLocations string                   `json:"available_locations"`
}

// UpdateProfile replaces the editable sections of the authenticated
// tutor's profile.
func (h *TutorHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid user ID in token")
	}

	var req updateTutorProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid profile input")
	}

	input := usecase.UpdateTutorProfileInput{
		UserID:             userID,
		Bio:                req.Bio,
		Gender:             req.Gender,
		SocialLinks:        req.SocialLinks,
		TeachingMediums:    req.TeachingMediums,
		Education:          req.Education,
		Experience:         req.Experience,
		AvailableLocations: req.AvailableLocations,
	}
	for _, s := range req.Subjects {
		input.Subjects = append(input.Subjects, usecase.TutorSubjectInput{
			SubjectID:    s.SubjectID,
			TopicIDs:     s.TopicIDs,
			Modes:        s.Modes,
			Availability: s.Availability,
		})
	}

	tutor, err := h.uc.UpdateProfile(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tutor)
}

type addDocumentRequest struct {
	URL   string `json:"url" validate:"required,url"`
	Label string `json:"label"`
}

// AddDocument attaches a verification document reference.
func (h *TutorHandler) AddDocument(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid user ID in token")
	}

	var req addDocumentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid document input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tutor, err := h.uc.AddDocument(c.Request().Context(), usecase.AddDocumentInput{
		UserID: userID,
		URL:    req.URL,
		Label:  req.Label,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tutor)
}

// RemoveDocument detaches a document from the profile.
func (h *TutorHandler) RemoveDocument(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid user ID in token")
	}

	documentID, err := uuid.Parse(c.Param("documentId"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid document ID")
	}

	tutor, err := h.uc.RemoveDocument(c.Request().Context(), userID, documentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tutor)
}

// Delete removes the authenticated tutor's profile and account.
func (h *TutorHandler) Delete(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid user ID in token")
	}

	if err := h.uc.DeleteTutor(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Account deleted"})
}

// queryInt parses an integer query parameter with a fallback.
func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}

// queryFloat parses a float query parameter, zero when absent or bad.
func queryFloat(c echo.Context, name string) float64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}

	return value
}
