package handler

import (
	"log/slog"
	"net/http"

	"tutorhub/internal/delivery/http/response"
	domainerrors "tutorhub/internal/domain/errors"
	"tutorhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MentorHandler holds dependencies for mentor profile handlers.
type MentorHandler struct {
	uc     usecase.MentorUsecase
	logger *slog.Logger
}

// NewMentorHandler is the constructor for MentorHandler, injected by Fx.
func NewMentorHandler(uc usecase.MentorUsecase, logger *slog.Logger) *MentorHandler {
	return &MentorHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the mentor collection read.
func (h *MentorHandler) List(c echo.Context) error {
	views, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, views, "")
}

// Get handles a single mentor read.
func (h *MentorHandler) Get(c echo.Context) error {
	view, err := h.uc.Get(c.Request().Context(), c.Param("mentorId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Create handles the mentor profile creation request.
func (h *MentorHandler) Create(c echo.Context) error {
	input := new(usecase.MentorPayload)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid mentor input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	view, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, view, "Mentor created successfully")
}

// Update handles the wholesale mentor profile replacement request. A
// malformed path id surfaces in the same field map as the body failures,
// so the caller sees every problem in one response.
func (h *MentorHandler) Update(c echo.Context) error {
	input := new(usecase.MentorPayload)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid mentor input")
	}

	var fields map[string]string
	if err := c.Validate(input); err != nil {
		var validationErr *domainerrors.ValidationError
		if !errors.As(err, &validationErr) {
			return errors.WithStack(err)
		}
		fields = validationErr.Fields()
	}

	mentorID := c.Param("mentorId")
	if _, err := uuid.Parse(mentorID); err != nil {
		if fields == nil {
			fields = make(map[string]string)
		}
		fields["mentorId"] = "mentorId is invalid"
	}

	if len(fields) > 0 {
		return errors.WithStack(domainerrors.NewValidationError(fields))
	}

	if err := h.uc.Update(c.Request().Context(), mentorID, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Mentor updated successfully")
}

// Delete handles the mentor profile removal request.
func (h *MentorHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("mentorId")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Mentor deleted successfully")
}
