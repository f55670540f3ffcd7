package handler

import (
	"log/slog"
	"net/http"

	"tutorhub/internal/delivery/http/middleware"
	"tutorhub/internal/delivery/http/response"
	"tutorhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ChatHandler holds dependencies for room and message handlers.
type ChatHandler struct {
	uc     usecase.ChatUsecase
	logger *slog.Logger
}

// NewChatHandler is the constructor for ChatHandler, injected by Fx.
func NewChatHandler(uc usecase.ChatUsecase, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateRoom handles the room creation request.
func (h *ChatHandler) CreateRoom(c echo.Context) error {
	input := new(usecase.CreateRoomInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid room input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	view, err := h.uc.CreateRoom(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, view, "Room created successfully")
}

// SendMessage handles posting a message into a room. The sender identity
// comes from the authenticated token, never from the body.
func (h *ChatHandler) SendMessage(c echo.Context) error {
	senderID, ok := c.Get(middleware.KeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Missing authenticated sender")
	}

	input := new(usecase.SendMessageInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	view, err := h.uc.SendMessage(c.Request().Context(), c.Param("roomId"), senderID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, view, "Message sent successfully")
}

// ListMessages handles reading a room's messages in order.
func (h *ChatHandler) ListMessages(c echo.Context) error {
	views, err := h.uc.ListRoomMessages(c.Request().Context(), c.Param("roomId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, views, "")
}
