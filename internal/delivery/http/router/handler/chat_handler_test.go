package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"tutorhub/internal/delivery/http/middleware"
	domainerrors "tutorhub/internal/domain/errors"
	mockUsecase "tutorhub/internal/mocks/usecase"
	"tutorhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stubAuth injects a fixed authenticated user, standing in for the real
// auth middleware.
func stubAuth(userID uuid.UUID) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(middleware.KeyUserID, userID)

			return next(c)
		}
	}
}

func TestChatHandler_CreateRoom_Created(t *testing.T) {
	uc := mockUsecase.NewMockChatUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := newTestEcho()
	e.POST("/rooms", NewChatHandler(uc, logger).CreateRoom)

	roomID := uuid.New()
	uc.EXPECT().
		CreateRoom(mock.Anything, &usecase.CreateRoomInput{Name: "general"}).
		Return(&usecase.RoomView{ID: roomID, Name: "general"}, nil)

	rec := doJSON(e, http.MethodPost, "/rooms", `{"name":"general"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), roomID.String())
}

func TestChatHandler_CreateRoom_NameRequired(t *testing.T) {
	uc := mockUsecase.NewMockChatUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := newTestEcho()
	e.POST("/rooms", NewChatHandler(uc, logger).CreateRoom)

	rec := doJSON(e, http.MethodPost, "/rooms", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeEnvelope(t, rec)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "name is required", envelope.Error.Fields["name"])
}

func TestChatHandler_SendMessage_Created(t *testing.T) {
	uc := mockUsecase.NewMockChatUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	senderID := uuid.New()
	roomID := uuid.New()

	e := newTestEcho()
	e.POST("/rooms/:roomId/messages", NewChatHandler(uc, logger).SendMessage, stubAuth(senderID))

	messageID := uuid.New()
	uc.EXPECT().
		SendMessage(mock.Anything, roomID.String(), senderID, &usecase.SendMessageInput{Text: "hello"}).
		Return(&usecase.MessageView{ID: messageID, RoomID: roomID, SenderID: senderID, Text: "hello"}, nil)

	rec := doJSON(e, http.MethodPost, "/rooms/"+roomID.String()+"/messages", `{"text":"hello"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), messageID.String())
}

func TestChatHandler_SendMessage_NoAuthenticatedSender(t *testing.T) {
	uc := mockUsecase.NewMockChatUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := newTestEcho()
	e.POST("/rooms/:roomId/messages", NewChatHandler(uc, logger).SendMessage)

	rec := doJSON(e, http.MethodPost, "/rooms/"+uuid.New().String()+"/messages", `{"text":"hello"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestChatHandler_SendMessage_RoomNotFound(t *testing.T) {
	uc := mockUsecase.NewMockChatUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	senderID := uuid.New()
	roomID := uuid.New()

	e := newTestEcho()
	e.POST("/rooms/:roomId/messages", NewChatHandler(uc, logger).SendMessage, stubAuth(senderID))

	uc.EXPECT().
		SendMessage(mock.Anything, roomID.String(), senderID, mock.AnythingOfType("*usecase.SendMessageInput")).
		Return(nil, domainerrors.ErrRoomNotFound)

	rec := doJSON(e, http.MethodPost, "/rooms/"+roomID.String()+"/messages", `{"text":"hello"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	envelope := decodeEnvelope(t, rec)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "ROOM_NOT_FOUND", envelope.Error.Code)
}

func TestChatHandler_ListMessages_OK(t *testing.T) {
	uc := mockUsecase.NewMockChatUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	roomID := uuid.New()

	e := newTestEcho()
	e.GET("/rooms/:roomId/messages", NewChatHandler(uc, logger).ListMessages)

	uc.EXPECT().
		ListRoomMessages(mock.Anything, roomID.String()).
		Return([]*usecase.MessageView{
			{ID: uuid.New(), RoomID: roomID, Text: "first"},
			{ID: uuid.New(), RoomID: roomID, Text: "second"},
		}, nil)

	rec := doJSON(e, http.MethodGet, "/rooms/"+roomID.String()+"/messages", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "first")
	assert.Contains(t, rec.Body.String(), "second")
}
