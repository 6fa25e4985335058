package handler

import (
	"errors"
	"strings"

	"careercatalyst/internal/delivery/http/middleware"
	"careercatalyst/internal/pkg/response"
	"careercatalyst/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// mapUsecaseError translates the usecase taxonomy into HTTP statuses.
// Validation and duplicate failures surface their reason; 5xx causes are
// genericized by the error middleware.
func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrValidation):
		return middleware.NewAppError(fiber.StatusBadRequest, stripSentinel(err, usecase.ErrValidation), err)
	case errors.Is(err, usecase.ErrDuplicate):
		return middleware.NewAppError(fiber.StatusBadRequest, stripSentinel(err, usecase.ErrDuplicate), err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, response.MessageNotFound, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}

// stripSentinel drops the sentinel prefix so the client sees the reason,
// not the taxonomy.
func stripSentinel(err, sentinel error) string {
	msg := strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
	if msg == "" {
		return response.MessageBadRequest
	}
	return msg
}

func userIDFromCtx(c fiber.Ctx) (uuid.UUID, error) {
	id, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}
	return id, nil
}
