package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Onboarding-api/internal/application/dto"
	"github.com/jhoicas/Onboarding-api/internal/domain"
)

// writeError traduce errores de dominio a status HTTP. Lo que no es de dominio es 500.
func writeError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return errorJSON(c, fiber.StatusBadRequest, "VALIDATION", verr.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		return errorJSON(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return errorJSON(c, fiber.StatusNotFound, "NOT_FOUND", "recurso no encontrado")
	case errors.Is(err, domain.ErrPrecondition):
		return errorJSON(c, fiber.StatusBadRequest, "PRECONDITION", err.Error())
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return errorJSON(c, fiber.StatusConflict, "EMAIL_EXISTS", "el email ya está registrado")
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrUnauthorized):
		return errorJSON(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "credenciales inválidas")
	case errors.Is(err, domain.ErrForbidden):
		return errorJSON(c, fiber.StatusForbidden, "FORBIDDEN", "cuenta inactiva o suspendida")
	default:
		return errorJSON(c, fiber.StatusInternalServerError, "INTERNAL", err.Error())
	}
}

func errorJSON(c *fiber.Ctx, status int, code, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func invalidBody(c *fiber.Ctx) error {
	return errorJSON(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
}
