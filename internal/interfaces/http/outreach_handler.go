package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Onboarding-api/internal/application/onboarding"
)

// OutreachHandler generación de documentos y correos al consultor.
type OutreachHandler struct {
	uc *onboarding.OutreachUseCase
}

// NewOutreachHandler construye el handler.
func NewOutreachHandler(uc *onboarding.OutreachUseCase) *OutreachHandler {
	return &OutreachHandler{uc: uc}
}

// GenerateDocuments godoc
// @Summary      Generar carta de oferta y checklist (PDF)
// @Tags         outreach
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del consultor"
// @Success      200  {object}  dto.GenerateDocumentsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/consultants/{id}/generate-documents [post]
func (h *OutreachHandler) GenerateDocuments(c *fiber.Ctx) error {
	out, err := h.uc.GenerateDocuments(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SendOffer godoc
// @Summary      Enviar la carta de oferta por correo
// @Description  Requiere haber generado los documentos antes.
// @Tags         outreach
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del consultor"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/consultants/{id}/send-offer [post]
func (h *OutreachHandler) SendOffer(c *fiber.Ctx) error {
	out, err := h.uc.SendOffer(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SendReminder godoc
// @Summary      Recordatorio de documentos pendientes
// @Tags         outreach
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del consultor"
// @Success      200  {object}  dto.ReminderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/consultants/{id}/send-reminder [post]
func (h *OutreachHandler) SendReminder(c *fiber.Ctx) error {
	out, err := h.uc.SendReminder(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
