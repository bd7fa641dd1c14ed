package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Onboarding-api/internal/application/dto"
	"github.com/jhoicas/Onboarding-api/internal/application/onboarding"
	"github.com/jhoicas/Onboarding-api/internal/domain/entity"
)

// DocumentHandler checklist documental de cada consultor.
type DocumentHandler struct {
	uc *onboarding.DocumentUseCase
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(uc *onboarding.DocumentUseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// List godoc
// @Summary      Documentos del consultor
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del consultor"
// @Success      200  {array}   dto.DocumentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/consultants/{id}/documents [get]
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListFor(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewDocumentList(out))
}

// Create godoc
// @Summary      Agregar documento al checklist
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del consultor"
// @Param        body  body  dto.CreateDocumentRequest  true  "Tipo, ruta y estado opcionales"
// @Success      201   {object}  dto.DocumentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/consultants/{id}/documents [post]
func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Add(c.UserContext(), c.Params("id"), in.DocumentType, in.FilePath, entity.DocumentStatus(in.Status))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewDocumentResponse(out))
}

// AddStandard godoc
// @Summary      Agregar los documentos estándar faltantes
// @Description  Idempotente: solo crea los tipos que el consultor aún no tiene.
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del consultor"
// @Success      201  {array}   dto.DocumentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/consultants/{id}/standard-documents [post]
func (h *DocumentHandler) AddStandard(c *fiber.Ctx) error {
	out, err := h.uc.AddStandard(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewDocumentList(out))
}

// UpdateStatus godoc
// @Summary      Cambiar estado de un documento
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del documento"
// @Param        body  body  dto.UpdateStatusRequest  true  "Pending | Generated | Sent | Received | Completed"
// @Success      200   {object}  dto.DocumentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/documents/{id}/status [put]
func (h *DocumentHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), c.Params("id"), entity.DocumentStatus(in.Status))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewDocumentResponse(out))
}
