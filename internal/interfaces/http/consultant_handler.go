package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Onboarding-api/internal/application/dto"
	"github.com/jhoicas/Onboarding-api/internal/application/onboarding"
	"github.com/jhoicas/Onboarding-api/internal/domain/entity"
)

// defaultActivityLimit límite del listado de actividades si no llega ?limit=.
const defaultActivityLimit = 50

// ConsultantHandler maneja consultores, su detalle de progreso y su log de actividades.
type ConsultantHandler struct {
	consultants *onboarding.ConsultantUseCase
	progress    *onboarding.ProgressUseCase
	activities  *onboarding.ActivityUseCase
}

// NewConsultantHandler construye el handler.
func NewConsultantHandler(
	consultants *onboarding.ConsultantUseCase,
	progress *onboarding.ProgressUseCase,
	activities *onboarding.ActivityUseCase,
) *ConsultantHandler {
	return &ConsultantHandler{consultants: consultants, progress: progress, activities: activities}
}

// List godoc
// @Summary      Listar consultores con su avance documental
// @Tags         consultants
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ConsultantListItem
// @Router       /api/consultants [get]
func (h *ConsultantHandler) List(c *fiber.Ctx) error {
	out, err := h.progress.ListWithProgress(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar consultor
// @Description  Por defecto agrega los cinco documentos estándar (add_standard_docs=false lo evita).
// @Tags         consultants
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateConsultantRequest  true  "Datos del consultor"
// @Success      201   {object}  dto.ConsultantResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/consultants [post]
func (h *ConsultantHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateConsultantRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.consultants.Add(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewConsultantResponse(out))
}

// Get godoc
// @Summary      Detalle de progreso del consultor
// @Tags         consultants
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del consultor"
// @Success      200  {object}  dto.ConsultantProgressResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/consultants/{id} [get]
func (h *ConsultantHandler) Get(c *fiber.Ctx) error {
	out, err := h.progress.ConsultantProgress(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado del consultor
// @Tags         consultants
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del consultor"
// @Param        body  body  dto.UpdateStatusRequest  true  "Pending | In Progress | Complete"
// @Success      200   {object}  dto.ConsultantResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/consultants/{id}/status [put]
func (h *ConsultantHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.consultants.UpdateStatus(c.UserContext(), c.Params("id"), entity.ConsultantStatus(in.Status))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewConsultantResponse(out))
}

// Activities godoc
// @Summary      Actividades recientes del consultor
// @Tags         consultants
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true   "ID del consultor"
// @Param        limit  query  int     false  "Máximo de entradas (default 50)"
// @Success      200    {array}   dto.ActivityResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/consultants/{id}/activities [get]
func (h *ConsultantHandler) Activities(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultActivityLimit)
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	out, err := h.activities.Recent(c.UserContext(), c.Params("id"), limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewActivityList(out))
}
