package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Onboarding-api/internal/application/onboarding"
)

// SummaryHandler conteo global de consultores por estado.
type SummaryHandler struct {
	uc *onboarding.ProgressUseCase
}

func NewSummaryHandler(uc *onboarding.ProgressUseCase) *SummaryHandler {
	return &SummaryHandler{uc: uc}
}

// Get godoc
// @Summary      Resumen de onboarding
// @Description  pending + in_progress + complete puede ser menor que total si hay estados no canónicos.
// @Tags         summary
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SummaryResponse
// @Router       /api/summary [get]
func (h *SummaryHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GlobalSummary(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
