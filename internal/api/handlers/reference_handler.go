package handlers

import (
	"claimvista/internal/dto"
	"claimvista/internal/store"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ReferenceHandler struct {
	refs   *store.ReferenceStore
	logger *zap.Logger
}

func NewReferenceHandler(refs *store.ReferenceStore, logger *zap.Logger) *ReferenceHandler {
	return &ReferenceHandler{
		refs:   refs,
		logger: logger,
	}
}

// ListHospitals godoc
// @Summary List hospitals available for claim assignment
// @Tags reference
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.HospitalResponse
// @Router /api/v1/hospitals [get]
func (h *ReferenceHandler) ListHospitals(c *fiber.Ctx) error {
	return c.JSON(dto.NewHospitalResponses(h.refs.Hospitals()))
}

// ListAgents godoc
// @Summary List insurance agents available for claim assignment
// @Tags reference
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.AgentResponse
// @Router /api/v1/agents [get]
func (h *ReferenceHandler) ListAgents(c *fiber.Ctx) error {
	return c.JSON(dto.NewAgentResponses(h.refs.Agents()))
}
