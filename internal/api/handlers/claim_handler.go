package handlers

import (
	"claimvista/internal/dto"
	"claimvista/internal/models"
	"claimvista/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ClaimHandler struct {
	claimService *service.ClaimService
	logger       *zap.Logger
}

func NewClaimHandler(claimService *service.ClaimService, logger *zap.Logger) *ClaimHandler {
	return &ClaimHandler{
		claimService: claimService,
		logger:       logger,
	}
}

// SubmitClaim godoc
// @Summary Submit a new claim
// @Description Submit an insurance claim; only user accounts may submit
// @Tags claims
// @Accept json
// @Produce json
// @Param request body dto.SubmitClaimRequest true "Claim submission"
// @Security Bearer
// @Success 201 {object} dto.ClaimResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /api/v1/claims [post]
func (h *ClaimHandler) SubmitClaim(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.SubmitClaimRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return validationError(c, err)
	}

	claim, err := h.claimService.Submit(c.Context(), actor, &req)
	if err != nil {
		switch err {
		case service.ErrPermissionDenied:
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Only users can submit claims",
			})
		case service.ErrUnknownHospital:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Unknown hospital",
			})
		case service.ErrUnknownAgent:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Unknown agent",
			})
		}
		h.logger.Error("Failed to submit claim", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to submit claim",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewClaimResponse(claim))
}

// ListClaims godoc
// @Summary List claims visible to the current user
// @Description Users see their own claims, hospitals/agents see assigned claims, admins see all
// @Tags claims
// @Produce json
// @Param status query string false "Filter by status (pending, in-review, approved, rejected)"
// @Security Bearer
// @Success 200 {array} dto.ClaimResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/claims [get]
func (h *ClaimHandler) ListClaims(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var status models.ClaimStatus
	if raw := c.Query("status"); raw != "" {
		status, err = models.ParseClaimStatus(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid status filter",
			})
		}
	}

	claims := h.claimService.ClaimsFor(c.Context(), actor, status)
	return c.JSON(dto.NewClaimResponses(claims))
}

// GetClaim godoc
// @Summary Get a claim by id
// @Tags claims
// @Produce json
// @Param id path string true "Claim ID"
// @Security Bearer
// @Success 200 {object} dto.ClaimResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/claims/{id} [get]
func (h *ClaimHandler) GetClaim(c *fiber.Ctx) error {
	if _, err := currentUser(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	claim, ok := h.claimService.GetByID(c.Context(), c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Claim not found",
		})
	}

	return c.JSON(dto.NewClaimResponse(claim))
}

// DecideClaim godoc
// @Summary Record an approval or rejection
// @Description The assigned hospital or agent records their decision; admins must name the party via acting_as
// @Tags claims
// @Accept json
// @Produce json
// @Param id path string true "Claim ID"
// @Param request body dto.DecisionRequest true "Decision"
// @Security Bearer
// @Success 200 {object} dto.ClaimResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/claims/{id}/decision [post]
func (h *ClaimHandler) DecideClaim(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.DecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return validationError(c, err)
	}

	decision, err := models.ParseDecision(req.Decision)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid decision",
		})
	}

	claim, err := h.claimService.Decide(c.Context(), actor, c.Params("id"), decision, req.ActingAs)
	if err != nil {
		switch err {
		case service.ErrClaimNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Claim not found",
			})
		case service.ErrPermissionDenied:
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "You don't have permission to update this claim",
			})
		case service.ErrActingPartyRequired:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Admins must specify acting_as (hospital or agent)",
			})
		}
		h.logger.Error("Failed to update claim status", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update claim status",
		})
	}

	return c.JSON(dto.NewClaimResponse(claim))
}

// DashboardStats godoc
// @Summary Role-shaped dashboard counters
// @Tags dashboard
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.DashboardStatsResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/dashboard/stats [get]
func (h *ClaimHandler) DashboardStats(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	return c.JSON(h.claimService.Stats(c.Context(), actor))
}
