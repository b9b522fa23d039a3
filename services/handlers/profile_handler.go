package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ascend-app/ascend_api/dto"
	"github.com/ascend-app/ascend_api/shared"
)

type ProfileHandler struct {
	progSvc ProgressionServiceInterface
}

func NewProfileHandler(progSvc ProgressionServiceInterface) *ProfileHandler {
	return &ProfileHandler{
		progSvc: progSvc,
	}
}

// @Summary Get player profile
// @Description Get the player profile with XP, level, rank and attributes
// @Tags profile
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=dto.ProfileResponse}
// @Router /api/v1/profile [get]
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	profile, err := h.progSvc.GetProfile()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", profile)
}

// @Summary Set player name
// @Description Set the player name during onboarding. Fails once a name is set.
// @Tags profile
// @Accept json
// @Produce json
// @Param nameRequest body dto.UpdateNameRequest true "New player name"
// @Success 200 {object} shared.Response{data=dto.ProfileResponse}
// @Router /api/v1/profile/name [put]
func (h *ProfileHandler) UpdateName(c *fiber.Ctx) error {
	var req dto.UpdateNameRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	profile, err := h.progSvc.UpdateName(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", profile)
}

// @Summary Spend a skill point
// @Description Spend one skill point on an attribute
// @Tags profile
// @Accept json
// @Produce json
// @Param spendRequest body dto.SpendAttributeRequest true "Attribute to raise"
// @Success 200 {object} shared.Response{data=dto.ProfileResponse}
// @Router /api/v1/profile/attributes/spend [post]
func (h *ProfileHandler) SpendAttribute(c *fiber.Ctx) error {
	var req dto.SpendAttributeRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	profile, err := h.progSvc.SpendAttribute(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", profile)
}

// @Summary Get progression stats
// @Description Get the aggregated progression overview
// @Tags profile
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=dto.StatsResponse}
// @Router /api/v1/stats [get]
func (h *ProfileHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.progSvc.GetStats()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", stats)
}
