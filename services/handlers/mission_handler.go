package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/ascend-app/ascend_api/dto"
	"github.com/ascend-app/ascend_api/shared"
)

type MissionHandler struct {
	missionSvc MissionServiceInterface
}

func NewMissionHandler(missionSvc MissionServiceInterface) *MissionHandler {
	return &MissionHandler{
		missionSvc: missionSvc,
	}
}

func missionID(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return 0, shared.NewBadRequestError(err, "Invalid mission id")
	}
	return id, nil
}

// @Summary List missions
// @Description List missions in a bucket, ordered late, pending, done
// @Tags missions
// @Accept json
// @Produce json
// @Param bucket query string true "Bucket" Enums(daily, weekly, monthly)
// @Success 200 {object} shared.Response{data=dto.MissionListResponse}
// @Router /api/v1/missions [get]
func (h *MissionHandler) ListMissions(c *fiber.Ctx) error {
	bucket := c.Query("bucket", shared.BucketDaily)

	missions, err := h.missionSvc.ListMissions(bucket)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", missions)
}

// @Summary Create mission
// @Description Create a mission; the deadline is derived from the bucket
// @Tags missions
// @Accept json
// @Produce json
// @Param createRequest body dto.CreateMissionRequest true "Mission details"
// @Success 201 {object} shared.Response{data=dto.MissionResponse}
// @Router /api/v1/missions [post]
func (h *MissionHandler) CreateMission(c *fiber.Ctx) error {
	var req dto.CreateMissionRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	mission, err := h.missionSvc.CreateMission(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusCreated, "Created", mission)
}

// @Summary Get mission
// @Description Get a single mission by id
// @Tags missions
// @Accept json
// @Produce json
// @Param id path int true "Mission ID"
// @Success 200 {object} shared.Response{data=dto.MissionResponse}
// @Router /api/v1/missions/{id} [get]
func (h *MissionHandler) GetMission(c *fiber.Ctx) error {
	id, err := missionID(c)
	if err != nil {
		return err
	}

	mission, err := h.missionSvc.GetMission(id)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", mission)
}

// @Summary Update mission
// @Description Update a mission's title, category or reward
// @Tags missions
// @Accept json
// @Produce json
// @Param id path int true "Mission ID"
// @Param updateRequest body dto.UpdateMissionRequest true "Fields to update"
// @Success 200 {object} shared.Response{data=dto.MissionResponse}
// @Router /api/v1/missions/{id} [put]
func (h *MissionHandler) UpdateMission(c *fiber.Ctx) error {
	id, err := missionID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateMissionRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	mission, err := h.missionSvc.UpdateMission(id, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", mission)
}

// @Summary Delete mission
// @Description Delete a mission
// @Tags missions
// @Accept json
// @Produce json
// @Param id path int true "Mission ID"
// @Success 200 {object} shared.Response
// @Router /api/v1/missions/{id} [delete]
func (h *MissionHandler) DeleteMission(c *fiber.Ctx) error {
	id, err := missionID(c)
	if err != nil {
		return err
	}

	if err := h.missionSvc.DeleteMission(id); err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", nil)
}

// @Summary Toggle mission completion
// @Description Complete or uncheck a mission; completing grants XP once
// @Tags missions
// @Accept json
// @Produce json
// @Param id path int true "Mission ID"
// @Success 200 {object} shared.Response{data=dto.ToggleMissionResponse}
// @Router /api/v1/missions/{id}/toggle [post]
func (h *MissionHandler) ToggleMission(c *fiber.Ctx) error {
	id, err := missionID(c)
	if err != nil {
		return err
	}

	result, err := h.missionSvc.ToggleMission(id)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", result)
}
