package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ascend-app/ascend_api/dto"
	"github.com/ascend-app/ascend_api/shared"
)

type FocusHandler struct {
	focusSvc FocusServiceInterface
}

func NewFocusHandler(focusSvc FocusServiceInterface) *FocusHandler {
	return &FocusHandler{
		focusSvc: focusSvc,
	}
}

// @Summary Get focus state
// @Description Get the current focus clock state
// @Tags focus
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=dto.FocusStateResponse}
// @Router /api/v1/focus [get]
func (h *FocusHandler) GetState(c *fiber.Ctx) error {
	return shared.ResponseJSON(c, http.StatusOK, "Success", h.focusSvc.State())
}

// @Summary Set focus mode
// @Description Switch between timer and stopwatch while idle
// @Tags focus
// @Accept json
// @Produce json
// @Param modeRequest body dto.SetModeRequest true "Focus mode"
// @Success 200 {object} shared.Response{data=dto.FocusStateResponse}
// @Router /api/v1/focus/mode [put]
func (h *FocusHandler) SetMode(c *fiber.Ctx) error {
	var req dto.SetModeRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	state, err := h.focusSvc.SetMode(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", state)
}

// @Summary Set timer duration
// @Description Set the planned timer duration while idle in timer mode
// @Tags focus
// @Accept json
// @Produce json
// @Param durationRequest body dto.SetDurationRequest true "Duration in seconds"
// @Success 200 {object} shared.Response{data=dto.FocusStateResponse}
// @Router /api/v1/focus/duration [put]
func (h *FocusHandler) SetDuration(c *fiber.Ctx) error {
	var req dto.SetDurationRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	state, err := h.focusSvc.SetDuration(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", state)
}

// @Summary Attach mission
// @Description Link the focus clock to a mission, or detach with null
// @Tags focus
// @Accept json
// @Produce json
// @Param attachRequest body dto.AttachMissionRequest true "Mission to attach"
// @Success 200 {object} shared.Response{data=dto.FocusStateResponse}
// @Router /api/v1/focus/mission [put]
func (h *FocusHandler) AttachMission(c *fiber.Ctx) error {
	var req dto.AttachMissionRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	state, err := h.focusSvc.AttachMission(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", state)
}

// @Summary Start focus
// @Description Start a run from idle or resume a paused one
// @Tags focus
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=dto.FocusStateResponse}
// @Router /api/v1/focus/start [post]
func (h *FocusHandler) Start(c *fiber.Ctx) error {
	state, err := h.focusSvc.StartFocus()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", state)
}

// @Summary Pause focus
// @Description Pause a running session
// @Tags focus
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=dto.FocusStateResponse}
// @Router /api/v1/focus/pause [post]
func (h *FocusHandler) Pause(c *fiber.Ctx) error {
	state, err := h.focusSvc.PauseFocus()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", state)
}

// @Summary Finish focus
// @Description Commit the current run as completed
// @Tags focus
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=dto.FinishFocusResponse}
// @Router /api/v1/focus/finish [post]
func (h *FocusHandler) Finish(c *fiber.Ctx) error {
	result, err := h.focusSvc.FinishFocus()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", result)
}

// @Summary Reset focus
// @Description Abandon the current run, recording elapsed time
// @Tags focus
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=dto.FinishFocusResponse}
// @Router /api/v1/focus/reset [post]
func (h *FocusHandler) Reset(c *fiber.Ctx) error {
	result, err := h.focusSvc.ResetFocus()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", result)
}

// @Summary Get focus history
// @Description Get a day's sessions plus the Monday-to-Sunday weekly series
// @Tags focus
// @Accept json
// @Produce json
// @Param date query string false "Day, YYYY-MM-DD, defaults to today"
// @Success 200 {object} shared.Response{data=dto.FocusHistoryResponse}
// @Router /api/v1/focus/history [get]
func (h *FocusHandler) History(c *fiber.Ctx) error {
	date := c.Query("date", time.Now().Format("2006-01-02"))

	history, err := h.focusSvc.GetHistory(date)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", history)
}
