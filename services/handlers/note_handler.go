package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ascend-app/ascend_api/dto"
	"github.com/ascend-app/ascend_api/shared"
)

type NoteHandler struct {
	noteSvc NoteServiceInterface
}

func NewNoteHandler(noteSvc NoteServiceInterface) *NoteHandler {
	return &NoteHandler{
		noteSvc: noteSvc,
	}
}

// @Summary List notes
// @Description List notes, most recently updated first
// @Tags notes
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=[]dto.NoteResponse}
// @Router /api/v1/notes [get]
func (h *NoteHandler) ListNotes(c *fiber.Ctx) error {
	notes, err := h.noteSvc.GetNotes()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", notes)
}

// @Summary Get note
// @Description Get a single note by id
// @Tags notes
// @Accept json
// @Produce json
// @Param id path string true "Note ID"
// @Success 200 {object} shared.Response{data=dto.NoteResponse}
// @Router /api/v1/notes/{id} [get]
func (h *NoteHandler) GetNote(c *fiber.Ctx) error {
	note, err := h.noteSvc.GetNote(c.Params("id"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", note)
}

// @Summary Create note
// @Description Create a note
// @Tags notes
// @Accept json
// @Produce json
// @Param createRequest body dto.CreateNoteRequest true "Note contents"
// @Success 201 {object} shared.Response{data=dto.NoteResponse}
// @Router /api/v1/notes [post]
func (h *NoteHandler) CreateNote(c *fiber.Ctx) error {
	var req dto.CreateNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	note, err := h.noteSvc.CreateNote(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusCreated, "Created", note)
}

// @Summary Update note
// @Description Update a note's title or body
// @Tags notes
// @Accept json
// @Produce json
// @Param id path string true "Note ID"
// @Param updateRequest body dto.UpdateNoteRequest true "Fields to update"
// @Success 200 {object} shared.Response{data=dto.NoteResponse}
// @Router /api/v1/notes/{id} [put]
func (h *NoteHandler) UpdateNote(c *fiber.Ctx) error {
	var req dto.UpdateNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	note, err := h.noteSvc.UpdateNote(c.Params("id"), req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", note)
}

// @Summary Delete note
// @Description Delete a note
// @Tags notes
// @Accept json
// @Produce json
// @Param id path string true "Note ID"
// @Success 200 {object} shared.Response
// @Router /api/v1/notes/{id} [delete]
func (h *NoteHandler) DeleteNote(c *fiber.Ctx) error {
	if err := h.noteSvc.DeleteNote(c.Params("id")); err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", nil)
}
