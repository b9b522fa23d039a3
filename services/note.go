package services

import (
	"github.com/alphabatem/common/context"

	"github.com/ascend-app/ascend_api/dto"
	"github.com/ascend-app/ascend_api/model"
)

// NoteService manages free-form notes attached to the player's journal.
type NoteService struct {
	context.DefaultService

	sqlSvc *SqlService
}

const NOTE_SVC = "note_svc"

func (svc NoteService) Id() string {
	return NOTE_SVC
}

func (svc *NoteService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *NoteService) Start() error {
	svc.sqlSvc = svc.Service(SQL_SVC).(*SqlService)
	return nil
}

func (svc *NoteService) GetNotes() ([]dto.NoteResponse, error) {
	notes, err := svc.sqlSvc.Notes().GetNotes()
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	resp := make([]dto.NoteResponse, 0, len(notes))
	for i := range notes {
		resp = append(resp, toNoteResponse(&notes[i]))
	}
	return resp, nil
}

func (svc *NoteService) GetNote(id string) (*dto.NoteResponse, error) {
	note, err := svc.sqlSvc.Notes().GetNote(id)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	resp := toNoteResponse(note)
	return &resp, nil
}

func (svc *NoteService) CreateNote(req dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	note := &model.Note{
		Title: req.Title,
		Body:  req.Body,
	}

	if err := svc.sqlSvc.Notes().CreateNote(note); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	resp := toNoteResponse(note)
	return &resp, nil
}

func (svc *NoteService) UpdateNote(id string, req dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	note, err := svc.sqlSvc.Notes().GetNote(id)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Body != nil {
		note.Body = *req.Body
	}

	if err := svc.sqlSvc.Notes().UpdateNote(note); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	resp := toNoteResponse(note)
	return &resp, nil
}

func (svc *NoteService) DeleteNote(id string) error {
	if err := svc.sqlSvc.Notes().DeleteNote(id); err != nil {
		return svc.sqlSvc.HandleError(err)
	}
	return nil
}

func toNoteResponse(n *model.Note) dto.NoteResponse {
	return dto.NoteResponse{
		ID:        n.ID,
		Title:     n.Title,
		Body:      n.Body,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
