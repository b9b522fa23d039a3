package handlers

import (
	"github.com/ascend-app/ascend_api/dto"
)

type ProgressionServiceInterface interface {
	GetProfile() (*dto.ProfileResponse, error)
	UpdateName(req dto.UpdateNameRequest) (*dto.ProfileResponse, error)
	SpendAttribute(req dto.SpendAttributeRequest) (*dto.ProfileResponse, error)
	GetStats() (*dto.StatsResponse, error)
}

type MissionServiceInterface interface {
	CreateMission(req dto.CreateMissionRequest) (*dto.MissionResponse, error)
	ListMissions(bucket string) (*dto.MissionListResponse, error)
	GetMission(id int) (*dto.MissionResponse, error)
	UpdateMission(id int, req dto.UpdateMissionRequest) (*dto.MissionResponse, error)
	DeleteMission(id int) error
	ToggleMission(id int) (*dto.ToggleMissionResponse, error)
}

type FocusServiceInterface interface {
	State() *dto.FocusStateResponse
	SetMode(req dto.SetModeRequest) (*dto.FocusStateResponse, error)
	SetDuration(req dto.SetDurationRequest) (*dto.FocusStateResponse, error)
	AttachMission(req dto.AttachMissionRequest) (*dto.FocusStateResponse, error)
	StartFocus() (*dto.FocusStateResponse, error)
	PauseFocus() (*dto.FocusStateResponse, error)
	FinishFocus() (*dto.FinishFocusResponse, error)
	ResetFocus() (*dto.FinishFocusResponse, error)
	GetHistory(date string) (*dto.FocusHistoryResponse, error)
}

type NoteServiceInterface interface {
	GetNotes() ([]dto.NoteResponse, error)
	GetNote(id string) (*dto.NoteResponse, error)
	CreateNote(req dto.CreateNoteRequest) (*dto.NoteResponse, error)
	UpdateNote(id string, req dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	DeleteNote(id string) error
}
