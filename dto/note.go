package dto

import "time"

type CreateNoteRequest struct {
	Title string `json:"title" validate:"required,min=1,max=200" example:"Weekly review"`
	Body  string `json:"body" validate:"max=20000"`
}

func (r CreateNoteRequest) Validate() error {
	return GetValidator().Struct(r)
}

type UpdateNoteRequest struct {
	Title *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Body  *string `json:"body,omitempty" validate:"omitempty,max=20000"`
}

func (r UpdateNoteRequest) Validate() error {
	return GetValidator().Struct(r)
}

type NoteResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
