package inbound

import (
	"net/http"
	"strconv"
	"time"

	"github.com/notewallet/notewallet/internal/note/entity"
)

type CreateNoteRequest struct {
	Content string `json:"content"`
}

// NoteResponse is the wire shape of a note. IDs are serialized as strings.
type NoteResponse struct {
	ID        string    `json:"id"`
	UserEmail string    `json:"userEmail"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newNoteResponse(n entity.Note) NoteResponse {
	return NoteResponse{
		ID:        strconv.FormatInt(n.ID, 10),
		UserEmail: n.UserEmail,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

type CreatedNoteResponse struct {
	NoteResponse
}

func (CreatedNoteResponse) StatusCode() int {
	return http.StatusCreated
}

type DeleteNoteResponse struct {
	Message string `json:"message"`
}
