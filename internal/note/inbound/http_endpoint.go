package inbound

import (
	"github.com/notewallet/notewallet/internal/note/usecase"
	"github.com/notewallet/notewallet/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for the note store.
type HTTPEndpoint struct {
	uc uc
}

// List returns the caller's notes as a bare array, newest first.
func (h *HTTPEndpoint) List(r *router.Request) (any, error) {
	notes, err := h.uc.ListNotes(r.Context())
	if err != nil {
		return nil, err
	}

	resp := make([]NoteResponse, 0, len(notes))
	for _, n := range notes {
		resp = append(resp, newNoteResponse(n))
	}

	return resp, nil
}

// Create stores a new note and returns it.
func (h *HTTPEndpoint) Create(r *router.Request) (any, error) {
	var req CreateNoteRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	note, err := h.uc.CreateNote(r.Context(), usecase.CreateNoteInput{
		Content: req.Content,
	})
	if err != nil {
		return nil, err
	}

	return CreatedNoteResponse{NoteResponse: newNoteResponse(*note)}, nil
}

// Delete removes a note owned by the caller.
func (h *HTTPEndpoint) Delete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.DeleteNote(r.Context(), usecase.DeleteNoteInput{ID: id}); err != nil {
		return nil, err
	}

	return DeleteNoteResponse{Message: "Note deleted successfully"}, nil
}
