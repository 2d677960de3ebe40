package inbound

import (
	"context"

	"github.com/notewallet/notewallet/internal/note/entity"
	"github.com/notewallet/notewallet/internal/note/usecase"
	"github.com/notewallet/notewallet/internal/pkg/router"
)

type uc interface {
	ListNotes(ctx context.Context) ([]entity.Note, error)
	CreateNote(ctx context.Context, in usecase.CreateNoteInput) (*entity.Note, error)
	DeleteNote(ctx context.Context, in usecase.DeleteNoteInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// All note endpoints need an authenticated session.
	r.GET("/notes", end.List)
	r.POST("/notes", end.Create)
	r.DELETE("/notes/:id", end.Delete)
}
