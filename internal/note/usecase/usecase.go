package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/notewallet/notewallet/internal/note/entity"
	"github.com/notewallet/notewallet/internal/pkg/clock"
	"github.com/notewallet/notewallet/internal/pkg/goerror"
	"github.com/notewallet/notewallet/internal/pkg/instrument"
	"github.com/notewallet/notewallet/internal/pkg/jwt"
	"github.com/notewallet/notewallet/internal/pkg/uid"
	"github.com/notewallet/notewallet/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	GetAccountEmailByID(ctx context.Context, id int64) (string, error)
	ListNotesByEmail(ctx context.Context, email string) ([]entity.Note, error)
	CreateNote(ctx context.Context, in entity.Note) error
	GetNoteByID(ctx context.Context, id int64) (*entity.Note, error)
	DeleteNote(ctx context.Context, id int64) error
}

type Usecase struct {
	repoDB    repoDB
	validator validator.Validator
	uid       uid.NumberID
	clock     clock.Clocker
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	Validator  validator.Validator
	UID        uid.NumberID
	Clock      clock.Clocker
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		validator: dep.Validator,
		uid:       dep.UID,
		clock:     dep.Clock,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("note.usecase").Start(ctx, name)
}

// ownerEmail resolves the authenticated account's email, failing when the
// token is missing or the account no longer exists.
func (s *Usecase) ownerEmail(ctx context.Context) (string, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return "", goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	email, err := s.repoDB.GetAccountEmailByID(ctx, clm.AccountID)
	if errors.Is(err, goerror.ErrNotFound) {
		return "", goerror.NewBusiness("User not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get account email by id", "account_id", clm.AccountID, "error", err)
		return "", goerror.NewServer(err)
	}

	return email, nil
}
