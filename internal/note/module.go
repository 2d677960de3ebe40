package note

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/notewallet/notewallet/internal/note/inbound"
	"github.com/notewallet/notewallet/internal/note/outbound/db"
	"github.com/notewallet/notewallet/internal/note/usecase"
	"github.com/notewallet/notewallet/internal/pkg/clock"
	"github.com/notewallet/notewallet/internal/pkg/instrument"
	"github.com/notewallet/notewallet/internal/pkg/router"
	"github.com/notewallet/notewallet/internal/pkg/uid"
	"github.com/notewallet/notewallet/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbNote := db.NewDB(dep.DBConn, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:     dbNote,
		Validator:  dep.Validator,
		UID:        dep.UID,
		Clock:      dep.Clock,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
