package account

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/notewallet/notewallet/internal/account/inbound"
	"github.com/notewallet/notewallet/internal/account/outbound/db"
	"github.com/notewallet/notewallet/internal/account/usecase"
	"github.com/notewallet/notewallet/internal/pkg/clock"
	"github.com/notewallet/notewallet/internal/pkg/config"
	"github.com/notewallet/notewallet/internal/pkg/hash"
	"github.com/notewallet/notewallet/internal/pkg/instrument"
	"github.com/notewallet/notewallet/internal/pkg/jwt"
	"github.com/notewallet/notewallet/internal/pkg/mail"
	"github.com/notewallet/notewallet/internal/pkg/otp"
	"github.com/notewallet/notewallet/internal/pkg/ratelimit"
	"github.com/notewallet/notewallet/internal/pkg/router"
	"github.com/notewallet/notewallet/internal/pkg/uid"
	"github.com/notewallet/notewallet/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	Mailer     mail.Mail                  `validate:"required"`
	OTP        otp.Generator              `validate:"required"`
	HMAC       hash.Hash                  `validate:"required"`
	Limiter    ratelimit.Limiter          `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	JWT        jwt.JWT                    `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbAccount := db.NewDB(dep.DBConn, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:     dbAccount,
		Validator:  dep.Validator,
		Config:     dep.Config,
		Mailer:     dep.Mailer,
		OTP:        dep.OTP,
		HMAC:       dep.HMAC,
		Limiter:    dep.Limiter,
		UID:        dep.UID,
		Clock:      dep.Clock,
		JWT:        dep.JWT,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
