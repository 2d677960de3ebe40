package app

import (
	"log/slog"
	"os"

	"github.com/notewallet/notewallet/internal/account"
	"github.com/notewallet/notewallet/internal/note"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.account.enabled") {
		if err := account.New(account.Dependency{
			DBConn:     a.dbConn,
			Router:     a.router,
			Config:     a.config,
			Instrument: a.ins,
			Mailer:     a.mail,
			OTP:        a.otp,
			HMAC:       a.hmac,
			Limiter:    a.limiter,
			UID:        a.uid,
			Clock:      a.clock,
			Validator:  a.validator,
			JWT:        a.jwt,
		}); err != nil {
			slog.Error("failed to init module account", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.note.enabled") {
		if err := note.New(note.Dependency{
			DBConn:     a.dbConn,
			Router:     a.router,
			Instrument: a.ins,
			UID:        a.uid,
			Clock:      a.clock,
			Validator:  a.validator,
		}); err != nil {
			slog.Error("failed to init module note", "error", err)
			os.Exit(1)
		}
	}
}
