package app

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
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
	"github.com/redis/go-redis/v9"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	validator validator.Validator
	clock     clock.Clocker
	hmac      hash.Hash
	uid       uid.NumberID
	uuid      uid.StringID
	otp       otp.Generator
	jwt       jwt.JWT

	// resources
	dbConn    *pgxpool.Pool
	cacheConn *redis.Client
	limiter   ratelimit.Limiter
	mail      mail.Mail

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initDatabase()
	app.initCache()
	app.initMail()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
