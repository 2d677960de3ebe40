package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/notewallet/notewallet/internal/account/entity"
	"github.com/notewallet/notewallet/internal/pkg/clock"
	"github.com/notewallet/notewallet/internal/pkg/config"
	"github.com/notewallet/notewallet/internal/pkg/goerror"
	"github.com/notewallet/notewallet/internal/pkg/hash"
	"github.com/notewallet/notewallet/internal/pkg/instrument"
	"github.com/notewallet/notewallet/internal/pkg/jwt"
	"github.com/notewallet/notewallet/internal/pkg/mail"
	"github.com/notewallet/notewallet/internal/pkg/otp"
	"github.com/notewallet/notewallet/internal/pkg/ratelimit"
	"github.com/notewallet/notewallet/internal/pkg/uid"
	"github.com/notewallet/notewallet/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	GetAccountByEmail(ctx context.Context, email string) (*entity.Account, error)
	GetAccountByID(ctx context.Context, id int64) (*entity.Account, error)
	CreateAccount(ctx context.Context, in entity.NewAccount) error
	UpdatePendingAccount(ctx context.Context, in entity.UpdatePendingAccount) error
	SetOTP(ctx context.Context, in entity.PendingOTP) error
	VerifyAccount(ctx context.Context, id int64) error
	ClearOTP(ctx context.Context, id int64) error
}

type Usecase struct {
	repoDB    repoDB
	validator validator.Validator
	cfg       config.Config
	mailer    mail.Mail
	otp       otp.Generator
	hmac      hash.Hash
	limiter   ratelimit.Limiter
	uid       uid.NumberID
	clock     clock.Clocker
	jwt       jwt.JWT
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	Validator  validator.Validator
	Config     config.Config
	Mailer     mail.Mail
	OTP        otp.Generator
	HMAC       hash.Hash
	Limiter    ratelimit.Limiter
	UID        uid.NumberID
	Clock      clock.Clocker
	JWT        jwt.JWT
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		validator: dep.Validator,
		cfg:       dep.Config,
		mailer:    dep.Mailer,
		otp:       dep.OTP,
		hmac:      dep.HMAC,
		limiter:   dep.Limiter,
		uid:       dep.UID,
		clock:     dep.Clock,
		jwt:       dep.JWT,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("account.usecase").Start(ctx, name)
}

func (s *Usecase) otpTTL() time.Duration {
	ttl := s.cfg.GetMinute("modules.account.otp_ttl_minutes")
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return ttl
}

func (s *Usecase) otpMailBody(code string, ttl time.Duration) string {
	return fmt.Sprintf("Your OTP is %s. It is valid for %d minutes.", code, int(ttl.Minutes()))
}

// issueOTP generates a fresh code and its storable hash.
func (s *Usecase) issueOTP(ctx context.Context) (code, codeHash string, err error) {
	code, err = s.otp.Generate()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate otp", "error", err)
		return "", "", goerror.NewServer(err)
	}

	hashed, err := s.hmac.Hash(code)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash otp", "error", err)
		return "", "", goerror.NewServer(err)
	}

	return code, string(hashed), nil
}

func (s *Usecase) checkRateLimit(ctx context.Context, flow, email string) error {
	ok, err := s.limiter.Allow(ctx, flow+":"+email)
	if err != nil {
		slog.ErrorContext(ctx, "failed to check otp rate limit", "email", email, "error", err)
		return goerror.NewServer(err)
	}
	if !ok {
		slog.WarnContext(ctx, "otp request rate limited", "flow", flow, "email", email)
		return goerror.NewBusiness("Too many OTP requests, please try again later", goerror.CodeTooManyRequest)
	}
	return nil
}

func (s *Usecase) authenticated(ctx context.Context) (*jwt.Claims, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}
	return clm, nil
}
