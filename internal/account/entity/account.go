package entity

import "time"

// Account is a registered (or pending) user of the service.
type Account struct {
	ID           int64
	Name         string
	DOB          string
	Email        string
	Status       AccountStatus
	OTPHash      *string
	OTPExpiresAt *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PendingOTP carries a freshly issued one-time code for persistence.
type PendingOTP struct {
	AccountID int64
	OTPHash   string
	ExpiresAt time.Time
}

// NewAccount is the payload for creating a pending account with its first OTP.
type NewAccount struct {
	ID        int64
	Name      string
	DOB       string
	Email     string
	Status    AccountStatus
	OTPHash   string
	ExpiresAt time.Time
}

// UpdatePendingAccount refreshes profile fields and the OTP of an account
// that has not completed verification yet.
type UpdatePendingAccount struct {
	ID        int64
	Name      string
	DOB       string
	OTPHash   string
	ExpiresAt time.Time
}
