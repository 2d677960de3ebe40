package entity

// AccountStatus is the lifecycle state of an account.
type AccountStatus int16

const (
	AccountStatusUnknown AccountStatus = iota
	AccountStatusUnverified
	AccountStatusActive
)

// String returns a human-readable status name.
func (a AccountStatus) String() string {
	switch a {
	case AccountStatusUnverified:
		return "unverified"
	case AccountStatusActive:
		return "active"
	default:
		return "unknown"
	}
}

// Ensure collapses out-of-range values to AccountStatusUnknown.
func (a AccountStatus) Ensure() AccountStatus {
	switch a {
	case AccountStatusUnverified, AccountStatusActive:
		return a
	default:
		return AccountStatusUnknown
	}
}
