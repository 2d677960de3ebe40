// Package clock abstracts the system clock behind a tiny interface so that
// time-sensitive logic (OTP expiry, token lifetimes) can be tested with a
// fixed or stepped clock.
package clock
