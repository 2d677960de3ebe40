// Package otp generates one-time passwords for email verification flows.
//
// Codes are uniformly random numeric strings with a fixed digit count; the
// caller is responsible for persisting them with an expiry and comparing
// user input against the stored value.
package otp
