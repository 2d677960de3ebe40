package inbound

import "net/http"

type RegisterSendOTPRequest struct {
	Name  string `json:"name"`
	DOB   string `json:"dob"`
	Email string `json:"email"`
}

type RegisterSendOTPResponse struct {
	Message string `json:"message"`
}

func (RegisterSendOTPResponse) StatusCode() int {
	return http.StatusCreated
}

type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type RegisterVerifyOTPResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

type LoginSendOTPRequest struct {
	Email string `json:"email"`
}

type LoginSendOTPResponse struct {
	Message string `json:"message"`
}

type LoginVerifyOTPResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

type ProfileResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
