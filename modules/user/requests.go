package user

import "github.com/piggyparcel/backend/pkg/validator"

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	UserName string `json:"userName,omitempty"`
}

func (r RegisterRequest) Validate() error {
	return validator.Apply(
		validator.Required("name", r.Name),
		validator.Email("email", r.Email),
		validator.MinLen("password", r.Password, 6),
		validator.Optional(r.UserName, validator.MinLen("userName", r.UserName, 3)),
	)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validator.Apply(
		validator.Email("email", r.Email),
		validator.Required("password", r.Password),
	)
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

func (r ForgotPasswordRequest) Validate() error {
	return validator.Apply(
		validator.Email("email", r.Email),
	)
}

type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

func (r ResetPasswordRequest) Validate() error {
	return validator.Apply(
		validator.Required("token", r.Token),
		validator.MinLen("password", r.Password, 6),
	)
}
