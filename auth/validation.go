package auth

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/user/dogadopt-go/apperror"
)

var validate = validator.New()

// credentialMessages maps a failed field/tag pair to the client-facing
// message. Any missing field collapses into the shared "required" message.
var credentialMessages = map[string]string{
	"Username/min": "Username must be at least 3 characters long",
	"Password/min": "Password must be at least 6 characters long",
}

const msgCredentialsRequired = "Username and password are required"

// validateCredentials runs struct-tag validation over a register or login
// payload. Missing fields take priority over length failures, and the first
// applicable message wins, matching the order the checks are documented in.
func validateCredentials(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperror.NewInternalError("failed to validate request", err)
	}

	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return apperror.NewValidationError(msgCredentialsRequired, nil)
		}
	}
	for _, fe := range fieldErrs {
		if msg, ok := credentialMessages[fe.StructField()+"/"+fe.Tag()]; ok {
			return apperror.NewValidationError(msg, nil)
		}
	}
	return apperror.NewValidationError(msgCredentialsRequired, nil)
}
