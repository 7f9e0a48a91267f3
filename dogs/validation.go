package dogs

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/user/dogadopt-go/apperror"
)

var validate = validator.New()

// dogFields carries the trimmed field values through struct-tag validation.
// Field order here fixes the order of aggregated messages.
type dogFields struct {
	Name            string `validate:"max=50"`
	Description     string `validate:"max=500"`
	AdoptionMessage string `validate:"max=200"`
}

var dogFieldMessages = map[string]string{
	"Name/max":            "Dog name cannot exceed 50 characters",
	"Description/max":     "Description cannot exceed 500 characters",
	"AdoptionMessage/max": "Adoption message cannot exceed 200 characters",
}

// checkFieldLengths validates length caps and aggregates every failed field's
// message joined by ", ", so a request with both fields over the cap reports
// both problems at once.
func checkFieldLengths(fields dogFields) error {
	err := validate.Struct(fields)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperror.NewInternalError("failed to validate dog fields", err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if msg, ok := dogFieldMessages[fe.StructField()+"/"+fe.Tag()]; ok {
			messages = append(messages, msg)
		}
	}
	return apperror.NewValidationError(strings.Join(messages, ", "), nil)
}

// validateRegisterDog applies the registration input rules in order: both
// fields present, neither blank after trimming, then the length caps.
// It returns the trimmed values to store.
func validateRegisterDog(req RegisterDogRequest) (name, description string, err error) {
	if req.Name == "" || req.Description == "" {
		return "", "", apperror.NewBadRequestError("Name and description are required", nil)
	}

	name = strings.TrimSpace(req.Name)
	if name == "" {
		return "", "", apperror.NewBadRequestError("Dog name cannot be empty", nil)
	}

	description = strings.TrimSpace(req.Description)
	if description == "" {
		return "", "", apperror.NewBadRequestError("Dog description cannot be empty", nil)
	}

	if err := checkFieldLengths(dogFields{Name: name, Description: description}); err != nil {
		return "", "", err
	}
	return name, description, nil
}

// validateAdoptionMessage trims the optional thank-you message and enforces
// its length cap. A blank message comes back nil and is stored as absent.
func validateAdoptionMessage(raw string) (*string, error) {
	msg := strings.TrimSpace(raw)
	if msg == "" {
		return nil, nil
	}
	if err := checkFieldLengths(dogFields{AdoptionMessage: msg}); err != nil {
		return nil, err
	}
	return &msg, nil
}
