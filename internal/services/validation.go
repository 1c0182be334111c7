package services

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError reports a request value the service refused to accept.
// Its message is safe to show to clients.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func required(field string) error {
	return invalid(field, field+" is required")
}

// normalizeEmail trims and lowercases an address and checks its format.
func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", required("email")
	}
	if err := validate.Var(email, "email"); err != nil {
		return "", invalid("email", "email must be a valid email address")
	}
	return email, nil
}

// contactInput holds the identity fields shared by signup, admin create and
// employee update.
type contactInput struct {
	Name     string
	Email    string
	MobileNo string
}

func (in contactInput) normalize() (contactInput, error) {
	out := contactInput{
		Name:     strings.TrimSpace(in.Name),
		MobileNo: strings.TrimSpace(in.MobileNo),
	}
	if out.Name == "" {
		return contactInput{}, required("name")
	}

	email, err := normalizeEmail(in.Email)
	if err != nil {
		return contactInput{}, err
	}
	out.Email = email

	if out.MobileNo == "" {
		return contactInput{}, required("mobileNo")
	}
	return out, nil
}
