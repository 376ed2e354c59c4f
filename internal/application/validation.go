package application

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"hostbot/internal/domain"
)

// FieldError is one rejected field of a hosting proposal.
type FieldError struct {
	Field string
	Tag   string
	Param string
}

// ValidationErrors wraps domain.ErrInvalidHosting.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		if fe.Param != "" {
			parts = append(parts, fmt.Sprintf("%s (%s=%s)", fe.Field, fe.Tag, fe.Param))
		} else {
			parts = append(parts, fmt.Sprintf("%s (%s)", fe.Field, fe.Tag))
		}
	}
	return fmt.Sprintf("%v: %s", domain.ErrInvalidHosting, strings.Join(parts, ", "))
}

func (v ValidationErrors) Unwrap() error { return domain.ErrInvalidHosting }

// Fields lists the rejected field names, in order.
func (v ValidationErrors) Fields() []string {
	out := make([]string, len(v))
	for i, fe := range v {
		out[i] = fe.Field
	}
	return out
}

type proposalValidator struct {
	validate *validator.Validate
}

func newProposalValidator() *proposalValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	return &proposalValidator{validate: v}
}

func (v *proposalValidator) Validate(in any) error {
	err := v.validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := make(ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Tag: fe.Tag(), Param: fe.Param()})
	}
	return out
}
