package discord

import (
	"hostbot/internal/domain"
	"hostbot/internal/ports/output"
)

// TranslateDomainError maps a domain error code to a user-facing message in
// locale. Unknown codes get the generic message.
func TranslateDomainError(t output.T, locale, code string) string {
	if code == "" {
		return t.T(locale, "error_generic", nil)
	}
	return t.T(locale, "error_"+code, nil)
}

// DomainErrorMessage extracts the domain error code of err and resolves it to
// a user-facing message.
func DomainErrorMessage(t output.T, locale string, err error) string {
	if err == nil {
		return ""
	}
	return TranslateDomainError(t, locale, domain.Code(err))
}
