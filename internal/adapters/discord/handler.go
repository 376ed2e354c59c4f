package discord

import (
	"hostbot/internal/ports/input"
	"hostbot/internal/ports/output"
)

// Handler handles Discord interactions using use cases.
type Handler struct {
	hostingUseCase input.HostingUseCase
	requestUseCase input.HostingRequestUseCase
	t              output.T
	sessions       *sessionStore
}

// NewHandler creates a Handler.
func NewHandler(
	hostingUseCase input.HostingUseCase,
	requestUseCase input.HostingRequestUseCase,
	t output.T,
) *Handler {
	return &Handler{
		hostingUseCase: hostingUseCase,
		requestUseCase: requestUseCase,
		t:              t,
		sessions:       newSessionStore(),
	}
}
