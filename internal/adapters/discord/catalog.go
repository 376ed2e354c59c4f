package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	pkgdiscord "hostbot/pkg/discord"
)

// catalog reloads both snapshots of the view and renders the catalog tab.
// Any load error (ErrNotAvailable included) is returned to the caller, which
// keeps the previous view.
func (h *Handler) catalog(ctx context.Context, loc string, vs *viewSession) (string, []*discordgo.MessageEmbed, []discordgo.MessageComponent, error) {
	eventID := vs.ctrl.EventID
	event, err := h.hostingUseCase.GetEvent(ctx, eventID)
	if err != nil {
		return "", nil, nil, err
	}
	accepted, err := h.requestUseCase.AcceptedHostingIDs(ctx, eventID, vs.userID)
	if err != nil {
		return "", nil, nil, fmt.Errorf("accepted hostings: %w", err)
	}
	ov, err := h.requestUseCase.Overview(ctx, eventID, vs.userID, accepted)
	if err != nil {
		return "", nil, nil, err
	}
	vs.overview = ov

	embed := pkgdiscord.BuildCatalogEmbed(h.t, loc, event, ov.Hostings, ov.Verdicts)
	return catalogWarning(h.t, loc, ov),
		[]*discordgo.MessageEmbed{embed},
		buildCatalogComponents(h.t, loc, vs.token, vs.userID, ov, vs.page),
		nil
}

// myRequests renders the requests tab of the view.
func (h *Handler) myRequests(ctx context.Context, loc string, vs *viewSession) ([]*discordgo.MessageEmbed, []discordgo.MessageComponent, error) {
	event, err := h.hostingUseCase.GetEvent(ctx, vs.ctrl.EventID)
	if err != nil {
		return nil, nil, err
	}
	mine, err := h.requestUseCase.MyRequestsForEvent(ctx, vs.ctrl.EventID, vs.userID)
	if err != nil {
		return nil, nil, err
	}
	embed := pkgdiscord.BuildMyRequestsEmbed(h.t, loc, event, mine)
	return []*discordgo.MessageEmbed{embed}, buildMyRequestsComponents(h.t, loc, vs.token, mine), nil
}

// session resolves the view a component or modal belongs to. It answers the
// interaction itself when the view is gone.
func (h *Handler) session(s *discordgo.Session, i *discordgo.InteractionCreate, token string) (*viewSession, bool) {
	user := interactionUser(i)
	if user == nil {
		return nil, false
	}
	vs, ok := h.sessions.get(token, user.ID)
	if !ok {
		h.respondExpired(s, i)
		return nil, false
	}
	return vs, true
}
