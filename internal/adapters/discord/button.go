package discord

import (
	"context"
	"strconv"

	"github.com/bwmarrin/discordgo"

	pkgdiscord "hostbot/pkg/discord"
)

// HandlePropose opens the hosting form.
func (h *Handler) HandlePropose(s *discordgo.Session, i *discordgo.InteractionCreate, args []string) {
	vs, ok := h.session(s, i, strArg(args, 0))
	if !ok {
		return
	}
	vs.mu.Lock()
	defer vs.mu.Unlock()
	vs.resetForm()

	loc := locale(i)
	if !vs.ctrl.ProposeHosting() {
		h.respondExpired(s, i)
		return
	}
	respondModal(s, i.Interaction, customID(idHostingModal, vs.token), h.t.T(loc, "modal_hosting_title", nil), hostingModalInputs(h.t, loc)...)
}

// HandleMyRequests switches the view to the user's requests for the event.
func (h *Handler) HandleMyRequests(s *discordgo.Session, i *discordgo.InteractionCreate, args []string) {
	vs, ok := h.session(s, i, strArg(args, 0))
	if !ok {
		return
	}
	vs.mu.Lock()
	defer vs.mu.Unlock()
	vs.resetForm()

	embeds, components, err := h.myRequests(context.Background(), locale(i), vs)
	if err != nil {
		h.respondError(s, i, "chargement de mes demandes", err)
		return
	}
	vs.ctrl.ShowMyRequests()
	updateView(s, i.Interaction, "", embeds, components)
}

// HandleCancelRequest cancels a PENDING request from the requests tab.
func (h *Handler) HandleCancelRequest(s *discordgo.Session, i *discordgo.InteractionCreate, args []string) {
	vs, ok := h.session(s, i, strArg(args, 0))
	if !ok {
		return
	}
	requestID, ok := idArg(args, 1)
	if !ok {
		return
	}
	vs.mu.Lock()
	defer vs.mu.Unlock()

	ctx := context.Background()
	loc := locale(i)
	req, changed, err := h.requestUseCase.Cancel(ctx, requestID, vs.userID)
	if err != nil {
		h.respondError(s, i, "annulation de la demande", err)
		return
	}

	content := h.t.T(loc, "msg_request_cancelled", map[string]any{"ID": req.ID})
	if !changed {
		content = h.t.T(loc, "msg_request_unchanged", map[string]any{"ID": req.ID, "Status": pkgdiscord.StatusLabel(h.t, loc, req)})
	}
	embeds, components, err := h.myRequests(ctx, loc, vs)
	if err != nil {
		// The cancellation went through; only the refresh failed.
		respondEphemeral(s, i.Interaction, content)
		return
	}
	updateView(s, i.Interaction, content, embeds, components)
}

// HandleReceived shows the host the requests made on their hostings. With a
// page argument it pages the view it was clicked from.
func (h *Handler) HandleReceived(s *discordgo.Session, i *discordgo.InteractionCreate, args []string) {
	user := interactionUser(i)
	if user == nil {
		return
	}
	loc := locale(i)
	received, err := h.requestUseCase.ReceivedRequests(context.Background(), user.ID)
	if err != nil {
		h.respondError(s, i, "chargement des demandes reçues", err)
		return
	}
	embeds := []*discordgo.MessageEmbed{pkgdiscord.BuildReceivedEmbed(h.t, loc, received)}
	if len(args) == 0 {
		respondEphemeralView(s, i.Interaction, "", embeds, buildReceivedComponents(h.t, loc, received, 0))
		return
	}
	page, _ := strconv.Atoi(args[0])
	updateView(s, i.Interaction, "", embeds, buildReceivedComponents(h.t, loc, received, page))
}

// HandleDecision opens the host message form before accepting or rejecting.
func (h *Handler) HandleDecision(s *discordgo.Session, i *discordgo.InteractionCreate, decision string, args []string) {
	requestID, ok := idArg(args, 0)
	if !ok {
		return
	}
	loc := locale(i)
	titleKey := "modal_accept_title"
	if decision == decisionReject {
		titleKey = "modal_reject_title"
	}
	respondModal(s, i.Interaction,
		customID(idDecisionModal, decision, idString(requestID)),
		truncate(h.t.T(loc, titleKey, map[string]any{"ID": requestID}), 45),
		messageInput(h.t, loc, "modal_decision_message"),
	)
}
