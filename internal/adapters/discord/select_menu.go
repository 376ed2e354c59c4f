package discord

import (
	"context"
	"log"
	"strconv"

	"github.com/bwmarrin/discordgo"

	"hostbot/internal/domain/eligibility"
	pkgdiscord "hostbot/pkg/discord"
)

// HandleSelectHosting opens the request form of the chosen hosting, or the
// accepted stay when the user is already hosted there.
func (h *Handler) HandleSelectHosting(s *discordgo.Session, i *discordgo.InteractionCreate, args []string) {
	vs, ok := h.session(s, i, strArg(args, 0))
	if !ok {
		return
	}
	vs.mu.Lock()
	defer vs.mu.Unlock()
	vs.resetForm()

	loc := locale(i)
	data := i.MessageComponentData()
	if len(data.Values) == 0 || vs.overview == nil {
		return
	}
	hostingID, err := pkgdiscord.ParseID(data.Values[0])
	if err != nil {
		return
	}
	hosting, ok := vs.overview.Hosting(hostingID)
	if !ok || !vs.ctrl.SelectHosting(*hosting, vs.overview.Verdicts) {
		respondEphemeral(s, i.Interaction, "❌ "+h.t.T(loc, "error_not_requestable", nil))
		return
	}

	if v, _ := vs.overview.Verdict(hostingID); v == eligibility.AlreadyAcceptedHere {
		// Nothing to submit: show the stay and leave the form.
		vs.ctrl.Cancel()
		req, ok := vs.overview.AcceptedRequest(hostingID)
		if !ok {
			log.Printf("⚠️ Hébergement %d accepté sans demande acceptée pour %s", hostingID, vs.userID)
			respondEphemeral(s, i.Interaction, "⚠️ "+h.t.T(loc, "catalog_inconsistent", nil))
			return
		}
		respondEphemeralView(s, i.Interaction, "", []*discordgo.MessageEmbed{pkgdiscord.BuildAcceptedStayEmbed(h.t, loc, hosting, req)}, nil)
		return
	}

	respondModal(s, i.Interaction,
		customID(idRequestModal, vs.token, idString(hostingID)),
		truncate(h.t.T(loc, "modal_request_title", map[string]any{"ID": hostingID}), 45),
		messageInput(h.t, loc, "modal_request_message"),
	)
}

// HandleBack returns from the requests tab to a refreshed catalog.
func (h *Handler) HandleBack(s *discordgo.Session, i *discordgo.InteractionCreate, args []string) {
	vs, ok := h.session(s, i, strArg(args, 0))
	if !ok {
		return
	}
	vs.mu.Lock()
	defer vs.mu.Unlock()

	loc := locale(i)
	content, embeds, components, err := h.catalog(context.Background(), loc, vs)
	if err != nil {
		h.respondError(s, i, "retour au catalogue", err)
		return
	}
	vs.ctrl.ShowCatalog()
	updateView(s, i.Interaction, content, embeds, components)
}

// HandleCatalogPage moves the select menu of the catalog to another page.
func (h *Handler) HandleCatalogPage(s *discordgo.Session, i *discordgo.InteractionCreate, args []string) {
	vs, ok := h.session(s, i, strArg(args, 0))
	if !ok {
		return
	}
	page, err := strconv.Atoi(strArg(args, 1))
	if err != nil {
		return
	}
	vs.mu.Lock()
	defer vs.mu.Unlock()
	vs.resetForm()

	vs.page = page
	content, embeds, components, err := h.catalog(context.Background(), locale(i), vs)
	if err != nil {
		h.respondError(s, i, "changement de page", err)
		return
	}
	updateView(s, i.Interaction, content, embeds, components)
}
