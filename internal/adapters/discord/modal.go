package discord

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"hostbot/internal/application"
	"hostbot/internal/domain/entities"
	"hostbot/internal/domain/tabs"
	pkgdiscord "hostbot/pkg/discord"
)

func (h *Handler) handleHostingModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, args []string, values map[string]string) {
	vs, ok := h.session(s, i, strArg(args, 0))
	if !ok {
		return
	}
	vs.mu.Lock()
	defer vs.mu.Unlock()

	loc := locale(i)
	if vs.ctrl.State() != tabs.CreateHostingForm {
		h.respondExpired(s, i)
		return
	}

	beds, err := pkgdiscord.ParseOptionalCount(values[inputBeds])
	if err != nil {
		vs.ctrl.Cancel()
		respondEphemeral(s, i.Interaction, "❌ "+h.t.T(loc, "msg_invalid_beds", nil))
		return
	}

	user := interactionUser(i)
	hosting, err := h.hostingUseCase.ProposeHosting(context.Background(), application.ProposeHostingInput{
		EventID:         vs.ctrl.EventID,
		HostID:          user.ID,
		HostName:        resolveDisplayName(i.Member, user),
		AvailableBeds:   beds,
		CustomRules:     values[inputRules],
		AddressOverride: values[inputAddress],
		CityOverride:    values[inputCity],
	})
	if err != nil {
		vs.ctrl.Cancel()
		h.respondError(s, i, "proposition d'hébergement", err)
		return
	}
	vs.ctrl.Succeed()
	// The values of the last proposal become the host's defaults.
	if err := h.hostingUseCase.SaveHostProfile(context.Background(), &entities.HostProfile{
		UserID:        user.ID,
		AvailableBeds: hosting.AvailableBeds,
		HomeRules:     hosting.CustomRules,
	}); err != nil {
		log.Printf("⚠️ Profil d'hôte de %s non enregistré: %v", user.ID, err)
	}
	log.Printf("✅ Hébergement %d proposé par %s pour l'événement %d", hosting.ID, user.ID, hosting.EventID)
	respondEphemeral(s, i.Interaction, h.t.T(loc, "msg_hosting_created", map[string]any{"ID": hosting.ID, "Beds": hosting.AvailableBeds}))
}

func (h *Handler) handleRequestModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, args []string, values map[string]string) {
	vs, ok := h.session(s, i, strArg(args, 0))
	if !ok {
		return
	}
	hostingID, ok := idArg(args, 1)
	if !ok {
		return
	}
	vs.mu.Lock()
	defer vs.mu.Unlock()

	loc := locale(i)
	selected := vs.ctrl.Selected()
	if selected == nil || selected.ID != hostingID {
		h.respondExpired(s, i)
		return
	}

	// The catalog may be stale by now; evaluate again before submitting.
	ctx := context.Background()
	if _, _, _, err := h.catalog(ctx, loc, vs); err != nil {
		vs.ctrl.Cancel()
		h.respondError(s, i, "actualisation du catalogue", err)
		return
	}

	user := interactionUser(i)
	req, err := h.requestUseCase.Submit(ctx, vs.overview, hostingID, user.ID, resolveDisplayName(i.Member, user), strings.TrimSpace(values[inputMessage]))
	if err != nil {
		vs.ctrl.Cancel()
		h.respondError(s, i, "envoi de la demande", err)
		return
	}
	vs.ctrl.Succeed()

	host := selected.HostName
	if host == "" {
		host = fmt.Sprintf("<@%s>", selected.HostID)
	}
	log.Printf("✅ Demande %d envoyée par %s pour l'hébergement %d", req.ID, user.ID, hostingID)
	h.notify(s, req.HostID, h.t.T("", "dm_new_request", map[string]any{"ID": hostingID, "Requester": req.Requester}))
	respondEphemeral(s, i.Interaction, h.t.T(loc, "msg_request_sent", map[string]any{"ID": hostingID, "Host": host}))
}

func (h *Handler) handleDecisionModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, args []string, values map[string]string) {
	decision := strArg(args, 0)
	requestID, ok := idArg(args, 1)
	if !ok {
		return
	}
	user := interactionUser(i)
	if user == nil {
		return
	}
	ctx := context.Background()
	loc := locale(i)
	hostMessage := strings.TrimSpace(values[inputMessage])

	var (
		req            *entities.HostingRequest
		err            error
		doneKey, dmKey string
	)
	switch decision {
	case decisionAccept:
		req, err = h.requestUseCase.Accept(ctx, requestID, user.ID, hostMessage)
		doneKey, dmKey = "msg_decided_accepted", "dm_accepted"
	case decisionReject:
		req, err = h.requestUseCase.Reject(ctx, requestID, user.ID, hostMessage)
		doneKey, dmKey = "msg_decided_rejected", "dm_rejected"
	default:
		return
	}
	if err != nil {
		h.respondError(s, i, "décision sur la demande", err)
		return
	}

	log.Printf("✅ Demande %d passée à %s par l'hôte %s", req.ID, req.Status, user.ID)
	// DMs go out in the default locale: the requester's locale is unknown here.
	h.notify(s, req.RequesterID, h.t.T("", dmKey, map[string]any{
		"ID":          req.HostingID,
		"Host":        resolveDisplayName(i.Member, user),
		"HostMessage": req.HostMessage,
	}))
	respondEphemeral(s, i.Interaction, h.t.T(loc, doneKey, map[string]any{"ID": req.ID}))
}

// notify sends a DM; failures (closed DMs) are only logged.
func (h *Handler) notify(s *discordgo.Session, userID, content string) {
	if userID == "" || content == "" {
		return
	}
	ch, err := s.UserChannelCreate(userID)
	if err != nil || ch == nil {
		log.Printf("⚠️ Impossible d'ouvrir un DM avec %s: %v", userID, err)
		return
	}
	if _, err := s.ChannelMessageSend(ch.ID, content); err != nil {
		log.Printf("⚠️ Impossible d'envoyer un DM à %s: %v", userID, err)
	}
}
