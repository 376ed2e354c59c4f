package discord

import (
	"github.com/bwmarrin/discordgo"

	pkgdiscord "hostbot/pkg/discord"
)

// HandleModalSubmit route les différents modals en fonction de leur CustomID.
func (h *Handler) HandleModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ModalSubmitData()
	values := pkgdiscord.ExtractModalValues(data)
	prefix, args := splitCustomID(data.CustomID)
	switch prefix {
	case idHostingModal:
		h.handleHostingModalSubmit(s, i, args, values)
	case idRequestModal:
		h.handleRequestModalSubmit(s, i, args, values)
	case idDecisionModal:
		h.handleDecisionModalSubmit(s, i, args, values)
	default:
		// Modal inconnu : on ignore silencieusement pour rester robuste.
	}
}

// HandleComponent route les boutons et menus.
func (h *Handler) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	prefix, args := splitCustomID(i.MessageComponentData().CustomID)
	switch prefix {
	case idSelectHosting:
		h.HandleSelectHosting(s, i, args)
	case idPropose:
		h.HandlePropose(s, i, args)
	case idMyRequests:
		h.HandleMyRequests(s, i, args)
	case idBack:
		h.HandleBack(s, i, args)
	case idCancelRequest:
		h.HandleCancelRequest(s, i, args)
	case idCatalogPage:
		h.HandleCatalogPage(s, i, args)
	case idReceived:
		h.HandleReceived(s, i, args)
	case idAccept:
		h.HandleDecision(s, i, decisionAccept, args)
	case idReject:
		h.HandleDecision(s, i, decisionReject, args)
	}
}
