package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	pkgdiscord "hostbot/pkg/discord"
)

var minEventID = 1.0

var hostingCommand = &discordgo.ApplicationCommand{
	Name:        commandName,
	Description: "Hébergements proposés pour un événement",
	DescriptionLocalizations: &map[discordgo.Locale]string{
		discordgo.EnglishUS: "Hostings offered for an event",
		discordgo.EnglishGB: "Hostings offered for an event",
	},
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:         discordgo.ApplicationCommandOptionInteger,
			Name:         commandEventOpt,
			Description:  "Événement",
			Required:     true,
			Autocomplete: true,
			MinValue:     &minEventID,
		},
	},
}

// HandleCommand opens a new catalog view on the event given as option.
func (h *Handler) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	loc := locale(i)
	user := interactionUser(i)
	if user == nil {
		return
	}

	var eventID uint
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == commandEventOpt && opt.IntValue() > 0 {
			eventID = uint(opt.IntValue())
		}
	}
	if eventID == 0 {
		respondEphemeral(s, i.Interaction, h.t.T(loc, "msg_invalid_event", nil))
		return
	}

	vs := h.sessions.open(user.ID, eventID)
	vs.mu.Lock()
	defer vs.mu.Unlock()

	content, embeds, components, err := h.catalog(ctx, loc, vs)
	if err != nil {
		h.respondError(s, i, "ouverture du catalogue", err)
		return
	}
	respondEphemeralView(s, i.Interaction, content, embeds, components)
}

// HandleAutocomplete suggests the upcoming events for the event option.
func (h *Handler) HandleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) {
	events, err := h.hostingUseCase.ListUpcomingEvents(context.Background(), upcomingEventMax)
	if err != nil {
		log.Printf("⚠️ Erreur lors de la récupération des événements à venir: %v", err)
	}
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(events))
	for _, e := range events {
		name := e.Name
		if d := pkgdiscord.FormatEventDate(e.StartDate); d != "" {
			name = fmt.Sprintf("%s (%s)", e.Name, d)
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  truncate(name, 100),
			Value: e.ID,
		})
	}
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: choices},
	}); err != nil {
		log.Printf("❌ Erreur lors de l'autocomplétion: %v", err)
	}
}
