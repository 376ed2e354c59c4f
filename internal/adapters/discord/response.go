package discord

import (
	"log"
	"strconv"

	"github.com/bwmarrin/discordgo"

	"hostbot/internal/domain"
	pkgdiscord "hostbot/pkg/discord"
)

// Nick > GlobalName > Username
func resolveDisplayName(member *discordgo.Member, user *discordgo.User) string {
	if member != nil && member.Nick != "" {
		return member.Nick
	}
	if user == nil {
		return ""
	}
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return user.Username
}

// interactionUser is the author of i, in a guild or in DMs.
func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

func locale(i *discordgo.InteractionCreate) string {
	return string(i.Locale)
}

func idString(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func respondEphemeral(s *discordgo.Session, i *discordgo.Interaction, content string) {
	respondEphemeralView(s, i, content, nil, nil)
}

func respondEphemeralView(s *discordgo.Session, i *discordgo.Interaction, content string, embeds []*discordgo.MessageEmbed, components []discordgo.MessageComponent) {
	if err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Embeds:     embeds,
			Components: components,
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	}); err != nil {
		log.Printf("❌ Erreur lors de la réponse à l'interaction: %v", err)
	}
}

// updateView replaces the message the component belongs to.
func updateView(s *discordgo.Session, i *discordgo.Interaction, content string, embeds []*discordgo.MessageEmbed, components []discordgo.MessageComponent) {
	if components == nil {
		components = []discordgo.MessageComponent{}
	}
	if err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Embeds:     embeds,
			Components: components,
		},
	}); err != nil {
		log.Printf("❌ Erreur lors de la mise à jour de la vue: %v", err)
	}
}

func respondModal(s *discordgo.Session, i *discordgo.Interaction, id, title string, inputs ...discordgo.TextInput) {
	rows := make([]discordgo.MessageComponent, 0, len(inputs))
	for _, in := range inputs {
		rows = append(rows, discordgo.ActionsRow{Components: []discordgo.MessageComponent{in}})
	}
	if err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID:   id,
			Title:      title,
			Components: rows,
		},
	}); err != nil {
		log.Printf("❌ Erreur lors de l'ouverture du formulaire %s: %v", id, err)
	}
}

// respondError renders err through its domain code. Errors without a code
// are logged since the user only sees the generic message.
func (h *Handler) respondError(s *discordgo.Session, i *discordgo.InteractionCreate, op string, err error) {
	if domain.Code(err) == "" {
		log.Printf("❌ %s: %v", op, err)
	}
	respondEphemeral(s, i.Interaction, "❌ "+pkgdiscord.DomainErrorMessage(h.t, locale(i), err))
}

func (h *Handler) respondExpired(s *discordgo.Session, i *discordgo.InteractionCreate) {
	respondEphemeral(s, i.Interaction, h.t.T(locale(i), "msg_session_expired", nil))
}
