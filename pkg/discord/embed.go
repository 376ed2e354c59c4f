package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"hostbot/internal/domain/eligibility"
	"hostbot/internal/domain/entities"
	"hostbot/internal/ports/output"
)

const (
	embedColor   = 0x5865F2
	successColor = 0x57F287

	// Discord refuses embed descriptions above 4096 characters.
	maxDescription = 4000
)

func joinLines(lines []string) string {
	var b strings.Builder
	for _, l := range lines {
		if b.Len()+len(l)+1 > maxDescription {
			b.WriteString("…")
			break
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(l)
	}
	return b.String()
}

func hostLabel(h *entities.Hosting) string {
	if h.HostName != "" {
		return h.HostName
	}
	return "<@" + h.HostID + ">"
}

// VerdictLabel renders a verdict for display.
func VerdictLabel(t output.T, locale string, v eligibility.Verdict) string {
	return t.T(locale, "verdict_"+v.String(), nil)
}

// StatusLabel renders a request status for display.
func StatusLabel(t output.T, locale string, r *entities.HostingRequest) string {
	return t.T(locale, "status_"+r.Status.String(), nil)
}

// BuildCatalogEmbed lists the hostings of event with the verdict of each one.
// Hostings without a verdict are left out.
func BuildCatalogEmbed(t output.T, locale string, event *entities.Event, hostings []entities.Hosting, verdicts map[uint]eligibility.Verdict) *discordgo.MessageEmbed {
	lines := make([]string, 0, len(hostings))
	for i := range hostings {
		h := &hostings[i]
		v, ok := verdicts[h.ID]
		if !ok {
			continue
		}
		city := h.CityOverride
		if city == "" {
			city = "?"
		}
		lines = append(lines, t.T(locale, "catalog_line", map[string]any{
			"ID":      h.ID,
			"Host":    hostLabel(h),
			"Beds":    h.AvailableBeds,
			"City":    city,
			"Verdict": VerdictLabel(t, locale, v),
		}))
	}
	desc := joinLines(lines)
	if desc == "" {
		desc = t.T(locale, "catalog_empty", nil)
	}

	embed := &discordgo.MessageEmbed{
		Title:       t.T(locale, "catalog_title", map[string]any{"Event": event.Name}),
		Description: desc,
		Color:       embedColor,
	}
	if !event.StartDate.IsZero() {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: t.T(locale, "catalog_dates", map[string]any{
			"Start": FormatEventDate(event.StartDate),
			"End":   FormatEventDate(event.EndDate),
		})}
	}
	return embed
}

// BuildMyRequestsEmbed lists the user's requests for one event.
func BuildMyRequestsEmbed(t output.T, locale string, event *entities.Event, requests []entities.HostingRequest) *discordgo.MessageEmbed {
	lines := make([]string, 0, len(requests))
	for i := range requests {
		r := &requests[i]
		lines = append(lines, t.T(locale, "msg_request_line", map[string]any{
			"ID":        r.ID,
			"HostingID": r.HostingID,
			"HostID":    r.HostID,
			"Status":    StatusLabel(t, locale, r),
		}))
	}
	desc := joinLines(lines)
	if desc == "" {
		desc = t.T(locale, "msg_my_requests_empty", nil)
	}
	return &discordgo.MessageEmbed{
		Title:       t.T(locale, "msg_my_requests_title", map[string]any{"Event": event.Name}),
		Description: desc,
		Color:       embedColor,
	}
}

// BuildReceivedEmbed lists the requests made on the host's hostings.
func BuildReceivedEmbed(t output.T, locale string, requests []entities.HostingRequest) *discordgo.MessageEmbed {
	lines := make([]string, 0, len(requests))
	for i := range requests {
		r := &requests[i]
		msg := r.Message
		if msg == "" {
			msg = "…"
		}
		lines = append(lines, t.T(locale, "msg_received_line", map[string]any{
			"ID":        r.ID,
			"Requester": r.Requester,
			"HostingID": r.HostingID,
			"Status":    StatusLabel(t, locale, r),
			"Message":   msg,
		}))
	}
	desc := joinLines(lines)
	if desc == "" {
		desc = t.T(locale, "msg_received_empty", nil)
	}
	return &discordgo.MessageEmbed{
		Title:       t.T(locale, "msg_received_title", nil),
		Description: desc,
		Color:       embedColor,
	}
}

// BuildAcceptedStayEmbed shows the stay of a user accepted at h.
func BuildAcceptedStayEmbed(t output.T, locale string, h *entities.Hosting, req *entities.HostingRequest) *discordgo.MessageEmbed {
	orDash := func(s string) string {
		if strings.TrimSpace(s) == "" {
			return "-"
		}
		return s
	}
	return &discordgo.MessageEmbed{
		Description: t.T(locale, "msg_accepted_stay", map[string]any{
			"ID":          h.ID,
			"Host":        hostLabel(h),
			"Address":     orDash(h.Address()),
			"Rules":       orDash(h.CustomRules),
			"HostMessage": orDash(req.HostMessage),
		}),
		Color: successColor,
	}
}
