package discord

import (
	"strconv"

	"github.com/bwmarrin/discordgo"

	"hostbot/internal/application"
	"hostbot/internal/domain/eligibility"
	"hostbot/internal/domain/entities"
	"hostbot/internal/ports/output"
)

// Discord limits: 25 options per select menu, 5 buttons per row, 5 rows.
const (
	maxSelectOptions = 25
	maxButtonsPerRow = 5
	maxRows          = 5
	maxLabel         = 80
	receivedPerPage  = maxRows - 1
)

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// pageBounds clamps page for n items shown per at a time and returns the
// slice bounds of that page and the page count.
func pageBounds(page, n, per int) (p, lo, hi, pages int) {
	pages = max(1, (n+per-1)/per)
	p = min(max(page, 0), pages-1)
	lo = p * per
	hi = min(lo+per, n)
	return p, lo, hi, pages
}

// pageRow is the previous/next row of a paged view. prefix and args build the
// CustomID, the target page is appended.
func pageRow(t output.T, loc string, page, pages int, prefix string, args ...string) discordgo.ActionsRow {
	to := func(p int) string {
		return customID(prefix, append(append([]string{}, args...), strconv.Itoa(p))...)
	}
	return discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.Button{Label: t.T(loc, "button_page_previous", nil), Style: discordgo.SecondaryButton, CustomID: to(page - 1), Disabled: page == 0},
		discordgo.Button{Label: t.T(loc, "button_page", map[string]any{"Page": page + 1, "Pages": pages}), Style: discordgo.SecondaryButton, CustomID: to(page) + ":current", Disabled: true},
		discordgo.Button{Label: t.T(loc, "button_page_next", nil), Style: discordgo.SecondaryButton, CustomID: to(page + 1), Disabled: page == pages-1},
	}}
}

// buildCatalogComponents offers the selectable hostings of ov, one page of
// the select menu at a time, and the tab buttons. Blocked hostings and the
// user's own hostings are shown in the embed only.
func buildCatalogComponents(t output.T, loc, token, userID string, ov *application.Overview, page int) []discordgo.MessageComponent {
	options := make([]discordgo.SelectMenuOption, 0, len(ov.Hostings))
	for i := range ov.Hostings {
		hosting := &ov.Hostings[i]
		v, ok := ov.Verdict(hosting.ID)
		if !ok || !v.Selectable() || hosting.HostID == userID {
			continue
		}
		host := hosting.HostName
		if host == "" {
			host = hosting.HostID
		}
		options = append(options, discordgo.SelectMenuOption{
			Label:       truncate(t.T(loc, "catalog_option", map[string]any{"ID": hosting.ID, "Host": host}), maxLabel),
			Value:       idString(hosting.ID),
			Description: truncate(t.T(loc, "verdict_"+v.String(), nil), maxLabel),
		})
	}

	page, lo, hi, pages := pageBounds(page, len(options), maxSelectOptions)
	components := make([]discordgo.MessageComponent, 0, 3)
	if len(options) > 0 {
		components = append(components, discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				CustomID:    customID(idSelectHosting, token),
				Placeholder: t.T(loc, "catalog_placeholder", nil),
				Options:     options[lo:hi],
			},
		}})
	}
	if pages > 1 {
		components = append(components, pageRow(t, loc, page, pages, idCatalogPage, token))
	}
	components = append(components, discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.Button{Label: t.T(loc, "button_propose", nil), Style: discordgo.SuccessButton, CustomID: customID(idPropose, token)},
		discordgo.Button{Label: t.T(loc, "button_my_requests", nil), Style: discordgo.PrimaryButton, CustomID: customID(idMyRequests, token)},
		discordgo.Button{Label: t.T(loc, "button_received", nil), Style: discordgo.SecondaryButton, CustomID: idReceived},
	}})
	return components
}

// catalogWarning is shown above the catalog when the accepted hostings the
// view was built with disagree with the user's requests.
func catalogWarning(t output.T, loc string, ov *application.Overview) string {
	if eligibility.Reconcile(ov.EventID, ov.MyRequests, ov.AcceptedHostingIDs).Empty() {
		return ""
	}
	return t.T(loc, "catalog_inconsistent", nil)
}

// buttonRows lays buttons out in rows, keeping at most rows rows.
func buttonRows(buttons []discordgo.MessageComponent, rows int) []discordgo.MessageComponent {
	out := make([]discordgo.MessageComponent, 0, rows)
	for len(buttons) > 0 && len(out) < rows {
		n := min(len(buttons), maxButtonsPerRow)
		out = append(out, discordgo.ActionsRow{Components: buttons[:n]})
		buttons = buttons[n:]
	}
	return out
}

// buildMyRequestsComponents offers a cancel button per PENDING request and
// the way back to the catalog.
func buildMyRequestsComponents(t output.T, loc, token string, requests []entities.HostingRequest) []discordgo.MessageComponent {
	buttons := make([]discordgo.MessageComponent, 0, len(requests))
	for i := range requests {
		r := &requests[i]
		if !r.IsPending() {
			continue
		}
		buttons = append(buttons, discordgo.Button{
			Label:    t.T(loc, "button_cancel_request", map[string]any{"ID": r.ID}),
			Style:    discordgo.DangerButton,
			CustomID: customID(idCancelRequest, token, idString(r.ID)),
		})
	}
	components := buttonRows(buttons, maxRows-1)
	return append(components, discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.Button{Label: t.T(loc, "button_back", nil), Style: discordgo.SecondaryButton, CustomID: customID(idBack, token)},
	}})
}

// buildReceivedComponents offers accept and reject on one page of the
// PENDING requests, one row per request.
func buildReceivedComponents(t output.T, loc string, requests []entities.HostingRequest, page int) []discordgo.MessageComponent {
	pending := make([]*entities.HostingRequest, 0, len(requests))
	for i := range requests {
		if requests[i].IsPending() {
			pending = append(pending, &requests[i])
		}
	}
	page, lo, hi, pages := pageBounds(page, len(pending), receivedPerPage)

	components := make([]discordgo.MessageComponent, 0, maxRows)
	for _, r := range pending[lo:hi] {
		components = append(components, discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: t.T(loc, "button_accept", map[string]any{"ID": r.ID}), Style: discordgo.SuccessButton, CustomID: customID(idAccept, idString(r.ID))},
			discordgo.Button{Label: t.T(loc, "button_reject", map[string]any{"ID": r.ID}), Style: discordgo.DangerButton, CustomID: customID(idReject, idString(r.ID))},
		}})
	}
	if pages > 1 {
		components = append(components, pageRow(t, loc, page, pages, idReceived))
	}
	return components
}

func hostingModalInputs(t output.T, loc string) []discordgo.TextInput {
	return []discordgo.TextInput{
		{CustomID: inputBeds, Label: t.T(loc, "modal_hosting_beds", nil), Style: discordgo.TextInputShort, Required: false, MaxLength: 2, Placeholder: t.T(loc, "modal_hosting_beds_placeholder", nil)},
		{CustomID: inputCity, Label: t.T(loc, "modal_hosting_city", nil), Style: discordgo.TextInputShort, Required: false, MaxLength: 100},
		{CustomID: inputAddress, Label: t.T(loc, "modal_hosting_address", nil), Style: discordgo.TextInputShort, Required: false, MaxLength: 255},
		{CustomID: inputRules, Label: t.T(loc, "modal_hosting_rules", nil), Style: discordgo.TextInputParagraph, Required: false, MaxLength: 1000},
	}
}

func messageInput(t output.T, loc, key string) discordgo.TextInput {
	return discordgo.TextInput{CustomID: inputMessage, Label: t.T(loc, key, nil), Style: discordgo.TextInputParagraph, Required: false, MaxLength: 1000}
}
