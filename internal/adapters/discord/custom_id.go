package discord

import (
	"strings"

	pkgdiscord "hostbot/pkg/discord"
)

// Component and modal CustomIDs are "<prefix>:<arg>:<arg>...".
const (
	idSelectHosting  = "hb_select"
	idPropose        = "hb_propose"
	idMyRequests     = "hb_mine"
	idBack           = "hb_back"
	idCatalogPage    = "hb_page"
	idCancelRequest  = "hb_cancel"
	idReceived       = "hb_received"
	idAccept         = "hb_accept"
	idReject         = "hb_reject"
	idHostingModal   = "hb_hosting_modal"
	idRequestModal   = "hb_request_modal"
	idDecisionModal  = "hb_decision_modal"
	decisionAccept   = "accept"
	decisionReject   = "reject"
	inputBeds        = "beds"
	inputRules       = "rules"
	inputCity        = "city"
	inputAddress     = "address"
	inputMessage     = "message"
	commandName      = "hebergement"
	commandEventOpt  = "event"
	upcomingEventMax = 25
)

func customID(prefix string, args ...string) string {
	return strings.Join(append([]string{prefix}, args...), ":")
}

// splitCustomID returns the prefix of id and its arguments.
func splitCustomID(id string) (string, []string) {
	parts := strings.Split(id, ":")
	return parts[0], parts[1:]
}

// idArg parses args[n] as a database id.
func idArg(args []string, n int) (uint, bool) {
	if n >= len(args) {
		return 0, false
	}
	id, err := pkgdiscord.ParseID(args[n])
	if err != nil {
		return 0, false
	}
	return id, true
}

func strArg(args []string, n int) string {
	if n >= len(args) {
		return ""
	}
	return args[n]
}
