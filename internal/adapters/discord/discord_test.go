package discord

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostbot/internal/application"
	"hostbot/internal/domain"
	"hostbot/internal/domain/eligibility"
	"hostbot/internal/domain/entities"
	"hostbot/internal/domain/tabs"
)

type echoTranslator struct{}

func (echoTranslator) T(locale, key string, data map[string]any) string { return key }

func TestCustomID(t *testing.T) {
	id := customID(idCancelRequest, "tok", "12")
	assert.Equal(t, "hb_cancel:tok:12", id)

	prefix, args := splitCustomID(id)
	assert.Equal(t, idCancelRequest, prefix)
	assert.Equal(t, "tok", strArg(args, 0))
	reqID, ok := idArg(args, 1)
	require.True(t, ok)
	assert.Equal(t, uint(12), reqID)

	_, ok = idArg(args, 2)
	assert.False(t, ok)
	assert.Empty(t, strArg(args, 5))

	prefix, args = splitCustomID(idReceived)
	assert.Equal(t, idReceived, prefix)
	assert.Empty(t, args)
}

func TestSessionStore(t *testing.T) {
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	st := newSessionStore()
	st.now = func() time.Time { return now }

	vs := st.open("1001", 7)
	assert.Equal(t, tabs.Catalog, vs.ctrl.State())
	assert.Equal(t, uint(7), vs.ctrl.EventID)
	assert.Len(t, vs.token, 36)

	got, ok := st.get(vs.token, "1001")
	require.True(t, ok)
	assert.Same(t, vs, got)

	_, ok = st.get(vs.token, "2002")
	assert.False(t, ok, "views belong to their author")

	now = now.Add(sessionTTL + time.Second)
	_, ok = st.get(vs.token, "1001")
	assert.False(t, ok)
	assert.Equal(t, 0, st.len())
}

func TestSessionStore_Prune(t *testing.T) {
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	st := newSessionStore()
	st.now = func() time.Time { return now }

	st.open("1001", 1)
	now = now.Add(sessionTTL)
	st.open("1001", 2)
	now = now.Add(time.Minute)

	assert.Equal(t, 1, st.prune())
	assert.Equal(t, 1, st.len())
}

func TestResetForm(t *testing.T) {
	vs := newSessionStore().open("1001", 1)
	require.True(t, vs.ctrl.ProposeHosting())
	vs.resetForm()
	assert.Equal(t, tabs.Catalog, vs.ctrl.State())

	require.True(t, vs.ctrl.ShowMyRequests())
	vs.resetForm()
	assert.Equal(t, tabs.MyRequests, vs.ctrl.State())
}

func overview() *application.Overview {
	return &application.Overview{
		EventID: 1,
		Hostings: []entities.Hosting{
			{ID: 1, EventID: 1, HostID: "2002", HostName: "Bob"},
			{ID: 2, EventID: 1, HostID: "2002"},
			{ID: 3, EventID: 1, HostID: "3003"},
		},
		Verdicts: map[uint]eligibility.Verdict{
			1: eligibility.Requestable,
			2: eligibility.BlockedByActiveRequest,
			3: eligibility.AlreadyAcceptedHere,
		},
		AcceptedHostingIDs: []uint{3},
		MyRequests: []entities.HostingRequest{
			{ID: 9, HostingID: 3, EventID: 1, Status: domain.StatusAccepted},
		},
	}
}

func TestBuildCatalogComponents(t *testing.T) {
	components := buildCatalogComponents(echoTranslator{}, "fr", "tok", "1001", overview(), 0)
	require.Len(t, components, 2)

	menu := components[0].(discordgo.ActionsRow).Components[0].(discordgo.SelectMenu)
	assert.Equal(t, "hb_select:tok", menu.CustomID)
	values := make([]string, 0, len(menu.Options))
	for _, o := range menu.Options {
		values = append(values, o.Value)
	}
	assert.Equal(t, []string{"1", "3"}, values, "blocked hostings are not offered")

	buttons := components[1].(discordgo.ActionsRow).Components
	require.Len(t, buttons, 3)
	assert.Equal(t, "hb_propose:tok", buttons[0].(discordgo.Button).CustomID)
	assert.Equal(t, "hb_mine:tok", buttons[1].(discordgo.Button).CustomID)
	assert.Equal(t, idReceived, buttons[2].(discordgo.Button).CustomID)
}

func TestBuildCatalogComponents_NothingSelectable(t *testing.T) {
	ov := overview()
	ov.Verdicts = map[uint]eligibility.Verdict{2: eligibility.BlockedByActiveRequest}
	components := buildCatalogComponents(echoTranslator{}, "fr", "tok", "1001", ov, 0)
	assert.Len(t, components, 1)
}

func TestBuildCatalogComponents_OwnHostingsNotOffered(t *testing.T) {
	components := buildCatalogComponents(echoTranslator{}, "fr", "tok", "2002", overview(), 0)
	menu := components[0].(discordgo.ActionsRow).Components[0].(discordgo.SelectMenu)
	require.Len(t, menu.Options, 1)
	assert.Equal(t, "3", menu.Options[0].Value)
}

func manyHostings(n int) *application.Overview {
	ov := &application.Overview{EventID: 1, Verdicts: map[uint]eligibility.Verdict{}}
	for id := uint(1); id <= uint(n); id++ {
		ov.Hostings = append(ov.Hostings, entities.Hosting{ID: id, EventID: 1, HostID: "2002"})
		ov.Verdicts[id] = eligibility.Requestable
	}
	return ov
}

func TestBuildCatalogComponents_Pages(t *testing.T) {
	ov := manyHostings(maxSelectOptions + 3)

	components := buildCatalogComponents(echoTranslator{}, "fr", "tok", "1001", ov, 0)
	require.Len(t, components, 3)
	menu := components[0].(discordgo.ActionsRow).Components[0].(discordgo.SelectMenu)
	assert.Len(t, menu.Options, maxSelectOptions)
	nav := components[1].(discordgo.ActionsRow).Components
	assert.True(t, nav[0].(discordgo.Button).Disabled)
	assert.Equal(t, "hb_page:tok:1", nav[2].(discordgo.Button).CustomID)
	assert.False(t, nav[2].(discordgo.Button).Disabled)

	// out of range pages land on the last one
	components = buildCatalogComponents(echoTranslator{}, "fr", "tok", "1001", ov, 7)
	menu = components[0].(discordgo.ActionsRow).Components[0].(discordgo.SelectMenu)
	require.Len(t, menu.Options, 3)
	assert.Equal(t, "26", menu.Options[0].Value)
	nav = components[1].(discordgo.ActionsRow).Components
	assert.Equal(t, "hb_page:tok:0", nav[0].(discordgo.Button).CustomID)
	assert.True(t, nav[2].(discordgo.Button).Disabled)
}

func TestCatalogWarning(t *testing.T) {
	ov := overview()
	assert.Empty(t, catalogWarning(echoTranslator{}, "fr", ov))

	ov.AcceptedHostingIDs = nil
	assert.Equal(t, "catalog_inconsistent", catalogWarning(echoTranslator{}, "fr", ov))
}

func TestBuildMyRequestsComponents(t *testing.T) {
	requests := []entities.HostingRequest{
		{ID: 1, Status: domain.StatusPending},
		{ID: 2, Status: domain.StatusAccepted},
		{ID: 3, Status: domain.StatusCancelled},
		{ID: 4, Status: domain.StatusPending},
	}
	components := buildMyRequestsComponents(echoTranslator{}, "fr", "tok", requests)
	require.Len(t, components, 2)

	cancels := components[0].(discordgo.ActionsRow).Components
	require.Len(t, cancels, 2)
	assert.Equal(t, "hb_cancel:tok:1", cancels[0].(discordgo.Button).CustomID)
	assert.Equal(t, "hb_cancel:tok:4", cancels[1].(discordgo.Button).CustomID)

	back := components[1].(discordgo.ActionsRow).Components[0].(discordgo.Button)
	assert.Equal(t, "hb_back:tok", back.CustomID)
}

func TestBuildMyRequestsComponents_RowLimit(t *testing.T) {
	requests := make([]entities.HostingRequest, 0, 30)
	for id := uint(1); id <= 30; id++ {
		requests = append(requests, entities.HostingRequest{ID: id, Status: domain.StatusPending})
	}
	components := buildMyRequestsComponents(echoTranslator{}, "fr", "tok", requests)
	assert.Len(t, components, maxRows)
}

func TestBuildReceivedComponents(t *testing.T) {
	requests := []entities.HostingRequest{
		{ID: 1, Status: domain.StatusPending},
		{ID: 2, Status: domain.StatusRejected},
	}
	components := buildReceivedComponents(echoTranslator{}, "fr", requests, 0)
	require.Len(t, components, 1)
	row := components[0].(discordgo.ActionsRow).Components
	assert.Equal(t, "hb_accept:1", row[0].(discordgo.Button).CustomID)
	assert.Equal(t, "hb_reject:1", row[1].(discordgo.Button).CustomID)
}

func TestBuildReceivedComponents_Pages(t *testing.T) {
	requests := make([]entities.HostingRequest, 0, 6)
	for id := uint(1); id <= 6; id++ {
		requests = append(requests, entities.HostingRequest{ID: id, Status: domain.StatusPending})
	}

	components := buildReceivedComponents(echoTranslator{}, "fr", requests, 0)
	require.Len(t, components, maxRows)
	nav := components[receivedPerPage].(discordgo.ActionsRow).Components
	assert.Equal(t, "hb_received:1", nav[2].(discordgo.Button).CustomID)

	components = buildReceivedComponents(echoTranslator{}, "fr", requests, 1)
	require.Len(t, components, 3)
	row := components[0].(discordgo.ActionsRow).Components
	assert.Equal(t, "hb_accept:5", row[0].(discordgo.Button).CustomID)
	nav = components[2].(discordgo.ActionsRow).Components
	assert.Equal(t, "hb_received:0", nav[0].(discordgo.Button).CustomID)
	assert.True(t, nav[2].(discordgo.Button).Disabled)
}

func TestPageBounds(t *testing.T) {
	p, lo, hi, pages := pageBounds(0, 0, 25)
	assert.Equal(t, []int{0, 0, 0, 1}, []int{p, lo, hi, pages})

	p, lo, hi, pages = pageBounds(-2, 10, 4)
	assert.Equal(t, []int{0, 0, 4, 3}, []int{p, lo, hi, pages})

	p, lo, hi, pages = pageBounds(2, 10, 4)
	assert.Equal(t, []int{2, 8, 10, 3}, []int{p, lo, hi, pages})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 3))
	assert.Equal(t, "ab…", truncate("abcd", 3))
	assert.Equal(t, "éé…", truncate("éééé", 3))
}

func TestResolveDisplayName(t *testing.T) {
	user := &discordgo.User{Username: "alice", GlobalName: "Alice"}
	assert.Equal(t, "Ali", resolveDisplayName(&discordgo.Member{Nick: "Ali"}, user))
	assert.Equal(t, "Alice", resolveDisplayName(nil, user))
	assert.Equal(t, "alice", resolveDisplayName(nil, &discordgo.User{Username: "alice"}))
	assert.Empty(t, resolveDisplayName(nil, nil))
}
