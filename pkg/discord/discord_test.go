package discord

import (
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostbot/internal/domain"
	"hostbot/internal/domain/eligibility"
	"hostbot/internal/domain/entities"
)

// keyTranslator echoes keys so tests can check which message was picked.
type keyTranslator struct{}

func (keyTranslator) T(locale, key string, data map[string]any) string {
	if id, ok := data["ID"]; ok {
		return fmt.Sprintf("%s:%v", key, id)
	}
	return key
}

func TestDomainErrorMessage(t *testing.T) {
	tr := keyTranslator{}
	assert.Empty(t, DomainErrorMessage(tr, "fr", nil))
	assert.Equal(t, "error_not_host", DomainErrorMessage(tr, "fr", fmt.Errorf("decide: %w", domain.ErrNotHost)))
	assert.Equal(t, "error_generic", DomainErrorMessage(tr, "fr", fmt.Errorf("boom")))
}

func TestParseOptionalCount(t *testing.T) {
	n, err := ParseOptionalCount(" ")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = ParseOptionalCount(" 3 ")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = ParseOptionalCount("-1")
	assert.Error(t, err)
	_, err = ParseOptionalCount("deux")
	assert.Error(t, err)
}

func TestParseID(t *testing.T) {
	id, err := ParseID("12")
	require.NoError(t, err)
	assert.Equal(t, uint(12), id)

	_, err = ParseID("0")
	assert.Error(t, err)
	_, err = ParseID("abc")
	assert.Error(t, err)
}

func TestFormatEventDate(t *testing.T) {
	assert.Empty(t, FormatEventDate(time.Time{}))
	assert.Equal(t, "14/07/2026", FormatEventDate(time.Date(2026, 7, 14, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, "14/07/2026 à 14:00", FormatEventDateTime(time.Date(2026, 7, 14, 12, 0, 0, 0, time.UTC)))
}

func TestExtractModalValues(t *testing.T) {
	data := discordgo.ModalSubmitInteractionData{
		CustomID: "hb_request_modal:1:4",
		Components: []discordgo.MessageComponent{
			&discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				&discordgo.TextInput{CustomID: "message", Value: "Bonjour"},
			}},
		},
	}
	assert.Equal(t, map[string]string{"message": "Bonjour"}, ExtractModalValues(data))
}

func TestBuildCatalogEmbed(t *testing.T) {
	event := &entities.Event{ID: 1, Name: "Congrès"}
	hostings := []entities.Hosting{{ID: 1, EventID: 1}, {ID: 2, EventID: 1}, {ID: 3, EventID: 1}}
	verdicts := map[uint]eligibility.Verdict{1: eligibility.Requestable, 3: eligibility.BlockedByActiveRequest}

	embed := BuildCatalogEmbed(keyTranslator{}, "fr", event, hostings, verdicts)
	assert.Equal(t, "catalog_line:1\ncatalog_line:3", embed.Description)
	assert.Nil(t, embed.Footer)

	embed = BuildCatalogEmbed(keyTranslator{}, "fr", event, nil, nil)
	assert.Equal(t, "catalog_empty", embed.Description)
}
