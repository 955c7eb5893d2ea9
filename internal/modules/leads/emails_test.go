package leads

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loanhelp/internal/domain"
)

func testLead() *domain.Lead {
	return &domain.Lead{
		ID:            "lead-1",
		Name:          "Maria Lopez",
		Email:         "maria.lopez@example.com",
		Phone:         "5551234567",
		State:         "TX",
		PropertyState: "TX",
		HomeType:      domain.HomeTypeUsed,
		CreditRange:   domain.CreditFair,
		Timeline:      domain.TimelineImmediate,
		SourcePage:    "/states/texas",
		CreatedAt:     time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestBuildNotificationEmail(t *testing.T) {
	msg, err := buildNotificationEmail(testLead())
	require.NoError(t, err)

	assert.Equal(t, "[HIGH] Lead: Maria Lopez - TX - Immediate", msg.Subject)
	assert.Contains(t, msg.HTML, "PRIORITY: HIGH")
	assert.Contains(t, msg.HTML, "#dc2626")
	assert.Contains(t, msg.HTML, "maria.lopez@example.com")
	assert.Contains(t, msg.HTML, "5551234567")
	assert.Contains(t, msg.HTML, "2026-08-01T12:00:00Z")
	assert.NotContains(t, msg.HTML, "Additional Info")
}

func TestBuildNotificationEmail_EscapesUserContent(t *testing.T) {
	lead := testLead()
	lead.Name = `<script>alert("x")</script>`
	lead.AdditionalInfo = "a < b & c"

	msg, err := buildNotificationEmail(lead)
	require.NoError(t, err)

	assert.NotContains(t, msg.HTML, "<script>")
	assert.Contains(t, msg.HTML, "&lt;script&gt;")
	assert.Contains(t, msg.HTML, "Additional Info")
	assert.Contains(t, msg.HTML, "a &lt; b &amp; c")
}

func TestBuildNotificationEmail_MediumAndLowPriority(t *testing.T) {
	lead := testLead()
	lead.Timeline = domain.TimelineOneToThree
	lead.CreditRange = domain.CreditGood

	msg, err := buildNotificationEmail(lead)
	require.NoError(t, err)
	assert.Contains(t, msg.Subject, "[MEDIUM]")

	lead.CreditRange = domain.CreditPoor
	msg, err = buildNotificationEmail(lead)
	require.NoError(t, err)
	assert.Contains(t, msg.Subject, "[LOW]")
}

func TestBuildAutoReplyEmail(t *testing.T) {
	msg, err := buildAutoReplyEmail(testLead(), "https://mobilehomeloanhelp.com")
	require.NoError(t, err)

	assert.Equal(t, "Thanks for Your Inquiry - Mobile Home Financing Help", msg.Subject)
	assert.Contains(t, msg.HTML, "Hi Maria Lopez")
	assert.Contains(t, msg.HTML, "<strong>TX</strong>")
	assert.Contains(t, msg.HTML, "https://mobilehomeloanhelp.com/calculator")
	assert.Contains(t, msg.HTML, "https://mobilehomeloanhelp.com/leased-land")
	assert.Contains(t, msg.HTML, "no obligation")
}
