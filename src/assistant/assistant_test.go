package assistant

import (
	"strings"
	"testing"

	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/models"
	"github.com/stretchr/testify/assert"
)

func TestDetectIntent(t *testing.T) {
	assert.Equal(t, "pricing", DetectIntent("How much would a 10-day trip cost?"))
	assert.Equal(t, "availability", DetectIntent("Are your guides available in October?"))
	assert.Equal(t, "itinerary", DetectIntent("Could you send a day by day plan?"))
	assert.Equal(t, "general", DetectIntent("Hello there"))
}

func TestDraftEmailReplyDeterministic(t *testing.T) {
	dest := "Marrakech"
	people := uint(4)
	customer := &models.Customer{Name: "Sofia Ortega", Destination: &dest, NumberOfPeople: &people}
	msg := models.InboxMessage{Body: "What is the price for the desert tour?"}

	first := DraftEmailReply(msg, customer)
	second := DraftEmailReply(msg, customer)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "Sofia Ortega")
	assert.Contains(t, first, "Marrakech")
	assert.Contains(t, first, "4 traveler(s)")
	assert.NotContains(t, first, "{{")
}

func TestDraftReplyWithoutCustomerUsesFallbacks(t *testing.T) {
	msg := models.InboxMessage{Body: "hi"}

	email := DraftEmailReply(msg, nil)
	wa := DraftWhatsAppReply(msg, nil)

	assert.Contains(t, email, "Dear traveler")
	assert.Contains(t, wa, "Hi traveler")
	assert.NotContains(t, email, "{{")
	assert.NotContains(t, wa, "{{")
}

func TestGenerateItinerary(t *testing.T) {
	plans := GenerateItinerary("Kyoto", 5)

	assert.Len(t, plans, 5)
	assert.Equal(t, uint(1), plans[0].DayNumber)
	assert.Contains(t, plans[0].Title, "Kyoto")
	assert.True(t, strings.HasPrefix(plans[4].Title, "Departure"))
	for _, p := range plans {
		assert.NotContains(t, p.Title, "{{")
		assert.NotContains(t, p.Description, "{{")
	}
}

func TestGenerateItineraryEdgeSizes(t *testing.T) {
	assert.Nil(t, GenerateItinerary("Lima", 0))
	one := GenerateItinerary("Lima", 1)
	assert.Len(t, one, 1)
	assert.Contains(t, one[0].Title, "Arrival")

	long := GenerateItinerary("Lima", 12)
	assert.Len(t, long, 12)
}
