package utils

import (
	"strings"
	"testing"

	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/models"
	"github.com/stretchr/testify/assert"
)

func TestNewBookingReference(t *testing.T) {
	ref := NewBookingReference()
	other := NewBookingReference()

	assert.True(t, strings.HasPrefix(ref, "WL-"))
	assert.Len(t, ref, 11)
	assert.NotEqual(t, ref, other)
}

func TestItinerarySlug(t *testing.T) {
	assert.Equal(t, "10-days-in-morocco", ItinerarySlug("10 Days in Morocco"))
}

func TestPriceItinerary(t *testing.T) {
	days := []models.ItineraryDay{
		{
			DayNumber: 1,
			Items: []models.ItineraryItem{
				{Description: "Riad double room", UnitPrice: 120, Qty: 2},
				{Description: "Airport transfer", UnitPrice: 35, Qty: 1},
			},
		},
		{
			DayNumber: 2,
			Items: []models.ItineraryItem{
				{Description: "Private guide", UnitPrice: 90, Qty: 1},
			},
		},
	}

	breakdown := PriceItinerary(days, 15)

	assert.Len(t, breakdown.Lines, 3)
	assert.Equal(t, 365.0, breakdown.Subtotal)
	assert.Equal(t, 54.75, breakdown.Markup)
	assert.Equal(t, 419.75, breakdown.Total)
}

func TestPriceItineraryEmpty(t *testing.T) {
	breakdown := PriceItinerary(nil, 20)

	assert.Empty(t, breakdown.Lines)
	assert.Equal(t, 0.0, breakdown.Subtotal)
	assert.Equal(t, 0.0, breakdown.Total)
}
