package utils

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/models"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

func IsProd() bool {
	return os.Getenv("API_ENV") == "production"
}

// NewBookingReference produces a short human-quotable reference like WL-3F2A81C4.
func NewBookingReference() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("WL-%s", strings.ToUpper(raw[:8]))
}

func ItinerarySlug(title string) string {
	return slug.Make(title)
}

type PricingLine struct {
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price"`
	Qty         uint    `json:"qty"`
	Total       float64 `json:"total"`
}

type PricingBreakdown struct {
	Lines         []PricingLine `json:"lines"`
	Subtotal      float64       `json:"subtotal"`
	MarkupPercent float64       `json:"markup_percent"`
	Markup        float64       `json:"markup"`
	Total         float64       `json:"total"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// PriceItinerary sums line items (price x qty) across all days and applies the
// itinerary's percentage markup on top.
func PriceItinerary(days []models.ItineraryDay, markupPercent float64) PricingBreakdown {
	breakdown := PricingBreakdown{
		Lines:         []PricingLine{},
		MarkupPercent: markupPercent,
	}
	for _, day := range days {
		for _, item := range day.Items {
			total := round2(item.UnitPrice * float64(item.Qty))
			breakdown.Lines = append(breakdown.Lines, PricingLine{
				Description: item.Description,
				UnitPrice:   item.UnitPrice,
				Qty:         item.Qty,
				Total:       total,
			})
			breakdown.Subtotal += total
		}
	}
	breakdown.Subtotal = round2(breakdown.Subtotal)
	breakdown.Markup = round2(breakdown.Subtotal * markupPercent / 100)
	breakdown.Total = round2(breakdown.Subtotal + breakdown.Markup)
	return breakdown
}
