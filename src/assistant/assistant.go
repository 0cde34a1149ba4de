package assistant

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/models"
)

// The assistant fabricates replies and itineraries from static templates with
// placeholder substitution. There is no model behind it; the artificial delay
// exists so the dashboard can show its usual "thinking" state.

const defaultDelayMs = 1200

func ResponseDelay() time.Duration {
	ms, err := strconv.Atoi(os.Getenv("ASSISTANT_DELAY_MS"))
	if err != nil || ms < 0 {
		ms = defaultDelayMs
	}
	return time.Duration(ms) * time.Millisecond
}

var emailTemplates = map[string]string{
	"pricing": "Dear {{name}},\n\nThank you for reaching out about your trip to {{destination}}. " +
		"I have put together a detailed quote covering accommodation, private guiding and all listed activities for {{people}} traveler(s). " +
		"You will find the full pricing breakdown attached; rates are held for 14 days.\n\n" +
		"Warm regards,\n{{signature}}",
	"availability": "Dear {{name}},\n\nGood news: we still have availability in {{destination}} for your requested dates. " +
		"Our preferred hotels and guides are confirmed subject to a deposit, and I would recommend securing them this week as the season is filling up.\n\n" +
		"Warm regards,\n{{signature}}",
	"itinerary": "Dear {{name}},\n\nAs promised, here is the day-by-day itinerary draft for your {{destination}} journey. " +
		"Each day balances guided highlights with time at leisure, and every hotel has been hand-picked by our local team. " +
		"Let me know which days you would like to adjust.\n\nWarm regards,\n{{signature}}",
	"general": "Dear {{name}},\n\nThank you for your message. One of our travel designers is reviewing the details of your {{destination}} plans " +
		"and will come back to you within one business day with concrete suggestions.\n\nWarm regards,\n{{signature}}",
}

var whatsappTemplates = map[string]string{
	"pricing":      "Hi {{name}}! 👋 Great news - I've prepared the full quote for {{destination}}. Sending the breakdown over email now. Rates are locked for 14 days!",
	"availability": "Hi {{name}}! 👋 Checked with our partners in {{destination}} - your dates are still available! Shall I hold them with a small deposit?",
	"itinerary":    "Hi {{name}}! 👋 Your {{destination}} day-by-day plan is ready 🎉 Have a look and tell me which days you'd like to tweak.",
	"general":      "Hi {{name}}! 👋 Got your message - our {{destination}} specialist is on it and will get back to you today.",
}

// DetectIntent picks a reply template from keywords in the message body.
func DetectIntent(body string) string {
	lower := strings.ToLower(body)
	switch {
	case strings.Contains(lower, "price") || strings.Contains(lower, "cost") ||
		strings.Contains(lower, "quote") || strings.Contains(lower, "how much"):
		return "pricing"
	case strings.Contains(lower, "available") || strings.Contains(lower, "availability") ||
		strings.Contains(lower, "free on") || strings.Contains(lower, "dates work"):
		return "availability"
	case strings.Contains(lower, "itinerary") || strings.Contains(lower, "day by day") ||
		strings.Contains(lower, "plan") || strings.Contains(lower, "schedule"):
		return "itinerary"
	default:
		return "general"
	}
}

func fill(tpl string, vars map[string]string) string {
	out := tpl
	for key, val := range vars {
		out = strings.ReplaceAll(out, "{{"+key+"}}", val)
	}
	return out
}

func templateVars(msg models.InboxMessage, customer *models.Customer) map[string]string {
	vars := map[string]string{
		"name":        "traveler",
		"destination": "your destination",
		"people":      "1",
		"signature":   "The Wanderlust Team",
	}
	if customer != nil {
		if customer.Name != "" {
			vars["name"] = customer.Name
		}
		if customer.Destination != nil && *customer.Destination != "" {
			vars["destination"] = *customer.Destination
		}
		if customer.NumberOfPeople != nil && *customer.NumberOfPeople > 0 {
			vars["people"] = strconv.Itoa(int(*customer.NumberOfPeople))
		}
	}
	return vars
}

// DraftEmailReply produces a canned email reply for an inbox message.
// Deterministic: the same message and customer always yield the same draft.
func DraftEmailReply(msg models.InboxMessage, customer *models.Customer) string {
	intent := DetectIntent(msg.Body)
	return fill(emailTemplates[intent], templateVars(msg, customer))
}

// DraftWhatsAppReply is the short-form counterpart of DraftEmailReply.
func DraftWhatsAppReply(msg models.InboxMessage, customer *models.Customer) string {
	intent := DetectIntent(msg.Body)
	return fill(whatsappTemplates[intent], templateVars(msg, customer))
}

type DayPlan struct {
	DayNumber   uint   `json:"day_number"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

var dayTemplates = []struct {
	title       string
	description string
}{
	{"Arrival in {{destination}}", "Private transfer from the airport, welcome briefing with your local host and a relaxed evening to settle in."},
	{"{{destination}} city highlights", "Guided walk through the historic center, local market visit and lunch at a family-run restaurant."},
	{"Into the countryside", "Full-day excursion beyond {{destination}} with scenic stops, a light hike and a picnic lunch."},
	{"Culture and crafts", "Hands-on workshop with local artisans followed by a curated museum visit and free afternoon."},
	{"Flavors of {{destination}}", "Morning cooking class with regional ingredients, afternoon at leisure and optional evening food walk."},
	{"Day at leisure", "A free day in {{destination}}. Your host can arrange optional activities on request."},
}

// GenerateItinerary fabricates a day-by-day plan by cycling the template pool.
// The last day is always the departure.
func GenerateItinerary(destination string, days uint) []DayPlan {
	if days == 0 {
		return nil
	}
	vars := map[string]string{"destination": destination}
	plans := make([]DayPlan, 0, days)
	for i := uint(1); i <= days; i++ {
		if i == days && days > 1 {
			plans = append(plans, DayPlan{
				DayNumber:   i,
				Title:       fmt.Sprintf("Departure from %s", destination),
				Description: "Time at leisure before your private transfer to the airport.",
			})
			continue
		}
		tpl := dayTemplates[int(i-1)%len(dayTemplates)]
		plans = append(plans, DayPlan{
			DayNumber:   i,
			Title:       fill(tpl.title, vars),
			Description: fill(tpl.description, vars),
		})
	}
	return plans
}
