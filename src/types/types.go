package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

type JSONB map[string]any

func (a JSONB) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *JSONB) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	return nil
}

type Metadata = JSONB

// TravelStatus is the lifecycle shown on a customer row. Aside from the four
// derived values, a customer may carry any free-text status set upstream.
type TravelStatus string

const (
	TRAVEL_PLANNING  TravelStatus = "Planning"
	TRAVEL_ACTIVE    TravelStatus = "Active"
	TRAVEL_TRAVELING TravelStatus = "Traveling"
	TRAVEL_COMPLETED TravelStatus = "Completed"
)

type BookingStatus string

const (
	BOOKING_PENDING   BookingStatus = "Pending"
	BOOKING_CONFIRMED BookingStatus = "Confirmed"
	BOOKING_CANCELED  BookingStatus = "Cancelled"
)

type ItineraryStatus string

const (
	ITINERARY_DRAFT ItineraryStatus = "draft"
	ITINERARY_FINAL ItineraryStatus = "final"
)

type MessageChannel string

const (
	CHANNEL_EMAIL    MessageChannel = "email"
	CHANNEL_WHATSAPP MessageChannel = "whatsapp"
)

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type CreateCustomerRequestBody struct {
	Name           string   `json:"name" binding:"required"`
	Email          string   `json:"email" binding:"required,email"`
	Phone          *string  `json:"phone,omitempty"`
	Nationality    *string  `json:"nationality,omitempty"`
	Destination    *string  `json:"destination,omitempty"`
	TripType       *string  `json:"trip_type,omitempty"`
	NumberOfPeople *uint    `json:"number_of_people,omitempty"`
	Value          *float64 `json:"value,omitempty"`
	StartDate      *string  `json:"start_date,omitempty" binding:"omitempty,traveldate"`
	EndDate        *string  `json:"end_date,omitempty" binding:"omitempty,traveldate"`
}

type UpdateCustomerRequestBody struct {
	Name           *string  `json:"name,omitempty"`
	Email          *string  `json:"email,omitempty" binding:"omitempty,email"`
	Phone          *string  `json:"phone,omitempty"`
	Nationality    *string  `json:"nationality,omitempty"`
	Destination    *string  `json:"destination,omitempty"`
	TripType       *string  `json:"trip_type,omitempty"`
	NumberOfPeople *uint    `json:"number_of_people,omitempty"`
	Value          *float64 `json:"value,omitempty"`
	StartDate      *string  `json:"start_date,omitempty" binding:"omitempty,traveldate"`
	EndDate        *string  `json:"end_date,omitempty" binding:"omitempty,traveldate"`
}

type UpdateStatusRequestBody struct {
	Status string `json:"status" binding:"required"`
}

type CreateBookingRequestBody struct {
	CustomerID  uint    `json:"customer_id" binding:"required"`
	Destination string  `json:"destination" binding:"required"`
	StartDate   string  `json:"start_date" binding:"required,traveldate"`
	EndDate     string  `json:"end_date" binding:"required,traveldate,gtdate=StartDate"`
	TotalAmount float64 `json:"total_amount"`
	HotelID     *uint   `json:"hotel_id,omitempty"`
}

type CreateHotelRequestBody struct {
	Name         string  `json:"name" binding:"required"`
	Destination  string  `json:"destination" binding:"required"`
	Category     string  `json:"category,omitempty"`
	ContactEmail *string `json:"contact_email,omitempty" binding:"omitempty,email"`
}

type CreateHotelRateRequestBody struct {
	RoomType    string  `json:"room_type" binding:"required"`
	SeasonStart string  `json:"season_start" binding:"required,traveldate"`
	SeasonEnd   string  `json:"season_end" binding:"required,traveldate,gtdate=SeasonStart"`
	NightlyRate float64 `json:"nightly_rate" binding:"required"`
	Currency    string  `json:"currency,omitempty"`
}

type CreateGuideRequestBody struct {
	Name        string  `json:"name" binding:"required"`
	Destination string  `json:"destination" binding:"required"`
	Languages   string  `json:"languages,omitempty"`
	Phone       *string `json:"phone,omitempty"`
}

type CreateGuideRateRequestBody struct {
	Service   string  `json:"service" binding:"required"`
	DailyRate float64 `json:"daily_rate" binding:"required"`
	Currency  string  `json:"currency,omitempty"`
}

type CreateActivityRequestBody struct {
	Name          string  `json:"name" binding:"required"`
	Destination   string  `json:"destination" binding:"required"`
	Description   *string `json:"description,omitempty"`
	DurationHours uint    `json:"duration_hours,omitempty"`
}

type CreateActivityRateRequestBody struct {
	PricePerPerson float64 `json:"price_per_person" binding:"required"`
	MinPeople      uint    `json:"min_people,omitempty"`
	Currency       string  `json:"currency,omitempty"`
}

type ItineraryItemInput struct {
	Description string  `json:"description" binding:"required"`
	UnitPrice   float64 `json:"unit_price"`
	Qty         uint    `json:"qty" binding:"required,min=1"`
}

type ItineraryDayInput struct {
	DayNumber   uint                 `json:"day_number" binding:"required"`
	Title       string               `json:"title" binding:"required"`
	Description string               `json:"description,omitempty"`
	Items       []ItineraryItemInput `json:"items,omitempty"`
}

type CreateItineraryRequestBody struct {
	CustomerID    uint                `json:"customer_id" binding:"required"`
	Title         string              `json:"title" binding:"required"`
	Destination   string              `json:"destination" binding:"required"`
	MarkupPercent float64             `json:"markup_percent"`
	Days          []ItineraryDayInput `json:"days,omitempty"`
}

type GenerateItineraryRequestBody struct {
	CustomerID  uint   `json:"customer_id" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	Days        uint   `json:"days" binding:"required,min=1,max=30"`
}

type CreateInboxMessageRequestBody struct {
	CustomerID  *uint   `json:"customer_id,omitempty"`
	Channel     string  `json:"channel" binding:"required,oneof=email whatsapp"`
	FromAddress string  `json:"from" binding:"required"`
	Subject     *string `json:"subject,omitempty"`
	Body        string  `json:"body" binding:"required"`
}

type DraftReplyRequestBody struct {
	MessageID uint `json:"message_id" binding:"required"`
}

type SendDraftRequestBody struct {
	MessageID uint   `json:"message_id" binding:"required"`
	To        string `json:"to" binding:"required,email"`
	Subject   string `json:"subject" binding:"required"`
}

type CalendarQuery struct {
	View string `form:"view,default=month" binding:"omitempty,oneof=month week"`
	Date string `form:"date" binding:"omitempty,traveldate"`
}
