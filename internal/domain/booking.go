package domain

import "time"

type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID           string        `json:"id"`
	CarPlate     string        `json:"car_plate"`
	CustomerName string        `json:"customer_name"`
	ParkingFrom  time.Time     `json:"parking_from"`
	ParkingTo    time.Time     `json:"parking_to"`
	PricePence   int64         `json:"price_pence"`
	Status       BookingStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

type CreateBookingInput struct {
	CarPlate     string
	CustomerName string
	ParkingFrom  time.Time
	ParkingTo    time.Time
}

// AmendBookingInput: пустые CarPlate/CustomerName означают "оставить как есть".
type AmendBookingInput struct {
	CarPlate     string
	CustomerName string
	ParkingFrom  time.Time
	ParkingTo    time.Time
}

type AmendResult struct {
	Booking          *Booking `json:"booking"`
	PriceChangePence int64    `json:"price_change_pence"`
}

type DayAvailability struct {
	Date            time.Time `json:"date"`
	DayOfWeek       string    `json:"day_of_week"`
	TotalSpaces     int       `json:"total_spaces"`
	OccupiedSpaces  int       `json:"occupied_spaces"`
	AvailableSpaces int       `json:"available_spaces"`
	IsAvailable     bool      `json:"is_available"`
}

type AvailabilityReport struct {
	IsAvailable   bool              `json:"is_available"`
	TotalCapacity int               `json:"total_capacity"`
	Days          []DayAvailability `json:"days"`
}
