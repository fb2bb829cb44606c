package dto

import (
	"fmt"
	"time"

	"github.com/stpnv0/ParkBooker/internal/domain"
)

type BookingResponse struct {
	ID           string `json:"id"`
	CarPlate     string `json:"car_plate"`
	CustomerName string `json:"customer_name"`
	ParkingFrom  string `json:"parking_from"`
	ParkingTo    string `json:"parking_to"`
	PricePence   int64  `json:"price_pence"`
	PriceGBP     string `json:"price_gbp"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

type DayAvailabilityResponse struct {
	Date            string `json:"date"`
	DayOfWeek       string `json:"day_of_week"`
	TotalSpaces     int    `json:"total_spaces"`
	OccupiedSpaces  int    `json:"occupied_spaces"`
	AvailableSpaces int    `json:"available_spaces"`
	IsAvailable     bool   `json:"is_available"`
}

type AvailabilityResponse struct {
	IsAvailable       bool                      `json:"is_available"`
	TotalCapacity     int                       `json:"total_capacity"`
	DailyAvailability []DayAvailabilityResponse `json:"daily_availability"`
	Message           string                    `json:"message"`
}

type PriceResponse struct {
	PricePence int64  `json:"price_pence"`
	PriceGBP   string `json:"price_gbp"`
	Message    string `json:"message"`
}

type AmendBookingResponse struct {
	Booking          BookingResponse `json:"booking"`
	PriceChangePence int64           `json:"price_change_pence"`
	PriceChangeGBP   string          `json:"price_change_gbp"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:           b.ID,
		CarPlate:     b.CarPlate,
		CustomerName: b.CustomerName,
		ParkingFrom:  b.ParkingFrom.Format(time.DateOnly),
		ParkingTo:    b.ParkingTo.Format(time.DateOnly),
		PricePence:   b.PricePence,
		PriceGBP:     FormatGBP(b.PricePence),
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    b.UpdatedAt.Format(time.RFC3339),
	}
}

func ToAvailabilityResponse(report *domain.AvailabilityReport) AvailabilityResponse {
	days := make([]DayAvailabilityResponse, 0, len(report.Days))
	for _, d := range report.Days {
		days = append(days, DayAvailabilityResponse{
			Date:            d.Date.Format(time.DateOnly),
			DayOfWeek:       d.DayOfWeek,
			TotalSpaces:     d.TotalSpaces,
			OccupiedSpaces:  d.OccupiedSpaces,
			AvailableSpaces: d.AvailableSpaces,
			IsAvailable:     d.IsAvailable,
		})
	}

	msg := "Parking space is available for the requested period."
	if !report.IsAvailable {
		msg = "No parking space available for one or more days in the requested period."
	}

	return AvailabilityResponse{
		IsAvailable:       report.IsAvailable,
		TotalCapacity:     report.TotalCapacity,
		DailyAvailability: days,
		Message:           msg,
	}
}

func ToAmendBookingResponse(result *domain.AmendResult) AmendBookingResponse {
	return AmendBookingResponse{
		Booking:          ToBookingResponse(result.Booking),
		PriceChangePence: result.PriceChangePence,
		PriceChangeGBP:   FormatGBP(result.PriceChangePence),
	}
}

// FormatGBP форматирует пенсы как фунты со знаком, без float.
func FormatGBP(pence int64) string {
	sign := ""
	if pence < 0 {
		sign = "-"
		pence = -pence
	}
	return fmt.Sprintf("%s%d.%02d", sign, pence/100, pence%100)
}
