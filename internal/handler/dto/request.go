package dto

type CheckAvailabilityRequest struct {
	ParkingFrom string `json:"parking_from" binding:"required"`
	ParkingTo   string `json:"parking_to" binding:"required"`
}

type CheckPriceRequest struct {
	ParkingFrom string `json:"parking_from" binding:"required"`
	ParkingTo   string `json:"parking_to" binding:"required"`
}

type CreateBookingRequest struct {
	CarPlate     string `json:"car_plate" binding:"required,max=10"`
	CustomerName string `json:"customer_name" binding:"required,max=100"`
	ParkingFrom  string `json:"parking_from" binding:"required"`
	ParkingTo    string `json:"parking_to" binding:"required"`
}

type AmendBookingRequest struct {
	CarPlate     string `json:"car_plate" binding:"omitempty,max=10"`
	CustomerName string `json:"customer_name" binding:"omitempty,max=100"`
	ParkingFrom  string `json:"parking_from" binding:"required"`
	ParkingTo    string `json:"parking_to" binding:"required"`
}
