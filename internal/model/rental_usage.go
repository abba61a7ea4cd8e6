package model

import "time"

// RentalUsage records a production occupying a rental place for a
// period of time.  Like schedule entries it is an interval entity
// and is well formed only when StartTime < EndTime.
type RentalUsage struct {
	ID           uint64    // rental_usage.usage_id
	ProductionID uint64    // rental_usage.production_id
	PlaceID      uint64    // rental_usage.place_id
	StartTime    time.Time // rental_usage.start_time
	EndTime      time.Time // rental_usage.end_time
}

// RentalPayment is a payment made against a rental usage.
type RentalPayment struct {
	ID          uint64    // rental_payment.payment_id
	UsageID     uint64    // rental_payment.usage_id
	DailyRate   float64   // rental_payment.daily_rate
	TotalCost   float64   // rental_payment.total_cost
	PaymentDate time.Time // rental_payment.payment_date
}
