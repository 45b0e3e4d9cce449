package model

import "time"

type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "paid"
	PaymentStatusUnpaid PaymentStatus = "unpaid"
)

// Lesson is a single tutoring session (una clase).
// Date is a YYYY-MM-DD key and StartTime/EndTime are 24h HH:MM wall-clock
// strings; both are zero-padded so plain string comparison orders them.
type Lesson struct {
	ID            string        `json:"id"`
	Date          string        `json:"date"`
	StartTime     string        `json:"start_time"`
	EndTime       string        `json:"end_time"`
	Subject       string        `json:"subject"`
	StudentName   string        `json:"student_name"`
	Level         string        `json:"level"`
	Notes         string        `json:"notes"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
