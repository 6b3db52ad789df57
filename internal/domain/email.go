package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// AttendanceEmailData holds data for the attendance confirmation email.
type AttendanceEmailData struct {
	Email     string
	Name      string
	EventName string
	State     AttendanceState
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendAttendanceConfirmation(ctx context.Context, data *AttendanceEmailData) error
}
