package services

import (
	"context"
	"fmt"

	"eventdirectory/internal/domain"
)

type emailService struct {
	mailer domain.Mailer
}

// NewEmailService returns an EmailService that uses the given Mailer.
func NewEmailService(mailer domain.Mailer) domain.EmailService {
	return &emailService{mailer: mailer}
}

// SendAttendanceConfirmation sends the attendance confirmation email for a
// newly created attendance row.
func (s *emailService) SendAttendanceConfirmation(ctx context.Context, data *domain.AttendanceEmailData) error {
	if data == nil {
		return fmt.Errorf("attendance confirmation data is nil")
	}

	verb := "interested in"
	if data.State == domain.StateAttending {
		verb = "attending"
	}
	subject := fmt.Sprintf("You're on the attendee list for %s", data.EventName)
	text := fmt.Sprintf(
		"Hi %s,\n\nYou are now listed as %s %s.\nYou can change your attendance or its visibility at any time.\n",
		data.Name, verb, data.EventName,
	)
	html := fmt.Sprintf(
		"<p>Hi %s,</p><p>You are now listed as %s <strong>%s</strong>.</p><p>You can change your attendance or its visibility at any time.</p>",
		data.Name, verb, data.EventName,
	)

	if err := s.mailer.Send(data.Email, subject, html, text); err != nil {
		return fmt.Errorf("send attendance confirmation: %w", err)
	}
	return nil
}
