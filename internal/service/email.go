package service

import (
	"context"
	"fmt"

	"carrental-backend/internal/domain"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) SendReservationConfirmation(ctx context.Context, email, name string, res *domain.Reservation) error {
	subject := fmt.Sprintf("Reservation #%d confirmed", res.ID)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour reservation #%d is confirmed.\n\nPickup: %s\nReturn: %s\nTotal: %s\n\nBest regards,\nThe Car Rental Team",
		name, res.ID, res.StartDate, res.EndDate, formatCents(res.PriceCents))
	return s.send(email, subject, body)
}

func (s *emailService) SendReservationCancellation(ctx context.Context, email, name string, res *domain.Reservation) error {
	subject := fmt.Sprintf("Reservation #%d cancelled", res.ID)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour reservation #%d for %s through %s has been cancelled.\n\nBest regards,\nThe Car Rental Team",
		name, res.ID, res.StartDate, res.EndDate)
	return s.send(email, subject, body)
}

func (s *emailService) SendReturnReminder(ctx context.Context, email, name string, res *domain.Reservation) error {
	subject := fmt.Sprintf("Return reminder for reservation #%d", res.ID)
	body := fmt.Sprintf(
		"Hello %s,\n\nThis is a reminder that your rental under reservation #%d is due back on %s.\n\nBest regards,\nThe Car Rental Team",
		name, res.ID, res.EndDate)
	return s.send(email, subject, body)
}

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email via gomail: %w", err)
	}

	return nil
}

// formatCents renders an integer cent amount as a dollar string.
func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
