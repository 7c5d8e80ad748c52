package services

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

// sendTimeout bounds the one unbounded-latency call on the register path.
const sendTimeout = 15 * time.Second

type EmailService interface {
	SendVerificationCode(email, code string) error
}

type emailService struct {
	dialer *gomail.Dialer
	from   string
	name   string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail, fromName string) EmailService {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer: dialer,
		from:   fromEmail,
		name:   fromName,
	}
}

func (s *emailService) SendVerificationCode(email, code string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, s.name)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Your Gossip verification code")

	body := fmt.Sprintf(`
		<p>Your verification code is: <strong>%s</strong></p>
		<p>If you didn't request this code, please ignore this email.</p>
	`, code)

	m.SetBody("text/html", body)

	done := make(chan error, 1)
	go func() { done <- s.dialer.DialAndSend(m) }()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("send verification email: %w", err)
		}
		return nil
	case <-time.After(sendTimeout):
		return fmt.Errorf("send verification email: timeout after %s", sendTimeout)
	}
}
