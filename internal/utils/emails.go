package utils

import (
	"log"

	"gopkg.in/gomail.v2"
)

// Mailer sends enrollment confirmations over SMTP. A Mailer with no host is
// disabled and silently skips sends.
type Mailer struct {
	host     string
	port     int
	username string
	password string
}

func NewMailer(host string, port int, username, password string) *Mailer {
	return &Mailer{host: host, port: port, username: username, password: password}
}

func (m *Mailer) Enabled() bool {
	return m != nil && m.host != ""
}

// Send delivers an HTML email to a single recipient.
func (m *Mailer) Send(to string, subject string, body string) error {
	mailer := gomail.NewMessage()
	mailer.SetHeader("From", m.username)
	mailer.SetHeader("To", to)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)

	if err := dialer.DialAndSend(mailer); err != nil {
		log.Printf("Failed to send email: %v", err)
		return err
	}

	return nil
}
