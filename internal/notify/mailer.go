// Package notify delivers reservation confirmations to guests.  Email
// is strictly best-effort: when no SMTP credentials are configured, or
// delivery fails, the message is written to the operational log
// instead.  Nothing in this package ever fails a booking.
package notify

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/bayanihan/restaurant-reservation/internal/model"
)

// Mailer sends confirmation messages over SMTP.  A Mailer with empty
// credentials is valid and falls back to logging.
type Mailer struct {
	from     string
	password string
	host     string
	port     string
	// send is swapped out in tests; defaults to smtp.SendMail.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewMailer builds a Mailer from SMTP settings.  When user or password
// is empty the mailer is unconfigured and only logs.
func NewMailer(user, password, host, port string) *Mailer {
	if user == "" || password == "" {
		log.Printf("notify: email not configured - reservation confirmations will be logged instead")
	}
	return &Mailer{from: user, password: password, host: host, port: port, send: smtp.SendMail}
}

// Configured reports whether SMTP credentials are present.
func (m *Mailer) Configured() bool { return m.from != "" && m.password != "" }

// SendConfirmation delivers the confirmation message for a reservation,
// or logs it when email is not configured.  The returned error is
// informational; callers log and continue.
func (m *Mailer) SendConfirmation(res model.Reservation, confirmation string) error {
	body := Message(res, confirmation)
	if !m.Configured() {
		log.Printf("notify: reservation confirmation (email not configured):\n%s", body)
		return nil
	}
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: Your Reservation Confirmation\r\n\r\n%s",
		m.from, res.GuestEmail, body)
	auth := smtp.PlainAuth("", m.from, m.password, m.host)
	if err := m.send(m.host+":"+m.port, auth, m.from, []string{res.GuestEmail}, []byte(msg)); err != nil {
		log.Printf("notify: email send failed: %v", err)
		return err
	}
	log.Printf("notify: confirmation email sent to %s", res.GuestEmail)
	return nil
}

// Message renders the human-readable confirmation text.
func Message(res model.Reservation, confirmation string) string {
	return fmt.Sprintf(`Hello %s,
Your reservation for %d guests on %s at %s is confirmed.
Confirmation number: %s

Thank you!`, res.GuestName, res.PartySize, res.Date, res.Time, confirmation)
}
