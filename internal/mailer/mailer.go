package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"

	"github.com/samaladyasa/spice-and-soul-backend/internal/config"
	"github.com/samaladyasa/spice-and-soul-backend/internal/domain"
)

// Mailer sends the customer-facing transactional emails.
type Mailer interface {
	SendResetCode(to, code string) error
	SendOrderConfirmation(to, orderID string, items []domain.OrderItem, total float64) error
}

type smtpMailer struct {
	cfg config.EmailConfig
}

// NewSMTPMailer builds an SMTP-backed mailer.
func NewSMTPMailer(cfg config.EmailConfig) Mailer {
	return &smtpMailer{cfg: cfg}
}

func (m *smtpMailer) SendResetCode(to, code string) error {
	return m.send(to, "Password Reset Code - Spice & Soul", resetCodeTemplate(code))
}

func (m *smtpMailer) SendOrderConfirmation(to, orderID string, items []domain.OrderItem, total float64) error {
	subject := fmt.Sprintf("Order Confirmation - %s", orderID)
	return m.send(to, subject, orderConfirmationTemplate(orderID, items, total))
}

func (m *smtpMailer) send(to, subject, htmlBody string) error {
	e := email.NewEmail()
	e.From = fmt.Sprintf("%q <%s>", m.cfg.FromName, m.cfg.FromAddress)
	e.To = []string{to}
	e.Subject = subject
	e.HTML = []byte(htmlBody)

	addr := fmt.Sprintf("%s:%d", m.cfg.SMTPHost, m.cfg.SMTPPort)
	auth := smtp.PlainAuth("", m.cfg.FromAddress, m.cfg.Password, m.cfg.SMTPHost)
	return e.Send(addr, auth)
}
