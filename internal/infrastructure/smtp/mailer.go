package smtp

import (
	"fmt"
	"net/smtp"

	"github.com/portfolio-api/internal/config"
)

// Mailer sends emails. SendPin is the delivery half of the passwordless
// login flow; the PIN exists only in the message body, never on disk.
type Mailer interface {
	SendEmail(to, subject, body string) error
	SendPin(to, pin string) error
}

type mailer struct {
	host     string
	port     string
	from     string
	username string
	password string
}

func NewMailer(cfg *config.Config) Mailer {
	return &mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		from:     cfg.SMTPFrom,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
	}
}

func (m *mailer) SendEmail(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", m.from, to, subject, body)
	addr := fmt.Sprintf("%s:%s", m.host, m.port)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	return smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg))
}

func (m *mailer) SendPin(to, pin string) error {
	return m.SendEmail(to, "Your login PIN", "Your one-time login PIN: "+pin+"\r\n\r\nIt expires in a few minutes and can be used once.")
}
