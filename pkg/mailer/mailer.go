package mailer

import (
	"fmt"
	"net/smtp"

	"go.uber.org/zap"

	"github.com/WakoSS-nsk/api-yamdb/pkg/utils"
)

// Mailer delivers outbound mail. Delivery is best-effort: the signup
// flow never rolls back on a send failure.
type Mailer interface {
	Send(to, subject, body string) error
}

type smtpMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	enabled  bool
	log      *zap.Logger
}

func NewSMTPMailer(config utils.EmailConfig, log *zap.Logger) Mailer {
	enabled := config.Host != "" && config.Port != 0 && config.From != ""
	if !enabled {
		log.Warn("Mailer disabled: missing SMTP configuration")
	}

	return &smtpMailer{
		host:     config.Host,
		port:     config.Port,
		username: config.User,
		password: config.Password,
		from:     config.From,
		enabled:  enabled,
		log:      log.With(zap.String("component", "mailer")),
	}
}

func (m *smtpMailer) Send(to, subject, body string) error {
	if !m.enabled {
		// Development fallback: the message body carries the
		// confirmation code, so surface it in the log.
		m.log.Info("Mail not sent (mailer disabled)",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.String("body", body),
		)
		return nil
	}

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	auth := smtp.PlainAuth("", m.username, m.password, m.host)

	msg := []byte(fmt.Sprintf("To: %s\r\n"+
		"From: %s\r\n"+
		"Subject: %s\r\n"+
		"\r\n%s\r\n", to, m.from, subject, body))

	if err := smtp.SendMail(addr, auth, m.from, []string{to}, msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	return nil
}
