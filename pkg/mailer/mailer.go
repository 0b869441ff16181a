package mailer

import (
	"context"
	"fmt"
	"mime"
	"net/smtp"
	"strings"
)

// Mailer delivers a single HTML email per call. Implementations open one
// transport session per Send and never reuse it.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Message is one outbound email.
type Message struct {
	Subject string
	HTML    string
	To      string
}

// Config holds the SMTP connection settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPMailer sends mail over SMTP with STARTTLS and PLAIN auth.
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// New constructs an SMTPMailer from config.
func New(cfg Config) (*SMTPMailer, error) {
	if strings.TrimSpace(cfg.Host) == "" {
		return nil, fmt.Errorf("smtp host is required")
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	from := strings.TrimSpace(cfg.From)
	if from == "" {
		from = strings.TrimSpace(cfg.Username)
	}
	if from == "" {
		return nil, fmt.Errorf("from address is required")
	}

	return &SMTPMailer{
		host:     cfg.Host,
		port:     cfg.Port,
		username: strings.TrimSpace(cfg.Username),
		password: cfg.Password,
		from:     from,
	}, nil
}

// Send transmits one message. smtp.SendMail handles connect, STARTTLS when the
// server advertises it, AUTH, transmission, and QUIT in a single session.
func (m *SMTPMailer) Send(_ context.Context, msg Message) error {
	if strings.TrimSpace(msg.To) == "" {
		return fmt.Errorf("recipient is required")
	}

	addr := fmt.Sprintf("%s:%d", m.host, m.port)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	return smtp.SendMail(addr, auth, m.from, []string{msg.To}, BuildMessage(m.from, msg))
}

// BuildMessage renders the raw RFC 5322 message bytes: a multipart/alternative
// envelope carrying a single text/html part.
func BuildMessage(from string, msg Message) []byte {
	const boundary = "agentic-task-manager-alt"

	var b strings.Builder
	b.WriteString(fmt.Sprintf("From: %s\r\n", from))
	b.WriteString(fmt.Sprintf("To: %s\r\n", msg.To))
	b.WriteString(fmt.Sprintf("Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject)))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=%q\r\n", boundary))
	b.WriteString("\r\n")

	b.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)
	b.WriteString("\r\n")
	b.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	return []byte(b.String())
}
