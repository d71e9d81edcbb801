package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/mail"
	"net/smtp"
	"sort"
	"strings"
	"time"
)

const (
	defaultSMTPTimeout  = 30 * time.Second
	alternativeBoundary = "charity-alternative"
)

type SMTPMailer struct {
	Host      string
	Port      int
	Username  string
	Password  string
	TLSConfig *tls.Config
	// Timeout bounds one whole delivery, dial included.
	Timeout time.Duration
}

func NewSMTPMailer(host string, port int, username, password string) *SMTPMailer {
	return &SMTPMailer{
		Host:     host,
		Port:     port,
		Username: username,
		Password: password,
	}
}

func (m *SMTPMailer) tlsConfig() *tls.Config {
	if m.TLSConfig != nil {
		return m.TLSConfig
	}
	return &tls.Config{ServerName: m.Host}
}

func (m *SMTPMailer) auth() smtp.Auth {
	if m.Username == "" {
		return nil
	}
	return smtp.PlainAuth("", m.Username, m.Password, m.Host)
}

func (m *SMTPMailer) timeout() time.Duration {
	if m.Timeout > 0 {
		return m.Timeout
	}
	return defaultSMTPTimeout
}

// buildMessage renders the RFC 5322 message. Headers are written in a fixed
// order so the output is reproducible. With both bodies set the message is
// multipart/alternative, plain text first.
func buildMessage(email Email) []byte {
	headers := map[string]string{
		"From":         email.From,
		"To":           strings.Join(email.To, ", "),
		"Subject":      email.Subject,
		"MIME-Version": "1.0",
	}
	alternative := email.HTML != "" && email.Text != ""
	switch {
	case alternative:
		headers["Content-Type"] = fmt.Sprintf(`multipart/alternative; boundary="%s"`, alternativeBoundary)
	case email.HTML != "":
		headers["Content-Type"] = `text/html; charset="UTF-8"`
	default:
		headers["Content-Type"] = `text/plain; charset="UTF-8"`
	}
	for k, v := range email.Headers {
		headers[k] = v
	}

	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var msg strings.Builder
	for _, k := range keys {
		msg.WriteString(fmt.Sprintf("%s: %s\r\n", k, headers[k]))
	}
	msg.WriteString("\r\n")
	switch {
	case alternative:
		writePart(&msg, "text/plain", email.Text)
		writePart(&msg, "text/html", email.HTML)
		msg.WriteString("--" + alternativeBoundary + "--\r\n")
	case email.HTML != "":
		msg.WriteString(email.HTML)
	default:
		msg.WriteString(email.Text)
	}
	return []byte(msg.String())
}

func writePart(msg *strings.Builder, contentType, body string) {
	msg.WriteString("--" + alternativeBoundary + "\r\n")
	msg.WriteString(fmt.Sprintf("Content-Type: %s; charset=\"UTF-8\"\r\n\r\n", contentType))
	msg.WriteString(body)
	msg.WriteString("\r\n")
}

// envelopeFrom extracts the bare address from a display-name From header.
func envelopeFrom(from string) string {
	addr, err := mail.ParseAddress(from)
	if err != nil {
		return from
	}
	return addr.Address
}

// dial opens the connection under ctx. Port 465 speaks implicit TLS, other
// ports are upgraded with STARTTLS when the server offers it.
func (m *SMTPMailer) dial(ctx context.Context, addr string) (net.Conn, error) {
	dialer := &net.Dialer{Timeout: m.timeout()}
	if m.Port == 465 {
		return (&tls.Dialer{NetDialer: dialer, Config: m.tlsConfig()}).DialContext(ctx, "tcp", addr)
	}
	return dialer.DialContext(ctx, "tcp", addr)
}

func (m *SMTPMailer) Send(ctx context.Context, email Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(email.To) == 0 {
		return fmt.Errorf("smtp: no recipients")
	}
	ctx, cancel := context.WithTimeout(ctx, m.timeout())
	defer cancel()

	msg := buildMessage(email)
	addr := fmt.Sprintf("%s:%d", m.Host, m.Port)
	from := envelopeFrom(email.From)

	conn, err := m.dial(ctx, addr)
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	c, err := smtp.NewClient(conn, m.Host)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("smtp client: %w", err)
	}
	defer c.Close()

	if m.Port != 465 {
		if ok, _ := c.Extension("STARTTLS"); ok {
			if err = c.StartTLS(m.tlsConfig()); err != nil {
				return fmt.Errorf("smtp starttls: %w", err)
			}
		}
	}
	if auth := m.auth(); auth != nil {
		if err = c.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}
	if err = c.Mail(from); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	for _, recipient := range email.To {
		if err = c.Rcpt(recipient); err != nil {
			return fmt.Errorf("smtp send: %w", err)
		}
	}
	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	if _, err = w.Write(msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return c.Quit()
}
