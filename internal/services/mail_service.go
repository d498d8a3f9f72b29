package services

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"popfix-backend/internal/config"

	"github.com/sirupsen/logrus"
)

// Mailer sends the password-reset email. Abstracted so tests can swap in a
// recording fake.
type Mailer interface {
	SendResetPasswordEmail(ctx context.Context, to, token string) error
}

type smtpMailer struct {
	cfg    config.SMTPConfig
	logger *logrus.Logger
}

func NewSMTPMailer(cfg config.SMTPConfig, logger *logrus.Logger) Mailer {
	return &smtpMailer{
		cfg:    cfg,
		logger: logger,
	}
}

func (m *smtpMailer) SendResetPasswordEmail(ctx context.Context, to, token string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", m.cfg.FrontendURL, token)

	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s\r\n", m.cfg.From))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString("Subject: Restablecer Contrasena - Soporte PopFix\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString("Hola,\r\n\r\n")
	msg.WriteString("Recibimos una solicitud para restablecer tu contrasena en PopFix.\r\n")
	msg.WriteString("Para continuar, abre el siguiente enlace:\r\n\r\n")
	msg.WriteString(resetURL + "\r\n\r\n")
	msg.WriteString("El enlace expira en 15 minutos y solo puede usarse una vez.\r\n")
	msg.WriteString("Si no solicitaste este cambio, ignora este mensaje.\r\n")

	if err := m.send(ctx, to, []byte(msg.String())); err != nil {
		m.logger.WithError(err).WithField("to", to).Error("Failed to send reset password email")
		return fmt.Errorf("failed to send reset email: %w", err)
	}

	return nil
}

func (m *smtpMailer) send(ctx context.Context, to string, msg []byte) error {
	addr := net.JoinHostPort(m.cfg.Host, fmt.Sprintf("%d", m.cfg.Port))

	dialer := &net.Dialer{Timeout: 30 * time.Second}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: m.cfg.Host}); err != nil {
			return fmt.Errorf("smtp starttls: %w", err)
		}
	}

	if m.cfg.Username != "" {
		auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err := client.Mail(fromAddress(m.cfg.From)); err != nil {
		return fmt.Errorf("smtp mail: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		w.Close()
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close: %w", err)
	}

	return client.Quit()
}

// fromAddress extracts the bare address from a "Name <addr>" header value.
func fromAddress(from string) string {
	if start := strings.Index(from, "<"); start != -1 {
		if end := strings.Index(from[start:], ">"); end != -1 {
			return from[start+1 : start+end]
		}
	}
	return from
}
