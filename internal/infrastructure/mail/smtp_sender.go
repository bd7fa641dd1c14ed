// Package mail envía los correos de onboarding (oferta y recordatorios).
package mail

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/Onboarding-api/internal/application/onboarding"
	"github.com/jhoicas/Onboarding-api/pkg/logger"
)

var _ onboarding.EmailSender = (*SMTPSender)(nil)

// SMTPConfig datos del servidor SMTP y del remitente.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// dialer permite sustituir gomail.Dialer en tests.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPSender envía por SMTP usando gomail. Cada envío abre su propia conexión.
type SMTPSender struct {
	cfg    SMTPConfig
	dialer dialer
	log    *logger.Logger
}

// NewSMTPSender construye el sender con un gomail.Dialer.
func NewSMTPSender(cfg SMTPConfig, log *logger.Logger) *SMTPSender {
	return &SMTPSender{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		log:    log.Component("mail"),
	}
}

// Send arma el mensaje y lo envía. Si ctx vence antes, retorna ctx.Err(); el envío en curso no se aborta.
func (s *SMTPSender) Send(ctx context.Context, email onboarding.Email) error {
	m := BuildMessage(s.cfg.From, s.cfg.FromName, email)

	done := make(chan error, 1)
	go func() { done <- s.dialer.DialAndSend(m) }()

	select {
	case err := <-done:
		if err != nil {
			s.log.Error().Err(err).Str("to", email.To).Str("subject", email.Subject).Msg("envío fallido")
			return fmt.Errorf("mail: enviar a %s: %w", email.To, err)
		}
		s.log.Info().Str("to", email.To).Str("subject", email.Subject).Msg("correo enviado")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// BuildMessage convierte un onboarding.Email en un mensaje gomail (texto plano + adjunto opcional).
func BuildMessage(from, fromName string, email onboarding.Email) *gomail.Message {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", from, fromName)
	m.SetHeader("To", email.To)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/plain", email.Body)
	if a := email.Attachment; a != nil {
		content := a.Content
		m.Attach(a.Name, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}))
	}
	return m
}
