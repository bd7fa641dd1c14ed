package mail

import (
	"context"
	"sync"

	"github.com/jhoicas/Onboarding-api/internal/application/onboarding"
	"github.com/jhoicas/Onboarding-api/pkg/logger"
)

var _ onboarding.EmailSender = (*DryRunSender)(nil)

// DryRunSender no envía nada: registra el correo en el log y lo guarda en memoria.
// Es el sender por defecto en desarrollo (MAIL_DRY_RUN=true).
type DryRunSender struct {
	log  *logger.Logger
	mu   sync.Mutex
	sent []onboarding.Email
}

// NewDryRunSender construye el sender de prueba.
func NewDryRunSender(log *logger.Logger) *DryRunSender {
	return &DryRunSender{log: log.Component("mail")}
}

func (s *DryRunSender) Send(ctx context.Context, email onboarding.Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ev := s.log.Info().
		Str("to", email.To).
		Str("subject", email.Subject).
		Int("body_len", len(email.Body))
	if email.Attachment != nil {
		ev = ev.Str("attachment", email.Attachment.Name).Int("attachment_bytes", len(email.Attachment.Content))
	}
	ev.Msg("dry-run: correo no enviado")

	s.mu.Lock()
	s.sent = append(s.sent, email)
	s.mu.Unlock()
	return nil
}

// Sent copia de los correos registrados.
func (s *DryRunSender) Sent() []onboarding.Email {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]onboarding.Email, len(s.sent))
	copy(out, s.sent)
	return out
}
