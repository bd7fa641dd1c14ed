package mail

import "github.com/jhoicas/Onboarding-api/pkg/logger"

// NewSMTPSenderWithDialer expone el sender con un dialer falso para tests.
func NewSMTPSenderWithDialer(cfg SMTPConfig, d dialer, log *logger.Logger) *SMTPSender {
	return &SMTPSender{cfg: cfg, dialer: d, log: log.Component("mail")}
}
