package service

import (
	"context"
	"log/slog"

	"github.com/stayloop/hotel-backoffice/internal/config"

	gomail "github.com/wneessen/go-mail"
)

// Notifier is the fire-and-forget mail port. Callers log a failed send and
// carry on; a notifier error never changes an HTTP outcome.
type Notifier interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

type SMTPNotifier struct {
	cfg    *config.Config
	logger *slog.Logger
}

func NewSMTPNotifier(cfg *config.Config, logger *slog.Logger) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg, logger: logger}
}

func (n *SMTPNotifier) Send(ctx context.Context, to, subject, text, html string) error {
	msg := gomail.NewMsg()
	if err := msg.From(n.cfg.MailFrom); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, text)
	if html != "" {
		msg.AddAlternativeString(gomail.TypeTextHTML, html)
	}

	client, err := gomail.NewClient(n.cfg.SMTPHost,
		gomail.WithPort(n.cfg.SMTPPort),
		gomail.WithSSL(),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(n.cfg.SMTPUser),
		gomail.WithPassword(n.cfg.SMTPPassword),
	)
	if err != nil {
		return err
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return err
	}
	n.logger.InfoContext(ctx, "email sent", "to", to, "subject", subject)
	return nil
}

// DevNotifier logs instead of sending. Used whenever SMTP is not configured.
type DevNotifier struct {
	logger *slog.Logger
}

func NewDevNotifier(logger *slog.Logger) *DevNotifier {
	return &DevNotifier{logger: logger}
}

func (n *DevNotifier) Send(ctx context.Context, to, subject, text, _ string) error {
	n.logger.InfoContext(ctx, "email suppressed (dev notifier)",
		"to", to,
		"subject", subject,
		"text", text,
	)
	return nil
}
