package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"

	"storefront-api/internal/pkg/config"
	"storefront-api/internal/pkg/errs"
	"storefront-api/internal/usecase"
)

var (
	_ usecase.NotificationDispatcher = (*MailDispatcher)(nil)
	_ usecase.NotificationDispatcher = (*LogDispatcher)(nil)
)

// MailDispatcher delivers notifications over SMTP.
type MailDispatcher struct {
	cfg config.MailConfig
}

func NewMailDispatcher(cfg config.MailConfig) *MailDispatcher {
	return &MailDispatcher{cfg: cfg}
}

func (d *MailDispatcher) Send(ctx context.Context, n usecase.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\nHi %s,\r\n\r\n%s\r\n",
		d.cfg.From, n.To, n.Subject, n.Username, n.Body,
	)

	addr := d.cfg.Host + ":" + d.cfg.Port
	var auth smtp.Auth
	if d.cfg.Username != "" {
		auth = smtp.PlainAuth("", d.cfg.Username, d.cfg.Password, d.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, d.cfg.From, []string{n.To}, []byte(msg)); err != nil {
		return errs.Wrap(err, "failed to send mail")
	}
	return nil
}

// LogDispatcher is wired when mail is disabled; notifications are logged and
// considered delivered.
type LogDispatcher struct{}

func NewLogDispatcher() *LogDispatcher {
	return &LogDispatcher{}
}

func (LogDispatcher) Send(_ context.Context, n usecase.Notification) error {
	slog.Info("notification suppressed, mail disabled",
		"to", n.To, "subject", n.Subject)
	return nil
}
