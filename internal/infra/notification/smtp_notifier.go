// Package notification contains the outbound alert delivery adapters.
package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/pkg/errors"

	"simsure/config"
	"simsure/internal/domain/service"
)

// smtpNotifier delivers alert emails through a plain SMTP relay.
type smtpNotifier struct {
	cfg *config.SMTPConfig
}

// NewSMTPNotifier creates the SMTP-backed alert notifier.
func NewSMTPNotifier(cfg *config.Config) (service.Notifier, error) {
	if cfg.SMTP == nil || cfg.SMTP.Host == "" {
		return nil, errors.New("smtp config is required")
	}

	return &smtpNotifier{cfg: cfg.SMTP}, nil
}

// SendAlertNotification composes and sends one alert email. The ctx is
// accepted for interface symmetry; net/smtp does not support cancellation
// mid-send.
func (n *smtpNotifier) SendAlertNotification(_ context.Context, notification *service.AlertNotification) error {
	if notification == nil || notification.Recipient == "" {
		return errors.New("notification recipient is required")
	}

	subject := fmt.Sprintf("SIM alert for %s", notification.SIMNumber)
	body := formatAlertBody(notification)

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", n.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", notification.Recipient)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	msg.WriteString(body)

	auth := smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)

	if err := smtp.SendMail(addr, auth, n.cfg.From, []string{notification.Recipient}, []byte(msg.String())); err != nil {
		return errors.Wrap(err, "send alert email")
	}

	return nil
}

func formatAlertBody(notification *service.AlertNotification) string {
	var body strings.Builder
	fmt.Fprintf(&body, "A SIM event was detected on %s at %s.\n\n",
		notification.SIMNumber,
		notification.CreatedAt.Format("2006-01-02 15:04:05 MST"),
	)
	fmt.Fprintf(&body, "Status: %s\n", notification.Status)
	if len(notification.AffectedBanks) > 0 {
		fmt.Fprintf(&body, "Linked bank accounts on watch: %s\n", strings.Join(notification.AffectedBanks, ", "))
	}
	if len(notification.NextOfKin) > 0 {
		fmt.Fprintf(&body, "Next of kin notified: %s\n", strings.Join(notification.NextOfKin, ", "))
	}
	body.WriteString("\nIf you did not expect this, open the app and review the alert.\n")

	return body.String()
}
