package emails

import (
	"context"

	"go.uber.org/zap"
)

// Mailer delivers outreach email. Delivery is fire-and-forget: the
// caller records the outcome in the audit trail and moves on.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LogMailer is the default Mailer when no SMTP transport is configured.
// It records the attempt in the log and reports success.
type LogMailer struct {
	Log *zap.Logger
}

func (m LogMailer) Send(ctx context.Context, to, subject, body string) error {
	if m.Log != nil {
		m.Log.Info("email delivery skipped, no smtp transport configured",
			zap.String("to", to),
			zap.String("subject", subject),
		)
	}
	return nil
}

var _ Mailer = LogMailer{}
