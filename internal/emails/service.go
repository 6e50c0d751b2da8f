package emails

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const recentLogLimit = 20

// Service attempts delivery and appends exactly one log entry per
// attempt, success or failure.
type Service struct {
	Repo   Repo
	Mailer Mailer
	Log    *zap.Logger
}

// Send attempts delivery and records the outcome. The returned error is
// the delivery error, if any; the log entry is written either way.
func (s *Service) Send(ctx context.Context, to, subject, body string) (LogEntry, error) {
	entry := LogEntry{
		ID:        uuid.NewString(),
		To:        to,
		Subject:   subject,
		Body:      body,
		Status:    StatusSent,
		CreatedAt: time.Now().UTC(),
	}

	sendErr := s.Mailer.Send(ctx, to, subject, body)
	if sendErr != nil {
		entry.Status = StatusFailed
		entry.Error = sendErr.Error()
	}

	if err := s.Repo.Create(ctx, entry); err != nil {
		s.logger().Error("email log write failed", zap.Error(err))
		if sendErr == nil {
			return entry, err
		}
	}
	if sendErr != nil {
		s.logger().Error("email send failed", zap.String("to", to), zap.Error(sendErr))
		return entry, sendErr
	}

	s.logger().Info("email sent", zap.String("to", to))
	return entry, nil
}

// Recent returns the last 20 log entries, newest first.
func (s *Service) Recent(ctx context.Context) ([]LogEntry, error) {
	return s.Repo.ListRecent(ctx, recentLogLimit)
}

func (s *Service) logger() *zap.Logger {
	if s.Log != nil {
		return s.Log
	}
	return zap.NewNop()
}
