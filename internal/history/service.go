package history

import (
	"context"

	"go.uber.org/zap"
)

type Service struct {
	entries *Repository

	logger *zap.Logger
}

func NewService(entries *Repository, logger *zap.Logger) *Service {
	return &Service{
		entries: entries,
		logger:  logger,
	}
}

// Record stores an entry. Failures are logged and swallowed: history must
// never fail the operation it describes.
func (s *Service) Record(ctx context.Context, draft EntryDraft) {
	if _, err := s.entries.Append(ctx, &draft); err != nil {
		s.logger.Warn("failed to record history entry",
			zap.String("command", draft.Command),
			zap.String("name", draft.Name),
			zap.Error(err))
		return
	}

	s.logger.Debug("recorded history entry",
		zap.String("command", draft.Command),
		zap.String("name", draft.Name),
		zap.String("outcome", string(draft.Outcome)))
}

// List returns up to limit entries, newest first.
func (s *Service) List(ctx context.Context, limit int) ([]Entry, error) {
	entries, err := s.entries.List(ctx, limit)
	if err != nil {
		s.logger.Error("failed to list history entries", zap.Error(err))
		return nil, err
	}

	return entries, nil
}
