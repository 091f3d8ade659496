package orderstore

import (
	"context"
	"log/slog"
)

// Watch reloads the mirror whenever another instance reports a change.
// It blocks until ctx is done.
func (s *Store) Watch(ctx context.Context) error {
	events, err := s.notifier.Subscribe(ctx)
	if err != nil {
		return persistenceErr(err, "subscribe to order changes")
	}

	for ev := range events {
		if ev.Origin == s.origin {
			continue
		}
		s.logger.Debug("Remote order change received",
			slog.String("op", string(ev.Op)),
			slog.String("origin", ev.Origin),
			slog.Uint64("remote_revision", ev.Revision))

		if err := s.Load(ctx); err != nil {
			s.logger.Error("Failed to reload orders after remote change", slog.Any("error", err))
		}
	}
	return ctx.Err()
}
