package queryfn

import (
	"context"
	"log/slog"
)

// Trace returns a Seq that logs every element passing through it at debug
// level, tagged with stage, and a final record when a traversal ends. A
// failed traversal is logged at warn level. A nil logger logs to
// slog.Default().
func (s Seq[T]) Trace(logger *slog.Logger, stage string) Seq[T] {
	if err := s.validate("Trace", "source"); err != nil {
		return fail[T](err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("stage", stage))

	return Seq[T]{
		run: func(yield func(T) bool) error {
			ctx := context.Background()
			index := 0
			err := s.run(func(v T) bool {
				logger.LogAttrs(ctx, slog.LevelDebug, "element", slog.Int("index", index), slog.Any("value", v))
				index++
				return yield(v)
			})
			if err != nil {
				logger.LogAttrs(ctx, slog.LevelWarn, "traversal failed", slog.Int("count", index), slog.Any("error", err))
				return err
			}
			logger.LogAttrs(ctx, slog.LevelDebug, "traversal ended", slog.Int("count", index))
			return nil
		},
	}
}
