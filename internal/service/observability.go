package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// UseCaseEvent is one timed service call: which read model or import ran,
// the board it hit, and whether it succeeded.
type UseCaseEvent struct {
	Name      string
	BoardRef  string // board ID or short ID, whichever the caller resolved
	Rows      int    // rows handled by an import; zero for the read models
	StartedAt time.Time
	Duration  time.Duration
	Success   bool
	Err       error
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver writes use-case events to the provided writer, one
// slog text line per call. DRAFTBOARD_LOG turns this on in main.
func NewLogUseCaseObserver(w io.Writer) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := make([]any, 0, 12)
	attrs = append(attrs,
		"use_case", event.Name,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	)
	if event.BoardRef != "" {
		attrs = append(attrs, "board", event.BoardRef)
	}
	if event.Rows > 0 {
		attrs = append(attrs, "rows", event.Rows)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "use_case", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "use_case", attrs...)
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}
