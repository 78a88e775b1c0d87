package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"

	"github.com/varvara1412/telegram-bot/internal/dto"
)

type DispatchFunc func(ctx context.Context, event dto.Event) error

func Logger(next DispatchFunc) DispatchFunc {
	return func(ctx context.Context, event dto.Event) error {
		start := time.Now()
		requestID := uuid.New().String()

		logger := log.With().Str("request_id", requestID).Logger()
		ctx = logger.WithContext(ctx)

		err := next(ctx, event)

		latency := time.Since(start).Milliseconds()

		log.Ctx(ctx).Info().
			Str("event", fmt.Sprintf("%T", event)).
			Int64("latency", latency).
			Bool("failed", err != nil).
			Msg("Update processed")

		return err
	}
}

func Tracing(tracer trace.Tracer, next DispatchFunc) DispatchFunc {
	return func(ctx context.Context, event dto.Event) error {
		ctx, span := tracer.Start(ctx, fmt.Sprintf("[update] %T", event))
		defer span.End()

		return next(ctx, event)
	}
}
