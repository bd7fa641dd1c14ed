package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Onboarding-api/pkg/logger"
)

// RequestLogger registra cada petición; el nivel depende del status (5xx error, 4xx warn).
// Usa el request id que deja middleware/requestid y, en rutas autenticadas, el usuario que actuó.
func RequestLogger(log *logger.Logger) fiber.Handler {
	l := log.Component("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		var ev *zerolog.Event
		switch {
		case status >= 500:
			ev = l.Error().Err(err)
		case status >= 400:
			ev = l.Warn()
		default:
			ev = l.Info()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Func(func(e *zerolog.Event) {
				if uid := GetUserID(c); uid != "" {
					e.Str("user_id", uid)
				}
			}).
			Msg("request")
		return err
	}
}
