package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// RequestLogger logs one line per request. Client and server errors are logged as warnings.
func RequestLogger(logger *log.Logger) fiber.Handler {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if c.Method() == fiber.MethodOptions {
			return err
		}
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		entry := logger.WithFields(log.Fields{
			"status":     status,
			"latency":    time.Since(start).String(),
			"method":     c.Method(),
			"path":       c.Path(),
			"request_id": c.GetRespHeader(fiber.HeaderXRequestID),
		})
		if status >= 400 {
			entry.Warn("http request")
		} else {
			entry.Info("http request")
		}
		return err
	}
}
