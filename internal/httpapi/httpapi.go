// Package httpapi exposes the detection engine over HTTP, grounded on
// original_source/src/http.rs translated into fiber handlers: POST
// /detect takes the request body as the User-Agent string and GET
// /health answers a liveness probe.
package httpapi

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/simplecastapps/go-device-detector/internal/detector"
	"github.com/simplecastapps/go-device-detector/internal/detector/hints"
)

// Detector is the subset of *detector.Detector / *detector.CachedDetector
// that the handlers need, so the server can be wired with either.
type Detector interface {
	Detect(ua string, headers ...hints.Header) detector.Detection
}

// New builds a fiber app with the detection routes mounted. logger may be
// nil; a nil logger disables request-level error logging.
func New(det Detector, logger *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Post("/detect", detectHandler(det, logger))
	app.Get("/health", healthHandler)

	app.Use(notFoundHandler)

	return app
}

func detectHandler(det Detector, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ua := string(c.Body())
		headers := requestHeaderHints(c)

		detection := det.Detect(ua, headers...)

		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		if err := c.JSON(detection); err != nil {
			if logger != nil {
				logger.Error("encoding detection response", slog.Any("error", err))
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to encode detection")
		}
		return nil
	}
}

func healthHandler(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString("OK\n")
}

func notFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).SendString(
		"valid routes:\n  POST /detect with a body containing the user agent\n  GET  /health for heartbeat\n")
}

var clientHintHeaderNames = []string{
	"Sec-CH-UA",
	"Sec-CH-UA-Arch",
	"Sec-CH-UA-Bitness",
	"Sec-CH-UA-Mobile",
	"Sec-CH-UA-Model",
	"Sec-CH-UA-Full-Version",
	"Sec-CH-UA-Full-Version-List",
	"Sec-CH-UA-Platform",
	"Sec-CH-UA-Platform-Version",
	"Sec-CH-UA-Form-Factors",
	"X-Requested-With",
}

// requestHeaderHints lifts the Client Hints headers fiber received on the
// request into the generic Header slice hints.FromHeaders expects.
func requestHeaderHints(c *fiber.Ctx) []hints.Header {
	var out []hints.Header
	for _, name := range clientHintHeaderNames {
		if value := c.Get(name); value != "" {
			out = append(out, hints.Header{Name: name, Value: value})
		}
	}
	return out
}
