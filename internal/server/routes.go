// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package server

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mia-platform/logfactory/internal/logger"
)

type statusResponse struct {
	Status  string `json:"status"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

type logRequest struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

func statusRoutes(app *fiber.App, name, version string) {
	handler := func(c *fiber.Ctx) error {
		return c.Status(http.StatusOK).JSON(statusResponse{
			Status:  "OK",
			Name:    name,
			Version: version,
		})
	}

	app.Get("/-/healthz", handler)
	app.Get("/-/ready", handler)
}

func loggersRoutes(app *fiber.App, registry *logger.Registry, log logger.Logger) {
	app.Get("/-/loggers", func(c *fiber.Ctx) error {
		return c.Status(http.StatusOK).JSON(registry.Describe())
	})

	app.Post("/log", func(c *fiber.Ctx) error {
		var body logRequest
		if err := c.BodyParser(&body); err != nil {
			return badRequest(c, "invalid request body")
		}

		level, ok := logger.ParseLevel(body.Level)
		if !ok {
			return badRequest(c, "invalid level "+body.Level)
		}

		if body.Message == "" {
			return badRequest(c, "message is required")
		}

		log.Log(level, body.Message)
		return c.SendStatus(http.StatusNoContent)
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(fiber.Map{
		"statusCode": http.StatusBadRequest,
		"error":      http.StatusText(http.StatusBadRequest),
		"message":    message,
	})
}
