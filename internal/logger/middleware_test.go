// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"bytes"
	netHTTP "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestMiddlewareLogger(t *testing.T) {
	t.Parallel()

	buffer := new(bytes.Buffer)
	logger := NewRegistry(new(bytes.Buffer), new(bytes.Buffer)).Get("middleware")
	logger.SetLevel(TRACE)
	logger.AddSink(NewConsoleSink(buffer))

	app := fiber.New(fiber.Config{})
	require.NotNil(t, app)

	middleware := RequestMiddlewareLogger(logger, []string{"/-/healthz"})
	require.NotNil(t, middleware)

	app.Use(middleware)
	app.Get("/-/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(netHTTP.StatusOK)
	})

	req := httptest.NewRequest(netHTTP.MethodGet, "http://example.com/foo", nil)
	req.Header.Set("User-Agent", "UnitTestAgent/1.0")
	req.Header.Set(requestIDHeaderName, "my-request-id")
	req.RemoteAddr = "127.0.0.1:12345"

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "my-request-id", resp.Header.Get(requestIDHeaderName))

	logs := buffer.String()
	splitted := strings.Split(logs, "\n")
	require.Len(t, splitted, 3)
	require.Empty(t, splitted[2])
	assert.Contains(t, splitted[0], IncomingRequestMessage)
	assert.Contains(t, splitted[0], "reqId=my-request-id")
	assert.Contains(t, splitted[1], RequestCompletedMessage)

	healthReq := httptest.NewRequest(netHTTP.MethodGet, "/-/healthz", nil)
	healthResp, err := app.Test(healthReq)
	require.NoError(t, err)
	defer healthResp.Body.Close()
	assert.Equal(t, logs, buffer.String(), "excluded prefixes are not logged")
}

func TestGetReqIDGeneratesUUID(t *testing.T) {
	t.Parallel()

	app := fiber.New(fiber.Config{})
	var requestID string
	app.Get("/", func(c *fiber.Ctx) error {
		requestID = GetReqID(&fiberLoggingContext{c: c})
		return nil
	})

	resp, err := app.Test(httptest.NewRequest(netHTTP.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Len(t, requestID, 36)
}
