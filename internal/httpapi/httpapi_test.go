package httpapi_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simplecastapps/go-device-detector/internal/detector"
	"github.com/simplecastapps/go-device-detector/internal/detector/bot"
	"github.com/simplecastapps/go-device-detector/internal/detector/hints"
	"github.com/simplecastapps/go-device-detector/internal/httpapi"
)

type fakeDetector struct {
	lastUA      string
	lastHeaders []hints.Header
	result      detector.Detection
}

func (f *fakeDetector) Detect(ua string, headers ...hints.Header) detector.Detection {
	f.lastUA = ua
	f.lastHeaders = headers
	return f.result
}

func TestDetectHandlerReturnsDetectionJSON(t *testing.T) {
	fake := &fakeDetector{result: detector.Detection{Bot: &bot.Bot{Name: "Googlebot", Category: "Search bot"}}}
	app := httpapi.New(fake, nil)

	req := httptest.NewRequest(http.MethodPost, "/detect", strings.NewReader("Googlebot/2.1 (+http://www.google.com/bot.html)"))
	req.Header.Set("Sec-CH-UA-Mobile", "?0")

	resp, err := app.Test(req, 1000)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"name":"Googlebot"`)

	assert.Equal(t, "Googlebot/2.1 (+http://www.google.com/bot.html)", fake.lastUA)
	require.Len(t, fake.lastHeaders, 1)
	assert.Equal(t, "Sec-CH-UA-Mobile", fake.lastHeaders[0].Name)
}

func TestHealthHandlerReturnsOK(t *testing.T) {
	app := httpapi.New(&fakeDetector{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req, 1000)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "OK\n", string(body))
}

func TestUnknownRouteReturns404WithHelp(t *testing.T) {
	app := httpapi.New(&fakeDetector{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	resp, err := app.Test(req, 1000)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "valid routes")
}
