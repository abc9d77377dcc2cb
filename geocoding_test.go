package wialon

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/layrz/wialon-sdk-go/internal/mocks"
)

// newGeocodingClient creates a [*Client] whose transport records the request
// URL and answers with the given body.
func newGeocodingClient(t *testing.T, seenURL *string, body string) *Client {
	sess, err := NewSession(DefaultScheme, DefaultHost, 0, "S1", nil)
	if err != nil {
		t.Fatal(err)
	}
	sess.userID = "U1"
	transport := &mocks.HTTPClient{
		MockDo: func(req *http.Request) (*http.Response, error) {
			*seenURL = req.URL.String()
			resp := &http.Response{
				StatusCode: 200,
				Body:       io.NopCloser(strings.NewReader(body)),
			}
			return resp, nil
		},
	}
	return NewClient(sess, transport, nil)
}

func TestReverseGeocoding(t *testing.T) {
	t.Run("on success returns the first address", func(t *testing.T) {
		var seenURL string
		client := newGeocodingClient(t, &seenURL, `["Potsdamer Platz, Berlin, Germany"]`)

		got, err := client.ReverseGeocoding(context.Background(), 52.5096, 13.3759, 0)
		if err != nil {
			t.Fatal(err)
		}
		if got != "Potsdamer Platz, Berlin, Germany" {
			t.Fatal("unexpected address", got)
		}

		expect := `https://geocode-maps.hst-api.wialon.com/gis_geocode?` +
			`coords=[{"lon":13.3759,"lat":52.5096}]&flags=1255211008&uid=U1`
		if seenURL != expect {
			t.Fatal("unexpected URL", seenURL)
		}
	})

	t.Run("honors explicit flags", func(t *testing.T) {
		var seenURL string
		client := newGeocodingClient(t, &seenURL, `["somewhere"]`)

		if _, err := client.ReverseGeocoding(context.Background(), 1, 2, 42); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(seenURL, "&flags=42&") {
			t.Fatal("unexpected URL", seenURL)
		}
	})

	t.Run("with an empty response array", func(t *testing.T) {
		var seenURL string
		client := newGeocodingClient(t, &seenURL, `[]`)

		got, err := client.ReverseGeocoding(context.Background(), 1, 2, 0)
		var sdkErr *SDKError
		if !errors.As(err, &sdkErr) {
			t.Fatal("not the error type we expected", err)
		}
		if got != "" {
			t.Fatal("expected empty address")
		}
	})

	t.Run("with a non-string first element", func(t *testing.T) {
		var seenURL string
		client := newGeocodingClient(t, &seenURL, `[117]`)

		_, err := client.ReverseGeocoding(context.Background(), 1, 2, 0)
		var sdkErr *SDKError
		if !errors.As(err, &sdkErr) {
			t.Fatal("not the error type we expected", err)
		}
	})

	t.Run("with a non-JSON response", func(t *testing.T) {
		var seenURL string
		client := newGeocodingClient(t, &seenURL, `<html>`)

		_, err := client.ReverseGeocoding(context.Background(), 1, 2, 0)
		var sdkErr *SDKError
		if !errors.As(err, &sdkErr) {
			t.Fatal("not the error type we expected", err)
		}
	})

	t.Run("with a transport failure", func(t *testing.T) {
		expected := errors.New("mocked error")
		sess, err := NewSession(DefaultScheme, DefaultHost, 0, "S1", nil)
		if err != nil {
			t.Fatal(err)
		}
		client := NewClient(sess, &mocks.HTTPClient{
			MockDo: func(req *http.Request) (*http.Response, error) {
				return nil, expected
			},
		}, nil)

		_, err = client.ReverseGeocoding(context.Background(), 1, 2, 0)
		var sdkErr *SDKError
		if !errors.As(err, &sdkErr) {
			t.Fatal("not the error type we expected", err)
		}
		if !errors.Is(err, expected) {
			t.Fatal("cause is not unwrapped", err)
		}
	})
}
