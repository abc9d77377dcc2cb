package wialon

//
// geocoding.go - reverse geocoding, a sibling of the generic dispatcher
// speaking to a dedicated endpoint with its own query-string shape.
//

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/layrz/wialon-sdk-go/internal/httpx"
)

// DefaultGeocodingFlags is the flags value used by [Client.ReverseGeocoding]
// when the caller passes zero flags.
const DefaultGeocodingFlags = 1255211008

// geoCoords is the coordinates pair serialized into the geocoding query.
// The field order matters on the wire: lon comes first.
type geoCoords struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// ReverseGeocoding resolves the given coordinates into a human-readable
// address. Passing zero flags selects [DefaultGeocodingFlags].
//
// This operation does not go through [Client.Call]: it addresses the
// geocoding endpoint ("geocode-maps." prepended to the session host) with
// its own query-string shape, and returns the first element of the JSON
// array in the response. Every failure, including a response that is not a
// non-empty array of strings, is a [*SDKError].
func (c *Client) ReverseGeocoding(ctx context.Context, latitude, longitude float64, flags int64) (string, error) {
	if flags == 0 {
		flags = DefaultGeocodingFlags
	}

	// serialize the coordinates pair
	coords, err := json.Marshal(geoCoords{Lon: longitude, Lat: latitude})
	if err != nil {
		return "", newSDKError("wialon: cannot serialize coordinates", err)
	}

	// assemble the final URL; like for the generic dispatch, the JSON is
	// embedded into the query string without percent-encoding
	URL := fmt.Sprintf(
		"https://geocode-maps.%s/gis_geocode?coords=[%s]&flags=%d&uid=%s",
		c.Session.Host(), string(coords), flags, c.Session.UserID(),
	)

	c.Logger.Debugf(
		"wialon: reverse geocoding: latitude %v - longitude %v - flags %d",
		latitude, longitude, flags,
	)

	// issue the request and decode the response body
	response, err := httpx.PostQueryJSON[[]any](ctx, c.httpxConfig(), URL)
	if err != nil {
		return "", newSDKError("wialon: request failed", err)
	}

	// the response is an array whose first element is the address
	if len(response) < 1 {
		return "", newSDKError("wialon: reverse geocoding: empty response", nil)
	}
	address, good := response[0].(string)
	if !good {
		return "", newSDKError("wialon: reverse geocoding: response is not an array of strings", nil)
	}
	return address, nil
}
