// Package httpx contains the HTTP transport primitive shared by the SDK
// operations: a POST request carrying all of its arguments inside the query
// string, with no request body, followed by reading a JSON response.
package httpx

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/layrz/wialon-sdk-go/internal/iox"
	"github.com/layrz/wialon-sdk-go/internal/model"
)

// Config contains configuration shared by [PostQueryJSON] and [PostQueryRaw].
//
// The zero value is invalid; initialize the MANDATORY fields.
type Config struct {
	// Client is the MANDATORY [model.HTTPClient] to use.
	Client model.HTTPClient

	// Logger is the MANDATORY [model.Logger] to use.
	Logger model.Logger

	// UserAgent is the OPTIONAL User-Agent header value to use.
	UserAgent string
}

// PostQueryRaw sends a POST request with no body and reads a raw response.
//
// Arguments:
//
// - ctx is the cancellable context;
//
// - config is the config to use;
//
// - URL is the URL to use, with the query string already assembled.
//
// The remote API reports failures inside the JSON body rather than through
// HTTP status codes, so this function does not inspect the status code.
func PostQueryRaw(ctx context.Context, config *Config, URL string) ([]byte, error) {
	// construct the request to use
	req, err := http.NewRequestWithContext(ctx, "POST", URL, nil)
	if err != nil {
		return nil, err
	}

	// get the raw response body
	return do(ctx, req, config)
}

// PostQueryJSON sends a POST request with no body and reads a JSON response.
//
// Arguments:
//
// - ctx is the cancellable context;
//
// - config is the config to use;
//
// - URL is the URL to use, with the query string already assembled.
//
// This function either returns an error or a valid Output.
func PostQueryJSON[Output any](ctx context.Context, config *Config, URL string) (Output, error) {
	// read the raw body
	rawrespbody, err := PostQueryRaw(ctx, config, URL)

	// handle the case of error
	if err != nil {
		return zeroValue[Output](), err
	}

	// parse the response body as JSON
	var output Output
	if err := json.Unmarshal(rawrespbody, &output); err != nil {
		return zeroValue[Output](), err
	}

	return output, nil
}

func do(ctx context.Context, req *http.Request, config *Config) ([]byte, error) {
	// assign the user agent if configured
	if config.UserAgent != "" {
		req.Header.Set("User-Agent", config.UserAgent)
	}

	// log the request URL
	config.Logger.Debugf("httpx: POST %s", req.URL.String())

	// issue the request
	resp, err := config.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// read the raw response body
	rawrespbody, err := iox.ReadAllContext(ctx, resp.Body)
	if err != nil {
		return nil, err
	}

	// log the response body
	config.Logger.Debugf("httpx: raw response body: %s", string(rawrespbody))
	return rawrespbody, nil
}

// zeroValue returns the zero value of the given type.
func zeroValue[T any]() T {
	var value T
	return value
}
