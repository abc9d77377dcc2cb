package wialon

//
// client.go - generic dispatch and invocation.
//

import (
	"context"
	"encoding/json"
	"reflect"
	"strings"

	"github.com/layrz/wialon-sdk-go/internal/httpx"
	"github.com/layrz/wialon-sdk-go/internal/model"
)

// Client is a Wialon Remote API client. Construct using [NewClient],
// otherwise you MUST fill all the fields marked as MANDATORY.
type Client struct {
	// HTTPClient is the MANDATORY HTTP client to use.
	HTTPClient model.HTTPClient

	// Logger is the MANDATORY logger to use.
	Logger model.Logger

	// Session is the MANDATORY session to read connection coordinates
	// and authentication state from.
	Session *Session

	// UserAgent is the OPTIONAL User-Agent header value to use.
	UserAgent string
}

// NewClient creates a new [*Client] using the given session. The httpClient
// is typically http.DefaultClient or any other *http.Client; a nil logger
// means discarding all log messages.
func NewClient(sess *Session, httpClient model.HTTPClient, logger model.Logger) *Client {
	return &Client{
		HTTPClient: httpClient,
		Logger:     model.ValidLoggerOrDefault(logger),
		Session:    sess,
		UserAgent:  "",
	}
}

// resolveService maps a method name to the corresponding remote service
// path by replacing the first underscore with a slash and leaving every
// other underscore untouched. The literal name "unit_group_update_units"
// is the single exception and maps to "unit_group/update_units". This
// function is total: any string input resolves to some service path.
func resolveService(method string) string {
	if method == "unit_group_update_units" {
		return "unit_group/update_units"
	}
	return strings.Replace(method, "_", "/", 1)
}

// assembleParams serializes the call arguments to the JSON string embedded
// into the request query. Mapping-shaped arguments are merged over the
// session's default parameters with the caller winning on conflict; nil is
// an empty mapping; sequence-shaped arguments are serialized as given,
// without merging defaults.
func (c *Client) assembleParams(args any) (string, error) {
	if args == nil {
		args = Params{}
	}
	var merged any
	switch {
	case isSequence(args):
		merged = args
	default:
		doc, good := args.(Params)
		if !good {
			return "", newSDKError("wialon: invalid call arguments, must be a mapping or a sequence", nil)
		}
		merged = c.Session.mergedParams(doc)
	}
	data, err := json.Marshal(merged)
	if err != nil {
		return "", newSDKError("wialon: cannot serialize call arguments", err)
	}
	return string(data), nil
}

// isSequence tells whether args is sequence shaped.
func isSequence(args any) bool {
	switch reflect.ValueOf(args).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

// Call invokes the given Remote API method with the given arguments.
//
// Arguments:
//
// - ctx is the cancellable context;
//
// - method is any method name, resolved to a service path per
// [resolveService]: there is no fixed enumeration of legal names and an
// unknown name is simply forwarded to the server;
//
// - args is either a [Params] mapping (merged over the session's default
// parameters, caller wins on conflict), any slice (serialized as given,
// defaults not merged), or nil (empty mapping).
//
// On success, this function returns the decoded JSON payload, mirroring
// whatever the server returned (a map[string]any, a []any, etc.). On
// failure, the error is either a [*SDKError], when the failure happened
// locally or in transit, or a [*APIError], when the server answered with a
// non-zero protocol error code. Failures are terminal: there is no retry.
func (c *Client) Call(ctx context.Context, method string, args any) (any, error) {
	svc := resolveService(method)

	// serialize the call arguments
	params, err := c.assembleParams(args)
	if err != nil {
		return nil, err
	}

	// assemble the final URL; the parameter order and the raw JSON
	// embedding reproduce the protocol's expected framing, so we
	// concatenate by hand instead of using net/url encoding
	sid := c.Session.SessionID()
	URL := c.Session.BaseURL() + "svc=" + svc + "&" + "sid=" + sid + "&" + "params=" + params + "&"

	c.Logger.Debugf(
		"wialon: call method: %s - svc: %s - params: %s - sessionId: %s",
		method, svc, params, sid,
	)

	// issue the request and decode the response body
	response, err := httpx.PostQueryJSON[any](ctx, c.httpxConfig(), URL)
	if err != nil {
		return nil, newSDKError("wialon: request failed", err)
	}

	// classify the response
	if err := responseError(response); err != nil {
		return nil, err
	}
	return response, nil
}

// ProcFunc invokes a remote procedure bound by [Client.Proc].
type ProcFunc func(ctx context.Context, args any) (any, error)

// Proc binds the given method name and returns the function that invokes
// it, such that c.Proc(name)(ctx, args) is equivalent to
// c.Call(ctx, name, args). This is convenient when a remote procedure is
// called from several places.
func (c *Client) Proc(name string) ProcFunc {
	return func(ctx context.Context, args any) (any, error) {
		return c.Call(ctx, name, args)
	}
}

// httpxConfig returns the [*httpx.Config] to use for the next request.
func (c *Client) httpxConfig() *httpx.Config {
	return &httpx.Config{
		Client:    c.HTTPClient,
		Logger:    c.Logger,
		UserAgent: c.UserAgent,
	}
}
