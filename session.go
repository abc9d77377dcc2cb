package wialon

//
// session.go - connection coordinates and authentication state.
//

import (
	"fmt"
	"maps"
)

// Default connection coordinates accepted by [NewSession].
const (
	// DefaultScheme is the default transport scheme.
	DefaultScheme = "https"

	// DefaultHost is the default Remote API host.
	DefaultHost = "hst-api.wialon.com"
)

// Params contains the arguments of a mapping-shaped call.
type Params = map[string]any

// Session holds the connection coordinates of the Remote API along with the
// current authentication state. A [*Session] is mutated by [Client.Login]
// only; there is no internal locking, so sharing one across goroutines
// requires external synchronization.
type Session struct {
	// scheme is the transport scheme (e.g. "https").
	scheme string

	// host is the Remote API host.
	host string

	// port is the optional port; zero means no explicit port.
	port int

	// sessionID is the opaque session token; empty before login.
	sessionID string

	// userID is the authenticated user identifier; empty before login.
	userID string

	// defaultParams contains parameters merged into every
	// mapping-shaped call.
	defaultParams Params
}

// NewSession creates a new [*Session] with the given connection coordinates.
//
// Arguments:
//
// - scheme is the transport scheme, e.g. [DefaultScheme];
//
// - host is the Remote API host, e.g. [DefaultHost];
//
// - port is the optional port, where zero means "no explicit port";
//
// - sessionID is the session token of an already-established session, or an
// empty string when you are going to call [Client.Login];
//
// - extraParams contains optional default parameters merged into every
// mapping-shaped call, where the caller wins on key conflict.
//
// This function fails with a [*SDKError] when any argument is invalid; no
// network activity occurs here.
func NewSession(scheme, host string, port int, sessionID string, extraParams Params) (*Session, error) {
	if scheme == "" {
		return nil, newSDKError("wialon: invalid scheme, must not be empty", nil)
	}
	if host == "" {
		return nil, newSDKError("wialon: invalid host, must not be empty", nil)
	}
	if port < 0 {
		return nil, newSDKError("wialon: invalid port, must not be negative", nil)
	}
	defaultParams := make(Params)
	maps.Copy(defaultParams, extraParams)
	return &Session{
		scheme:        scheme,
		host:          host,
		port:          port,
		sessionID:     sessionID,
		userID:        "",
		defaultParams: defaultParams,
	}, nil
}

// BaseURL returns the base URL to which every generic dispatch request is
// addressed, including the fixed path suffix and the trailing "?". A zero
// port is omitted from the URL. This function is pure.
func (s *Session) BaseURL() string {
	URL := fmt.Sprintf("%s://%s", s.scheme, s.host)
	if s.port > 0 {
		URL = fmt.Sprintf("%s:%d", URL, s.port)
	}
	return URL + "/wialon/ajax.html?"
}

// Scheme returns the transport scheme.
func (s *Session) Scheme() string {
	return s.scheme
}

// Host returns the Remote API host.
func (s *Session) Host() string {
	return s.host
}

// Port returns the port, where zero means "no explicit port".
func (s *Session) Port() int {
	return s.port
}

// SessionID returns the current session token, which is empty before a
// successful [Client.Login].
func (s *Session) SessionID() string {
	return s.sessionID
}

// UserID returns the authenticated user identifier, which is empty before a
// successful [Client.Login].
func (s *Session) UserID() string {
	return s.userID
}

// mergedParams returns a copy of the default parameters overlaid with the
// given arguments, where the caller wins on key conflict.
func (s *Session) mergedParams(args Params) Params {
	merged := make(Params)
	maps.Copy(merged, s.defaultParams)
	maps.Copy(merged, args)
	return merged
}
