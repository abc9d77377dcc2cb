package wialon

//
// auth.go - token login and logout.
//

import (
	"context"
	"strconv"
)

// Login authenticates using the given token by invoking the "token/login"
// remote procedure. On success, it stores the returned session token and
// user identifier into the [Session], so that subsequent calls are
// authenticated, and returns the full response mapping.
func (c *Client) Login(ctx context.Context, token string) (map[string]any, error) {
	response, err := c.Call(ctx, "token_login", Params{"token": token})
	if err != nil {
		return nil, err
	}

	doc, good := response.(map[string]any)
	if !good {
		return nil, newSDKError("wialon: login: response is not a mapping", nil)
	}

	// extract the authentication state from the response
	user, good := doc["user"].(map[string]any)
	if !good {
		return nil, newSDKError("wialon: login: response has no user mapping", nil)
	}
	userID, err := stringifyID(user["id"])
	if err != nil {
		return nil, err
	}
	sessionID, good := doc["eid"].(string)
	if !good {
		return nil, newSDKError("wialon: login: response has no eid string", nil)
	}

	c.Session.userID = userID
	c.Session.sessionID = sessionID
	return doc, nil
}

// Logout invalidates the current session on the server by invoking the
// "core/logout" remote procedure and returns its response. The local
// [Session] keeps its sessionID and userID untouched afterwards.
func (c *Client) Logout(ctx context.Context) (any, error) {
	return c.Call(ctx, "core_logout", nil)
}

// stringifyID reduces an identifier returned by the server, which may be a
// JSON string or a JSON number, to a string.
func stringifyID(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatInt(int64(v), 10), nil
	default:
		return "", newSDKError("wialon: login: response has no usable user.id", nil)
	}
}
