// Package wialon implements a client for the Wialon Remote API, a
// session-based JSON-over-HTTP RPC protocol.
//
// The Remote API exposes hundreds of procedures and this package does not
// enumerate them. Instead, [Client.Call] accepts any method name and resolves
// it to the corresponding remote service path at call time, so the method
// name itself is the dispatch key:
//
//	sess, err := wialon.NewSession(wialon.DefaultScheme, wialon.DefaultHost, 0, "", nil)
//	if err != nil { /* ... */ }
//	client := wialon.NewClient(sess, http.DefaultClient, log.Log)
//	response, err := client.Call(ctx, "core_search_items", wialon.Params{...})
//
// Use [Client.Login] to authenticate with a token, which stores the session
// identifier and user identifier into the [Session] used by every subsequent
// call. Failures are either a [*SDKError], for anything that went wrong
// locally or in transit, or a [*APIError], for errors reported by the server
// through the protocol's error code field; discriminate with errors.As.
package wialon
