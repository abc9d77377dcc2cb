// Package testingx contains support code for writing tests.
package testingx

import (
	"net"
	"net/http"
	"net/http/httptest"

	"github.com/layrz/wialon-sdk-go/internal/runtimex"
)

// MustNewHTTPServer creates a new [*httptest.Server] listening on a random
// 127.0.0.1 port using the given handler. This function PANICS on failure.
func MustNewHTTPServer(handler http.Handler) *httptest.Server {
	listener := runtimex.Try1(net.Listen("tcp", "127.0.0.1:0"))
	srvr := &httptest.Server{
		Listener: listener,
		Config:   &http.Server{Handler: handler},
	}
	srvr.Start()
	return srvr
}
