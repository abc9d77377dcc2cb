// Package mocks contains mocks for the interfaces in the model package.
package mocks

import (
	"net/http"

	"github.com/layrz/wialon-sdk-go/internal/model"
)

// HTTPClient allows mocking a [model.HTTPClient].
type HTTPClient struct {
	// MockDo allows mocking the Do method.
	MockDo func(req *http.Request) (*http.Response, error)
}

var _ model.HTTPClient = &HTTPClient{}

// Do implements model.HTTPClient.Do.
func (c *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	return c.MockDo(req)
}
