package api

import (
	"github.com/mingle-social/cli/pkg/transport"
)

// Client exposes the backend's two resource groups as typed calls over
// the shared transport
type Client struct {
	t *transport.Transport
}

// NewClient creates an API client on top of the given transport
func NewClient(t *transport.Transport) *Client {
	return &Client{t: t}
}
