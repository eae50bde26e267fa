package signalwire

import (
	"context"
	"net/http"
)

// GetJWT exchanges the project credentials for a relay JWT and refresh token.
func (c *Client) GetJWT(ctx context.Context) (*JWT, error) {
	return call[JWT](ctx, c, request{
		method: http.MethodPost,
		path:   relayPath("/jwt"),
	})
}
