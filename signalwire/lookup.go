package signalwire

import (
	"context"
	"net/http"
	"net/url"
)

// LookupNumber looks up an E.164 number. Use LookupParams to include carrier
// and caller name data. A client returned by WithToken authenticates this
// call with its JWT.
func (c *Client) LookupNumber(ctx context.Context, number string, params Params) (*LookupResult, error) {
	return call[LookupResult](ctx, c, request{
		method:   http.MethodGet,
		path:     relayPath("/lookup/phone_number/%s", url.PathEscape(number)),
		query:    params,
		resource: "phone number",
		id:       number,
		bearer:   true,
	})
}
