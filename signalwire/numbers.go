package signalwire

import (
	"context"
	"net/http"
	"net/url"
)

// SearchAvailableNumbers lists local numbers that can be purchased in the
// given ISO country. SignalWire currently only supports "US".
func (c *Client) SearchAvailableNumbers(ctx context.Context, isoCountry string, params Params) (*AvailablePhoneNumbersResponse, error) {
	return call[AvailablePhoneNumbersResponse](ctx, c, request{
		method: http.MethodGet,
		path: lamlPath("/Accounts/%s/AvailablePhoneNumbers/%s/Local",
			url.PathEscape(c.projectID), url.PathEscape(isoCountry)),
		query: params,
	})
}

// ListOwnedNumbers lists the numbers owned by the project. Pagination links
// are returned verbatim; follow them with OwnedNumberParams.PageToken.
func (c *Client) ListOwnedNumbers(ctx context.Context, params Params) (*OwnedPhoneNumbersResponse, error) {
	return call[OwnedPhoneNumbersResponse](ctx, c, request{
		method: http.MethodGet,
		path:   relayPath("/phone_numbers"),
		query:  params,
	})
}

// GetOwnedNumber retrieves a single owned number by ID
func (c *Client) GetOwnedNumber(ctx context.Context, id string) (*OwnedPhoneNumber, error) {
	return call[OwnedPhoneNumber](ctx, c, request{
		method:   http.MethodGet,
		path:     relayPath("/phone_numbers/%s", url.PathEscape(id)),
		resource: "phone number",
		id:       id,
	})
}

// BuyNumber purchases the given E.164 number.
func (c *Client) BuyNumber(ctx context.Context, number string) (*PurchasedPhoneNumber, error) {
	return call[PurchasedPhoneNumber](ctx, c, request{
		method: http.MethodPost,
		path:   relayPath("/phone_numbers"),
		json:   BuyPhoneNumberRequest{Number: number},
	})
}

// UpdateNumber changes the name and handlers of an owned number
func (c *Client) UpdateNumber(ctx context.Context, id string, update UpdatePhoneNumberRequest) (*OwnedPhoneNumber, error) {
	return call[OwnedPhoneNumber](ctx, c, request{
		method:   http.MethodPut,
		path:     relayPath("/phone_numbers/%s", url.PathEscape(id)),
		json:     update,
		resource: "phone number",
		id:       id,
	})
}
