package signalwire

import (
	"context"
	"net/http"
	"net/url"
)

// ListSubprojects lists the subprojects of the project
func (c *Client) ListSubprojects(ctx context.Context, params Params) (*SubprojectsResponse, error) {
	return call[SubprojectsResponse](ctx, c, request{
		method: http.MethodGet,
		path:   lamlPath("/Accounts"),
		query:  params,
	})
}

// GetSubproject retrieves a subproject by SID
func (c *Client) GetSubproject(ctx context.Context, sid string) (*Subproject, error) {
	return call[Subproject](ctx, c, request{
		method:   http.MethodGet,
		path:     lamlPath("/Accounts/%s", url.PathEscape(sid)),
		resource: "subproject",
		id:       sid,
	})
}

// CreateSubproject creates a subproject with the given friendly name
func (c *Client) CreateSubproject(ctx context.Context, friendlyName string) (*Subproject, error) {
	return call[Subproject](ctx, c, request{
		method: http.MethodPost,
		path:   lamlPath("/Accounts"),
		form:   Params{{Name: "FriendlyName", Value: friendlyName}},
	})
}

// UpdateSubproject changes the friendly name or status of a subproject
func (c *Client) UpdateSubproject(ctx context.Context, sid string, params Params) (*Subproject, error) {
	if params == nil {
		params = Params{}
	}
	return call[Subproject](ctx, c, request{
		method:   http.MethodPost,
		path:     lamlPath("/Accounts/%s", url.PathEscape(sid)),
		form:     params,
		resource: "subproject",
		id:       sid,
	})
}

// DeleteSubproject deletes a subproject. The API returns no body on success.
func (c *Client) DeleteSubproject(ctx context.Context, sid string) error {
	_, _, err := c.do(ctx, request{
		method:   http.MethodDelete,
		path:     lamlPath("/Accounts/%s", url.PathEscape(sid)),
		resource: "subproject",
		id:       sid,
	})
	return err
}

// ListSubprojectNumbers lists the incoming numbers owned by a subproject
func (c *Client) ListSubprojectNumbers(ctx context.Context, sid string, params Params) (*SubprojectPhoneNumbersResponse, error) {
	return call[SubprojectPhoneNumbersResponse](ctx, c, request{
		method: http.MethodGet,
		path:   lamlPath("/Accounts/%s/IncomingPhoneNumbers", url.PathEscape(sid)),
		query:  params,
	})
}
