package signalwire

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// SendSMS sends a message. From must be a number owned by the project.
func (c *Client) SendSMS(ctx context.Context, msg SMSMessage) (*Message, error) {
	if err := validate.Struct(msg); err != nil {
		return nil, unexpectedError(fmt.Errorf("invalid message: %w", err))
	}

	return call[Message](ctx, c, request{
		method: http.MethodPost,
		path:   lamlPath("/Accounts/%s/Messages", url.PathEscape(c.projectID)),
		form:   msg.form(),
	})
}

// GetMessage retrieves a message, including its current delivery status
func (c *Client) GetMessage(ctx context.Context, sid string) (*Message, error) {
	return call[Message](ctx, c, request{
		method:   http.MethodGet,
		path:     lamlPath("/Accounts/%s/Messages/%s", url.PathEscape(c.projectID), url.PathEscape(sid)),
		resource: "message",
		id:       sid,
	})
}
