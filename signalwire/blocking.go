package signalwire

import (
	"context"
	"time"
)

// BlockingClient mirrors every Client operation without a context argument.
// Each call runs the context-aware method on its own fresh context, bounded
// by the timeout given to Blocking when it is positive.
type BlockingClient struct {
	client  *Client
	timeout time.Duration
}

// Blocking returns a context-free view of the client. A zero timeout leaves
// calls bounded only by the HTTP client timeout.
func (c *Client) Blocking(timeout time.Duration) *BlockingClient {
	return &BlockingClient{client: c, timeout: timeout}
}

func (b *BlockingClient) context() (context.Context, context.CancelFunc) {
	if b.timeout > 0 {
		return context.WithTimeout(context.Background(), b.timeout)
	}
	return context.WithCancel(context.Background())
}

func block[T any](b *BlockingClient, fn func(ctx context.Context) (T, error)) (T, error) {
	ctx, cancel := b.context()
	defer cancel()
	return fn(ctx)
}

func (b *BlockingClient) TestConnection() error {
	ctx, cancel := b.context()
	defer cancel()
	return b.client.TestConnection(ctx)
}

func (b *BlockingClient) GetJWT() (*JWT, error) {
	return block(b, b.client.GetJWT)
}

func (b *BlockingClient) SearchAvailableNumbers(isoCountry string, params Params) (*AvailablePhoneNumbersResponse, error) {
	return block(b, func(ctx context.Context) (*AvailablePhoneNumbersResponse, error) {
		return b.client.SearchAvailableNumbers(ctx, isoCountry, params)
	})
}

func (b *BlockingClient) ListOwnedNumbers(params Params) (*OwnedPhoneNumbersResponse, error) {
	return block(b, func(ctx context.Context) (*OwnedPhoneNumbersResponse, error) {
		return b.client.ListOwnedNumbers(ctx, params)
	})
}

func (b *BlockingClient) GetOwnedNumber(id string) (*OwnedPhoneNumber, error) {
	return block(b, func(ctx context.Context) (*OwnedPhoneNumber, error) {
		return b.client.GetOwnedNumber(ctx, id)
	})
}

func (b *BlockingClient) BuyNumber(number string) (*PurchasedPhoneNumber, error) {
	return block(b, func(ctx context.Context) (*PurchasedPhoneNumber, error) {
		return b.client.BuyNumber(ctx, number)
	})
}

func (b *BlockingClient) UpdateNumber(id string, update UpdatePhoneNumberRequest) (*OwnedPhoneNumber, error) {
	return block(b, func(ctx context.Context) (*OwnedPhoneNumber, error) {
		return b.client.UpdateNumber(ctx, id, update)
	})
}

func (b *BlockingClient) SendSMS(msg SMSMessage) (*Message, error) {
	return block(b, func(ctx context.Context) (*Message, error) {
		return b.client.SendSMS(ctx, msg)
	})
}

func (b *BlockingClient) GetMessage(sid string) (*Message, error) {
	return block(b, func(ctx context.Context) (*Message, error) {
		return b.client.GetMessage(ctx, sid)
	})
}

func (b *BlockingClient) ListSubprojects(params Params) (*SubprojectsResponse, error) {
	return block(b, func(ctx context.Context) (*SubprojectsResponse, error) {
		return b.client.ListSubprojects(ctx, params)
	})
}

func (b *BlockingClient) GetSubproject(sid string) (*Subproject, error) {
	return block(b, func(ctx context.Context) (*Subproject, error) {
		return b.client.GetSubproject(ctx, sid)
	})
}

func (b *BlockingClient) CreateSubproject(friendlyName string) (*Subproject, error) {
	return block(b, func(ctx context.Context) (*Subproject, error) {
		return b.client.CreateSubproject(ctx, friendlyName)
	})
}

func (b *BlockingClient) UpdateSubproject(sid string, params Params) (*Subproject, error) {
	return block(b, func(ctx context.Context) (*Subproject, error) {
		return b.client.UpdateSubproject(ctx, sid, params)
	})
}

func (b *BlockingClient) DeleteSubproject(sid string) error {
	ctx, cancel := b.context()
	defer cancel()
	return b.client.DeleteSubproject(ctx, sid)
}

func (b *BlockingClient) ListSubprojectNumbers(sid string, params Params) (*SubprojectPhoneNumbersResponse, error) {
	return block(b, func(ctx context.Context) (*SubprojectPhoneNumbersResponse, error) {
		return b.client.ListSubprojectNumbers(ctx, sid, params)
	})
}

func (b *BlockingClient) LookupNumber(number string, params Params) (*LookupResult, error) {
	return block(b, func(ctx context.Context) (*LookupResult, error) {
		return b.client.LookupNumber(ctx, number, params)
	})
}
