package signalwire

import (
	"context"
)

// API defines the interface for SignalWire operations
type API interface {
	// TestConnection verifies the client can reach the space with its credentials
	TestConnection(ctx context.Context) error

	// GetJWT exchanges the project credentials for a relay token
	GetJWT(ctx context.Context) (*JWT, error)

	// Phone numbers
	SearchAvailableNumbers(ctx context.Context, isoCountry string, params Params) (*AvailablePhoneNumbersResponse, error)
	ListOwnedNumbers(ctx context.Context, params Params) (*OwnedPhoneNumbersResponse, error)
	GetOwnedNumber(ctx context.Context, id string) (*OwnedPhoneNumber, error)
	BuyNumber(ctx context.Context, number string) (*PurchasedPhoneNumber, error)
	UpdateNumber(ctx context.Context, id string, update UpdatePhoneNumberRequest) (*OwnedPhoneNumber, error)

	// Messaging
	SendSMS(ctx context.Context, msg SMSMessage) (*Message, error)
	GetMessage(ctx context.Context, sid string) (*Message, error)

	// Subprojects
	ListSubprojects(ctx context.Context, params Params) (*SubprojectsResponse, error)
	GetSubproject(ctx context.Context, sid string) (*Subproject, error)
	CreateSubproject(ctx context.Context, friendlyName string) (*Subproject, error)
	UpdateSubproject(ctx context.Context, sid string, params Params) (*Subproject, error)
	DeleteSubproject(ctx context.Context, sid string) error
	ListSubprojectNumbers(ctx context.Context, sid string, params Params) (*SubprojectPhoneNumbersResponse, error)

	// Lookup
	LookupNumber(ctx context.Context, number string, params Params) (*LookupResult, error)
}

var _ API = (*Client)(nil)
