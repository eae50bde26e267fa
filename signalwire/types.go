package signalwire

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWT is the result of the relay token exchange. Nothing refreshes it
// automatically; request a new one when ExpiresAt has passed.
type JWT struct {
	JWTToken     string `json:"jwt_token" validate:"required"`
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// ExpiresAt decodes the exp claim of the token. The signature is not
// verified; the value is only a hint for when to request a new token.
func (t *JWT) ExpiresAt() (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(t.JWTToken, claims); err != nil {
		return time.Time{}, fmt.Errorf("failed to decode jwt: %w", err)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read exp claim: %w", err)
	}
	if exp == nil {
		return time.Time{}, fmt.Errorf("jwt has no exp claim")
	}
	return exp.Time, nil
}

// Capabilities lists the services an available or subproject number supports
type Capabilities struct {
	Voice *bool `json:"voice"`
	SMS   *bool `json:"SMS"`
	MMS   *bool `json:"MMS"`
	Fax   *bool `json:"fax"`
}

// Has reports whether the named capability ("voice", "sms", "mms", "fax") is enabled
func (c Capabilities) Has(name string) bool {
	var v *bool
	switch name {
	case "voice":
		v = c.Voice
	case "sms", "SMS":
		v = c.SMS
	case "mms", "MMS":
		v = c.MMS
	case "fax":
		v = c.Fax
	}
	return v != nil && *v
}

// AvailablePhoneNumbersResponse is returned by SearchAvailableNumbers
type AvailablePhoneNumbersResponse struct {
	URI                   string                 `json:"uri" validate:"required"`
	AvailablePhoneNumbers []AvailablePhoneNumber `json:"available_phone_numbers" validate:"required,dive"`
}

// AvailablePhoneNumber is a number that can be purchased
type AvailablePhoneNumber struct {
	Beta         bool         `json:"beta"`
	Capabilities Capabilities `json:"capabilities"`
	FriendlyName string       `json:"friendly_name"`
	IsoCountry   string       `json:"iso_country"`
	Lata         *string      `json:"lata"`
	Latitude     *float64     `json:"latitude"`
	Longitude    *float64     `json:"longitude"`
	PhoneNumber  string       `json:"phone_number" validate:"required"`
	PostalCode   *string      `json:"postal_code"`
	RateCenter   string       `json:"rate_center"`
	Region       string       `json:"region"`
}

// Links holds the raw pagination links of a relay REST listing
type Links struct {
	Self  string  `json:"self" validate:"required"`
	First string  `json:"first" validate:"required"`
	Next  *string `json:"next"`
	Prev  *string `json:"prev"`
}

// OwnedPhoneNumbersResponse is returned by ListOwnedNumbers
type OwnedPhoneNumbersResponse struct {
	Links Links              `json:"links"`
	Data  []OwnedPhoneNumber `json:"data" validate:"required,dive"`
}

// HasMorePages checks if the listing has a next page
func (r *OwnedPhoneNumbersResponse) HasMorePages() bool {
	return r.Links.Next != nil && *r.Links.Next != ""
}

// OwnedPhoneNumber is a number owned by the project, as returned by the relay REST API
type OwnedPhoneNumber struct {
	ID                                string   `json:"id" validate:"required"`
	Number                            string   `json:"number" validate:"required"`
	Name                              string   `json:"name"`
	CallHandler                       *string  `json:"call_handler"`
	CallReceiveMode                   *string  `json:"call_receive_mode"`
	CallRequestURL                    *string  `json:"call_request_url"`
	CallRequestMethod                 *string  `json:"call_request_method"`
	CallFallbackURL                   *string  `json:"call_fallback_url"`
	CallFallbackMethod                *string  `json:"call_fallback_method"`
	CallStatusCallbackURL             *string  `json:"call_status_callback_url"`
	CallStatusCallbackMethod          *string  `json:"call_status_callback_method"`
	CallLamlApplicationID             *string  `json:"call_laml_application_id"`
	CallDialogflowAgentID             *string  `json:"call_dialogflow_agent_id"`
	CallRelayTopic                    *string  `json:"call_relay_topic"`
	CallRelayTopicStatusCallbackURL   *string  `json:"call_relay_topic_status_callback_url"`
	CallRelayContext                  *string  `json:"call_relay_context"`
	CallRelayContextStatusCallbackURL *string  `json:"call_relay_context_status_callback_url"`
	CallRelayApplication              *string  `json:"call_relay_application"`
	CallRelayConnectorID              *string  `json:"call_relay_connector_id"`
	CallSipEndpointID                 *string  `json:"call_sip_endpoint_id"`
	CallVertoResource                 *string  `json:"call_verto_resource"`
	CallVideoRoomID                   *string  `json:"call_video_room_id"`
	MessageHandler                    *string  `json:"message_handler"`
	MessageRequestURL                 *string  `json:"message_request_url"`
	MessageRequestMethod              *string  `json:"message_request_method"`
	MessageFallbackURL                *string  `json:"message_fallback_url"`
	MessageFallbackMethod             *string  `json:"message_fallback_method"`
	MessageLamlApplicationID          *string  `json:"message_laml_application_id"`
	MessageRelayTopic                 *string  `json:"message_relay_topic"`
	MessageRelayContext               *string  `json:"message_relay_context"`
	MessageRelayApplication           *string  `json:"message_relay_application"`
	Capabilities                      []string `json:"capabilities"`
	NumberType                        *string  `json:"number_type"`
	E911AddressID                     *string  `json:"e911_address_id"`
	CreatedAt                         *string  `json:"created_at"`
	UpdatedAt                         *string  `json:"updated_at"`
	NextBilledAt                      *string  `json:"next_billed_at"`
}

// HasCapability reports whether the number lists the capability, e.g. "sms"
func (n *OwnedPhoneNumber) HasCapability(name string) bool {
	for _, c := range n.Capabilities {
		if c == name {
			return true
		}
	}
	return false
}

// BuyPhoneNumberRequest is the JSON body sent by BuyNumber
type BuyPhoneNumberRequest struct {
	Number string `json:"number"`
}

// PurchasedPhoneNumber is returned by BuyNumber. It overlaps with
// OwnedPhoneNumber but the purchase endpoint is versioned separately.
type PurchasedPhoneNumber struct {
	ID             string   `json:"id" validate:"required"`
	Number         string   `json:"number" validate:"required"`
	Name           string   `json:"name"`
	CallHandler    *string  `json:"call_handler"`
	MessageHandler *string  `json:"message_handler"`
	Capabilities   []string `json:"capabilities"`
	NumberType     *string  `json:"number_type"`
	E911AddressID  *string  `json:"e911_address_id"`
	CreatedAt      *string  `json:"created_at"`
	UpdatedAt      *string  `json:"updated_at"`
	NextBilledAt   *string  `json:"next_billed_at"`
}

// UpdatePhoneNumberRequest is the JSON body sent by UpdateNumber. Empty
// fields are left unchanged on the server.
type UpdatePhoneNumberRequest struct {
	Name                  string `json:"name,omitempty"`
	CallHandler           string `json:"call_handler,omitempty"`
	CallRequestURL        string `json:"call_request_url,omitempty"`
	CallRequestMethod     string `json:"call_request_method,omitempty"`
	CallRelayContext      string `json:"call_relay_context,omitempty"`
	CallLamlApplicationID string `json:"call_laml_application_id,omitempty"`
	MessageHandler        string `json:"message_handler,omitempty"`
	MessageRequestURL     string `json:"message_request_url,omitempty"`
	MessageRequestMethod  string `json:"message_request_method,omitempty"`
	MessageRelayContext   string `json:"message_relay_context,omitempty"`
}

// SMSMessage is the outgoing message accepted by SendSMS
type SMSMessage struct {
	From string `validate:"required"`
	To   string `validate:"required"`
	Body string `validate:"required"`
}

func (m SMSMessage) form() Params {
	return Params{
		{Name: "From", Value: m.From},
		{Name: "To", Value: m.To},
		{Name: "Body", Value: m.Body},
	}
}

// Message is a LaML message record, returned both by SendSMS and GetMessage
type Message struct {
	SID                 string            `json:"sid" validate:"required"`
	AccountSID          string            `json:"account_sid"`
	APIVersion          string            `json:"api_version"`
	From                string            `json:"from" validate:"required"`
	To                  string            `json:"to" validate:"required"`
	Body                string            `json:"body"`
	Status              string            `json:"status" validate:"required"`
	Direction           string            `json:"direction"`
	NumSegments         *int              `json:"num_segments"`
	NumMedia            *int              `json:"num_media"`
	Price               *json.Number      `json:"price"`
	PriceUnit           *string           `json:"price_unit"`
	ErrorCode           *int              `json:"error_code"`
	ErrorMessage        *string           `json:"error_message"`
	MessagingServiceSID *string           `json:"messaging_service_sid"`
	DateCreated         string            `json:"date_created"`
	DateUpdated         string            `json:"date_updated"`
	DateSent            *string           `json:"date_sent"`
	URI                 string            `json:"uri"`
	SubresourceURIs     map[string]string `json:"subresource_uris"`
}

// MessageStatus classifies the raw status string
func (m *Message) MessageStatus() MessageStatus {
	return ParseMessageStatus(m.Status)
}

// LamlPage holds the raw pagination fields shared by LaML listings
type LamlPage struct {
	URI             string  `json:"uri"`
	FirstPageURI    string  `json:"first_page_uri"`
	NextPageURI     *string `json:"next_page_uri"`
	PreviousPageURI *string `json:"previous_page_uri"`
	Page            int     `json:"page"`
	PageSize        int     `json:"page_size"`
	Start           int     `json:"start"`
	End             int     `json:"end"`
}

// HasMorePages checks if there is a next page
func (p *LamlPage) HasMorePages() bool {
	return p.NextPageURI != nil && *p.NextPageURI != ""
}

// Subproject is a LaML account nested under the project
type Subproject struct {
	SID             string            `json:"sid" validate:"required"`
	FriendlyName    string            `json:"friendly_name"`
	Status          string            `json:"status"`
	Type            string            `json:"type"`
	OwnerAccountSID *string           `json:"owner_account_sid"`
	AuthToken       *string           `json:"auth_token"`
	DateCreated     string            `json:"date_created"`
	DateUpdated     string            `json:"date_updated"`
	URI             string            `json:"uri"`
	SubresourceURIs map[string]string `json:"subresource_uris"`
}

// SubprojectsResponse is returned by ListSubprojects
type SubprojectsResponse struct {
	LamlPage
	Accounts []Subproject `json:"accounts" validate:"required,dive"`
}

// SubprojectPhoneNumber is an incoming number owned by a subproject
type SubprojectPhoneNumber struct {
	SID                  string       `json:"sid" validate:"required"`
	AccountSID           string       `json:"account_sid"`
	APIVersion           string       `json:"api_version"`
	FriendlyName         string       `json:"friendly_name"`
	PhoneNumber          string       `json:"phone_number" validate:"required"`
	Capabilities         Capabilities `json:"capabilities"`
	Beta                 bool         `json:"beta"`
	Origin               *string      `json:"origin"`
	Status               *string      `json:"status"`
	VoiceURL             *string      `json:"voice_url"`
	VoiceMethod          *string      `json:"voice_method"`
	VoiceFallbackURL     *string      `json:"voice_fallback_url"`
	SmsURL               *string      `json:"sms_url"`
	SmsMethod            *string      `json:"sms_method"`
	SmsFallbackURL       *string      `json:"sms_fallback_url"`
	StatusCallback       *string      `json:"status_callback"`
	StatusCallbackMethod *string      `json:"status_callback_method"`
	DateCreated          string       `json:"date_created"`
	DateUpdated          string       `json:"date_updated"`
	URI                  string       `json:"uri"`
}

// SubprojectPhoneNumbersResponse is returned by ListSubprojectNumbers
type SubprojectPhoneNumbersResponse struct {
	LamlPage
	IncomingPhoneNumbers []SubprojectPhoneNumber `json:"incoming_phone_numbers" validate:"required,dive"`
}

// Carrier is the carrier section of a lookup, present when requested
type Carrier struct {
	LRN          *string `json:"lrn"`
	SPID         *string `json:"spid"`
	OCN          *string `json:"ocn"`
	LATA         *string `json:"lata"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	Jurisdiction *string `json:"jurisdiction"`
	LEC          *string `json:"lec"`
	LineType     *string `json:"linetype"`
}

// CallerName is the CNAM section of a lookup, present when requested
type CallerName struct {
	CallerID *string `json:"caller_id"`
}

// LookupResult is returned by LookupNumber
type LookupResult struct {
	E164                         string      `json:"e164" validate:"required"`
	CountryCode                  string      `json:"country_code"`
	CountryCodeNumber            int         `json:"country_code_number"`
	NationalNumber               string      `json:"national_number"`
	NationalNumberFormatted      string      `json:"national_number_formatted"`
	InternationalNumberFormatted string      `json:"international_number_formatted"`
	PossibleNumber               bool        `json:"possible_number"`
	ValidNumber                  bool        `json:"valid_number"`
	Location                     *string     `json:"location"`
	NumberType                   *string     `json:"number_type"`
	Timezones                    []string    `json:"timezones"`
	Carrier                      *Carrier    `json:"carrier"`
	CallerName                   *CallerName `json:"cnam"`
}
