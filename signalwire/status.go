package signalwire

import "strings"

// MessageStatus represents the delivery status of a message
type MessageStatus int

const (
	// MessageStatusUnknown represents a status string this package does not recognise
	MessageStatusUnknown MessageStatus = iota
	// MessageStatusQueued indicates the message is waiting to be sent
	MessageStatusQueued
	// MessageStatusSending indicates the message is being handed to the carrier
	MessageStatusSending
	// MessageStatusSent indicates the carrier accepted the message
	MessageStatusSent
	// MessageStatusDelivered indicates the handset confirmed delivery
	MessageStatusDelivered
	// MessageStatusFailed indicates the message could not be sent
	MessageStatusFailed
	// MessageStatusUndelivered indicates the carrier reported non-delivery
	MessageStatusUndelivered
)

// ParseMessageStatus maps a status string returned by the API to a
// MessageStatus. Matching ignores case; anything unrecognised is
// MessageStatusUnknown.
func ParseMessageStatus(s string) MessageStatus {
	switch strings.ToLower(s) {
	case "queued":
		return MessageStatusQueued
	case "sending":
		return MessageStatusSending
	case "sent":
		return MessageStatusSent
	case "delivered":
		return MessageStatusDelivered
	case "failed":
		return MessageStatusFailed
	case "undelivered":
		return MessageStatusUndelivered
	default:
		return MessageStatusUnknown
	}
}

// String returns the string representation of a MessageStatus
func (s MessageStatus) String() string {
	switch s {
	case MessageStatusQueued:
		return "queued"
	case MessageStatusSending:
		return "sending"
	case MessageStatusSent:
		return "sent"
	case MessageStatusDelivered:
		return "delivered"
	case MessageStatusFailed:
		return "failed"
	case MessageStatusUndelivered:
		return "undelivered"
	default:
		return "unknown"
	}
}

// IsFinal reports whether the status will not change any more
func (s MessageStatus) IsFinal() bool {
	switch s {
	case MessageStatusDelivered, MessageStatusFailed, MessageStatusUndelivered:
		return true
	default:
		return false
	}
}
