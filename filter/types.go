package filter

import (
	"strings"
	"time"

	"github.com/s0up4200/swire/signalwire"
)

// Source tells which listing a Number came from
type Source string

const (
	SourceOwned      Source = "owned"
	SourceAvailable  Source = "available"
	SourceSubproject Source = "subproject"
)

// Number is the flattened view of a phone number that filter expressions
// see. Fields missing from the originating record are left at their zero
// value.
type Number struct {
	Source       Source
	ID           string
	Number       string
	Name         string
	Region       string
	RateCenter   string
	Lata         string
	PostalCode   string
	IsoCountry   string
	NumberType   string
	Capabilities []string
	Beta         bool
	CreatedAt    time.Time
}

// FromOwned converts a relay REST owned number
func FromOwned(n signalwire.OwnedPhoneNumber) Number {
	out := Number{
		Source:       SourceOwned,
		ID:           n.ID,
		Number:       n.Number,
		Name:         n.Name,
		NumberType:   deref(n.NumberType),
		Capabilities: lowerAll(n.Capabilities),
	}
	if n.CreatedAt != nil {
		if t, err := time.Parse(time.RFC3339, *n.CreatedAt); err == nil {
			out.CreatedAt = t
		}
	}
	return out
}

// FromAvailable converts a purchasable number
func FromAvailable(n signalwire.AvailablePhoneNumber) Number {
	return Number{
		Source:       SourceAvailable,
		Number:       n.PhoneNumber,
		Name:         n.FriendlyName,
		Region:       n.Region,
		RateCenter:   n.RateCenter,
		Lata:         deref(n.Lata),
		PostalCode:   deref(n.PostalCode),
		IsoCountry:   n.IsoCountry,
		Capabilities: capabilityNames(n.Capabilities),
		Beta:         n.Beta,
	}
}

// FromSubproject converts a number owned by a subproject
func FromSubproject(n signalwire.SubprojectPhoneNumber) Number {
	return Number{
		Source:       SourceSubproject,
		ID:           n.SID,
		Number:       n.PhoneNumber,
		Name:         n.FriendlyName,
		Capabilities: capabilityNames(n.Capabilities),
		Beta:         n.Beta,
	}
}

// AreaCode returns the three digit NANP area code, or "" for other numbers
func (n Number) AreaCode() string {
	if strings.HasPrefix(n.Number, "+1") && len(n.Number) >= 5 {
		return n.Number[2:5]
	}
	return ""
}

func capabilityNames(c signalwire.Capabilities) []string {
	var names []string
	for _, name := range []string{"voice", "sms", "mms", "fax"} {
		if c.Has(name) {
			names = append(names, name)
		}
	}
	return names
}

func lowerAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
