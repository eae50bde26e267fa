package signalwire

import (
	"net/url"
	"strconv"
	"strings"
)

// Param is a single name/value pair sent as a query parameter or form field.
type Param struct {
	Name  string
	Value string
}

// Params is an ordered list of parameters. Order is kept when encoding and
// duplicate names are sent as-is.
type Params []Param

// Encode renders the parameters as "name=value&name=value" in insertion order.
func (p Params) Encode() string {
	if len(p) == 0 {
		return ""
	}
	var b strings.Builder
	for i, param := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(param.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(param.Value))
	}
	return b.String()
}

// Get returns the value of the first parameter with the given name.
func (p Params) Get(name string) (string, bool) {
	for _, param := range p {
		if param.Name == name {
			return param.Value, true
		}
	}
	return "", false
}

// paramList is embedded by every builder below.
type paramList struct {
	params Params
}

func (l paramList) with(name, value string) paramList {
	next := make(Params, len(l.params), len(l.params)+1)
	copy(next, l.params)
	return paramList{params: append(next, Param{Name: name, Value: value})}
}

func (l paramList) build() Params {
	out := make(Params, len(l.params))
	copy(out, l.params)
	return out
}

// AvailableNumberParams builds the query for SearchAvailableNumbers.
type AvailableNumberParams struct{ list paramList }

// NewAvailableNumberParams starts an empty available-number query.
func NewAvailableNumberParams() AvailableNumberParams { return AvailableNumberParams{} }

func (p AvailableNumberParams) add(name, value string) AvailableNumberParams {
	return AvailableNumberParams{list: p.list.with(name, value)}
}

func (p AvailableNumberParams) AreaCode(code string) AvailableNumberParams {
	return p.add("AreaCode", code)
}

func (p AvailableNumberParams) Beta(beta bool) AvailableNumberParams {
	return p.add("Beta", strconv.FormatBool(beta))
}

func (p AvailableNumberParams) Contains(value string) AvailableNumberParams {
	return p.add("Contains", value)
}

func (p AvailableNumberParams) ExcludeAllAddressRequired(v bool) AvailableNumberParams {
	return p.add("ExcludeAllAddressRequired", strconv.FormatBool(v))
}

func (p AvailableNumberParams) ExcludeForeignAddressRequired(v bool) AvailableNumberParams {
	return p.add("ExcludeForeignAddressRequired", strconv.FormatBool(v))
}

func (p AvailableNumberParams) ExcludeLocalAddressRequired(v bool) AvailableNumberParams {
	return p.add("ExcludeLocalAddressRequired", strconv.FormatBool(v))
}

func (p AvailableNumberParams) FaxEnabled(v bool) AvailableNumberParams {
	return p.add("FaxEnabled", strconv.FormatBool(v))
}

func (p AvailableNumberParams) InRegion(region string) AvailableNumberParams {
	return p.add("InRegion", region)
}

func (p AvailableNumberParams) InPostalCode(code string) AvailableNumberParams {
	return p.add("InPostalCode", code)
}

func (p AvailableNumberParams) InLata(lata string) AvailableNumberParams {
	return p.add("InLata", lata)
}

func (p AvailableNumberParams) InRateCenter(rateCenter string) AvailableNumberParams {
	return p.add("InRateCenter", rateCenter)
}

func (p AvailableNumberParams) NearNumber(number string) AvailableNumberParams {
	return p.add("NearNumber", number)
}

// NearLatLong takes "latitude,longitude".
func (p AvailableNumberParams) NearLatLong(latLong string) AvailableNumberParams {
	return p.add("NearLatLong", latLong)
}

// Distance is in miles and only applies together with NearNumber or NearLatLong.
func (p AvailableNumberParams) Distance(miles int) AvailableNumberParams {
	return p.add("Distance", strconv.Itoa(miles))
}

func (p AvailableNumberParams) MmsEnabled(v bool) AvailableNumberParams {
	return p.add("MmsEnabled", strconv.FormatBool(v))
}

func (p AvailableNumberParams) SmsEnabled(v bool) AvailableNumberParams {
	return p.add("SmsEnabled", strconv.FormatBool(v))
}

func (p AvailableNumberParams) VoiceEnabled(v bool) AvailableNumberParams {
	return p.add("VoiceEnabled", strconv.FormatBool(v))
}

// Build returns the accumulated parameters.
func (p AvailableNumberParams) Build() Params { return p.list.build() }

// OwnedNumberParams builds the query for ListOwnedNumbers.
type OwnedNumberParams struct{ list paramList }

// NewOwnedNumberParams starts an empty owned-number filter.
func NewOwnedNumberParams() OwnedNumberParams { return OwnedNumberParams{} }

func (p OwnedNumberParams) add(name, value string) OwnedNumberParams {
	return OwnedNumberParams{list: p.list.with(name, value)}
}

func (p OwnedNumberParams) FilterName(name string) OwnedNumberParams {
	return p.add("filter_name", name)
}

func (p OwnedNumberParams) FilterNumber(number string) OwnedNumberParams {
	return p.add("filter_number", number)
}

func (p OwnedNumberParams) PageSize(size int) OwnedNumberParams {
	return p.add("page_size", strconv.Itoa(size))
}

// PageToken is taken from the raw links returned by a previous page.
func (p OwnedNumberParams) PageToken(token string) OwnedNumberParams {
	return p.add("page_token", token)
}

// Build returns the accumulated parameters.
func (p OwnedNumberParams) Build() Params { return p.list.build() }

// SubprojectParams filters ListSubprojects.
type SubprojectParams struct{ list paramList }

// NewSubprojectParams starts an empty subproject filter.
func NewSubprojectParams() SubprojectParams { return SubprojectParams{} }

func (p SubprojectParams) FriendlyName(name string) SubprojectParams {
	return SubprojectParams{list: p.list.with("FriendlyName", name)}
}

func (p SubprojectParams) Status(status string) SubprojectParams {
	return SubprojectParams{list: p.list.with("Status", status)}
}

// Build returns the accumulated parameters.
func (p SubprojectParams) Build() Params { return p.list.build() }

// SubprojectUpdateParams is the form body sent by UpdateSubproject.
type SubprojectUpdateParams struct{ list paramList }

// NewSubprojectUpdateParams starts an empty update.
func NewSubprojectUpdateParams() SubprojectUpdateParams { return SubprojectUpdateParams{} }

func (p SubprojectUpdateParams) FriendlyName(name string) SubprojectUpdateParams {
	return SubprojectUpdateParams{list: p.list.with("FriendlyName", name)}
}

// Status is one of "active", "suspended" or "closed".
func (p SubprojectUpdateParams) Status(status string) SubprojectUpdateParams {
	return SubprojectUpdateParams{list: p.list.with("Status", status)}
}

// Build returns the accumulated parameters.
func (p SubprojectUpdateParams) Build() Params { return p.list.build() }

// SubprojectNumberParams filters ListSubprojectNumbers.
type SubprojectNumberParams struct{ list paramList }

// NewSubprojectNumberParams starts an empty subproject number filter.
func NewSubprojectNumberParams() SubprojectNumberParams { return SubprojectNumberParams{} }

func (p SubprojectNumberParams) add(name, value string) SubprojectNumberParams {
	return SubprojectNumberParams{list: p.list.with(name, value)}
}

func (p SubprojectNumberParams) PhoneNumber(number string) SubprojectNumberParams {
	return p.add("PhoneNumber", number)
}

func (p SubprojectNumberParams) FriendlyName(name string) SubprojectNumberParams {
	return p.add("FriendlyName", name)
}

func (p SubprojectNumberParams) Beta(beta bool) SubprojectNumberParams {
	return p.add("Beta", strconv.FormatBool(beta))
}

func (p SubprojectNumberParams) Origin(origin string) SubprojectNumberParams {
	return p.add("Origin", origin)
}

// Build returns the accumulated parameters.
func (p SubprojectNumberParams) Build() Params { return p.list.build() }

// LookupParams selects the optional data included by LookupNumber.
// Requesting both carrier and caller name sends two Type pairs.
type LookupParams struct{ list paramList }

// NewLookupParams starts a plain number lookup.
func NewLookupParams() LookupParams { return LookupParams{} }

// Carrier adds carrier information to the lookup.
func (p LookupParams) Carrier() LookupParams {
	return LookupParams{list: p.list.with("Type", "carrier")}
}

// CallerName adds CNAM information to the lookup.
func (p LookupParams) CallerName() LookupParams {
	return LookupParams{list: p.list.with("Type", "caller-name")}
}

// Build returns the accumulated parameters.
func (p LookupParams) Build() Params { return p.list.build() }
