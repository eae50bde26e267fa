package signalwire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAvailableNumberParams(t *testing.T) {
	params := NewAvailableNumberParams().
		AreaCode("206").
		SmsEnabled(true).
		Contains("555").
		VoiceEnabled(false).
		AreaCode("425").
		Build()

	assert.Equal(t, Params{
		{Name: "AreaCode", Value: "206"},
		{Name: "SmsEnabled", Value: "true"},
		{Name: "Contains", Value: "555"},
		{Name: "VoiceEnabled", Value: "false"},
		{Name: "AreaCode", Value: "425"},
	}, params)
}

func TestAvailableNumberParamsAllFields(t *testing.T) {
	params := NewAvailableNumberParams().
		Beta(false).
		ExcludeAllAddressRequired(true).
		ExcludeForeignAddressRequired(true).
		ExcludeLocalAddressRequired(false).
		FaxEnabled(true).
		InRegion("WA").
		InPostalCode("98101").
		InLata("674").
		InRateCenter("SEATTLE").
		NearNumber("+12065550100").
		NearLatLong("47.6,-122.3").
		Distance(25).
		MmsEnabled(true).
		Build()

	names := make([]string, 0, len(params))
	for _, p := range params {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{
		"Beta", "ExcludeAllAddressRequired", "ExcludeForeignAddressRequired",
		"ExcludeLocalAddressRequired", "FaxEnabled", "InRegion", "InPostalCode",
		"InLata", "InRateCenter", "NearNumber", "NearLatLong", "Distance", "MmsEnabled",
	}, names)

	distance, ok := params.Get("Distance")
	assert.True(t, ok)
	assert.Equal(t, "25", distance)
}

func TestBuildersDoNotShareState(t *testing.T) {
	base := NewOwnedNumberParams().FilterName("support")
	a := base.FilterNumber("+1555").Build()
	b := base.PageSize(10).Build()

	assert.Equal(t, Params{{Name: "filter_name", Value: "support"}, {Name: "filter_number", Value: "+1555"}}, a)
	assert.Equal(t, Params{{Name: "filter_name", Value: "support"}, {Name: "page_size", Value: "10"}}, b)
	assert.Len(t, base.Build(), 1)

	a[0].Value = "changed"
	assert.Equal(t, "support", base.Build()[0].Value)
}

func TestEmptyBuild(t *testing.T) {
	assert.Empty(t, NewAvailableNumberParams().Build())
	assert.Empty(t, NewOwnedNumberParams().Build())
	assert.Empty(t, NewLookupParams().Build())
	assert.Equal(t, "", Params(nil).Encode())
}

func TestLookupParamsKeepsBothTypes(t *testing.T) {
	params := NewLookupParams().Carrier().CallerName().Carrier().Build()

	assert.Equal(t, Params{
		{Name: "Type", Value: "carrier"},
		{Name: "Type", Value: "caller-name"},
		{Name: "Type", Value: "carrier"},
	}, params)
	assert.Equal(t, "Type=carrier&Type=caller-name&Type=carrier", params.Encode())
}

func TestSubprojectBuilders(t *testing.T) {
	assert.Equal(t, Params{
		{Name: "FriendlyName", Value: "Team A"},
		{Name: "Status", Value: "active"},
	}, NewSubprojectParams().FriendlyName("Team A").Status("active").Build())

	assert.Equal(t, Params{
		{Name: "Status", Value: "suspended"},
		{Name: "FriendlyName", Value: "Team B"},
	}, NewSubprojectUpdateParams().Status("suspended").FriendlyName("Team B").Build())

	assert.Equal(t, Params{
		{Name: "PhoneNumber", Value: "+1555"},
		{Name: "FriendlyName", Value: "main"},
		{Name: "Beta", Value: "true"},
		{Name: "Origin", Value: "twilio"},
	}, NewSubprojectNumberParams().PhoneNumber("+1555").FriendlyName("main").Beta(true).Origin("twilio").Build())
}

func TestParamsEncode(t *testing.T) {
	params := Params{
		{Name: "To", Value: "+15559876543"},
		{Name: "Body", Value: "hello world & more"},
		{Name: "AreaCode", Value: "206"},
	}

	assert.Equal(t, "To=%2B15559876543&Body=hello+world+%26+more&AreaCode=206", params.Encode())
}
