package app_test

import (
	"testing"

	"github.com/tienhung-ho/my-hotel-merger/internal/app"
	"github.com/tienhung-ho/my-hotel-merger/internal/domain"
)

func TestParseIDFilterWildcard(t *testing.T) {
	for _, raw := range []string{"none", "NONE", "None", "", "  ", " , "} {
		f := app.ParseIDFilter(raw)
		if !f.Wildcard() || !f.Matches("anything") {
			t.Fatalf("%q should match anything", raw)
		}
	}
}

func TestParseIDFilterList(t *testing.T) {
	f := app.ParseIDFilter(" iJhz , f8c9 ")
	if f.Wildcard() {
		t.Fatal("explicit list must not be a wildcard")
	}
	if !f.Matches("iJhz") || !f.Matches("f8c9") {
		t.Fatal("listed ids should match")
	}
	if f.Matches("SjyX") {
		t.Fatal("unlisted id should not match")
	}
}

func TestFilterGroupsANDSemantics(t *testing.T) {
	groups := []domain.Group{
		{Key: domain.Key{DestinationID: "D1", HotelID: "H1"}},
		{Key: domain.Key{DestinationID: "D1", HotelID: "H2"}},
		{Key: domain.Key{DestinationID: "D2", HotelID: "H1"}},
	}

	// hotel filter excludes H1 even with a wildcard destination filter
	got := app.FilterGroups(groups, app.ParseIDFilter("H2"), app.ParseIDFilter("none"))
	if len(got) != 1 || got[0].Key.HotelID != "H2" {
		t.Fatalf("both filters must pass independently: %+v", got)
	}

	// both explicit
	got = app.FilterGroups(groups, app.ParseIDFilter("H1"), app.ParseIDFilter("D2"))
	if len(got) != 1 || got[0].Key.DestinationID != "D2" {
		t.Fatalf("expected only (D2,H1): %+v", got)
	}

	// nothing matches: empty result, not an error
	got = app.FilterGroups(groups, app.ParseIDFilter("H9"), app.ParseIDFilter("none"))
	if len(got) != 0 {
		t.Fatalf("expected empty result: %+v", got)
	}

	// double wildcard passes everything through
	got = app.FilterGroups(groups, app.ParseIDFilter("none"), app.ParseIDFilter(""))
	if len(got) != len(groups) {
		t.Fatalf("wildcards should keep all groups: %+v", got)
	}
}
