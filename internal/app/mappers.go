package app

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/tienhung-ho/my-hotel-merger/internal/domain"
)

/********** alias registries (single source of truth) **********/

// hotelAliases drives the generic mapper used for suppliers that ship no
// dedicated one. Paths support dot notation into nested objects.
var hotelAliases = map[string][]string{
	"hotel_id":       {"hotel_id", "id", "Id", "hotelId"},
	"destination_id": {"destination_id", "destination", "DestinationId", "destinationId"},
	"name":           {"name", "hotel_name", "Name", "hotelName", "title"},
	"description":    {"description", "details", "info", "Description", "summary"},
	"lat":            {"lat", "latitude", "Latitude", "location.lat", "location.latitude"},
	"lng":            {"lng", "lon", "longitude", "Longitude", "location.lng", "location.lon"},
	"address":        {"address", "location.address", "Address", "full_address", "street_address"},
	"postal_code":    {"postal_code", "PostalCode", "postcode", "zip", "location.postal_code"},
	"city":           {"city", "City", "location.city", "town"},
	"country":        {"country", "Country", "location.country", "country_code"},
}

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// lookupStr returns string at path or "".
func lookupStr(m map[string]any, path string) string {
	if v := lookupAny(m, path); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// firstNonEmptyAlias: first non-empty string for a named alias set.
func firstNonEmptyAlias(m map[string]any, aliases map[string][]string, key string) *string {
	for _, p := range aliases[key] {
		if s := strings.TrimSpace(lookupStr(m, p)); s != "" {
			return &s
		}
	}
	return nil
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ptrStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// idString: identifier at any of the paths, accepting string or number form.
func idString(m map[string]any, paths ...string) string {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		case int:
			return strconv.Itoa(v)
		case int64:
			return strconv.FormatInt(v, 10)
		}
	}
	return ""
}

// getFloatFlexible: number from several paths (float64/int/string like "8,0").
func getFloatFlexible(m map[string]any, paths ...string) *float64 {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case float64:
			f := v
			return &f
		case int:
			f := float64(v)
			return &f
		case string:
			s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
			if s == "" {
				continue
			}
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return &f
			}
		}
	}
	return nil
}

// stringList: first list of strings found at the paths, entries trimmed and
// empties dropped.
func stringList(m map[string]any, paths ...string) []string {
	for _, k := range paths {
		raw, ok := lookupAny(m, k).([]any)
		if !ok {
			continue
		}
		out := make([]string, 0, len(raw))
		for _, it := range raw {
			if s, ok := it.(string); ok {
				if t := strings.TrimSpace(s); t != "" {
					out = append(out, t)
				}
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

// imageList: structured image entries at path. Accepts link/url/src for the
// URL and description/caption for the text; entries without a URL are
// dropped, repeated URLs keep the first entry.
func imageList(m map[string]any, path string) []domain.Image {
	raw, ok := lookupAny(m, path).([]any)
	if !ok {
		return nil
	}
	seen := make(map[string]struct{}, len(raw))
	out := make([]domain.Image, 0, len(raw))
	for _, it := range raw {
		obj, ok := it.(map[string]any)
		if !ok {
			continue
		}
		link := strings.TrimSpace(firstKeyStr(obj, "link", "url", "src"))
		if link == "" {
			continue
		}
		if _, dup := seen[link]; dup {
			continue
		}
		seen[link] = struct{}{}
		desc := strings.TrimSpace(firstKeyStr(obj, "description", "caption"))
		out = append(out, domain.Image{Link: link, Description: capitalizeSentences(desc)})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func firstKeyStr(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

/********** text cleanup **********/

// countryNames maps common codes and spellings onto one display name so the
// reconciler never sees "SG" and "Singapore" as competing values.
var countryNames = map[string]string{
	"US": "United States", "USA": "United States", "UNITED STATES OF AMERICA": "United States",
	"UK": "United Kingdom", "GB": "United Kingdom", "GREAT BRITAIN": "United Kingdom",
	"CA": "Canada", "CAN": "Canada", "CANADA": "Canada",
	"AU": "Australia", "AUS": "Australia", "AUSTRALIA": "Australia",
	"SG": "Singapore", "SIN": "Singapore", "SINGAPORE": "Singapore",
	"JP": "Japan", "JPN": "Japan", "JAPAN": "Japan",
}

// standardizeCountry: expand known codes, otherwise pass the value through.
func standardizeCountry(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if full, ok := countryNames[strings.ToUpper(s)]; ok {
		return full
	}
	return s
}

// combineAddress joins street address and postal code with a comma; either
// part may be absent.
func combineAddress(address, postal string) string {
	address = strings.TrimSpace(address)
	postal = strings.TrimSpace(postal)
	if postal == "" {
		return address
	}
	if address == "" {
		return postal
	}
	return address + ", " + postal
}

// collapseSpace: trim and squeeze whitespace runs to single spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// capitalizeSentences upper-cases the first letter of each sentence and
// leaves everything else alone, so proper nouns and acronyms survive.
func capitalizeSentences(s string) string {
	rs := []rune(s)
	start := true
	for i, r := range rs {
		if unicode.IsSpace(r) {
			continue
		}
		if start {
			if unicode.IsLetter(r) && (i == 0 || unicode.IsSpace(rs[i-1])) {
				rs[i] = unicode.ToUpper(r)
			}
			start = false
		}
		if r == '.' || r == '!' || r == '?' {
			start = true
		}
	}
	return string(rs)
}

// cleanText: whitespace collapse plus sentence capitalization.
func cleanText(s string) string {
	return capitalizeSentences(collapseSpace(s))
}

/********** set normalization **********/

// canonicalToken: comparison key for set values. Lower-cases and strips
// everything but letters and digits so "Business Center", "BusinessCenter"
// and "businesscenter" collide.
func canonicalToken(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// dedupStrings: ordered dedup by canonical token, first-seen casing kept.
func dedupStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		key := canonicalToken(s)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// cleanConditions: tidy each clause, drop empties and repeats.
func cleanConditions(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, c := range in {
		if t := cleanText(c); t != "" {
			out = append(out, t)
		}
	}
	return dedupStrings(out)
}
