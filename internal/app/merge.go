package app

import "github.com/tienhung-ho/my-hotel-merger/internal/domain"

// MergeGroup reduces one group to its canonical hotel. Each field class has
// its own policy:
//
//   - descriptive scalars (name, description, address, city, country):
//     longest non-missing value wins, earliest record wins a length tie
//   - numerics (lat, lng): first non-missing value in ingestion order,
//     never averaged, coordinates from different suppliers don't mix
//   - string sets (amenities): ordered union, dedup by canonical token,
//     first-seen casing kept
//   - images: union keyed by exact URL, first occurrence wins
//   - booking conditions: order-preserving union of distinct clauses
//
// Scalars are competing claims about one fact, so the most complete single
// claim is kept. Collections are complementary partial knowledge, so they
// union. A field no member provides resolves to missing, which is a normal
// result.
func MergeGroup(g domain.Group) domain.Hotel {
	h := domain.Hotel{
		ID:            g.Key.HotelID,
		DestinationID: g.Key.DestinationID,
	}

	h.Name = longestString(g.Records, func(r domain.HotelRecord) *string { return r.Name })
	h.Description = longestString(g.Records, func(r domain.HotelRecord) *string { return r.Description })
	h.Location.Address = longestString(g.Records, func(r domain.HotelRecord) *string { return r.Location.Address })
	h.Location.City = longestString(g.Records, func(r domain.HotelRecord) *string { return r.Location.City })
	h.Location.Country = longestString(g.Records, func(r domain.HotelRecord) *string { return r.Location.Country })

	h.Location.Lat = firstFloat(g.Records, func(r domain.HotelRecord) *float64 { return r.Location.Lat })
	h.Location.Lng = firstFloat(g.Records, func(r domain.HotelRecord) *float64 { return r.Location.Lng })

	general := newStringUnion()
	room := newStringUnion()
	conditions := newStringUnion()
	rooms := newImageUnion()
	site := newImageUnion()
	amenityImgs := newImageUnion()
	for _, r := range g.Records {
		general.add(r.Amenities.General)
		room.add(r.Amenities.Room)
		conditions.add(r.BookingConditions)
		rooms.add(r.Images.Rooms)
		site.add(r.Images.Site)
		amenityImgs.add(r.Images.Amenities)
	}
	h.Amenities = domain.Amenities{General: general.out, Room: room.out}
	h.Images = domain.Images{Rooms: rooms.out, Site: site.out, Amenities: amenityImgs.out}
	h.BookingConditions = conditions.out

	return h
}

// longestString: longest non-missing value; strict greater-than keeps the
// earliest record on ties.
func longestString(records []domain.HotelRecord, field func(domain.HotelRecord) *string) *string {
	var best *string
	for i := range records {
		v := field(records[i])
		if v == nil {
			continue
		}
		if best == nil || len(*v) > len(*best) {
			s := *v
			best = &s
		}
	}
	return best
}

// firstFloat: first non-missing value in ingestion order.
func firstFloat(records []domain.HotelRecord, field func(domain.HotelRecord) *float64) *float64 {
	for i := range records {
		if v := field(records[i]); v != nil {
			f := *v
			return &f
		}
	}
	return nil
}

// stringUnion accumulates an ordered set keyed by canonical token.
type stringUnion struct {
	seen map[string]struct{}
	out  []string
}

func newStringUnion() *stringUnion {
	return &stringUnion{seen: make(map[string]struct{})}
}

func (u *stringUnion) add(values []string) {
	for _, s := range values {
		key := canonicalToken(s)
		if key == "" {
			continue
		}
		if _, dup := u.seen[key]; dup {
			continue
		}
		u.seen[key] = struct{}{}
		u.out = append(u.out, s)
	}
}

// imageUnion accumulates an ordered set keyed by exact URL.
type imageUnion struct {
	seen map[string]struct{}
	out  []domain.Image
}

func newImageUnion() *imageUnion {
	return &imageUnion{seen: make(map[string]struct{})}
}

func (u *imageUnion) add(values []domain.Image) {
	for _, img := range values {
		if img.Link == "" {
			continue
		}
		if _, dup := u.seen[img.Link]; dup {
			continue
		}
		u.seen[img.Link] = struct{}{}
		u.out = append(u.out, img)
	}
}
