package domain

// RawRecord is one supplier's decoded (but not yet normalized) view of one
// hotel. Data holds the payload object exactly as the supplier emitted it.
type RawRecord struct {
	Supplier string
	Data     map[string]any
}

// HotelRecord is a RawRecord reshaped onto the canonical schema. Scalar
// fields are pointers: nil means the supplier did not provide the field,
// which is distinct from an empty string or zero coordinate.
type HotelRecord struct {
	Supplier          string
	HotelID           string
	DestinationID     string
	Name              *string
	Description       *string
	Location          Location
	Amenities         Amenities
	Images            Images
	BookingConditions []string
}

// Identity returns the key that groups records describing the same hotel.
func (r HotelRecord) Identity() Key {
	return Key{DestinationID: r.DestinationID, HotelID: r.HotelID}
}

type Location struct {
	Lat     *float64
	Lng     *float64
	Address *string
	City    *string
	Country *string
}

type Amenities struct {
	General []string
	Room    []string
}

type Images struct {
	Rooms     []Image
	Site      []Image
	Amenities []Image
}

type Image struct {
	Link        string
	Description string
}

// Key identifies one real-world hotel across all suppliers.
type Key struct {
	DestinationID string
	HotelID       string
}

// Less orders keys by (destination_id, hotel_id) ascending.
func (k Key) Less(o Key) bool {
	if k.DestinationID != o.DestinationID {
		return k.DestinationID < o.DestinationID
	}
	return k.HotelID < o.HotelID
}

// Group holds every HotelRecord sharing one identity key. Records keep their
// original ingestion order; a group never has zero members.
type Group struct {
	Key     Key
	Records []HotelRecord
}

// Hotel is the single merged record per identity key. Pointer fields stay nil
// when no supplier provided a value; sinks decide how to render that.
type Hotel struct {
	ID                string
	DestinationID     string
	Name              *string
	Description       *string
	Location          Location
	Amenities         Amenities
	Images            Images
	BookingConditions []string
}
