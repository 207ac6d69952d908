package app

import (
	"sort"

	"github.com/tienhung-ho/my-hotel-merger/internal/domain"
)

// Assemble orders merged hotels by (destination_id, hotel_id) ascending so
// output is reproducible run to run. Sorting is lexical, identifiers are
// opaque strings.
func Assemble(hotels []domain.Hotel) []domain.Hotel {
	sort.SliceStable(hotels, func(i, j int) bool {
		a := domain.Key{DestinationID: hotels[i].DestinationID, HotelID: hotels[i].ID}
		b := domain.Key{DestinationID: hotels[j].DestinationID, HotelID: hotels[j].ID}
		return a.Less(b)
	})
	return hotels
}
