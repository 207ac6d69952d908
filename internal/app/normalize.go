package app

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/tienhung-ho/my-hotel-merger/internal/domain"
)

// recordMapper reshapes one supplier payload object onto the canonical
// schema. Mappers never fail: a field that cannot be read stays missing.
type recordMapper func(map[string]any) domain.HotelRecord

// Normalizer converts raw supplier records into HotelRecords using a
// per-supplier mapper registry. Suppliers without a dedicated mapper fall
// back to the alias-driven generic one.
type Normalizer struct {
	mappers map[string]recordMapper
}

func NewNormalizer() *Normalizer {
	return &Normalizer{mappers: map[string]recordMapper{
		"acme":       mapAcme,
		"patagonia":  mapPatagonia,
		"paperflies": mapPaperflies,
	}}
}

// Register installs a mapper for a supplier name, replacing any default.
// Adding a supplier with its own schema is a one-line change here.
func (n *Normalizer) Register(supplier string, m recordMapper) {
	n.mappers[strings.ToLower(supplier)] = m
}

// Normalize reshapes raw records in input order. Records lacking either
// identity field cannot be grouped and are dropped with a warning; skipped
// reports how many were lost that way.
func (n *Normalizer) Normalize(raws []domain.RawRecord) (out []domain.HotelRecord, skipped int) {
	out = make([]domain.HotelRecord, 0, len(raws))
	for _, r := range raws {
		mapFn := n.mappers[strings.ToLower(r.Supplier)]
		if mapFn == nil {
			mapFn = mapGeneric
		}
		rec := mapFn(r.Data)
		rec.Supplier = r.Supplier
		if rec.HotelID == "" || rec.DestinationID == "" {
			skipped++
			log.Warn().
				Str("supplier", r.Supplier).
				Msg("record has no identity key, skipped")
			continue
		}
		out = append(out, rec)
	}
	return out, skipped
}

/********** per-supplier mappers **********/

func mapAcme(p map[string]any) domain.HotelRecord {
	return domain.HotelRecord{
		HotelID:       idString(p, "Id"),
		DestinationID: idString(p, "DestinationId"),
		Name:          ptrStr(strings.TrimSpace(lookupStr(p, "Name"))),
		Description:   ptrStr(cleanText(lookupStr(p, "Description"))),
		Location: domain.Location{
			Lat:     getFloatFlexible(p, "Latitude"),
			Lng:     getFloatFlexible(p, "Longitude"),
			Address: ptrStr(combineAddress(lookupStr(p, "Address"), lookupStr(p, "PostalCode"))),
			City:    ptrStr(strings.TrimSpace(lookupStr(p, "City"))),
			Country: ptrStr(standardizeCountry(lookupStr(p, "Country"))),
		},
		Amenities: domain.Amenities{
			General: dedupStrings(stringList(p, "Facilities")),
		},
	}
}

func mapPatagonia(p map[string]any) domain.HotelRecord {
	return domain.HotelRecord{
		HotelID:       idString(p, "id"),
		DestinationID: idString(p, "destination"),
		Name:          ptrStr(strings.TrimSpace(lookupStr(p, "name"))),
		Description:   ptrStr(cleanText(lookupStr(p, "info"))),
		Location: domain.Location{
			Lat:     getFloatFlexible(p, "lat"),
			Lng:     getFloatFlexible(p, "lng"),
			Address: ptrStr(strings.TrimSpace(lookupStr(p, "address"))),
			City:    ptrStr(strings.TrimSpace(lookupStr(p, "city"))),
			Country: ptrStr(standardizeCountry(lookupStr(p, "country"))),
		},
		Amenities: domain.Amenities{
			General: dedupStrings(stringList(p, "amenities")),
		},
		Images: domain.Images{
			Rooms:     imageList(p, "images.rooms"),
			Site:      imageList(p, "images.site"),
			Amenities: imageList(p, "images.amenities"),
		},
		BookingConditions: cleanConditions(stringList(p, "booking_conditions")),
	}
}

func mapPaperflies(p map[string]any) domain.HotelRecord {
	return domain.HotelRecord{
		HotelID:       idString(p, "hotel_id"),
		DestinationID: idString(p, "destination_id"),
		Name:          ptrStr(strings.TrimSpace(lookupStr(p, "hotel_name"))),
		Description:   ptrStr(cleanText(lookupStr(p, "details"))),
		Location: domain.Location{
			// paperflies publishes no coordinates or city
			Address: ptrStr(strings.TrimSpace(lookupStr(p, "location.address"))),
			Country: ptrStr(standardizeCountry(lookupStr(p, "location.country"))),
		},
		Amenities: domain.Amenities{
			General: dedupStrings(stringList(p, "amenities.general")),
			Room:    dedupStrings(stringList(p, "amenities.room")),
		},
		Images: domain.Images{
			Rooms:     imageList(p, "images.rooms"),
			Site:      imageList(p, "images.site"),
			Amenities: imageList(p, "images.amenities"),
		},
		BookingConditions: cleanConditions(stringList(p, "booking_conditions")),
	}
}

// mapGeneric: alias-registry fallback for unknown suppliers.
func mapGeneric(p map[string]any) domain.HotelRecord {
	return domain.HotelRecord{
		HotelID:       idString(p, hotelAliases["hotel_id"]...),
		DestinationID: idString(p, hotelAliases["destination_id"]...),
		Name:          ptrStr(deref(firstNonEmptyAlias(p, hotelAliases, "name"))),
		Description:   ptrStr(cleanText(deref(firstNonEmptyAlias(p, hotelAliases, "description")))),
		Location: domain.Location{
			Lat: getFloatFlexible(p, hotelAliases["lat"]...),
			Lng: getFloatFlexible(p, hotelAliases["lng"]...),
			Address: ptrStr(combineAddress(
				deref(firstNonEmptyAlias(p, hotelAliases, "address")),
				deref(firstNonEmptyAlias(p, hotelAliases, "postal_code")),
			)),
			City:    ptrStr(deref(firstNonEmptyAlias(p, hotelAliases, "city"))),
			Country: ptrStr(standardizeCountry(deref(firstNonEmptyAlias(p, hotelAliases, "country")))),
		},
		Amenities: domain.Amenities{
			General: dedupStrings(stringList(p, "amenities.general", "amenities", "facilities", "Facilities")),
			Room:    dedupStrings(stringList(p, "amenities.room")),
		},
		Images: domain.Images{
			Rooms:     imageList(p, "images.rooms"),
			Site:      imageList(p, "images.site"),
			Amenities: imageList(p, "images.amenities"),
		},
		BookingConditions: cleanConditions(stringList(p, "booking_conditions")),
	}
}
