package output

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/tienhung-ho/my-hotel-merger/internal/domain"
)

var csvHeader = []string{
	"id", "destination_id", "name",
	"lat", "lng", "address", "city", "country",
	"description",
	"amenities_general", "amenities_room",
	"images_rooms", "images_site", "images_amenities",
	"booking_conditions",
}

// CSVSink writes merged hotels as a flat table, one row per hotel.
// List columns join their values with "; "; image columns carry links only.
type CSVSink struct{ w io.Writer }

func NewCSVSink(w io.Writer) *CSVSink { return &CSVSink{w: w} }

func (s *CSVSink) Write(hotels []domain.Hotel) error {
	cw := csv.NewWriter(s.w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, h := range hotels {
		row := []string{
			h.ID,
			h.DestinationID,
			str(h.Name),
			coord(h.Location.Lat),
			coord(h.Location.Lng),
			str(h.Location.Address),
			str(h.Location.City),
			str(h.Location.Country),
			str(h.Description),
			strings.Join(h.Amenities.General, "; "),
			strings.Join(h.Amenities.Room, "; "),
			links(h.Images.Rooms),
			links(h.Images.Site),
			links(h.Images.Amenities),
			strings.Join(h.BookingConditions, "; "),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func coord(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}

func links(imgs []domain.Image) string {
	out := make([]string, 0, len(imgs))
	for _, img := range imgs {
		out = append(out, img.Link)
	}
	return strings.Join(out, "; ")
}
