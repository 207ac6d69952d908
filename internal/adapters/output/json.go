package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/tienhung-ho/my-hotel-merger/internal/domain"
)

/********** document shape **********/

// hotelDoc is the stable rendering of a merged hotel. Field order mirrors
// the published document shape, so it must not be reordered.
type hotelDoc struct {
	ID                string       `json:"id"`
	DestinationID     string       `json:"destination_id"`
	Name              string       `json:"name"`
	Location          locationDoc  `json:"location"`
	Description       string       `json:"description"`
	Amenities         amenitiesDoc `json:"amenities"`
	Images            imagesDoc    `json:"images"`
	BookingConditions []string     `json:"booking_conditions"`
}

type locationDoc struct {
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
	Address string   `json:"address"`
	City    string   `json:"city"`
	Country string   `json:"country"`
}

type amenitiesDoc struct {
	General []string `json:"general"`
	Room    []string `json:"room"`
}

type imagesDoc struct {
	Rooms     []imageDoc `json:"rooms"`
	Site      []imageDoc `json:"site"`
	Amenities []imageDoc `json:"amenities"`
}

type imageDoc struct {
	Link        string `json:"link"`
	Description string `json:"description"`
}

func docs(hotels []domain.Hotel) []hotelDoc {
	out := make([]hotelDoc, 0, len(hotels))
	for _, h := range hotels {
		out = append(out, hotelDoc{
			ID:            h.ID,
			DestinationID: h.DestinationID,
			Name:          str(h.Name),
			Location: locationDoc{
				Lat:     h.Location.Lat,
				Lng:     h.Location.Lng,
				Address: str(h.Location.Address),
				City:    str(h.Location.City),
				Country: str(h.Location.Country),
			},
			Description: str(h.Description),
			Amenities: amenitiesDoc{
				General: orEmpty(h.Amenities.General),
				Room:    orEmpty(h.Amenities.Room),
			},
			Images: imagesDoc{
				Rooms:     imageDocs(h.Images.Rooms),
				Site:      imageDocs(h.Images.Site),
				Amenities: imageDocs(h.Images.Amenities),
			},
			BookingConditions: orEmpty(h.BookingConditions),
		})
	}
	return out
}

func imageDocs(imgs []domain.Image) []imageDoc {
	out := make([]imageDoc, 0, len(imgs))
	for _, img := range imgs {
		out = append(out, imageDoc{Link: img.Link, Description: img.Description})
	}
	return out
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

/********** rendering **********/

// JSON renders hotels as a two-space indented array. Missing scalars come
// out as "" and missing coordinates as null; collections are never null.
func JSON(hotels []domain.Hotel) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(docs(hotels)); err != nil {
		return nil, fmt.Errorf("encode hotels: %w", err)
	}
	return buf.Bytes(), nil
}

// JSONSink writes merged hotels as one JSON document.
type JSONSink struct{ w io.Writer }

func NewJSONSink(w io.Writer) *JSONSink { return &JSONSink{w: w} }

func (s *JSONSink) Write(hotels []domain.Hotel) error {
	body, err := JSON(hotels)
	if err != nil {
		return err
	}
	_, err = s.w.Write(body)
	return err
}
