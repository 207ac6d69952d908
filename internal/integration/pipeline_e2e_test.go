//go:build integration || !unit

package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpserver "github.com/tienhung-ho/my-hotel-merger/internal/adapters/http_server"
	"github.com/tienhung-ho/my-hotel-merger/internal/adapters/supplier"
	"github.com/tienhung-ho/my-hotel-merger/internal/app"
)

// ---------- supplier payloads ----------

const acmePayload = `[
  {
    "Id": "iJhz",
    "DestinationId": 5432,
    "Name": "Beach Villas Singapore",
    "Latitude": 1.264751,
    "Longitude": 103.824006,
    "Address": " 8 Sentosa Gateway, Beach Villas ",
    "City": "Singapore",
    "Country": "SG",
    "PostalCode": "098269",
    "Description": "  This 5 star hotel is located on the coastline of Singapore.",
    "Facilities": ["Pool", "BusinessCenter", "WiFi ", "DryCleaning", " Breakfast"]
  }
]`

const patagoniaPayload = `[
  {
    "id": "iJhz",
    "destination": 5432,
    "name": "Beach Villas Singapore",
    "lat": 1.264751,
    "lng": 103.824006,
    "address": "8 Sentosa Gateway, Beach Villas",
    "info": "Located at the western tip of Resort World Sentosa.",
    "amenities": ["Aircon", "Tv", "Coffee machine", "Hair dryer"],
    "images": {
      "rooms": [
        {"url": "https://d2ey9sqrvkqdfs.cloudfront.net/0qZF/2.jpg", "description": "Double room"}
      ],
      "amenities": [
        {"url": "https://d2ey9sqrvkqdfs.cloudfront.net/0qZF/0.jpg", "description": "RWS"}
      ]
    }
  }
]`

const paperfliesPayload = `[
  {
    "hotel_id": "iJhz",
    "destination_id": 5432,
    "hotel_name": "Beach Villas Singapore",
    "location": {
      "address": "8 Sentosa Gateway, Beach Villas, 098269",
      "country": "Singapore"
    },
    "details": "Surrounded by tropical gardens, these upscale villas in elegant Colonial-style buildings are part of the Resorts World Sentosa complex.",
    "amenities": {
      "general": ["outdoor pool", "business center", "childcare"],
      "room": ["tv", "coffee machine", "hair dryer", "iron"]
    },
    "images": {
      "rooms": [
        {"link": "https://d2ey9sqrvkqdfs.cloudfront.net/0qZF/2.jpg", "caption": "Double room"},
        {"link": "https://d2ey9sqrvkqdfs.cloudfront.net/0qZF/3.jpg", "caption": "Double room"}
      ],
      "site": [
        {"link": "https://d2ey9sqrvkqdfs.cloudfront.net/0qZF/1.jpg", "caption": "Front"}
      ]
    },
    "booking_conditions": [
      "All children are welcome.",
      "WiFi is available in all areas and is free of charge."
    ]
  }
]`

// ---------- helpers ----------

func supplierBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	for name, payload := range map[string]string{
		"acme":       acmePayload,
		"patagonia":  patagoniaPayload,
		"paperflies": paperfliesPayload,
	} {
		body := payload
		mux.HandleFunc("/suppliers/"+name, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))
		})
	}
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func newService(base string) *app.MergeService {
	client := supplier.New(base+"/suppliers", "", 100)
	sources := supplier.HTTPSources(client, supplier.DefaultSuppliers)
	return app.NewMergeService(sources, app.NewNormalizer(), 3)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// ---------- the tests ----------

func TestPipeline_EndToEnd_MergesSuppliers(t *testing.T) {
	ts := supplierBackend(t)
	svc := newService(ts.URL)

	all := app.ParseIDFilter("none")
	hotels, stats, err := svc.Run(context.Background(), all, all)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if stats.RawRecords != 3 || stats.Failed != 0 {
		t.Fatalf("stats: %+v", stats)
	}
	if len(hotels) != 1 {
		t.Fatalf("expected one merged hotel, got %d", len(hotels))
	}

	h := hotels[0]
	if h.ID != "iJhz" || h.DestinationID != "5432" {
		t.Fatalf("identity: %s/%s", h.ID, h.DestinationID)
	}
	if h.Name == nil || *h.Name != "Beach Villas Singapore" {
		t.Fatalf("name: %v", h.Name)
	}
	// Longest description wins, here the paperflies one.
	if h.Description == nil || *h.Description != "Surrounded by tropical gardens, these upscale villas in elegant Colonial-style buildings are part of the Resorts World Sentosa complex." {
		t.Fatalf("description: %v", h.Description)
	}
	if h.Location.Lat == nil || *h.Location.Lat != 1.264751 {
		t.Fatalf("lat: %v", h.Location.Lat)
	}
	if h.Location.Country == nil || *h.Location.Country != "Singapore" {
		t.Fatalf("country code should expand: %v", h.Location.Country)
	}
	if h.Location.Address == nil || *h.Location.Address != "8 Sentosa Gateway, Beach Villas, 098269" {
		t.Fatalf("address: %v", h.Location.Address)
	}

	general := h.Amenities.General
	for _, want := range []string{"Pool", "WiFi", "Aircon", "outdoor pool", "childcare"} {
		if !contains(general, want) {
			t.Fatalf("general amenities missing %q: %v", want, general)
		}
	}
	// "business center" collides with acme's "BusinessCenter" and must not repeat.
	if contains(general, "business center") {
		t.Fatalf("duplicate amenity got through: %v", general)
	}
	if !contains(h.Amenities.Room, "tv") || !contains(h.Amenities.Room, "iron") {
		t.Fatalf("room amenities: %v", h.Amenities.Room)
	}

	if len(h.Images.Rooms) != 2 {
		t.Fatalf("room images should dedup by URL: %v", h.Images.Rooms)
	}
	if len(h.Images.Site) != 1 || len(h.Images.Amenities) != 1 {
		t.Fatalf("images: %+v", h.Images)
	}
	if len(h.BookingConditions) != 2 {
		t.Fatalf("conditions: %v", h.BookingConditions)
	}
}

func TestAPI_EndToEnd_FilteredQuery(t *testing.T) {
	ts := supplierBackend(t)
	svc := newService(ts.URL)

	srv := httpserver.New()
	srv.MountHandlers(&httpserver.Handlers{Svc: svc})
	api := httptest.NewServer(srv.Mux())
	defer api.Close()

	res, err := http.Get(api.URL + "/v1/hotels?hotels=iJhz&destinations=5432")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}

	var docs []struct {
		ID            string `json:"id"`
		DestinationID string `json:"destination_id"`
		Name          string `json:"name"`
	}
	if err := json.NewDecoder(res.Body).Decode(&docs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(docs) != 1 || docs[0].ID != "iJhz" || docs[0].Name != "Beach Villas Singapore" {
		t.Fatalf("unexpected body: %+v", docs)
	}

	// A destination nobody serves still answers 200 with an empty array.
	res2, err := http.Get(api.URL + "/v1/hotels?destinations=9999")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res2.Body.Close()
	if res2.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res2.StatusCode)
	}
	var empty []any
	if err := json.NewDecoder(res2.Body).Decode(&empty); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty result, got %v", empty)
	}
}
