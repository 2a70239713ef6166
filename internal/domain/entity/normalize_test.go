package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/type/latlng"
)

func TestNewBusinessFromDocument_EmptyDocument(t *testing.T) {
	b := NewBusinessFromDocument("b1", map[string]any{})

	require.NotNil(t, b)
	assert.Equal(t, "b1", b.ID)
	assert.Empty(t, b.Name)
	assert.Empty(t, b.Category)
	assert.Nil(t, b.Location)
	assert.NotNil(t, b.Images)
	assert.NotNil(t, b.Videos)
	assert.NotNil(t, b.Menu)
	assert.Zero(t, b.Rating)
	assert.False(t, b.CreatedAt.IsZero(), "missing timestamps default to now")
}

func TestNewBusinessFromDocument_WrongTypesDegrade(t *testing.T) {
	b := NewBusinessFromDocument("b1", map[string]any{
		"name":           42,
		"category":       []any{"cafe"},
		"rating":         "five",
		"images":         "not-a-list",
		"menu":           map[string]any{"oops": true},
		"location":       true,
		"paymentMethods": "cash",
	})

	require.NotNil(t, b)
	assert.Empty(t, b.Name)
	assert.Empty(t, b.Category)
	assert.Zero(t, b.Rating)
	assert.Empty(t, b.Images)
	assert.Empty(t, b.Menu)
	assert.Nil(t, b.Location)
	assert.Nil(t, b.PaymentMethods)
}

func TestNewBusinessFromDocument_DropsMalformedNestedEntries(t *testing.T) {
	b := NewBusinessFromDocument("b1", map[string]any{
		"images": []any{
			map[string]any{"id": "i1", "url": "https://cdn/x.png", "isMain": true},
			map[string]any{"id": "i2"}, // No URL.
			"garbage",
			nil,
		},
		"menu": []any{
			map[string]any{"name": "Espresso", "price": 3.5},
			map[string]any{"name": "Mystery"},          // No price.
			map[string]any{"price": 9.0},               // No name.
			map[string]any{"name": "Flat", "price": 4}, // Integer price is fine.
		},
	})

	require.Len(t, b.Images, 1)
	assert.Equal(t, "i1", b.Images[0].ID)
	assert.True(t, b.Images[0].IsMain)

	require.Len(t, b.Menu, 2)
	assert.Equal(t, "Espresso", b.Menu[0].Name)
	assert.InDelta(t, 4.0, b.Menu[1].Price, 0.001)
}

func TestNewBusinessFromDocument_GeneratesEntryIDs(t *testing.T) {
	b := NewBusinessFromDocument("b1", map[string]any{
		"images": []any{
			map[string]any{"url": "https://cdn/a.png"},
			map[string]any{"url": "https://cdn/b.png"},
		},
	})

	require.Len(t, b.Images, 2)
	assert.NotEmpty(t, b.Images[0].ID)
	assert.NotEmpty(t, b.Images[1].ID)
	assert.NotEqual(t, b.Images[0].ID, b.Images[1].ID)
}

func TestNewBusinessFromDocument_LocationEncodings(t *testing.T) {
	native := NewBusinessFromDocument("b1", map[string]any{
		"location": &latlng.LatLng{Latitude: 40.7, Longitude: -74.0},
	})
	require.NotNil(t, native.Location)
	assert.InDelta(t, 40.7, native.Location.Latitude, 0.001)

	asMap := NewBusinessFromDocument("b2", map[string]any{
		"location": map[string]any{"latitude": 40.7, "longitude": -74.0},
	})
	require.NotNil(t, asMap.Location)
	assert.InDelta(t, -74.0, asMap.Location.Longitude, 0.001)

	asJSON := NewBusinessFromDocument("b3", map[string]any{
		"location": `{"latitude":40.7,"longitude":-74.0}`,
	})
	require.NotNil(t, asJSON.Location)
	assert.InDelta(t, 40.7, asJSON.Location.Latitude, 0.001)

	broken := NewBusinessFromDocument("b4", map[string]any{
		"location": `{"latitude":`,
	})
	assert.Nil(t, broken.Location)

	partial := NewBusinessFromDocument("b5", map[string]any{
		"location": map[string]any{"latitude": 40.7},
	})
	assert.Nil(t, partial.Location)
}

func TestNewBusinessFromDocument_SocialLinksKnownPlatformsOnly(t *testing.T) {
	b := NewBusinessFromDocument("b1", map[string]any{
		"socialLinks": map[string]any{
			"instagram": "https://instagram.com/cafe",
			"myspace":   "https://myspace.com/cafe",
			"website":   "https://cafe.example.com",
		},
	})

	require.Len(t, b.SocialLinks, 2)
	assert.Contains(t, b.SocialLinks, "instagram")
	assert.Contains(t, b.SocialLinks, "website")
	assert.NotContains(t, b.SocialLinks, "myspace")
}

func TestNewBusinessFromDocument_Timestamps(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	b := NewBusinessFromDocument("b1", map[string]any{
		"createdAt": created,
		"updatedAt": "yesterday",
	})

	assert.Equal(t, created, b.CreatedAt)
	assert.False(t, b.UpdatedAt.IsZero())
}

func TestBusiness_ApplyFields(t *testing.T) {
	b := NewBusinessFromDocument("b1", map[string]any{
		"name":     "Cafe One",
		"category": "cafe",
		"rating":   4.0,
	})

	b.ApplyFields(map[string]any{
		"name":     "Cafe Renamed",
		"rating":   5,
		"location": map[string]any{"latitude": 40.7, "longitude": -74.0},
		"unknown":  "ignored",
	})

	assert.Equal(t, "Cafe Renamed", b.Name)
	assert.Equal(t, "cafe", b.Category)
	assert.InDelta(t, 5.0, b.Rating, 0.001)
	require.NotNil(t, b.Location)
	assert.InDelta(t, 40.7, b.Location.Latitude, 0.001)
}

func TestBusiness_Clone(t *testing.T) {
	b := NewBusinessFromDocument("b1", map[string]any{
		"name":     "Cafe One",
		"images":   []any{map[string]any{"id": "i1", "url": "https://cdn/a.png"}},
		"location": map[string]any{"latitude": 1.0, "longitude": 2.0},
		"operatingHours": map[string]any{
			"monday": map[string]any{"open": "08:00", "close": "17:00"},
		},
	})

	clone := b.Clone()
	clone.Name = "Changed"
	clone.Images[0].URL = "https://cdn/changed.png"
	clone.Location.Latitude = 99
	clone.OperatingHours["monday"] = DayHours{Closed: true}

	assert.Equal(t, "Cafe One", b.Name)
	assert.Equal(t, "https://cdn/a.png", b.Images[0].URL)
	assert.InDelta(t, 1.0, b.Location.Latitude, 0.001)
	assert.False(t, b.OperatingHours["monday"].Closed)

	var nilBusiness *Business
	assert.Nil(t, nilBusiness.Clone())
}

func TestNewReviewFromDocument_ClampsRating(t *testing.T) {
	high := NewReviewFromDocument("b1", "r1", map[string]any{"rating": 9.0})
	assert.InDelta(t, 5.0, high.Rating, 0.001)

	low := NewReviewFromDocument("b1", "r2", map[string]any{"rating": -3})
	assert.Zero(t, low.Rating)

	missing := NewReviewFromDocument("b1", "r3", map[string]any{})
	assert.Zero(t, missing.Rating)
	assert.Equal(t, "b1", missing.BusinessID)
	assert.Equal(t, "r3", missing.ID)
}
