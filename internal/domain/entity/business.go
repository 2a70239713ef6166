// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// Known social platform keys accepted in Business.SocialLinks.
var KnownSocialPlatforms = []string{"facebook", "instagram", "twitter", "tiktok", "website"}

// GeoPoint is a normalized {latitude, longitude} pair.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Point converts the pair to an orb.Point (lon, lat order).
func (g GeoPoint) Point() orb.Point {
	return orb.Point{g.Longitude, g.Latitude}
}

// DistanceMeters returns the great-circle distance to the given coordinates.
func (g GeoPoint) DistanceMeters(lat, lng float64) float64 {
	return geo.Distance(g.Point(), orb.Point{lng, lat})
}

// ImageEntry is a single business image. Every normalized entry carries a
// non-empty ID and URL.
type ImageEntry struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	IsMain bool   `json:"is_main"`
}

// VideoEntry is a single business video.
type VideoEntry struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// DayHours describes opening hours for one weekday. The Closed flag overrides
// Open/Close.
type DayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed,omitempty"`
}

// MenuItem is a single entry on a business menu. Normalized entries always
// have a non-empty ID, a name and a numeric price.
type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url,omitempty"`
	Category    string  `json:"category,omitempty"`
}

// Business is the central entity of the directory: a local business as shown
// to users. Instances are produced only by NewBusinessFromDocument, which
// guarantees every required field is populated.
type Business struct {
	ID          string `json:"id"`   // Document identifier assigned by the remote store.
	Name        string `json:"name"` // Defaulted to "" when absent, never nil.
	Description string `json:"description"`
	Category    string `json:"category"`

	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Website string `json:"website,omitempty"`

	Location *GeoPoint `json:"location,omitempty"` // Parsed from a structured pair or a JSON-encoded string.

	Images []ImageEntry `json:"images"`
	Videos []VideoEntry `json:"videos"`

	OperatingHours map[string]DayHours `json:"operating_hours,omitempty"` // Keyed by weekday name.
	PaymentMethods []string            `json:"payment_methods,omitempty"`
	SocialLinks    map[string]string   `json:"social_links,omitempty"` // Known platform keys only.
	Menu           []MenuItem          `json:"menu"`

	Rating float64 `json:"rating"` // Defaulted to 0, never absent.

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedBy string    `json:"created_by,omitempty"` // Owner identifier.
}

// Clone returns a deep copy so callers can hand records to consumers without
// sharing mutable slices or maps with the in-memory list.
func (b *Business) Clone() *Business {
	if b == nil {
		return nil
	}

	clone := *b
	if b.Location != nil {
		loc := *b.Location
		clone.Location = &loc
	}
	clone.Images = append([]ImageEntry(nil), b.Images...)
	clone.Videos = append([]VideoEntry(nil), b.Videos...)
	clone.Menu = append([]MenuItem(nil), b.Menu...)
	clone.PaymentMethods = append([]string(nil), b.PaymentMethods...)
	if b.OperatingHours != nil {
		clone.OperatingHours = make(map[string]DayHours, len(b.OperatingHours))
		for day, hours := range b.OperatingHours {
			clone.OperatingHours[day] = hours
		}
	}
	if b.SocialLinks != nil {
		clone.SocialLinks = make(map[string]string, len(b.SocialLinks))
		for platform, url := range b.SocialLinks {
			clone.SocialLinks[platform] = url
		}
	}

	return &clone
}
