package entity

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/genproto/googleapis/type/latlng"
)

// NewBusinessFromDocument converts a raw remote document payload into a
// well-formed Business. It is the single conversion boundary between the
// loosely-typed remote representation and the internal record: it never
// fails and never returns a record with missing required fields. Malformed
// nested entries (an image without a URL, a menu item without a name or
// price) are dropped rather than surfaced as errors.
func NewBusinessFromDocument(id string, data map[string]any) *Business {
	now := time.Now()

	b := &Business{
		ID:          id,
		Name:        asString(data["name"]),
		Description: asString(data["description"]),
		Category:    asString(data["category"]),

		Address: asString(data["address"]),
		Phone:   asString(data["phone"]),
		Email:   asString(data["email"]),
		Website: asString(data["website"]),

		Location: parseGeoPoint(data["location"]),

		Images: normalizeImages(data["images"]),
		Videos: normalizeVideos(data["videos"]),

		OperatingHours: normalizeOperatingHours(data["operatingHours"]),
		PaymentMethods: normalizeStringList(data["paymentMethods"]),
		SocialLinks:    normalizeSocialLinks(data["socialLinks"]),
		Menu:           normalizeMenu(data["menu"]),

		Rating: asFloat(data["rating"]),

		CreatedAt: asTimeOr(data["createdAt"], now),
		UpdatedAt: asTimeOr(data["updatedAt"], now),
		CreatedBy: asString(data["createdBy"]),
	}

	return b
}

// parseGeoPoint accepts the three location encodings observed in the wild: a
// native geopoint value, a {latitude, longitude} map, and a JSON-encoded
// string of that map. Anything else degrades to nil.
func parseGeoPoint(v any) *GeoPoint {
	switch loc := v.(type) {
	case *latlng.LatLng:
		if loc == nil {
			return nil
		}

		return &GeoPoint{Latitude: loc.Latitude, Longitude: loc.Longitude}
	case map[string]any:
		lat, okLat := asFloatOK(loc["latitude"])
		lng, okLng := asFloatOK(loc["longitude"])
		if !okLat || !okLng {
			return nil
		}

		return &GeoPoint{Latitude: lat, Longitude: lng}
	case string:
		var decoded struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		}
		if err := json.Unmarshal([]byte(loc), &decoded); err != nil {
			return nil
		}

		return &GeoPoint{Latitude: decoded.Latitude, Longitude: decoded.Longitude}
	default:
		return nil
	}
}

func normalizeImages(v any) []ImageEntry {
	entries := asMapSlice(v)
	images := make([]ImageEntry, 0, len(entries))
	for _, entry := range entries {
		url := asString(entry["url"])
		if url == "" {
			continue
		}
		images = append(images, ImageEntry{
			ID:     stringOrGenerated(entry["id"]),
			URL:    url,
			IsMain: asBool(entry["isMain"]),
		})
	}

	return images
}

func normalizeVideos(v any) []VideoEntry {
	entries := asMapSlice(v)
	videos := make([]VideoEntry, 0, len(entries))
	for _, entry := range entries {
		url := asString(entry["url"])
		if url == "" {
			continue
		}
		videos = append(videos, VideoEntry{
			ID:        stringOrGenerated(entry["id"]),
			URL:       url,
			Thumbnail: asString(entry["thumbnail"]),
		})
	}

	return videos
}

func normalizeMenu(v any) []MenuItem {
	entries := asMapSlice(v)
	menu := make([]MenuItem, 0, len(entries))
	for _, entry := range entries {
		name := asString(entry["name"])
		price, ok := asFloatOK(entry["price"])
		if name == "" || !ok {
			continue
		}
		menu = append(menu, MenuItem{
			ID:          stringOrGenerated(entry["id"]),
			Name:        name,
			Description: asString(entry["description"]),
			Price:       price,
			ImageURL:    asString(entry["imageUrl"]),
			Category:    asString(entry["category"]),
		})
	}

	return menu
}

func normalizeOperatingHours(v any) map[string]DayHours {
	raw, ok := v.(map[string]any)
	if !ok || len(raw) == 0 {
		return nil
	}

	hours := make(map[string]DayHours, len(raw))
	for day, value := range raw {
		entry, ok := value.(map[string]any)
		if !ok {
			continue
		}
		hours[strings.ToLower(day)] = DayHours{
			Open:   asString(entry["open"]),
			Close:  asString(entry["close"]),
			Closed: asBool(entry["closed"]),
		}
	}
	if len(hours) == 0 {
		return nil
	}

	return hours
}

func normalizeStringList(v any) []string {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}

	list := make([]string, 0, len(raw))
	for _, item := range raw {
		if s := asString(item); s != "" {
			list = append(list, s)
		}
	}
	if len(list) == 0 {
		return nil
	}

	return list
}

func normalizeSocialLinks(v any) map[string]string {
	raw, ok := v.(map[string]any)
	if !ok {
		return nil
	}

	links := make(map[string]string)
	for _, platform := range KnownSocialPlatforms {
		if url := asString(raw[platform]); url != "" {
			links[platform] = url
		}
	}
	if len(links) == 0 {
		return nil
	}

	return links
}

func asString(v any) string {
	s, _ := v.(string)

	return s
}

func stringOrGenerated(v any) string {
	if s := asString(v); s != "" {
		return s
	}

	return uuid.New().String()
}

func asBool(v any) bool {
	b, _ := v.(bool)

	return b
}

func asFloat(v any) float64 {
	f, _ := asFloatOK(v)

	return f
}

// asFloatOK coerces the numeric types the remote store hands back.
func asFloatOK(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func asTimeOr(v any, fallback time.Time) time.Time {
	if t, ok := v.(time.Time); ok {
		return t
	}

	return fallback
}

func asMapSlice(v any) []map[string]any {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}

	entries := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			entries = append(entries, m)
		}
	}

	return entries
}
