package entity

// ApplyFields patches the record in place from a partial document field set,
// coercing values the same way NewBusinessFromDocument does. Unknown keys are
// ignored; ID and timestamps are never patched here.
func (b *Business) ApplyFields(fields map[string]any) {
	for key, value := range fields {
		switch key {
		case "name":
			b.Name = asString(value)
		case "description":
			b.Description = asString(value)
		case "category":
			b.Category = asString(value)
		case "address":
			b.Address = asString(value)
		case "phone":
			b.Phone = asString(value)
		case "email":
			b.Email = asString(value)
		case "website":
			b.Website = asString(value)
		case "location":
			b.Location = parseGeoPoint(value)
		case "images":
			b.Images = normalizeImages(value)
		case "videos":
			b.Videos = normalizeVideos(value)
		case "menu":
			b.Menu = normalizeMenu(value)
		case "operatingHours":
			b.OperatingHours = normalizeOperatingHours(value)
		case "paymentMethods":
			b.PaymentMethods = normalizeStringList(value)
		case "socialLinks":
			b.SocialLinks = normalizeSocialLinks(value)
		case "rating":
			b.Rating = asFloat(value)
		case "createdBy":
			b.CreatedBy = asString(value)
		}
	}
}
