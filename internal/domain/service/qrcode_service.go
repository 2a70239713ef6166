package service

// QRCodeService generates and parses share QR codes for business profiles.
type QRCodeService interface {
	// GenerateBusinessQR renders a PNG QR code encoding the business profile
	// reference.
	GenerateBusinessQR(businessID string) ([]byte, error)

	// ParseBusinessQR decodes QR payload data and returns the business ID it
	// references.
	ParseBusinessQR(qrData string) (string, error)
}
