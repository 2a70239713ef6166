// Package qrcode renders share codes for business profiles.
package qrcode

import (
	"encoding/json"
	"fmt"

	"localfy/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	BusinessID string `json:"business_id"`
	Type       string `json:"type"`
}

const qrTypeBusiness = "business"

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateBusinessQR generates a PNG QR code referencing a business profile
func (s *qrcodeService) GenerateBusinessQR(businessID string) ([]byte, error) {
	data := QRCodeData{
		BusinessID: businessID,
		Type:       qrTypeBusiness,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseBusinessQR parses QR code data and returns the business ID
func (s *qrcodeService) ParseBusinessQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != qrTypeBusiness {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.BusinessID == "" {
		return "", fmt.Errorf("QR code is missing a business reference")
	}

	return data.BusinessID, nil
}
