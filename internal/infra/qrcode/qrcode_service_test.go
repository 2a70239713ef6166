package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GenerateAndParse(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	png, err := svc.GenerateBusinessQR("biz-123")
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	// PNG magic bytes.
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])

	payload, err := json.Marshal(QRCodeData{BusinessID: "biz-123", Type: "business"})
	require.NoError(t, err)

	businessID, err := svc.ParseBusinessQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, "biz-123", businessID)
}

func TestQRCodeService_ParseRejectsWrongType(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	payload, err := json.Marshal(QRCodeData{BusinessID: "biz-123", Type: "coupon"})
	require.NoError(t, err)

	_, err = svc.ParseBusinessQR(string(payload))
	assert.Error(t, err)
}

func TestQRCodeService_ParseRejectsMissingBusiness(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, err := svc.ParseBusinessQR(`{"type":"business"}`)
	assert.Error(t, err)

	_, err = svc.ParseBusinessQR("{not json")
	assert.Error(t, err)
}

func TestQRCodeService_DefaultsUnknownCorrectionLevel(t *testing.T) {
	svc := NewQRCodeService(128, "X")

	png, err := svc.GenerateBusinessQR("biz-456")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
