package utils

import (
	"encoding/base64"

	"github.com/skip2/go-qrcode"
)

// GenerateTrackingQR génère le QR du numéro de suivi en base64, prêt à
// mettre dans un <img src="...">
func GenerateTrackingQR(trackingNumber string) (string, error) {
	png, err := qrcode.Encode(trackingNumber, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// TrackingQRPNG retourne les octets PNG bruts du QR (endpoint console staff)
func TrackingQRPNG(trackingNumber string) ([]byte, error) {
	return qrcode.Encode(trackingNumber, qrcode.Medium, 256)
}
