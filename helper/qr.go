package helper

import (
	"errors"
	"fmt"

	"github.com/skip2/go-qrcode"
)

// GenerateQRCode encodes a booking reference as a square PNG of size pixels.
func GenerateQRCode(reference string, size int) ([]byte, error) {
	if reference == "" {
		return nil, errors.New("qr: empty booking reference")
	}
	png, err := qrcode.Encode(reference, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("qr encode %s: %w", reference, err)
	}
	return png, nil
}
