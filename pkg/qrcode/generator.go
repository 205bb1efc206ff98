package qrcode

import (
	"encoding/base64"
	"errors"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

var (
	// ErrEmptyContent is returned when the content is empty or whitespace.
	ErrEmptyContent = errors.New("qr content cannot be empty")
	// ErrGenerateFailed is returned when the underlying encoder fails.
	ErrGenerateFailed = errors.New("failed to generate QR code")
)

// DefaultSize is the image size in pixels used when none is requested.
const DefaultSize = 256

// Generate encodes content into a PNG QR code of size x size pixels.
// Non-positive sizes fall back to DefaultSize.
func Generate(content string, size int) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if size <= 0 {
		size = DefaultSize
	}

	png, err := skipqrcode.Encode(content, skipqrcode.Medium, size)
	if err != nil {
		return nil, errors.Join(ErrGenerateFailed, err)
	}
	return png, nil
}

// DataURI encodes content into a base64 PNG data URI suitable for an
// <img> src attribute.
func DataURI(content string, size int) (string, error) {
	png, err := Generate(content, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
