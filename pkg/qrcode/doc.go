// Package qrcode generates QR code images for parcel tracking links,
// either as raw PNG bytes served over HTTP or as a data-URI string
// embeddable into emails and pages.
//
// It is a thin wrapper around github.com/skip2/go-qrcode adding input
// validation, a default size, and sentinel errors for errors.Is checks.
package qrcode
