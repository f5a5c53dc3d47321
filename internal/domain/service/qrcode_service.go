package service

// QRCodeService renders shareable QR codes for partner profile links.
type QRCodeService interface {
	// GenerateShareQR returns a PNG QR code pointing at the public profile
	// of the given business.
	GenerateShareQR(businessID string) ([]byte, error)
}
