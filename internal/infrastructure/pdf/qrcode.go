package pdf

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// QRGenerator implements ports.CodeGenerator with skip2/go-qrcode.
type QRGenerator struct{}

func NewQRGenerator() QRGenerator {
	return QRGenerator{}
}

// Generate returns a PNG of size×size pixels encoding content.
func (QRGenerator) Generate(content string, size int) ([]byte, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}
