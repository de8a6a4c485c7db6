package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(couponID string) ([]byte, error)
}

// DefaultQRGenerator encodes the coupon redemption URL as a PNG so a coupon
// can be consumed by scanning it in store.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(couponID string) ([]byte, error) {
	qrData := fmt.Sprintf("%s/api/coupons/%s", g.BaseURL, couponID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
