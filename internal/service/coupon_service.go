package service

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"goodfood-shop/internal/domain"
)

type CouponService struct {
	coupons     CouponRepository
	restaurants RestaurantRepository
	qrEncoder   QRGenerator
}

func NewCouponService(coupons CouponRepository, restaurants RestaurantRepository, qr QRGenerator) *CouponService {
	return &CouponService{coupons: coupons, restaurants: restaurants, qrEncoder: qr}
}

func (s *CouponService) List(skip, size int) ([]domain.Coupon, int, error) {
	return s.coupons.ListCoupons(skip, size)
}

func (s *CouponService) Get(id string) (*domain.Coupon, error) {
	coupon, err := s.coupons.GetCoupon(id)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}
	return coupon, nil
}

func (s *CouponService) GetByUser(userID string) (*domain.Coupon, error) {
	coupon, err := s.coupons.GetCouponByUser(userID)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}
	return coupon, nil
}

// Redeem consumes the coupon exactly once: the holder check happens on a
// plain read, the flip itself is a conditional update on isUsed. A
// restaurateur holder additionally gets their restaurant sponsored for one
// calendar month.
func (s *CouponService) Redeem(principal *domain.User, id string) (*domain.Coupon, error) {
	if principal == nil {
		return nil, ErrUnauthenticated
	}

	coupon, err := s.coupons.GetCoupon(id)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}
	if coupon.User.ID != principal.ID {
		return nil, ErrCouponNotYours
	}
	if coupon.IsUsed {
		return nil, ErrCouponAlreadyUsed
	}

	now := time.Now()
	rows, err := s.coupons.RedeemCoupon(id, now)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrCouponAlreadyUsed
	}
	coupon.IsUsed = true
	coupon.Date = &now

	if principal.Role == domain.RoleRestaurateur {
		until := now.AddDate(0, 1, 0)
		if err := s.restaurants.SetCouponDate(principal.ID, until); err != nil {
			// The coupon is already consumed; the subscription extension is
			// best-effort and retried out of band.
			log.Printf("Failed to extend coupon date for owner %s: %v", principal.ID, err)
		}
	}
	return coupon, nil
}

// IssueSponsorshipPair creates one coupon per party of a sponsorship, each
// tagged with its holder's role.
func (s *CouponService) IssueSponsorshipPair(sponsor, sponsored domain.User) (*domain.Coupon, *domain.Coupon, error) {
	first, err := s.issue(sponsor)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to issue sponsor coupon: %w", err)
	}
	second, err := s.issue(sponsored)
	if err != nil {
		return first, nil, fmt.Errorf("failed to issue sponsored coupon: %w", err)
	}
	return first, second, nil
}

func (s *CouponService) issue(holder domain.User) (*domain.Coupon, error) {
	coupon := &domain.Coupon{
		ID:     uuid.NewString(),
		User:   holder,
		Coupon: holder.Role,
		IsUsed: false,
	}
	if err := s.coupons.CreateCoupon(coupon); err != nil {
		return nil, err
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(coupon.ID); err == nil {
			_ = s.coupons.SaveQRCode(coupon.ID, qr)
		}
	}
	return coupon, nil
}

// QRCode serves the stored image for an existing coupon, regenerating it
// when the column is empty. Unknown ids never get an image.
func (s *CouponService) QRCode(id string) ([]byte, error) {
	coupon, err := s.coupons.GetCoupon(id)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}

	qr, err := s.coupons.GetQRCode(id)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		if regenerated, err := s.qrEncoder.Generate(id); err == nil {
			_ = s.coupons.SaveQRCode(id, regenerated)
			return regenerated, nil
		}
	}
	return qr, nil
}

var _ CouponServiceInterface = (*CouponService)(nil)
