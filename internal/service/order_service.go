package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"goodfood-shop/internal/domain"
)

// Delivery pricing policy.
const (
	DeliveryPrice   = 5
	CommissionPrice = 3
	couponDiscount  = 0.3
	deliveryDelay   = 45 * time.Minute
)

type OrderService struct {
	restaurants RestaurantRepository
	products    ProductRepository
	menus       MenuRepository
	coupons     CouponRepository
	publisher   OrderPublisher
}

func NewOrderService(restaurants RestaurantRepository, products ProductRepository, menus MenuRepository, coupons CouponRepository, publisher OrderPublisher) *OrderService {
	return &OrderService{
		restaurants: restaurants,
		products:    products,
		menus:       menus,
		coupons:     coupons,
		publisher:   publisher,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Place validates the order against the catalog, prices it, applies the
// optional coupon and publishes the result. Orders are never stored here:
// the caller gets the priced order back and the orders topic carries the
// same payload for downstream consumers.
func (s *OrderService) Place(ctx context.Context, client *domain.User, req PlaceOrderRequest) (*domain.Order, error) {
	if client == nil {
		return nil, ErrUnauthenticated
	}
	if client.Role != domain.RoleClient {
		return nil, ErrRoleForbidden
	}

	rest, err := s.restaurants.GetRestaurant(req.RestaurantID)
	if err != nil {
		return nil, err
	}
	if rest == nil {
		return nil, ErrRestaurantNotFound
	}

	products, productsTotal, err := s.resolveProducts(rest.ID, req.Products)
	if err != nil {
		return nil, err
	}
	menus, menusTotal, err := s.resolveMenus(rest.ID, req.Menus)
	if err != nil {
		return nil, err
	}
	price := productsTotal + menusTotal

	if req.Coupon != "" {
		if err := s.applyCoupon(req.Coupon); err != nil {
			return nil, err
		}
		price = round2(price * (1 - couponDiscount))
	}

	now := time.Now()
	order := &domain.Order{
		Restaurant:      *rest,
		Products:        products,
		Menus:           menus,
		Coupon:          req.Coupon,
		Price:           price,
		DeliveryPrice:   DeliveryPrice,
		CommissionPrice: CommissionPrice,
		Client:          *client,
		Comment:         req.Comment,
		Address:         req.Address,
		Position:        req.Position,
		DeliveryDate:    now.Add(deliveryDelay).Format(time.RFC3339),
		CreatedAt:       now,
	}

	if err := s.publisher.PublishOrder(ctx, *order); err != nil {
		// Publish failure is not surfaced to the caller.
		log.Printf("Failed to publish order for restaurant %s: %v", rest.ID, err)
	}
	return order, nil
}

func (s *OrderService) resolveProducts(restaurantID string, ids []string) ([]domain.Product, float64, error) {
	if len(ids) == 0 {
		return []domain.Product{}, 0, nil
	}
	found, err := s.products.GetProductsByIDs(ids)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}
	byID := make(map[string]domain.Product, len(found))
	for _, product := range found {
		byID[product.ID] = product
	}

	resolved := make([]domain.Product, 0, len(ids))
	total := 0.0
	for _, id := range ids {
		product, ok := byID[id]
		if !ok {
			return nil, 0, fmt.Errorf("%w: %s", ErrProductNotFound, id)
		}
		if product.RestaurantID != restaurantID {
			return nil, 0, fmt.Errorf("%w: %s", ErrProductNotFromRestaurant, id)
		}
		resolved = append(resolved, product)
		total += product.Price
	}
	return resolved, total, nil
}

func (s *OrderService) resolveMenus(restaurantID string, ids []string) ([]domain.Menu, float64, error) {
	if len(ids) == 0 {
		return []domain.Menu{}, 0, nil
	}
	found, err := s.menus.GetMenusByIDs(ids)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch menus: %w", err)
	}
	byID := make(map[string]domain.Menu, len(found))
	for _, menu := range found {
		byID[menu.ID] = menu
	}

	resolved := make([]domain.Menu, 0, len(ids))
	total := 0.0
	for _, id := range ids {
		menu, ok := byID[id]
		if !ok {
			return nil, 0, fmt.Errorf("%w: %s", ErrMenuNotFound, id)
		}
		if menu.RestaurantID != restaurantID {
			return nil, 0, fmt.Errorf("%w: %s", ErrMenuNotFromRestaurant, id)
		}
		resolved = append(resolved, menu)
		total += menu.Price
	}
	return resolved, total, nil
}

// applyCoupon consumes the coupon with a conditional update so that two
// concurrent orders cannot both redeem it.
func (s *OrderService) applyCoupon(id string) error {
	coupon, err := s.coupons.GetCoupon(id)
	if err != nil {
		return err
	}
	if coupon == nil {
		return ErrCouponNotFound
	}
	if coupon.IsUsed {
		return ErrCouponAlreadyUsed
	}
	rows, err := s.coupons.RedeemCoupon(id, time.Now())
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrCouponAlreadyUsed
	}
	return nil
}

var _ OrderServiceInterface = (*OrderService)(nil)
