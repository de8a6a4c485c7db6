package mocks

import "goodfood-shop/internal/service"

var (
	_ service.RestaurantRepository       = (*RestaurantRepository)(nil)
	_ service.ProductRepository          = (*ProductRepository)(nil)
	_ service.MenuRepository             = (*MenuRepository)(nil)
	_ service.CouponRepository           = (*CouponRepository)(nil)
	_ service.OrderPublisher             = (*OrderPublisher)(nil)
	_ service.MarkerCache                = (*MarkerCache)(nil)
	_ service.OwnerAsserter              = (*OwnerAsserter)(nil)
	_ service.QRGenerator                = (*QRGenerator)(nil)
	_ service.RestaurantServiceInterface = (*RestaurantServiceInterface)(nil)
	_ service.ProductServiceInterface    = (*ProductServiceInterface)(nil)
	_ service.MenuServiceInterface       = (*MenuServiceInterface)(nil)
	_ service.OrderServiceInterface      = (*OrderServiceInterface)(nil)
	_ service.CouponServiceInterface     = (*CouponServiceInterface)(nil)
)
