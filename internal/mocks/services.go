package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"goodfood-shop/internal/domain"
	"goodfood-shop/internal/service"
)

type RestaurantServiceInterface struct {
	mock.Mock
}

func NewRestaurantServiceInterface(t testingT) *RestaurantServiceInterface {
	m := &RestaurantServiceInterface{}
	setup(t, m)
	return m
}

func (m *RestaurantServiceInterface) Create(principal *domain.User, req service.CreateRestaurantRequest) (*domain.Restaurant, error) {
	ret := m.Called(principal, req)
	var r0 *domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (m *RestaurantServiceInterface) List(principal *domain.User, skip, size int) ([]domain.Restaurant, int, error) {
	ret := m.Called(principal, skip, size)
	var r0 []domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Restaurant)
	}
	return r0, ret.Int(1), ret.Error(2)
}

func (m *RestaurantServiceInterface) Get(id string) (*domain.Restaurant, error) {
	ret := m.Called(id)
	var r0 *domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (m *RestaurantServiceInterface) Update(principal *domain.User, id string, req service.UpdateRestaurantRequest) (*domain.Restaurant, error) {
	ret := m.Called(principal, id, req)
	var r0 *domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (m *RestaurantServiceInterface) Delete(principal *domain.User, id string) error {
	return m.Called(principal, id).Error(0)
}

type ProductServiceInterface struct {
	mock.Mock
}

func NewProductServiceInterface(t testingT) *ProductServiceInterface {
	m := &ProductServiceInterface{}
	setup(t, m)
	return m
}

func (m *ProductServiceInterface) Create(principal *domain.User, req service.CreateProductRequest) (*domain.Product, error) {
	ret := m.Called(principal, req)
	var r0 *domain.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Product)
	}
	return r0, ret.Error(1)
}

func (m *ProductServiceInterface) List(restaurantID string, skip, size int) ([]domain.Product, int, error) {
	ret := m.Called(restaurantID, skip, size)
	var r0 []domain.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Product)
	}
	return r0, ret.Int(1), ret.Error(2)
}

func (m *ProductServiceInterface) Get(id string) (*domain.Product, error) {
	ret := m.Called(id)
	var r0 *domain.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Product)
	}
	return r0, ret.Error(1)
}

func (m *ProductServiceInterface) Update(principal *domain.User, id string, req service.UpdateProductRequest) (*domain.Product, error) {
	ret := m.Called(principal, id, req)
	var r0 *domain.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Product)
	}
	return r0, ret.Error(1)
}

func (m *ProductServiceInterface) Delete(principal *domain.User, id string) error {
	return m.Called(principal, id).Error(0)
}

type MenuServiceInterface struct {
	mock.Mock
}

func NewMenuServiceInterface(t testingT) *MenuServiceInterface {
	m := &MenuServiceInterface{}
	setup(t, m)
	return m
}

func (m *MenuServiceInterface) Create(principal *domain.User, req service.CreateMenuRequest) (*domain.Menu, error) {
	ret := m.Called(principal, req)
	var r0 *domain.Menu
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Menu)
	}
	return r0, ret.Error(1)
}

func (m *MenuServiceInterface) List(restaurantID string, skip, size int) ([]domain.Menu, int, error) {
	ret := m.Called(restaurantID, skip, size)
	var r0 []domain.Menu
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Menu)
	}
	return r0, ret.Int(1), ret.Error(2)
}

func (m *MenuServiceInterface) Get(id string) (*domain.Menu, error) {
	ret := m.Called(id)
	var r0 *domain.Menu
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Menu)
	}
	return r0, ret.Error(1)
}

func (m *MenuServiceInterface) Update(principal *domain.User, id string, req service.UpdateMenuRequest) (*domain.Menu, error) {
	ret := m.Called(principal, id, req)
	var r0 *domain.Menu
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Menu)
	}
	return r0, ret.Error(1)
}

func (m *MenuServiceInterface) Delete(principal *domain.User, id string) error {
	return m.Called(principal, id).Error(0)
}

type OrderServiceInterface struct {
	mock.Mock
}

func NewOrderServiceInterface(t testingT) *OrderServiceInterface {
	m := &OrderServiceInterface{}
	setup(t, m)
	return m
}

func (m *OrderServiceInterface) Place(ctx context.Context, client *domain.User, req service.PlaceOrderRequest) (*domain.Order, error) {
	ret := m.Called(ctx, client, req)
	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

type CouponServiceInterface struct {
	mock.Mock
}

func NewCouponServiceInterface(t testingT) *CouponServiceInterface {
	m := &CouponServiceInterface{}
	setup(t, m)
	return m
}

func (m *CouponServiceInterface) List(skip, size int) ([]domain.Coupon, int, error) {
	ret := m.Called(skip, size)
	var r0 []domain.Coupon
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Coupon)
	}
	return r0, ret.Int(1), ret.Error(2)
}

func (m *CouponServiceInterface) Get(id string) (*domain.Coupon, error) {
	ret := m.Called(id)
	var r0 *domain.Coupon
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Coupon)
	}
	return r0, ret.Error(1)
}

func (m *CouponServiceInterface) GetByUser(userID string) (*domain.Coupon, error) {
	ret := m.Called(userID)
	var r0 *domain.Coupon
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Coupon)
	}
	return r0, ret.Error(1)
}

func (m *CouponServiceInterface) Redeem(principal *domain.User, id string) (*domain.Coupon, error) {
	ret := m.Called(principal, id)
	var r0 *domain.Coupon
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Coupon)
	}
	return r0, ret.Error(1)
}

func (m *CouponServiceInterface) IssueSponsorshipPair(sponsor, sponsored domain.User) (*domain.Coupon, *domain.Coupon, error) {
	ret := m.Called(sponsor, sponsored)
	var r0, r1 *domain.Coupon
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Coupon)
	}
	if ret.Get(1) != nil {
		r1 = ret.Get(1).(*domain.Coupon)
	}
	return r0, r1, ret.Error(2)
}

func (m *CouponServiceInterface) QRCode(id string) ([]byte, error) {
	ret := m.Called(id)
	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	return r0, ret.Error(1)
}
