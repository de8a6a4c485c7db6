// Package mocks holds testify mocks for the service-layer interfaces.
package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	"goodfood-shop/internal/domain"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

func setup(t testingT, m interface {
	Test(mock.TestingT)
	AssertExpectations(mock.TestingT) bool
}) {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
}

type RestaurantRepository struct {
	mock.Mock
}

func NewRestaurantRepository(t testingT) *RestaurantRepository {
	m := &RestaurantRepository{}
	setup(t, m)
	return m
}

func (m *RestaurantRepository) CreateRestaurant(rest *domain.Restaurant) error {
	return m.Called(rest).Error(0)
}

func (m *RestaurantRepository) ListRestaurants(ownerID string, skip, size int) ([]domain.Restaurant, int, error) {
	ret := m.Called(ownerID, skip, size)
	var r0 []domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Restaurant)
	}
	return r0, ret.Int(1), ret.Error(2)
}

func (m *RestaurantRepository) GetRestaurant(id string) (*domain.Restaurant, error) {
	ret := m.Called(id)
	var r0 *domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (m *RestaurantRepository) GetRestaurantByOwner(ownerID string) (*domain.Restaurant, error) {
	ret := m.Called(ownerID)
	var r0 *domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (m *RestaurantRepository) UpdateRestaurant(rest *domain.Restaurant) (int64, error) {
	ret := m.Called(rest)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *RestaurantRepository) DeleteRestaurantCascade(id string) (int64, error) {
	ret := m.Called(id)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *RestaurantRepository) SetCouponDate(ownerID string, until time.Time) error {
	return m.Called(ownerID, until).Error(0)
}

func (m *RestaurantRepository) UpdateOwnerSnapshot(user domain.User) error {
	return m.Called(user).Error(0)
}

type ProductRepository struct {
	mock.Mock
}

func NewProductRepository(t testingT) *ProductRepository {
	m := &ProductRepository{}
	setup(t, m)
	return m
}

func (m *ProductRepository) CreateProduct(product *domain.Product) error {
	return m.Called(product).Error(0)
}

func (m *ProductRepository) ListProducts(restaurantID string, skip, size int) ([]domain.Product, int, error) {
	ret := m.Called(restaurantID, skip, size)
	var r0 []domain.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Product)
	}
	return r0, ret.Int(1), ret.Error(2)
}

func (m *ProductRepository) GetProduct(id string) (*domain.Product, error) {
	ret := m.Called(id)
	var r0 *domain.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Product)
	}
	return r0, ret.Error(1)
}

func (m *ProductRepository) GetProductsByIDs(ids []string) ([]domain.Product, error) {
	ret := m.Called(ids)
	var r0 []domain.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Product)
	}
	return r0, ret.Error(1)
}

func (m *ProductRepository) UpdateProduct(product *domain.Product) (int64, error) {
	ret := m.Called(product)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *ProductRepository) DeleteProduct(id, restaurantID string) (int64, error) {
	ret := m.Called(id, restaurantID)
	return ret.Get(0).(int64), ret.Error(1)
}

type MenuRepository struct {
	mock.Mock
}

func NewMenuRepository(t testingT) *MenuRepository {
	m := &MenuRepository{}
	setup(t, m)
	return m
}

func (m *MenuRepository) CreateMenu(menu *domain.Menu) error {
	return m.Called(menu).Error(0)
}

func (m *MenuRepository) ListMenus(restaurantID string, skip, size int) ([]domain.Menu, int, error) {
	ret := m.Called(restaurantID, skip, size)
	var r0 []domain.Menu
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Menu)
	}
	return r0, ret.Int(1), ret.Error(2)
}

func (m *MenuRepository) GetMenu(id string) (*domain.Menu, error) {
	ret := m.Called(id)
	var r0 *domain.Menu
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Menu)
	}
	return r0, ret.Error(1)
}

func (m *MenuRepository) GetMenusByIDs(ids []string) ([]domain.Menu, error) {
	ret := m.Called(ids)
	var r0 []domain.Menu
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Menu)
	}
	return r0, ret.Error(1)
}

func (m *MenuRepository) UpdateMenu(menu *domain.Menu) (int64, error) {
	ret := m.Called(menu)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *MenuRepository) DeleteMenu(id, restaurantID string) (int64, error) {
	ret := m.Called(id, restaurantID)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *MenuRepository) ListMenusEmbedding(restaurantID, productID string) ([]domain.Menu, error) {
	ret := m.Called(restaurantID, productID)
	var r0 []domain.Menu
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Menu)
	}
	return r0, ret.Error(1)
}

func (m *MenuRepository) CountMenusEmbedding(restaurantID, productID string) (int, error) {
	ret := m.Called(restaurantID, productID)
	return ret.Int(0), ret.Error(1)
}

func (m *MenuRepository) ReplaceSnapshots(menuID string, products []domain.Product) error {
	return m.Called(menuID, products).Error(0)
}

type CouponRepository struct {
	mock.Mock
}

func NewCouponRepository(t testingT) *CouponRepository {
	m := &CouponRepository{}
	setup(t, m)
	return m
}

func (m *CouponRepository) CreateCoupon(coupon *domain.Coupon) error {
	return m.Called(coupon).Error(0)
}

func (m *CouponRepository) ListCoupons(skip, size int) ([]domain.Coupon, int, error) {
	ret := m.Called(skip, size)
	var r0 []domain.Coupon
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Coupon)
	}
	return r0, ret.Int(1), ret.Error(2)
}

func (m *CouponRepository) GetCoupon(id string) (*domain.Coupon, error) {
	ret := m.Called(id)
	var r0 *domain.Coupon
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Coupon)
	}
	return r0, ret.Error(1)
}

func (m *CouponRepository) GetCouponByUser(userID string) (*domain.Coupon, error) {
	ret := m.Called(userID)
	var r0 *domain.Coupon
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Coupon)
	}
	return r0, ret.Error(1)
}

func (m *CouponRepository) RedeemCoupon(id string, at time.Time) (int64, error) {
	ret := m.Called(id, at)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *CouponRepository) SaveQRCode(id string, qr []byte) error {
	return m.Called(id, qr).Error(0)
}

func (m *CouponRepository) GetQRCode(id string) ([]byte, error) {
	ret := m.Called(id)
	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	return r0, ret.Error(1)
}

func (m *CouponRepository) UpdateHolderSnapshot(user domain.User) error {
	return m.Called(user).Error(0)
}
