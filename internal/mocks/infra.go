package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"goodfood-shop/internal/domain"
)

type OrderPublisher struct {
	mock.Mock
}

func NewOrderPublisher(t testingT) *OrderPublisher {
	m := &OrderPublisher{}
	setup(t, m)
	return m
}

func (m *OrderPublisher) PublishOrder(ctx context.Context, order domain.Order) error {
	return m.Called(ctx, order).Error(0)
}

type MarkerCache struct {
	mock.Mock
}

func NewMarkerCache(t testingT) *MarkerCache {
	m := &MarkerCache{}
	setup(t, m)
	return m
}

func (m *MarkerCache) SponsorshipKey(eventID string) string {
	return m.Called(eventID).String(0)
}

func (m *MarkerCache) Exists(ctx context.Context, key string) (bool, error) {
	ret := m.Called(ctx, key)
	return ret.Bool(0), ret.Error(1)
}

func (m *MarkerCache) SetMarker(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type OwnerAsserter struct {
	mock.Mock
}

func NewOwnerAsserter(t testingT) *OwnerAsserter {
	m := &OwnerAsserter{}
	setup(t, m)
	return m
}

func (m *OwnerAsserter) AssertOwner(principal *domain.User, restaurantID string) (*domain.Restaurant, error) {
	ret := m.Called(principal, restaurantID)
	var r0 *domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Restaurant)
	}
	return r0, ret.Error(1)
}

type QRGenerator struct {
	mock.Mock
}

func NewQRGenerator(t testingT) *QRGenerator {
	m := &QRGenerator{}
	setup(t, m)
	return m
}

func (m *QRGenerator) Generate(couponID string) ([]byte, error) {
	ret := m.Called(couponID)
	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	return r0, ret.Error(1)
}
