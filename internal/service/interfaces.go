package service

import (
	"context"
	"time"

	"goodfood-shop/internal/domain"
)

type RestaurantRepository interface {
	CreateRestaurant(rest *domain.Restaurant) error
	ListRestaurants(ownerID string, skip, size int) ([]domain.Restaurant, int, error)
	GetRestaurant(id string) (*domain.Restaurant, error)
	GetRestaurantByOwner(ownerID string) (*domain.Restaurant, error)
	UpdateRestaurant(rest *domain.Restaurant) (int64, error)
	DeleteRestaurantCascade(id string) (int64, error)
	SetCouponDate(ownerID string, until time.Time) error
	UpdateOwnerSnapshot(user domain.User) error
}

type ProductRepository interface {
	CreateProduct(product *domain.Product) error
	ListProducts(restaurantID string, skip, size int) ([]domain.Product, int, error)
	GetProduct(id string) (*domain.Product, error)
	GetProductsByIDs(ids []string) ([]domain.Product, error)
	UpdateProduct(product *domain.Product) (int64, error)
	DeleteProduct(id, restaurantID string) (int64, error)
}

type MenuRepository interface {
	CreateMenu(menu *domain.Menu) error
	ListMenus(restaurantID string, skip, size int) ([]domain.Menu, int, error)
	GetMenu(id string) (*domain.Menu, error)
	GetMenusByIDs(ids []string) ([]domain.Menu, error)
	UpdateMenu(menu *domain.Menu) (int64, error)
	DeleteMenu(id, restaurantID string) (int64, error)
	ListMenusEmbedding(restaurantID, productID string) ([]domain.Menu, error)
	CountMenusEmbedding(restaurantID, productID string) (int, error)
	ReplaceSnapshots(menuID string, products []domain.Product) error
}

type CouponRepository interface {
	CreateCoupon(coupon *domain.Coupon) error
	ListCoupons(skip, size int) ([]domain.Coupon, int, error)
	GetCoupon(id string) (*domain.Coupon, error)
	GetCouponByUser(userID string) (*domain.Coupon, error)
	// RedeemCoupon flips isUsed with a conditional update and reports how
	// many rows matched. Zero rows means the coupon was already used or gone.
	RedeemCoupon(id string, at time.Time) (int64, error)
	SaveQRCode(id string, qr []byte) error
	GetQRCode(id string) ([]byte, error)
	UpdateHolderSnapshot(user domain.User) error
}

type OrderPublisher interface {
	PublishOrder(ctx context.Context, order domain.Order) error
}

type MarkerCache interface {
	SponsorshipKey(eventID string) string
	Exists(ctx context.Context, key string) (bool, error)
	SetMarker(ctx context.Context, key string) error
}

type OwnerAsserter interface {
	AssertOwner(principal *domain.User, restaurantID string) (*domain.Restaurant, error)
}

type RestaurantServiceInterface interface {
	Create(principal *domain.User, req CreateRestaurantRequest) (*domain.Restaurant, error)
	List(principal *domain.User, skip, size int) ([]domain.Restaurant, int, error)
	Get(id string) (*domain.Restaurant, error)
	Update(principal *domain.User, id string, req UpdateRestaurantRequest) (*domain.Restaurant, error)
	Delete(principal *domain.User, id string) error
}

type ProductServiceInterface interface {
	Create(principal *domain.User, req CreateProductRequest) (*domain.Product, error)
	List(restaurantID string, skip, size int) ([]domain.Product, int, error)
	Get(id string) (*domain.Product, error)
	Update(principal *domain.User, id string, req UpdateProductRequest) (*domain.Product, error)
	Delete(principal *domain.User, id string) error
}

type MenuServiceInterface interface {
	Create(principal *domain.User, req CreateMenuRequest) (*domain.Menu, error)
	List(restaurantID string, skip, size int) ([]domain.Menu, int, error)
	Get(id string) (*domain.Menu, error)
	Update(principal *domain.User, id string, req UpdateMenuRequest) (*domain.Menu, error)
	Delete(principal *domain.User, id string) error
}

type OrderServiceInterface interface {
	Place(ctx context.Context, client *domain.User, req PlaceOrderRequest) (*domain.Order, error)
}

type CouponServiceInterface interface {
	List(skip, size int) ([]domain.Coupon, int, error)
	Get(id string) (*domain.Coupon, error)
	GetByUser(userID string) (*domain.Coupon, error)
	Redeem(principal *domain.User, id string) (*domain.Coupon, error)
	IssueSponsorshipPair(sponsor, sponsored domain.User) (*domain.Coupon, *domain.Coupon, error)
	QRCode(id string) ([]byte, error)
}
