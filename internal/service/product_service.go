package service

import (
	"log"
	"time"

	"github.com/google/uuid"

	"goodfood-shop/internal/domain"
)

type ProductService struct {
	products ProductRepository
	menus    MenuRepository
	guard    OwnerAsserter
}

func NewProductService(products ProductRepository, menus MenuRepository, guard OwnerAsserter) *ProductService {
	return &ProductService{products: products, menus: menus, guard: guard}
}

func (s *ProductService) Create(principal *domain.User, req CreateProductRequest) (*domain.Product, error) {
	rest, err := s.guard.AssertOwner(principal, req.RestaurantID)
	if err != nil {
		return nil, err
	}
	if req.Price < 0 {
		return nil, ErrNegativePrice
	}

	product := &domain.Product{
		ID:           uuid.NewString(),
		RestaurantID: rest.ID,
		Name:         req.Name,
		Price:        req.Price,
		Description:  req.Description,
		Image:        req.Image,
		CreatedAt:    time.Now(),
	}
	if err := s.products.CreateProduct(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) List(restaurantID string, skip, size int) ([]domain.Product, int, error) {
	return s.products.ListProducts(restaurantID, skip, size)
}

func (s *ProductService) Get(id string) (*domain.Product, error) {
	product, err := s.products.GetProduct(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Update edits the product and then refreshes the snapshot embedded in every
// menu of the same restaurant. Each menu is saved independently: a failed
// re-save is logged and does not block the others.
func (s *ProductService) Update(principal *domain.User, id string, req UpdateProductRequest) (*domain.Product, error) {
	rest, err := s.guard.AssertOwner(principal, "")
	if err != nil {
		return nil, err
	}

	product, err := s.products.GetProduct(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if product.RestaurantID != rest.ID {
		return nil, ErrForbidden
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, ErrNegativePrice
		}
		product.Price = *req.Price
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Image != nil {
		product.Image = *req.Image
	}

	rows, err := s.products.UpdateProduct(product)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrProductNotFound
	}

	s.propagate(product)
	return product, nil
}

func (s *ProductService) propagate(product *domain.Product) {
	menus, err := s.menus.ListMenusEmbedding(product.RestaurantID, product.ID)
	if err != nil {
		log.Printf("Failed to list menus embedding product %s: %v", product.ID, err)
		return
	}
	for _, menu := range menus {
		changed := false
		for i, snapshot := range menu.Products {
			if snapshot.ID == product.ID && snapshot.RestaurantID == product.RestaurantID {
				menu.Products[i] = *product
				changed = true
			}
		}
		if !changed {
			continue
		}
		if err := s.menus.ReplaceSnapshots(menu.ID, menu.Products); err != nil {
			log.Printf("Failed to refresh snapshots in menu %s: %v", menu.ID, err)
		}
	}
}

func (s *ProductService) Delete(principal *domain.User, id string) error {
	rest, err := s.guard.AssertOwner(principal, "")
	if err != nil {
		return err
	}

	count, err := s.menus.CountMenusEmbedding(rest.ID, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrProductInUse
	}

	rows, err := s.products.DeleteProduct(id, rest.ID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrProductNotFound
	}
	return nil
}

var _ ProductServiceInterface = (*ProductService)(nil)
