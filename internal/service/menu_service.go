package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"goodfood-shop/internal/domain"
)

type MenuService struct {
	menus    MenuRepository
	products ProductRepository
	guard    OwnerAsserter
}

func NewMenuService(menus MenuRepository, products ProductRepository, guard OwnerAsserter) *MenuService {
	return &MenuService{menus: menus, products: products, guard: guard}
}

// resolveSnapshots batch-fetches the requested products, verifies each one
// belongs to the restaurant and returns full copies in request order. An
// empty id list is allowed and yields an empty menu.
func (s *MenuService) resolveSnapshots(restaurantID string, productIDs []string) ([]domain.Product, error) {
	if len(productIDs) == 0 {
		return []domain.Product{}, nil
	}

	found, err := s.products.GetProductsByIDs(productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	byID := make(map[string]domain.Product, len(found))
	for _, product := range found {
		byID[product.ID] = product
	}

	snapshots := make([]domain.Product, 0, len(productIDs))
	for _, id := range productIDs {
		product, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, id)
		}
		if product.RestaurantID != restaurantID {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFromRestaurant, id)
		}
		snapshots = append(snapshots, product)
	}
	return snapshots, nil
}

func (s *MenuService) Create(principal *domain.User, req CreateMenuRequest) (*domain.Menu, error) {
	rest, err := s.guard.AssertOwner(principal, req.RestaurantID)
	if err != nil {
		return nil, err
	}

	snapshots, err := s.resolveSnapshots(rest.ID, req.Products)
	if err != nil {
		return nil, err
	}

	menu := &domain.Menu{
		ID:           uuid.NewString(),
		RestaurantID: rest.ID,
		Name:         req.Name,
		Price:        req.Price,
		Description:  req.Description,
		Image:        req.Image,
		Products:     snapshots,
		CreatedAt:    time.Now(),
	}
	if err := s.menus.CreateMenu(menu); err != nil {
		return nil, err
	}
	return menu, nil
}

func (s *MenuService) List(restaurantID string, skip, size int) ([]domain.Menu, int, error) {
	return s.menus.ListMenus(restaurantID, skip, size)
}

func (s *MenuService) Get(id string) (*domain.Menu, error) {
	menu, err := s.menus.GetMenu(id)
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, ErrMenuNotFound
	}
	return menu, nil
}

// Update re-runs the full referential validation whenever a products list is
// supplied: every id in the new set must resolve and belong to the menu's
// restaurant before the embedded snapshots are overwritten.
func (s *MenuService) Update(principal *domain.User, id string, req UpdateMenuRequest) (*domain.Menu, error) {
	rest, err := s.guard.AssertOwner(principal, "")
	if err != nil {
		return nil, err
	}

	menu, err := s.menus.GetMenu(id)
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, ErrMenuNotFound
	}
	if menu.RestaurantID != rest.ID {
		return nil, ErrForbidden
	}

	if req.Name != nil {
		menu.Name = *req.Name
	}
	if req.Price != nil {
		menu.Price = *req.Price
	}
	if req.Description != nil {
		menu.Description = *req.Description
	}
	if req.Image != nil {
		menu.Image = *req.Image
	}
	if req.Products != nil {
		snapshots, err := s.resolveSnapshots(rest.ID, *req.Products)
		if err != nil {
			return nil, err
		}
		menu.Products = snapshots
	}

	rows, err := s.menus.UpdateMenu(menu)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrMenuNotFound
	}
	return menu, nil
}

func (s *MenuService) Delete(principal *domain.User, id string) error {
	rest, err := s.guard.AssertOwner(principal, "")
	if err != nil {
		return err
	}
	rows, err := s.menus.DeleteMenu(id, rest.ID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrMenuNotFound
	}
	return nil
}

var _ MenuServiceInterface = (*MenuService)(nil)
