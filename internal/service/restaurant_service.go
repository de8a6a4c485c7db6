package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"goodfood-shop/internal/domain"
)

type RestaurantService struct {
	restaurants RestaurantRepository
	guard       OwnerAsserter
}

func NewRestaurantService(restaurants RestaurantRepository, guard OwnerAsserter) *RestaurantService {
	return &RestaurantService{restaurants: restaurants, guard: guard}
}

func (s *RestaurantService) Create(principal *domain.User, req CreateRestaurantRequest) (*domain.Restaurant, error) {
	if principal == nil {
		return nil, ErrUnauthenticated
	}
	if principal.Role != domain.RoleRestaurateur {
		return nil, ErrRoleForbidden
	}

	existing, err := s.restaurants.GetRestaurantByOwner(principal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing restaurant: %w", err)
	}
	if existing != nil {
		return nil, ErrRestaurantExists
	}

	rest := &domain.Restaurant{
		ID:           uuid.NewString(),
		Owner:        *principal,
		Name:         req.Name,
		Description:  req.Description,
		Address:      req.Address,
		Position:     req.Position,
		OpeningHours: req.OpeningHours,
		Types:        req.Types,
		IsClosed:     false,
		CreatedAt:    time.Now(),
	}
	if err := s.restaurants.CreateRestaurant(rest); err != nil {
		return nil, err
	}
	return rest, nil
}

// List is role-filtered: a restaurateur only sees their own restaurant.
func (s *RestaurantService) List(principal *domain.User, skip, size int) ([]domain.Restaurant, int, error) {
	ownerID := ""
	if principal != nil && principal.Role == domain.RoleRestaurateur {
		ownerID = principal.ID
	}
	return s.restaurants.ListRestaurants(ownerID, skip, size)
}

func (s *RestaurantService) Get(id string) (*domain.Restaurant, error) {
	rest, err := s.restaurants.GetRestaurant(id)
	if err != nil {
		return nil, err
	}
	if rest == nil {
		return nil, ErrRestaurantNotFound
	}
	return rest, nil
}

func (s *RestaurantService) Update(principal *domain.User, id string, req UpdateRestaurantRequest) (*domain.Restaurant, error) {
	rest, err := s.guard.AssertOwner(principal, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		rest.Name = *req.Name
	}
	if req.Description != nil {
		rest.Description = *req.Description
	}
	if req.Address != nil {
		rest.Address = *req.Address
	}
	if req.Position != nil {
		rest.Position = *req.Position
	}
	if req.OpeningHours != nil {
		rest.OpeningHours = *req.OpeningHours
	}
	if req.Types != nil {
		rest.Types = *req.Types
	}
	if req.IsClosed != nil {
		rest.IsClosed = *req.IsClosed
	}

	rows, err := s.restaurants.UpdateRestaurant(rest)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrRestaurantNotFound
	}
	return rest, nil
}

// Delete removes the restaurant together with its products and menus in one
// transaction.
func (s *RestaurantService) Delete(principal *domain.User, id string) error {
	rest, err := s.guard.AssertOwner(principal, id)
	if err != nil {
		return err
	}
	rows, err := s.restaurants.DeleteRestaurantCascade(rest.ID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrRestaurantNotFound
	}
	return nil
}

var _ RestaurantServiceInterface = (*RestaurantService)(nil)
