package service

import "goodfood-shop/internal/domain"

// OwnershipGuard answers "does this user own that restaurant". It is a
// read-only check: the mutations it gates are themselves conditional writes
// keyed on the owning restaurant, so a stale answer cannot corrupt state.
type OwnershipGuard struct {
	restaurants RestaurantRepository
}

func NewOwnershipGuard(restaurants RestaurantRepository) *OwnershipGuard {
	return &OwnershipGuard{restaurants: restaurants}
}

// AssertOwner resolves the restaurant owned by principal. When restaurantID
// is non-empty it must match the resolved restaurant.
func (g *OwnershipGuard) AssertOwner(principal *domain.User, restaurantID string) (*domain.Restaurant, error) {
	if principal == nil {
		return nil, ErrUnauthenticated
	}
	rest, err := g.restaurants.GetRestaurantByOwner(principal.ID)
	if err != nil {
		return nil, err
	}
	if rest == nil {
		return nil, ErrNotOwner
	}
	if restaurantID != "" && rest.ID != restaurantID {
		return nil, ErrForbidden
	}
	return rest, nil
}

var _ OwnerAsserter = (*OwnershipGuard)(nil)
