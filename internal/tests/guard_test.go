package tests

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"goodfood-shop/internal/domain"
	"goodfood-shop/internal/mocks"
	"goodfood-shop/internal/service"
)

func TestOwnershipGuard_AssertOwner(t *testing.T) {
	owner := &domain.User{ID: "u1", Role: domain.RoleRestaurateur}
	owned := &domain.Restaurant{ID: "r1", Owner: *owner}

	tests := []struct {
		name         string
		principal    *domain.User
		restaurantID string
		prepareMocks func(repo *mocks.RestaurantRepository)
		expectedErr  error
	}{
		{
			name:         "success_matching_restaurant",
			principal:    owner,
			restaurantID: "r1",
			prepareMocks: func(repo *mocks.RestaurantRepository) {
				repo.On("GetRestaurantByOwner", "u1").Return(owned, nil).Once()
			},
		},
		{
			name:      "success_no_restaurant_id_supplied",
			principal: owner,
			prepareMocks: func(repo *mocks.RestaurantRepository) {
				repo.On("GetRestaurantByOwner", "u1").Return(owned, nil).Once()
			},
		},
		{
			name:         "anonymous",
			principal:    nil,
			restaurantID: "r1",
			prepareMocks: func(repo *mocks.RestaurantRepository) {},
			expectedErr:  service.ErrUnauthenticated,
		},
		{
			name:      "owns_no_restaurant",
			principal: &domain.User{ID: "u2", Role: domain.RoleRestaurateur},
			prepareMocks: func(repo *mocks.RestaurantRepository) {
				repo.On("GetRestaurantByOwner", "u2").Return(nil, nil).Once()
			},
			expectedErr: service.ErrNotOwner,
		},
		{
			name:         "owns_a_different_restaurant",
			principal:    owner,
			restaurantID: "r2",
			prepareMocks: func(repo *mocks.RestaurantRepository) {
				repo.On("GetRestaurantByOwner", "u1").Return(owned, nil).Once()
			},
			expectedErr: service.ErrForbidden,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewRestaurantRepository(t)
			testCase.prepareMocks(repo)

			guard := service.NewOwnershipGuard(repo)
			rest, err := guard.AssertOwner(testCase.principal, testCase.restaurantID)

			if testCase.expectedErr != nil {
				assert.ErrorIs(t, err, testCase.expectedErr)
				assert.Nil(t, rest)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "r1", rest.ID)
		})
	}
}
