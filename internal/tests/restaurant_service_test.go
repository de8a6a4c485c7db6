package tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"goodfood-shop/internal/domain"
	"goodfood-shop/internal/mocks"
	"goodfood-shop/internal/service"
)

func TestRestaurantService_Create(t *testing.T) {
	restaurateur := &domain.User{ID: "u1", Firstname: "Jean", Role: domain.RoleRestaurateur}

	tests := []struct {
		name         string
		principal    *domain.User
		prepareMocks func(repo *mocks.RestaurantRepository)
		expectedErr  error
	}{
		{
			name:      "success",
			principal: restaurateur,
			prepareMocks: func(repo *mocks.RestaurantRepository) {
				repo.On("GetRestaurantByOwner", "u1").Return(nil, nil).Once()
				repo.On("CreateRestaurant", mock.MatchedBy(func(rest *domain.Restaurant) bool {
					return rest.ID != "" && rest.Owner.ID == "u1" && !rest.IsClosed
				})).Return(nil).Once()
			},
		},
		{
			name:         "anonymous",
			principal:    nil,
			prepareMocks: func(repo *mocks.RestaurantRepository) {},
			expectedErr:  service.ErrUnauthenticated,
		},
		{
			name:         "wrong_role",
			principal:    &domain.User{ID: "u2", Role: domain.RoleClient},
			prepareMocks: func(repo *mocks.RestaurantRepository) {},
			expectedErr:  service.ErrRoleForbidden,
		},
		{
			name:      "already_owns_one",
			principal: restaurateur,
			prepareMocks: func(repo *mocks.RestaurantRepository) {
				repo.On("GetRestaurantByOwner", "u1").
					Return(&domain.Restaurant{ID: "r1"}, nil).Once()
			},
			expectedErr: service.ErrRestaurantExists,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewRestaurantRepository(t)
			testCase.prepareMocks(repo)

			svc := service.NewRestaurantService(repo, service.NewOwnershipGuard(repo))
			rest, err := svc.Create(testCase.principal, service.CreateRestaurantRequest{Name: "Chez Jean"})

			if testCase.expectedErr != nil {
				assert.ErrorIs(t, err, testCase.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "Chez Jean", rest.Name)
			assert.Equal(t, *testCase.principal, rest.Owner)
		})
	}
}

func TestRestaurantService_List_RoleFiltered(t *testing.T) {
	repo := mocks.NewRestaurantRepository(t)
	svc := service.NewRestaurantService(repo, service.NewOwnershipGuard(repo))

	restaurateur := &domain.User{ID: "u1", Role: domain.RoleRestaurateur}
	repo.On("ListRestaurants", "u1", 0, 20).
		Return([]domain.Restaurant{{ID: "r1"}}, 1, nil).Once()

	results, count, err := svc.List(restaurateur, 0, 20)
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Len(t, results, 1)

	// Clients and anonymous callers see everything.
	repo.On("ListRestaurants", "", 0, 20).
		Return([]domain.Restaurant{{ID: "r1"}, {ID: "r2"}}, 2, nil).Twice()

	_, count, err = svc.List(&domain.User{ID: "u2", Role: domain.RoleClient}, 0, 20)
	assert.NoError(t, err)
	assert.Equal(t, 2, count)

	_, count, err = svc.List(nil, 0, 20)
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRestaurantService_Update(t *testing.T) {
	owner := &domain.User{ID: "u1", Role: domain.RoleRestaurateur}
	name := "Renamed"
	closed := true

	repo := mocks.NewRestaurantRepository(t)
	repo.On("GetRestaurantByOwner", "u1").
		Return(&domain.Restaurant{ID: "r1", Owner: *owner, Name: "Old", Address: "1 rue"}, nil).Once()
	repo.On("UpdateRestaurant", mock.MatchedBy(func(rest *domain.Restaurant) bool {
		return rest.ID == "r1" && rest.Name == "Renamed" && rest.IsClosed && rest.Address == "1 rue"
	})).Return(int64(1), nil).Once()

	svc := service.NewRestaurantService(repo, service.NewOwnershipGuard(repo))
	rest, err := svc.Update(owner, "r1", service.UpdateRestaurantRequest{Name: &name, IsClosed: &closed})
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", rest.Name)
	assert.Equal(t, "1 rue", rest.Address)
}

func TestRestaurantService_Update_NotOwned(t *testing.T) {
	repo := mocks.NewRestaurantRepository(t)
	repo.On("GetRestaurantByOwner", "u1").
		Return(&domain.Restaurant{ID: "r1", Owner: domain.User{ID: "u1"}}, nil).Once()

	svc := service.NewRestaurantService(repo, service.NewOwnershipGuard(repo))
	_, err := svc.Update(&domain.User{ID: "u1"}, "r2", service.UpdateRestaurantRequest{})
	assert.ErrorIs(t, err, service.ErrForbidden)
}

func TestRestaurantService_Delete_Cascades(t *testing.T) {
	owner := &domain.User{ID: "u1", Role: domain.RoleRestaurateur}

	repo := mocks.NewRestaurantRepository(t)
	repo.On("GetRestaurantByOwner", "u1").
		Return(&domain.Restaurant{ID: "r1", Owner: *owner}, nil).Once()
	repo.On("DeleteRestaurantCascade", "r1").Return(int64(1), nil).Once()

	svc := service.NewRestaurantService(repo, service.NewOwnershipGuard(repo))
	assert.NoError(t, svc.Delete(owner, "r1"))
}
