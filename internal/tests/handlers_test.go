package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpapi "goodfood-shop/internal/api/http"
	"goodfood-shop/internal/domain"
	"goodfood-shop/internal/mocks"
	"goodfood-shop/internal/service"
)

type handlerMocks struct {
	restaurants *mocks.RestaurantServiceInterface
	products    *mocks.ProductServiceInterface
	menus       *mocks.MenuServiceInterface
	orders      *mocks.OrderServiceInterface
	coupons     *mocks.CouponServiceInterface
}

func setupTestRouter(t *testing.T) (handlerMocks, http.Handler) {
	m := handlerMocks{
		restaurants: mocks.NewRestaurantServiceInterface(t),
		products:    mocks.NewProductServiceInterface(t),
		menus:       mocks.NewMenuServiceInterface(t),
		orders:      mocks.NewOrderServiceInterface(t),
		coupons:     mocks.NewCouponServiceInterface(t),
	}
	handler := &httpapi.Handler{
		Restaurants: m.restaurants,
		Products:    m.products,
		Menus:       m.menus,
		Orders:      m.orders,
		Coupons:     m.coupons,
	}
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return m, httpapi.WithPrincipal(r)
}

func asUser(req *http.Request, user domain.User) *http.Request {
	raw, _ := json.Marshal(user)
	req.Header.Set("X-User", string(raw))
	return req
}

func TestHandler_createOrder(t *testing.T) {
	clientUser := domain.User{ID: "c1", Role: domain.RoleClient}

	tests := []struct {
		name         string
		payload      string
		anonymous    bool
		prepareMocks func(m handlerMocks)
		expectedCode int
		expectedBody string
	}{
		{
			name:    "success",
			payload: `{"restaurant":"R1","products":["P1"],"menus":[]}`,
			prepareMocks: func(m handlerMocks) {
				m.orders.On("Place", mock.Anything, mock.Anything, mock.Anything).
					Return(&domain.Order{Price: 10, DeliveryPrice: 5, CommissionPrice: 3}, nil).Once()
			},
			expectedCode: http.StatusCreated,
			expectedBody: `"deliveryPrice":5`,
		},
		{
			name:         "invalid_json",
			payload:      `bad json`,
			prepareMocks: func(m handlerMocks) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "restaurant_not_found",
			payload: `{"restaurant":"nope"}`,
			prepareMocks: func(m handlerMocks) {
				m.orders.On("Place", mock.Anything, mock.Anything, mock.Anything).
					Return(nil, service.ErrRestaurantNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:    "foreign_product_is_bad_request",
			payload: `{"restaurant":"R1","products":["P2"]}`,
			prepareMocks: func(m handlerMocks) {
				m.orders.On("Place", mock.Anything, mock.Anything, mock.Anything).
					Return(nil, service.ErrProductNotFromRestaurant).Once()
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "unknown_coupon_is_bad_request",
			payload: `{"restaurant":"R1","coupon":"nope"}`,
			prepareMocks: func(m handlerMocks) {
				m.orders.On("Place", mock.Anything, mock.Anything, mock.Anything).
					Return(nil, service.ErrCouponNotFound).Once()
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "anonymous",
			payload:   `{"restaurant":"R1"}`,
			anonymous: true,
			prepareMocks: func(m handlerMocks) {
				m.orders.On("Place", mock.Anything, (*domain.User)(nil), mock.Anything).
					Return(nil, service.ErrUnauthenticated).Once()
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			m, router := setupTestRouter(t)
			testCase.prepareMocks(m)

			req := httptest.NewRequest("POST", "/api/orders", bytes.NewBufferString(testCase.payload))
			if !testCase.anonymous {
				req = asUser(req, clientUser)
			}
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_restaurants(t *testing.T) {
	owner := domain.User{ID: "u1", Role: domain.RoleRestaurateur}

	t.Run("create", func(t *testing.T) {
		m, router := setupTestRouter(t)
		m.restaurants.On("Create", mock.MatchedBy(func(user *domain.User) bool {
			return user != nil && user.ID == "u1"
		}), mock.Anything).Return(&domain.Restaurant{ID: "R1", Name: "Chez Jean"}, nil).Once()

		req := asUser(httptest.NewRequest("POST", "/api/restaurants",
			bytes.NewBufferString(`{"name":"Chez Jean","address":"1 rue"}`)), owner)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"Chez Jean"`)
	})

	t.Run("create_second_restaurant_conflict", func(t *testing.T) {
		m, router := setupTestRouter(t)
		m.restaurants.On("Create", mock.Anything, mock.Anything).
			Return(nil, service.ErrRestaurantExists).Once()

		req := asUser(httptest.NewRequest("POST", "/api/restaurants",
			bytes.NewBufferString(`{"name":"Second"}`)), owner)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	t.Run("list_paginated", func(t *testing.T) {
		m, router := setupTestRouter(t)
		m.restaurants.On("List", (*domain.User)(nil), 5, 2).
			Return([]domain.Restaurant{{ID: "R1"}, {ID: "R2"}}, 7, nil).Once()

		req := httptest.NewRequest("GET", "/api/restaurants?skip=5&size=2", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var body struct {
			Count   int                 `json:"count"`
			Results []domain.Restaurant `json:"results"`
		}
		json.NewDecoder(recorder.Body).Decode(&body)
		assert.Equal(t, 7, body.Count)
		assert.Len(t, body.Results, 2)
	})

	t.Run("get_not_found", func(t *testing.T) {
		m, router := setupTestRouter(t)
		m.restaurants.On("Get", "nope").Return(nil, service.ErrRestaurantNotFound).Once()

		req := httptest.NewRequest("GET", "/api/restaurants/nope", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("patch_forbidden", func(t *testing.T) {
		m, router := setupTestRouter(t)
		m.restaurants.On("Update", mock.Anything, "R2", mock.Anything).
			Return(nil, service.ErrForbidden).Once()

		req := asUser(httptest.NewRequest("PATCH", "/api/restaurants/R2",
			bytes.NewBufferString(`{"name":"hijack"}`)), owner)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("delete", func(t *testing.T) {
		m, router := setupTestRouter(t)
		m.restaurants.On("Delete", mock.Anything, "R1").Return(nil).Once()

		req := asUser(httptest.NewRequest("DELETE", "/api/restaurants/R1", nil), owner)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})
}

func TestHandler_menus(t *testing.T) {
	owner := domain.User{ID: "u1", Role: domain.RoleRestaurateur}

	t.Run("create_with_unknown_product_is_bad_request", func(t *testing.T) {
		m, router := setupTestRouter(t)
		m.menus.On("Create", mock.Anything, mock.Anything).
			Return(nil, service.ErrProductNotFound).Once()

		req := asUser(httptest.NewRequest("POST", "/api/menus",
			bytes.NewBufferString(`{"restaurant":"R1","name":"Deal","products":["missing"]}`)), owner)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("create", func(t *testing.T) {
		m, router := setupTestRouter(t)
		m.menus.On("Create", mock.Anything, mock.Anything).
			Return(&domain.Menu{ID: "M1", Name: "Deal"}, nil).Once()

		req := asUser(httptest.NewRequest("POST", "/api/menus",
			bytes.NewBufferString(`{"restaurant":"R1","name":"Deal","products":["P1"]}`)), owner)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	t.Run("patch_unknown_menu_is_not_found", func(t *testing.T) {
		m, router := setupTestRouter(t)
		m.menus.On("Update", mock.Anything, "nope", mock.Anything).
			Return(nil, service.ErrMenuNotFound).Once()

		req := asUser(httptest.NewRequest("PATCH", "/api/menus/nope",
			bytes.NewBufferString(`{"name":"x"}`)), owner)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestHandler_products_deleteConflict(t *testing.T) {
	owner := domain.User{ID: "u1", Role: domain.RoleRestaurateur}
	m, router := setupTestRouter(t)
	m.products.On("Delete", mock.Anything, "P1").Return(service.ErrProductInUse).Once()

	req := asUser(httptest.NewRequest("DELETE", "/api/products/P1", nil), owner)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestHandler_coupons(t *testing.T) {
	holder := domain.User{ID: "c1", Role: domain.RoleClient}

	t.Run("redeem", func(t *testing.T) {
		m, router := setupTestRouter(t)
		m.coupons.On("Redeem", mock.MatchedBy(func(user *domain.User) bool {
			return user != nil && user.ID == "c1"
		}), "C1").Return(&domain.Coupon{ID: "C1", IsUsed: true}, nil).Once()

		req := asUser(httptest.NewRequest("POST", "/api/coupons/C1", nil), holder)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"isUsed":true`)
	})

	t.Run("redeem_not_yours", func(t *testing.T) {
		m, router := setupTestRouter(t)
		m.coupons.On("Redeem", mock.Anything, "C1").
			Return(nil, service.ErrCouponNotYours).Once()

		req := asUser(httptest.NewRequest("POST", "/api/coupons/C1", nil), holder)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("redeem_already_used", func(t *testing.T) {
		m, router := setupTestRouter(t)
		m.coupons.On("Redeem", mock.Anything, "C1").
			Return(nil, service.ErrCouponAlreadyUsed).Once()

		req := asUser(httptest.NewRequest("POST", "/api/coupons/C1", nil), holder)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("qrcode", func(t *testing.T) {
		m, router := setupTestRouter(t)
		m.coupons.On("QRCode", "C1").Return([]byte("png-bytes"), nil).Once()

		req := httptest.NewRequest("GET", "/api/coupons/C1/qrcode", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "image/png", recorder.Header().Get("Content-Type"))
	})

	t.Run("qrcode_unknown_coupon_is_not_found", func(t *testing.T) {
		m, router := setupTestRouter(t)
		m.coupons.On("QRCode", "ghost").Return(nil, service.ErrCouponNotFound).Once()

		req := httptest.NewRequest("GET", "/api/coupons/ghost/qrcode", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("user_coupon", func(t *testing.T) {
		m, router := setupTestRouter(t)
		m.coupons.On("GetByUser", "c1").
			Return(&domain.Coupon{ID: "C1", User: holder}, nil).Once()

		req := httptest.NewRequest("GET", "/api/coupons/user/c1", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}
