package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"goodfood-shop/internal/service"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type Handler struct {
	Restaurants service.RestaurantServiceInterface
	Products    service.ProductServiceInterface
	Menus       service.MenuServiceInterface
	Orders      service.OrderServiceInterface
	Coupons     service.CouponServiceInterface
}

func NewHandler(restSvc service.RestaurantServiceInterface, productSvc service.ProductServiceInterface, menuSvc service.MenuServiceInterface, orderSvc service.OrderServiceInterface, couponSvc service.CouponServiceInterface) *Handler {
	return &Handler{
		Restaurants: restSvc,
		Products:    productSvc,
		Menus:       menuSvc,
		Orders:      orderSvc,
		Coupons:     couponSvc,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/restaurants", h.createRestaurant).Methods("POST")
	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.updateRestaurant).Methods("PATCH")
	r.HandleFunc("/api/restaurants/{id}", h.deleteRestaurant).Methods("DELETE")

	r.HandleFunc("/api/products", h.createProduct).Methods("POST")
	r.HandleFunc("/api/products", h.getProducts).Methods("GET")
	r.HandleFunc("/api/products/{id}", h.getProduct).Methods("GET")
	r.HandleFunc("/api/products/{id}", h.updateProduct).Methods("PATCH")
	r.HandleFunc("/api/products/{id}", h.deleteProduct).Methods("DELETE")

	r.HandleFunc("/api/menus", h.createMenu).Methods("POST")
	r.HandleFunc("/api/menus", h.getMenus).Methods("GET")
	r.HandleFunc("/api/menus/{id}", h.getMenu).Methods("GET")
	r.HandleFunc("/api/menus/{id}", h.updateMenu).Methods("PATCH")
	r.HandleFunc("/api/menus/{id}", h.deleteMenu).Methods("DELETE")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")

	r.HandleFunc("/api/coupons", h.getCoupons).Methods("GET")
	r.HandleFunc("/api/coupons/user/{id}", h.getUserCoupon).Methods("GET")
	r.HandleFunc("/api/coupons/{id}", h.getCoupon).Methods("GET")
	r.HandleFunc("/api/coupons/{id}", h.useCoupon).Methods("POST")
	r.HandleFunc("/api/coupons/{id}/qrcode", h.getCouponQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":    "ok",
		"service":   "shop-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

type listResponse struct {
	Count   int `json:"count"`
	Results any `json:"results"`
}

func pagination(r *http.Request) (skip, size int) {
	skip, _ = strconv.Atoi(r.URL.Query().Get("skip"))
	if skip < 0 {
		skip = 0
	}
	size, _ = strconv.Atoi(r.URL.Query().Get("size"))
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return skip, size
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrRoleForbidden),
		errors.Is(err, service.ErrForbidden),
		errors.Is(err, service.ErrNotOwner),
		errors.Is(err, service.ErrCouponNotYours):
		return http.StatusForbidden
	case errors.Is(err, service.ErrRestaurantNotFound),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrMenuNotFound),
		errors.Is(err, service.ErrCouponNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrRestaurantExists),
		errors.Is(err, service.ErrProductInUse):
		return http.StatusConflict
	case errors.Is(err, service.ErrProductNotFromRestaurant),
		errors.Is(err, service.ErrMenuNotFromRestaurant),
		errors.Is(err, service.ErrNegativePrice),
		errors.Is(err, service.ErrCouponAlreadyUsed):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), statusForError(err))
}

// isCompositionError reports referential failures that are client mistakes
// on composite bodies: they map to 400 rather than 404.
func isCompositionError(err error) bool {
	return errors.Is(err, service.ErrProductNotFound) ||
		errors.Is(err, service.ErrProductNotFromRestaurant) ||
		errors.Is(err, service.ErrMenuNotFound) ||
		errors.Is(err, service.ErrMenuNotFromRestaurant)
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var req service.CreateRestaurantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rest, err := h.Restaurants.Create(Principal(r), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rest)
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	skip, size := pagination(r)
	restaurants, count, err := h.Restaurants.List(Principal(r), skip, size)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Count: count, Results: restaurants})
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	rest, err := h.Restaurants.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateRestaurantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rest, err := h.Restaurants.Update(Principal(r), mux.Vars(r)["id"], req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) deleteRestaurant(w http.ResponseWriter, r *http.Request) {
	if err := h.Restaurants.Delete(Principal(r), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req service.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	product, err := h.Products.Create(Principal(r), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, product)
}

func (h *Handler) getProducts(w http.ResponseWriter, r *http.Request) {
	skip, size := pagination(r)
	products, count, err := h.Products.List(r.URL.Query().Get("restaurant"), skip, size)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Count: count, Results: products})
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.Products.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	product, err := h.Products.Update(Principal(r), mux.Vars(r)["id"], req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.Products.Delete(Principal(r), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createMenu(w http.ResponseWriter, r *http.Request) {
	var req service.CreateMenuRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	menu, err := h.Menus.Create(Principal(r), req)
	if err != nil {
		if isCompositionError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, menu)
}

func (h *Handler) getMenus(w http.ResponseWriter, r *http.Request) {
	skip, size := pagination(r)
	menus, count, err := h.Menus.List(r.URL.Query().Get("restaurant"), skip, size)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Count: count, Results: menus})
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	menu, err := h.Menus.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, menu)
}

func (h *Handler) updateMenu(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateMenuRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	menu, err := h.Menus.Update(Principal(r), mux.Vars(r)["id"], req)
	if err != nil {
		if errors.Is(err, service.ErrMenuNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		if isCompositionError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, menu)
}

func (h *Handler) deleteMenu(w http.ResponseWriter, r *http.Request) {
	if err := h.Menus.Delete(Principal(r), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req service.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	order, err := h.Orders.Place(r.Context(), Principal(r), req)
	if err != nil {
		if isCompositionError(err) || errors.Is(err, service.ErrCouponNotFound) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getCoupons(w http.ResponseWriter, r *http.Request) {
	skip, size := pagination(r)
	coupons, count, err := h.Coupons.List(skip, size)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Count: count, Results: coupons})
}

func (h *Handler) getCoupon(w http.ResponseWriter, r *http.Request) {
	coupon, err := h.Coupons.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, coupon)
}

func (h *Handler) getUserCoupon(w http.ResponseWriter, r *http.Request) {
	coupon, err := h.Coupons.GetByUser(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, coupon)
}

func (h *Handler) useCoupon(w http.ResponseWriter, r *http.Request) {
	coupon, err := h.Coupons.Redeem(Principal(r), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, coupon)
}

func (h *Handler) getCouponQRCode(w http.ResponseWriter, r *http.Request) {
	qr, err := h.Coupons.QRCode(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	if len(qr) == 0 {
		http.Error(w, "QR code not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}
