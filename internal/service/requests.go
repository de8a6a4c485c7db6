package service

import "goodfood-shop/internal/domain"

// Request bodies are decoded into explicit schemas at the HTTP boundary so
// that missing or foreign fields never reach the business logic.

type CreateRestaurantRequest struct {
	Name         string                `json:"name"`
	Description  string                `json:"description"`
	Address      string                `json:"address"`
	Position     domain.Position       `json:"position"`
	OpeningHours []domain.OpeningHours `json:"openingHours"`
	Types        []string              `json:"types"`
}

// Pointer fields distinguish "absent" from zero values on PATCH.
type UpdateRestaurantRequest struct {
	Name         *string                `json:"name"`
	Description  *string                `json:"description"`
	Address      *string                `json:"address"`
	Position     *domain.Position       `json:"position"`
	OpeningHours *[]domain.OpeningHours `json:"openingHours"`
	Types        *[]string              `json:"types"`
	IsClosed     *bool                  `json:"isClosed"`
}

type CreateProductRequest struct {
	RestaurantID string  `json:"restaurant"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Description  string  `json:"description"`
	Image        string  `json:"image"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
}

type CreateMenuRequest struct {
	RestaurantID string   `json:"restaurant"`
	Name         string   `json:"name"`
	Price        float64  `json:"price"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Products     []string `json:"products"`
}

type UpdateMenuRequest struct {
	Name        *string   `json:"name"`
	Price       *float64  `json:"price"`
	Description *string   `json:"description"`
	Image       *string   `json:"image"`
	Products    *[]string `json:"products"`
}

type PlaceOrderRequest struct {
	RestaurantID string          `json:"restaurant"`
	Products     []string        `json:"products"`
	Menus        []string        `json:"menus"`
	Coupon       string          `json:"coupon"`
	Comment      string          `json:"comment"`
	Address      string          `json:"address"`
	Position     domain.Position `json:"position"`
}
