package service

import "errors"

var (
	ErrUnauthenticated = errors.New("no authenticated user attached to request")
	ErrRoleForbidden   = errors.New("user role is not allowed to perform this action")

	ErrNotOwner  = errors.New("user does not own a restaurant")
	ErrForbidden = errors.New("restaurant is not owned by this user")

	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrRestaurantExists   = errors.New("user already owns a restaurant")

	ErrProductNotFound          = errors.New("one or more product(s) were not found")
	ErrProductNotFromRestaurant = errors.New("one or more product(s) are not sold by this restaurant")
	ErrProductInUse             = errors.New("product is still embedded in one or more menu(s)")
	ErrNegativePrice            = errors.New("price must not be negative")

	ErrMenuNotFound          = errors.New("one or more menu(s) were not found")
	ErrMenuNotFromRestaurant = errors.New("one or more menu(s) are not sold by this restaurant")

	ErrCouponNotFound    = errors.New("coupon not found")
	ErrCouponNotYours    = errors.New("coupon is not yours")
	ErrCouponAlreadyUsed = errors.New("coupon has already been used")
)
