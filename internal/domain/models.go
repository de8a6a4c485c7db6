package domain

import "time"

const (
	RoleRestaurateur = "restaurateur"
	RoleClient       = "client"
	RoleDeliverer    = "deliverer"
)

// User is the principal snapshot attached to requests by the auth gateway
// and embedded into restaurants and coupons.
type User struct {
	ID        string `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
}

type Position struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

type OpeningHours struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type Restaurant struct {
	ID           string         `json:"id"`
	Owner        User           `json:"owner"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Address      string         `json:"address"`
	Position     Position       `json:"position"`
	OpeningHours []OpeningHours `json:"openingHours"`
	Types        []string       `json:"types"`
	IsClosed     bool           `json:"isClosed"`
	CouponDate   *time.Time     `json:"couponDate,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

type Product struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	CreatedAt    time.Time `json:"created_at"`
}

// Menu embeds full product snapshots rather than references. Snapshots are
// refreshed when the underlying product is edited.
type Menu struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	Products     []Product `json:"products"`
	CreatedAt    time.Time `json:"created_at"`
}

type Coupon struct {
	ID     string     `json:"id"`
	User   User       `json:"user"`
	Coupon string     `json:"coupon"`
	Date   *time.Time `json:"date,omitempty"`
	IsUsed bool       `json:"isUsed"`
}

// Order is never persisted: it is priced, returned to the caller and
// published to the orders topic in the same shape.
type Order struct {
	Restaurant      Restaurant `json:"restaurant"`
	Products        []Product  `json:"products"`
	Menus           []Menu     `json:"menus"`
	Coupon          string     `json:"coupon,omitempty"`
	Price           float64    `json:"price"`
	DeliveryPrice   float64    `json:"deliveryPrice"`
	CommissionPrice float64    `json:"commissionPrice"`
	Client          User       `json:"client"`
	Comment         string     `json:"comment"`
	Address         string     `json:"address"`
	Position        Position   `json:"position"`
	DeliveryDate    string     `json:"deliveryDate"`
	CreatedAt       time.Time  `json:"created_at"`
}

// Sponsorship is the payload carried on the sponsor.sponsorship.* topics.
type Sponsorship struct {
	ID        string `json:"id"`
	Sponsor   User   `json:"sponsor"`
	Sponsored User   `json:"sponsored"`
}
