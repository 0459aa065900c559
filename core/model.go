package core

import "time"

// OrderStatus represents the delivery lifecycle state of an order
type OrderStatus string

const (
	// StatusPending indicates the order was placed but not yet paid/accepted
	StatusPending OrderStatus = "PENDING"

	// StatusConfirmed indicates payment succeeded
	StatusConfirmed OrderStatus = "CONFIRMED"

	// StatusPreparing indicates the restaurant accepted the order
	StatusPreparing OrderStatus = "PREPARING"

	// StatusOutForDelivery indicates a delivery agent picked the order up
	StatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"

	// StatusDelivered is terminal
	StatusDelivered OrderStatus = "DELIVERED"

	// StatusCancelled is terminal, reachable from any non-terminal state
	StatusCancelled OrderStatus = "CANCELLED"
)

// IsTerminal returns true if no further transition is allowed
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// forward edges of the lifecycle graph
var nextStatus = map[OrderStatus]OrderStatus{
	StatusPending:        StatusConfirmed,
	StatusConfirmed:      StatusPreparing,
	StatusPreparing:      StatusOutForDelivery,
	StatusOutForDelivery: StatusDelivered,
}

// CanTransitionTo reports whether the lifecycle graph permits moving from
// s to next. Forward moves follow PENDING -> CONFIRMED -> PREPARING ->
// OUT_FOR_DELIVERY -> DELIVERED; CANCELLED is reachable from any
// non-terminal state. Terminal states permit nothing.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == StatusCancelled {
		return true
	}
	return nextStatus[s] == next
}

// ValidStatus reports whether s is one of the known lifecycle states
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing,
		StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// OrderItem is a line item summary on an order
type OrderItem struct {
	Quantity int    `json:"quantity"`
	ItemName string `json:"itemName"`
}

// Customer identifies the account that placed an order
type Customer struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Order is a customer order as returned by the backend. It is immutable
// once Status is terminal.
type Order struct {
	ID                    int         `json:"id"`
	RestaurantName        string      `json:"restaurantName"`
	OrderTime             time.Time   `json:"orderTime"`
	TotalPrice            float64     `json:"totalPrice"`
	Status                OrderStatus `json:"status"`
	Items                 []OrderItem `json:"items"`
	HasReview             bool        `json:"hasReview"`
	DeliveryAddress       string      `json:"deliveryAddress"`
	RestaurantLocationPin string      `json:"restaurantLocationPin"`

	// Populated on the restaurant-facing view only
	Customer      *Customer `json:"customer,omitempty"`
	ReviewRating  int       `json:"reviewRating,omitempty"`
	ReviewComment string    `json:"reviewComment,omitempty"`
}

// MenuItem is a dish owned by a restaurant
type MenuItem struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	Price         float64 `json:"price"`
	DietaryType   string  `json:"dietaryType"`
	Category      string  `json:"category"`
	Available     bool    `json:"available"`
	ImageURL      string  `json:"imageUrl,omitempty"`
	AverageRating float64 `json:"averageRating,omitempty"`
	RatingCount   int     `json:"ratingCount,omitempty"`
}

// Restaurant is the public listing shape
type Restaurant struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	Address       string     `json:"address"`
	ImageURL      string     `json:"imageUrl,omitempty"`
	Menu          []MenuItem `json:"menu"`
	AverageRating float64    `json:"averageRating,omitempty"`
}

// RestaurantProfile is the owner-facing profile on the dashboard
type RestaurantProfile struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
	BusinessID  string `json:"businessId"`
	OwnerName   string `json:"ownerName"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// UserProfile is the signed-in customer's account profile
type UserProfile struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	PhoneNumber     string `json:"phoneNumber,omitempty"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
}

// Review is customer feedback attached to an order
type Review struct {
	ID           int       `json:"id"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CustomerName string    `json:"customerName,omitempty"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
}

// DashboardSnapshot is the point-in-time read replica of a restaurant
// owner's state. It has no local authority: each fetch supersedes the
// previous snapshot wholesale.
type DashboardSnapshot struct {
	RestaurantProfile RestaurantProfile `json:"restaurantProfile"`
	Orders            []Order           `json:"orders"`
	Menu              []MenuItem        `json:"menu"`
	Reviews           []Review          `json:"reviews"`
}

// PendingCount returns the number of orders awaiting restaurant action.
// PENDING and CONFIRMED are grouped together: payment confirmation does
// not involve the restaurant, so both read as "new" on the dashboard.
func (d *DashboardSnapshot) PendingCount() int {
	n := 0
	for _, o := range d.Orders {
		if o.Status == StatusPending || o.Status == StatusConfirmed {
			n++
		}
	}
	return n
}

// --- Admin records ---

// Applicant is the user behind a restaurant partnership application
type Applicant struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PendingApplication is a restaurant application awaiting admin review
type PendingApplication struct {
	ID             int       `json:"id"`
	RestaurantName string    `json:"restaurantName"`
	PhoneNumber    string    `json:"phoneNumber"`
	Applicant      Applicant `json:"applicant"`
}

// AdminRestaurant is a row in the admin restaurant listing
type AdminRestaurant struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	OwnerName string `json:"ownerName"`
}

// AdminUser is a row in the admin user listing
type AdminUser struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
}

// AdminOrder is a row in the admin order listing
type AdminOrder struct {
	ID             int         `json:"id"`
	CustomerName   string      `json:"customerName"`
	RestaurantName string      `json:"restaurantName"`
	TotalPrice     float64     `json:"totalPrice"`
	Status         OrderStatus `json:"status"`
	ReviewRating   int         `json:"reviewRating,omitempty"`
	OrderTime      time.Time   `json:"orderTime"`
}

// DeliveryAgent is a delivery personnel account managed by admins
type DeliveryAgent struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}
