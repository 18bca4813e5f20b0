package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionID is a numeric token derived from the user id and the session
// start time, unique across all orders. One open order per user at a time;
// starting a new session closes the previous ones.
type Order struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
	SessionID    int64     `gorm:"uniqueIndex" json:"session_id"`
	IsOpen       bool      `json:"is_open"`
	TotalCost    float64   `gorm:"default:0" json:"total_cost"`

	User       *User        `gorm:"foreignKey:UserID"`
	Restaurant *Restaurant  `gorm:"foreignKey:RestaurantID"`
	Items      []*OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Timestamp
}

type OrderItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderID  uuid.UUID `json:"order_id"`
	DishID   uuid.UUID `json:"dish_id"`
	Quantity int       `gorm:"default:1" json:"quantity"`
	Price    float64   `json:"price"` // unit price snapshot from add-to-cart time
	Rating   *int      `json:"rating,omitempty"`

	Order *Order `gorm:"foreignKey:OrderID"`
	Dish  *Dish  `gorm:"foreignKey:DishID"`
	Timestamp
}

// TotalCost caches the sum of line subtotals; every mutation path updates
// the lines and the total in the same transaction.
type Cart struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	SessionID int64     `gorm:"index" json:"session_id"`
	TotalCost float64   `gorm:"default:0" json:"total_cost"`

	User  *User       `gorm:"foreignKey:UserID"`
	Items []*CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	Timestamp
}

type CartItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CartID   uuid.UUID `json:"cart_id"`
	DishID   uuid.UUID `json:"dish_id"`
	Quantity int       `gorm:"default:1" json:"quantity"`
	Price    float64   `json:"price"` // unit price snapshot at insertion

	Cart *Cart `gorm:"foreignKey:CartID"`
	Dish *Dish `gorm:"foreignKey:DishID"`
	Timestamp
}

func (o *Order) BeforeCreate(*gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

func (i *OrderItem) BeforeCreate(*gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

func (c *Cart) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (i *CartItem) BeforeCreate(*gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
