package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Restaurant struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	Phone        string    `gorm:"uniqueIndex" json:"phone"`
	Email        string    `gorm:"uniqueIndex" json:"email"`
	Password     string    `json:"-"`
	Cuisine      string    `json:"cuisine"`
	Rating       float64   `json:"rating"`
	IsVegan      bool      `json:"is_vegan"`
	IsVegetarian bool      `json:"is_vegetarian"`
	IsHalal      bool      `json:"is_halal"`
	Description  string    `gorm:"type:text" json:"description,omitempty"`
	BannerURL    string    `json:"banner_url,omitempty"`
	PhotoURL     string    `json:"photo_url,omitempty"`

	Menus  []*Menu  `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
	Dishes []*Dish  `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
	Orders []*Order `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
	Timestamp
}

type Menu struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
	MenuType     string    `json:"menu_type"`

	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID"`
	Dishes     []*Dish     `gorm:"foreignKey:MenuID"`
	Timestamp
}

type Dish struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	RestaurantID  uuid.UUID  `json:"restaurant_id"`
	MenuID        *uuid.UUID `json:"menu_id,omitempty"`
	Name          string     `json:"name"`
	Description   string     `gorm:"type:text" json:"description,omitempty"`
	Price         float64    `json:"price"`
	Protein       float64    `json:"protein"`
	Fat           float64    `json:"fat"`
	Energy        float64    `json:"energy"`
	Carbs         float64    `json:"carbs"`
	IsLactoseFree bool       `json:"is_lactose_free"`
	IsHalal       bool       `json:"is_halal"`
	IsVegan       bool       `json:"is_vegan"`
	IsVegetarian  bool       `json:"is_vegetarian"`
	IsGlutenFree  bool       `json:"is_gluten_free"`
	IsJain        bool       `json:"is_jain"`
	IsSoyFree     bool       `json:"is_soy_free"`
	IsAvailable   bool       `gorm:"default:true" json:"is_available"`
	ImageURL      string     `json:"image_url,omitempty"`
	Rating        float64    `gorm:"default:5" json:"rating"`

	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID"`
	Menu       *Menu       `gorm:"foreignKey:MenuID"`
	Timestamp
}

func (r *Restaurant) BeforeCreate(*gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (m *Menu) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (d *Dish) BeforeCreate(*gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
