package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name            string    `json:"name"`
	Email           string    `gorm:"uniqueIndex" json:"email"`
	Phone           string    `gorm:"uniqueIndex" json:"phone"`
	Password        string    `json:"-"`
	Description     string    `gorm:"type:text" json:"description,omitempty"` // generated from preferences
	ProfilePhotoURL string    `json:"profile_photo_url,omitempty"`

	Preferences *Preferences `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Orders      []*Order     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Timestamp
}

type Preferences struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID              uuid.UUID `json:"user_id"`
	Note                string    `json:"note,omitempty"`
	IsLactoseIntolerant bool      `json:"is_lactose_intolerant"`
	IsHalal             bool      `json:"is_halal"`
	IsVegan             bool      `json:"is_vegan"`
	IsVegetarian        bool      `json:"is_vegetarian"`
	IsGlutenAllergic    bool      `json:"is_gluten_allergic"`
	IsJain              bool      `json:"is_jain"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (p *Preferences) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
