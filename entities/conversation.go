package entities

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleMessageUser      = "user"
	RoleMessageAssistant = "assistant"
)

// Conversation rows are append-only; assistant messages keep the dish ids
// referenced by the reply apart from the display text.
type Conversation struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
	SessionID    int64     `gorm:"index" json:"session_id"`
	Role         string    `json:"role"`
	Content      string    `gorm:"type:text" json:"content"`
	DishIDs      string    `gorm:"type:text" json:"-"` // JSON array of dish uuids

	User       *User       `gorm:"foreignKey:UserID"`
	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID"`
	Timestamp
}

func (c *Conversation) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (c *Conversation) SetDishIDs(ids []uuid.UUID) error {
	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	c.DishIDs = string(raw)
	return nil
}

func (c *Conversation) GetDishIDs() []uuid.UUID {
	if c.DishIDs == "" {
		return nil
	}
	var ids []uuid.UUID
	if err := json.Unmarshal([]byte(c.DishIDs), &ids); err != nil {
		return nil
	}
	return ids
}
