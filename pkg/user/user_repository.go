package user

import (
	"DineWise-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByID(ctx context.Context, userID string) (*entities.User, error)
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		GetUserByPhone(ctx context.Context, phone string) (*entities.User, error)
		CheckUserExists(ctx context.Context, email, phone string) (bool, error)
		UpdateUser(ctx context.Context, user *entities.User) error
		UpdatePreferences(ctx context.Context, prefs *entities.Preferences) error
		DeleteUser(ctx context.Context, userID string) error

		GetRecentOrders(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.Order, error)
		GetRecentConversations(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.Conversation, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).
		Preload("Preferences").
		Where("id = ?", userID).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).
		Preload("Preferences").
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByPhone(ctx context.Context, phone string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).
		Preload("Preferences").
		Where("phone = ?", phone).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) CheckUserExists(ctx context.Context, email, phone string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.User{}).
		Where("email = ? OR phone = ?", email, phone).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Omit("Preferences", "Orders").Save(user).Error
}

func (r *userRepository) UpdatePreferences(ctx context.Context, prefs *entities.Preferences) error {
	return r.db.WithContext(ctx).Save(prefs).Error
}

func (r *userRepository) DeleteUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", userID).
		Delete(&entities.User{}).Error
}

func (r *userRepository) GetRecentOrders(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.Order, error) {
	var orders []*entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Restaurant").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *userRepository) GetRecentConversations(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.Conversation, error) {
	var conversations []*entities.Conversation
	if err := r.db.WithContext(ctx).
		Preload("Restaurant").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&conversations).Error; err != nil {
		return nil, err
	}
	return conversations, nil
}
