package restaurant

import (
	"DineWise-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RestaurantRepository interface {
		CreateRestaurant(ctx context.Context, restaurant *entities.Restaurant) error
		GetRestaurantByID(ctx context.Context, restaurantID string) (*entities.Restaurant, error)
		GetRestaurantByEmail(ctx context.Context, email string) (*entities.Restaurant, error)
		CheckRestaurantExists(ctx context.Context, email, phone string) (bool, error)
		UpdateRestaurant(ctx context.Context, restaurant *entities.Restaurant) error
		DeleteRestaurant(ctx context.Context, restaurantID string) error
		GetAllRestaurants(ctx context.Context) ([]*entities.Restaurant, error)

		CreateMenu(ctx context.Context, menu *entities.Menu) error
		GetMenuByID(ctx context.Context, menuID string) (*entities.Menu, error)
		GetMenusByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entities.Menu, error)
		DeleteMenu(ctx context.Context, menuID string) error

		CreateDish(ctx context.Context, dish *entities.Dish) error
		GetDishByID(ctx context.Context, dishID string) (*entities.Dish, error)
		GetDishesByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entities.Dish, error)
		UpdateDish(ctx context.Context, dish *entities.Dish) error

		GetOrderItem(ctx context.Context, orderID, dishID, userID uuid.UUID) (*entities.OrderItem, error)
		UpdateOrderItem(ctx context.Context, item *entities.OrderItem) error
		AverageDishRating(ctx context.Context, dishID uuid.UUID) (float64, int64, error)
	}

	restaurantRepository struct {
		db *gorm.DB
	}
)

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) CreateRestaurant(ctx context.Context, restaurant *entities.Restaurant) error {
	return r.db.WithContext(ctx).Create(restaurant).Error
}

func (r *restaurantRepository) GetRestaurantByID(ctx context.Context, restaurantID string) (*entities.Restaurant, error) {
	var restaurant entities.Restaurant
	if err := r.db.WithContext(ctx).
		Where("id = ?", restaurantID).
		First(&restaurant).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) GetRestaurantByEmail(ctx context.Context, email string) (*entities.Restaurant, error) {
	var restaurant entities.Restaurant
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&restaurant).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) CheckRestaurantExists(ctx context.Context, email, phone string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Restaurant{}).
		Where("email = ? OR phone = ?", email, phone).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *restaurantRepository) UpdateRestaurant(ctx context.Context, restaurant *entities.Restaurant) error {
	return r.db.WithContext(ctx).Save(restaurant).Error
}

func (r *restaurantRepository) DeleteRestaurant(ctx context.Context, restaurantID string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", restaurantID).
		Delete(&entities.Restaurant{}).Error
}

func (r *restaurantRepository) GetAllRestaurants(ctx context.Context) ([]*entities.Restaurant, error) {
	var restaurants []*entities.Restaurant
	if err := r.db.WithContext(ctx).
		Order("name asc").
		Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *restaurantRepository) CreateMenu(ctx context.Context, menu *entities.Menu) error {
	return r.db.WithContext(ctx).Create(menu).Error
}

func (r *restaurantRepository) GetMenuByID(ctx context.Context, menuID string) (*entities.Menu, error) {
	var menu entities.Menu
	if err := r.db.WithContext(ctx).
		Preload("Dishes", func(db *gorm.DB) *gorm.DB {
			return db.Order("dishes.created_at asc")
		}).
		Where("id = ?", menuID).
		First(&menu).Error; err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *restaurantRepository) GetMenusByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entities.Menu, error) {
	var menus []*entities.Menu
	if err := r.db.WithContext(ctx).
		Preload("Dishes", func(db *gorm.DB) *gorm.DB {
			return db.Order("dishes.created_at asc")
		}).
		Where("restaurant_id = ?", restaurantID).
		Order("created_at asc").
		Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

func (r *restaurantRepository) DeleteMenu(ctx context.Context, menuID string) error {
	if err := r.db.WithContext(ctx).Model(&entities.Dish{}).
		Where("menu_id = ?", menuID).
		Update("menu_id", nil).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Where("id = ?", menuID).
		Delete(&entities.Menu{}).Error
}

func (r *restaurantRepository) CreateDish(ctx context.Context, dish *entities.Dish) error {
	return r.db.WithContext(ctx).Create(dish).Error
}

func (r *restaurantRepository) GetDishByID(ctx context.Context, dishID string) (*entities.Dish, error) {
	var dish entities.Dish
	if err := r.db.WithContext(ctx).
		Where("id = ?", dishID).
		First(&dish).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *restaurantRepository) GetDishesByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entities.Dish, error) {
	var dishes []*entities.Dish
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("name asc").
		Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}

func (r *restaurantRepository) UpdateDish(ctx context.Context, dish *entities.Dish) error {
	return r.db.WithContext(ctx).Save(dish).Error
}

func (r *restaurantRepository) GetOrderItem(ctx context.Context, orderID, dishID, userID uuid.UUID) (*entities.OrderItem, error) {
	var item entities.OrderItem
	if err := r.db.WithContext(ctx).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("order_items.order_id = ? AND order_items.dish_id = ? AND orders.user_id = ?", orderID, dishID, userID).
		Order("order_items.created_at asc").
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *restaurantRepository) UpdateOrderItem(ctx context.Context, item *entities.OrderItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *restaurantRepository) AverageDishRating(ctx context.Context, dishID uuid.UUID) (float64, int64, error) {
	var result struct {
		Avg   float64
		Count int64
	}
	if err := r.db.WithContext(ctx).Model(&entities.OrderItem{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(rating) AS count").
		Where("dish_id = ? AND rating IS NOT NULL", dishID).
		Scan(&result).Error; err != nil {
		return 0, 0, err
	}
	return result.Avg, result.Count, nil
}
