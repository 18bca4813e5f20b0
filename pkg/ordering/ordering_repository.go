package ordering

import (
	"DineWise-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	OrderingRepository interface {
		// WithTx runs fn against a transactional copy of the repository;
		// any error rolls back every write made inside fn.
		WithTx(ctx context.Context, fn func(OrderingRepository) error) error

		SessionExists(ctx context.Context, sessionID int64) (bool, error)
		CloseOpenOrders(ctx context.Context, userID uuid.UUID) error
		CreateOrder(ctx context.Context, order *entities.Order) error
		UpdateOrder(ctx context.Context, order *entities.Order) error
		GetOrderBySession(ctx context.Context, sessionID int64, userID uuid.UUID) (*entities.Order, error)
		GetOrdersByRestaurant(ctx context.Context, restaurantID uuid.UUID, openOnly bool) ([]*entities.Order, error)
		CreateOrderItem(ctx context.Context, item *entities.OrderItem) error

		CreateCart(ctx context.Context, cart *entities.Cart) error
		GetCartBySession(ctx context.Context, sessionID int64, userID uuid.UUID) (*entities.Cart, error)
		CreateCartItem(ctx context.Context, item *entities.CartItem) error
		GetCartItemByDish(ctx context.Context, cartID, dishID uuid.UUID) (*entities.CartItem, error)
		UpdateCartItem(ctx context.Context, item *entities.CartItem) error
		DeleteCartItem(ctx context.Context, itemID uuid.UUID) error
		UpdateCartTotal(ctx context.Context, cartID uuid.UUID, total float64) error
		ClearCart(ctx context.Context, cartID uuid.UUID) error
	}

	orderingRepository struct {
		db *gorm.DB
	}
)

func NewOrderingRepository(db *gorm.DB) OrderingRepository {
	return &orderingRepository{db: db}
}

func (r *orderingRepository) WithTx(ctx context.Context, fn func(OrderingRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&orderingRepository{db: tx})
	})
}

func (r *orderingRepository) SessionExists(ctx context.Context, sessionID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Order{}).
		Where("session_id = ?", sessionID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *orderingRepository) CloseOpenOrders(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&entities.Order{}).
		Where("user_id = ? AND is_open = ?", userID, true).
		Update("is_open", false).Error
}

func (r *orderingRepository) CreateOrder(ctx context.Context, order *entities.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderingRepository) UpdateOrder(ctx context.Context, order *entities.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *orderingRepository) GetOrderBySession(ctx context.Context, sessionID int64, userID uuid.UUID) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).
		Where("session_id = ? AND user_id = ?", sessionID, userID).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderingRepository) GetOrdersByRestaurant(ctx context.Context, restaurantID uuid.UUID, openOnly bool) ([]*entities.Order, error) {
	var orders []*entities.Order
	query := r.db.WithContext(ctx).
		Preload("Items").
		Where("restaurant_id = ?", restaurantID)
	if openOnly {
		query = query.Where("is_open = ?", true)
	}
	if err := query.Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderingRepository) CreateOrderItem(ctx context.Context, item *entities.OrderItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *orderingRepository) CreateCart(ctx context.Context, cart *entities.Cart) error {
	return r.db.WithContext(ctx).Create(cart).Error
}

func (r *orderingRepository) GetCartBySession(ctx context.Context, sessionID int64, userID uuid.UUID) (*entities.Cart, error) {
	var cart entities.Cart
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.created_at asc")
		}).
		Where("session_id = ? AND user_id = ?", sessionID, userID).
		First(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *orderingRepository) CreateCartItem(ctx context.Context, item *entities.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *orderingRepository) GetCartItemByDish(ctx context.Context, cartID, dishID uuid.UUID) (*entities.CartItem, error) {
	var item entities.CartItem
	if err := r.db.WithContext(ctx).
		Where("cart_id = ? AND dish_id = ?", cartID, dishID).
		Order("created_at asc").
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *orderingRepository) UpdateCartItem(ctx context.Context, item *entities.CartItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *orderingRepository) DeleteCartItem(ctx context.Context, itemID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", itemID).Delete(&entities.CartItem{}).Error
}

func (r *orderingRepository) UpdateCartTotal(ctx context.Context, cartID uuid.UUID, total float64) error {
	return r.db.WithContext(ctx).Model(&entities.Cart{}).
		Where("id = ?", cartID).
		Update("total_cost", total).Error
}

func (r *orderingRepository) ClearCart(ctx context.Context, cartID uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&entities.CartItem{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(&entities.Cart{}).
		Where("id = ?", cartID).
		Update("total_cost", 0).Error
}
