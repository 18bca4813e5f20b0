package ordering

import (
	"DineWise-Backend/domain"
	"DineWise-Backend/entities"
	"DineWise-Backend/pkg/restaurant"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	OrderingService interface {
		StartSession(ctx context.Context, userID, restaurantID string) (domain.StartSessionResponse, error)
		AddCartItems(ctx context.Context, sessionID int64, userID string, req domain.AddCartItemsRequest) (domain.CartTotalResponse, error)
		AdjustQuantity(ctx context.Context, sessionID int64, userID string, req domain.AdjustQuantityRequest) (domain.CartTotalResponse, error)
		RemoveCartItem(ctx context.Context, sessionID int64, userID, dishID string) error
		GetCart(ctx context.Context, sessionID int64, userID string) (domain.CartResponse, error)
		GetCartQuantity(ctx context.Context, sessionID int64, userID string) (domain.CartQuantityResponse, error)
		PlaceOrder(ctx context.Context, sessionID int64, userID string) error
		EndSession(ctx context.Context, sessionID int64, userID string) error
		RestaurantFromSession(ctx context.Context, sessionID int64, userID string) (domain.SessionRestaurantResponse, error)
		GetRestaurantOrders(ctx context.Context, restaurantID string, openOnly bool) ([]domain.RestaurantOrderResponse, error)
	}

	orderingService struct {
		orderingRepository   OrderingRepository
		restaurantRepository restaurant.RestaurantRepository
		now                  func() time.Time
	}
)

func NewOrderingService(
	orderingRepository OrderingRepository,
	restaurantRepository restaurant.RestaurantRepository,
) OrderingService {
	return &orderingService{
		orderingRepository:   orderingRepository,
		restaurantRepository: restaurantRepository,
		now:                  time.Now,
	}
}

func replaceNotFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

// StartSession derives a fresh session token, closes every other open order
// of the same user, and creates the order plus its empty cart in one
// transaction. This is the only operation allowed to close other sessions.
func (s *orderingService) StartSession(ctx context.Context, userID, restaurantID string) (domain.StartSessionResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.StartSessionResponse{}, domain.ErrParseUUID
	}
	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return domain.StartSessionResponse{}, domain.ErrParseUUID
	}
	if _, err := s.restaurantRepository.GetRestaurantByID(ctx, restaurantID); err != nil {
		return domain.StartSessionResponse{}, replaceNotFound(err, domain.ErrRestaurantNotFound)
	}

	sessionID := DeriveSessionID(userID, s.now())
	exists, err := s.orderingRepository.SessionExists(ctx, sessionID)
	if err != nil {
		return domain.StartSessionResponse{}, err
	}
	if exists {
		return domain.StartSessionResponse{}, domain.ErrSessionCollision
	}

	err = s.orderingRepository.WithTx(ctx, func(repo OrderingRepository) error {
		if err := repo.CloseOpenOrders(ctx, userUUID); err != nil {
			return err
		}
		order := &entities.Order{
			UserID:       userUUID,
			RestaurantID: restaurantUUID,
			SessionID:    sessionID,
			IsOpen:       true,
		}
		if err := repo.CreateOrder(ctx, order); err != nil {
			return err
		}
		cart := &entities.Cart{
			UserID:    userUUID,
			SessionID: sessionID,
		}
		return repo.CreateCart(ctx, cart)
	})
	if err != nil {
		return domain.StartSessionResponse{}, err
	}

	return domain.StartSessionResponse{SessionID: sessionID}, nil
}

// AddCartItems validates every line before touching the cart, then appends
// each line as its own row. Repeated dish ids accumulate as separate lines
// rather than merging; the unit price is snapshotted at insertion.
func (s *orderingService) AddCartItems(ctx context.Context, sessionID int64, userID string, req domain.AddCartItemsRequest) (domain.CartTotalResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CartTotalResponse{}, domain.ErrParseUUID
	}

	order, err := s.orderingRepository.GetOrderBySession(ctx, sessionID, userUUID)
	if err != nil {
		return domain.CartTotalResponse{}, replaceNotFound(err, domain.ErrSessionNotFound)
	}
	if !order.IsOpen {
		return domain.CartTotalResponse{}, domain.ErrSessionNotFound
	}

	cart, err := s.orderingRepository.GetCartBySession(ctx, sessionID, userUUID)
	if err != nil {
		return domain.CartTotalResponse{}, replaceNotFound(err, domain.ErrCartNotFound)
	}

	lines := make([]*entities.CartItem, 0, len(req.Items))
	var added float64
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return domain.CartTotalResponse{}, domain.ErrInvalidQuantity
		}
		dishUUID, err := uuid.Parse(item.DishID)
		if err != nil {
			return domain.CartTotalResponse{}, domain.ErrParseUUID
		}
		dish, err := s.restaurantRepository.GetDishByID(ctx, item.DishID)
		if err != nil {
			return domain.CartTotalResponse{}, replaceNotFound(err, domain.ErrDishNotFound)
		}
		lines = append(lines, &entities.CartItem{
			CartID:   cart.ID,
			DishID:   dishUUID,
			Quantity: item.Quantity,
			Price:    dish.Price,
		})
		added += dish.Price * float64(item.Quantity)
	}

	newTotal := cart.TotalCost + added
	err = s.orderingRepository.WithTx(ctx, func(repo OrderingRepository) error {
		for _, line := range lines {
			if err := repo.CreateCartItem(ctx, line); err != nil {
				return err
			}
		}
		return repo.UpdateCartTotal(ctx, cart.ID, newTotal)
	})
	if err != nil {
		return domain.CartTotalResponse{}, err
	}

	return domain.CartTotalResponse{TotalCost: newTotal}, nil
}

// AdjustQuantity moves a cart line by exactly one unit and the cached total
// by one unit price, atomically. Decrementing a quantity-1 line removes the
// line; a negative quantity can never settle.
func (s *orderingService) AdjustQuantity(ctx context.Context, sessionID int64, userID string, req domain.AdjustQuantityRequest) (domain.CartTotalResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CartTotalResponse{}, domain.ErrParseUUID
	}
	dishUUID, err := uuid.Parse(req.DishID)
	if err != nil {
		return domain.CartTotalResponse{}, domain.ErrParseUUID
	}
	if req.Operation != domain.CartOperationIncrease && req.Operation != domain.CartOperationDecrease {
		return domain.CartTotalResponse{}, domain.ErrInvalidCartOperation
	}

	var newTotal float64
	err = s.orderingRepository.WithTx(ctx, func(repo OrderingRepository) error {
		cart, err := repo.GetCartBySession(ctx, sessionID, userUUID)
		if err != nil {
			return replaceNotFound(err, domain.ErrCartNotFound)
		}
		item, err := repo.GetCartItemByDish(ctx, cart.ID, dishUUID)
		if err != nil {
			return replaceNotFound(err, domain.ErrCartLineNotFound)
		}

		switch req.Operation {
		case domain.CartOperationIncrease:
			item.Quantity++
			newTotal = cart.TotalCost + item.Price
			if err := repo.UpdateCartItem(ctx, item); err != nil {
				return err
			}
		case domain.CartOperationDecrease:
			newTotal = cart.TotalCost - item.Price
			if item.Quantity <= 1 {
				if err := repo.DeleteCartItem(ctx, item.ID); err != nil {
					return err
				}
			} else {
				item.Quantity--
				if err := repo.UpdateCartItem(ctx, item); err != nil {
					return err
				}
			}
		}
		return repo.UpdateCartTotal(ctx, cart.ID, newTotal)
	})
	if err != nil {
		return domain.CartTotalResponse{}, err
	}

	return domain.CartTotalResponse{TotalCost: newTotal}, nil
}

func (s *orderingService) RemoveCartItem(ctx context.Context, sessionID int64, userID, dishID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	dishUUID, err := uuid.Parse(dishID)
	if err != nil {
		return domain.ErrParseUUID
	}

	return s.orderingRepository.WithTx(ctx, func(repo OrderingRepository) error {
		cart, err := repo.GetCartBySession(ctx, sessionID, userUUID)
		if err != nil {
			return replaceNotFound(err, domain.ErrCartNotFound)
		}
		item, err := repo.GetCartItemByDish(ctx, cart.ID, dishUUID)
		if err != nil {
			return replaceNotFound(err, domain.ErrCartLineNotFound)
		}
		if err := repo.DeleteCartItem(ctx, item.ID); err != nil {
			return err
		}
		subtotal := item.Price * float64(item.Quantity)
		return repo.UpdateCartTotal(ctx, cart.ID, cart.TotalCost-subtotal)
	})
}

// GetCart returns the cart with display fields resolved from the current
// dish records; monetary fields stay the historical snapshot.
func (s *orderingService) GetCart(ctx context.Context, sessionID int64, userID string) (domain.CartResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CartResponse{}, domain.ErrParseUUID
	}

	cart, err := s.orderingRepository.GetCartBySession(ctx, sessionID, userUUID)
	if err != nil {
		return domain.CartResponse{}, replaceNotFound(err, domain.ErrCartNotFound)
	}

	lines := make([]domain.CartLineResponse, 0, len(cart.Items))
	for _, item := range cart.Items {
		line := domain.CartLineResponse{
			ID:       item.ID.String(),
			DishID:   item.DishID.String(),
			Quantity: item.Quantity,
			Price:    item.Price,
		}
		if dish, err := s.restaurantRepository.GetDishByID(ctx, item.DishID.String()); err == nil {
			line.DishName = dish.Name
			line.ImageURL = dish.ImageURL
		}
		lines = append(lines, line)
	}

	return domain.CartResponse{
		ID:        cart.ID.String(),
		UserID:    cart.UserID.String(),
		SessionID: cart.SessionID,
		Items:     lines,
		TotalCost: cart.TotalCost,
	}, nil
}

func (s *orderingService) GetCartQuantity(ctx context.Context, sessionID int64, userID string) (domain.CartQuantityResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CartQuantityResponse{}, domain.ErrParseUUID
	}

	cart, err := s.orderingRepository.GetCartBySession(ctx, sessionID, userUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CartQuantityResponse{Quantity: 0}, nil
		}
		return domain.CartQuantityResponse{}, err
	}

	quantity := 0
	for _, item := range cart.Items {
		quantity += item.Quantity
	}
	return domain.CartQuantityResponse{Quantity: quantity}, nil
}

// PlaceOrder materializes the cart into immutable order lines, adds the
// cart total to the order total, and clears the cart. The whole sequence is
// one transaction; a failure anywhere rolls every write back.
func (s *orderingService) PlaceOrder(ctx context.Context, sessionID int64, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	return s.orderingRepository.WithTx(ctx, func(repo OrderingRepository) error {
		cart, err := repo.GetCartBySession(ctx, sessionID, userUUID)
		if err != nil {
			return replaceNotFound(err, domain.ErrCartNotFound)
		}
		order, err := repo.GetOrderBySession(ctx, sessionID, userUUID)
		if err != nil {
			return replaceNotFound(err, domain.ErrOrderNotFound)
		}
		if !order.IsOpen {
			return domain.ErrSessionNotFound
		}

		order.TotalCost += cart.TotalCost
		if err := repo.UpdateOrder(ctx, order); err != nil {
			return err
		}
		for _, line := range cart.Items {
			item := &entities.OrderItem{
				OrderID:  order.ID,
				DishID:   line.DishID,
				Quantity: line.Quantity,
				Price:    line.Price,
			}
			if err := repo.CreateOrderItem(ctx, item); err != nil {
				return err
			}
		}
		return repo.ClearCart(ctx, cart.ID)
	})
}

func (s *orderingService) EndSession(ctx context.Context, sessionID int64, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	order, err := s.orderingRepository.GetOrderBySession(ctx, sessionID, userUUID)
	if err != nil {
		return replaceNotFound(err, domain.ErrOrderNotFound)
	}
	order.IsOpen = false
	return s.orderingRepository.UpdateOrder(ctx, order)
}

func (s *orderingService) RestaurantFromSession(ctx context.Context, sessionID int64, userID string) (domain.SessionRestaurantResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.SessionRestaurantResponse{}, domain.ErrParseUUID
	}

	order, err := s.orderingRepository.GetOrderBySession(ctx, sessionID, userUUID)
	if err != nil {
		return domain.SessionRestaurantResponse{}, replaceNotFound(err, domain.ErrOrderNotFound)
	}
	return domain.SessionRestaurantResponse{RestaurantID: order.RestaurantID.String()}, nil
}

func (s *orderingService) GetRestaurantOrders(ctx context.Context, restaurantID string, openOnly bool) ([]domain.RestaurantOrderResponse, error) {
	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	orders, err := s.orderingRepository.GetOrdersByRestaurant(ctx, restaurantUUID, openOnly)
	if err != nil {
		return nil, err
	}

	res := make([]domain.RestaurantOrderResponse, 0, len(orders))
	for _, order := range orders {
		items := make([]domain.RestaurantOrderItemResponse, 0, len(order.Items))
		for _, item := range order.Items {
			items = append(items, domain.RestaurantOrderItemResponse{
				ID:       item.ID.String(),
				DishID:   item.DishID.String(),
				Quantity: item.Quantity,
				Price:    item.Price,
			})
		}
		res = append(res, domain.RestaurantOrderResponse{
			ID:        order.ID.String(),
			UserID:    order.UserID.String(),
			SessionID: order.SessionID,
			IsOpen:    order.IsOpen,
			TotalCost: order.TotalCost,
			Items:     items,
		})
	}
	return res, nil
}
